package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	pkgview "github.com/pkgview/pkgview"
	"github.com/pkgview/pkgview/prs"
)

func prsCmd() *cobra.Command {
	var state string
	var base string
	var token string

	cmd := &cobra.Command{
		Use:   "prs <owner/repo>",
		Short: "List pull requests for a GitHub repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, ok := strings.Cut(args[0], "/")
			if !ok || owner == "" || repo == "" {
				return fmt.Errorf("repository must be owner/repo, got %q", args[0])
			}

			if token == "" {
				token = os.Getenv("GITHUB_TOKEN")
			}
			var opts []pkgview.Option
			if token != "" {
				opts = append(opts, pkgview.WithGitHubToken(token))
			}
			c, err := newClient(opts...)
			if err != nil {
				return err
			}

			var listOpts []prs.ListOption
			if state != "" {
				listOpts = append(listOpts, prs.ListWithState(state))
			}
			if base != "" {
				listOpts = append(listOpts, prs.ListWithBase(base))
			}
			pulls, err := c.PullRequests(cmd.Context(), owner, repo, listOpts...)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, pr := range pulls {
				draft := ""
				if pr.Draft {
					draft = "draft"
				}
				fmt.Fprintf(w, "#%d\t%s\t%s\t%s\t%s\n", pr.Number, pr.Author, pr.Title, pr.HeadRef, draft)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&state, "state", "open", `PR state: "open", "closed", or "all"`)
	cmd.Flags().StringVar(&base, "base", "", "filter by base branch")
	cmd.Flags().StringVar(&token, "token", "", "GitHub access token (defaults to $GITHUB_TOKEN)")
	return cmd
}

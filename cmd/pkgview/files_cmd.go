package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func filesCmd() *cobra.Command {
	var showPath string

	cmd := &cobra.Command{
		Use:   "files <spec>",
		Short: "List the files inside a package tarball",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			pkg, err := c.FetchPackage(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if showPath != "" {
				for _, f := range pkg.Files {
					if f.Path == showPath {
						fmt.Print(f.Content)
						return nil
					}
				}
				return fmt.Errorf("no file %q in %s@%s", showPath, pkg.Name, pkg.Version)
			}

			fmt.Printf("%s@%s (%d files)\n", pkg.Name, pkg.Version, len(pkg.Files))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, f := range pkg.Files {
				fmt.Fprintf(w, "%s\t%d\n", f.Path, len(f.Content))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&showPath, "content", "", "print the content of one file instead of the listing")
	return cmd
}

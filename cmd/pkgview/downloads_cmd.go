package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pkgview/pkgview/registry"
)

func downloadsCmd() *cobra.Command {
	var rng string
	var daily bool

	cmd := &cobra.Command{
		Use:   "downloads <package>",
		Short: "Show npm download counts for a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			result, err := c.Downloads(cmd.Context(), args[0], rng)
			if err != nil {
				return err
			}

			if daily {
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				for _, d := range result.Downloads {
					fmt.Fprintf(w, "%s\t%d\n", d.Day, d.Downloads)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}
			fmt.Printf("%s: %d downloads (%s to %s)\n",
				result.Package, result.Total(), result.Start, result.End)
			return nil
		},
	}

	cmd.Flags().StringVar(&rng, "range", registry.RangeLastMonth, `range, e.g. "last-week" or "2026-01-01:2026-01-31"`)
	cmd.Flags().BoolVar(&daily, "daily", false, "print the per-day breakdown")
	return cmd
}

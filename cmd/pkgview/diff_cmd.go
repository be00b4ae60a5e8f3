package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	pkgview "github.com/pkgview/pkgview"
	"github.com/pkgview/pkgview/diff"
)

func diffCmd() *cobra.Command {
	var showUnchanged bool
	var showManifest bool

	cmd := &cobra.Command{
		Use:   "diff <before> <after>",
		Short: "Compare the contents of two package versions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Both sides of the diff usually share a packument.
			c, err := newClient(pkgview.WithCaching(time.Minute))
			if err != nil {
				return err
			}
			report, err := c.Compare(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("%s@%s -> %s@%s\n",
				report.Before.Name, report.Before.Version,
				report.After.Name, report.After.Version)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, fc := range report.Files {
				if fc.Status == diff.Unchanged && !showUnchanged {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%+d\n", fc.Status, fc.Path, fc.Delta())
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Printf("\n%d added, %d removed, %d modified, %d unchanged\n",
				report.Count(diff.Added), report.Count(diff.Removed),
				report.Count(diff.Modified), report.Count(diff.Unchanged))
			fmt.Printf("bundle size: %d -> %d bytes (%+d)\n",
				report.TotalBefore(), report.TotalAfter(), report.TotalDelta())

			if showManifest && report.ManifestPatch != nil {
				fmt.Printf("\npackage.json merge patch:\n%s\n", report.ManifestPatch)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showUnchanged, "unchanged", false, "also list unchanged files")
	cmd.Flags().BoolVar(&showManifest, "manifest-patch", false, "print the package.json merge patch")
	return cmd
}

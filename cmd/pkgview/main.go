package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	pkgview "github.com/pkgview/pkgview"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagRegistry string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:     "pkgview",
	Short:   "pkgview - inspect published npm packages",
	Long:    "pkgview fetches npm packages, lists and diffs their contents, and reports download analytics.",
	Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRegistry, "registry", "", "npm registry base URL (default registry.npmjs.org)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		filesCmd(),
		diffCmd(),
		downloadsCmd(),
		prsCmd(),
		versionCmd(),
	)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pkgview %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}

// newClient builds the shared client from the global flags.
func newClient(extra ...pkgview.Option) (*pkgview.Client, error) {
	opts := []pkgview.Option{
		pkgview.WithUserAgent("pkgview/" + version),
	}
	if flagRegistry != "" {
		opts = append(opts, pkgview.WithRegistryURL(flagRegistry))
	}
	if flagVerbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, pkgview.WithLogger(logger))
	}
	opts = append(opts, extra...)
	return pkgview.NewClient(opts...)
}

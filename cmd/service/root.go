package main

import (
	"os"

	"github.com/spf13/cobra"
)

// serveOptions are the flags shared by the root and serve commands.
type serveOptions struct {
	configDir string
	profile   string
}

func newRootCmd() *cobra.Command {
	opts := &serveOptions{}

	root := &cobra.Command{
		Use:   "quote-service",
		Short: "HTTP API serving an in-memory collection of motivational quotes",
		Long: `quote-service lists, picks and appends motivational quotes held in memory,
and serves a small web page that drives the API from a browser.

Running it without a subcommand is the same as "quote-service serve".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and {profile}.yaml")
	root.PersistentFlags().StringVar(&opts.profile, "profile", defaultProfile(), "config profile (defaults to $APP_ENVIRONMENT or local)")

	root.AddCommand(newServeCmd(opts), newVersionCmd())

	return root
}

func defaultProfile() string {
	if p := os.Getenv("APP_ENVIRONMENT"); p != "" {
		return p
	}

	return "local"
}

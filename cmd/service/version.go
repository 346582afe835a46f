package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
)

// Set with -ldflags "-X main.Version=... -X main.Commit=... -X main.BuildTime=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			bi := handlers.NewBuildInfo(Version, Commit, BuildTime)
			fmt.Fprintf(cmd.OutOrStdout(), "quote-service %s (commit %s, built %s, %s)\n",
				bi.Version, bi.Commit, bi.BuildTime, bi.GoVersion)
		},
	}
}

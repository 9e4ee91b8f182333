package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pulso",
		Short: "PULSO HORECA access service",
		Long: `Permission checks, onboarding redirects and team invitations for
PULSO HORECA. Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
	}

	serve := newServeCmd()
	root.AddCommand(serve, newMigrateCmd(), newTokenCmd(), newVersionCmd())

	// Running the binary without a subcommand serves.
	root.RunE = serve.RunE
	return root
}

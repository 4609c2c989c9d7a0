package main

import (
	"os"

	"github.com/spf13/cobra"

	"lotledger/internal/interfaces/cli/migrate"
	"lotledger/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lotledger",
		Short: "Lotledger - raw material lot quality control",
		Long:  `Lotledger tracks raw material lots from receipt through quarantine, sampling and laboratory analysis to release, with a full audit trail.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

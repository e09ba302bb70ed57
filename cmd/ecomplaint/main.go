package main

import (
	"os"

	"github.com/spf13/cobra"

	"ecomplaint/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ecomplaint",
		Short: "E-Complaint - a citizen complaint portal",
		Long:  `E-Complaint is a web service for filing and tracking complaints against public institutions.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

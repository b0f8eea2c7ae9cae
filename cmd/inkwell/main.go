package main

import (
	"os"

	"github.com/spf13/cobra"

	"inkwell/internal/interfaces/cli/hashpassword"
	"inkwell/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "inkwell",
		Short: "Inkwell - a personal publishing backend",
		Long:  `Inkwell serves a personal site's posts, comments, and reactions, with a cookie-authenticated admin console.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		hashpassword.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

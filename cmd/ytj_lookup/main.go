// Package main provides the entry point for the ytj_lookup web front-end and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ytj_lookup",
		Short: "Finnish business ID lookup",
		Long:  "ytj_lookup looks up companies by business ID (Y-tunnus) in the PRH open data registry, through a web form, a JSON API or the command line.",
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (YAML, JSON or TOML)")
	rootCmd.PersistentFlags().String("registry-url", "", "Registry API base URL (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newValidateCmd())
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

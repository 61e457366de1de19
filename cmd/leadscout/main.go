package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leadscout-hq/leadscout/internal/cli"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "leadscout",
		Short: "Leadscout CLI - metered job and people search",
		Long: `Leadscout searches job postings and professional contacts through a
metered, pay-per-query backend.

Environment variables:
  LEADSCOUT_API_KEY   API key for authentication (required)
  LEADSCOUT_API_URL   API base URL (default: https://api.leadscout.dev)`,
		Version: version,
	}

	// Accept snake_case spellings of multi-word flags.
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	rootCmd.PersistentFlags().Bool("output", false, "Output as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("api-key", "", "API key for authentication (overrides env and config)")
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides env and config)")

	rootCmd.AddCommand(cli.JobsCmd())
	rootCmd.AddCommand(cli.PeopleCmd())
	rootCmd.AddCommand(cli.AuthCmd())
	rootCmd.AddCommand(cli.ServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package cli wires the worldcup command tree.
package cli

import (
	"github.com/spf13/cobra"
)

const (
	flagConfig   = "config"
	flagProvider = "provider"
	flagDataDir  = "data-dir"
	flagBaseURL  = "base-url"
	flagDebug    = "debug"
)

// NewRootCmd creates the root command with the serve, table, chart, map and bracket subcommands.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "worldcup",
		Short:         "FIFA World Cup statistics service and terminal views",
		Long:          "worldcup serves tournament charts, maps, the knockout bracket and an expandable team results table.",
		Version:       version,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.PersistentFlags()
	f.String(flagConfig, "", "YAML config file (takes precedence over CONFIG_FILE)")
	f.String(flagProvider, "", "dataset provider: fixture, file or http")
	f.String(flagDataDir, "", "dataset directory for the file provider")
	f.String(flagBaseURL, "", "dataset base URL for the http provider")
	f.Bool(flagDebug, false, "enable debug logging")

	cmd.AddCommand(
		newServeCmd(version),
		newTableCmd(),
		newChartCmd(),
		newMapCmd(),
		newBracketCmd(),
	)
	return cmd
}

const rootCmdExample = `  # Serve the HTTP API from the embedded 2014 dataset
  worldcup serve

  # Explore the team results table interactively
  worldcup table

  # Print the average attendance chart with 1950 selected
  worldcup chart --dimension attendance --selected 1950

  # Show the map classes for 2006, reading datasets from disk
  worldcup map --year 2006 --provider file --data-dir ./data`

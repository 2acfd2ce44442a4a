// Package cli implements the cobra command tree.
//
// Commands talk to the core exclusively through the driving ports.
// The wiring entry point injects the provider before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driving"
	"github.com/custodia-labs/ragkit/internal/logger"
)

var (
	version = "dev"
	verbose bool

	// Injected by Execute before any command runs.
	provider      driving.Provider
	sourceConfigs []domain.SourceConfig
)

var rootCmd = &cobra.Command{
	Use:   "ragkit",
	Short: "Local document search for retrieval-augmented generation",
	Long: `ragkit ingests documents from configured sources, splits them into
overlapping chunks and serves keyword search over the chunks.
The index is also exposed to AI assistants through an MCP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute injects the wired core and runs the command tree.
func Execute(p driving.Provider, sources []domain.SourceConfig, v string) error {
	provider = p
	sourceConfigs = sources
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}

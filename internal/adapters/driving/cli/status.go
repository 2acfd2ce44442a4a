package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog and index counts",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if provider == nil {
		return errors.New("provider not configured")
	}

	ctx := context.Background()

	cmd.Printf("Sources:   %d configured\n", len(sourceConfigs))
	cmd.Printf("Documents: %d in catalog\n", provider.DocumentCount(ctx))
	cmd.Printf("Chunks:    %d indexed\n", provider.ChunkCount(ctx))

	return nil
}

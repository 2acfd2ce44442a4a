package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ragkit/internal/core/ports/driving"
)

var syncCmd = &cobra.Command{
	Use:   "sync [source-id]",
	Short: "Ingest documents from sources",
	Long: `Fetches documents from configured sources, chunks them and indexes
the chunks. If a source ID is provided, only that source is synced.
Otherwise, all sources are synced.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	if provider == nil {
		return errors.New("provider not configured")
	}

	ctx := context.Background()

	var stats *driving.SyncStats
	var err error

	if len(args) > 0 {
		sourceID := args[0]
		cmd.Printf("Syncing source: %s...\n", sourceID)
		stats, err = provider.SyncSource(ctx, sourceID)
	} else {
		cmd.Println("Syncing all sources...")
		stats, err = provider.Sync(ctx)
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	cmd.Printf("Synced %d source(s), %d failed.\n", stats.SourcesSynced, stats.SourcesFailed)
	cmd.Printf("Processed %d document(s), indexed %d chunk(s).\n",
		stats.DocumentsProcessed, stats.ChunksIndexed)

	return nil
}

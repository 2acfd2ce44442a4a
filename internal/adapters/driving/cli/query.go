package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driving"
)

var (
	queryLimit    int
	queryMinScore float64
	querySource   string
	queryLanguage string
	queryTags     []string
	queryJSON     bool
)

var queryCmd = &cobra.Command{
	Use:   "query [query]",
	Short: "Search indexed chunks",
	Long: `Performs keyword search across all indexed chunks.
Results are scored by query term coverage and normalised to [0, 1].`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", 0, "maximum number of results (0 = configured default)")
	queryCmd.Flags().Float64Var(&queryMinScore, "min-score", 0, "drop results below this score (0 = configured default, negative = no cut)")
	queryCmd.Flags().StringVar(&querySource, "source", "", "only return chunks from this source")
	queryCmd.Flags().StringVar(&queryLanguage, "language", "", "only return chunks in this language")
	queryCmd.Flags().StringSliceVar(&queryTags, "tag", nil, "only return chunks carrying this tag (repeatable)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	query := args[0]

	if provider == nil {
		return errors.New("provider not configured")
	}

	ctx := context.Background()
	opts := driving.QueryOptions{
		Limit:    queryLimit,
		MinScore: queryMinScore,
		Filters: domain.SearchFilters{
			Source:   querySource,
			Language: queryLanguage,
			Tags:     queryTags,
		},
	}

	result, err := provider.Query(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if queryJSON {
		return outputQueryJSON(cmd, result)
	}

	return outputQueryTable(cmd, result)
}

func outputQueryJSON(cmd *cobra.Command, result *domain.QueryResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQueryTable(cmd *cobra.Command, result *domain.QueryResult) error {
	if len(result.Results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results (%d in %dms):\n", result.TotalCount, result.QueryTimeMs)
	cmd.Println()
	for i := range result.Results {
		// Format: [N] Title - Snippet (Score)
		r := &result.Results[i]
		title := r.Chunk.Title
		if title == "" {
			title = r.Chunk.ID
		}

		snippet := ""
		if len(r.Highlights) > 0 {
			snippet = r.Highlights[0]
		}

		cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, r.Score)
		cmd.Printf("      Document: %s\n", r.Chunk.DocumentID)
		if snippet != "" {
			cmd.Printf("      %s\n", snippet)
		}
		cmd.Println()
	}

	return nil
}

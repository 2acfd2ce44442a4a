package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Inspect the document catalog",
	Long:  `List and view documents held in the catalog.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list [source-id]",
	Short: "List documents for a source",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show document info",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentContentCmd = &cobra.Command{
	Use:   "content [doc-id]",
	Short: "Print document content",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentContent,
}

var documentTagCmd = &cobra.Command{
	Use:   "tagged [tag]",
	Short: "List documents carrying a tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentTagged,
}

func init() {
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentContentCmd)
	documentCmd.AddCommand(documentTagCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, args []string) error {
	if provider == nil {
		return errors.New("provider not configured")
	}

	sourceID := args[0]
	ctx := context.Background()

	docs, err := provider.DocumentsBySource(ctx, sourceID)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Printf("No documents found for source: %s\n", sourceID)
		return nil
	}

	cmd.Printf("Documents for source %s:\n\n", sourceID)
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title: %s\n", docs[i].Title)
		cmd.Printf("    Type:  %s\n", docs[i].Type)
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if provider == nil {
		return errors.New("provider not configured")
	}

	docID := args[0]
	ctx := context.Background()

	doc, err := provider.Document(ctx, docID)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Title:    %s\n", doc.Title)
	cmd.Printf("  Source:   %s\n", doc.SourceID)
	cmd.Printf("  Type:     %s\n", doc.Type)
	cmd.Printf("  Length:   %d characters\n", len(doc.Content))

	if len(doc.Metadata) > 0 {
		cmd.Println("\n  Metadata:")
		for k, v := range doc.Metadata {
			cmd.Printf("    %s: %v\n", k, v)
		}
	}

	return nil
}

func runDocumentContent(cmd *cobra.Command, args []string) error {
	if provider == nil {
		return errors.New("provider not configured")
	}

	docID := args[0]
	ctx := context.Background()

	doc, err := provider.Document(ctx, docID)
	if err != nil {
		return fmt.Errorf("failed to get document content: %w", err)
	}

	cmd.Println(doc.Content)
	return nil
}

func runDocumentTagged(cmd *cobra.Command, args []string) error {
	if provider == nil {
		return errors.New("provider not configured")
	}

	tag := args[0]
	ctx := context.Background()

	docs, err := provider.DocumentsByTag(ctx, tag)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Printf("No documents found with tag: %s\n", tag)
		return nil
	}

	cmd.Printf("Documents tagged %s:\n\n", tag)
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title: %s\n", docs[i].Title)
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

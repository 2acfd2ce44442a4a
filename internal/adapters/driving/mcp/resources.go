package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for ragkit resources.
	uriScheme = "ragkit://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing sources.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sources",
		Name:        "sources",
		Description: "List of all configured data sources",
		MIMEType:    "application/json",
	}, s.handleSourcesResource)

	// Template for source documents.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sources/{sourceId}/documents",
		Name:        "source-documents",
		Description: "Documents ingested from a specific source",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	// Template for document content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document-content",
		Description: "Content of a specific document",
		MIMEType:    "text/plain",
	}, s.handleDocumentContentResource)
}

// handleSourcesResource returns a list of all configured sources.
func (s *Server) handleSourcesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Build simplified source list.
	type sourceInfo struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
	}

	infos := make([]sourceInfo, len(s.ports.Sources))
	for i, src := range s.ports.Sources {
		infos[i] = sourceInfo{
			ID:   src.ID,
			Name: src.Name,
			Type: src.Type,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sources: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentsResource returns documents for a specific source.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract sourceId from URI: ragkit://sources/{sourceId}/documents
	sourceID := extractSourceID(req.Params.URI)
	if sourceID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	docs, err := s.ports.Provider.DocumentsBySource(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	// Build simplified document list.
	type docInfo struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Type  string `json:"type"`
	}

	infos := make([]docInfo, len(docs))
	for i := range docs {
		infos[i] = docInfo{
			ID:    docs[i].ID,
			Title: docs[i].Title,
			Type:  docs[i].Type.String(),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentContentResource returns the content of a specific document.
func (s *Server) handleDocumentContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract documentId from URI: ragkit://documents/{documentId}
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Provider.Document(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     doc.Content,
		}},
	}, nil
}

// extractSourceID extracts the source ID from a URI like ragkit://sources/{sourceId}/documents.
func extractSourceID(uri string) string {
	const prefix = uriScheme + "sources/"
	const suffix = "/documents"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}

// extractDocumentID extracts the document ID from a URI like ragkit://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}

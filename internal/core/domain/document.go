package domain

import "fmt"

// DocumentType classifies document content for type-aware chunking.
type DocumentType string

// Supported document types.
const (
	// TypeText is plain prose without structural markup.
	TypeText DocumentType = "text"

	// TypeMarkdown is Markdown with heading structure.
	TypeMarkdown DocumentType = "markdown"

	// TypeCode is source code with brace-delimited blocks.
	TypeCode DocumentType = "code"

	// TypeJSON is structured JSON data.
	TypeJSON DocumentType = "json"

	// TypeHTML is HTML markup.
	TypeHTML DocumentType = "html"
)

// IsValid returns true if the document type is recognised.
func (t DocumentType) IsValid() bool {
	switch t {
	case TypeText, TypeMarkdown, TypeCode, TypeJSON, TypeHTML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t DocumentType) String() string {
	return string(t)
}

// Document represents a document delivered by a source.
// It is immutable once created; the core never mutates it.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// SourceID links to the source that produced this document.
	SourceID string

	// Type classifies the content for chunking.
	Type DocumentType

	// Title is the human-readable title. Optional.
	Title string

	// Content is the full text content.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata Metadata
}

// Chunk represents a searchable unit within a document.
// Documents are split into chunks for granular search results.
type Chunk struct {
	// ID is derived deterministically from the document ID
	// and the zero-based chunk index. See ChunkID.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the text content of this chunk.
	Content string

	// Title is inherited from the parent document. Optional.
	Title string

	// StartOffset is the character offset of the chunk start
	// within the document content. Approximate after overlap
	// seeding; see the chunking package.
	StartOffset int

	// EndOffset is the character offset one past the chunk end.
	EndOffset int

	// Metadata is carried over from the parent document.
	Metadata Metadata
}

// ChunkID derives the deterministic chunk identifier for a document
// and a zero-based chunk index.
func ChunkID(documentID string, index int) string {
	return fmt.Sprintf("%s-chunk-%d", documentID, index)
}

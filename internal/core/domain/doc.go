// Package domain defines the core business entities for ragkit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A document delivered by a source
//   - Chunk: A searchable unit derived from a document
//   - SearchResult: A scored, highlighted search hit
//   - SourceConfig: Configuration for a document source
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

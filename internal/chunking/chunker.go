package chunking

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driven"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// sectionSeparator joins distinct sections accumulated into one chunk.
const sectionSeparator = "\n\n"

// Ensure Chunker implements the interface.
var _ driven.Chunker = (*Chunker)(nil)

// Chunker splits document content into overlapping chunks.
// It is stateless between calls: the same document and configuration
// always produce the same chunks.
type Chunker struct {
	chunkSize    int
	overlap      int
	minChunkSize int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the target chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		c.chunkSize = size
	}
}

// WithOverlap sets the overlap between consecutive chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		c.overlap = overlap
	}
}

// WithMinChunkSize enables the merge pass: chunks shorter than size
// are folded into their successor. Zero disables merging.
func WithMinChunkSize(size int) Option {
	return func(c *Chunker) {
		c.minChunkSize = size
	}
}

// New creates a new chunker with the given options.
// Returns domain.ErrInvalidConfig when the chunk size is not positive,
// the overlap is negative, or the overlap is not below the chunk size.
func New(opts ...Option) (*Chunker, error) {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", domain.ErrInvalidConfig, c.chunkSize)
	}
	if c.overlap < 0 {
		return nil, fmt.Errorf("%w: overlap must be non-negative, got %d", domain.ErrInvalidConfig, c.overlap)
	}
	if c.overlap >= c.chunkSize {
		return nil, fmt.Errorf("%w: overlap %d must be below chunk size %d", domain.ErrInvalidConfig, c.overlap, c.chunkSize)
	}
	if c.minChunkSize < 0 {
		return nil, fmt.Errorf("%w: min chunk size must be non-negative, got %d", domain.ErrInvalidConfig, c.minChunkSize)
	}

	return c, nil
}

// ChunkSize returns the configured target chunk size.
func (c *Chunker) ChunkSize() int {
	return c.chunkSize
}

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int {
	return c.overlap
}

// Chunk splits the document content into ordered, overlapping chunks.
//
// Content no longer than the chunk size becomes a single chunk spanning
// the whole document. Larger content is split into type-specific
// sections and accumulated; whenever adding the next section would
// exceed the chunk size, the buffer is emitted and the next buffer is
// seeded with the trailing overlap of the previous one.
//
// Offsets after overlap seeding are approximate bookkeeping: the buffer
// reset does not perfectly track true source offsets when section
// lengths vary. This is a known precision gap kept deliberately.
func (c *Chunker) Chunk(_ context.Context, doc domain.Document) ([]domain.Chunk, error) {
	content := doc.Content
	if content == "" {
		// Empty content produces no chunks
		return nil, nil
	}

	if len(content) <= c.chunkSize {
		return []domain.Chunk{c.newChunk(doc, 0, content, 0, len(content))}, nil
	}

	var chunks []domain.Chunk
	buffer := ""
	start := 0

	emit := func() {
		trimmed := strings.TrimSpace(buffer)
		if trimmed == "" {
			buffer = ""
			return
		}

		chunks = append(chunks, c.newChunk(doc, len(chunks), trimmed, start, start+len(trimmed)))

		// Seed the next buffer with the trailing overlap of this one.
		tail := trimmed
		if len(tail) > c.overlap {
			tail = tail[len(tail)-c.overlap:]
		}
		start += len(trimmed) - len(tail)
		if start < 0 {
			start = 0
		}
		buffer = tail
	}

	for _, p := range c.pieces(doc.Type, content) {
		sep := sectionSeparator
		if p.continuation || buffer == "" {
			sep = ""
		}
		if buffer != "" && len(buffer)+len(sep)+len(p.text) > c.chunkSize {
			emit()
			if buffer == "" || p.continuation {
				sep = ""
			}
		}
		buffer += sep + p.text
	}

	// Final non-empty buffer becomes the last chunk.
	if trimmed := strings.TrimSpace(buffer); trimmed != "" {
		chunks = append(chunks, c.newChunk(doc, len(chunks), trimmed, start, start+len(trimmed)))
	}

	if c.minChunkSize > 0 {
		chunks = MergeSmallChunks(chunks, c.minChunkSize)
	}

	return chunks, nil
}

// piece is a section, or a fixed-size slice of a section longer than
// the chunk size. Continuation pieces rejoin their predecessor without
// a separator.
type piece struct {
	text         string
	continuation bool
}

// pieces splits content into sections and slices oversized sections
// down to the chunk size so accumulation can always make progress.
func (c *Chunker) pieces(docType domain.DocumentType, content string) []piece {
	sections := splitSections(docType, content)

	var pieces []piece
	for _, section := range sections {
		if len(section) <= c.chunkSize {
			pieces = append(pieces, piece{text: section})
			continue
		}
		for i := 0; i < len(section); i += c.chunkSize {
			end := i + c.chunkSize
			if end > len(section) {
				end = len(section)
			}
			pieces = append(pieces, piece{text: section[i:end], continuation: i > 0})
		}
	}
	return pieces
}

// newChunk builds a chunk with the deterministic derived ID.
// Metadata is shared by reference with the document; the core treats
// it as copy-on-write and never mutates it in place.
func (c *Chunker) newChunk(doc domain.Document, index int, content string, start, end int) domain.Chunk {
	return domain.Chunk{
		ID:          domain.ChunkID(doc.ID, index),
		DocumentID:  doc.ID,
		Content:     content,
		Title:       doc.Title,
		StartOffset: start,
		EndOffset:   end,
		Metadata:    doc.Metadata,
	}
}

// MergeSmallChunks folds any chunk shorter than minSize into the
// following chunk, joining content with a newline and extending the
// end offset. The final chunk is kept even when undersized. Chunk IDs
// are re-derived so the zero-based sequence stays contiguous.
func MergeSmallChunks(chunks []domain.Chunk, minSize int) []domain.Chunk {
	if len(chunks) == 0 || minSize <= 0 {
		return chunks
	}

	merged := make([]domain.Chunk, 0, len(chunks))
	var pending *domain.Chunk

	for i := range chunks {
		chunk := chunks[i]

		if pending != nil {
			chunk.Content = pending.Content + "\n" + chunk.Content
			chunk.StartOffset = pending.StartOffset
			pending = nil
		}

		if len(chunk.Content) < minSize && i < len(chunks)-1 {
			pending = &chunk
			continue
		}

		merged = append(merged, chunk)
	}

	// Renumber so derived IDs stay sequential.
	for i := range merged {
		merged[i].ID = domain.ChunkID(merged[i].DocumentID, i)
	}

	return merged
}

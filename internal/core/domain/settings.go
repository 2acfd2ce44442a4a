package domain

import "fmt"

// Default tunable values.
const (
	// DefaultChunkSize is the target chunk size in characters.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is the overlap between consecutive chunks.
	DefaultChunkOverlap = 200

	// DefaultMaxResults is the result cap per query.
	DefaultMaxResults = 10

	// DefaultMinScore is the relevance threshold applied by the provider.
	DefaultMinScore = 0.5
)

// Settings holds the core tunables.
type Settings struct {
	// ChunkSize is the target chunk size in characters. Positive.
	ChunkSize int

	// ChunkOverlap is the overlap between consecutive chunks.
	// Non-negative and below ChunkSize.
	ChunkOverlap int

	// MaxResults is the maximum number of results per query. Positive.
	MaxResults int

	// MinScore drops results scoring below the threshold. In [0, 1].
	MinScore float64
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
		MaxResults:   DefaultMaxResults,
		MinScore:     DefaultMinScore,
	}
}

// Validate fails fast on caller contract violations rather than
// letting them surface as silently wrong offsets later.
func (s Settings) Validate() error {
	if s.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidConfig, s.ChunkSize)
	}
	if s.ChunkOverlap < 0 {
		return fmt.Errorf("%w: chunk overlap must be non-negative, got %d", ErrInvalidConfig, s.ChunkOverlap)
	}
	if s.ChunkOverlap >= s.ChunkSize {
		return fmt.Errorf("%w: chunk overlap %d must be below chunk size %d", ErrInvalidConfig, s.ChunkOverlap, s.ChunkSize)
	}
	if s.MaxResults <= 0 {
		return fmt.Errorf("%w: max results must be positive, got %d", ErrInvalidConfig, s.MaxResults)
	}
	if s.MinScore < 0 || s.MinScore > 1 {
		return fmt.Errorf("%w: min score must be in [0, 1], got %g", ErrInvalidConfig, s.MinScore)
	}
	return nil
}

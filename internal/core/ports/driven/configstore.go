package driven

import "github.com/custodia-labs/ragkit/internal/core/domain"

// ConfigStore provides application configuration.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	GetInt(key string) int

	// GetFloat retrieves a float configuration value.
	GetFloat(key string) float64

	// Sources returns the configured document sources.
	Sources() []domain.SourceConfig

	// Set stores a configuration value and persists it.
	Set(key string, value any) error
}

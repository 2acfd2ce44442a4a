package domain

// SourceConfig represents a configured document source.
// Each source produces documents via a connector of the given type.
type SourceConfig struct {
	// ID is the unique identifier for the source.
	ID string

	// Type identifies the connector type (e.g. "filesystem", "api").
	Type string

	// Name is the human-readable name for this source.
	Name string

	// Config contains connector-specific configuration.
	Config map[string]string
}

// Setting returns a connector-specific configuration value, or "" if unset.
func (s SourceConfig) Setting(key string) string {
	if s.Config == nil {
		return ""
	}
	return s.Config[key]
}

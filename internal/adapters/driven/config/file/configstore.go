// Package file provides a TOML-backed configuration store.
package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML. Configuration is stored in a TOML file within the ragkit
// config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.ragkit/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".ragkit")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}

	// Load existing data if file exists
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	// TOML integers are parsed as int64
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// GetFloat retrieves a float configuration value.
func (s *ConfigStore) GetFloat(key string) float64 {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

// Sources returns the configured document sources, parsed from the
// [[sources]] array of tables.
func (s *ConfigStore) Sources() []domain.SourceConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data["sources"].([]any)
	if !ok {
		return nil
	}

	sources := make([]domain.SourceConfig, 0, len(raw))
	for _, item := range raw {
		table, ok := item.(map[string]any)
		if !ok {
			continue
		}

		src := domain.SourceConfig{
			ID:   stringValue(table, "id"),
			Type: stringValue(table, "type"),
			Name: stringValue(table, "name"),
		}
		if cfg, ok := table["config"].(map[string]any); ok {
			src.Config = make(map[string]string, len(cfg))
			for k, v := range cfg {
				if sv, ok := v.(string); ok {
					src.Config[k] = sv
				}
			}
		}
		sources = append(sources, src)
	}
	return sources
}

// Set stores a configuration value and persists immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet - that's fine, start empty
			s.data = make(map[string]any)
			return nil
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	if loaded == nil {
		loaded = make(map[string]any)
	}
	s.data = loaded
	return nil
}

// Path returns the config file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// stringValue extracts a string from a decoded TOML table.
func stringValue(table map[string]any, key string) string {
	v, _ := table[key].(string)
	return v
}

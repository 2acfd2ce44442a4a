// Package filesystem provides a Source backed by a local directory tree.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driven"
)

// Type is the connector type identifier.
const Type = "filesystem"

// Ensure Connector implements the interfaces.
var (
	_ driven.Source  = (*Connector)(nil)
	_ driven.Watcher = (*Connector)(nil)
)

// Connector reads documents from a directory tree.
// Hidden files and directories are skipped.
type Connector struct {
	sourceID string
	rootPath string
	ids      driven.IDGenerator

	mu        sync.Mutex
	connected bool

	// idsByPath keeps document IDs stable across fetches for the
	// lifetime of the connector.
	idsByPath map[string]string
}

// New creates a filesystem connector from source configuration.
// The "path" config key names the root directory.
func New(cfg domain.SourceConfig, ids driven.IDGenerator) (*Connector, error) {
	rootPath := cfg.Setting("path")
	if rootPath == "" {
		return nil, fmt.Errorf("%w: filesystem source %q requires a path", domain.ErrInvalidConfig, cfg.ID)
	}

	return &Connector{
		sourceID:  cfg.ID,
		rootPath:  rootPath,
		ids:       ids,
		idsByPath: make(map[string]string),
	}, nil
}

// ID returns the configured source ID.
func (c *Connector) ID() string {
	return c.sourceID
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return Type
}

// Connect verifies the root path exists and is a directory.
func (c *Connector) Connect(_ context.Context) error {
	info, err := os.Stat(c.rootPath)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrSourceUnavailable, c.rootPath)
	}

	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()
	return nil
}

// Disconnect marks the connector as disconnected.
func (c *Connector) Disconnect(_ context.Context) error {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
	return nil
}

// IsConnected reports whether Connect has succeeded.
func (c *Connector) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// FetchDocuments walks the directory tree and returns one document
// per readable file.
func (c *Connector) FetchDocuments(ctx context.Context) ([]domain.Document, error) {
	if !c.IsConnected() {
		return nil, domain.ErrNotConnected
	}

	var docs []domain.Document
	err := filepath.WalkDir(c.rootPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if isHidden(entry.Name()) && path != c.rootPath {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}

		doc, err := c.readDocument(path)
		if err != nil {
			return err
		}
		docs = append(docs, *doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", c.rootPath, err)
	}

	return docs, nil
}

// FetchDocument returns a single document by ID.
// IDs are assigned during fetching, so the tree is walked on demand
// when the ID is not yet known.
func (c *Connector) FetchDocument(ctx context.Context, id string) (*domain.Document, error) {
	if !c.IsConnected() {
		return nil, domain.ErrNotConnected
	}

	path, ok := c.pathForID(id)
	if !ok {
		// ID not seen yet - walk to populate the mapping.
		if _, err := c.FetchDocuments(ctx); err != nil {
			return nil, err
		}
		if path, ok = c.pathForID(id); !ok {
			return nil, domain.ErrNotFound
		}
	}

	return c.readDocument(path)
}

// DocumentCount returns the number of readable files in the tree.
func (c *Connector) DocumentCount(_ context.Context) (int, error) {
	if !c.IsConnected() {
		return 0, domain.ErrNotConnected
	}

	count := 0
	err := filepath.WalkDir(c.rootPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if isHidden(entry.Name()) && path != c.rootPath {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walk %s: %w", c.rootPath, err)
	}
	return count, nil
}

// readDocument loads one file into a Document.
func (c *Connector) readDocument(path string) (*domain.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	relPath, err := filepath.Rel(c.rootPath, path)
	if err != nil {
		relPath = path
	}

	docType, language := classify(path)

	meta := domain.Metadata{
		domain.MetaSource:    c.sourceID,
		domain.MetaPath:      relPath,
		domain.MetaCreatedAt: info.ModTime(),
		domain.MetaUpdatedAt: info.ModTime(),
	}
	if language != "" {
		meta[domain.MetaLanguage] = language
	}

	return &domain.Document{
		ID:       c.idForPath(path),
		SourceID: c.sourceID,
		Type:     docType,
		Title:    titleFromPath(path),
		Content:  string(content),
		Metadata: meta,
	}, nil
}

// idForPath returns the stable document ID for a path, assigning a
// new one on first sight.
func (c *Connector) idForPath(path string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.idsByPath[path]; ok {
		return id
	}
	id := c.ids.NewID()
	c.idsByPath[path] = id
	return id
}

// pathForID reverses the path-to-ID mapping.
func (c *Connector) pathForID(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for path, known := range c.idsByPath {
		if known == id {
			return path, true
		}
	}
	return "", false
}

// isHidden reports whether a file or directory name is hidden.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// titleFromPath extracts a human-readable title from a file path.
func titleFromPath(path string) string {
	filename := filepath.Base(path)
	if ext := filepath.Ext(filename); ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}

// codeLanguages maps file extensions to language identifiers for
// metadata. Extensions listed here classify the file as code.
var codeLanguages = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".java": "java",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".rs":   "rust",
	".rb":   "ruby",
	".sh":   "shell",
	".sql":  "sql",
}

// classify maps a file path to a document type and optional language.
func classify(path string) (domain.DocumentType, string) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return domain.TypeMarkdown, ""
	case ".json":
		return domain.TypeJSON, ""
	case ".html", ".htm":
		return domain.TypeHTML, ""
	}
	if language, ok := codeLanguages[ext]; ok {
		return domain.TypeCode, language
	}
	return domain.TypeText, ""
}

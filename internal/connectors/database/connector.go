// Package database provides a Source backed by a SQLite database.
//
// The origin table holds one row per document with id, type, title,
// content and a JSON metadata column.
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driven"
)

// Type is the connector type identifier.
const Type = "database"

// defaultTable is the table read when none is configured.
const defaultTable = "documents"

// tablePattern restricts table names to identifiers, since table
// names cannot be bound as query parameters.
var tablePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Ensure Connector implements the interface.
var _ driven.Source = (*Connector)(nil)

// Connector reads documents from a SQLite table.
type Connector struct {
	sourceID string
	path     string
	table    string

	mu        sync.Mutex
	db        *sql.DB
	connected bool
}

// New creates a database connector from source configuration.
// The "path" config key names the SQLite file; "table" optionally
// overrides the table name.
func New(cfg domain.SourceConfig) (*Connector, error) {
	path := cfg.Setting("path")
	if path == "" {
		return nil, fmt.Errorf("%w: database source %q requires a path", domain.ErrInvalidConfig, cfg.ID)
	}

	table := cfg.Setting("table")
	if table == "" {
		table = defaultTable
	}
	if !tablePattern.MatchString(table) {
		return nil, fmt.Errorf("%w: database source %q table name %q", domain.ErrInvalidConfig, cfg.ID, table)
	}

	return &Connector{
		sourceID: cfg.ID,
		path:     path,
		table:    table,
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

// Connect opens the database and verifies it is reachable.
func (c *Connector) Connect(ctx context.Context) error {
	db, err := sql.Open("sqlite", c.path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", domain.ErrSourceUnavailable, c.path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("%w: ping %s: %w", domain.ErrSourceUnavailable, c.path, err)
	}

	c.mu.Lock()
	c.db = db
	c.connected = true
	c.mu.Unlock()
	return nil
}

// Disconnect closes the database.
func (c *Connector) Disconnect(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.connected = false
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// IsConnected reports whether Connect has succeeded.
func (c *Connector) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// handle returns the open database, or ErrNotConnected.
func (c *Connector) handle() (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected || c.db == nil {
		return nil, domain.ErrNotConnected
	}
	return c.db, nil
}

// FetchDocuments reads every row of the document table.
func (c *Connector) FetchDocuments(ctx context.Context) ([]domain.Document, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT id, type, title, content, metadata FROM %s ORDER BY id", c.table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", domain.ErrSourceUnavailable, c.table, err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := c.scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate %s: %w", domain.ErrSourceUnavailable, c.table, err)
	}

	return docs, nil
}

// FetchDocument reads a single row by ID.
func (c *Connector) FetchDocument(ctx context.Context, id string) (*domain.Document, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT id, type, title, content, metadata FROM %s WHERE id = ?", c.table)
	doc, err := c.scanDocument(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// DocumentCount returns the number of rows in the document table.
func (c *Connector) DocumentCount(ctx context.Context) (int, error) {
	db, err := c.handle()
	if err != nil {
		return 0, err
	}

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", c.table)
	if err := db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count %s: %w", domain.ErrSourceUnavailable, c.table, err)
	}
	return count, nil
}

// rowScanner abstracts over sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanDocument converts one table row to a domain document.
func (c *Connector) scanDocument(row rowScanner) (*domain.Document, error) {
	var id, docType, content string
	var title, metaJSON sql.NullString

	if err := row.Scan(&id, &docType, &title, &content, &metaJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan row: %w", err)
	}

	meta := domain.Metadata{}
	if metaJSON.Valid && metaJSON.String != "" {
		if err := json.Unmarshal([]byte(metaJSON.String), &meta); err != nil {
			return nil, fmt.Errorf("decode metadata for %s: %w", id, err)
		}
	}
	if meta.Source() == "" {
		meta[domain.MetaSource] = c.sourceID
	}

	parsed := domain.DocumentType(docType)
	if !parsed.IsValid() {
		parsed = domain.TypeText
	}

	return &domain.Document{
		ID:       id,
		SourceID: c.sourceID,
		Type:     parsed,
		Title:    title.String,
		Content:  content,
		Metadata: meta,
	}, nil
}

// Package api provides a Source backed by an HTTP JSON document API.
//
// The origin is expected to serve a JSON array of documents at the
// configured URL and a single document at <url>/<id>.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driven"
)

// Type is the connector type identifier.
const Type = "api"

// requestTimeout bounds each HTTP request.
const requestTimeout = 30 * time.Second

// Ensure Connector implements the interface.
var _ driven.Source = (*Connector)(nil)

// Connector fetches documents from an HTTP JSON endpoint.
// Requests are rate limited to stay polite towards the origin.
type Connector struct {
	sourceID string
	endpoint string
	client   *http.Client
	limiter  *RateLimiter

	mu        sync.Mutex
	connected bool
}

// documentPayload is the wire shape of one document.
type documentPayload struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Title    string         `json:"title,omitempty"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// New creates an API connector from source configuration.
// The "url" config key names the document collection endpoint.
func New(cfg domain.SourceConfig) (*Connector, error) {
	endpoint := cfg.Setting("url")
	if endpoint == "" {
		return nil, fmt.Errorf("%w: api source %q requires a url", domain.ErrInvalidConfig, cfg.ID)
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("%w: api source %q url: %w", domain.ErrInvalidConfig, cfg.ID, err)
	}

	return &Connector{
		sourceID: cfg.ID,
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: requestTimeout},
		limiter:  NewRateLimiter(DefaultRateLimit),
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

// Connect marks the connector ready. The endpoint was validated at
// construction; no request is made until the first fetch.
func (c *Connector) Connect(_ context.Context) error {
	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()
	return nil
}

// Disconnect marks the connector as disconnected and drops idle
// connections.
func (c *Connector) Disconnect(_ context.Context) error {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
	c.client.CloseIdleConnections()
	return nil
}

// IsConnected reports whether Connect has succeeded.
func (c *Connector) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// FetchDocuments retrieves the full document collection.
func (c *Connector) FetchDocuments(ctx context.Context) ([]domain.Document, error) {
	if !c.IsConnected() {
		return nil, domain.ErrNotConnected
	}

	var payloads []documentPayload
	if err := c.getJSON(ctx, c.endpoint, &payloads); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	docs := make([]domain.Document, 0, len(payloads))
	for _, p := range payloads {
		docs = append(docs, c.toDocument(p))
	}
	return docs, nil
}

// FetchDocument retrieves a single document by ID.
func (c *Connector) FetchDocument(ctx context.Context, id string) (*domain.Document, error) {
	if !c.IsConnected() {
		return nil, domain.ErrNotConnected
	}

	var payload documentPayload
	err := c.getJSON(ctx, c.endpoint+"/"+url.PathEscape(id), &payload)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	doc := c.toDocument(payload)
	return &doc, nil
}

// DocumentCount returns the size of the document collection.
func (c *Connector) DocumentCount(ctx context.Context) (int, error) {
	docs, err := c.FetchDocuments(ctx)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

// statusError reports an unexpected HTTP status.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// isNotFound reports whether the error is an HTTP 404.
func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.code == http.StatusNotFound
}

// getJSON performs a rate-limited GET and decodes the JSON body.
func (c *Connector) getJSON(ctx context.Context, target string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.RecordRateLimitError(retryAfterSeconds(resp))
		return fmt.Errorf("get %s: %w", target, &statusError{code: resp.StatusCode})
	}
	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", target, err)
	}
	return nil
}

// retryAfterSeconds parses the Retry-After header, returning 0 when
// absent or malformed.
func retryAfterSeconds(resp *http.Response) int {
	var seconds int
	if _, err := fmt.Sscanf(resp.Header.Get("Retry-After"), "%d", &seconds); err != nil {
		return 0
	}
	return seconds
}

// toDocument converts a wire payload to a domain document,
// annotating metadata with the source ID.
func (c *Connector) toDocument(p documentPayload) domain.Document {
	docType := domain.DocumentType(p.Type)
	if !docType.IsValid() {
		docType = domain.TypeText
	}

	meta := domain.Metadata(p.Metadata).Clone()
	if meta == nil {
		meta = domain.Metadata{}
	}
	if meta.Source() == "" {
		meta[domain.MetaSource] = c.sourceID
	}

	return domain.Document{
		ID:       p.ID,
		SourceID: c.sourceID,
		Type:     docType,
		Title:    p.Title,
		Content:  p.Content,
		Metadata: meta,
	}
}

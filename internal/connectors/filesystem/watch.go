package filesystem

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/logger"
)

// Watch delivers re-read documents for files created or written under
// the root until the context is cancelled.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.Document, error) {
	if !c.IsConnected() {
		return nil, domain.ErrNotConnected
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(c.rootPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", c.rootPath, err)
	}

	docs := make(chan domain.Document)

	go func() {
		defer close(docs)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				if isHidden(filepath.Base(event.Name)) {
					continue
				}

				doc, err := c.readDocument(event.Name)
				if err != nil {
					logger.Debug("Watch: skipping %s: %v", event.Name, err)
					continue
				}

				select {
				case docs <- *doc:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watch error: %v", err)
			}
		}
	}()

	return docs, nil
}

// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/grimoire/internal/core/boss"
	"github.com/taibuivan/grimoire/internal/core/item"
	"github.com/taibuivan/grimoire/internal/platform/apperr"
)

// State is the load state of a [Catalog].
type State int

const (
	// StatePending is the state before the load finishes. Readers see an
	// empty catalog.
	StatePending State = iota
	// StateReady means both collections are loaded.
	StateReady
	// StateFailed means the load failed; readers get the load error.
	StateFailed
)

// String returns the state name used in logs and health output.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "pending"
	}
}

// # Catalog

// Catalog owns the loaded dataset. It implements [item.Dataset] and
// [boss.Dataset]. Reads are safe while the load runs in another goroutine.
type Catalog struct {
	source Source
	logger *slog.Logger

	once     sync.Once
	mu       sync.RWMutex
	state    State
	document *Document
	err      error
}

// New returns a pending catalog over source.
func New(source Source, logger *slog.Logger) *Catalog {
	return &Catalog{source: source, logger: logger}
}

/*
Load fetches the document. Only the first call fetches; later calls return
the first outcome. A failure is logged here and kept for the readers, never
returned as a panic or retried.
*/
func (c *Catalog) Load(ctx context.Context) error {
	c.once.Do(func() {
		document, err := Load(ctx, c.source)

		c.mu.Lock()
		defer c.mu.Unlock()

		if err != nil {
			c.state = StateFailed
			c.err = err
			c.logger.ErrorContext(ctx, "catalog_load_failed",
				slog.String("source", c.source.Describe()),
				slog.Any("error", apperr.As(err).Cause),
			)
			return
		}

		c.state = StateReady
		c.document = document
		c.logger.InfoContext(ctx, "catalog_loaded",
			slog.String("source", c.source.Describe()),
			slog.Int("items", len(document.Items)),
			slog.Int("bosses", len(document.Bosses)),
		)
	})

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// State returns the current load state.
func (c *Catalog) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Items implements [item.Dataset]. A pending catalog has no items yet.
func (c *Catalog) Items(_ context.Context) ([]item.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.state {
	case StateReady:
		return c.document.Items, nil
	case StateFailed:
		return nil, c.err
	default:
		return []item.Item{}, nil
	}
}

// Bosses implements [boss.Dataset]. A pending catalog has no bosses yet.
func (c *Catalog) Bosses(_ context.Context) ([]boss.Boss, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.state {
	case StateReady:
		return c.document.Bosses, nil
	case StateFailed:
		return nil, c.err
	default:
		return []boss.Boss{}, nil
	}
}

// Check reports readiness for the health endpoint.
func (c *Catalog) Check(_ context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.state {
	case StateReady:
		return nil
	case StateFailed:
		return c.err
	default:
		return apperr.ServiceUnavailable("Catalog is still loading")
	}
}

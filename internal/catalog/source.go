// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/grimoire/internal/platform/database/schema"
	"github.com/taibuivan/grimoire/internal/platform/dberr"
)

// Source fetches the raw dataset document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	// Describe names the source in logs.
	Describe() string
}

// # File Source

// FileSource reads the document from a fixed path.
type FileSource struct {
	Path string
}

// Fetch implements [Source].
func (s FileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", s.Path, err)
	}
	return data, nil
}

// Describe implements [Source].
func (s FileSource) Describe() string { return "file:" + s.Path }

// # HTTP Source

// HTTPSource fetches the document with a GET request. A nil Client means
// [http.DefaultClient].
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Fetch implements [Source]. Any status outside 2xx is a failure.
func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch %s: %w", s.URL, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("catalog: fetch %s: unexpected status %d", s.URL, response.StatusCode)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("catalog: read body: %w", err)
	}
	return data, nil
}

// Describe implements [Source].
func (s HTTPSource) Describe() string { return "http:" + s.URL }

// # PostgreSQL Source

// Querier is the subset of pgxpool.Pool the PostgreSQL source needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresSource reads the document body from the catalog document table.
type PostgresSource struct {
	DB   Querier
	Name string
}

// Fetch implements [Source].
func (s PostgresSource) Fetch(ctx context.Context) ([]byte, error) {
	table := schema.CatalogDocument
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, table.Body, table.Table, table.Name)

	var body []byte
	if err := s.DB.QueryRow(ctx, query, s.Name).Scan(&body); err != nil {
		return nil, dberr.Wrap(err, "Catalog document")
	}
	return body, nil
}

// Describe implements [Source].
func (s PostgresSource) Describe() string { return "postgres:" + s.Name }

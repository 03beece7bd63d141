// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog loads the game dataset and owns its load state.

Core Responsibility:

  - Sources: fetch the raw document from a file, an HTTP endpoint or a
    PostgreSQL row.
  - Decoding: both collections load or neither does.
  - State: a [Catalog] moves once from pending to ready or failed and serves
    the immutable collections to the item and boss services.

Exactly one fetch happens per process; there is no retry and no timeout.
*/
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/taibuivan/grimoire/internal/core/boss"
	"github.com/taibuivan/grimoire/internal/core/item"
	"github.com/taibuivan/grimoire/internal/platform/apperr"
)

// Document is the decoded dataset. It is never modified after [Load].
type Document struct {
	Items  []item.Item `json:"items"`
	Bosses []boss.Boss `json:"bosses"`
}

type wireDocument struct {
	Items  *[]item.Item `json:"items"`
	Bosses *[]boss.Boss `json:"bosses"`
}

// Decode parses a dataset document. A missing collection fails the whole
// document.
func Decode(data []byte) (*Document, error) {
	var wire wireDocument
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&wire); err != nil {
		return nil, fmt.Errorf("catalog: decode document: %w", err)
	}
	if wire.Items == nil {
		return nil, errors.New("catalog: document has no items collection")
	}
	if wire.Bosses == nil {
		return nil, errors.New("catalog: document has no bosses collection")
	}
	return &Document{Items: *wire.Items, Bosses: *wire.Bosses}, nil
}

/*
Load fetches and decodes the document exactly once.

Returns:
  - *Document: both collections
  - error: apperr.DatasetUnavailable for any fetch or decode failure
*/
func Load(ctx context.Context, source Source) (*Document, error) {
	data, err := source.Fetch(ctx)
	if err != nil {
		return nil, apperr.DatasetUnavailable(err)
	}

	document, err := Decode(data)
	if err != nil {
		return nil, apperr.DatasetUnavailable(err)
	}
	return document, nil
}

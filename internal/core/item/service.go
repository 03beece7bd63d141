// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"log/slog"

	"github.com/taibuivan/grimoire/internal/core/entity"
	"github.com/taibuivan/grimoire/internal/platform/apperr"
)

// Dataset exposes the loaded items collection. It returns an
// [apperr.CodeDatasetUnavailable] error when the catalog failed to load.
type Dataset interface {
	Items(context context.Context) ([]Item, error)
}

// # Service Layer

// Service runs item queries against the loaded dataset.
type Service struct {
	dataset Dataset
	logger  *slog.Logger
}

// NewService constructs a new [Service] over dataset.
func NewService(dataset Dataset, logger *slog.Logger) *Service {
	return &Service{dataset: dataset, logger: logger}
}

/*
List evaluates query against the full dataset.

Returns:
  - []Item: the visible subset, a new slice on every call
  - error: dataset unavailable
*/
func (service *Service) List(context context.Context, query Query) ([]Item, error) {
	items, err := service.dataset.Items(context)
	if err != nil {
		return nil, err
	}

	visible := Filter(items, query)
	service.logger.DebugContext(context, "items_filtered",
		slog.Int("total", len(items)),
		slog.Int("visible", len(visible)),
	)
	return visible, nil
}

/*
Get finds one item by identifier.

Returns:
  - *Item: the item
  - error: apperr.NotFound when no item has id, or dataset unavailable
*/
func (service *Service) Get(context context.Context, id int) (*Item, error) {
	items, err := service.dataset.Items(context)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			found := items[i]
			return &found, nil
		}
	}
	return nil, apperr.NotFound("Item")
}

// Options returns the category and rarity values present in the dataset,
// in first-seen order, to populate the filter inputs.
func (service *Service) Options(context context.Context) (categories, rarities []string, err error) {
	items, err := service.dataset.Items(context)
	if err != nil {
		return nil, nil, err
	}

	categories = entity.Distinct(items, func(item Item) string { return item.Category })
	rarities = entity.Distinct(items, func(item Item) string { return item.Rarity })
	return categories, rarities, nil
}

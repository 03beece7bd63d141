// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package boss

import (
	"context"
	"log/slog"

	"golang.org/x/text/collate"

	"github.com/taibuivan/grimoire/internal/core/entity"
	"github.com/taibuivan/grimoire/internal/platform/apperr"
	"github.com/taibuivan/grimoire/internal/platform/ctxutil"
)

// Dataset exposes the loaded bosses collection. It returns an
// [apperr.CodeDatasetUnavailable] error when the catalog failed to load.
type Dataset interface {
	Bosses(context context.Context) ([]Boss, error)
}

// # Service Layer

// Service runs boss queries against the loaded dataset.
type Service struct {
	dataset Dataset
	logger  *slog.Logger
}

// NewService constructs a new [Service] over dataset.
func NewService(dataset Dataset, logger *slog.Logger) *Service {
	return &Service{dataset: dataset, logger: logger}
}

/*
List evaluates query against the full dataset. Alphabetical order follows
the collation rules of the request language.

Returns:
  - []Boss: the visible subset, sorted, a new slice on every call
  - error: dataset unavailable
*/
func (service *Service) List(context context.Context, query Query) ([]Boss, error) {
	bosses, err := service.dataset.Bosses(context)
	if err != nil {
		return nil, err
	}

	collator := collate.New(ctxutil.GetLanguage(context))
	visible := Filter(bosses, query, collator)

	service.logger.DebugContext(context, "bosses_filtered",
		slog.Int("total", len(bosses)),
		slog.Int("visible", len(visible)),
		slog.String("order", query.SortMode()),
	)
	return visible, nil
}

/*
Get finds one boss by identifier.

Returns:
  - *Boss: the boss
  - error: apperr.NotFound when no boss has id, or dataset unavailable
*/
func (service *Service) Get(context context.Context, id int) (*Boss, error) {
	bosses, err := service.dataset.Bosses(context)
	if err != nil {
		return nil, err
	}

	for i := range bosses {
		if bosses[i].ID == id {
			found := bosses[i]
			return &found, nil
		}
	}
	return nil, apperr.NotFound("Boss")
}

// Difficulties returns the difficulty values present in the dataset, in
// first-seen order.
func (service *Service) Difficulties(context context.Context) ([]string, error) {
	bosses, err := service.dataset.Bosses(context)
	if err != nil {
		return nil, err
	}
	return entity.Distinct(bosses, func(boss Boss) string { return boss.Difficulty }), nil
}

// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package item implements the item catalog: the entity, its query state, the
filter engine, the service over the loaded dataset and the HTTP handlers.

Core Responsibility:

  - Catalog: items classified by category and rarity, with optional combat stats.
  - Discovery: free-text search plus exact category/rarity filters.
  - Presentation: card and detail view models for the render package.

Items have no sort mode; the visible subset keeps dataset order.
*/
package item

import (
	"net/url"

	"github.com/taibuivan/grimoire/internal/core/entity"
	"github.com/taibuivan/grimoire/internal/platform/constants"
)

// # Core Entities

// Item is one catalog record of the items collection.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Rarity      string `json:"rarity"`

	// # Optional Stats
	Damage  entity.Stat `json:"damage,omitzero"`
	Defense entity.Stat `json:"defense,omitzero"`
	Speed   entity.Stat `json:"speed,omitzero"`
}

// # Query State

// Query parameter names of the item filters.
const (
	ParamCategory = "category"
	ParamRarity   = "rarity"
)

// Query is the current item filter state.
type Query struct {
	Term     string `json:"q"`
	Category string `json:"category"`
	Rarity   string `json:"rarity"`
}

// DefaultQuery is the unfiltered state: empty term, every category and rarity.
func DefaultQuery() Query {
	return Query{Category: entity.All, Rarity: entity.All}
}

// Reset restores the defaults.
func (q *Query) Reset() {
	*q = DefaultQuery()
}

// QueryFromValues reads the filter inputs from a query string. Missing enum
// inputs mean "all".
func QueryFromValues(values url.Values) Query {
	return Query{
		Term:     values.Get(constants.ParamTerm),
		Category: entity.EnumOrAll(values.Get(ParamCategory)),
		Rarity:   entity.EnumOrAll(values.Get(ParamRarity)),
	}
}

// Values encodes the query, leaving out inputs at their default.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Term != "" {
		values.Set(constants.ParamTerm, q.Term)
	}
	if q.Category != entity.All && q.Category != "" {
		values.Set(ParamCategory, q.Category)
	}
	if q.Rarity != entity.All && q.Rarity != "" {
		values.Set(ParamRarity, q.Rarity)
	}
	return values
}

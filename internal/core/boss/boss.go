// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package boss implements the boss catalog: the entity, its query state, the
filter and sort engine, the service over the loaded dataset and the HTTP
handlers.

Core Responsibility:

  - Catalog: bosses classified by difficulty and placed in progression order.
  - Discovery: free-text search over name, description and summon method,
    an exact difficulty filter and a sort mode.
  - Presentation: card and detail view models for the render package.
*/
package boss

import (
	"net/url"

	"github.com/taibuivan/grimoire/internal/core/entity"
	"github.com/taibuivan/grimoire/internal/platform/constants"
)

// # Core Entities

// Boss is one catalog record of the bosses collection.
type Boss struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Difficulty  string  `json:"difficulty"`
	Order       float64 `json:"order"`
	Summon      string  `json:"summon,omitempty"`

	// # Optional Stats
	Health  entity.Stat `json:"health,omitzero"`
	Defense entity.Stat `json:"defense,omitzero"`
	Damage  entity.Stat `json:"damage,omitzero"`

	Tips    string `json:"tips,omitempty"`
	Rewards string `json:"rewards,omitempty"`
}

// # Query State

// Query parameter names of the boss filters.
const (
	ParamDifficulty = "difficulty"
	ParamOrder      = "order"
)

// Sort modes.
const (
	SortProgression  = "progression"
	SortAlphabetical = "alphabetical"
)

// Query is the current boss filter and sort state.
type Query struct {
	Term       string `json:"q"`
	Difficulty string `json:"difficulty"`
	Order      string `json:"order"`
}

// DefaultQuery is the unfiltered state in progression order.
func DefaultQuery() Query {
	return Query{Difficulty: entity.All, Order: SortProgression}
}

// Reset restores the defaults.
func (q *Query) Reset() {
	*q = DefaultQuery()
}

// SortMode returns the effective sort. Anything but [SortAlphabetical] is
// progression order.
func (q Query) SortMode() string {
	if q.Order == SortAlphabetical {
		return SortAlphabetical
	}
	return SortProgression
}

// QueryFromValues reads the filter inputs from a query string.
func QueryFromValues(values url.Values) Query {
	query := Query{
		Term:       values.Get(constants.ParamTerm),
		Difficulty: entity.EnumOrAll(values.Get(ParamDifficulty)),
		Order:      values.Get(ParamOrder),
	}
	query.Order = query.SortMode()
	return query
}

// Values encodes the query, leaving out inputs at their default.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Term != "" {
		values.Set(constants.ParamTerm, q.Term)
	}
	if q.Difficulty != entity.All && q.Difficulty != "" {
		values.Set(ParamDifficulty, q.Difficulty)
	}
	if q.SortMode() != SortProgression {
		values.Set(ParamOrder, q.SortMode())
	}
	return values
}

// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package entity holds what the item and boss catalogs share: the optional
stat value and the predicates the filter engines are composed from.

Core Responsibility:

  - Stat: an optional number-or-text field with falsy elision.
  - Predicates: case-insensitive term matching and exact enum matching
    with the "all" sentinel.
*/
package entity

import (
	"strings"
)

// All is the enum filter sentinel that disables a filter.
const All = "all"

// NormalizeTerm lowercases a search term once per evaluation.
func NormalizeTerm(term string) string {
	return strings.ToLower(term)
}

// MatchesTerm reports whether any field contains the normalized term,
// ignoring case. An empty term matches everything.
func MatchesTerm(normalizedTerm string, fields ...string) bool {
	if normalizedTerm == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), normalizedTerm) {
			return true
		}
	}
	return false
}

// MatchesEnum reports whether value passes an enum filter: the sentinel
// [All] passes everything, otherwise the comparison is exact and
// case-sensitive.
func MatchesEnum(filter, value string) bool {
	return filter == All || filter == value
}

// EnumOrAll returns value, or [All] when value is empty.
func EnumOrAll(value string) string {
	if value == "" {
		return All
	}
	return value
}

// Distinct returns the non-empty values of field in first-seen order.
func Distinct[T any](entities []T, field func(T) string) []string {
	seen := make(map[string]struct{}, len(entities))
	values := make([]string, 0)
	for _, entity := range entities {
		value := field(entity)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	return values
}

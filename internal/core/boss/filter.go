// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package boss

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"

	"github.com/taibuivan/grimoire/internal/core/entity"
	"github.com/taibuivan/grimoire/pkg/slice"
)

// Filter returns the visible subset of bosses for query, sorted by the
// query's sort mode. Sorting runs after filtering on every call and is
// stable, so ties keep dataset order. The dataset slice is never modified.
//
// collator compares names in alphabetical mode. A collator is not safe for
// concurrent use; pass one per evaluation.
func Filter(bosses []Boss, query Query, collator *collate.Collator) []Boss {
	term := entity.NormalizeTerm(query.Term)
	difficulty := entity.EnumOrAll(query.Difficulty)

	visible := slice.Filter(bosses, func(boss Boss) bool {
		return entity.MatchesTerm(term, boss.Name, boss.Description, boss.Summon) &&
			entity.MatchesEnum(difficulty, boss.Difficulty)
	})

	switch query.SortMode() {
	case SortAlphabetical:
		slices.SortStableFunc(visible, func(a, b Boss) int {
			return collator.CompareString(a.Name, b.Name)
		})
	default:
		slices.SortStableFunc(visible, func(a, b Boss) int {
			return cmp.Compare(a.Order, b.Order)
		})
	}
	return visible
}

// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"github.com/taibuivan/grimoire/internal/core/entity"
	"github.com/taibuivan/grimoire/pkg/slice"
)

// Filter returns the visible subset of items for query, in dataset order.
// All predicates must pass: the term against name or description, and the
// category and rarity enums. The dataset slice is never modified.
func Filter(items []Item, query Query) []Item {
	term := entity.NormalizeTerm(query.Term)

	return slice.Filter(items, func(item Item) bool {
		return entity.MatchesTerm(term, item.Name, item.Description) &&
			entity.MatchesEnum(entity.EnumOrAll(query.Category), item.Category) &&
			entity.MatchesEnum(entity.EnumOrAll(query.Rarity), item.Rarity)
	})
}

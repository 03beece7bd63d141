// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/grimoire/internal/core/entity"
	"github.com/taibuivan/grimoire/internal/core/item"
)

func fixture() []item.Item {
	return []item.Item{
		{ID: 1, Name: "Iron Sword", Description: "A basic blade", Category: "Weapon", Rarity: "Common", Damage: entity.NumberStat(8)},
		{ID: 2, Name: "Gold Shield", Description: "Shiny", Category: "Armor", Rarity: "Rare", Defense: entity.NumberStat(5)},
		{ID: 3, Name: "Band of Regeneration", Description: "Slowly regenerates life", Category: "Accessory", Rarity: "Rare"},
	}
}

func ids(items []item.Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

/*
TestFilter walks the filter combinations over a small catalog.
*/
func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query item.Query
		want  []int
	}{
		{"defaults_show_everything", item.DefaultQuery(), []int{1, 2, 3}},
		{"term_on_name", item.Query{Term: "sword", Category: entity.All, Rarity: entity.All}, []int{1}},
		{"term_is_case_insensitive", item.Query{Term: "SHIELD", Category: entity.All, Rarity: entity.All}, []int{2}},
		{"term_on_description", item.Query{Term: "regenerates", Category: entity.All, Rarity: entity.All}, []int{3}},
		{"category_exact", item.Query{Category: "Armor", Rarity: entity.All}, []int{2}},
		{"category_is_case_sensitive", item.Query{Category: "armor", Rarity: entity.All}, []int{}},
		{"rarity_keeps_dataset_order", item.Query{Category: entity.All, Rarity: "Rare"}, []int{2, 3}},
		{"all_predicates_must_pass", item.Query{Term: "shield", Category: "Weapon", Rarity: entity.All}, []int{}},
		{"empty_enums_mean_all", item.Query{Term: "o"}, []int{1, 2, 3}},
		{"no_match", item.Query{Term: "axe", Category: entity.All, Rarity: entity.All}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(item.Filter(fixture(), tt.query)))
		})
	}
}

/*
TestFilter_Properties checks that the result is a deterministic subset and
that the input is left untouched.
*/
func TestFilter_Properties(t *testing.T) {
	items := fixture()
	query := item.Query{Term: "e", Category: entity.All, Rarity: "Rare"}

	first := item.Filter(items, query)
	second := item.Filter(items, query)

	assert.Equal(t, first, second)
	assert.Equal(t, fixture(), items)
	for _, visible := range first {
		assert.Contains(t, items, visible)
	}

	// The result never aliases the dataset.
	if len(first) > 0 {
		first[0].Name = "changed"
		assert.NotEqual(t, "changed", items[1].Name)
	}
}

/*
TestFilter_EmptyDataset returns an empty, non-nil subset.
*/
func TestFilter_EmptyDataset(t *testing.T) {
	got := item.Filter(nil, item.DefaultQuery())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

/*
TestQuery_Reset brings every input back to its initial value.
*/
func TestQuery_Reset(t *testing.T) {
	query := item.Query{Term: "sword", Category: "Weapon", Rarity: "Rare"}
	query.Reset()

	assert.Equal(t, item.DefaultQuery(), query)
	assert.Equal(t, ids(fixture()), ids(item.Filter(fixture(), query)))
}

/*
TestQuery_Values round-trips through the query string and drops defaults.
*/
func TestQuery_Values(t *testing.T) {
	assert.Empty(t, item.DefaultQuery().Values())

	query := item.Query{Term: "iron sword", Category: "Weapon", Rarity: entity.All}
	values := query.Values()
	assert.Equal(t, "Weapon", values.Get(item.ParamCategory))
	assert.False(t, values.Has(item.ParamRarity))
	assert.Equal(t, query, item.QueryFromValues(values))
}

// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grimoire/internal/core/entity"
)

/*
TestMatchesTerm covers the case-insensitive any-field substring rule.
*/
func TestMatchesTerm(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		fields []string
		want   bool
	}{
		{"empty_term_passes", "", []string{"Iron Sword"}, true},
		{"name_match", "sword", []string{"Iron Sword", "A basic blade"}, true},
		{"upper_term", "SWORD", []string{"Iron Sword"}, true},
		{"description_match", "blade", []string{"Iron Sword", "A basic blade"}, true},
		{"no_field_matches", "o", []string{"Axe", "Sharp"}, false},
		{"no_fields", "x", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := entity.MatchesTerm(entity.NormalizeTerm(tt.term), tt.fields...)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestMatchesEnum checks the sentinel and the exact, case-sensitive comparison.
*/
func TestMatchesEnum(t *testing.T) {
	assert.True(t, entity.MatchesEnum(entity.All, "Weapon"))
	assert.True(t, entity.MatchesEnum(entity.All, ""))
	assert.True(t, entity.MatchesEnum("Weapon", "Weapon"))
	assert.False(t, entity.MatchesEnum("weapon", "Weapon"))
	assert.False(t, entity.MatchesEnum("Armor", "Weapon"))
	assert.Equal(t, entity.All, entity.EnumOrAll(""))
	assert.Equal(t, "Rare", entity.EnumOrAll("Rare"))
}

/*
TestDistinct keeps first-seen order and skips empty values.
*/
func TestDistinct(t *testing.T) {
	values := []string{"Weapon", "", "Armor", "Weapon", "Accessory"}
	got := entity.Distinct(values, func(v string) string { return v })
	assert.Equal(t, []string{"Weapon", "Armor", "Accessory"}, got)
}

/*
TestStat_UnmarshalJSON verifies falsy values decode as absent.
*/
func TestStat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		present bool
		text    string
	}{
		{"number", `12`, true, "12"},
		{"decimal", `0.5`, true, "0.5"},
		{"trailing_zero", `1.50`, true, "1.5"},
		{"exponent", `1e3`, true, "1000"},
		{"negative_zero", `-0.0`, false, ""},
		{"zero", `0`, false, ""},
		{"null", `null`, false, ""},
		{"text", `"45 (Expert)"`, true, "45 (Expert)"},
		{"empty_text", `""`, false, ""},
		{"zero_text", `"0"`, true, "0"},
		{"false", `false`, false, ""},
		{"object", `{"a":1}`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stat entity.Stat
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &stat))
			assert.Equal(t, tt.present, stat.Present())
			assert.Equal(t, tt.text, stat.String())
		})
	}
}

/*
TestStat_MarshalJSON keeps numbers numeric and drops absent stats with omitzero.
*/
func TestStat_MarshalJSON(t *testing.T) {
	type record struct {
		Damage  entity.Stat `json:"damage,omitzero"`
		Defense entity.Stat `json:"defense,omitzero"`
		Speed   entity.Stat `json:"speed,omitzero"`
	}

	out, err := json.Marshal(record{
		Damage:  entity.NumberStat(12),
		Defense: entity.NumberStat(0),
		Speed:   entity.TextStat("Fast"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"damage":12,"speed":"Fast"}`, string(out))
}

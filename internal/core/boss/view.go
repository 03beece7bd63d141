// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package boss

import (
	"golang.org/x/text/language"

	"github.com/taibuivan/grimoire/internal/platform/constants"
	"github.com/taibuivan/grimoire/internal/platform/render"
)

// # View Models

// CardView is one grid card.
type CardView struct {
	ID          int
	Href        string
	Order       float64
	Name        string
	Description string
	Difficulty  string
	Summon      string
	Icon        render.IconView
}

// DetailView is the expanded boss shown in the overlay.
type DetailView struct {
	ID          int
	Name        string
	Description string
	Difficulty  string
	Order       float64
	Summon      string
	Icon        render.IconView
	Stats       []render.StatRow
	Tips        string
	Rewards     string
}

const altKey = "icon.alt.boss"

func newCardView(renderer *render.Renderer, lang language.Tag, path string, query Query, boss Boss) CardView {
	return CardView{
		ID:          boss.ID,
		Href:        render.DetailHref(path, query.Values(), constants.ParamDetail, boss.ID),
		Order:       boss.Order,
		Name:        boss.Name,
		Description: boss.Description,
		Difficulty:  boss.Difficulty,
		Summon:      boss.Summon,
		Icon:        renderer.Icon(lang, boss.Icon, altKey),
	}
}

func newDetailView(renderer *render.Renderer, lang language.Tag, boss Boss) DetailView {
	return DetailView{
		ID:          boss.ID,
		Name:        boss.Name,
		Description: boss.Description,
		Difficulty:  boss.Difficulty,
		Order:       boss.Order,
		Summon:      boss.Summon,
		Icon:        renderer.Icon(lang, boss.Icon, altKey),
		Stats: render.StatRows(
			render.LabeledField{LabelKey: "stat.health", Value: boss.Health},
			render.LabeledField{LabelKey: "stat.defense", Value: boss.Defense},
			render.LabeledField{LabelKey: "stat.contactDamage", Value: boss.Damage},
		),
		Tips:    boss.Tips,
		Rewards: boss.Rewards,
	}
}

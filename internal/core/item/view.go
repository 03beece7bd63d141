// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

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
	Name        string
	Description string
	Category    string
	Rarity      string
	Icon        render.IconView
}

// DetailView is the expanded item shown in the overlay.
type DetailView struct {
	ID          int
	Name        string
	Description string
	Category    string
	Rarity      string
	Icon        render.IconView
	Stats       []render.StatRow
}

const altKey = "icon.alt.item"

func newCardView(renderer *render.Renderer, lang language.Tag, path string, query Query, item Item) CardView {
	return CardView{
		ID:          item.ID,
		Href:        render.DetailHref(path, query.Values(), constants.ParamDetail, item.ID),
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Rarity:      item.Rarity,
		Icon:        renderer.Icon(lang, item.Icon, altKey),
	}
}

func newDetailView(renderer *render.Renderer, lang language.Tag, item Item) DetailView {
	return DetailView{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Rarity:      item.Rarity,
		Icon:        renderer.Icon(lang, item.Icon, altKey),
		Stats: render.StatRows(
			render.LabeledField{LabelKey: "stat.damage", Value: item.Damage},
			render.LabeledField{LabelKey: "stat.defense", Value: item.Defense},
			render.LabeledField{LabelKey: "stat.speed", Value: item.Speed},
		),
	}
}

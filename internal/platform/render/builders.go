// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render

import (
	"net/url"
	"strconv"

	"golang.org/x/text/language"
)

// Field is an optional value that is only shown when present.
type Field interface {
	Present() bool
	String() string
}

// LabeledField pairs a message key with an optional value.
type LabeledField struct {
	LabelKey string
	Value    Field
}

// StatRows keeps the present fields, in order. A detail with no present
// stat gets a nil slice and the stats block is not rendered at all.
func StatRows(fields ...LabeledField) []StatRow {
	var rows []StatRow
	for _, field := range fields {
		if field.Value != nil && field.Value.Present() {
			rows = append(rows, StatRow{LabelKey: field.LabelKey, Value: field.Value.String()})
		}
	}
	return rows
}

// Href is path with the encoded query, or path alone when values is empty.
func Href(path string, values url.Values) string {
	if encoded := values.Encode(); encoded != "" {
		return path + "?" + encoded
	}
	return path
}

// DetailHref is path with the query and the overlay open on id.
func DetailHref(path string, values url.Values, detailParam string, id int) string {
	copied := url.Values{}
	for key, value := range values {
		copied[key] = append([]string(nil), value...)
	}
	copied.Set(detailParam, strconv.Itoa(id))
	return path + "?" + copied.Encode()
}

// EnumSelect builds a filter input whose first option is the sentinel
// labelled with the translated "all".
func (r *Renderer) EnumSelect(lang language.Tag, name, labelKey, sentinel, selected string, values []string) Select {
	options := make([]Option, 0, len(values)+1)
	options = append(options, Option{
		Value:    sentinel,
		Label:    r.bundle.T(lang, "filter.all"),
		Selected: selected == sentinel,
	})
	for _, value := range values {
		options = append(options, Option{Value: value, Label: value, Selected: value == selected})
	}
	return Select{Name: name, LabelKey: labelKey, Options: options}
}

// ChoiceSelect builds an input over fixed values whose labels are message keys.
func (r *Renderer) ChoiceSelect(lang language.Tag, name, labelKey, selected string, choices ...Choice) Select {
	options := make([]Option, 0, len(choices))
	for _, choice := range choices {
		options = append(options, Option{
			Value:    choice.Value,
			Label:    r.bundle.T(lang, choice.LabelKey),
			Selected: choice.Value == selected,
		})
	}
	return Select{Name: name, LabelKey: labelKey, Options: options}
}

// Choice is a fixed select value and the message key of its label.
type Choice struct {
	Value    string
	LabelKey string
}

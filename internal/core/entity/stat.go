// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Stat is an optional stat field that the data file writes either as a
// number or as free text ("45 (Expert)"). null, "" and the number 0 are
// absent; absent stats are omitted from detail views.
//
// The zero value is absent.
type Stat struct {
	text   string
	number bool
}

// NumberStat returns a present numeric stat, or an absent one for zero.
func NumberStat(value float64) Stat {
	if value == 0 {
		return Stat{}
	}
	return Stat{text: strconv.FormatFloat(value, 'f', -1, 64), number: true}
}

// TextStat returns a text stat; the empty string is absent.
func TextStat(value string) Stat {
	return Stat{text: value}
}

// Present reports whether the stat should be displayed.
func (s Stat) Present() bool { return s.text != "" }

// String returns the display text, empty when absent.
func (s Stat) String() string { return s.text }

// IsZero reports absence, so `omitzero` drops absent stats from JSON.
func (s Stat) IsZero() bool { return !s.Present() }

// UnmarshalJSON accepts numbers, strings, booleans and null. Any other
// shape (objects, arrays) is treated as absent rather than failing the
// whole document.
func (s *Stat) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return err
	}

	*s = Stat{}
	switch value := raw.(type) {
	case string:
		s.text = value
	case json.Number:
		// Reformat so 1.50 and 1e3 display as 1.5 and 1000.
		number, err := value.Float64()
		if err != nil {
			return nil
		}
		*s = NumberStat(number)
	case bool:
		if value {
			s.text = "true"
		}
	}
	return nil
}

// MarshalJSON writes numbers back as numbers and text as strings.
func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.Present() {
		return []byte("null"), nil
	}
	if s.number {
		return []byte(s.text), nil
	}
	return json.Marshal(s.text)
}

// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/taibuivan/grimoire/internal/platform/i18n"
)

/*
TestBundle_Count verifies the singular form is used only for exactly one.
*/
func TestBundle_Count(t *testing.T) {
	bundle := i18n.New(language.Portuguese)

	tests := []struct {
		name  string
		lang  language.Tag
		noun  string
		count int
		want  string
	}{
		{"pt_zero_plural", language.Portuguese, "boss", 0, "Exibindo 0 chefes"},
		{"pt_one_singular", language.Portuguese, "boss", 1, "Exibindo 1 chefe"},
		{"pt_many_plural", language.Portuguese, "boss", 2, "Exibindo 2 chefes"},
		{"pt_items", language.Portuguese, "item", 5, "Exibindo 5 itens"},
		{"en_one", language.English, "item", 1, "Showing 1 item"},
		{"en_many", language.English, "boss", 12, "Showing 12 bosses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bundle.Count(tt.lang, tt.noun, tt.count))
		})
	}
}

/*
TestBundle_Match covers override, Accept-Language and fallback negotiation.
*/
func TestBundle_Match(t *testing.T) {
	bundle := i18n.New(language.Portuguese)

	assert.Equal(t, language.English, bundle.Match("en", ""))
	assert.Equal(t, language.English, bundle.Match("", "en-US,en;q=0.9"))
	assert.Equal(t, language.Portuguese, bundle.Match("", "pt-BR,pt;q=0.9,en;q=0.8"))
	assert.Equal(t, language.Portuguese, bundle.Match("", ""))
	assert.Equal(t, language.Portuguese, bundle.Match("", "ja-JP"))
	assert.Equal(t, language.Portuguese, bundle.Match("not a tag!", ""))
}

/*
TestBundle_T_Fallback checks lookup falls back to the default language, then to the key.
*/
func TestBundle_T_Fallback(t *testing.T) {
	bundle := i18n.New(language.English)

	assert.Equal(t, language.English, bundle.Fallback())
	assert.Equal(t, "Bosses", bundle.T(language.Japanese, "nav.bosses"))
	assert.Equal(t, "missing.key", bundle.T(language.English, "missing.key"))
	assert.Equal(t, "#3 na Progressão", bundle.Tf(language.Portuguese, "boss.order", 3))
}

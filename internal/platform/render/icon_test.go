// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/grimoire/internal/platform/render"
)

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		value  string
		image  bool
		remote bool
	}{
		{"https://x/i.png", true, true},
		{"http://cdn.example.org/boss", true, true},
		{"🔥", false, false},
		{"skins/boss.png", true, false},
		{"icons/slime.webp", true, false},
		{"", false, false},
		{"png", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			icon := render.ResolveIcon(tt.value)
			assert.Equal(t, tt.value, icon.Value)
			assert.Equal(t, tt.image, icon.Image)
			assert.Equal(t, tt.remote, icon.Remote)
		})
	}
}

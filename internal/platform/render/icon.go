// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render

import "strings"

// imageExtensions marks a value as an image path even without a scheme.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// Icon is the resolved form of an entity icon value.
type Icon struct {
	// Value is the raw icon string: a URL/path for images, a symbol otherwise.
	Value string
	// Image reports whether Value must be rendered as an <img>.
	Image bool
	// Remote reports whether Value carries an http(s) scheme.
	Remote bool
}

// ResolveIcon classifies an icon value. Anything with an http(s) scheme or a
// known image extension is an image reference; everything else (emoji,
// glyphs) is rendered as inline text.
func ResolveIcon(value string) Icon {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return Icon{Value: value, Image: true, Remote: true}
	}
	for _, extension := range imageExtensions {
		if strings.Contains(value, extension) {
			return Icon{Value: value, Image: true}
		}
	}
	return Icon{Value: value}
}

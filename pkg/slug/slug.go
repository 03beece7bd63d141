// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slug turns free-form display values into ASCII tokens.

The renderer uses it for CSS class suffixes built from dataset enums, so
"Very Hard" becomes "very-hard" and "Épico" becomes "epico".
*/
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen     = regexp.MustCompile(`-{2,}`)
)

// From lowercases s, strips diacritics and joins the remaining words with
// single hyphens.
func From(s string) string {
	// Decompose, then drop the combining marks.
	stripMarks := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	result, _, _ := transform.String(stripMarks, s)

	result = nonAlphanumeric.ReplaceAllString(strings.ToLower(result), "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package i18n holds the UI messages of the catalog and negotiates the request
language.

Negotiation uses [language.Matcher] over the supported tags, so "pt-BR",
"pt-PT" and "pt" all resolve to Portuguese. Message lookup falls back to the
configured default language and finally to the key itself.
*/
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Bundle is an immutable set of translated messages.
type Bundle struct {
	matcher   language.Matcher
	supported []language.Tag
	fallback  language.Tag
	dict      map[language.Tag]map[string]string
}

// New returns a bundle with the built-in Portuguese and English messages.
// fallback must be one of the supported tags; anything else selects Portuguese.
func New(fallback language.Tag) *Bundle {
	supported := []language.Tag{language.Portuguese, language.English}
	if fallback != language.English {
		fallback = language.Portuguese
	}

	// The matcher treats the first tag as the default.
	ordered := []language.Tag{fallback}
	for _, tag := range supported {
		if tag != fallback {
			ordered = append(ordered, tag)
		}
	}

	return &Bundle{
		matcher:   language.NewMatcher(ordered),
		supported: ordered,
		fallback:  fallback,
		dict: map[language.Tag]map[string]string{
			language.Portuguese: portuguese,
			language.English:    english,
		},
	}
}

// Fallback returns the configured default language.
func (b *Bundle) Fallback() language.Tag { return b.fallback }

// Match picks the supported language for an explicit override (a bare tag
// such as "en") or, when the override is empty or unparsable, for an
// Accept-Language header value.
func (b *Bundle) Match(override, acceptLanguage string) language.Tag {
	if override != "" {
		if tag, err := language.Parse(override); err == nil {
			return b.pick(tag)
		}
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return b.fallback
	}
	return b.pick(tags...)
}

func (b *Bundle) pick(tags ...language.Tag) language.Tag {
	_, index, confidence := b.matcher.Match(tags...)
	if confidence == language.No {
		return b.fallback
	}
	return b.supported[index]
}

// T returns the message for key in lang, falling back to the default
// language and finally to the key itself.
func (b *Bundle) T(lang language.Tag, key string) string {
	if messages, ok := b.dict[lang]; ok {
		if value, ok := messages[key]; ok {
			return value
		}
	}
	if value, ok := b.dict[b.fallback][key]; ok {
		return value
	}
	return key
}

// Tf formats the message for key with args.
func (b *Bundle) Tf(lang language.Tag, key string, args ...any) string {
	return fmt.Sprintf(b.T(lang, key), args...)
}

// Noun selects the singular form of noun iff count is exactly one.
// Zero and every other count take the plural form.
func (b *Bundle) Noun(lang language.Tag, noun string, count int) string {
	if count == 1 {
		return b.T(lang, noun+".one")
	}
	return b.T(lang, noun+".other")
}

// Count renders the visible-count line, e.g. "Exibindo 3 chefes".
func (b *Bundle) Count(lang language.Tag, noun string, count int) string {
	return fmt.Sprintf("%s %d %s", b.T(lang, "count.showing"), count, b.Noun(lang, noun, count))
}

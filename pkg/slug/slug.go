// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs give genres and authors a readable URL form (e.g., "science-fiction")
// next to their opaque registry ids.
package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
//  1. Normalizes to NFD and drops combining marks (é → e).
//  2. Lowercases.
//  3. Keeps ASCII letters and digits; every other run becomes one hyphen.
//  4. Trims leading and trailing hyphens.
func From(s string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	var builder strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(folded) {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && builder.Len() > 0 {
				builder.WriteByte('-')
			}
			builder.WriteRune(r)
			pendingHyphen = false
			continue
		}
		pendingHyphen = true
	}

	return builder.String()
}

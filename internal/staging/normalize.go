//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package staging cleans raw transactional exports into the normalized
// intermediate tables the warehouse phase consumes.
package staging

import "strings"

// diacritics maps the accented vowels seen in the upstream extracts to
// their ASCII equivalents. The set is fixed: acute, umlaut, and the
// lone grave `à`. ñ is intentionally absent, matching the source
// translation table.
var diacritics = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U",
	"ä", "a", "ë", "e", "ï", "i", "ö", "o", "ü", "u",
	"Ä", "A", "Ë", "E", "Ï", "I", "Ö", "O", "Ü", "U",
	"à", "a",
)

// Normalize replaces every character of the fixed diacritic set with its
// unaccented equivalent; all other characters pass through unchanged.
// Applying it twice yields the same result as once.
func Normalize(s string) string {
	return diacritics.Replace(s)
}

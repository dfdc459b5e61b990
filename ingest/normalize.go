/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package ingest

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Box-drawing and block characters OCR picks up from table borders.
	boxNoiseRe     = regexp.MustCompile("[─-▟]+")
	blankRunsRe    = regexp.MustCompile(`\n{3,}`)
	unicodeSpaceRe = regexp.MustCompile(`\p{Zs}`)
)

// Normalize cleans extracted text for line-oriented parsing. It composes
// Unicode to NFC (compatibility forms are kept, so "µ" stays a micro sign),
// folds Unicode space separators such as U+00A0 to ASCII spaces, unifies
// line endings, strips table-border glyphs and trailing blanks, and
// collapses runs of empty lines.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = unicodeSpaceRe.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")
	text = boxNoiseRe.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	text = blankRunsRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")

	return strings.TrimSpace(text)
}

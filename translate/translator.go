/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package translate

import (
	"context"

	"github.com/humaidq/labscan/report"
)

// Translator renders English text in another language. Implementations
// return the input unchanged when they cannot translate it.
type Translator interface {
	Translate(ctx context.Context, text, lang string) string
}

// Passthrough is a Translator that never translates.
type Passthrough struct{}

// Translate returns text unchanged.
func (Passthrough) Translate(_ context.Context, text, _ string) string {
	return text
}

// Analysis translates interpretations and recommendation lists in place.
// Status labels are left in English.
func Analysis(ctx context.Context, tr Translator, analysis *report.Analysis, lang string) {
	if analysis == nil || lang == English {
		return
	}

	for i := range analysis.Results {
		analysis.Results[i].Interpretation = tr.Translate(ctx, analysis.Results[i].Interpretation, lang)
	}

	for test, rec := range analysis.Recommendations {
		rec.Foods = translateAll(ctx, tr, rec.Foods, lang)
		rec.Lifestyle = translateAll(ctx, tr, rec.Lifestyle, lang)
		rec.Avoid = translateAll(ctx, tr, rec.Avoid, lang)
		analysis.Recommendations[test] = rec
	}
}

func translateAll(ctx context.Context, tr Translator, items []string, lang string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = tr.Translate(ctx, item, lang)
	}

	return out
}

/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// statusLabel renders a status as a capitalised label. A Caser keeps
// state, so one is made per call.
func statusLabel(status Status) string {
	return cases.Title(language.English).String(strings.ToLower(string(status)))
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)

	return out
}

// Recommend returns dietary and lifestyle advice for High and Low results,
// keyed by test name. Tests without a knowledge base entry for their status
// are left out.
func Recommend(results []AnalyzedResult) map[string]Recommendation {
	recommendations := make(map[string]Recommendation)

	for _, result := range results {
		if !result.Status.IsAbnormal() {
			continue
		}

		set, _, ok := firstMatch(result.Test, recommendationKnowledge)
		if !ok {
			continue
		}

		adv := set.forStatus(result.Status)
		if adv == nil {
			continue
		}

		recommendations[result.Test] = Recommendation{
			Status:    statusLabel(result.Status),
			Foods:     cloneStrings(adv.foods),
			Lifestyle: cloneStrings(adv.lifestyle),
			Avoid:     cloneStrings(adv.avoid),
		}
	}

	return recommendations
}

/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"fmt"
	"strings"
)

// Analyze runs validation, extraction, classification and recommendation
// over extracted report text. When the text is rejected the returned
// Analysis still carries the verdict, alongside ErrEmptyInput or
// ErrNotMedical. A valid report with no parsable lines yields an empty
// result list and no error.
func Analyze(text string) (*Analysis, error) {
	verdict := Validate(text)
	analysis := &Analysis{
		Verdict:         verdict,
		Results:         []AnalyzedResult{},
		Recommendations: map[string]Recommendation{},
	}

	if strings.TrimSpace(text) == "" {
		return analysis, ErrEmptyInput
	}

	if !verdict.IsValid {
		return analysis, fmt.Errorf("%w: %s", ErrNotMedical, verdict.Reason)
	}

	records := Extract(text)
	if len(records) == 0 {
		logger.Info("No structured data found in report", "score", verdict.Score)
		return analysis, nil
	}

	analysis.Results = Classify(records)
	analysis.Recommendations = Recommend(analysis.Results)

	logger.Info("Analyzed report",
		"results", len(analysis.Results),
		"recommendations", len(analysis.Recommendations),
		"score", verdict.Score,
	)

	return analysis, nil
}

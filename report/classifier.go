/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import "fmt"

const (
	interpretationNormal      = "Within normal limits."
	interpretationUnavailable = "Range not available."
)

// resolveRange picks the reference range for a record: the lab's own range
// when it parses, otherwise the standard catalog.
func resolveRange(rec Record) (Interval, RangeSource, bool) {
	if iv, ok := ParseRange(rec.Range); ok {
		return iv, RangeSourceLab, true
	}

	if iv, ok := StandardRange(rec.Test); ok {
		return iv, RangeSourceStandard, true
	}

	return Interval{}, RangeSourceNone, false
}

func interpret(testName string, status Status) string {
	if status == StatusNormal {
		return interpretationNormal
	}

	if known, _, ok := firstMatch(testName, testKnowledge); ok {
		if sentence := known.forStatus(status); sentence != "" {
			return sentence
		}

		return fmt.Sprintf("Result is %s.", status)
	}

	return fmt.Sprintf("The result is %s.", status)
}

// ClassifyRecord classifies one record. When a catalog range is used and
// the record had no range text, Range is replaced with the catalog display
// string.
func ClassifyRecord(rec Record) AnalyzedResult {
	result := AnalyzedResult{
		Record:         rec,
		Status:         StatusUnknown,
		Interpretation: interpretationUnavailable,
		RangeSource:    RangeSourceNone,
	}

	iv, source, ok := resolveRange(rec)
	if !ok {
		return result
	}

	result.RangeSource = source
	if source == RangeSourceStandard && rec.Range == "" {
		if display, found := StandardRangeDisplay(rec.Test); found {
			result.Range = display
		}
	}

	result.Status = iv.Classify(rec.Value)
	result.Interpretation = interpret(rec.Test, result.Status)

	return result
}

// Classify classifies every record, preserving order.
func Classify(records []Record) []AnalyzedResult {
	results := make([]AnalyzedResult, 0, len(records))
	for _, rec := range records {
		results = append(results, ClassifyRecord(rec))
	}

	return results
}

// ResolveInterval returns the numeric range an analyzed result was judged
// against. Synthesised "(Std)" strings parse back to the catalog bounds.
func ResolveInterval(result AnalyzedResult) (Interval, bool) {
	iv, _, ok := resolveRange(result.Record)
	return iv, ok
}

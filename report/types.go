/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

// Status is the classification of a result against its reference range.
type Status string

const (
	StatusNormal  Status = "Normal"
	StatusHigh    Status = "High"
	StatusLow     Status = "Low"
	StatusUnknown Status = "Unknown"
)

// IsAbnormal reports whether the status is High or Low.
func (s Status) IsAbnormal() bool {
	return s == StatusHigh || s == StatusLow
}

// RangeSource records where the reference range used for a result came from.
type RangeSource string

const (
	RangeSourceLab      RangeSource = "Lab Report"
	RangeSourceStandard RangeSource = "Standard DB"
	RangeSourceNone     RangeSource = "N/A"
)

// Record is a single test result pulled out of report text.
type Record struct {
	Test  string  `json:"test"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Range string  `json:"range"`
}

// AnalyzedResult is a Record classified against a reference range.
type AnalyzedResult struct {
	Record
	Status         Status      `json:"status"`
	Interpretation string      `json:"interpretation"`
	RangeSource    RangeSource `json:"range_source"`
}

// Recommendation holds the advice attached to an abnormal result.
type Recommendation struct {
	Status    string   `json:"status"`
	Foods     []string `json:"foods"`
	Lifestyle []string `json:"lifestyle"`
	Avoid     []string `json:"avoid"`
}

// VerdictDetails breaks a validation score down into its signals.
type VerdictDetails struct {
	KeywordsFound  int `json:"keywords_found"`
	StructureFound int `json:"structure_found"`
	UnitsFound     int `json:"units_found"`
}

// Verdict is the outcome of Validate. Reason is set when the document was
// rejected before the score threshold was considered.
type Verdict struct {
	IsValid bool           `json:"is_valid"`
	Score   float64        `json:"score"`
	Details VerdictDetails `json:"details"`
	Reason  string         `json:"reason,omitempty"`
}

// Analysis is the full output of the pipeline for one document.
type Analysis struct {
	Verdict         Verdict                   `json:"metadata"`
	Results         []AnalyzedResult          `json:"results"`
	Recommendations map[string]Recommendation `json:"recommendations"`
}

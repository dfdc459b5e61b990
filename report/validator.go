/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"regexp"
	"strings"
)

const (
	keywordWeight   = 2
	structureWeight = 3
	unitWeight      = 4

	// ValidationThreshold is the minimum total score for a lab report.
	ValidationThreshold = 15
	// MinMedicalKeywords is the hard gate on distinct clinical terms. Tables
	// with units but no clinical vocabulary (invoices, resumes) fail it.
	MinMedicalKeywords = 2
)

const (
	reasonEmptyText      = "Empty text"
	reasonTooFewKeywords = "Not enough medical terms found."
	reasonBelowThreshold = "Score below threshold."
)

var medicalKeywords = []string{
	"hemoglobin", "platelet", "blood", "glucose", "cholesterol", "triglycerides",
	"leukocyte", "erythrocyte", "neutrophils", "lymphocytes", "monocytes",
	"eosinophils", "basophils", "hematocrit", "mcv", "mch", "mchc", "rdw",
	"bilirubin", "protein", "albumin", "globulin", "phosphatase", "sgot", "sgpt",
	"urea", "creatinine", "calcium", "sodium", "potassium", "chloride",
	"thyroid", "tsh", "t3", "t4", "hba1c", "vitamin", "urine", "analysis",
}

var reportStructureKeywords = []string{
	"test name", "investigation", "observed value", "result", "unit",
	"reference range", "biological reference", "interval", "method", "specimen",
	"sample", "collected", "received", "reported", "patient", "doctor", "lab",
}

var unitPatterns = compileAll(
	`mg/dl`, `g/dl`, `mmol/l`, `iu/l`, `u/l`, `\b%\b`,
	`ng/ml`, `pg/ml`, `ug/ml`, `fl`, `cells/cumm`,
	`10\^6/ul`, `10\^3/ul`, `micromol/l`,
)

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}

	return compiled
}

// countContained returns how many terms occur in text.
func countContained(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}

	return n
}

// Validate scores text for how much it looks like a medical lab report.
// Every occurrence of a unit counts; keywords and structure phrases count
// once each.
func Validate(text string) Verdict {
	if strings.TrimSpace(text) == "" {
		return Verdict{Reason: reasonEmptyText}
	}

	lower := strings.ToLower(text)

	details := VerdictDetails{
		KeywordsFound:  countContained(lower, medicalKeywords),
		StructureFound: countContained(lower, reportStructureKeywords),
	}
	for _, re := range unitPatterns {
		details.UnitsFound += len(re.FindAllStringIndex(lower, -1))
	}

	score := float64(details.KeywordsFound*keywordWeight +
		details.StructureFound*structureWeight +
		details.UnitsFound*unitWeight)

	verdict := Verdict{Score: score, Details: details}

	if details.KeywordsFound < MinMedicalKeywords {
		verdict.Reason = reasonTooFewKeywords
		logger.Warn("Validation failed: too few medical keywords",
			"keywords", details.KeywordsFound, "score", score)

		return verdict
	}

	verdict.IsValid = score >= ValidationThreshold
	if !verdict.IsValid {
		verdict.Reason = reasonBelowThreshold
	}

	logger.Debug("Validated document",
		"score", score,
		"threshold", ValidationThreshold,
		"valid", verdict.IsValid,
		"keywords", details.KeywordsFound,
		"structure", details.StructureFound,
		"units", details.UnitsFound,
	)

	return verdict
}

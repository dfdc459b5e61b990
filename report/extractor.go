/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MinConfidence is the lowest confidence score at which a candidate line
// is kept.
const MinConfidence = 2

// ignoredTerms are structural words found in headers, footers and patient
// details. A line containing any of them is never a result line.
var ignoredTerms = []string{
	"page", "date", "time", "report", "sample", "id", "lab", "reference",
	"interval", "technology", "method", "authorized", "signature", "end of report",
	"sex", "age", "referred", "registered", "collected", "received", "printed",
	"doctor", "physician", "hospital", "patient", "mr.", "mrs.", "dr.", "dept",
	"unit", "observed", "value", "investigation", "bill", "address",
}

var ignoredTermSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(ignoredTerms))
	for _, term := range ignoredTerms {
		set[term] = struct{}{}
	}

	return set
}()

var commonMedicalTests = []string{
	"hemoglobin", "glucose", "cholesterol", "triglycerides", "hdl", "ldl",
	"vldl", "platelet", "wbc", "rbc", "hematocrit", "mcv", "mch", "mchc",
	"neutrophils", "lymphocytes", "monocytes", "eosinophils", "basophils",
	"tsh", "t3", "t4", "urea", "creatinine", "uric acid", "calcium",
	"sodium", "potassium", "chloride", "bilirubin", "protein", "albumin",
	"globulin", "alkaline phosphatase", "sgot", "sgpt", "ggt", "esr", "pcr",
}

// resultUnits is the unit vocabulary a result line must carry.
var resultUnits = []string{
	"mg/dL", "g/dL", "ng/mL", "ug/dL", "mEq/L", "U/L", "IU/L",
	"mmol/L", "µmol/L", "/uL", "count/uL", "million/uL", "x10^3/uL",
	"x10^6/uL", "fl", "pg", "L", "mL", "%", "g/L", "IU/mL", "mOsm/kg",
}

// Separators accept Unicode space separators as well as ASCII
// whitespace, so text with non-breaking spaces from PDFs still matches.
const (
	spaces       = `[\s\p{Zs}]`
	namePattern  = `(?P<name>[a-zA-Z][a-zA-Z0-9\s\p{Zs}()\-,.:%]+?)`
	valuePattern = `(?P<value>\d{1,5}(?:\.\d{1,3})?)`
	rangePattern = `(?P<range>` +
		`(?:\d+(?:\.\d+)?` + spaces + `*[\-–]` + spaces + `*\d+(?:\.\d+)?)` +
		`|(?:[<>]` + spaces + `*\d+(?:\.\d+)?)` +
		`|(?:\(\d+(?:\.\d+)?` + spaces + `*[\-–]` + spaces + `*\d+(?:\.\d+)?\))` +
		`)?`
)

var (
	resultLineRe = buildResultLinePattern(resultUnits)

	resultNameIdx  = resultLineRe.SubexpIndex("name")
	resultValueIdx = resultLineRe.SubexpIndex("value")
	resultUnitIdx  = resultLineRe.SubexpIndex("unit")
	resultRangeIdx = resultLineRe.SubexpIndex("range")

	nameEdgeRe     = regexp.MustCompile(`^[^a-zA-Z0-9(]+|[^a-zA-Z0-9)]+$`)
	unicodeSpaceRe = regexp.MustCompile(`\p{Zs}`)
)

// buildResultLinePattern compiles the line pattern with units ordered
// longest first, so "mg/dL" is tried before the bare "L".
func buildResultLinePattern(units []string) *regexp.Regexp {
	sorted := make([]string, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i]) > utf8.RuneCountInString(sorted[j])
	})

	quoted := make([]string, len(sorted))
	for i, u := range sorted {
		quoted[i] = regexp.QuoteMeta(u)
	}

	unitPattern := `(?P<unit>` + strings.Join(quoted, "|") + `)`

	return regexp.MustCompile(`(?i)^` + spaces + `*` + namePattern + spaces + `+` + valuePattern +
		spaces + `*` + unitPattern + spaces + `*` + rangePattern + `.*$`)
}

// candidateMatch is what the line pattern captured, before validation.
type candidateMatch struct {
	name  string
	value string
	unit  string
	rng   string
}

func matchResultLine(line string) (candidateMatch, bool) {
	m := resultLineRe.FindStringSubmatch(line)
	if m == nil {
		return candidateMatch{}, false
	}

	return candidateMatch{
		name:  m[resultNameIdx],
		value: m[resultValueIdx],
		unit:  m[resultUnitIdx],
		rng:   m[resultRangeIdx],
	}, true
}

func containsIgnoredTerm(lower string) bool {
	for _, term := range ignoredTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}

	return false
}

// cleanTestName trims punctuation from both ends of a captured name. An
// opening paren may lead and a closing paren may trail, so
// "Calcium (Ionized)" survives intact.
func cleanTestName(name string) string {
	return nameEdgeRe.ReplaceAllString(strings.TrimSpace(name), "")
}

// confidence scores a candidate from 0 to 7.
func confidence(testName, unit, rng string) int {
	score := 0
	lower := strings.ToLower(testName)

	for _, known := range commonMedicalTests {
		if strings.Contains(lower, known) {
			score += 3
			break
		}
	}

	if unit != "" {
		score += 2
	}

	if rng != "" {
		score++
	}

	if n := utf8.RuneCountInString(testName); n > 3 && n < 50 {
		score++
	}

	return score
}

// parseResultLine turns one line into a Record, or reports false when the
// line is noise.
func parseResultLine(raw string) (Record, bool) {
	// Folded so names like "Total<NBSP>Protein" still hit the lookup tables.
	line := strings.TrimSpace(unicodeSpaceRe.ReplaceAllString(raw, " "))
	if line == "" {
		return Record{}, false
	}

	if containsIgnoredTerm(strings.ToLower(line)) {
		return Record{}, false
	}

	cand, ok := matchResultLine(line)
	if !ok {
		return Record{}, false
	}

	// A bare number is never a lab value.
	if cand.unit == "" {
		return Record{}, false
	}

	testName := cleanTestName(cand.name)
	if _, ignored := ignoredTermSet[strings.ToLower(testName)]; ignored || utf8.RuneCountInString(testName) < 2 {
		return Record{}, false
	}

	value, err := strconv.ParseFloat(cand.value, 64)
	if err != nil {
		return Record{}, false
	}

	if confidence(testName, cand.unit, cand.rng) < MinConfidence {
		return Record{}, false
	}

	return Record{
		Test:  testName,
		Value: value,
		Unit:  strings.TrimSpace(cand.unit),
		Range: strings.TrimSpace(strings.Trim(cand.rng, "()")),
	}, true
}

// Extract pulls test results out of report text, one candidate per line.
// Records are keyed by test name: the first occurrence is kept unless it
// has no range and a later one does, which covers reports that print the
// range on its own row. Results are in order of first appearance.
func Extract(text string) []Record {
	var records []Record

	index := make(map[string]int)

	for _, line := range strings.Split(text, "\n") {
		rec, ok := parseResultLine(line)
		if !ok {
			continue
		}

		i, seen := index[rec.Test]
		if !seen {
			index[rec.Test] = len(records)
			records = append(records, rec)

			continue
		}

		if records[i].Range == "" && rec.Range != "" {
			records[i] = rec
		}
	}

	logger.Debug("Extracted records", "count", len(records))

	return records
}

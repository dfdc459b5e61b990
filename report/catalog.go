/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

// StandardRangeDefinition is a fallback reference range for a test family.
// Range is kept as printed text so the synthesised display string shows the
// bounds exactly as listed here.
type StandardRangeDefinition struct {
	Key   string
	Range string
	Unit  string
}

// standardRangeDefinitions is scanned in order; the first key contained in
// the test name wins.
var standardRangeDefinitions = []StandardRangeDefinition{
	{Key: "hemoglobin", Range: "13.0 - 17.0", Unit: "g/dL"},
	{Key: "glucose", Range: "70.0 - 140.0", Unit: "mg/dL"}, // random and fasting combined
	{Key: "cholesterol", Range: "0 - 200.0", Unit: "mg/dL"},
	{Key: "hdl", Range: "40.0 - 100.0", Unit: "mg/dL"},
	{Key: "ldl", Range: "0 - 100.0", Unit: "mg/dL"},
	{Key: "triglycerides", Range: "0 - 150.0", Unit: "mg/dL"},
	{Key: "platelet", Range: "150000 - 450000", Unit: "/uL"},
	{Key: "wbc", Range: "4000 - 11000", Unit: "/uL"},
	{Key: "rbc", Range: "4.5 - 5.9", Unit: "million/uL"},
	{Key: "tsh", Range: "0.4 - 4.0", Unit: "mIU/L"},
	{Key: "creatinine", Range: "0.7 - 1.3", Unit: "mg/dL"},
	{Key: "calcium", Range: "8.5 - 10.2", Unit: "mg/dL"},
	{Key: "sodium", Range: "135 - 145", Unit: "mmol/L"},
	{Key: "potassium", Range: "3.5 - 5.0", Unit: "mmol/L"},
	{Key: "sgot", Range: "0 - 40", Unit: "U/L"},
	{Key: "sgpt", Range: "0 - 40", Unit: "U/L"},
}

type standardRange struct {
	interval Interval
	display  string
}

var standardRanges = buildStandardRanges(standardRangeDefinitions)

func buildStandardRanges(defs []StandardRangeDefinition) []entry[standardRange] {
	table := make([]entry[standardRange], 0, len(defs))
	for _, def := range defs {
		table = append(table, entry[standardRange]{
			key: def.Key,
			payload: standardRange{
				interval: mustParseRange(def.Range),
				display:  def.Range + " (Std)",
			},
		})
	}

	return table
}

// StandardRange returns the catalog range for a test name, matched by substring.
func StandardRange(testName string) (Interval, bool) {
	r, _, ok := firstMatch(testName, standardRanges)
	return r.interval, ok
}

// StandardRangeDisplay returns the display string used when a catalog range
// stands in for a missing lab range, e.g. "13.0 - 17.0 (Std)".
func StandardRangeDisplay(testName string) (string, bool) {
	r, _, ok := firstMatch(testName, standardRanges)
	return r.display, ok
}

// GetStandardRangeDefinitions returns a copy of the built-in catalog.
func GetStandardRangeDefinitions() []StandardRangeDefinition {
	defs := make([]StandardRangeDefinition, len(standardRangeDefinitions))
	copy(defs, standardRangeDefinitions)

	return defs
}

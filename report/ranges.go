/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// NoLowerBound is the minimum used for "< max" ranges. It is a sentinel,
// not negative infinity: lab magnitudes are never below zero.
const NoLowerBound = -1.0

// Interval is a numeric reference range. Max is +Inf for "> min" ranges.
type Interval struct {
	Min float64
	Max float64
}

// Classify places value relative to the interval. Values on a bound are Normal.
func (iv Interval) Classify(value float64) Status {
	switch {
	case value < iv.Min:
		return StatusLow
	case value > iv.Max:
		return StatusHigh
	default:
		return StatusNormal
	}
}

// HasUpperBound reports whether Max is finite.
func (iv Interval) HasUpperBound() bool {
	return !math.IsInf(iv.Max, 1)
}

var rangeNumberRe = regexp.MustCompile(`[\d.]+`)

// ParseRange parses a printed reference range such as "70-140",
// "13.0 – 17.0", "< 5" or "> 10". It reports false for empty or
// unrecognised input. "< max" keeps max and sets Min to NoLowerBound, so
// "< 5" is (-1, 5).
func ParseRange(s string) (Interval, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Interval{}, false
	}

	numbers := rangeNumberRe.FindAllString(s, -1)

	switch {
	case strings.HasPrefix(s, "<"):
		if len(numbers) == 0 {
			return Interval{}, false
		}

		maxVal, err := strconv.ParseFloat(numbers[0], 64)
		if err != nil {
			return Interval{}, false
		}

		return Interval{Min: NoLowerBound, Max: maxVal}, true

	case strings.HasPrefix(s, ">"):
		if len(numbers) == 0 {
			return Interval{}, false
		}

		minVal, err := strconv.ParseFloat(numbers[0], 64)
		if err != nil {
			return Interval{}, false
		}

		return Interval{Min: minVal, Max: math.Inf(1)}, true
	}

	if len(numbers) < 2 {
		return Interval{}, false
	}

	minVal, err := strconv.ParseFloat(numbers[0], 64)
	if err != nil {
		return Interval{}, false
	}

	maxVal, err := strconv.ParseFloat(numbers[1], 64)
	if err != nil {
		return Interval{}, false
	}

	return Interval{Min: minVal, Max: maxVal}, true
}

// mustParseRange is used for the built-in tables.
func mustParseRange(s string) Interval {
	iv, ok := ParseRange(s)
	if !ok {
		panic("report: invalid built-in range " + strconv.Quote(s))
	}

	return iv
}

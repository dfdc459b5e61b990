// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"math"
	"strings"
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/labscan/report"
)

func markLineNames(items []interface{}) []string {
	names := make([]string, 0, len(items))

	for _, item := range items {
		if line, ok := item.(opts.MarkLineNameYAxisItem); ok {
			names = append(names, line.Name)
		}
	}

	return names
}

func TestRangeMarkLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		iv   report.Interval
		want []string
	}{
		{name: "closed", iv: report.Interval{Min: 13, Max: 17}, want: []string{"Ref Min", "Ref Max"}},
		{name: "zero minimum", iv: report.Interval{Min: 0, Max: 200}, want: []string{"Ref Min", "Ref Max"}},
		{name: "upper only", iv: report.Interval{Min: report.NoLowerBound, Max: 5}, want: []string{"Ref Max"}},
		{name: "lower only", iv: report.Interval{Min: 10, Max: math.Inf(1)}, want: []string{"Ref Min"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := markLineNames(rangeMarkLines(tt.iv))
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAxisBoundsContainValueAndRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		iv    report.Interval
	}{
		{value: 11.2, iv: report.Interval{Min: 13, Max: 17}},
		{value: 180, iv: report.Interval{Min: 70, Max: 140}},
		{value: 3, iv: report.Interval{Min: report.NoLowerBound, Max: 5}},
		{value: 12, iv: report.Interval{Min: 10, Max: math.Inf(1)}},
		{value: 0, iv: report.Interval{Min: 0, Max: 0}},
	}

	for _, tt := range tests {
		lo, hi := axisBounds(tt.value, tt.iv)

		if lo < 0 || lo > tt.value || hi < tt.value || hi <= lo {
			t.Fatalf("axisBounds(%v, %+v) = (%v, %v)", tt.value, tt.iv, lo, hi)
		}

		if tt.iv.HasUpperBound() && hi < tt.iv.Max {
			t.Fatalf("upper bound %v not visible in (%v, %v)", tt.iv.Max, lo, hi)
		}
	}
}

func TestGenerateResultChart(t *testing.T) {
	t.Parallel()

	ranged := report.ClassifyRecord(report.Record{Test: "Hemoglobin", Value: 11.2, Unit: "g/dL", Range: "13.0-17.0"})

	html, err := generateResultChart(ranged)
	if err != nil {
		t.Fatalf("generateResultChart returned error: %v", err)
	}

	for _, want := range []string{"Hemoglobin", "Ref Min", "Ref Max"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected chart to contain %q", want)
		}
	}

	unranged := report.ClassifyRecord(report.Record{Test: "Ferritin", Value: 40, Unit: "ng/mL"})

	html, err = generateResultChart(unranged)
	if err != nil || html != "" {
		t.Fatalf("expected no chart for unranged result, got %q, %v", html, err)
	}
}

func TestGenerateResultChartsSkipsUnranged(t *testing.T) {
	t.Parallel()

	results := report.Classify([]report.Record{
		{Test: "Hemoglobin", Value: 11.2, Unit: "g/dL", Range: "13.0-17.0"},
		{Test: "Ferritin", Value: 40, Unit: "ng/mL"},
		{Test: "Glucose", Value: 95, Unit: "mg/dL"},
	})

	charts := generateResultCharts(results)
	if len(charts) != 2 {
		t.Fatalf("expected 2 charts, got %d", len(charts))
	}

	if charts[0].Test != "Hemoglobin" || charts[1].Test != "Glucose" {
		t.Fatalf("unexpected chart order: %q, %q", charts[0].Test, charts[1].Test)
	}
}

/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	htmltemplate "html/template"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/labscan/report"
)

// resultChart is a rendered chart for one result.
type resultChart struct {
	Test string
	HTML htmltemplate.HTML
}

var statusColors = map[report.Status]string{
	report.StatusNormal: "#2e9d5b",
	report.StatusHigh:   "#d64545",
	report.StatusLow:    "#e09b2d",
}

// rangeMarkLines returns the reference lines to draw for an interval.
// Open-ended bounds are left out.
func rangeMarkLines(iv report.Interval) []interface{} {
	var items []interface{}

	if iv.Min > report.NoLowerBound {
		items = append(items, opts.MarkLineNameYAxisItem{Name: "Ref Min", YAxis: iv.Min})
	}

	if iv.HasUpperBound() {
		items = append(items, opts.MarkLineNameYAxisItem{Name: "Ref Max", YAxis: iv.Max})
	}

	return items
}

// axisBounds pads the y axis so the value and both bounds are visible.
func axisBounds(value float64, iv report.Interval) (float64, float64) {
	lo := math.Min(value, math.Max(iv.Min, 0))

	hi := value
	if iv.HasUpperBound() {
		hi = math.Max(hi, iv.Max)
	}

	padding := (hi - lo) * 0.1
	if padding == 0 {
		padding = math.Max(math.Abs(hi)*0.1, 1)
	}

	return math.Max(lo-padding, 0), hi + padding
}

// generateResultChart renders a bar for the result against its reference
// range. It returns "" when the result has no numeric range.
func generateResultChart(result report.AnalyzedResult) (string, error) {
	iv, ok := report.ResolveInterval(result)
	if !ok {
		return "", nil
	}

	yMin, yMax := axisBounds(result.Value, iv)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "360px",
			Height: "260px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    result.Test,
			Subtitle: string(result.Status),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: result.Unit,
			Min:  yMin,
			Max:  yMax,
		}),
	)

	seriesOpts := []charts.SeriesOpts{
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: statusColors[result.Status],
		}),
	}

	if markLineItems := rangeMarkLines(iv); len(markLineItems) > 0 {
		seriesOpts = append(seriesOpts, func(s *charts.SingleSeries) {
			s.MarkLines = &opts.MarkLines{
				Data: markLineItems,
				MarkLineStyle: opts.MarkLineStyle{
					Symbol: []string{"none", "none"},
					LineStyle: &opts.LineStyle{
						Color: "rgba(128, 128, 128, 0.6)",
						Type:  "dashed",
						Width: 1.5,
					},
				},
			}
		})
	}

	bar.SetXAxis([]string{result.Test}).
		AddSeries(result.Test, []opts.BarData{{Value: result.Value}}).
		SetSeriesOptions(seriesOpts...)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// generateResultCharts renders charts for every result with a range.
func generateResultCharts(results []report.AnalyzedResult) []resultChart {
	out := make([]resultChart, 0, len(results))

	for _, result := range results {
		chart, err := generateResultChart(result)
		if err != nil {
			logger.Error("Error generating chart", "test", result.Test, "error", err)
			continue
		}

		if chart == "" {
			continue
		}

		//nolint:gosec // go-echarts output, values are numbers and escaped titles
		out = append(out, resultChart{Test: result.Test, HTML: htmltemplate.HTML(chart)})
	}

	return out
}

/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/humaidq/labscan/report"
)

// Analysis outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeNoData      = "no_data"
	OutcomeNotMedical  = "not_medical"
	OutcomeUnreadable  = "unreadable"
	OutcomeBadUpload   = "bad_upload"
	OutcomeInternalErr = "error"
)

// Translation lookups.
const (
	TranslationHit   = "hit"
	TranslationMiss  = "miss"
	TranslationError = "error"
)

var (
	analysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labscan_analyses_total",
			Help: "Report analyses by outcome",
		},
		[]string{"outcome"},
	)

	analysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "labscan_analysis_duration_seconds",
			Help:    "End-to-end analysis time, extraction included",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	extractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "labscan_extraction_duration_seconds",
			Help:    "Text extraction time by source type",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"source"},
	)

	validationScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "labscan_validation_score",
			Help:    "Validation score distribution",
			Buckets: []float64{0, 5, report.ValidationThreshold, 25, 50, 100, 200},
		},
	)

	resultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labscan_results_total",
			Help: "Classified results by status",
		},
		[]string{"status"},
	)

	feedbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labscan_feedback_total",
			Help: "Feedback submissions",
		},
		[]string{"helpful"},
	)

	translationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labscan_translations_total",
			Help: "Translation lookups by result",
		},
		[]string{"result"},
	)
)

// ObserveAnalysis records one analysis request.
func ObserveAnalysis(outcome string, elapsed time.Duration) {
	analysesTotal.WithLabelValues(outcome).Inc()
	analysisDuration.Observe(elapsed.Seconds())
}

// ObserveExtraction records text extraction time for a source type.
func ObserveExtraction(source string, elapsed time.Duration) {
	extractionDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// ObserveVerdict records a validation score.
func ObserveVerdict(verdict report.Verdict) {
	validationScore.Observe(verdict.Score)
}

// ObserveResults counts classified results by status.
func ObserveResults(results []report.AnalyzedResult) {
	for _, r := range results {
		resultsTotal.WithLabelValues(string(r.Status)).Inc()
	}
}

// ObserveFeedback counts a feedback submission.
func ObserveFeedback(helpful bool) {
	feedbackTotal.WithLabelValues(strconv.FormatBool(helpful)).Inc()
}

// ObserveTranslation counts a translation lookup.
func ObserveTranslation(result string) {
	translationsTotal.WithLabelValues(result).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

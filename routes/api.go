/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/flamego/flamego"

	"github.com/humaidq/labscan/db"
	"github.com/humaidq/labscan/metrics"
	"github.com/humaidq/labscan/report"
	"github.com/humaidq/labscan/translate"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "labscan"

const maxFeedbackBodyBytes = 16 << 10

// Swapped in tests.
var (
	feedbackEnabled = db.IsConfigured
	saveFeedback    = db.SaveFeedback
)

// verdictDetails is the validation breakdown sent to clients.
type verdictDetails struct {
	Score          float64 `json:"score"`
	KeywordsFound  int     `json:"keywords_found"`
	StructureFound int     `json:"structure_found"`
	UnitsFound     int     `json:"units_found"`
	Error          string  `json:"error,omitempty"`
}

func newVerdictDetails(v report.Verdict) verdictDetails {
	return verdictDetails{
		Score:          v.Score,
		KeywordsFound:  v.Details.KeywordsFound,
		StructureFound: v.Details.StructureFound,
		UnitsFound:     v.Details.UnitsFound,
		Error:          v.Reason,
	}
}

type analyzeResponse struct {
	Status          string                           `json:"status"`
	Language        string                           `json:"language"`
	Results         []report.AnalyzedResult          `json:"results"`
	Recommendations map[string]report.Recommendation `json:"recommendations"`
	Metadata        verdictDetails                   `json:"metadata"`
}

type invalidReportResponse struct {
	Error   string         `json:"error"`
	Details verdictDetails `json:"details"`
	Message string         `json:"message"`
}

type noDataResponse struct {
	Message string                  `json:"message"`
	Data    []report.AnalyzedResult `json:"data"`
}

type feedbackRequest struct {
	Helpful  string `json:"helpful"`
	Comment  string `json:"comment"`
	Language string `json:"language"`
}

// APIHealth reports liveness.
func APIHealth(c flamego.Context) {
	writeJSON(c, map[string]string{"status": "healthy", "service": ServiceName})
}

// APILanguages lists supported output languages as name to code.
func APILanguages(c flamego.Context) {
	writeJSON(c, translate.LanguageMap())
}

// APIAnalyze accepts a report upload and returns the classified results.
func APIAnalyze(c flamego.Context, a *Analyzer) {
	start := time.Now()
	req := c.Request().Request

	header, uerr := readUpload(c.ResponseWriter(), req)
	if uerr != nil {
		metrics.ObserveAnalysis(metrics.OutcomeBadUpload, time.Since(start))
		writeJSONError(c, uerr.status, uerr.message)

		return
	}

	lang := requestLanguage(req)

	saved, uerr := a.saveUpload(header)
	if uerr != nil {
		metrics.ObserveAnalysis(metrics.OutcomeBadUpload, time.Since(start))
		writeJSONError(c, uerr.status, uerr.message)

		return
	}
	defer a.discard(saved)

	ctx := req.Context()
	analysis, err := a.analyzeFile(ctx, saved, lang)

	metrics.ObserveAnalysis(outcomeOf(analysis, err), time.Since(start))

	switch {
	case errors.Is(err, errUnreadableDocument):
		logger.Warn("Unreadable upload", "filename", header.Filename, "error", err)
		writeJSONError(c, http.StatusUnprocessableEntity, msgUnreadable)
	case errors.Is(err, report.ErrNotMedical):
		tr := a.translator()
		writeJSONStatus(c, http.StatusBadRequest, invalidReportResponse{
			Error:   tr.Translate(ctx, msgInvalidReport, lang),
			Details: newVerdictDetails(analysis.Verdict),
			Message: tr.Translate(ctx, msgNotLabReport, lang),
		})
	case err != nil:
		logger.Error("Error analyzing upload", "filename", header.Filename, "error", err)
		writeJSONError(c, http.StatusInternalServerError, msgAnalysisFailed)
	case len(analysis.Results) == 0:
		writeJSON(c, noDataResponse{Message: msgNoStructuredData, Data: []report.AnalyzedResult{}})
	default:
		writeJSON(c, analyzeResponse{
			Status:          "success",
			Language:        lang,
			Results:         analysis.Results,
			Recommendations: analysis.Recommendations,
			Metadata:        newVerdictDetails(analysis.Verdict),
		})
	}
}

// APIFeedback stores an anonymous helpful/not helpful rating.
func APIFeedback(c flamego.Context) {
	if !feedbackEnabled() {
		writeJSONError(c, http.StatusServiceUnavailable, errFeedbackDisabled.Error())
		return
	}

	var req feedbackRequest

	body := http.MaxBytesReader(c.ResponseWriter(), c.Request().Body().ReadCloser(), maxFeedbackBodyBytes)
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(&req); err != nil {
		writeJSONError(c, http.StatusBadRequest, "Invalid feedback body")
		return
	}

	helpful, err := db.ParseHelpful(req.Helpful)
	if err != nil {
		writeJSONError(c, http.StatusBadRequest, "helpful must be \"Yes\" or \"No\"")
		return
	}

	lang := req.Language
	if lang == "" {
		lang = translate.English
	}

	if _, err := saveFeedback(c.Request().Context(), helpful, req.Comment, lang); err != nil {
		logger.Error("Error saving feedback", "error", err)
		writeJSONError(c, http.StatusInternalServerError, "Failed to save feedback")

		return
	}

	metrics.ObserveFeedback(helpful)
	writeJSONStatus(c, http.StatusCreated, map[string]string{"status": "saved"})
}

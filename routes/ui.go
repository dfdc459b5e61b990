/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/labscan/db"
	"github.com/humaidq/labscan/metrics"
	"github.com/humaidq/labscan/report"
	"github.com/humaidq/labscan/translate"
)

const (
	msgFeedbackUnavailable = "Feedback is not available right now."
	msgFeedbackChoice      = "Please choose whether the analysis was helpful."
	msgFeedbackSaveFailed  = "Failed to save feedback"
	msgFeedbackThanks      = "Thank you for your feedback."
)

func setCommonData(data template.Data, f session.Flash) {
	if msg, ok := flashFromSession(f); ok {
		data["Flash"] = msg
	}

	data["Languages"] = translate.Languages
	data["FeedbackEnabled"] = feedbackEnabled()
}

// Index renders the upload form.
func Index(t template.Template, data template.Data, f session.Flash) {
	setCommonData(data, f)
	t.HTML(http.StatusOK, "index")
}

// AnalyzeForm runs an uploaded report from the UI and renders the results
// page. Rejected uploads go back to the form with an error flash.
func AnalyzeForm(c flamego.Context, s session.Session, t template.Template, data template.Data, a *Analyzer) {
	start := time.Now()
	req := c.Request().Request

	header, uerr := readUpload(c.ResponseWriter(), req)
	if uerr != nil {
		metrics.ObserveAnalysis(metrics.OutcomeBadUpload, time.Since(start))
		SetErrorFlash(s, uerr.message)
		c.Redirect("/", http.StatusSeeOther)

		return
	}

	lang := requestLanguage(req)

	saved, uerr := a.saveUpload(header)
	if uerr != nil {
		metrics.ObserveAnalysis(metrics.OutcomeBadUpload, time.Since(start))
		SetErrorFlash(s, uerr.message)
		c.Redirect("/", http.StatusSeeOther)

		return
	}
	defer a.discard(saved)

	analysis, err := a.analyzeFile(req.Context(), saved, lang)

	metrics.ObserveAnalysis(outcomeOf(analysis, err), time.Since(start))

	switch {
	case errors.Is(err, errUnreadableDocument):
		logger.Warn("Unreadable upload", "filename", header.Filename, "error", err)
		SetErrorFlash(s, msgUnreadable)
	case errors.Is(err, report.ErrNotMedical):
		SetErrorFlash(s, msgNotLabReport)
	case err != nil:
		logger.Error("Error analyzing upload", "filename", header.Filename, "error", err)
		SetErrorFlash(s, msgAnalysisFailed)
	case len(analysis.Results) == 0:
		SetInfoFlash(s, msgNoStructuredData)
	default:
		languageName, ok := translate.LanguageName(lang)
		if !ok {
			languageName, _ = translate.LanguageName(translate.English)
		}

		data["Analysis"] = analysis
		data["Charts"] = generateResultCharts(analysis.Results)
		data["Filename"] = header.Filename
		data["Language"] = lang
		data["LanguageName"] = languageName
		data["FeedbackEnabled"] = feedbackEnabled()
		t.HTML(http.StatusOK, "results")

		return
	}

	c.Redirect("/", http.StatusSeeOther)
}

// SubmitFeedback stores a rating posted from the results page.
func SubmitFeedback(c flamego.Context, s session.Session) {
	defer c.Redirect("/", http.StatusSeeOther)

	if !feedbackEnabled() {
		SetErrorFlash(s, msgFeedbackUnavailable)
		return
	}

	req := c.Request()

	helpful, err := db.ParseHelpful(req.FormValue("helpful"))
	if err != nil {
		SetErrorFlash(s, msgFeedbackChoice)
		return
	}

	lang := strings.TrimSpace(req.FormValue("language"))
	if lang == "" {
		lang = translate.English
	}

	if _, err := saveFeedback(req.Context(), helpful, req.FormValue("comment"), lang); err != nil {
		logger.Error("Error saving feedback", "error", err)
		SetErrorFlash(s, msgFeedbackSaveFailed)

		return
	}

	metrics.ObserveFeedback(helpful)
	SetSuccessFlash(s, msgFeedbackThanks)
}

/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/humaidq/labscan/ingest"
	"github.com/humaidq/labscan/metrics"
	"github.com/humaidq/labscan/report"
	"github.com/humaidq/labscan/translate"
	"github.com/humaidq/labscan/utils"
)

// User-facing messages. Clients match on these strings.
const (
	msgNoFilePart         = "No file part in the request"
	msgNoFileSelected     = "No file selected"
	msgFileTypeNotAllowed = "File type not allowed. Use PDF, JPG, PNG."
	msgFileTooLarge       = "File too large. Maximum size is 10 MB."
	msgSaveFailed         = "Failed to save file"
	msgUnreadable         = "Unreadable document. Please upload a clearer image or PDF."
	msgInvalidReport      = "Invalid medical report."
	msgNotLabReport       = "The document does not appear to be a valid lab report."
	msgNoStructuredData   = "No structured data found in report."
	msgAnalysisFailed     = "Failed to analyze report"
)

const (
	uploadField = "file"
	// multipartMemory is how much of a form is buffered before spilling
	// to temporary files.
	multipartMemory = 10 << 20
	// multipartOverhead allows for boundaries and other form fields on top
	// of the file itself.
	multipartOverhead = 1 << 20
)

// TextExtractor pulls plain text out of a saved upload.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ingest.Result, error)
}

// Analyzer runs uploaded reports through extraction, analysis and
// translation. Handlers receive it through injection.
type Analyzer struct {
	Extractor   TextExtractor
	Translator  translate.Translator
	UploadDir   string
	KeepUploads bool
}

// uploadError is a rejected upload with the status and message to return.
type uploadError struct {
	status  int
	message string
}

func (e *uploadError) Error() string {
	return e.message
}

func (a *Analyzer) translator() translate.Translator {
	if a.Translator == nil {
		return translate.Passthrough{}
	}

	return a.Translator
}

// readUpload parses the multipart form and returns the report file header.
func readUpload(w http.ResponseWriter, r *http.Request) (*multipart.FileHeader, *uploadError) {
	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxUploadBytes+multipartOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &uploadError{status: http.StatusRequestEntityTooLarge, message: msgFileTooLarge}
		}

		return nil, &uploadError{status: http.StatusBadRequest, message: msgNoFilePart}
	}

	files := r.MultipartForm.File[uploadField]
	if len(files) == 0 {
		// A file input submitted with nothing chosen arrives as a plain
		// value with an empty filename.
		if _, ok := r.MultipartForm.Value[uploadField]; ok {
			return nil, &uploadError{status: http.StatusBadRequest, message: msgNoFileSelected}
		}

		return nil, &uploadError{status: http.StatusBadRequest, message: msgNoFilePart}
	}

	header := files[0]

	switch {
	case strings.TrimSpace(header.Filename) == "":
		return nil, &uploadError{status: http.StatusBadRequest, message: msgNoFileSelected}
	case !utils.AllowedFile(header.Filename):
		return nil, &uploadError{status: http.StatusBadRequest, message: msgFileTypeNotAllowed}
	case header.Size > utils.MaxUploadBytes:
		return nil, &uploadError{status: http.StatusRequestEntityTooLarge, message: msgFileTooLarge}
	}

	return header, nil
}

// saveUpload copies the uploaded file into the upload directory.
func (a *Analyzer) saveUpload(header *multipart.FileHeader) (string, *uploadError) {
	file, err := header.Open()
	if err != nil {
		logger.Error("Error opening uploaded file", "filename", header.Filename, "error", err)
		return "", &uploadError{status: http.StatusInternalServerError, message: msgSaveFailed}
	}

	defer func() {
		if err := file.Close(); err != nil {
			logger.Warn("Error closing uploaded file", "error", err)
		}
	}()

	saved, err := utils.SaveUpload(a.UploadDir, header.Filename, file)
	if err != nil {
		logger.Error("Error saving upload", "filename", header.Filename, "error", err)

		switch {
		case errors.Is(err, utils.ErrUploadTooLarge):
			return "", &uploadError{status: http.StatusRequestEntityTooLarge, message: msgFileTooLarge}
		case errors.Is(err, utils.ErrFileTypeNotAllowed):
			return "", &uploadError{status: http.StatusBadRequest, message: msgFileTypeNotAllowed}
		default:
			return "", &uploadError{status: http.StatusInternalServerError, message: msgSaveFailed}
		}
	}

	return saved, nil
}

// discard removes a processed upload unless uploads are kept.
func (a *Analyzer) discard(path string) {
	if a.KeepUploads {
		return
	}

	if err := utils.DeleteFile(path); err != nil {
		logger.Warn("Error deleting upload", "path", path, "error", err)
	}
}

// analyzeFile extracts text from a saved upload and runs the report
// pipeline. Text fields are translated when lang is not English. The
// returned Analysis is non-nil whenever validation ran.
func (a *Analyzer) analyzeFile(ctx context.Context, path, lang string) (*report.Analysis, error) {
	extracted, err := a.Extractor.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUnreadableDocument, err)
	}

	metrics.ObserveExtraction(string(extracted.Source), extracted.Duration)

	if strings.TrimSpace(extracted.Text) == "" {
		return nil, errUnreadableDocument
	}

	analysis, err := report.Analyze(extracted.Text)
	metrics.ObserveVerdict(analysis.Verdict)

	if err != nil {
		if errors.Is(err, report.ErrEmptyInput) {
			return analysis, errUnreadableDocument
		}

		return analysis, err
	}

	metrics.ObserveResults(analysis.Results)
	translate.Analysis(ctx, a.translator(), analysis, lang)

	return analysis, nil
}

// outcomeOf labels an analysis for metrics.
func outcomeOf(analysis *report.Analysis, err error) string {
	switch {
	case errors.Is(err, errUnreadableDocument):
		return metrics.OutcomeUnreadable
	case errors.Is(err, report.ErrNotMedical):
		return metrics.OutcomeNotMedical
	case err != nil:
		return metrics.OutcomeInternalErr
	case analysis == nil || len(analysis.Results) == 0:
		return metrics.OutcomeNoData
	default:
		return metrics.OutcomeSuccess
	}
}

// requestLanguage returns the language form value, defaulting to English.
func requestLanguage(r *http.Request) string {
	if lang := strings.TrimSpace(r.FormValue("language")); lang != "" {
		return lang
	}

	return translate.English
}

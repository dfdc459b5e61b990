/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package ingest

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Config controls the external OCR tool.
type Config struct {
	Tesseract     string // binary name or path, default "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string
	PSM           int // page segmentation mode, 0 leaves the tesseract default
}

// Result is the text pulled out of one document.
type Result struct {
	Text     string
	Pages    int
	Source   SourceType
	Method   string
	Duration time.Duration
}

// Extractor turns uploaded files into plain text.
type Extractor struct {
	cfg    Config
	runner Runner
}

// NewExtractor returns an Extractor that shells out to tesseract for
// images. A nil runner uses os/exec.
func NewExtractor(cfg Config, runner Runner) *Extractor {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}

	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}

	if runner == nil {
		runner = execRunner{}
	}

	return &Extractor{cfg: cfg, runner: runner}
}

// Extract reads the file at path and returns its normalised text. An empty
// Text with a nil error means the document had nothing readable.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	source, err := DetectType(path, data)
	if err != nil {
		return Result{}, err
	}

	res := Result{Source: source}

	switch source {
	case SourcePDF:
		text, pages, err := extractPDFText(data)
		if err != nil {
			return res, err
		}

		res.Text, res.Pages, res.Method = text, pages, "pdf-text"
	case SourceImage:
		text, err := e.ocrImage(ctx, path)
		if err != nil {
			return res, err
		}

		res.Text, res.Pages, res.Method = text, 1, "image-ocr"
	default:
		res.Text, res.Pages, res.Method = string(data), 1, "plain-text"
	}

	res.Text = Normalize(res.Text)
	res.Duration = time.Since(start)

	if res.Text == "" {
		logger.Warn("Extraction returned empty text", "path", path, "source", source)
	} else {
		logger.Debug("Extracted text",
			"path", path,
			"source", source,
			"method", res.Method,
			"pages", res.Pages,
			"chars", len(res.Text),
			"duration_ms", res.Duration.Milliseconds(),
		)
	}

	return res, nil
}

// ocrImage runs "tesseract <file> stdout -l <lang>".
func (e *Extractor) ocrImage(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}

	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, _, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}

	return string(out), nil
}

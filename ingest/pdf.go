/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFText returns the text layer of every page joined by newlines,
// along with the page count. Pages that fail to decode are skipped.
func extractPDFText(data []byte) (text string, pages int, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = fmt.Errorf("%w: %v", errMalformedPDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	pages = reader.NumPage()

	var sb strings.Builder

	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			logger.Warn("Failed to extract PDF page text", "page", i, "error", err)
			continue
		}

		if pageText == "" {
			continue
		}

		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), pages, nil
}

// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/humaidq/labscan/db"
)

func TestWriteFeedbackWorkbook(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	items := []db.Feedback{
		{ID: id, Helpful: true, Comment: "clear results", Language: "hi", CreatedAt: created},
		{ID: uuid.New(), Helpful: false, Language: "en", CreatedAt: created.Add(time.Hour)},
	}

	var buf bytes.Buffer
	if err := writeFeedbackWorkbook(&buf, items); err != nil {
		t.Fatalf("writeFeedbackWorkbook returned error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}

	t.Cleanup(func() {
		_ = f.Close()
	})

	rows, err := f.GetRows(feedbackSheet)
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	for i, h := range feedbackHeaders {
		if rows[0][i] != h {
			t.Fatalf("header %d = %q, want %q", i, rows[0][i], h)
		}
	}

	want := []string{id.String(), "2025-03-14 09:26:53", "Yes", "hi", "clear results"}
	for i, v := range want {
		if rows[1][i] != v {
			t.Fatalf("row 1 col %d = %q, want %q", i, rows[1][i], v)
		}
	}

	if rows[2][2] != "No" {
		t.Fatalf("expected second row to be unhelpful, got %v", rows[2])
	}
}

func TestWriteFeedbackWorkbookEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeFeedbackWorkbook(&buf, nil); err != nil {
		t.Fatalf("writeFeedbackWorkbook returned error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}

	t.Cleanup(func() {
		_ = f.Close()
	})

	rows, err := f.GetRows(feedbackSheet)
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected only the header row, got %v, %v", rows, err)
	}
}

func TestFormatFeedbackSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		summary db.FeedbackSummary
		want    string
	}{
		{summary: db.FeedbackSummary{}, want: "No feedback yet"},
		{summary: db.FeedbackSummary{Total: 4, Helpful: 3}, want: "4 responses, 3 helpful (75%)"},
		{summary: db.FeedbackSummary{Total: 3, Helpful: 0}, want: "3 responses, 0 helpful (0%)"},
	}

	for _, tt := range tests {
		if got := formatFeedbackSummary(tt.summary); got != tt.want {
			t.Fatalf("formatFeedbackSummary(%+v) = %q, want %q", tt.summary, got, tt.want)
		}
	}
}

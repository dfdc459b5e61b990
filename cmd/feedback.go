/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/xuri/excelize/v2"

	"github.com/humaidq/labscan/db"
)

const feedbackSheet = "Feedback"

var feedbackHeaders = []string{"ID", "Submitted (UTC)", "Helpful", "Language", "Comment"}

var CmdFeedback = &cli.Command{
	Name:  "feedback",
	Usage: "Inspect stored feedback",
	Flags: []cli.Flag{databaseURLFlag},
	Commands: []*cli.Command{
		{
			Name:  "export",
			Usage: "Write all feedback to an XLSX workbook",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					Value:   "feedback.xlsx",
					Usage:   "output file",
				},
			},
			Action: feedbackExport,
		},
		{
			Name:   "summary",
			Usage:  "Print feedback totals",
			Action: feedbackSummary,
		},
	},
}

func connectFeedbackDB(ctx context.Context, cmd *cli.Command) error {
	databaseURL := cmd.String("database-url")
	if databaseURL == "" {
		return errDatabaseURLRequired
	}

	if err := exportDatabaseURL(databaseURL); err != nil {
		return fmt.Errorf("failed to set DATABASE_URL: %w", err)
	}

	if err := db.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}

func feedbackExport(ctx context.Context, cmd *cli.Command) error {
	out := cmd.String("out")
	if out == "" {
		return errOutputRequired
	}

	if err := connectFeedbackDB(ctx, cmd); err != nil {
		return err
	}
	defer db.Close()

	items, err := db.ListFeedback(ctx)
	if err != nil {
		return err
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}

	if err := writeFeedbackWorkbook(file, items); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", out, err)
	}

	fmt.Printf("Exported %d feedback entries to %s\n", len(items), out)

	return nil
}

func feedbackSummary(ctx context.Context, cmd *cli.Command) error {
	if err := connectFeedbackDB(ctx, cmd); err != nil {
		return err
	}
	defer db.Close()

	summary, err := db.GetFeedbackSummary(ctx)
	if err != nil {
		return err
	}

	fmt.Println(formatFeedbackSummary(summary))

	return nil
}

func formatFeedbackSummary(summary db.FeedbackSummary) string {
	if summary.Total == 0 {
		return "No feedback yet"
	}

	pct := float64(summary.Helpful) / float64(summary.Total) * 100

	return fmt.Sprintf("%d responses, %d helpful (%.0f%%)", summary.Total, summary.Helpful, pct)
}

// writeFeedbackWorkbook writes one row per feedback entry under a header
// row.
func writeFeedbackWorkbook(w io.Writer, items []db.Feedback) error {
	f := excelize.NewFile()

	defer func() {
		if err := f.Close(); err != nil {
			appLogger.Warn("Failed to close workbook", "error", err)
		}
	}()

	// New files start with "Sheet1".
	if err := f.SetSheetName("Sheet1", feedbackSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, h := range feedbackHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(feedbackSheet, cell, h)
	}

	for i, item := range items {
		row := i + 2
		values := []any{
			item.ID.String(),
			item.CreatedAt.UTC().Format(time.DateTime),
			item.HelpfulLabel(),
			item.Language,
			item.Comment,
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(feedbackSheet, cell, v)
		}
	}

	_ = f.SetColWidth(feedbackSheet, "A", "A", 38)
	_ = f.SetColWidth(feedbackSheet, "B", "B", 20)
	_ = f.SetColWidth(feedbackSheet, "C", "D", 10)
	_ = f.SetColWidth(feedbackSheet, "E", "E", 60)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}

	return nil
}

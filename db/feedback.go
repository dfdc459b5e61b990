/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxCommentLength caps stored comments, in runes.
const MaxCommentLength = 2000

// Feedback is one anonymous rating of an analysis.
type Feedback struct {
	ID        uuid.UUID
	Helpful   bool
	Comment   string
	Language  string
	CreatedAt time.Time
}

// HelpfulLabel renders Helpful as "Yes" or "No".
func (f Feedback) HelpfulLabel() string {
	if f.Helpful {
		return "Yes"
	}

	return "No"
}

// ParseHelpful accepts "Yes" or "No" in any case.
func ParseHelpful(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, ErrInvalidHelpful
	}
}

// SanitizeComment strips "=" and "@" so exported spreadsheets never see
// formula or mention prefixes, trims whitespace and caps the length.
func SanitizeComment(comment string) string {
	comment = strings.NewReplacer("=", "", "@", "").Replace(comment)
	comment = strings.TrimSpace(comment)

	if runes := []rune(comment); len(runes) > MaxCommentLength {
		comment = strings.TrimSpace(string(runes[:MaxCommentLength]))
	}

	return comment
}

// SaveFeedback stores a rating and returns its id.
func SaveFeedback(ctx context.Context, helpful bool, comment, language string) (uuid.UUID, error) {
	if pool == nil {
		return uuid.Nil, ErrDatabaseConnectionNotInitialized
	}

	if language == "" {
		language = "en"
	}

	id := uuid.New()

	_, err := pool.Exec(ctx, `
		INSERT INTO feedback (id, helpful, comment, language)
		VALUES ($1, $2, $3, $4)
	`, id, helpful, SanitizeComment(comment), language)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	logger.Info("Saved feedback", "id", id, "helpful", helpful, "language", language)

	return id, nil
}

// ListFeedback returns all feedback, oldest first.
func ListFeedback(ctx context.Context) ([]Feedback, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	rows, err := pool.Query(ctx, `
		SELECT id, helpful, comment, language, created_at
		FROM feedback
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var entries []Feedback

	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Helpful, &f.Comment, &f.Language, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}

		entries = append(entries, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback: %w", err)
	}

	return entries, nil
}

// FeedbackSummary counts ratings.
type FeedbackSummary struct {
	Total   int
	Helpful int
}

// GetFeedbackSummary returns total and helpful counts.
func GetFeedbackSummary(ctx context.Context) (FeedbackSummary, error) {
	if pool == nil {
		return FeedbackSummary{}, ErrDatabaseConnectionNotInitialized
	}

	var summary FeedbackSummary

	err := pool.QueryRow(ctx, `
		SELECT count(*), count(*) FILTER (WHERE helpful)
		FROM feedback
	`).Scan(&summary.Total, &summary.Helpful)
	if err != nil {
		return FeedbackSummary{}, fmt.Errorf("failed to summarize feedback: %w", err)
	}

	return summary, nil
}

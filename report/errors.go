/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import "errors"

var (
	// ErrEmptyInput is returned by Analyze when the text is empty or only whitespace.
	ErrEmptyInput = errors.New("empty text")
	// ErrNotMedical is returned by Analyze when the text does not look like a lab report.
	ErrNotMedical = errors.New("document does not appear to be a valid lab report")
)

/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package ingest

import "errors"

var (
	// ErrUnsupportedType is returned for files that are neither PDF, image
	// nor plain text.
	ErrUnsupportedType = errors.New("unsupported file type")
	errMalformedPDF    = errors.New("malformed PDF")
)

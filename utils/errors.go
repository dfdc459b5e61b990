/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import "errors"

var (
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrEmptyFilename      = errors.New("empty filename")
	ErrUploadTooLarge     = errors.New("upload exceeds size limit")
)

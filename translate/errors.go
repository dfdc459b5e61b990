/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package translate

import "errors"

var (
	// ErrNotConfigured is returned by NewClient when no endpoint or model is set.
	ErrNotConfigured = errors.New("translation endpoint and model must both be set")
	errEmptyResponse = errors.New("translation response had no choices")
)

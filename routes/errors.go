/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errUnreadableDocument = errors.New("unreadable document")
	errFeedbackDisabled   = errors.New("feedback storage is not configured")
)

/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errDatabaseURLRequired = errors.New("database-url is required (set via --database-url or DATABASE_URL env var)")
	errCSRFSecretRequired  = errors.New("CSRF_SECRET is required outside development")
	errInvalidRuntimeEnv   = errors.New(runtimeEnvVar + " must be one of: development, dev, production, prod")
	errFileArgRequired     = errors.New("a report file is required")
	errInvalidFormat       = errors.New("format must be one of: table, json")
	errOutputRequired      = errors.New("--out is required")
	errNotLabReport        = errors.New("the document does not appear to be a valid lab report")
)

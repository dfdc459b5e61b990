/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

const runtimeEnvVar = "LABSCAN_ENV"

type runtimeEnv string

const (
	runtimeDevelopment runtimeEnv = "development"
	runtimeProduction  runtimeEnv = "production"
)

// resolveRuntimeEnv parses LABSCAN_ENV. Unset means production.
func resolveRuntimeEnv(raw string) (runtimeEnv, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "production", "prod":
		return runtimeProduction, nil
	case "development", "dev":
		return runtimeDevelopment, nil
	default:
		return "", errInvalidRuntimeEnv
	}
}

// csrfSecret returns the configured CSRF secret. Development falls back
// to a per-process random secret.
func csrfSecret(env runtimeEnv, configured string) (string, error) {
	if secret := strings.TrimSpace(configured); secret != "" {
		return secret, nil
	}

	if env == runtimeDevelopment {
		appLogger.Warn("CSRF_SECRET not set, using a random secret for this process")
		return uuid.NewString(), nil
	}

	return "", errCSRFSecretRequired
}

// exportDatabaseURL hands a flag-provided URL to the db package, which
// reads DATABASE_URL.
func exportDatabaseURL(databaseURL string) error {
	return os.Setenv("DATABASE_URL", databaseURL)
}

/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package ingest

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

// Runner executes an external command. Tests swap in a stub.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)

	var out, errb bytes.Buffer

	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	duration := time.Since(start)

	if err != nil {
		logger.Error("Command failed",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", duration.Milliseconds(),
			"error", err,
			"stderr", truncate(errb.String(), 8<<10),
		)
	} else {
		logger.Debug("Command finished",
			"cmd", name,
			"duration_ms", duration.Milliseconds(),
			"stdout_bytes", out.Len(),
		)
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max] + "...(truncated)"
}

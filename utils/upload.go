/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadBytes is the largest accepted report upload.
const MaxUploadBytes = 10 << 20

// AllowedExtensions are the upload types the analyzer accepts.
var AllowedExtensions = []string{"png", "jpg", "jpeg", "pdf"}

// FileExtension returns the lowercased extension after the last dot, or
// "" when the name has none.
func FileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return ""
	}

	return strings.ToLower(filename[idx+1:])
}

// AllowedFile reports whether filename carries an accepted extension.
func AllowedFile(filename string) bool {
	ext := FileExtension(filename)
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}

	return false
}

// SanitizeFilename reduces a client-supplied name to its base name so it
// cannot escape the upload directory.
func SanitizeFilename(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.TrimLeft(name, ".")

	if name == "/" {
		return ""
	}

	return strings.TrimSpace(name)
}

// SaveUpload writes src into dir under a unique name derived from
// filename and returns the saved path. At most MaxUploadBytes are kept.
func SaveUpload(dir, filename string, src io.Reader) (string, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return "", ErrEmptyFilename
	}

	if !AllowedFile(name) {
		return "", ErrFileTypeNotAllowed
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	target := filepath.Join(dir, uuid.NewString()+"_"+name)

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	written, copyErr := io.Copy(dst, io.LimitReader(src, MaxUploadBytes+1))
	closeErr := dst.Close()

	switch {
	case copyErr != nil:
		_ = os.Remove(target)
		return "", fmt.Errorf("failed to write upload: %w", copyErr)
	case closeErr != nil:
		_ = os.Remove(target)
		return "", fmt.Errorf("failed to close upload: %w", closeErr)
	case written > MaxUploadBytes:
		_ = os.Remove(target)
		return "", ErrUploadTooLarge
	}

	return target, nil
}

// DeleteFile removes the named file. A missing file is not an error.
func DeleteFile(name string) error {
	if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}

	return nil
}

// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAllowedFile(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"report.pdf":      true,
		"scan.PNG":        true,
		"photo.jpeg":      true,
		"photo.jpg":       true,
		"archive.tar.pdf": true,
		"notes.txt":       false,
		"pdf":             false,
		"":                false,
		"report.":         false,
	}

	for name, want := range tests {
		if got := AllowedFile(name); got != want {
			t.Fatalf("AllowedFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"report.pdf":                "report.pdf",
		"../../etc/passwd.pdf":      "passwd.pdf",
		`C:\Users\me\scan.png`:      "scan.png",
		"/abs/path/lab results.jpg": "lab results.jpg",
		".hidden.pdf":               "hidden.pdf",
		"/":                         "",
		"":                          "",
	}

	for in, want := range tests {
		if got := SanitizeFilename(in); got != want {
			t.Fatalf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSaveUploadAndDelete(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "uploads")

	saved, err := SaveUpload(dir, "../report.pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("SaveUpload returned error: %v", err)
	}

	if filepath.Dir(saved) != dir {
		t.Fatalf("expected file inside %s, got %s", dir, saved)
	}

	if !strings.HasSuffix(saved, "_report.pdf") {
		t.Fatalf("expected sanitised name suffix, got %s", saved)
	}

	data, err := os.ReadFile(saved)
	if err != nil || string(data) != "%PDF-1.4" {
		t.Fatalf("unexpected saved content %q (%v)", data, err)
	}

	if err := DeleteFile(saved); err != nil {
		t.Fatalf("DeleteFile returned error: %v", err)
	}

	if _, err := os.Stat(saved); !os.IsNotExist(err) {
		t.Fatalf("expected file to be gone, got %v", err)
	}

	if err := DeleteFile(saved); err != nil {
		t.Fatalf("deleting a missing file should not fail: %v", err)
	}
}

func TestSaveUploadRejects(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := SaveUpload(dir, "notes.txt", strings.NewReader("x")); !errors.Is(err, ErrFileTypeNotAllowed) {
		t.Fatalf("expected ErrFileTypeNotAllowed, got %v", err)
	}

	if _, err := SaveUpload(dir, "", strings.NewReader("x")); !errors.Is(err, ErrEmptyFilename) {
		t.Fatalf("expected ErrEmptyFilename, got %v", err)
	}

	big := bytes.NewReader(make([]byte, MaxUploadBytes+1))
	if _, err := SaveUpload(dir, "big.png", big); !errors.Is(err, ErrUploadTooLarge) {
		t.Fatalf("expected ErrUploadTooLarge, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	if len(entries) != 0 {
		t.Fatalf("expected rejected uploads to leave no files, got %d", len(entries))
	}
}

// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flamego/flamego"

	"github.com/humaidq/labscan/routes"
	"github.com/humaidq/labscan/translate"
)

func TestConfigureEmptyNotFoundHandlerReturnsStatusOnly(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	configureEmptyNotFoundHandler(f)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 404 body, got %q", rec.Body.String())
	}
}

func TestNewAppMountsRoutes(t *testing.T) {
	t.Parallel()

	analyzer := &routes.Analyzer{Translator: translate.Passthrough{}, UploadDir: t.TempDir()}

	f, err := newApp(analyzer, "test-secret", runtimeDevelopment)
	if err != nil {
		t.Fatalf("newApp returned error: %v", err)
	}

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "health", method: http.MethodGet, path: "/api/health", wantStatus: http.StatusOK, wantBody: `"healthy"`},
		{name: "languages", method: http.MethodGet, path: "/api/languages", wantStatus: http.StatusOK, wantBody: `"Tamil"`},
		{name: "preflight", method: http.MethodOptions, path: "/api/analyze", wantStatus: http.StatusNoContent},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK, wantBody: "labscan_"},
		{name: "index", method: http.MethodGet, path: "/", wantStatus: http.StatusOK, wantBody: `name="_csrf"`},
		{name: "stylesheet", method: http.MethodGet, path: "/style.css", wantStatus: http.StatusOK},
		{name: "unknown", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			f.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("%s %s: expected %d, got %d", tt.method, tt.path, tt.wantStatus, rec.Code)
			}

			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Fatalf("%s %s: expected body to contain %q, got %q", tt.method, tt.path, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestNewAppRejectsFormPostWithoutCSRFToken(t *testing.T) {
	t.Parallel()

	f, err := newApp(&routes.Analyzer{UploadDir: t.TempDir()}, "test-secret", runtimeDevelopment)
	if err != nil {
		t.Fatalf("newApp returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader("helpful=Yes"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code == http.StatusSeeOther || rec.Code == http.StatusOK {
		t.Fatalf("expected CSRF rejection, got %d", rec.Code)
	}
}

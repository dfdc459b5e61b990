// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/labscan/ingest"
)

var errTestBoom = errors.New("boom")

const testReport = "Test Name Result Unit Reference Range\n" +
	"Hemoglobin 11.2 g/dL 13.0-17.0\n" +
	"Glucose 180 mg/dL 70-140\n" +
	"Creatinine 1.0 mg/dL 0.7-1.3"

type testSession struct {
	id    string
	data  map[interface{}]interface{}
	flash interface{}
}

func newTestSession() *testSession {
	return &testSession{
		id:   "test-session",
		data: make(map[interface{}]interface{}),
	}
}

func (s *testSession) ID() string {
	return s.id
}

func (s *testSession) RegenerateID(http.ResponseWriter, *http.Request) error {
	return nil
}

func (s *testSession) Get(key interface{}) interface{} {
	return s.data[key]
}

func (s *testSession) Set(key, val interface{}) {
	s.data[key] = val
}

func (s *testSession) SetFlash(val interface{}) {
	s.flash = val
}

func (s *testSession) Delete(key interface{}) {
	delete(s.data, key)
}

func (s *testSession) Flush() {
	s.data = make(map[interface{}]interface{})
}

func (s *testSession) Encode() ([]byte, error) {
	return nil, nil
}

func (s *testSession) HasChanged() bool {
	return true
}

type testCSRF struct {
	token string
}

func (c testCSRF) Token() string {
	return c.token
}

func (c testCSRF) ValidToken(string) bool {
	return true
}

func (c testCSRF) Error(http.ResponseWriter) {}

func (c testCSRF) Validate(flamego.Context) {}

// testTemplate records the page a handler rendered.
type testTemplate struct {
	w      http.ResponseWriter
	status int
	name   string
}

func (t *testTemplate) HTML(status int, name string) {
	t.status = status
	t.name = name
	t.w.WriteHeader(status)
}

// fakeExtractor returns a canned result and records whether the saved
// upload existed when it was called.
type fakeExtractor struct {
	result     ingest.Result
	err        error
	calledWith string
	existed    bool
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (ingest.Result, error) {
	f.calledWith = path
	_, statErr := os.Stat(path)
	f.existed = statErr == nil

	return f.result, f.err
}

func newTestAnalyzer(t *testing.T, ex *fakeExtractor) *Analyzer {
	t.Helper()

	return &Analyzer{Extractor: ex, UploadDir: t.TempDir()}
}

// uploadPart describes the file part of a multipart body. A nil part
// leaves the file field out entirely.
type uploadPart struct {
	filename string
	content  []byte
}

func newUploadRequest(t *testing.T, path string, part *uploadPart, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field %s: %v", key, err)
		}
	}

	if part != nil {
		fw, err := mw.CreateFormFile(uploadField, part.filename)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}

		if _, err := fw.Write(part.content); err != nil {
			t.Fatalf("failed to write file part: %v", err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func assertFlash(t *testing.T, s *testSession, wantType FlashType, wantMessage string) {
	t.Helper()

	msg, ok := s.flash.(FlashMessage)
	if !ok {
		t.Fatalf("expected flash message, got %T", s.flash)
	}

	if msg.Type != wantType || msg.Message != wantMessage {
		t.Fatalf("unexpected flash message: %#v", msg)
	}
}

func assertNoFlash(t *testing.T, s *testSession) {
	t.Helper()

	if s.flash != nil {
		t.Fatalf("expected no flash message, got %#v", s.flash)
	}
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, wantLocation string) {
	t.Helper()

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	if got := rec.Header().Get("Location"); got != wantLocation {
		t.Fatalf("expected redirect %q, got %q", wantLocation, got)
	}
}

func TestSetFlashHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		set     func(session.Session, string)
		wantTyp FlashType
	}{
		{name: "error", set: SetErrorFlash, wantTyp: FlashError},
		{name: "success", set: SetSuccessFlash, wantTyp: FlashSuccess},
		{name: "info", set: SetInfoFlash, wantTyp: FlashInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSession()
			tt.set(s, "hello")

			assertFlash(t, s, tt.wantTyp, "hello")
		})
	}
}

func TestFlashFromSession(t *testing.T) {
	t.Parallel()

	if _, ok := flashFromSession(nil); ok {
		t.Fatalf("expected nil flash to be ignored")
	}

	if _, ok := flashFromSession("plain string"); ok {
		t.Fatalf("expected non-FlashMessage value to be ignored")
	}

	msg, ok := flashFromSession(FlashMessage{Type: FlashInfo, Message: "hi"})
	if !ok || msg.Message != "hi" {
		t.Fatalf("unexpected flash: %#v, %v", msg, ok)
	}
}

func TestCSRFInjector(t *testing.T) {
	t.Parallel()

	handler, ok := CSRFInjector().(func(csrf.CSRF, template.Data))
	if !ok {
		t.Fatalf("unexpected CSRFInjector handler type")
	}

	data := template.Data{}
	handler(testCSRF{token: "csrf-123"}, data)

	if got, ok := data["csrf_token"].(string); !ok || got != "csrf-123" {
		t.Fatalf("unexpected csrf_token value: %#v", data["csrf_token"])
	}
}

func TestNoCacheHeaders(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	f.Use(NoCacheHeaders())
	f.Get("/", func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("Cache-Control"); got != "no-store, max-age=0" {
		t.Fatalf("unexpected Cache-Control: %q", got)
	}

	if got := rec.Header().Get("Pragma"); got != "no-cache" {
		t.Fatalf("unexpected Pragma: %q", got)
	}

	if got := rec.Header().Get("X-Robots-Tag"); got == "" {
		t.Fatalf("expected X-Robots-Tag header")
	}
}

func TestAPICORS(t *testing.T) {
	t.Parallel()

	called := false

	f := flamego.New()
	f.Group("/api", func() {
		f.Options("/analyze", func() {})
		f.Get("/health", func(c flamego.Context) {
			called = true

			c.ResponseWriter().WriteHeader(http.StatusOK)
		})
	}, APICORS())

	preflight := httptest.NewRecorder()
	f.ServeHTTP(preflight, httptest.NewRequest(http.MethodOptions, "/api/analyze", nil))

	if preflight.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", preflight.Code)
	}

	if got := preflight.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected handler to run, called=%v status=%d", called, rec.Code)
	}

	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
		t.Fatalf("unexpected Access-Control-Allow-Methods: %q", got)
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	withXFF := httptest.NewRequest(http.MethodGet, "http://example.test", nil)
	withXFF.Header.Set("X-Forwarded-For", " 203.0.113.4, 198.51.100.2 ")

	withXFF.RemoteAddr = "10.0.0.1:1234"
	if got := clientIP(withXFF); got != "203.0.113.4" {
		t.Fatalf("expected X-Forwarded-For IP, got %q", got)
	}

	withRealIP := httptest.NewRequest(http.MethodGet, "http://example.test", nil)
	withRealIP.Header.Set("X-Real-IP", "198.51.100.9")

	withRealIP.RemoteAddr = "10.0.0.2:1234"
	if got := clientIP(withRealIP); got != "198.51.100.9" {
		t.Fatalf("expected X-Real-IP, got %q", got)
	}

	withRemoteAddr := httptest.NewRequest(http.MethodGet, "http://example.test", nil)

	withRemoteAddr.RemoteAddr = "192.0.2.10:8080"
	if got := clientIP(withRemoteAddr); got != "192.0.2.10" {
		t.Fatalf("expected host from RemoteAddr, got %q", got)
	}

	withRawRemoteAddr := httptest.NewRequest(http.MethodGet, "http://example.test", nil)

	withRawRemoteAddr.RemoteAddr = "not-a-host-port"
	if got := clientIP(withRawRemoteAddr); got != "not-a-host-port" {
		t.Fatalf("expected raw RemoteAddr fallback, got %q", got)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/danielhkuo/bfhl/cliparse"
	"github.com/danielhkuo/bfhl/db"
	"github.com/danielhkuo/bfhl/models"
)

// SetupTestStore opens a fresh SQLite store in a temporary directory.
// It is closed automatically when the test ends.
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Open(cliparse.DatabaseSQLite, filepath.Join(t.TempDir(), "bfhl_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3001,
		DatabaseType: cliparse.DatabaseSQLite,
		CORSOrigin:   cliparse.DefaultCORSOrigin,
		MaxBodyBytes: cliparse.DefaultMaxBodyBytes,
		IPHashSalt:   "test-ip-salt",
		Identity:     cliparse.DefaultIdentity,
	}
}

// FailingStore is a submission store whose every call returns Err
type FailingStore struct {
	Err error
}

func (s FailingStore) Record(ctx context.Context, sub models.Submission) error {
	return s.Err
}

func (s FailingStore) Get(ctx context.Context, id string) (models.Submission, error) {
	return models.Submission{}, s.Err
}

func (s FailingStore) Recent(ctx context.Context, limit int) ([]models.Submission, error) {
	return nil, s.Err
}

// MemoryStore keeps submissions in memory, in insertion order
type MemoryStore struct {
	mu   sync.Mutex
	subs []models.Submission
}

func (s *MemoryStore) Record(ctx context.Context, sub models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		if sub.ID == id {
			return sub, nil
		}
	}
	return models.Submission{}, db.ErrNotFound
}

func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Submission{}
	for i := len(s.subs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.subs[i])
	}
	return out, nil
}

// Len returns the number of recorded submissions
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeRawRequest creates an HTTP test request with a literal body
func MakeRawRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks the status and the {"is_success": false, "error": ...} body
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	AssertStatus(t, w, status)

	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.IsSuccess {
		t.Error("Expected is_success false")
	}
	if resp.Error != message {
		t.Errorf("Expected error %q, got %q", message, resp.Error)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/bfhl/models"
	"github.com/danielhkuo/bfhl/testutil"
)

func TestDocs(t *testing.T) {
	handler := NewBFHLHandler(nil, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.Docs(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DocsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Message != "BFHL API is running!" {
		t.Errorf("Unexpected message %q", resp.Message)
	}
	if _, ok := resp.Endpoints["POST /bfhl"]; !ok {
		t.Error("Expected POST /bfhl in endpoints")
	}

	expected := models.ClassifyResponse{
		IsSuccess:         true,
		UserID:            "john_doe_17091999",
		Email:             "john@xyz.com",
		RollNumber:        "ABCD123",
		OddNumbers:        []string{"5"},
		EvenNumbers:       []string{"2", "4", "92"},
		Alphabets:         []string{"A", "Y", "B"},
		SpecialCharacters: []string{"&", "-", "*"},
		Sum:               "103",
		ConcatString:      "ByA",
	}
	if diff := cmp.Diff(expected, resp.Example.Output); diff != "" {
		t.Errorf("Example output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ExampleInput, resp.Example.Input["data"]); diff != "" {
		t.Errorf("Example input mismatch (-want +got):\n%s", diff)
	}
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	Health(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Status != "OK" {
		t.Errorf("Expected status OK, got %s", resp.Status)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("Timestamp %q is not RFC3339: %v", resp.Timestamp, err)
	}
}

func TestNotFound(t *testing.T) {
	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()

	NotFound(w, req)

	testutil.AssertError(t, w, http.StatusNotFound, models.ErrMsgNotFound)
}

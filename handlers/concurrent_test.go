// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/bfhl/models"
	"github.com/danielhkuo/bfhl/testutil"
)

// TestConcurrentClassification verifies that simultaneous requests don't
// see each other's data and that every one of them is recorded
func TestConcurrentClassification(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewBFHLHandler(store, testutil.GetTestConfig())

	numClients := 20

	// Track results
	var successCount atomic.Int32
	var wg sync.WaitGroup
	errs := make(chan string, numClients)

	for i := 0; i < numClients; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			// each client sends its own number and letter
			letter := string(rune('a' + n%26))
			data := []string{strconv.Itoa(n), letter}

			req := testutil.MakeRequest("POST", "/bfhl", map[string][]string{"data": data}, nil)
			w := httptest.NewRecorder()

			handler.Process(w, req)

			if w.Code != http.StatusOK {
				errs <- "status " + strconv.Itoa(w.Code)
				return
			}

			var resp models.ClassifyResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				errs <- err.Error()
				return
			}
			if resp.Sum != strconv.Itoa(n) {
				errs <- "client " + strconv.Itoa(n) + " got sum " + resp.Sum
				return
			}
			if len(resp.Alphabets) != 1 || resp.Alphabets[0] != string(rune('A'+n%26)) {
				errs <- "client " + strconv.Itoa(n) + " got wrong alphabets"
				return
			}
			successCount.Add(1)
		}(i)
	}

	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}

	// All requests should succeed
	if int(successCount.Load()) != numClients {
		t.Errorf("Expected %d successful requests, got %d", numClients, successCount.Load())
	}

	subs, err := store.Recent(t.Context(), 100)
	if err != nil {
		t.Fatalf("Failed to list submissions: %v", err)
	}
	if len(subs) != numClients {
		t.Errorf("Expected %d recorded submissions, got %d", numClients, len(subs))
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/bfhl/classify"
	"github.com/danielhkuo/bfhl/middleware"
	"github.com/danielhkuo/bfhl/models"
)

// ExampleInput is the sample request shown on the docs page
var ExampleInput = []string{"2", "a", "y", "4", "&", "-", "*", "5", "92", "b"}

// timestamps match JavaScript's Date.toISOString
const isoMillis = "2006-01-02T15:04:05.000Z"

// Docs handles GET /
func (h *BFHLHandler) Docs(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.DocsResponse{
		Message: "BFHL API is running!",
		Endpoints: map[string]string{
			"POST /bfhl":                 "Process data array and return categorized results",
			"GET /bfhl/submissions":      "List recent submissions (when history is enabled)",
			"GET /bfhl/submissions/{id}": "Get one recorded submission",
			"GET /health":                "Liveness probe",
		},
		Example: models.DocsExample{
			Input:  map[string][]string{"data": ExampleInput},
			Output: BuildResponse(h.cfg.Identity, classify.Tokens(ExampleInput)),
		},
	})
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(isoMillis),
	})
}

// NotFound answers every unmatched route
func NotFound(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusNotFound, models.ErrMsgNotFound)
}

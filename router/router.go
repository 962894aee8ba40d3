// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/bfhl/cliparse"
	"github.com/danielhkuo/bfhl/handlers"
	"github.com/danielhkuo/bfhl/middleware"
)

// NewRouter registers every route. store may be nil to disable history.
func NewRouter(store handlers.SubmissionStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	bfhlHandler := handlers.NewBFHLHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", handlers.Health)

	// Classification
	mux.HandleFunc("POST /bfhl", middleware.WithLogging(bfhlHandler.Process))

	// Submission history
	mux.HandleFunc("GET /bfhl/submissions", middleware.WithLogging(bfhlHandler.ListSubmissions))
	mux.HandleFunc("GET /bfhl/submissions/{id}", middleware.WithLogging(bfhlHandler.GetSubmission))

	// Root endpoint
	mux.HandleFunc("GET /{$}", middleware.WithLogging(bfhlHandler.Docs))

	// Everything else, including wrong methods on known paths
	mux.HandleFunc("/", middleware.WithLogging(handlers.NotFound))

	return mux
}

// NewHandler wraps the router with the server-wide middleware
func NewHandler(store handlers.SubmissionStore, cfg cliparse.Config) http.Handler {
	return middleware.Recover(
		middleware.SecureHeaders(
			middleware.CORS(cfg.CORSOrigin)(NewRouter(store, cfg)),
		),
	)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the BFHL API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

NewHandler adds panic recovery, security headers and CORS on top:

	server := http.Server{Handler: router.NewHandler(store, cfg)}

# Endpoints

Health:

	GET /health

Classification:

	POST /bfhl - Classify a data array

Submission history (404 when no database is configured):

	GET /bfhl/submissions      - Recent submissions
	GET /bfhl/submissions/{id} - One submission

Docs:

	GET / - Usage and a worked example

Any other method or path gets a JSON 404 "Endpoint not found". The
catch-all "/" pattern also takes wrong methods on known paths, so
POST /health is a 404, not a 405.
*/
package router

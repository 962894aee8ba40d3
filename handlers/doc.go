// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the BFHL API.

# Handler Types

BFHLHandler owns the classification endpoint, the docs page and the
submission history. It is created with an optional store and the config:

	bfhlHandler := handlers.NewBFHLHandler(store, cfg)

Pass a nil store to disable history; Process then skips recording and
the history endpoints answer 404.

# Classification

	POST /bfhl {"data": ["2", "a", "y", "4", "&", "-", "*", "5", "92", "b"]}

The body is decoded, "data" is validated and converted to string tokens
(DecodeTokens), classified by package classify, and returned with the
configured identity (BuildResponse). Failures map to:

  - 400 "Invalid JSON body": body is not JSON
  - 400 "Invalid input: 'data' must be an array": data missing, null, or not an array
  - 413 "Request body too large": body over cfg.MaxBodyBytes

A recorded call carries its history ID in the X-Submission-ID header.
Recording errors are logged and never change the response.

# Submission History

	GET /bfhl/submissions?limit=N → ListSubmissions (newest first, 1..100)
	GET /bfhl/submissions/{id}    → GetSubmission

# Meta

	GET /       → Docs (example computed with the live classifier)
	GET /health → Health
	anything else → NotFound
*/
package handlers

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /bfhl", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request gets an X-Request-ID: the incoming header if
present, otherwise a new UUID. Handlers read it with RequestID(ctx).

# Server-wide Middleware

	handler := middleware.Recover(
		middleware.SecureHeaders(
			middleware.CORS(cfg.CORSOrigin)(mux),
		),
	)

  - Recover: panics become 500 {"is_success": false, "error": "Internal server error"}
  - SecureHeaders: nosniff, frame options, CSP, HSTS, referrer policy
  - CORS: configured origin, credentials allowed, 204 on preflight

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies with a size cap:

	var req models.ClassifyRequest
	if err := middleware.ParseJSONBody(w, r, cfg.MaxBodyBytes, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrMsgInvalidJSON)
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for IP hashing in the submission history.
*/
package middleware

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the BFHL API server.

The server exposes POST /bfhl, which sorts an array of string tokens into
numbers (split into even and odd), single letters and single special
characters, sums the numbers, and builds an alternating-case string from
the letters in reverse.

# Starting the Server

No configuration is required:

	go run .

Or with flags:

	go run . -p 3001 -name jane_doe -dob 01012000 -email jane@xyz.com -roll ABC123

To keep a history of submissions:

	DATABASE_TYPE=sqlite DATABASE_URL=file:bfhl.db go run .
	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Settings come from flags, then the environment, then a .env file, then
defaults:

  - PORT (-p): Server port (default: 3001)
  - USER_FULL_NAME, USER_EMAIL, USER_ROLL_NUMBER, USER_DATE_OF_BIRTH:
    identity returned with every response
  - DATABASE_URL (-d), DATABASE_TYPE (-t): submission history
  - CORS_ORIGIN (--cors-origin): allowed frontend origin
  - MAX_BODY_BYTES (--max-body): request body cap

# Architecture

  - classify: the token classifier (pure, no I/O)
  - handlers: HTTP request handlers (classification, history, docs, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, security headers, panic recovery, logging, JSON helpers
  - models: Request/response types
  - db: Submission history on PostgreSQL or SQLite
  - fingerprint: Input and client IP hashes
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

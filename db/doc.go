// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the submission history.

# Opening a Store

Open picks the driver from the database type, pings, and creates the schema:

	store, err := db.Open("postgres", "postgres://...")
	store, err := db.Open("sqlite", "file:bfhl.db")

# Tables

  - submission: one row per successful POST /bfhl call

Columns:

  - id: UUID
  - inputs_hash: order-sensitive hash of the input tokens
  - token_count, dropped_count: input size and tokens matching no category
  - ip_hash, user_agent: client fingerprint (never returned by the API)
  - payload: JSON with the input tokens and the response body
  - created_at: fixed-width UTC text timestamp

# Queries

	err := store.Record(ctx, sub)
	sub, err := store.Get(ctx, id)         // ErrNotFound if missing
	subs, err := store.Recent(ctx, 20)     // newest first

Queries are written with ? placeholders and rebound to $n for PostgreSQL.

# Safety

CreateSchema uses IF NOT EXISTS and can run on every startup.
*/
package db

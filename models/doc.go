// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - ClassifyRequest: data (kept raw until validated)

# Response Types

  - ClassifyResponse: is_success, user_id, email, roll_number,
    even_numbers, odd_numbers, alphabets, special_characters, sum,
    concat_string
  - HealthResponse: status, timestamp
  - DocsResponse: message, endpoints, example
  - SubmissionListResponse / SubmissionResponse: recorded history
  - ErrorResponse: is_success (always false), error

# Domain Types

  - Identity: static name/email/roll number/date of birth; UserID()
    derives the user_id field
  - Submission: one persisted classification call

Client IP hashes and user agents are stored but never serialized.
*/
package models

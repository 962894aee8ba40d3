// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Error messages returned to clients
const (
	ErrMsgInvalidData      = "Invalid input: 'data' must be an array"
	ErrMsgInvalidJSON      = "Invalid JSON body"
	ErrMsgBodyTooLarge     = "Request body too large"
	ErrMsgInternal         = "Internal server error"
	ErrMsgNotFound         = "Endpoint not found"
	ErrMsgHistoryDisabled  = "Submission history is not enabled"
	ErrMsgSubmissionAbsent = "Submission not found"
)

// Identity is the static user record attached to every response.
// It is loaded once at startup and never changes.
type Identity struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	RollNumber  string `json:"roll_number"`
	DateOfBirth string `json:"date_of_birth"`
}

// UserID joins name and date of birth with an underscore, lowercased
func (i Identity) UserID() string {
	return strings.ToLower(i.FullName + "_" + i.DateOfBirth)
}

// Request types

// data stays raw so the handler can tell missing, null and non-array apart
type ClassifyRequest struct {
	Data json.RawMessage `json:"data"`
}

// Response types

type ClassifyResponse struct {
	IsSuccess         bool     `json:"is_success"`
	UserID            string   `json:"user_id"`
	Email             string   `json:"email"`
	RollNumber        string   `json:"roll_number"`
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type DocsExample struct {
	Input  map[string][]string `json:"input"`
	Output ClassifyResponse    `json:"output"`
}

type DocsResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
	Example   DocsExample       `json:"example"`
}

type SubmissionListResponse struct {
	IsSuccess   bool         `json:"is_success"`
	Submissions []Submission `json:"submissions"`
}

type SubmissionResponse struct {
	IsSuccess  bool       `json:"is_success"`
	Submission Submission `json:"submission"`
}

// Domain types

// Submission is one recorded POST /bfhl call
type Submission struct {
	ID           string           `json:"id"`
	InputsHash   string           `json:"inputs_hash"`
	TokenCount   int              `json:"token_count"`
	DroppedCount int              `json:"dropped_count"`
	IPHash       *string          `json:"-"` // Never expose in JSON
	UserAgent    *string          `json:"-"` // Never expose in JSON
	Payload      SubmissionRecord `json:"payload"`
	CreatedAt    time.Time        `json:"created_at"`
}

// SubmissionRecord is the JSON payload column of a submission
type SubmissionRecord struct {
	Data     []string         `json:"data"`
	Response ClassifyResponse `json:"response"`
}

// Error response

type ErrorResponse struct {
	IsSuccess bool   `json:"is_success"`
	Error     string `json:"error"`
}

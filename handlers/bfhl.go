// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/bfhl/classify"
	"github.com/danielhkuo/bfhl/cliparse"
	"github.com/danielhkuo/bfhl/fingerprint"
	"github.com/danielhkuo/bfhl/middleware"
	"github.com/danielhkuo/bfhl/models"
)

// SubmissionIDHeader returns the history ID of a recorded classification
const SubmissionIDHeader = "X-Submission-ID"

// SubmissionStore persists classification calls. *db.Store implements it.
type SubmissionStore interface {
	Record(ctx context.Context, sub models.Submission) error
	Get(ctx context.Context, id string) (models.Submission, error)
	Recent(ctx context.Context, limit int) ([]models.Submission, error)
}

type BFHLHandler struct {
	store SubmissionStore
	cfg   cliparse.Config
}

// NewBFHLHandler creates the classification handler.
// store may be nil, in which case nothing is recorded.
func NewBFHLHandler(store SubmissionStore, cfg cliparse.Config) *BFHLHandler {
	return &BFHLHandler{store: store, cfg: cfg}
}

// Process handles POST /bfhl
func (h *BFHLHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req models.ClassifyRequest
	if err := middleware.ParseJSONBody(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxErr):
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, models.ErrMsgBodyTooLarge)
		case errors.As(err, &typeErr):
			// valid JSON that is not an object, e.g. a bare array
			middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrMsgInvalidData)
		default:
			middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrMsgInvalidJSON)
		}
		return
	}

	tokens, err := DecodeTokens(req.Data)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrMsgInvalidData)
		return
	}

	res := classify.Tokens(tokens)
	resp := BuildResponse(h.cfg.Identity, res)

	if h.store != nil {
		if id, err := h.record(r, tokens, res, resp); err != nil {
			slog.Error("failed to record submission",
				"error", err,
				"request_id", middleware.RequestID(r.Context()),
			)
		} else {
			w.Header().Set(SubmissionIDHeader, id)
		}
	}

	slog.Info("data classified",
		"tokens", len(tokens),
		"numbers", len(res.Numbers),
		"alphabets", len(res.Alphabets),
		"specials", len(res.SpecialCharacters),
		"dropped", len(res.Dropped),
	)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// BuildResponse attaches the identity record to a classification result
func BuildResponse(identity models.Identity, res classify.Result) models.ClassifyResponse {
	return models.ClassifyResponse{
		IsSuccess:         true,
		UserID:            identity.UserID(),
		Email:             identity.Email,
		RollNumber:        identity.RollNumber,
		OddNumbers:        res.OddNumbers,
		EvenNumbers:       res.EvenNumbers,
		Alphabets:         res.Alphabets,
		SpecialCharacters: res.SpecialCharacters,
		Sum:               res.Sum,
		ConcatString:      res.ConcatString,
	}
}

func (h *BFHLHandler) record(r *http.Request, tokens []string, res classify.Result, resp models.ClassifyResponse) (string, error) {
	ipHash := fingerprint.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)

	sub := models.Submission{
		ID:           uuid.NewString(),
		InputsHash:   fingerprint.HashTokens(tokens),
		TokenCount:   len(tokens),
		DroppedCount: len(res.Dropped),
		IPHash:       &ipHash,
		Payload: models.SubmissionRecord{
			Data:     tokens,
			Response: resp,
		},
		CreatedAt: time.Now().UTC(),
	}
	if ua := r.UserAgent(); ua != "" {
		sub.UserAgent = &ua
	}

	if err := h.store.Record(r.Context(), sub); err != nil {
		return "", err
	}
	return sub.ID, nil
}

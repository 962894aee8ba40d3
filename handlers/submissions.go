// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/bfhl/db"
	"github.com/danielhkuo/bfhl/middleware"
	"github.com/danielhkuo/bfhl/models"
)

const (
	DefaultSubmissionLimit = 20
	MaxSubmissionLimit     = 100
)

// ListSubmissions handles GET /bfhl/submissions?limit=N
func (h *BFHLHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, models.ErrMsgHistoryDisabled)
		return
	}

	limit := DefaultSubmissionLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > MaxSubmissionLimit {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	subs, err := h.store.Recent(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrMsgInternal)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmissionListResponse{
		IsSuccess:   true,
		Submissions: subs,
	})
}

// GetSubmission handles GET /bfhl/submissions/{id}
func (h *BFHLHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, models.ErrMsgHistoryDisabled)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	sub, err := h.store.Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.ErrMsgSubmissionAbsent)
		return
	}
	if err != nil {
		slog.Error("failed to get submission", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrMsgInternal)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmissionResponse{
		IsSuccess:  true,
		Submission: sub,
	})
}

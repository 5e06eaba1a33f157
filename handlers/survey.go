// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/survey-collect/cliparse"
	"github.com/danielhkuo/survey-collect/export"
	"github.com/danielhkuo/survey-collect/ident"
	"github.com/danielhkuo/survey-collect/middleware"
	"github.com/danielhkuo/survey-collect/models"
	"github.com/danielhkuo/survey-collect/store"
)

type SurveyHandler struct {
	store *store.Store
	csv   *export.Projector
	cfg   cliparse.Config
}

func NewSurveyHandler(st *store.Store, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{
		store: st,
		csv:   export.NewProjector(cfg.CSVPath()),
		cfg:   cfg,
	}
}

// SubmitSurvey handles POST /api/submit-survey
func (h *SurveyHandler) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	var payload models.Response
	if err := middleware.ParseJSONBody(r, &payload); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if payload == nil {
		payload = models.Response{}
	}

	// Validate input before touching storage
	if payload.UserType() == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user type is required")
		return
	}

	// Default the timestamp, overwrite any caller-supplied ID
	if payload.Timestamp() == "" {
		payload[models.KeyTimestamp] = time.Now().UTC().Format(time.RFC3339)
	}

	responseID, err := ident.NewResponseID()
	if err != nil {
		slog.Error("failed to generate response ID", "error", err)
		middleware.ErrorWithDetails(w, http.StatusInternalServerError, "Failed to save response", err.Error())
		return
	}
	payload[models.KeyID] = responseID

	all, err := h.store.Append(payload)
	if err != nil {
		slog.Error("failed to append response", "error", err)
		middleware.ErrorWithDetails(w, http.StatusInternalServerError, "Failed to save response", err.Error())
		return
	}

	// Re-project the CSV from the full post-append list, synchronously
	// so the artifact never trails the log
	if err := h.csv.Project(all); err != nil {
		slog.Error("failed to project CSV", "error", err)
		middleware.ErrorWithDetails(w, http.StatusInternalServerError, "Failed to export responses", err.Error())
		return
	}

	slog.Info("survey response saved",
		"response_id", responseID,
		"user_type", payload.UserType(),
		"total", len(all),
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitSurveyResponse{
		Message:        "Survey response saved successfully",
		ResponseID:     responseID,
		TotalResponses: len(all),
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/danielhkuo/survey-collect/cliparse"
	"github.com/danielhkuo/survey-collect/middleware"
	"github.com/danielhkuo/survey-collect/models"
	"github.com/danielhkuo/survey-collect/store"
)

type QueryHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewQueryHandler(st *store.Store, cfg cliparse.Config) *QueryHandler {
	return &QueryHandler{store: st, cfg: cfg}
}

// GetResponses handles GET /api/responses
func (h *QueryHandler) GetResponses(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.ReadAll()
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorWithDetails(w, http.StatusNotFound, "No responses found",
			"No survey responses have been submitted yet")
		return
	}
	if err != nil {
		slog.Error("failed to read responses", "error", err)
		middleware.ErrorWithDetails(w, http.StatusInternalServerError, "Failed to read responses", err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResponsesEnvelope{
		Success: true,
		Count:   len(all),
		Data:    all,
	})
}

// GetStats handles GET /api/stats
func (h *QueryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.ReadAll()
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorWithDetails(w, http.StatusNotFound, "No responses found",
			"No survey responses have been submitted yet")
		return
	}
	if err != nil {
		slog.Error("failed to read responses", "error", err)
		middleware.ErrorWithDetails(w, http.StatusInternalServerError, "Failed to read responses", err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsEnvelope{
		Success: true,
		Data:    computeStats(all),
	})
}

// DownloadCSV handles GET /api/download-csv
func (h *QueryHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(h.cfg.CSVPath())
	if errors.Is(err, fs.ErrNotExist) {
		middleware.ErrorWithDetails(w, http.StatusNotFound, "CSV file not found",
			"No survey responses have been exported yet")
		return
	}
	if err != nil {
		slog.Error("failed to read CSV artifact", "error", err)
		middleware.ErrorWithDetails(w, http.StatusInternalServerError, "Failed to read CSV file", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+h.cfg.CSVFile+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write CSV response", "error", err)
	}
}

// computeStats aggregates the full response list. latestResponse is the
// timestamp of the last record in insertion order, not the maximum
// timestamp value.
func computeStats(all []models.Response) models.Stats {
	stats := models.Stats{
		TotalResponses:  len(all),
		ResponsesByDate: make(map[string]int),
	}

	for _, rec := range all {
		switch rec.UserType() {
		case models.UserTypeStakeholder:
			stats.StakeholderResponses++
		case models.UserTypeParticipant:
			stats.ParticipantResponses++
		}
		stats.ResponsesByDate[dateOf(rec.Timestamp())]++
	}

	if len(all) > 0 {
		stats.LatestResponse = all[len(all)-1].Timestamp()
	}
	return stats
}

// dateOf buckets a timestamp by local calendar day. An unparseable
// timestamp becomes its own bucket so per-day counts still sum to the
// total.
func dateOf(timestamp string) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Local().Format("2006-01-02")
}

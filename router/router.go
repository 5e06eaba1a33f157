// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/survey-collect/catalog"
	"github.com/danielhkuo/survey-collect/cliparse"
	"github.com/danielhkuo/survey-collect/handlers"
	"github.com/danielhkuo/survey-collect/middleware"
	"github.com/danielhkuo/survey-collect/models"
	"github.com/danielhkuo/survey-collect/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(st, cfg)
	queryHandler := handlers.NewQueryHandler(st, cfg)
	questions := catalog.NewProvider(cfg.QuestionsFile)

	started := time.Now()

	// Question catalog (never errors, falls back to the default schema)
	mux.HandleFunc("GET /questions.json", middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(questions.Questions())
	}))

	// Submission
	mux.HandleFunc("POST /api/submit-survey", middleware.WithLogging(surveyHandler.SubmitSurvey))

	// Read-back
	mux.HandleFunc("GET /api/responses", middleware.WithLogging(queryHandler.GetResponses))
	mux.HandleFunc("GET /api/stats", middleware.WithLogging(queryHandler.GetStats))
	mux.HandleFunc("GET /api/download-csv", middleware.WithLogging(queryHandler.DownloadCSV))

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(started).Seconds(),
			Started:   humanize.Time(started),
		})
	})

	// Everything else is a JSON 404
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusNotFound, models.ErrorResponse{
			Error: "Not found",
			Path:  r.URL.Path,
		})
	})

	return middleware.Recover(middleware.CORS(mux))
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the survey API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - SurveyHandler: response submission (validate, enrich, persist, export)
  - QueryHandler: raw read-back, aggregate stats, CSV download

Handlers are created via constructor functions that accept *store.Store
and Config:

	surveyHandler := handlers.NewSurveyHandler(st, cfg)

# Submission Flow

	POST /api/submit-survey → SubmitSurvey

The payload is an arbitrary JSON object keyed by question IDs. The
handler rejects a missing userType before any mutation, defaults the
timestamp to the current UTC instant, generates the response ID
(overwriting any caller-supplied one), appends to the store, and
re-projects the CSV artifact from the full post-append list in the same
request.

# Query Flow

	GET /api/responses    → GetResponses (count + raw records)
	GET /api/stats        → GetStats (per-type and per-day aggregates)
	GET /api/download-csv → DownloadCSV (the projected artifact)

All three answer 404 with an error/details body until the first
response has been submitted.
*/
package handlers

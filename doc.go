// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the survey collection server.

The server accepts survey responses from two user types (stakeholders
and participants), persists them to an append-only JSON log, derives a
CSV export after every submission, and exposes read-back endpoints for
the raw data and aggregate statistics.

# Starting the Server

The server runs with no configuration at all:

	go run .

Or with flags / environment variables:

	go run . -p 3000 -d ./data
	PORT=3000 DATA_DIR=/var/lib/survey go run .

A .env file in the working directory is loaded at startup.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATA_DIR (-d): Data directory (default: data)
  - RESPONSES_FILE (--responses-file): Response log name (default: survey-responses.json)
  - CSV_FILE (--csv-file): CSV export name (default: survey-responses.csv)
  - QUESTIONS_FILE (--questions-file): Question catalog, JSON or YAML (default: questions.json)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (submission, queries)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, panic recovery, JSON helpers
  - models: The open survey record type and envelope types
  - store: Append-only JSON response log
  - export: CSV projection of the response log
  - catalog: Question schema provider
  - ident: Response ID generation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes using Go 1.22+ method patterns.

# Routes

	GET  /questions.json    question catalog
	POST /api/submit-survey submit a response
	GET  /api/responses     raw response list
	GET  /api/stats         aggregate counts
	GET  /api/download-csv  CSV artifact download
	GET  /api/health        liveness with uptime

Unmatched paths return a JSON 404 carrying the requested path. The
returned handler is wrapped in panic recovery and CORS middleware.
*/
package router

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: logs request start/completion with a per-request UUID
  - Recover: converts handler panics into 500 JSON responses
  - CORS: permissive cross-origin headers and OPTIONS preflight handling

# JSON Helpers

  - JSONResponse: encode any value with Content-Type application/json
  - ErrorResponse: {"error": message}
  - ErrorWithDetails: {"error": message, "details": cause}
  - ParseJSONBody: decode a request body into a struct or map
*/
package middleware

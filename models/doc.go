// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the survey record type and API envelope types.

# The Response Type

Response is a map[string]any rather than a struct. Survey questions are
defined by the catalog (which can change independently of this server),
so a record is an open mapping of question keys to answers. Three keys
are reserved and always present on persisted records:

	id        system-generated identifier (never caller-supplied)
	userType  "stakeholder" or "participant"
	timestamp ISO-8601 submission time

Accessor methods (ID, UserType, Timestamp) return "" when the key is
absent or not a string.

# Envelope Types

Types for JSON responses:

  - SubmitSurveyResponse: message, responseId, totalResponses
  - ResponsesEnvelope: success, count, data
  - StatsEnvelope: success, data (Stats)
  - HealthResponse: status, timestamp, uptime, started
  - ErrorResponse: error plus optional message/details/path

# Constants

User types:

	UserTypeStakeholder = "stakeholder"
	UserTypeParticipant = "participant"
*/
package models

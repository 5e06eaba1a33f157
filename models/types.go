package models

// Reserved keys set by the server on every persisted response
const (
	KeyID        = "id"
	KeyUserType  = "userType"
	KeyTimestamp = "timestamp"
)

// User type constants
const (
	UserTypeStakeholder = "stakeholder"
	UserTypeParticipant = "participant"
)

// Response is one submitted survey record: an open mapping of question
// keys to answers (string, number, bool, or array of strings) plus the
// reserved id/userType/timestamp keys. The question schema is defined by
// the catalog, not by the store, so no rigid struct is imposed here.
type Response map[string]any

// ID returns the system-assigned response identifier, or "" if unset.
func (r Response) ID() string {
	return r.stringField(KeyID)
}

// UserType returns the submitter's user type, or "" if unset.
func (r Response) UserType() string {
	return r.stringField(KeyUserType)
}

// Timestamp returns the submission timestamp, or "" if unset.
func (r Response) Timestamp() string {
	return r.stringField(KeyTimestamp)
}

func (r Response) stringField(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Response types

type SubmitSurveyResponse struct {
	Message        string `json:"message"`
	ResponseID     string `json:"responseId"`
	TotalResponses int    `json:"totalResponses"`
}

type ResponsesEnvelope struct {
	Success bool       `json:"success"`
	Count   int        `json:"count"`
	Data    []Response `json:"data"`
}

type StatsEnvelope struct {
	Success bool  `json:"success"`
	Data    Stats `json:"data"`
}

type Stats struct {
	TotalResponses       int            `json:"totalResponses"`
	StakeholderResponses int            `json:"stakeholderResponses"`
	ParticipantResponses int            `json:"participantResponses"`
	ResponsesByDate      map[string]int `json:"responsesByDate"`
	LatestResponse       string         `json:"latestResponse,omitempty"`
}

type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
	Started   string  `json:"started"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/survey-collect/cliparse"
	"github.com/danielhkuo/survey-collect/models"
	"github.com/danielhkuo/survey-collect/store"
	"github.com/danielhkuo/survey-collect/testutil"
)

func setupSurveyHandler(t *testing.T) (*SurveyHandler, *store.Store, cliparse.Config) {
	t.Helper()
	st, cfg := testutil.SetupStore(t)
	return NewSurveyHandler(st, cfg), st, cfg
}

func TestSubmitSurvey(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		rawBody        string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid participant submission",
			body:           map[string]any{"userType": "participant", "event_question": "Workshop"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid stakeholder submission",
			body:           map[string]any{"userType": "stakeholder", "goals": "better tooling"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty object",
			body:           map[string]any{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "user type is required",
		},
		{
			name:           "empty user type",
			body:           map[string]any{"userType": ""},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "user type is required",
		},
		{
			name:           "malformed JSON",
			rawBody:        "{not json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, st, _ := setupSurveyHandler(t)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest("POST", "/api/submit-survey", strings.NewReader(tt.rawBody))
			} else {
				req = testutil.MakeRequest("POST", "/api/submit-survey", tt.body, nil)
			}
			w := httptest.NewRecorder()

			handler.SubmitSurvey(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.SubmitSurveyResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.ResponseID == "" {
					t.Error("Expected a non-empty responseId")
				}
				if resp.TotalResponses != 1 {
					t.Errorf("Expected totalResponses 1, got %d", resp.TotalResponses)
				}
				return
			}

			var errResp models.ErrorResponse
			testutil.AssertJSON(t, w, &errResp)
			if errResp.Error != tt.expectedError {
				t.Errorf("Expected error %q, got %q", tt.expectedError, errResp.Error)
			}

			// Validation failures must leave storage untouched
			if _, err := st.ReadAll(); !errors.Is(err, store.ErrNotFound) {
				t.Errorf("Expected untouched store after rejection, got %v", err)
			}
		})
	}
}

func TestSubmitSurveyDefaultsTimestamp(t *testing.T) {
	handler, st, _ := setupSurveyHandler(t)

	before := time.Now().UTC().Add(-time.Second)
	req := testutil.MakeRequest("POST", "/api/submit-survey", map[string]any{"userType": "participant"}, nil)
	w := httptest.NewRecorder()
	handler.SubmitSurvey(w, req)
	after := time.Now().UTC().Add(time.Second)

	testutil.AssertStatus(t, w, http.StatusOK)

	all, err := st.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read store: %v", err)
	}
	ts, err := time.Parse(time.RFC3339, all[0].Timestamp())
	if err != nil {
		t.Fatalf("Persisted timestamp is not RFC 3339: %v", err)
	}
	if ts.Before(before) || ts.After(after) {
		t.Errorf("Timestamp %v outside execution window [%v, %v]", ts, before, after)
	}
}

func TestSubmitSurveyKeepsCallerTimestamp(t *testing.T) {
	handler, st, _ := setupSurveyHandler(t)

	req := testutil.MakeRequest("POST", "/api/submit-survey",
		map[string]any{"userType": "participant", "timestamp": "2025-01-15T08:30:00Z"}, nil)
	w := httptest.NewRecorder()
	handler.SubmitSurvey(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	all, _ := st.ReadAll()
	if all[0].Timestamp() != "2025-01-15T08:30:00Z" {
		t.Errorf("Expected caller timestamp to be kept, got %s", all[0].Timestamp())
	}
}

func TestSubmitSurveyOverwritesCallerID(t *testing.T) {
	handler, st, _ := setupSurveyHandler(t)

	req := testutil.MakeRequest("POST", "/api/submit-survey",
		map[string]any{"userType": "participant", "id": "chosen-by-caller"}, nil)
	w := httptest.NewRecorder()
	handler.SubmitSurvey(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SubmitSurveyResponse
	testutil.AssertJSON(t, w, &resp)

	all, _ := st.ReadAll()
	if all[0].ID() == "chosen-by-caller" {
		t.Error("Caller-supplied ID must be overwritten")
	}
	if all[0].ID() != resp.ResponseID {
		t.Errorf("Persisted ID %s does not match returned responseId %s", all[0].ID(), resp.ResponseID)
	}
}

func TestSubmitSurveySequentialTotalsAndUniqueIDs(t *testing.T) {
	handler, _, _ := setupSurveyHandler(t)

	const n = 1000
	seen := make(map[string]bool, n)
	for i := 1; i <= n; i++ {
		req := testutil.MakeRequest("POST", "/api/submit-survey", map[string]any{"userType": "participant"}, nil)
		w := httptest.NewRecorder()
		handler.SubmitSurvey(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SubmitSurveyResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.TotalResponses != i {
			t.Fatalf("Expected totalResponses %d, got %d", i, resp.TotalResponses)
		}
		if seen[resp.ResponseID] {
			t.Fatalf("Duplicate responseId after %d submissions: %s", i, resp.ResponseID)
		}
		seen[resp.ResponseID] = true
	}
}

func TestSubmitSurveyProjectsCSV(t *testing.T) {
	handler, _, cfg := setupSurveyHandler(t)

	for _, body := range []map[string]any{
		{"userType": "participant", "event_question": "Workshop"},
		{"userType": "stakeholder", "goals": "better tooling"},
	} {
		w := httptest.NewRecorder()
		handler.SubmitSurvey(w, testutil.MakeRequest("POST", "/api/submit-survey", body, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	data, err := os.ReadFile(cfg.CSVPath())
	if err != nil {
		t.Fatalf("Expected CSV artifact after submissions: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	// Sorted union of keys across both records
	want := `"event_question","goals","id","timestamp","userType"`
	if lines[0] != want {
		t.Errorf("Expected header %s, got %s", want, lines[0])
	}
}

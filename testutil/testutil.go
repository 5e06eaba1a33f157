// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/survey-collect/cliparse"
	"github.com/danielhkuo/survey-collect/ident"
	"github.com/danielhkuo/survey-collect/models"
	"github.com/danielhkuo/survey-collect/store"
)

// GetTestConfig returns a configuration rooted in dir
func GetTestConfig(dir string) cliparse.Config {
	return cliparse.Config{
		Port:          3000,
		DataDir:       dir,
		ResponsesFile: "survey-responses.json",
		CSVFile:       "survey-responses.csv",
		QuestionsFile: filepath.Join(dir, "questions.json"),
	}
}

// SetupStore creates a store backed by a fresh temp directory
func SetupStore(t *testing.T) (*store.Store, cliparse.Config) {
	t.Helper()

	cfg := GetTestConfig(t.TempDir())
	return store.New(cfg.ResponsesPath()), cfg
}

// SeedResponse appends a complete response record directly to the
// store, bypassing the HTTP layer. Extra question answers can be passed
// via extra; id and timestamp are filled in.
func SeedResponse(t *testing.T, st *store.Store, userType string, extra models.Response) models.Response {
	t.Helper()

	id, err := ident.NewResponseID()
	if err != nil {
		t.Fatalf("Failed to generate response ID: %v", err)
	}

	rec := models.Response{
		models.KeyID:        id,
		models.KeyUserType:  userType,
		models.KeyTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range extra {
		rec[k] = v
	}

	if _, err := st.Append(rec); err != nil {
		t.Fatalf("Failed to seed response: %v", err)
	}
	return rec
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

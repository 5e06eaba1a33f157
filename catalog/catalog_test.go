// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestQuestionsDefaultWhenFileMissing(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "questions.json"))

	var schema map[string][]Question
	if err := json.Unmarshal(p.Questions(), &schema); err != nil {
		t.Fatalf("Default schema is not valid JSON: %v", err)
	}

	for _, userType := range []string{"stakeholder", "participant"} {
		if len(schema[userType]) == 0 {
			t.Errorf("Default schema has no %s questions", userType)
		}
	}
}

func TestQuestionsJSONPassthrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	content := `{"participant":[{"id":"q1","label":"Which event?","type":"text"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}

	got := NewProvider(path).Questions()
	if string(got) != content {
		t.Errorf("Expected catalog file to be served verbatim, got %s", got)
	}
}

func TestQuestionsYAMLConversion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.yaml")
	content := "participant:\n  - id: q1\n    label: Which event?\n    type: text\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}

	var schema map[string][]map[string]any
	if err := json.Unmarshal(NewProvider(path).Questions(), &schema); err != nil {
		t.Fatalf("Converted catalog is not valid JSON: %v", err)
	}

	if len(schema["participant"]) != 1 {
		t.Fatalf("Expected 1 participant question, got %d", len(schema["participant"]))
	}
	if schema["participant"][0]["id"] != "q1" {
		t.Errorf("Expected question id 'q1', got %v", schema["participant"][0]["id"])
	}
}

func TestQuestionsInvalidFileFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"invalid JSON", "questions.json", "{not json"},
		{"invalid YAML", "questions.yaml", "\t:\t:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("Failed to write catalog file: %v", err)
			}

			var schema map[string][]Question
			if err := json.Unmarshal(NewProvider(path).Questions(), &schema); err != nil {
				t.Fatalf("Fallback schema is not valid JSON: %v", err)
			}
			if len(schema["stakeholder"]) == 0 {
				t.Error("Expected fallback to the default schema")
			}
		})
	}
}

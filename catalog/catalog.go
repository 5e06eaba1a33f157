// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Question is one entry in the catalog served to the frontend.
type Question struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required,omitempty"`
}

// Schema maps a user type to its question list.
type Schema map[string][]Question

// defaultSchema is served when no catalog file exists or the file
// cannot be parsed. Deployments override it by providing a catalog
// file; the server itself never edits questions.
var defaultSchema = Schema{
	"stakeholder": {
		{ID: "role", Label: "What is your role in the organization?", Type: "text", Required: true},
		{ID: "goals", Label: "What outcomes matter most to you?", Type: "textarea"},
		{ID: "satisfaction", Label: "How satisfied are you with the current program?", Type: "select",
			Options: []string{"Very satisfied", "Satisfied", "Neutral", "Dissatisfied", "Very dissatisfied"}},
	},
	"participant": {
		{ID: "event_question", Label: "Which event did you attend?", Type: "text", Required: true},
		{ID: "rating", Label: "How would you rate the event?", Type: "select",
			Options: []string{"1", "2", "3", "4", "5"}},
		{ID: "topics", Label: "Which topics interested you?", Type: "multiselect",
			Options: []string{"Workshops", "Talks", "Networking", "Mentoring"}},
		{ID: "feedback", Label: "Any other feedback?", Type: "textarea"},
	},
}

// Provider serves the question catalog from a file, falling back to the
// built-in default schema.
type Provider struct {
	path string
}

// NewProvider creates a Provider reading the catalog file at path. A
// .yaml or .yml extension selects YAML parsing; anything else is
// treated as JSON.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Questions returns the catalog as a JSON document. It never fails:
// a missing or unparseable catalog file falls back to the default
// schema, so the questions endpoint can always answer 200.
func (p *Provider) Questions() []byte {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return defaultJSON()
	}

	switch strings.ToLower(filepath.Ext(p.path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			slog.Warn("catalog file is not valid YAML, serving default schema", "path", p.path, "error", err)
			return defaultJSON()
		}
		out, err := json.Marshal(doc)
		if err != nil {
			slog.Warn("catalog file could not be converted to JSON, serving default schema", "path", p.path, "error", err)
			return defaultJSON()
		}
		return out
	default:
		if !json.Valid(data) {
			slog.Warn("catalog file is not valid JSON, serving default schema", "path", p.path)
			return defaultJSON()
		}
		return data
	}
}

func defaultJSON() []byte {
	// defaultSchema is a static literal; marshaling it cannot fail
	data, _ := json.Marshal(defaultSchema)
	return data
}

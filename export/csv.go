// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/danielhkuo/survey-collect/models"
)

// Projector derives the CSV artifact from the full response list. Each
// projection is a complete re-render, never an incremental diff, so the
// artifact always reflects the most recent successful append.
type Projector struct {
	path string
}

// NewProjector creates a Projector writing to the CSV file at path.
func NewProjector(path string) *Projector {
	return &Projector{path: path}
}

// Path returns the location of the CSV artifact.
func (p *Projector) Path() string {
	return p.path
}

// Project renders records to CSV and overwrites the artifact. It is a
// no-op for an empty list: the artifact is never created before the
// first response exists.
func (p *Projector) Project(records []models.Response) error {
	if len(records) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(p.path, []byte(Render(records)), 0o644); err != nil {
		return fmt.Errorf("write csv artifact: %w", err)
	}
	return nil
}

// Render computes the CSV text for records. The header row is the
// sorted union of keys across all records; each record emits one row in
// original order with a value for every header (missing key renders as
// an empty field). Every field, headers included, is double-quote
// wrapped with internal quotes doubled.
func Render(records []models.Response) string {
	seen := make(map[string]bool)
	for _, rec := range records {
		for k := range rec {
			seen[k] = true
		}
	}
	headers := make([]string, 0, len(seen))
	for k := range seen {
		headers = append(headers, k)
	}
	sort.Strings(headers)

	var b strings.Builder
	writeRow(&b, headers, func(h string) string { return h })
	for _, rec := range records {
		writeRow(&b, headers, func(h string) string { return stringify(rec[h]) })
	}
	return b.String()
}

func writeRow(b *strings.Builder, headers []string, field func(string) string) {
	for i, h := range headers {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field(h), `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// stringify renders an answer value for a CSV field. Absent values
// render empty, numbers without exponent or trailing zeros, and arrays
// as comma-joined elements.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = stringify(e)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(t, ",")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Package profile loads and saves value profiles as JSON. The on-disk
// format is the persistence contract with the web UI: scores keyed by the
// 19 value codes, an optional confidence tag per code. Validation happens
// here, at the boundary; engine packages assume well-formed input.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
)

// File is the serialized profile document.
type File struct {
	Name       string                       `json:"name"`
	Scores     schema.ValueScores           `json:"scores"`
	Confidence map[string]schema.Confidence `json:"confidence,omitempty"`
}

// Load reads and validates a profile document. Unknown value codes,
// out-of-range scores, and unknown confidence tags are rejected; codes
// missing from the scores map are filled with the neutral baseline so the
// returned profile always carries all 19 codes.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("profile: read %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return File{}, fmt.Errorf("profile: parse %s: %w", path, err)
	}
	if err := Validate(f); err != nil {
		return File{}, fmt.Errorf("profile: %s: %w", path, err)
	}
	f.Scores = Normalize(f.Scores)
	return f, nil
}

// Save writes a profile document with stable formatting.
func Save(path string, f File) error {
	if err := Validate(f); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("profile: marshal: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("profile: write %s: %w", path, err)
	}
	return nil
}

// Validate checks a profile document against the catalogs and the score
// bounds.
func Validate(f File) error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	for code, score := range f.Scores {
		if _, err := catalog.ValueByCode(code); err != nil {
			return fmt.Errorf("scores: %w", err)
		}
		if score < schema.ScoreMin || score > schema.ScoreMax {
			return fmt.Errorf("scores: %s = %v outside [%v,%v]", code, score, schema.ScoreMin, schema.ScoreMax)
		}
	}
	for code, conf := range f.Confidence {
		if _, err := catalog.ValueByCode(code); err != nil {
			return fmt.Errorf("confidence: %w", err)
		}
		switch conf {
		case schema.ConfidenceHigh, schema.ConfidenceMedium, schema.ConfidenceUnspecified:
		default:
			return fmt.Errorf("confidence: %s has unknown tag %q", code, conf)
		}
	}
	return nil
}

// Normalize returns a copy of scores with every catalog code present,
// absent codes filled with the neutral baseline.
func Normalize(scores schema.ValueScores) schema.ValueScores {
	out := catalog.NewNeutralScores()
	for code, score := range scores {
		out[code] = score
	}
	return out
}

// Profile converts the document to the engine's profile record.
func (f File) Profile() schema.Profile {
	return schema.Profile{Name: f.Name, Scores: f.Scores}
}

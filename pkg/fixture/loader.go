package fixture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Common errors for plan loading.
var (
	ErrFileNotFound = errors.New("plan file not found")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("plan file is empty")
	ErrInvalidPlan  = errors.New("invalid plan")
)

// Format is a plan encoding.
type Format string

// Plan encodings.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension: .json is JSON,
// anything else is YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadFile reads and validates a plan file.
func LoadFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	plan, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

// Parse decodes and validates a plan. Validation failures are returned as an
// error wrapping both ErrInvalidPlan and the *ValidationResult listing every
// problem.
func Parse(data []byte, format Format) (*Plan, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	doc, err := normalize(data, format)
	if err != nil {
		return nil, err
	}

	result := &ValidationResult{}
	if err := validateDocument(doc.value, result); err != nil {
		return nil, err
	}
	if !result.IsValid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, result)
	}

	var plan Plan
	if err := json.Unmarshal(doc.raw, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}
	if result := plan.Validate(); !result.IsValid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, result)
	}
	return &plan, nil
}

// document is a plan decoded to JSON types, plus its JSON encoding.
type document struct {
	value any
	raw   []byte
}

// normalize decodes YAML or JSON into the value shapes the schema validator
// expects, keeping integers exact as json.Number.
func normalize(data []byte, format Format) (*document, error) {
	var raw []byte
	switch format {
	case FormatJSON:
		if !json.Valid(data) {
			return nil, ErrInvalidJSON
		}
		raw = data
	default:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
		}
		raw = encoded
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return &document{value: value, raw: raw}, nil
}

// Marshal encodes a plan in the given format.
func Marshal(p *Plan, format Format) ([]byte, error) {
	if format == FormatJSON {
		return json.MarshalIndent(p, "", "  ")
	}
	return yaml.Marshal(p)
}

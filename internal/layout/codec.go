package layout

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes and validates a layout set.
func ParseYAML(data []byte) (*Set, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var set Set
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("layout: decode yaml: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// ParseJSON decodes and validates a layout set.
func ParseJSON(data []byte) (*Set, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var set Set
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("layout: decode json: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Load reads a layout file, choosing the decoder by extension
// (.yaml, .yml or .json).
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("layout: unsupported file extension %q", filepath.Ext(path))
	}
}

// EncodeYAML encodes a layout set as YAML.
func (s *Set) EncodeYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("layout: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("layout: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeJSON encodes a layout set as indented JSON.
func (s *Set) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("layout: encode json: %w", err)
	}
	return data, nil
}

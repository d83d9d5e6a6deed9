package codec

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// YAML is a codec backed by gopkg.in/yaml.v3.
//
// Mapping keys are emitted in sorted order. Decoding into an untyped value
// yields map[string]any for mappings.
type YAML struct{}

// Marshal encodes the value to YAML with two-space indentation.
func (YAML) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(len(indent))
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the YAML data into v.
func (YAML) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// Name returns the unique name of the codec ("yaml").
func (YAML) Name() string { return "yaml" }

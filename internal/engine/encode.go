package engine

import (
	"bytes"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// EncodeJSON renders v as two-space indented JSON with a trailing newline.
// Map keys are sorted; *Object keeps insertion order.
func EncodeJSON(v any) ([]byte, error) {
	b, err := j.MarshalIndentWithOption(v, "", "  ", j.DisableHTMLEscape())
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// EncodeYAML renders v as YAML with two-space indentation.
func EncodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/pastemark/core"
)

// YAMLRenderer produces the structured report as YAML.
type YAMLRenderer struct{}

// NewYAMLRenderer creates a YAMLRenderer.
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

// Render converts Markdown and metadata into the YAML report.
func (r *YAMLRenderer) Render(markdown string, meta core.DocumentMeta) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(BuildReport(markdown, meta)); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for YAML output.
func (r *YAMLRenderer) Extension() string {
	return ".yaml"
}

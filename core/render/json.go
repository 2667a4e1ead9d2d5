package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/pastemark/core"
)

// JSONRenderer produces the structured report as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts Markdown and metadata into the JSON report.
func (r *JSONRenderer) Render(markdown string, meta core.DocumentMeta) ([]byte, error) {
	data, err := json.MarshalIndent(BuildReport(markdown, meta), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

package render

import (
	"strings"

	"github.com/gaurav-prasanna/pastemark/core"
)

// MarkdownRenderer writes Markdown as-is, with a single trailing newline.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown as bytes.
func (r *MarkdownRenderer) Render(markdown string, meta core.DocumentMeta) ([]byte, error) {
	if markdown == "" {
		return nil, nil
	}
	return []byte(strings.TrimRight(markdown, "\n") + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

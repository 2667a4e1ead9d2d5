package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/gaurav-prasanna/pastemark/core"
)

// previewTemplate wraps goldmark's fragment output in a complete HTML5 document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="generator" content="pastemark">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// HTMLRenderer renders Markdown into a standalone HTML preview page.
// Raw HTML inside the Markdown is not passed through.
type HTMLRenderer struct {
	md goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer with GFM extensions.
func NewHTMLRenderer() *HTMLRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
		),
	)
	return &HTMLRenderer{md: md}
}

// Render converts Markdown into an HTML document.
func (r *HTMLRenderer) Render(markdown string, meta core.DocumentMeta) ([]byte, error) {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}

	title := meta.Title
	if title == "" {
		title = meta.Source
	}
	if title == "" {
		title = "Document"
	}

	return fmt.Appendf(nil, previewTemplate, html.EscapeString(title), body.String()), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

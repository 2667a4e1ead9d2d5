// Package render provides output renderers for converted Markdown.
// Each renderer turns the Markdown and its DocumentMeta into the bytes of
// one output format.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/pastemark/core"
)

// ErrUnsupportedFormat is returned by New for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format names accepted by New.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatHTML     = "html"
	FormatPDF      = "pdf"
)

// Formats returns the supported format names.
func Formats() []string {
	return []string{FormatMarkdown, FormatJSON, FormatYAML, FormatHTML, FormatPDF}
}

// New returns the renderer for format. "md" and "yml" are accepted aliases.
func New(format string) (core.Renderer, error) {
	switch strings.ToLower(format) {
	case FormatMarkdown, "md", "":
		return NewMarkdownRenderer(), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	case FormatYAML, "yml":
		return NewYAMLRenderer(), nil
	case FormatHTML:
		return NewHTMLRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(), nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, format, strings.Join(Formats(), ", "))
}

// IsBinary reports whether the format produces bytes unfit for a terminal.
func IsBinary(format string) bool {
	return strings.EqualFold(format, FormatPDF)
}

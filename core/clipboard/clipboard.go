// Package clipboard turns a paste payload or raw file bytes into the
// InputData the conversion entry point expects.
package clipboard

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/pastemark/core"
)

// MIME types read from a paste payload.
const (
	MIMEHTML = "text/html"
	MIMEText = "text/plain"
)

// Payload maps clipboard MIME types to their content, as a browser
// ClipboardEvent exposes them.
type Payload map[string]string

// Capture builds InputData from paste payloads.
type Capture struct {
	extractor core.Extractor
}

// New creates a Capture. HTML content is passed through ex before it is
// returned; a nil ex keeps the HTML as pasted.
func New(ex core.Extractor) *Capture {
	return &Capture{extractor: ex}
}

// FromPaste prefers the HTML representation and falls back to plain text.
// It reports false when the payload carries neither.
func (c *Capture) FromPaste(p Payload) (core.InputData, bool) {
	if html := p[MIMEHTML]; strings.TrimSpace(html) != "" {
		if c.extractor != nil {
			if cleaned, err := c.extractor.Extract(html); err == nil && cleaned != "" {
				html = cleaned
			}
		}
		return core.HTML(html), true
	}

	if text := p[MIMEText]; text != "" {
		return core.Text(text), true
	}

	return core.InputData{}, false
}

// DetectType decides the InputType of file content. A .html or .htm name
// wins; otherwise the content is sniffed.
func DetectType(name string, data []byte) core.InputType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return core.TypeHTML
	case ".md", ".markdown", ".txt":
		return core.TypeText
	}

	if strings.HasPrefix(http.DetectContentType(data), MIMEHTML) {
		return core.TypeHTML
	}
	return core.TypeText
}

// ParseType maps a --type flag value to an InputType. "auto" and "" return
// false so the caller can fall back to DetectType.
func ParseType(s string) (core.InputType, bool) {
	switch strings.ToLower(s) {
	case string(core.TypeText):
		return core.TypeText, true
	case string(core.TypeHTML):
		return core.TypeHTML, true
	}
	return "", false
}

package convert

import (
	"strings"

	"github.com/gaurav-prasanna/pastemark/core/mermaid"
)

// HTML converts an HTML fragment to Markdown.
//
// It returns "" for empty input. When the translation engine cannot be
// built, or fails on this particular document, the original HTML is
// returned unchanged: the caller always gets something to show.
//
// After translation, unlabelled code fences holding diagram source are
// relabelled as mermaid and bare diagram paragraphs are fenced.
func (c *Converter) HTML(html string) string {
	if html == "" {
		return ""
	}

	eng, ok := c.engine()
	if !ok {
		return html
	}

	markdown, err := eng.Normalize(html)
	if err != nil {
		c.log.Warn("html conversion failed, returning input", "error", err)
		return html
	}

	markdown = mermaid.WrapCodeFences(strings.TrimSpace(markdown))
	return strings.TrimSpace(mermaid.WrapBlocks(markdown))
}

package convert

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/pastemark/core/mermaid"
)

// escapedChars are prefixed with a backslash by EscapeMarkdown.
const escapedChars = "\\`*_{}[]()#+-.!"

var (
	lineBreakRegex = regexp.MustCompile(`\r?\n`)
	bulletRegex    = regexp.MustCompile(`^(\s*)([-*•‧])\s+(.*)$`)
)

// EscapeMarkdown backslash-escapes every Markdown metacharacter in text.
// The escape is blind to context: a '-' mid-sentence is escaped just like a
// list marker would be. Bytes outside escapedChars, including invalid UTF-8,
// are copied unchanged.
func EscapeMarkdown(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if strings.IndexByte(escapedChars, text[i]) >= 0 {
			sb.WriteByte('\\')
		}
		sb.WriteByte(text[i])
	}
	return sb.String()
}

// PlainText turns free-form text into Markdown-safe text. Paragraph breaks
// and bullet lists survive, diagram source is fenced as ```mermaid, and every
// other metacharacter is escaped.
func PlainText(text string) string {
	if text == "" {
		return ""
	}
	if !strings.Contains(text, "\n") {
		text = strings.TrimSpace(text)
	}

	var sb strings.Builder
	for _, seg := range mermaid.Split(mermaid.WrapBlocks(text)) {
		if seg.Diagram {
			sb.WriteString(seg.Text)
			continue
		}
		sb.WriteString(plainTextLines(seg.Text))
	}
	return sb.String()
}

// plainTextLines applies the per-line transform to a segment without diagrams.
func plainTextLines(text string) string {
	if text == "" {
		return ""
	}

	lines := lineBreakRegex.Split(text, -1)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}

		if m := bulletRegex.FindStringSubmatch(line); m != nil {
			indent, content := m[1], m[3]
			out = append(out, indent+"- "+EscapeMarkdown(content))
			continue
		}

		out = append(out, EscapeMarkdown(line))
	}
	return strings.Join(out, "\n")
}

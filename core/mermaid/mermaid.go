// Package mermaid detects Mermaid diagram source and makes sure it ends up
// inside exactly one ```mermaid fenced block.
package mermaid

import (
	"regexp"
	"strings"
)

// keywords are the diagram types that open a Mermaid definition.
var keywords = []string{
	"graph",
	"flowchart",
	"sequenceDiagram",
	"classDiagram",
	"stateDiagram",
	"erDiagram",
	"journey",
	"gantt",
	"pie",
	"gitgraph",
	"mindmap",
	"timeline",
	"quadrantChart",
	"sankey",
	"xychart",
}

var (
	syntaxRegex     = regexp.MustCompile(`(?i)^\s*(?:` + strings.Join(keywords, "|") + `)\b`)
	fencedRegex     = regexp.MustCompile("(?i)^```mermaid[\\s\\S]*```$")
	separatorRegex  = regexp.MustCompile(`\r?\n\s*\r?\n+`)
	codeFenceRegex  = regexp.MustCompile("```([^\\n`]*)\\n([\\s\\S]*?)```")
	fencedBlockExpr = regexp.MustCompile("```mermaid[\\s\\S]*?```")
)

// Keywords returns the recognised diagram keywords in declaration order.
func Keywords() []string {
	out := make([]string, len(keywords))
	copy(out, keywords)
	return out
}

// IsSyntax reports whether text, once trimmed, starts with a diagram keyword.
func IsSyntax(text string) bool {
	return syntaxRegex.MatchString(strings.TrimSpace(text))
}

// IsFencedBlock reports whether the trimmed text is one complete ```mermaid block.
func IsFencedBlock(text string) bool {
	return fencedRegex.MatchString(strings.TrimSpace(text))
}

// Fence wraps diagram source in a ```mermaid block.
func Fence(source string) string {
	return "```mermaid\n" + source + "\n```"
}

// WrapBlocks fences every blank-line separated chunk of text that is diagram
// source. Separators are kept verbatim and chunks that are already fenced are
// left alone, so the function is idempotent.
func WrapBlocks(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	last := 0
	for _, loc := range separatorRegex.FindAllStringIndex(text, -1) {
		sb.WriteString(wrapChunk(text[last:loc[0]]))
		sb.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	sb.WriteString(wrapChunk(text[last:]))
	return sb.String()
}

func wrapChunk(chunk string) string {
	trimmed := strings.TrimSpace(chunk)
	switch {
	case trimmed == "":
		return chunk
	case IsFencedBlock(trimmed):
		return trimmed
	case !IsSyntax(trimmed):
		return chunk
	}
	return Fence(trimmed)
}

// WrapCodeFences relabels unlabelled fenced code blocks whose body is diagram
// source as ```mermaid. Blocks that already carry a language are untouched.
func WrapCodeFences(markdown string) string {
	if markdown == "" {
		return ""
	}

	return codeFenceRegex.ReplaceAllStringFunc(markdown, func(match string) string {
		m := codeFenceRegex.FindStringSubmatch(match)
		lang, code := strings.TrimSpace(m[1]), m[2]
		if lang != "" {
			return match
		}
		if !IsSyntax(strings.TrimSpace(code)) {
			return match
		}
		return Fence(strings.TrimRight(code, "\n"))
	})
}

// Segment is a piece of text that either is a ```mermaid block or is not.
type Segment struct {
	Text    string
	Diagram bool
}

// Split cuts text into alternating prose and ```mermaid segments, in order.
// Empty prose segments are kept so callers can rejoin without losing position.
func Split(text string) []Segment {
	var segments []Segment
	last := 0
	for _, loc := range fencedBlockExpr.FindAllStringIndex(text, -1) {
		segments = append(segments,
			Segment{Text: text[last:loc[0]]},
			Segment{Text: text[loc[0]:loc[1]], Diagram: true},
		)
		last = loc[1]
	}
	return append(segments, Segment{Text: text[last:]})
}

// Count returns the number of ```mermaid blocks in markdown.
func Count(markdown string) int {
	return len(fencedBlockExpr.FindAllStringIndex(markdown, -1))
}

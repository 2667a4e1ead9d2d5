package render

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/pastemark/core"
	"github.com/gaurav-prasanna/pastemark/core/mermaid"
)

// BuildReport parses markdown into the structure shared by the JSON and
// YAML renderers. Headings, links and list items inside fenced code are
// not counted.
func BuildReport(markdown string, meta core.DocumentMeta) core.Report {
	prose := stripFencedCode(markdown)
	headings := extractHeadings(prose)
	links, images := extractLinks(prose)

	return core.Report{
		Metadata: meta,
		Content: core.DocumentContent{
			Text:     stripMarkdown(markdown),
			Markdown: markdown,
			Sections: buildSections(markdown),
		},
		Structure: core.DocumentStructure{
			Headings:   headings,
			Links:      links,
			Images:     images,
			CodeBlocks: extractCodeBlocks(markdown),
			Diagrams:   mermaid.Count(markdown),
			Tables:     countTables(prose),
			ListItems:  countListItems(prose),
		},
	}
}

// --- Markdown parsing helpers ---

var (
	headingRegex   = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	linkRegex      = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)\s]+)(?:\s+"[^"]*")?\)`)
	fenceRegex     = regexp.MustCompile("(?m)^```([^\\n`]*)\\n([\\s\\S]*?)^```[ \\t]*$")
	tableRowRegex  = regexp.MustCompile(`(?m)^\|?\s*:?-{3,}:?\s*(\|\s*:?-{3,}:?\s*)+\|?\s*$`)
	listItemRegex  = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+\.)\s+\S`)
	emphasisRegex  = regexp.MustCompile(`\*{1,3}([^*\n]+)\*{1,3}`)
	inlineCode     = regexp.MustCompile("`([^`]+)`")
	escapeRegex    = regexp.MustCompile("\\\\([\\\\`*_{}\\[\\]()#+\\-.!])")
	blankRunsRegex = regexp.MustCompile(`\n{3,}`)
)

func extractHeadings(md string) []core.Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]core.Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, core.Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

// extractLinks returns links and images separately.
func extractLinks(md string) (links, images []core.Link) {
	links, images = []core.Link{}, []core.Link{}
	for _, m := range linkRegex.FindAllStringSubmatch(md, -1) {
		l := core.Link{Text: m[2], Href: m[3]}
		if m[1] == "!" {
			images = append(images, l)
		} else {
			links = append(links, l)
		}
	}
	return links, images
}

func extractCodeBlocks(md string) []core.CodeBlock {
	matches := fenceRegex.FindAllStringSubmatch(md, -1)
	blocks := make([]core.CodeBlock, 0, len(matches))
	for _, m := range matches {
		body := strings.TrimRight(m[2], "\n")
		lines := 0
		if body != "" {
			lines = strings.Count(body, "\n") + 1
		}
		blocks = append(blocks, core.CodeBlock{
			Language: strings.TrimSpace(m[1]),
			Lines:    lines,
		})
	}
	return blocks
}

func stripFencedCode(md string) string {
	return fenceRegex.ReplaceAllString(md, "")
}

func buildSections(md string) []core.Section {
	var sections []core.Section
	var current *core.Section
	var body []string
	inFence := false

	flush := func() {
		if current != nil {
			current.Text = strings.TrimSpace(strings.Join(body, "\n"))
			sections = append(sections, *current)
		}
	}

	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
		}
		if m := headingRegex.FindStringSubmatch(line); m != nil && !inFence {
			flush()
			current = &core.Section{Heading: strings.TrimSpace(m[2]), Level: len(m[1])}
			body = nil
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()

	return sections
}

// countTables counts separator rows (|---|---|), one per table.
func countTables(md string) int {
	return len(tableRowRegex.FindAllString(md, -1))
}

func countListItems(md string) int {
	return len(listItemRegex.FindAllString(md, -1))
}

// stripMarkdown removes common Markdown formatting to produce plain text.
func stripMarkdown(md string) string {
	text := protectEscapes(md)
	text = headingRegex.ReplaceAllString(text, "$2")
	text = emphasisRegex.ReplaceAllString(text, "$1")
	text = linkRegex.ReplaceAllString(text, "$2")
	text = strings.ReplaceAll(text, "```mermaid", "")
	text = strings.ReplaceAll(text, "```", "")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = restoreEscapes(text)
	text = blankRunsRegex.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// escapeBase is the start of the private-use range that escaped ASCII
// characters are parked in while formatting is stripped.
const escapeBase = 0xE000

// protectEscapes replaces each backslash escape with a private-use rune so
// the formatting regexes cannot see the escaped character.
func protectEscapes(text string) string {
	return escapeRegex.ReplaceAllStringFunc(text, func(m string) string {
		return string(rune(escapeBase + int(m[1])))
	})
}

// restoreEscapes turns parked runes back into the bare characters.
func restoreEscapes(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= escapeBase && r < escapeBase+0x80 {
			return r - escapeBase
		}
		return r
	}, text)
}

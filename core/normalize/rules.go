package normalize

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"golang.org/x/net/html"
)

var blankRunRegex = regexp.MustCompile(`\n{3,}`)

// Rule maps a set of HTML elements to Markdown.
type Rule struct {
	Name string
	// Tags are the element names the rule is registered for.
	Tags []string
	// Block marks the elements as block-level for whitespace handling.
	Block bool
	// Match narrows Tags further. A nil Match accepts every element.
	Match func(n *html.Node) bool
	// SkipChildren leaves RenderContext.Content empty; used by rules that
	// read the element's raw text or attributes instead.
	SkipChildren bool
	Render       func(rc RenderContext) string
}

// RenderContext is what a Rule sees when it renders an element.
type RenderContext struct {
	// Content is the Markdown already produced for the element's children.
	Content string
	Node    *html.Node
	engine  *Engine
}

// Attr returns the attribute value or fallback when it is missing.
func (rc RenderContext) Attr(key, fallback string) string {
	return dom.GetAttributeOr(rc.Node, key, fallback)
}

// Resolve returns rawURL resolved against the engine's base URL.
func (rc RenderContext) Resolve(rawURL string) string {
	if rc.engine == nil {
		return rawURL
	}
	return rc.engine.resolve(rawURL)
}

func (r Rule) validate() error {
	switch {
	case r.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidRule)
	case len(r.Tags) == 0:
		return fmt.Errorf("%w: %s has no tags", ErrInvalidRule, r.Name)
	case r.Render == nil:
		return fmt.Errorf("%w: %s has no renderer", ErrInvalidRule, r.Name)
	}
	return nil
}

// DefaultRules returns the element rules in registration order.
// Tables are not listed: the table plugin renders them.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:   "headings",
			Tags:   []string{"h1", "h2", "h3", "h4", "h5", "h6"},
			Block:  true,
			Render: renderHeading,
		},
		{
			Name:   "links",
			Tags:   []string{"a"},
			Match:  func(n *html.Node) bool { return dom.GetAttributeOr(n, "href", "") != "" },
			Render: renderLink,
		},
		{
			Name:         "images",
			Tags:         []string{"img"},
			SkipChildren: true,
			Render:       renderImage,
		},
		{
			Name:   "bold",
			Tags:   []string{"strong", "b"},
			Render: wrapNonBlank("**"),
		},
		{
			Name:   "italic",
			Tags:   []string{"em", "i"},
			Render: wrapNonBlank("*"),
		},
		{
			Name:         "codeBlocks",
			Tags:         []string{"pre"},
			Block:        true,
			Match:        func(n *html.Node) bool { return firstElementChild(n, "code") != nil },
			SkipChildren: true,
			Render:       renderCodeBlock,
		},
		{
			Name:   "blockquote",
			Tags:   []string{"blockquote"},
			Block:  true,
			Render: renderBlockquote,
		},
		{
			Name:         "horizontalRule",
			Tags:         []string{"hr"},
			Block:        true,
			SkipChildren: true,
			Render:       func(RenderContext) string { return "\n\n---\n\n" },
		},
		{
			Name:   "anchors",
			Tags:   []string{"a"},
			Match:  func(n *html.Node) bool { return dom.GetAttributeOr(n, "href", "") == "" },
			Render: func(rc RenderContext) string { return rc.Content },
		},
	}
}

func renderHeading(rc RenderContext) string {
	level := int(rc.Node.Data[1] - '0')
	return "\n\n" + strings.Repeat("#", level) + " " + strings.TrimSpace(rc.Content) + "\n\n"
}

func renderLink(rc RenderContext) string {
	href := rc.Resolve(rc.Attr("href", ""))
	return "[" + rc.Content + "](" + href + title(rc) + ")"
}

func renderImage(rc RenderContext) string {
	alt := rc.Attr("alt", "")
	if alt == "" {
		alt = "image"
	}
	src := rc.Resolve(rc.Attr("src", ""))
	return "![" + alt + "](" + src + title(rc) + ")"
}

func title(rc RenderContext) string {
	if t := rc.Attr("title", ""); t != "" {
		return ` "` + t + `"`
	}
	return ""
}

// wrapNonBlank surrounds content with delim unless it is only whitespace.
func wrapNonBlank(delim string) func(RenderContext) string {
	return func(rc RenderContext) string {
		if strings.TrimSpace(rc.Content) == "" {
			return rc.Content
		}
		return delim + rc.Content + delim
	}
}

func renderCodeBlock(rc RenderContext) string {
	code := firstElementChild(rc.Node, "code")
	text := strings.TrimSuffix(textContent(code), "\n")
	return "\n\n```" + codeLanguage(code) + "\n" + text + "\n```\n\n"
}

func renderBlockquote(rc RenderContext) string {
	content := blankRunRegex.ReplaceAllString(strings.Trim(rc.Content, "\n"), "\n\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return "\n\n" + strings.Join(lines, "\n") + "\n\n"
}

// codeLanguage returns the xxx of a language-xxx class, or "".
func codeLanguage(n *html.Node) string {
	for _, class := range strings.Fields(dom.GetAttributeOr(n, "class", "")) {
		if lang, ok := strings.CutPrefix(class, "language-"); ok {
			return lang
		}
	}
	return ""
}

// firstElementChild returns n's first element child if it is named tag.
// Whitespace-only text before it is ignored.
func firstElementChild(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode && strings.TrimSpace(c.Data) == "":
			continue
		case c.Type == html.ElementNode && c.Data == tag:
			return c
		default:
			return nil
		}
	}
	return nil
}

// textContent concatenates every text node below n, like the DOM property.
func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

func renderChildren(ctx converter.Context, n *html.Node) string {
	var buf bytes.Buffer
	ctx.RenderChildNodes(ctx, &buf, n)
	return buf.String()
}

// Package extract implements the Extractor interface.
// It reduces pasted or fetched HTML to the fragment worth converting by:
//  1. Dropping the CF_HTML clipboard header some platforms prepend
//  2. Narrowing to the <!--StartFragment--> / <!--EndFragment--> range
//  3. Removing noise elements (scripts, styles, form controls, etc.)
//  4. Returning the inner HTML of the best container (<main>, <article>, or <body>)
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	startFragment = "<!--StartFragment-->"
	endFragment   = "<!--EndFragment-->"
)

// fragmentNoise is removed from every input. None of it renders as text.
var fragmentNoise = []string{
	"script", "style", "noscript", "template",
	"meta", "link", "base",
	"iframe", "object", "embed",
	"svg", "canvas",
	"button", "input", "select", "textarea",
}

// pageNoise is removed in addition when a whole page is extracted.
// Page chrome repeats on every page and says nothing about the content.
var pageNoise = []string{
	"nav", "footer", "header", "aside",
	"form",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// HTMLExtractor strips noise from HTML and returns the content fragment.
type HTMLExtractor struct {
	selectors []string
}

// New creates an HTMLExtractor for clipboard fragments. Headers, navigation
// and images inside a fragment are kept: the user selected them.
func New() *HTMLExtractor {
	return &HTMLExtractor{selectors: fragmentNoise}
}

// NewPage creates an HTMLExtractor for complete pages, which also drops
// navigation, headers, footers and sidebars.
func NewPage() *HTMLExtractor {
	selectors := make([]string, 0, len(fragmentNoise)+len(pageNoise))
	selectors = append(selectors, fragmentNoise...)
	selectors = append(selectors, pageNoise...)
	return &HTMLExtractor{selectors: selectors}
}

// Extract takes raw HTML and returns a cleaned HTML fragment.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	html = Fragment(StripClipboardHeader(html))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	// Remove noise elements first (operates on the whole document).
	for _, sel := range e.selectors {
		doc.Find(sel).Remove()
	}

	// <main> is the most semantically correct, then <article>, then <body>.
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return strings.TrimSpace(result), nil
}

// StripClipboardHeader removes the "Version:0.9 StartHTML:..." preamble of
// the Windows CF_HTML clipboard format. Other input is returned unchanged.
func StripClipboardHeader(html string) string {
	if !strings.HasPrefix(html, "Version:") || !strings.Contains(html, "StartHTML:") {
		return html
	}
	if i := strings.Index(html, "<"); i >= 0 {
		return html[i:]
	}
	return ""
}

// Fragment returns the markup between the clipboard fragment markers, or
// html unchanged when the markers are absent.
func Fragment(html string) string {
	start := strings.Index(html, startFragment)
	if start < 0 {
		return html
	}
	rest := html[start+len(startFragment):]
	if end := strings.Index(rest, endFragment); end >= 0 {
		return rest[:end]
	}
	return rest
}

package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/pastemark/core"
)

// PDFRenderer renders Markdown content as a PDF document.
// Headings, paragraphs, lists, blockquotes, tables and code blocks are laid
// out with the core fonts; Mermaid blocks are printed as source.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var (
	orderedItemRegex = regexp.MustCompile(`^\d+\.\s`)
	italicRegex      = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	imageRegex       = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
)

// Render converts Markdown into PDF bytes.
func (r *PDFRenderer) Render(markdown string, meta core.DocumentMeta) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(meta.Title), "", "L", false)
		pdf.Ln(4)
	}

	if meta.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+meta.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	inCodeBlock := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			if inCodeBlock && strings.EqualFold(strings.TrimPrefix(trimmed, "```"), "mermaid") {
				pdf.SetFont("Helvetica", "I", 8)
				pdf.SetTextColor(100, 100, 100)
				pdf.MultiCell(0, 4, "Mermaid diagram", "", "L", false)
				pdf.SetTextColor(0, 0, 0)
			}
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		switch {
		case trimmed == "":
			pdf.Ln(3)

		case strings.HasPrefix(line, "#"):
			level := len(line) - len(strings.TrimLeft(line, "#"))
			renderHeading(pdf, tr(cleanInlineMarkdown(strings.TrimLeft(line, "# "))), level)

		case strings.HasPrefix(trimmed, ">"):
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(80, 80, 80)
			pdf.SetX(pdf.GetX() + 6)
			text := strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(text)), "L", "L", false)
			pdf.SetTextColor(0, 0, 0)

		case strings.HasPrefix(trimmed, "|"):
			if tableRowRegex.MatchString(trimmed) {
				continue
			}
			pdf.SetFont("Courier", "", 9)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)

		case trimmed == "---" || trimmed == "***":
			pdf.Ln(2)
			x, y := pdf.GetX(), pdf.GetY()
			w, _ := pdf.GetPageSize()
			left, _, right, _ := pdf.GetMargins()
			pdf.Line(x, y, w-right, y)
			pdf.SetX(left)
			pdf.Ln(3)

		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", 10)
			indent := float64(len(line)-len(strings.TrimLeft(line, " "))) * 2
			pdf.SetX(pdf.GetX() + indent)
			pdf.MultiCell(0, 5, tr("• "+cleanInlineMarkdown(trimmed[2:])), "", "L", false)

		case orderedItemRegex.MatchString(trimmed):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)

		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(line)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = protectEscapes(text)
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = strings.ReplaceAll(text, "~~", "")
	// Italic markers only at word edges, so don't touch a*b.
	text = italicRegex.ReplaceAllString(text, " $1 ")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = imageRegex.ReplaceAllString(text, "[image: $1]")
	text = linkRegex.ReplaceAllString(text, "$2")
	text = restoreEscapes(text)
	return strings.TrimSpace(text)
}

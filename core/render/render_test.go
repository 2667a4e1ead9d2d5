package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/pastemark/core"
)

const sample = "# Guide\n\nIntro with a [link](https://example.com) and ![logo](logo.png).\n\n" +
	"## Steps\n\n- one\n- two\n1. first\n\n" +
	"| A | B |\n| --- | --- |\n| 1 | 2 |\n\n" +
	"```go\nfmt.Println(1)\nfmt.Println(2)\n```\n\n" +
	"```mermaid\ngraph TD\nA-->B\n```\n\n" +
	"> quoted ~~old~~\n\n---\n\nEscaped \\*star\\*"

var sampleMeta = core.DocumentMeta{
	Source:      "guide.html",
	InputType:   core.TypeHTML,
	Path:        core.PathHTML,
	InputChars:  120,
	Title:       "Guide <draft>",
	ConvertedAt: "2026-01-02T03:04:05Z",
}

func TestNew(t *testing.T) {
	tests := []struct {
		format string
		ext    string
	}{
		{"markdown", ".md"},
		{"md", ".md"},
		{"", ".md"},
		{"JSON", ".json"},
		{"yaml", ".yaml"},
		{"yml", ".yaml"},
		{"html", ".html"},
		{"pdf", ".pdf"},
	}
	for _, tt := range tests {
		r, err := New(tt.format)
		if err != nil {
			t.Errorf("New(%q) error = %v", tt.format, err)
			continue
		}
		if r.Extension() != tt.ext {
			t.Errorf("New(%q).Extension() = %q, want %q", tt.format, r.Extension(), tt.ext)
		}
	}

	if _, err := New("docx"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("New(docx) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestBuildReport(t *testing.T) {
	rep := BuildReport(sample, sampleMeta)
	s := rep.Structure

	if len(s.Headings) != 2 || s.Headings[0].Text != "Guide" || s.Headings[1].Level != 2 {
		t.Errorf("Headings = %+v", s.Headings)
	}
	if len(s.Links) != 1 || s.Links[0].Href != "https://example.com" {
		t.Errorf("Links = %+v", s.Links)
	}
	if len(s.Images) != 1 || s.Images[0].Text != "logo" {
		t.Errorf("Images = %+v", s.Images)
	}
	if len(s.CodeBlocks) != 2 {
		t.Fatalf("CodeBlocks = %+v, want 2", s.CodeBlocks)
	}
	if s.CodeBlocks[0].Language != "go" || s.CodeBlocks[0].Lines != 2 {
		t.Errorf("CodeBlocks[0] = %+v", s.CodeBlocks[0])
	}
	if s.CodeBlocks[1].Language != "mermaid" {
		t.Errorf("CodeBlocks[1] = %+v", s.CodeBlocks[1])
	}
	if s.Diagrams != 1 {
		t.Errorf("Diagrams = %d, want 1", s.Diagrams)
	}
	if s.Tables != 1 {
		t.Errorf("Tables = %d, want 1", s.Tables)
	}
	if s.ListItems != 3 {
		t.Errorf("ListItems = %d, want 3", s.ListItems)
	}

	if len(rep.Content.Sections) != 2 || rep.Content.Sections[0].Heading != "Guide" {
		t.Errorf("Sections = %+v", rep.Content.Sections)
	}
	if !strings.Contains(rep.Content.Text, "Escaped *star*") {
		t.Errorf("Text should be unescaped, got %q", rep.Content.Text)
	}
}

func TestBuildReport_IgnoresCodeContent(t *testing.T) {
	md := "```sh\n# not a heading\n- not a list\n```"
	rep := BuildReport(md, core.DocumentMeta{})
	if len(rep.Structure.Headings) != 0 || rep.Structure.ListItems != 0 {
		t.Errorf("code content counted: %+v", rep.Structure)
	}
	if len(rep.Content.Sections) != 0 {
		t.Errorf("Sections = %+v, want none", rep.Content.Sections)
	}
}

func TestJSONRenderer(t *testing.T) {
	data, err := NewJSONRenderer().Render(sample, sampleMeta)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var rep core.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if rep.Metadata.Source != "guide.html" || rep.Content.Markdown != sample {
		t.Errorf("unexpected report: %+v", rep.Metadata)
	}
	if !bytes.Contains(data, []byte(`"code_blocks"`)) {
		t.Error("expected snake_case keys in JSON output")
	}
}

func TestYAMLRenderer(t *testing.T) {
	data, err := NewYAMLRenderer().Render(sample, sampleMeta)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var rep core.Report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if rep.Structure.Diagrams != 1 || rep.Metadata.InputType != core.TypeHTML {
		t.Errorf("unexpected report: %+v", rep.Structure)
	}
	if !bytes.Contains(data, []byte("converted_at:")) {
		t.Error("expected converted_at key in YAML output")
	}
}

func TestHTMLRenderer(t *testing.T) {
	data, err := NewHTMLRenderer().Render(sample, sampleMeta)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Guide &lt;draft&gt;</title>",
		"<h1>Guide</h1>",
		"<table>",
		"<del>old</del>",
		`<code class="language-mermaid">`,
		"<blockquote>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q", want)
		}
	}
}

func TestPDFRenderer(t *testing.T) {
	data, err := NewPDFRenderer().Render(sample, sampleMeta)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:min(8, len(data))])
	}
}

func TestMarkdownRenderer(t *testing.T) {
	data, err := NewMarkdownRenderer().Render("# x\n\n", core.DocumentMeta{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(data) != "# x\n" {
		t.Errorf("Render() = %q, want %q", data, "# x\n")
	}
}

func TestCleanInlineMarkdown(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"**bold** and `code`", "bold and code"},
		{"see [docs](https://x.y)", "see docs"},
		{"![chart](c.png)", "[image: chart]"},
		{`1\. not a list`, "1. not a list"},
		{"~~gone~~", "gone"},
	}
	for _, tt := range tests {
		if got := cleanInlineMarkdown(tt.input); got != tt.want {
			t.Errorf("cleanInlineMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

package detect

import "testing"

func TestIsAlreadyMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"heading and list", "# Title\n\n- item one\n- item two", true},
		{"link and bold", "See [docs](https://example.com) for **details**", true},
		{"fenced code and inline code", "Run `make`:\n```\nmake all\n```", true},
		{"table and heading", "## Data\n| a | b |\n|---|---|", true},
		{"single italic", "This is *not bold*", false},
		{"underscores only", "snake_case and other_name", false},
		{"plain sentence", "Just a normal paragraph.", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAlreadyMarkdown(tt.input); got != tt.want {
				t.Errorf("IsAlreadyMarkdown(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPatterns_Individually(t *testing.T) {
	samples := map[string]string{
		"heading":         "### Section",
		"link":            "[text](url)",
		"image":           "![alt](pic.png)",
		"bold":            "__strong__",
		"italic":          "_soft_",
		"blockquote":      "> quoted",
		"fenced_code":     "```\ncode\n```",
		"inline_code":     "`x`",
		"horizontal_rule": "text\n---\nmore",
		"unordered_list":  "+ item",
		"ordered_list":    "1. first",
		"table":           "| a | b |",
	}

	for _, p := range Patterns() {
		sample, ok := samples[p.Name]
		if !ok {
			t.Errorf("no sample for pattern %q", p.Name)
			continue
		}
		if !p.Match(sample) {
			t.Errorf("pattern %q did not match %q", p.Name, sample)
		}
	}
}

func TestItalic_NotBold(t *testing.T) {
	var italic Pattern
	for _, p := range Patterns() {
		if p.Name == "italic" {
			italic = p
		}
	}
	if italic.Match("**") {
		t.Error("italic must not match a bare bold delimiter")
	}
	if !italic.Match("an *emphasised* word") {
		t.Error("italic should match single-star emphasis")
	}
}

func TestMatches(t *testing.T) {
	got := Matches("# Title\n\n> quote")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Name != "heading" || got[1].Name != "blockquote" {
		t.Errorf("unexpected match order: %s, %s", got[0].Name, got[1].Name)
	}
	if Matches("") != nil {
		t.Error("expected no matches for empty input")
	}
}

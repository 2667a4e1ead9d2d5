package convert

import (
	"strings"
	"testing"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"paragraphs", "Paragraph 1\n\nParagraph 2", "Paragraph 1\n\nParagraph 2"},
		{"dash list", "- Item 1\n- Item 2", "- Item 1\n- Item 2"},
		{"escapes emphasis", "This is *not bold*", `This is \*not bold\*`},
		{"single line trimmed", "  Trimmed  ", "Trimmed"},
		{"unicode bullets", "• 項目一\n‧ 項目二", "- 項目一\n- 項目二"},
		{"star bullet", "* star", "- star"},
		{"nested bullet keeps indent", "top\n  - nested", "top\n  - nested"},
		{"bullet content escaped", "- a_b", `- a\_b`},
		{"crlf lines", "one\r\ntwo", "one\ntwo"},
		{"blank line normalised", "a\n   \nb", "a\n\nb"},
		{"mixed script", "這是一個測試 Paragraph with English words.", `這是一個測試 Paragraph with English words\.`},
		{"emoji", "Hello 🌍! 😊", `Hello 🌍\! 😊`},
		{"cjk punctuation", "你好，世界！", "你好，世界！"},
		{"diagram", "graph TD\nA-->B", "```mermaid\ngraph TD\nA-->B\n```"},
		{"flowchart", "flowchart LR\nA-->B", "```mermaid\nflowchart LR\nA-->B\n```"},
		{"sequence", "sequenceDiagram\nAlice->>Bob: Hello", "```mermaid\nsequenceDiagram\nAlice->>Bob: Hello\n```"},
		{"fenced diagram kept", "```mermaid\ngraph TD\nA-->B\n```", "```mermaid\ngraph TD\nA-->B\n```"},
		{
			name:  "prose around diagram",
			input: "Intro text.\n\ngraph TD\nA-->B",
			want:  "Intro text\\.\n\n```mermaid\ngraph TD\nA-->B\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.input); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlainText_NoFenceForProse(t *testing.T) {
	if got := PlainText("Just a normal paragraph"); strings.Contains(got, "```mermaid") {
		t.Errorf("prose must not be fenced, got %q", got)
	}
}

func TestEscapeMarkdown_InvalidUTF8(t *testing.T) {
	input := "\xff\xfe bad_word"
	want := "\xff\xfe bad\\_word"
	if got := EscapeMarkdown(input); got != want {
		t.Errorf("EscapeMarkdown(%q) = %q, want %q", input, got, want)
	}
	if got := EscapeMarkdown("naïve • café"); got != "naïve • café" {
		t.Errorf("EscapeMarkdown() changed multi-byte text: %q", got)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	got := EscapeMarkdown(escapedChars)

	var want strings.Builder
	for _, r := range escapedChars {
		want.WriteString(`\` + string(r))
	}
	if got != want.String() {
		t.Errorf("EscapeMarkdown() = %q, want %q", got, want.String())
	}

	if got := EscapeMarkdown("plain words 123"); got != "plain words 123" {
		t.Errorf("EscapeMarkdown() changed safe text: %q", got)
	}
}

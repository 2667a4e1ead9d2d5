package mermaid

import (
	"strings"
	"testing"
)

func TestIsSyntax(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"graph", "graph TD\nA-->B", true},
		{"flowchart", "flowchart LR\nA-->B", true},
		{"sequence", "sequenceDiagram\nAlice->>Bob: Hello", true},
		{"case insensitive", "FLOWCHART LR", true},
		{"leading whitespace", "   \n  gantt\n  title Plan", true},
		{"keyword prefix of word", "graphic design is fun", false},
		{"keyword mid sentence", "the graph shows growth", false},
		{"plain text", "Just a normal paragraph", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSyntax(tt.input); got != tt.want {
				t.Errorf("IsSyntax(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsSyntax_AllKeywords(t *testing.T) {
	for _, kw := range Keywords() {
		if !IsSyntax(kw + "\n  A") {
			t.Errorf("IsSyntax(%q) = false, want true", kw)
		}
	}
}

func TestIsFencedBlock(t *testing.T) {
	if !IsFencedBlock("```mermaid\ngraph TD\nA-->B\n```") {
		t.Error("expected complete mermaid fence to be detected")
	}
	if !IsFencedBlock("  ```Mermaid\npie\n```  ") {
		t.Error("expected fence detection to trim and ignore case")
	}
	if IsFencedBlock("```go\nfunc main() {}\n```") {
		t.Error("go fence must not be reported as mermaid")
	}
	if IsFencedBlock("```mermaid\ngraph TD") {
		t.Error("unterminated fence must not be reported as complete")
	}
}

func TestWrapBlocks_AlreadyFenced(t *testing.T) {
	input := "```mermaid\ngraph TD\nA-->B\n```"
	if got := WrapBlocks(input); got != input {
		t.Errorf("WrapBlocks() = %q, want unchanged %q", got, input)
	}
}

func TestWrapBlocks_WrapsDiagram(t *testing.T) {
	got := WrapBlocks("graph TD\nA-->B")
	want := "```mermaid\ngraph TD\nA-->B\n```"
	if got != want {
		t.Errorf("WrapBlocks() = %q, want %q", got, want)
	}
}

func TestWrapBlocks_PreservesSeparators(t *testing.T) {
	input := "Intro\n\n\ngraph TD\nA-->B\r\n\r\nOutro"
	want := "Intro\n\n\n```mermaid\ngraph TD\nA-->B\n```\r\n\r\nOutro"
	if got := WrapBlocks(input); got != want {
		t.Errorf("WrapBlocks() = %q, want %q", got, want)
	}
}

func TestWrapBlocks_NoDiagram(t *testing.T) {
	input := "Just a normal paragraph\n\nAnd another one"
	if got := WrapBlocks(input); got != input {
		t.Errorf("WrapBlocks() = %q, want unchanged", got)
	}
	if got := WrapBlocks(""); got != "" {
		t.Errorf("WrapBlocks(\"\") = %q, want empty", got)
	}
}

func TestWrapBlocks_Idempotent(t *testing.T) {
	input := "Title\n\nsequenceDiagram\nAlice->>Bob: Hi\n\nEnd"
	once := WrapBlocks(input)
	if twice := WrapBlocks(once); twice != once {
		t.Errorf("second pass changed output:\n%q\n%q", once, twice)
	}
}

func TestWrapCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "unlabelled diagram",
			input: "```\ngraph TD\nA-->B\n```",
			want:  "```mermaid\ngraph TD\nA-->B\n```",
		},
		{
			name:  "whitespace label",
			input: "```  \npie\n\"a\": 1\n\n```",
			want:  "```mermaid\npie\n\"a\": 1\n```",
		},
		{
			name:  "other language untouched",
			input: "```go\ngraph := 1\n```",
			want:  "```go\ngraph := 1\n```",
		},
		{
			name:  "already mermaid untouched",
			input: "```mermaid\ngraph TD\n```",
			want:  "```mermaid\ngraph TD\n```",
		},
		{
			name:  "unlabelled non diagram untouched",
			input: "text\n\n```\necho hi\n```",
			want:  "text\n\n```\necho hi\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapCodeFences(tt.input)
			if got != tt.want {
				t.Errorf("WrapCodeFences() = %q, want %q", got, tt.want)
			}
			if again := WrapCodeFences(got); again != got {
				t.Errorf("WrapCodeFences() not idempotent: %q", again)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	segments := Split("before\n```mermaid\npie\n```\nafter")
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d: %+v", len(segments), segments)
	}
	if segments[0].Diagram || !segments[1].Diagram || segments[2].Diagram {
		t.Errorf("unexpected diagram flags: %+v", segments)
	}

	var joined strings.Builder
	for _, s := range segments {
		joined.WriteString(s.Text)
	}
	if joined.String() != "before\n```mermaid\npie\n```\nafter" {
		t.Errorf("segments do not rejoin to the input: %q", joined.String())
	}
}

func TestCount(t *testing.T) {
	md := "```mermaid\npie\n```\n\ntext\n\n```mermaid\ngantt\n```\n\n```go\nx\n```"
	if got := Count(md); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

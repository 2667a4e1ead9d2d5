package convert

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
)

func TestHTML_Elements(t *testing.T) {
	c := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold", "<strong>bold text</strong>", "**bold text**"},
		{"italic", "<em>italic text</em>", "*italic text*"},
		{"link", `<a href="https://example.com">Example</a>`, "[Example](https://example.com)"},
		{"image", `<img src="https://example.com/img.png" alt="Alt text">`, "![Alt text](https://example.com/img.png)"},
		{"blockquote", "<blockquote>Quote text</blockquote>", "> Quote text"},
		{"horizontal rule", "<p>a</p><hr><p>b</p>", "---"},
		{"list", "<ul><li>one</li><li>two</li></ul>", "- one"},
		{"code language", `<pre><code class="language-go">fmt.Println(1)</code></pre>`, "```go\nfmt.Println(1)\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.HTML(tt.input)
			if !strings.Contains(got, tt.want) {
				t.Errorf("HTML(%q) = %q, want it to contain %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHTML_Headings(t *testing.T) {
	c := New()
	for level := 1; level <= 6; level++ {
		input := fmt.Sprintf("<h%d>Heading %d</h%d>", level, level, level)
		want := strings.Repeat("#", level) + fmt.Sprintf(" Heading %d", level)
		if got := c.HTML(input); !strings.Contains(got, want) {
			t.Errorf("HTML(%q) = %q, want it to contain %q", input, got, want)
		}
	}
}

func TestHTML_Table(t *testing.T) {
	got := New().HTML("<table><thead><tr><th>A</th><th>B</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table>")
	if !regexp.MustCompile(`\|\s*A\s*\|\s*B\s*\|`).MatchString(got) {
		t.Errorf("expected table header row, got %q", got)
	}
	if !regexp.MustCompile(`\|\s*1\s*\|\s*2\s*\|`).MatchString(got) {
		t.Errorf("expected table body row, got %q", got)
	}
}

func TestHTML_DiagramCodeBlock(t *testing.T) {
	got := New().HTML("<pre><code>graph TD\nA--&gt;B</code></pre>")
	want := "```mermaid\ngraph TD\nA-->B\n```"
	if got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestHTML_Trimmed(t *testing.T) {
	got := New().HTML("\n\n<p>hello</p>\n\n")
	if got != "hello" {
		t.Errorf("HTML() = %q, want %q", got, "hello")
	}
	if got := New().HTML(""); got != "" {
		t.Errorf("HTML(\"\") = %q, want empty", got)
	}
}

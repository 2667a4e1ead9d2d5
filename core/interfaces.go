// Package core defines the shared types and stage interfaces for pastemark.
// Each stage of the conversion pipeline is a clean, testable interface.
package core

import "context"

// InputType declares what kind of content an InputData carries.
type InputType string

const (
	// TypeText is typed or pasted plain text.
	TypeText InputType = "text"
	// TypeHTML is rich content (pasted HTML, an .html file, a fetched page).
	TypeHTML InputType = "html"
)

// InputData is the value handed to the conversion entry point.
// Any Type other than TypeHTML is treated as plain text.
type InputData struct {
	Type InputType `json:"type"`
	Data string    `json:"data"`
}

// Text returns InputData for plain text.
func Text(data string) InputData {
	return InputData{Type: TypeText, Data: data}
}

// HTML returns InputData for an HTML fragment or document.
func HTML(data string) InputData {
	return InputData{Type: TypeHTML, Data: data}
}

// Path names the branch the entry point took for an input.
type Path string

const (
	PathNone        Path = "none"        // empty input
	PathPassthrough Path = "passthrough" // text that already looks like Markdown
	PathHTML        Path = "html"
	PathPlainText   Path = "text"
)

// Result is the Markdown produced for one input plus the dispatch decision.
type Result struct {
	Markdown        string `json:"markdown"`
	Path            Path   `json:"path"`
	AlreadyMarkdown bool   `json:"already_markdown"`
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
	Title      string
}

// DocumentMeta describes where a converted document came from.
type DocumentMeta struct {
	Source          string    `json:"source" yaml:"source"`
	InputType       InputType `json:"input_type" yaml:"input_type"`
	Path            Path      `json:"path" yaml:"path"`
	AlreadyMarkdown bool      `json:"already_markdown" yaml:"already_markdown"`
	InputChars      int       `json:"input_chars" yaml:"input_chars"`
	Title           string    `json:"title,omitempty" yaml:"title,omitempty"`
	ConvertedAt     string    `json:"converted_at" yaml:"converted_at"` // ISO8601
}

// Section represents a heading-delimited section of content.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Level   int    `json:"level" yaml:"level"`
	Text    string `json:"text" yaml:"text"`
}

// Heading represents a single heading found in the content.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Link represents a hyperlink or image reference found in the content.
type Link struct {
	Text string `json:"text" yaml:"text"`
	Href string `json:"href" yaml:"href"`
}

// CodeBlock is a fenced block found in the content.
type CodeBlock struct {
	Language string `json:"language" yaml:"language"`
	Lines    int    `json:"lines" yaml:"lines"`
}

// DocumentContent holds the text and sectioned content of a document.
type DocumentContent struct {
	Text     string    `json:"text" yaml:"text"`
	Markdown string    `json:"markdown" yaml:"markdown"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// DocumentStructure holds structural metadata parsed from the Markdown.
type DocumentStructure struct {
	Headings   []Heading   `json:"headings" yaml:"headings"`
	Links      []Link      `json:"links" yaml:"links"`
	Images     []Link      `json:"images" yaml:"images"`
	CodeBlocks []CodeBlock `json:"code_blocks" yaml:"code_blocks"`
	Diagrams   int         `json:"diagrams" yaml:"diagrams"`
	Tables     int         `json:"tables" yaml:"tables"`
	ListItems  int         `json:"list_items" yaml:"list_items"`
}

// Report is the complete structured output for a converted document.
type Report struct {
	Metadata  DocumentMeta      `json:"metadata" yaml:"metadata"`
	Content   DocumentContent   `json:"content" yaml:"content"`
	Structure DocumentStructure `json:"structure" yaml:"structure"`
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor cleans an HTML document or clipboard fragment down to its content.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts cleaned HTML into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Converter is the unified conversion entry point.
type Converter interface {
	Convert(in InputData) string
}

// Renderer converts Markdown (and metadata) into a final output format.
type Renderer interface {
	Render(markdown string, meta DocumentMeta) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}

// Package normalize implements the Normalizer interface.
// It converts an HTML fragment into Markdown with html-to-markdown, configured
// once with a fixed, ordered table of element rules plus the GFM table and
// strikethrough plugins.
package normalize

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"golang.org/x/net/html"
)

// ErrInvalidRule is returned by New when a rule cannot be registered.
var ErrInvalidRule = errors.New("invalid conversion rule")

// Engine converts HTML to Markdown. It is immutable after New returns and is
// safe for concurrent use.
type Engine struct {
	conv    *converter.Converter
	rules   []Rule
	baseURL *url.URL
}

// Option configures an Engine.
type Option func(*Engine) error

// WithBaseURL resolves relative link and image URLs against base.
func WithBaseURL(base string) Option {
	return func(e *Engine) error {
		if base == "" {
			return nil
		}
		u, err := url.Parse(base)
		if err != nil {
			return fmt.Errorf("parsing base URL: %w", err)
		}
		e.baseURL = u
		return nil
	}
}

// New builds an Engine from an ordered rule table. Rules later in the slice
// take precedence over earlier ones and over the generic commonmark handling
// of the same element.
func New(rules []Rule, opts ...Option) (*Engine, error) {
	e := &Engine{rules: rules}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	for i, r := range rules {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}

	e.conv = converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle("atx"),
				commonmark.WithCodeBlockFence("```"),
				commonmark.WithBulletListMarker("-"),
				commonmark.WithEmDelimiter("*"),
				commonmark.WithStrongDelimiter("**"),
				commonmark.WithHorizontalRule("---"),
			),
			table.NewTablePlugin(),
			strikethrough.NewStrikethroughPlugin(),
		),
	)

	// Lower priority values run first, so each later rule gets a smaller value
	// than the one before it.
	for i, r := range rules {
		priority := converter.PriorityEarly - i
		for _, tag := range r.Tags {
			if r.Block {
				e.conv.Register.RendererFor(tag, converter.TagTypeBlock, e.handler(r), priority)
			} else {
				e.conv.Register.RendererFor(tag, converter.TagTypeInline, e.handler(r), priority)
			}
		}
	}

	return e, nil
}

// NewDefault builds an Engine with DefaultRules.
func NewDefault(opts ...Option) (*Engine, error) {
	return New(DefaultRules(), opts...)
}

// Normalize converts an HTML fragment into Markdown.
func (e *Engine) Normalize(htmlInput string) (string, error) {
	markdown, err := e.conv.ConvertString(htmlInput)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}

// Rules returns the rule names in registration order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

// handler adapts a Rule to the converter's render callback. Elements the
// rule does not match fall through to the next renderer.
func (e *Engine) handler(r Rule) converter.HandleRenderFunc {
	return func(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
		if r.Match != nil && !r.Match(n) {
			return converter.RenderTryNext
		}

		content := ""
		if !r.SkipChildren {
			content = renderChildren(ctx, n)
		}

		out := r.Render(RenderContext{Content: content, Node: n, engine: e})
		if _, err := w.WriteString(out); err != nil {
			return converter.RenderTryNext
		}
		return converter.RenderSuccess
	}
}

// resolve makes rawURL absolute against the engine's base URL, if one is set.
func (e *Engine) resolve(rawURL string) string {
	if e.baseURL == nil || rawURL == "" {
		return rawURL
	}
	ref, err := url.Parse(rawURL)
	if err != nil || ref.IsAbs() {
		return rawURL
	}
	return e.baseURL.ResolveReference(ref).String()
}

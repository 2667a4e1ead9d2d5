// Package convert is the conversion core: the plain-text converter, the HTML
// converter and the single entry point that dispatches between them.
package convert

import (
	"io"
	"log/slog"
	"sync"

	"github.com/gaurav-prasanna/pastemark/core"
	"github.com/gaurav-prasanna/pastemark/core/detect"
	"github.com/gaurav-prasanna/pastemark/core/normalize"
)

// EngineFactory builds the HTML translation engine.
type EngineFactory func() (core.Normalizer, error)

// Converter owns a lazily-constructed translation engine and converts
// InputData to Markdown. The zero value is not usable; call New.
type Converter struct {
	factory EngineFactory
	log     *slog.Logger

	mu       sync.Mutex
	eng      core.Normalizer
	failures int
}

// Option configures a Converter.
type Option func(*Converter)

// WithEngineFactory replaces the default engine construction.
func WithEngineFactory(f EngineFactory) Option {
	return func(c *Converter) {
		c.factory = f
	}
}

// WithBaseURL resolves relative links and images in HTML input against base.
func WithBaseURL(base string) Option {
	return func(c *Converter) {
		c.factory = func() (core.Normalizer, error) {
			return normalize.NewDefault(normalize.WithBaseURL(base))
		}
	}
}

// WithLogger sets the logger used for fail-open events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		c.log = l
	}
}

// New creates a Converter. The engine is not built until the first HTML
// conversion needs it.
func New(opts ...Option) *Converter {
	c := &Converter{
		factory: func() (core.Normalizer, error) { return normalize.NewDefault() },
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert is the unified entry point. Text that already looks like Markdown
// is returned unchanged, HTML goes through the HTML converter and everything
// else, including unknown types, through the plain-text converter.
func (c *Converter) Convert(in core.InputData) string {
	return c.Result(in).Markdown
}

// Result converts in and reports which path was taken.
func (c *Converter) Result(in core.InputData) core.Result {
	if in.Data == "" {
		return core.Result{Path: core.PathNone}
	}

	if in.Type == core.TypeText && detect.IsAlreadyMarkdown(in.Data) {
		return core.Result{Markdown: in.Data, Path: core.PathPassthrough, AlreadyMarkdown: true}
	}

	if in.Type == core.TypeHTML {
		return core.Result{Markdown: c.HTML(in.Data), Path: core.PathHTML}
	}

	return core.Result{Markdown: PlainText(in.Data), Path: core.PathPlainText}
}

// PlainText converts free-form text; see the package-level PlainText.
func (c *Converter) PlainText(text string) string {
	return PlainText(text)
}

// engine returns the translation engine, building it on first use. A failed
// build is not cached, so a later call tries again; only the first failure
// is logged at warn level.
func (c *Converter) engine() (core.Normalizer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.eng != nil {
		return c.eng, true
	}

	eng, err := c.factory()
	if err != nil || eng == nil {
		c.failures++
		if c.failures == 1 {
			c.log.Warn("html engine unavailable", "error", err)
		} else {
			c.log.Debug("html engine unavailable", "error", err, "failures", c.failures)
		}
		return nil, false
	}
	c.eng = eng
	return eng, true
}

var _ core.Converter = (*Converter)(nil)

package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gaurav-prasanna/pastemark/core"
	"github.com/gaurav-prasanna/pastemark/core/clipboard"
	"github.com/gaurav-prasanna/pastemark/core/extract"
	"github.com/gaurav-prasanna/pastemark/core/fetch"
	"github.com/gaurav-prasanna/pastemark/internal/logger"
)

// source is one input loaded from a file, stdin or a URL.
type source struct {
	Name    string // file path, URL, or "-" for stdin
	Input   core.InputData
	Title   string
	BaseURL string // set for fetched pages
}

// readSource loads the file named by args[0], or stdin when there is no
// argument or it is "-". typeFlag is text, html or auto.
func readSource(stdin io.Reader, args []string, typeFlag string) (*source, error) {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}

	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	typ, ok := clipboard.ParseType(typeFlag)
	if !ok {
		if typeFlag != "" && !strings.EqualFold(typeFlag, "auto") {
			return nil, fmt.Errorf("invalid --type %q (want text, html or auto)", typeFlag)
		}
		typ = clipboard.DetectType(name, data)
	}

	in := core.InputData{Type: typ, Data: string(data)}
	if typ == core.TypeHTML {
		in.Data = cleanHTML(extract.New(), in.Data)
	}
	return &source{Name: name, Input: in}, nil
}

// fetchSource downloads rawURL and reduces the page to its main content.
func fetchSource(ctx context.Context, rawURL string) (*source, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	fetcher := fetch.New(
		fetch.WithTimeout(cfg.Fetch.Timeout),
		fetch.WithUserAgent(cfg.Fetch.UserAgent),
		fetch.WithMaxBytes(cfg.Fetch.MaxBytes),
	)
	res, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	logger.Debug("page fetched", "url", res.URL, "status", res.StatusCode, "bytes", len(res.HTML))

	return &source{
		Name:    res.URL,
		Input:   core.HTML(cleanHTML(extract.NewPage(), res.HTML)),
		Title:   res.Title,
		BaseURL: res.URL,
	}, nil
}

// cleanHTML runs ex over html and keeps the original when extraction fails.
func cleanHTML(ex core.Extractor, html string) string {
	cleaned, err := ex.Extract(html)
	if err != nil {
		logger.Warn("html extraction failed, converting as-is", "error", err)
		return html
	}
	return cleaned
}

// buildMetadata describes a converted source for the renderers.
func buildMetadata(src *source, res core.Result) core.DocumentMeta {
	return core.DocumentMeta{
		Source:          src.Name,
		InputType:       src.Input.Type,
		Path:            res.Path,
		AlreadyMarkdown: res.AlreadyMarkdown,
		InputChars:      utf8.RuneCountInString(src.Input.Data),
		Title:           src.Title,
		ConvertedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}

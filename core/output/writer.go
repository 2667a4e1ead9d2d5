// Package output handles file naming and writing for pastemark outputs.
// Without an output directory, rendered bytes go to stdout. With one, the
// filename is derived from the source: a file keeps its base name
// (notes.html → notes.md), a URL is flattened (example.com/docs → example_com_docs.md).
package output

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// fallbackName is used when the source is stdin or has no usable name.
const fallbackName = "pastemark"

// Writer writes rendered output to stdout or to disk.
type Writer struct {
	OutputDir string
	Stdout    io.Writer
}

// New creates a Writer targeting the given output directory, creating it if
// needed. If outputDir is empty, output goes to stdout.
func New(outputDir string) (*Writer, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &Writer{OutputDir: outputDir, Stdout: os.Stdout}, nil
}

// ToStdout reports whether output goes to stdout.
func (w *Writer) ToStdout() bool {
	return w.OutputDir == ""
}

// Write stores data for source. It returns the written file path, or "" when
// the data went to stdout.
func (w *Writer) Write(source string, data []byte, ext string) (string, error) {
	if w.ToStdout() {
		if _, err := w.Stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing to stdout: %w", err)
		}
		return "", nil
	}

	path := filepath.Join(w.OutputDir, Name(source)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Name derives a flat, extension-less filename from a source file path or URL.
func Name(source string) string {
	if source == "" || source == "-" {
		return fallbackName
	}
	if u, err := url.Parse(source); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return filenameFromURL(u)
	}

	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if name := sanitize(base); strings.Trim(name, "_") != "" {
		return name
	}
	return fallbackName
}

// filenameFromURL converts a URL into a flat filename.
// Example: https://example.com/docs/intro → example_com_docs_intro
func filenameFromURL(u *url.URL) string {
	parts := []string{sanitize(u.Hostname())}
	path := strings.Trim(u.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			seg = strings.TrimSuffix(seg, filepath.Ext(seg))
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces characters other than letters, digits, '-' and '_'
// with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

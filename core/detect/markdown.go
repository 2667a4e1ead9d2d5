// Package detect decides whether raw text is already Markdown.
//
// The check is a heuristic, not a parser: the text is tested against a fixed,
// ordered list of independent patterns and is considered Markdown once two
// distinct patterns match. Coincidental matches (two underscores in a sentence
// plus a stray pipe) can misfire; the threshold and pattern list are kept as
// they are for compatibility.
package detect

import "regexp"

// Threshold is the number of distinct patterns that must match.
const Threshold = 2

// Pattern is one Markdown construct the detector looks for.
type Pattern struct {
	Name  string
	regex *regexp.Regexp
}

// Match reports whether the pattern occurs anywhere in text.
func (p Pattern) Match(text string) bool {
	return p.regex.MatchString(text)
}

// patterns are checked in order. RE2 has no backreferences or lookahead, so
// the bold and italic checks spell out each delimiter.
var patterns = []Pattern{
	{Name: "heading", regex: regexp.MustCompile(`(?m)^#{1,6}\s+\S`)},
	{Name: "link", regex: regexp.MustCompile(`\[.+?\]\(.+?\)`)},
	{Name: "image", regex: regexp.MustCompile(`!\[.*?\]\(.+?\)`)},
	{Name: "bold", regex: regexp.MustCompile(`\*\*.+?\*\*|__.+?__`)},
	{Name: "italic", regex: regexp.MustCompile(`\*[^*\n].*?\*|_[^_\n].*?_`)},
	{Name: "blockquote", regex: regexp.MustCompile(`(?m)^>\s+`)},
	{Name: "fenced_code", regex: regexp.MustCompile("(?m)^```[\\s\\S]*?```")},
	{Name: "inline_code", regex: regexp.MustCompile("`[^`]+`")},
	{Name: "horizontal_rule", regex: regexp.MustCompile(`(?m)^-{3,}$`)},
	{Name: "unordered_list", regex: regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`)},
	{Name: "ordered_list", regex: regexp.MustCompile(`(?m)^\s*\d+\.\s+\S`)},
	{Name: "table", regex: regexp.MustCompile(`\|.*\|.*\|`)},
}

// Patterns returns the detector's patterns in evaluation order.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// IsAlreadyMarkdown reports whether text matches at least Threshold distinct
// patterns. Evaluation stops at the first pattern that reaches the threshold.
func IsAlreadyMarkdown(text string) bool {
	if text == "" {
		return false
	}

	count := 0
	for _, p := range patterns {
		if p.Match(text) {
			count++
		}
		if count >= Threshold {
			return true
		}
	}
	return false
}

// Matches returns every pattern that occurs in text, in evaluation order.
func Matches(text string) []Pattern {
	var matched []Pattern
	if text == "" {
		return matched
	}
	for _, p := range patterns {
		if p.Match(text) {
			matched = append(matched, p)
		}
	}
	return matched
}

package build

import (
	"regexp"
	"strings"
)

var (
	htmlSpace   = regexp.MustCompile(`\s+`)
	htmlBetween = regexp.MustCompile(`>\s+<`)

	cssComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	cssSpace   = regexp.MustCompile(`\s+`)
	cssPunct   = regexp.MustCompile(`\s*([{};:,>])\s*`)
)

// fixpoint repeats pass until the output stops changing, which makes every
// minifier idempotent.
func fixpoint(s string, pass func(string) string) string {
	for {
		next := pass(s)
		if next == s {
			return s
		}
		s = next
	}
}

// MinifyHTML collapses whitespace runs and drops whitespace between tags.
// Whitespace inside <pre> is not preserved.
func MinifyHTML(s string) string {
	return fixpoint(s, func(s string) string {
		s = htmlSpace.ReplaceAllString(s, " ")
		s = htmlBetween.ReplaceAllString(s, "><")

		return strings.TrimSpace(s)
	})
}

// MinifyCSS strips comments and the whitespace around punctuation.
func MinifyCSS(s string) string {
	return fixpoint(s, func(s string) string {
		s = cssComment.ReplaceAllString(s, "")
		s = cssSpace.ReplaceAllString(s, " ")
		s = cssPunct.ReplaceAllString(s, "$1")
		s = strings.ReplaceAll(s, ";}", "}")

		return strings.TrimSpace(s)
	})
}

// MinifyJS trims lines and drops blank lines and whole-line comments.
// Line breaks are kept so automatic semicolon insertion is unaffected.
func MinifyJS(s string) string {
	return fixpoint(s, func(s string) string {
		var out []string
		for _, line := range strings.Split(s, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "//") {
				continue
			}
			out = append(out, line)
		}

		return strings.Join(out, "\n")
	})
}

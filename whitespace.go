package cornellfmt

import (
	"regexp"
	"strings"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// whitespaceCleaner is the final mechanical cleanup pass.
type whitespaceCleaner interface {
	CleanWhitespace(content string) string
}

// blankLineCleaner trims trailing whitespace and caps runs of blank or
// bare-quote-marker lines. Quote-only spacer lines count toward the run,
// so a regexp over newlines alone would not be enough.
type blankLineCleaner struct {
	maxBlankRun int
}

// CleanWhitespace applies the cleanup to every line.
func (c *blankLineCleaner) CleanWhitespace(content string) string {
	limit := c.maxBlankRun
	if limit < MinBlankLineCap {
		limit = DefaultBlankLineCap
	}

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	run := 0
	for _, raw := range lines {
		ln := strings.TrimRight(raw, " \t")

		if ln == "" || isSpacerLine(ln) {
			run++
			if run <= limit {
				out = append(out, ln)
			}
			continue
		}

		run = 0
		out = append(out, ln)
	}

	return strings.Join(out, "\n")
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

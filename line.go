package cornellfmt

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Leading blockquote markers and whitespace
	quotePrefix = regexp.MustCompile(`^[>\s]+`)

	// Header pattern (ATX style)
	headingPattern = regexp.MustCompile(`^(#+)\s+(.+)$`)

	// List item patterns (unordered and ordered)
	unorderedListPattern = regexp.MustCompile(`^[-*+]\s`)
	orderedListPattern   = regexp.MustCompile(`^[0-9]+\.\s`)
)

// lineKind classifies one input row after stripping quote markers.
type lineKind int

const (
	lineBlank lineKind = iota
	lineMarker
	lineHeading
	lineList
	lineText
)

// markerKind identifies which callout a marker line opens.
type markerKind int

const (
	markerNone markerKind = iota
	markerCornell
	markerSummary
	markerAdLibitum
)

// Canonical callout tokens.
const (
	tokenCornell   = "[!cornell]"
	tokenSummary   = "[!summary]"
	tokenAdLibitum = "[!ad-libitum]"
)

// line is the semantic classification of one input row.
type line struct {
	kind   lineKind
	marker markerKind
	level  int    // heading level, set only for lineHeading
	text   string // content without quote markers or surrounding whitespace
}

// classifyLine strips leading quote markers and whitespace from a raw row
// and classifies the remainder. Marker detection honors the policy's
// summary model.
func classifyLine(raw string, distinctSummary bool) line {
	content := strings.TrimSpace(quotePrefix.ReplaceAllString(raw, ""))

	if content == "" {
		return line{kind: lineBlank}
	}

	if mk := detectMarker(content, distinctSummary); mk != markerNone {
		return line{kind: lineMarker, marker: mk, text: content}
	}

	if m := headingPattern.FindStringSubmatch(content); m != nil {
		return line{kind: lineHeading, level: len(m[1]), text: m[2]}
	}

	if isListItem(content) {
		return line{kind: lineList, text: content}
	}

	return line{kind: lineText, text: content}
}

// detectMarker reports which section a (canonicalized) content line opens.
// With the collapsed summary model, a cornell marker whose title mentions
// "summary" opens the summary section.
func detectMarker(content string, distinctSummary bool) markerKind {
	lower := strings.ToLower(content)

	switch {
	case strings.Contains(lower, tokenSummary):
		return markerSummary
	case strings.Contains(lower, tokenAdLibitum):
		return markerAdLibitum
	case strings.Contains(lower, tokenCornell):
		if !distinctSummary {
			title := lower[strings.Index(lower, tokenCornell)+len(tokenCornell):]
			if strings.Contains(title, "summary") {
				return markerSummary
			}
		}
		return markerCornell
	}
	return markerNone
}

// isListItem returns true if the content starts with a list marker (-, *, +, or 1.).
func isListItem(content string) bool {
	return unorderedListPattern.MatchString(content) || orderedListPattern.MatchString(content)
}

// isBlankLine returns true if the line is empty or contains only whitespace.
func isBlankLine(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

// isSpacerLine returns true for lines consisting only of quote markers,
// e.g. ">" or "> >".
func isSpacerLine(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}
	return strings.Trim(trimmed, "> \t") == ""
}

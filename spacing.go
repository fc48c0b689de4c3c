package cornellfmt

import "strings"

// spacingNormalizer guarantees a separator before each section marker.
type spacingNormalizer interface {
	NormalizeSpacing(content string) string
}

// sectionSpacer inserts one blank line before every top-level marker not
// already preceded by a blank or bare-quote line. Idempotent.
type sectionSpacer struct{}

// NormalizeSpacing walks the document once, inserting separators.
func (sectionSpacer) NormalizeSpacing(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines)+4)

	for _, raw := range lines {
		if isMarkerLine(raw) && len(out) > 0 {
			prev := out[len(out)-1]
			if !isBlankLine(prev) && !isSpacerLine(prev) {
				out = append(out, "")
			}
		}
		out = append(out, raw)
	}

	return strings.Join(out, "\n")
}

// isMarkerLine reports whether the row carries any callout token.
func isMarkerLine(raw string) bool {
	content := strings.TrimSpace(quotePrefix.ReplaceAllString(raw, ""))
	return detectMarker(content, true) != markerNone
}

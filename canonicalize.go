package cornellfmt

import "regexp"

// Precompiled marker patterns, all case-insensitive.
var (
	// Misspelled ad-libitum variants: [!adlibitum], [!ad_libitum]
	adLibitumVariant = regexp.MustCompile(`(?i)\[!ad[_]?libitum\]`)

	// Bracket-doubled markers: [[!cornell]] etc.
	doubledCornell   = regexp.MustCompile(`(?i)\[\[!cornell\]\]`)
	doubledSummary   = regexp.MustCompile(`(?i)\[\[!summary\]\]`)
	doubledAdLibitum = regexp.MustCompile(`(?i)\[\[!ad-libitum\]\]`)

	// Correctly bracketed markers, any case
	anyCaseCornell   = regexp.MustCompile(`(?i)\[!cornell\]`)
	anyCaseSummary   = regexp.MustCompile(`(?i)\[!summary\]`)
	anyCaseAdLibitum = regexp.MustCompile(`(?i)\[!ad-libitum\]`)
)

// calloutCanonicalizer rewrites every recognized marker spelling into the
// canonical token. Pure text substitution, position-independent; unmatched
// text is left untouched.
type calloutCanonicalizer interface {
	CanonicalizeCallouts(content string) string
}

// markerCanonicalizer implements the canonical marker spellings.
type markerCanonicalizer struct{}

// CanonicalizeCallouts applies all marker rewrites.
// Order matters: misspellings first (so [[!adlibitum]] collapses to a
// doubled canonical form), then bracket-doubling, then case.
func (markerCanonicalizer) CanonicalizeCallouts(content string) string {
	content = adLibitumVariant.ReplaceAllString(content, tokenAdLibitum)

	content = doubledCornell.ReplaceAllString(content, tokenCornell)
	content = doubledSummary.ReplaceAllString(content, tokenSummary)
	content = doubledAdLibitum.ReplaceAllString(content, tokenAdLibitum)

	content = anyCaseCornell.ReplaceAllString(content, tokenCornell)
	content = anyCaseSummary.ReplaceAllString(content, tokenSummary)
	content = anyCaseAdLibitum.ReplaceAllString(content, tokenAdLibitum)
	return content
}

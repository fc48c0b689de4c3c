package cornellfmt

import (
	"regexp"
	"strings"
)

// nestedHeading matches a level-2+ heading at any quote depth.
var nestedHeading = regexp.MustCompile(`^(\s*>)*\s*#{2,}\s`)

// Validation issue messages.
const (
	issueDoubledCornell   = "Found [[!cornell]] instead of [!cornell]"
	issueDoubledSummary   = "Found [[!summary]] instead of [!summary]"
	issueDoubledAdLibitum = "Found [[!ad-libitum]] instead of [!ad-libitum]"

	issueMissingCornell   = "Missing [!cornell] section"
	issueMissingSummary   = "Missing [!summary] section"
	issueMissingAdLibitum = "Missing [!ad-libitum] section"

	issueMissingSubsections = "Cornell section missing subsections (no ## or ### headings)"
)

// structureValidator reports structural defects without mutating.
type structureValidator interface {
	ValidateStructure(content string) Report
}

// markerValidator enumerates every defect rather than halting on the
// first one, so callers receive a complete diagnostic list. Total over
// its input domain; empty input reports all required markers missing.
type markerValidator struct{}

// ValidateStructure runs the checks in order: residual doubled-bracket
// variants, missing required markers, then cue/notes bodies without
// subsections.
func (v markerValidator) ValidateStructure(content string) Report {
	var issues []string

	if doubledCornell.MatchString(content) {
		issues = append(issues, issueDoubledCornell)
	}
	if doubledSummary.MatchString(content) {
		issues = append(issues, issueDoubledSummary)
	}
	if doubledAdLibitum.MatchString(content) {
		issues = append(issues, issueDoubledAdLibitum)
	}

	lower := strings.ToLower(content)
	if !strings.Contains(lower, tokenCornell) {
		issues = append(issues, issueMissingCornell)
	}
	if !strings.Contains(lower, tokenSummary) {
		issues = append(issues, issueMissingSummary)
	}
	if !strings.Contains(lower, tokenAdLibitum) {
		issues = append(issues, issueMissingAdLibitum)
	}

	issues = append(issues, v.subsectionIssues(content)...)

	return Report{Valid: len(issues) == 0, Issues: issues}
}

// subsectionIssues reports one issue per cue/notes block that contains no
// level-2+ heading. A cornell marker carrying a "Summary" title opens a
// summary body and is not expected to have subsections.
func (markerValidator) subsectionIssues(content string) []string {
	var issues []string

	inMain := false
	hasHeading := false

	flush := func() {
		if inMain && !hasHeading {
			issues = append(issues, issueMissingSubsections)
		}
		inMain = false
		hasHeading = false
	}

	for _, raw := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(quotePrefix.ReplaceAllString(raw, ""))
		if mk := detectMarker(stripped, false); mk != markerNone {
			flush()
			inMain = mk == markerCornell
			continue
		}
		if inMain && nestedHeading.MatchString(raw) {
			hasHeading = true
		}
	}
	flush()

	return issues
}

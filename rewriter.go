package cornellfmt

import "strings"

// section identifies which callout block the rewriter is inside.
type section int

const (
	sectionNone section = iota
	sectionMain
	sectionSummary
	sectionAdLibitum
)

// subSection tracks progress through one Main block. It only advances
// within a block, except for the documented concept-to-cue hop, and
// resets when a new Main block starts.
type subSection int

const (
	subNone    subSection = iota
	subList               // saw a level-2 heading (cue/reference section)
	subConcept            // saw a level-3+ heading (concept section)
)

// lastKind is the classification of the most recently emitted content
// line; it drives spacer insertion for the next line.
type lastKind int

const (
	lastCallout lastKind = iota
	lastHeading
	lastList
	lastText
)

// Spacer lines by quote depth.
const (
	spacerSingle = ">"
	spacerDouble = "> >"
)

// structureRewriter re-derives blockquote nesting and spacer lines.
type structureRewriter interface {
	RewriteStructure(content string) string
}

// quoteRewriter is the core state machine. It processes the document in a
// single forward pass; every blank line inside a recognized section is
// dropped and spacing is re-synthesized from line-kind adjacency, so the
// rewrite is idempotent.
type quoteRewriter struct {
	policy Policy
}

// rewriteState is the automaton state, local to one rewrite call.
type rewriteState struct {
	section section
	sub     subSection
	last    lastKind
}

// RewriteStructure rewrites quote depth and spacing for every recognized
// section. Lines outside any section pass through byte-for-byte.
func (r *quoteRewriter) RewriteStructure(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines)+8)

	st := rewriteState{section: sectionNone}
	seenSection := false

	for _, raw := range lines {
		ln := classifyLine(raw, r.policy.DistinctSummarySection)

		if ln.kind == lineMarker {
			// One blank separator between sibling sections.
			if seenSection {
				out = append(out, "")
			}
			out = append(out, "> "+ln.text)
			st = rewriteState{section: sectionFor(ln.marker), last: lastCallout}
			seenSection = true
			continue
		}

		switch st.section {
		case sectionNone:
			out = append(out, raw)
		case sectionMain:
			out = r.rewriteMainLine(out, &st, ln)
		case sectionSummary, sectionAdLibitum:
			out = r.rewriteFlatLine(out, &st, ln)
		}
	}

	return strings.Join(out, "\n")
}

// rewriteMainLine handles one classified line inside the cue/notes body.
func (r *quoteRewriter) rewriteMainLine(out []string, st *rewriteState, ln line) []string {
	switch ln.kind {
	case lineBlank:
		// Spacing is synthesized, never copied.
		return out

	case lineHeading:
		switch {
		case ln.level == 1:
			// Level-1 headings extend the callout title row.
			return append(out, "> # "+ln.text)
		case ln.level == 2:
			return r.rewriteCueHeading(out, st, ln)
		default:
			return r.rewriteConceptHeading(out, st, ln)
		}

	case lineList:
		if st.last == lastHeading || st.last == lastText {
			out = append(out, spacerDouble)
		}
		st.last = lastList
		return append(out, "> > "+ln.text)

	default: // lineText
		if st.last == lastHeading || st.last == lastList {
			out = append(out, spacerDouble)
		}
		st.last = lastText
		return append(out, "> > "+ln.text)
	}
}

// rewriteCueHeading emits a level-2 (cue/reference) heading. A second
// level-2 heading inside the cue section is separated at full depth;
// every other entry path gets a single-depth spacer, identical to a
// fresh Main start.
func (r *quoteRewriter) rewriteCueHeading(out []string, st *rewriteState, ln line) []string {
	switch {
	case st.last == lastCallout:
		out = append(out, spacerSingle)
	case st.sub == subList:
		out = append(out, spacerDouble)
	default:
		out = append(out, spacerSingle)
	}
	st.sub = subList
	st.last = lastHeading
	return append(out, "> > ## "+ln.text)
}

// rewriteConceptHeading emits a level-3+ (concept) heading. The
// list-to-concept transition is marked with a single-depth spacer;
// consecutive concepts are separated at full depth.
func (r *quoteRewriter) rewriteConceptHeading(out []string, st *rewriteState, ln line) []string {
	switch {
	case st.sub == subList:
		out = append(out, spacerSingle)
	case st.last == lastCallout:
		out = append(out, spacerSingle)
	case st.sub == subConcept:
		out = append(out, spacerDouble)
	}
	st.sub = subConcept
	st.last = lastHeading
	return append(out, "> > ### "+ln.text)
}

// rewriteFlatLine handles one classified line inside the summary or
// ad-libitum body: flat, single-depth, list and prose only. A spacer
// separates the body from its marker and each list/prose transition;
// homogeneous runs stay contiguous.
func (r *quoteRewriter) rewriteFlatLine(out []string, st *rewriteState, ln line) []string {
	if ln.kind == lineBlank {
		return out
	}

	kind := lastText
	if ln.kind == lineList {
		kind = lastList
	} else if ln.kind == lineHeading {
		// No headings expected here; emit verbatim but remember the kind
		// so the following line is separated.
		kind = lastHeading
	}

	if needsFlatSpacer(st.last, kind) {
		out = append(out, spacerSingle)
	}
	st.last = kind

	if ln.kind == lineHeading {
		return append(out, "> "+strings.Repeat("#", ln.level)+" "+ln.text)
	}
	return append(out, "> "+ln.text)
}

// needsFlatSpacer implements the flat-body adjacency policy.
func needsFlatSpacer(prev, next lastKind) bool {
	if prev == lastCallout || prev == lastHeading {
		return true
	}
	return prev != next
}

// sectionFor maps a marker to the section it opens.
func sectionFor(mk markerKind) section {
	switch mk {
	case markerCornell:
		return sectionMain
	case markerSummary:
		return sectionSummary
	case markerAdLibitum:
		return sectionAdLibitum
	}
	return sectionNone
}

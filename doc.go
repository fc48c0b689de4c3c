// Package cornellfmt normalizes the structure of Cornell-note Markdown
// produced by generative text models.
//
// Generated notes are supposed to follow a fixed callout convention: a
// [!cornell] title callout holding a nested cue/notes body, a [!summary]
// callout, and a [!ad-libitum] callout. Models frequently emit doubled
// brackets, missing or excessive blockquote markers, and irregular blank
// lines. This package rewrites such documents into the canonical shape
// without touching content it cannot place in a section.
//
// # Quick Start
//
// Normalize a raw note and check the result:
//
//	fixed := cornellfmt.Normalize(raw)
//	report := cornellfmt.Validate(fixed)
//	if !report.Valid {
//	    for _, issue := range report.Issues {
//	        log.Println(issue)
//	    }
//	}
//
// Normalize always returns a string and never fails; unrecognized input
// degrades gracefully to pass-through.
//
// # Normalization Pipeline
//
// Normalization runs these stages in order:
//
//  1. Callout canonicalization ([[!cornell]] and friends -> [!cornell])
//  2. Structure rewriting (quote depth and spacer lines re-derived from
//     the semantic role of each line)
//  3. Section spacing (one blank line between sibling callouts)
//  4. Whitespace cleanup (trailing whitespace, blank-run compression)
//
// The rewriter is a single forward pass: spacing is synthesized from
// line-kind adjacency rather than copied from the input, which makes the
// whole transform idempotent.
//
// # Configuration
//
// Two historical rule sets exist. Both are expressed as one Policy:
//
//	svc := cornellfmt.New(cornellfmt.WithPolicy(cornellfmt.Policy{
//	    MaxConsecutiveBlankLines: 2,
//	    DistinctSummarySection:   true,
//	}))
//	fixed := svc.Normalize(raw)
//
// The default policy caps blank runs at one line and accepts a
// "[!cornell] ... Summary" marker as the summary section.
//
// # Parallel Processing
//
// The transform is pure and safe for concurrent use. For many notes at
// once, NormalizeAll fans the work out across a bounded set of workers:
//
//	fixed := svc.NormalizeAll(ctx, notes, 0) // 0 = auto worker count
package cornellfmt

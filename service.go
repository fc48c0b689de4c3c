package cornellfmt

// Service orchestrates the normalization pipeline.
type Service struct {
	policy        Policy
	canonicalizer calloutCanonicalizer
	rewriter      structureRewriter
	spacer        spacingNormalizer
	cleaner       whitespaceCleaner
	validator     structureValidator
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithPolicy).
func New(opts ...Option) *Service {
	s := &Service{policy: DefaultPolicy()}

	for _, opt := range opts {
		opt(s)
	}

	s.canonicalizer = markerCanonicalizer{}
	s.rewriter = &quoteRewriter{policy: s.policy}
	s.spacer = sectionSpacer{}
	s.cleaner = &blankLineCleaner{maxBlankRun: s.policy.MaxConsecutiveBlankLines}
	s.validator = markerValidator{}

	return s
}

// Policy returns the rule set the service was built with.
func (s *Service) Policy() Policy {
	return s.policy
}

// Normalize runs the rewriting stages in order: callout canonicalization,
// structure rewriting, section spacing, whitespace cleanup. It always
// returns a string and never fails; input without any recognizable marker
// passes through with only whitespace cleanup applied.
//
// All automaton state is local to the call, so a single Service is safe
// for concurrent use.
func (s *Service) Normalize(markdown string) string {
	content := normalizeLineEndings(markdown)
	content = s.canonicalizer.CanonicalizeCallouts(content)
	content = s.rewriter.RewriteStructure(content)
	content = s.spacer.NormalizeSpacing(content)
	content = s.cleaner.CleanWhitespace(content)
	return content
}

// Validate reports structural defects without mutating the document.
// Typically run on already-normalized text; callers decide whether to
// re-run Normalize or reject the document.
func (s *Service) Validate(markdown string) Report {
	return s.validator.ValidateStructure(markdown)
}

// defaultService backs the package-level functions. Stages hold no
// per-call state, so sharing it across goroutines is safe.
var defaultService = New()

// Normalize runs the full pipeline with the default policy.
func Normalize(markdown string) string {
	return defaultService.Normalize(markdown)
}

// Validate reports structural defects using the default policy.
func Validate(markdown string) Report {
	return defaultService.Validate(markdown)
}

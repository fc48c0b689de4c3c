package cornellfmt

import "fmt"

// Blank-run cap bounds for the cleanup stage.
const (
	MinBlankLineCap = 1
	MaxBlankLineCap = 2

	// DefaultBlankLineCap collapses every blank run to a single line.
	DefaultBlankLineCap = 1
)

// Policy selects between the historical normalization rule sets.
//
// The default policy uses the collapsed three-section model: a single
// blank-separator cap and a summary section recognized either by the
// [!summary] token or by a [!cornell] marker carrying a "Summary" title.
// The older four-state rule set (two-blank cap, summary recognized only
// by its own token) is reachable by setting both fields.
type Policy struct {
	// MaxConsecutiveBlankLines caps runs of blank or bare-quote lines
	// left by the cleanup stage. Must be 1 or 2. Zero means default.
	MaxConsecutiveBlankLines int

	// DistinctSummarySection restricts the summary section to the
	// [!summary] token. When false, a [!cornell] marker whose title
	// contains "summary" also opens the summary section.
	DistinctSummarySection bool
}

// DefaultPolicy returns the canonical rule set.
func DefaultPolicy() Policy {
	return Policy{MaxConsecutiveBlankLines: DefaultBlankLineCap}
}

// Validate checks that the policy is usable.
func (p Policy) Validate() error {
	if p.MaxConsecutiveBlankLines < MinBlankLineCap || p.MaxConsecutiveBlankLines > MaxBlankLineCap {
		return fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidBlankLineCap, p.MaxConsecutiveBlankLines, MinBlankLineCap, MaxBlankLineCap)
	}
	return nil
}

// withDefaults resolves zero fields to their defaults.
func (p Policy) withDefaults() Policy {
	if p.MaxConsecutiveBlankLines == 0 {
		p.MaxConsecutiveBlankLines = DefaultBlankLineCap
	}
	return p
}

// Report holds the outcome of a structural validation pass.
type Report struct {
	Valid  bool
	Issues []string
}

// Option configures a Service.
type Option func(*Service)

// WithPolicy sets the normalization policy.
// Panics if the policy is invalid (programmer error, similar to
// time.NewTicker); use Policy.Validate for the error form.
func WithPolicy(p Policy) Option {
	p = p.withDefaults()
	if err := p.Validate(); err != nil {
		panic("cornellfmt: " + err.Error())
	}
	return func(s *Service) {
		s.policy = p
	}
}

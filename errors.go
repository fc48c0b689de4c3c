package cornellfmt

import "errors"

// Sentinel errors for policy validation.
var (
	ErrInvalidBlankLineCap = errors.New("invalid blank line cap")
)

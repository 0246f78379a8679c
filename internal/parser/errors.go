package parser

import (
	"errors"
	"fmt"
)

// Configuration errors reported by Setup. Both indicate a structurally
// invalid parser configuration; callers should abort startup rather than
// parse with a degraded rule set.
var (
	// ErrMissingHeaderPattern indicates the header pattern is absent.
	ErrMissingHeaderPattern = errors.New("header pattern must be defined")
	// ErrMissingFooterPatterns indicates the footer patterns mapping is absent.
	ErrMissingFooterPatterns = errors.New("footer patterns must be defined as a mapping")
)

// PatternError reports a pattern string that failed to compile, identifying
// which field's pattern is at fault ("header" or a footer name).
type PatternError struct {
	Field   string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern for %q: %v", e.Field, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

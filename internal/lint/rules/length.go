package rules

import "fmt"

// HeaderLengthRule limits the length of the commit header line.
type HeaderLengthRule struct {
	maxLength int
}

func NewHeaderLengthRule(maxLength int) *HeaderLengthRule {
	if maxLength <= 0 {
		maxLength = 72
	}
	return &HeaderLengthRule{maxLength: maxLength}
}

func (r *HeaderLengthRule) Name() string {
	return "Header Length"
}

func (r *HeaderLengthRule) Severity() Severity {
	return SeverityWarning
}

func (r *HeaderLengthRule) Check(fields map[string]string) (*Result, error) {
	header := fields["header"]
	if len(header) <= r.maxLength {
		return pass(), nil
	}

	return &Result{
		Passed:     false,
		Errors:     []string{fmt.Sprintf("Header exceeds max length of %d chars (%d)", r.maxLength, len(header))},
		Suggestion: []string{"Keep the header concise and move details into the body"},
	}, nil
}

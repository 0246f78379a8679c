package rules

import (
	"fmt"
	"strings"
)

// TypeRule validates the commit type against the configured allow-list. A
// message whose header did not yield a type field fails outright.
type TypeRule struct {
	allowed []string
}

func NewTypeRule(allowed []string) *TypeRule {
	return &TypeRule{allowed: allowed}
}

func (r *TypeRule) Name() string {
	return "Commit Type"
}

func (r *TypeRule) Severity() Severity {
	return SeverityError
}

func (r *TypeRule) Check(fields map[string]string) (*Result, error) {
	ccType, ok := fields["type"]
	if !ok {
		return &Result{
			Passed: false,
			Errors: []string{fmt.Sprintf("Header %q does not follow the configured commit format", fields["header"])},
			Suggestion: []string{
				"Use format: type(scope?): description, e.g. `feat(auth): add login retry mechanism`",
			},
		}, nil
	}

	for _, t := range r.allowed {
		if t == ccType {
			return pass(), nil
		}
	}

	return &Result{
		Passed: false,
		Errors: []string{fmt.Sprintf("Invalid type %q: allowed types are %v", ccType, r.allowed)},
		Suggestion: []string{
			fmt.Sprintf("Use one of the allowed types: %s", strings.Join(r.allowed, ", ")),
		},
	}, nil
}

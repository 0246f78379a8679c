package rules

import (
	"fmt"

	"github.com/gobwas/glob"
)

// ScopeRule validates the commit scope against configured glob patterns
// ("api", "pkg/*", ...). The scope is optional unless required is set.
type ScopeRule struct {
	patterns []glob.Glob
	sources  []string
	required bool
}

func NewScopeRule(patterns []string, required bool) (*ScopeRule, error) {
	r := &ScopeRule{required: required}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid scope pattern %q: %w", p, err)
		}
		r.patterns = append(r.patterns, g)
		r.sources = append(r.sources, p)
	}
	return r, nil
}

func (r *ScopeRule) Name() string {
	return "Commit Scope"
}

func (r *ScopeRule) Severity() Severity {
	return SeverityError
}

func (r *ScopeRule) Check(fields map[string]string) (*Result, error) {
	scope, ok := fields["scope"]
	if !ok {
		if r.required {
			return &Result{
				Passed:     false,
				Errors:     []string{"Commit header has no scope"},
				Suggestion: []string{"Add a scope: type(scope): description"},
			}, nil
		}
		return pass(), nil
	}

	if len(r.patterns) == 0 {
		return pass(), nil
	}

	for _, g := range r.patterns {
		if g.Match(scope) {
			return pass(), nil
		}
	}

	return &Result{
		Passed:     false,
		Errors:     []string{fmt.Sprintf("Invalid scope %q: allowed scopes are %v", scope, r.sources)},
		Suggestion: []string{"Use a valid scope or omit it"},
	}, nil
}

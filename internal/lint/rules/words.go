package rules

import (
	"fmt"
	"strings"
)

// ForbiddenWordsRule rejects headers containing any of the configured words,
// case-insensitively.
type ForbiddenWordsRule struct {
	words []string
}

func NewForbiddenWordsRule(words []string) *ForbiddenWordsRule {
	return &ForbiddenWordsRule{words: words}
}

func (r *ForbiddenWordsRule) Name() string {
	return "Forbidden Words"
}

func (r *ForbiddenWordsRule) Severity() Severity {
	return SeverityWarning
}

func (r *ForbiddenWordsRule) Check(fields map[string]string) (*Result, error) {
	headerLower := strings.ToLower(fields["header"])
	for _, word := range r.words {
		if strings.Contains(headerLower, strings.ToLower(word)) {
			return &Result{
				Passed:     false,
				Errors:     []string{fmt.Sprintf("Header contains forbidden word: %s", word)},
				Suggestion: []string{"Remove or replace the forbidden word"},
			}, nil
		}
	}
	return pass(), nil
}

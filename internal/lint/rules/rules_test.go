package rules

import (
	"testing"
)

func TestTypeRule(t *testing.T) {
	t.Parallel()

	rule := NewTypeRule([]string{"feat", "fix"})

	tests := []struct {
		name   string
		fields map[string]string
		passed bool
	}{
		{"allowed type", map[string]string{"header": "fix: x", "type": "fix"}, true},
		{"disallowed type", map[string]string{"header": "chore: x", "type": "chore"}, false},
		{"unparsed header", map[string]string{"header": "no convention here"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := rule.Check(tt.fields)
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if result.Passed != tt.passed {
				t.Fatalf("Passed = %v, want %v (%v)", result.Passed, tt.passed, result.Errors)
			}
		})
	}
}

func TestScopeRule(t *testing.T) {
	t.Parallel()

	rule, err := NewScopeRule([]string{"api", "pkg/*"}, false)
	if err != nil {
		t.Fatalf("NewScopeRule: %v", err)
	}

	tests := []struct {
		name   string
		fields map[string]string
		passed bool
	}{
		{"exact scope", map[string]string{"scope": "api"}, true},
		{"glob scope", map[string]string{"scope": "pkg/parser"}, true},
		{"invalid scope", map[string]string{"scope": "frontend"}, false},
		{"optional scope absent", map[string]string{}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := rule.Check(tt.fields)
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if result.Passed != tt.passed {
				t.Fatalf("Passed = %v, want %v (%v)", result.Passed, tt.passed, result.Errors)
			}
		})
	}
}

func TestScopeRuleRequired(t *testing.T) {
	t.Parallel()

	rule, err := NewScopeRule([]string{"*"}, true)
	if err != nil {
		t.Fatalf("NewScopeRule: %v", err)
	}

	result, err := rule.Check(map[string]string{"header": "fix: x", "type": "fix"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if result.Passed {
		t.Fatal("missing scope must fail when required")
	}
}

func TestScopeRuleInvalidPattern(t *testing.T) {
	t.Parallel()

	if _, err := NewScopeRule([]string{"[unclosed"}, false); err == nil {
		t.Fatal("expected error for invalid glob pattern")
	}
}

func TestHeaderLengthRule(t *testing.T) {
	t.Parallel()

	rule := NewHeaderLengthRule(10)

	short, err := rule.Check(map[string]string{"header": "fix: x"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !short.Passed {
		t.Fatal("short header must pass")
	}

	long, err := rule.Check(map[string]string{"header": "fix: a very long header line"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if long.Passed {
		t.Fatal("long header must fail")
	}
}

func TestForbiddenWordsRule(t *testing.T) {
	t.Parallel()

	rule := NewForbiddenWordsRule([]string{"WIP"})

	clean, err := rule.Check(map[string]string{"header": "fix: finish feature"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !clean.Passed {
		t.Fatal("clean header must pass")
	}

	dirty, err := rule.Check(map[string]string{"header": "fix: wip on parser"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if dirty.Passed {
		t.Fatal("header with forbidden word must fail, case-insensitively")
	}
}

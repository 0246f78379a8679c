// Package lint applies configurable conformity rules to the field map
// extracted from a commit message.
package lint

import (
	"github.com/conventional-commitizen/conventional-commitizen/internal/config"
	"github.com/conventional-commitizen/conventional-commitizen/internal/lint/rules"
	"github.com/conventional-commitizen/conventional-commitizen/pkg/logger"
)

type Checker struct {
	rules  []rules.Rule
	logger *logger.Logger
}

type Report struct {
	Passed   bool
	Failures []RuleFailure
	Summary  string
}

type RuleFailure struct {
	RuleName   string
	Severity   rules.Severity
	Errors     []string
	Suggestion []string
}

func NewChecker(cfg config.LintConfig, log *logger.Logger) (*Checker, error) {
	rulesList, err := NewRuleBuilder().BuildRules(cfg)
	if err != nil {
		return nil, err
	}
	return &Checker{rules: rulesList, logger: log}, nil
}

// Check runs every configured rule over the parsed fields and collects
// failures into a report.
func (c *Checker) Check(fields map[string]string) *Report {
	var failures []RuleFailure

	for _, rule := range c.rules {
		c.logger.Debug("Checking rule", "rule", rule.Name())

		result, err := rule.Check(fields)
		if err != nil {
			c.logger.Error("Rule check failed", "rule", rule.Name(), "error", err)
			continue
		}

		if !result.Passed {
			failures = append(failures, RuleFailure{
				RuleName:   rule.Name(),
				Severity:   rule.Severity(),
				Errors:     result.Errors,
				Suggestion: result.Suggestion,
			})
		}
	}

	return &Report{
		Passed:   len(failures) == 0,
		Failures: failures,
		Summary:  GenerateSummary(failures),
	}
}

package lint

import (
	"github.com/conventional-commitizen/conventional-commitizen/internal/config"
	"github.com/conventional-commitizen/conventional-commitizen/internal/lint/rules"
)

// RuleBuilder handles building rules from configuration
type RuleBuilder struct{}

func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{}
}

// BuildRules creates rules based on the provided config. Rules without any
// configured input are left out.
func (rb *RuleBuilder) BuildRules(cfg config.LintConfig) ([]rules.Rule, error) {
	var rulesList []rules.Rule

	if len(cfg.Types) > 0 {
		rulesList = append(rulesList, rules.NewTypeRule(cfg.Types))
	}
	if len(cfg.Scopes) > 0 || cfg.RequireScope {
		scopeRule, err := rules.NewScopeRule(cfg.Scopes, cfg.RequireScope)
		if err != nil {
			return nil, err
		}
		rulesList = append(rulesList, scopeRule)
	}
	if cfg.MaxHeaderLength > 0 {
		rulesList = append(rulesList, rules.NewHeaderLengthRule(cfg.MaxHeaderLength))
	}
	if len(cfg.ForbiddenWords) > 0 {
		rulesList = append(rulesList, rules.NewForbiddenWordsRule(cfg.ForbiddenWords))
	}

	return rulesList, nil
}

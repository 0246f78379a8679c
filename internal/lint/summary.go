package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/conventional-commitizen/conventional-commitizen/internal/lint/rules"
)

// GenerateSummary creates a human-readable summary from rule failures,
// highest severity first.
func GenerateSummary(failures []RuleFailure) string {
	if len(failures) == 0 {
		return "All lint checks passed"
	}

	sorted := make([]RuleFailure, len(failures))
	copy(sorted, failures)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity > sorted[j].Severity
	})

	var b strings.Builder
	fmt.Fprintf(&b, "%d lint check(s) failed\n", len(sorted))

	for _, failure := range sorted {
		fmt.Fprintf(&b, "\n[%s] %s\n", severityLabel(failure.Severity), failure.RuleName)
		for i, e := range failure.Errors {
			fmt.Fprintf(&b, "  - %s\n", e)
			if i < len(failure.Suggestion) {
				fmt.Fprintf(&b, "    tip: %s\n", failure.Suggestion[i])
			}
		}
	}

	return b.String()
}

func severityLabel(s rules.Severity) string {
	if s == rules.SeverityError {
		return "error"
	}
	return "warning"
}

// Package rules contains the individual lint checks applied to the fields
// extracted from a commit message.
package rules

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// Rule checks one aspect of a parsed commit message. The fields map is the
// parser output: header, body, footer sections and capture-group values.
type Rule interface {
	Name() string
	Severity() Severity
	Check(fields map[string]string) (*Result, error)
}

type Result struct {
	Passed     bool
	Errors     []string
	Suggestion []string
}

func pass() *Result {
	return &Result{Passed: true}
}

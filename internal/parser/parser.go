// Package parser extracts structured fields from commit messages using
// configurable regular expression rules.
//
// A parser is configured with a header pattern and a set of named footer
// patterns. The header is the first line of the message and is mined for
// named capture groups. The remaining lines are split into a body and any
// number of footer sections; a footer begins at the first line matching its
// configured pattern and runs until another footer starts or the message
// ends. Assembled footers are matched against their pattern a second time so
// nested capture groups surface as fields of their own.
package parser

import (
	"github.com/conventional-commitizen/conventional-commitizen/internal/commit"
)

// Structural field names present in parse results independently of any
// configured capture group.
const (
	FieldHeader = "header"
	FieldBody   = "body"
)

// Config is the parser section of the application configuration, already
// resolved to plain strings by the config loader.
type Config struct {
	Header  string
	Footers map[string]string
}

// Parser turns a raw commit message into a flat map of named fields.
//
// Setup runs once after construction and validates and compiles the
// configuration. Parse may then be called concurrently from multiple
// goroutines; it never fails, an unmatched pattern simply yields fewer
// fields.
type Parser interface {
	Setup() error
	Parse(c commit.Commit) map[string]string
}

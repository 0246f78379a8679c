// Package commit holds the raw commit message value passed to parsers.
package commit

import "strings"

// Commit is a raw commit message, trimmed at its outer boundaries.
// Leading and trailing blank lines and spaces are removed once at
// construction; the internal structure of the message is untouched.
type Commit struct {
	Raw string
}

// New builds a Commit from caller input.
func New(raw string) Commit {
	return Commit{Raw: strings.TrimSpace(raw)}
}

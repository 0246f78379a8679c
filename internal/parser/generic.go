package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/conventional-commitizen/conventional-commitizen/internal/commit"
)

// footerRule is one compiled footer-start pattern. The pattern both detects
// the first line of the footer and, once the footer text is assembled,
// extracts any named capture groups from it.
type footerRule struct {
	name    string
	pattern *regexp.Regexp
}

// RuleSet holds the compiled patterns for one parser instance. It is
// immutable after Prepare and safe for concurrent use.
type RuleSet struct {
	header  *regexp.Regexp
	footers []footerRule
}

// Prepare validates the raw configuration and compiles every pattern once.
// Patterns are compiled in multiline mode so ^ and $ match at line
// boundaries within a multi-line subject.
//
// Footer rules are ordered by name, and that one order is used both for
// footer-start detection (first match wins on a line) and for the second
// extraction pass, so overlapping patterns and colliding group names resolve
// deterministically.
func Prepare(header string, footers map[string]string) (*RuleSet, error) {
	if header == "" {
		return nil, ErrMissingHeaderPattern
	}
	if footers == nil {
		return nil, ErrMissingFooterPatterns
	}

	headerRe, err := regexp.Compile("(?m)" + header)
	if err != nil {
		return nil, &PatternError{Field: FieldHeader, Pattern: header, Err: err}
	}

	names := make([]string, 0, len(footers))
	for name := range footers {
		names = append(names, name)
	}
	sort.Strings(names)

	rules := make([]footerRule, 0, len(names))
	for _, name := range names {
		re, err := regexp.Compile("(?m)" + footers[name])
		if err != nil {
			return nil, &PatternError{Field: name, Pattern: footers[name], Err: err}
		}
		rules = append(rules, footerRule{name: name, pattern: re})
	}

	return &RuleSet{header: headerRe, footers: rules}, nil
}

// GenericParser breaks a commit message down into the elements defined by
// its rule set: the header with its capture groups, the body, and any
// configured footer sections with theirs.
type GenericParser struct {
	cfg   Config
	rules *RuleSet
}

// NewGeneric returns an unconfigured generic parser. Setup must be called
// before Parse.
func NewGeneric(cfg Config) *GenericParser {
	return &GenericParser{cfg: cfg}
}

// Setup compiles the configured patterns into the parser's rule set.
func (p *GenericParser) Setup() error {
	rules, err := Prepare(p.cfg.Header, p.cfg.Footers)
	if err != nil {
		return err
	}
	p.rules = rules
	return nil
}

// Parse extracts fields from the commit message. Every value in the result
// is non-empty; a field whose computed value trims to the empty string is
// omitted entirely. Absence of a match is not an error.
func (p *GenericParser) Parse(c commit.Commit) map[string]string {
	fields := map[string]string{}

	raw := strings.TrimSpace(c.Raw)
	if raw == "" {
		return fields
	}

	lines := splitLines(raw)

	header := strings.TrimSpace(lines[0])
	fields[FieldHeader] = header
	if loc := matchStart(p.rules.header, header); loc != nil {
		mergeGroups(fields, p.rules.header, header, loc)
	}

	// Line classification: each line belongs to the current section until a
	// footer pattern recognizes it as the start of that footer. The matching
	// line itself opens the new section.
	section := FieldBody
	for _, line := range lines[1:] {
		for _, fr := range p.rules.footers {
			if matchStart(fr.pattern, line) != nil {
				section = fr.name
				break
			}
		}
		fields[section] += line
	}

	for name, value := range fields {
		fields[name] = strings.TrimSpace(value)
	}

	// Second pass: re-apply each footer pattern to its assembled text so
	// named groups inside footers become fields. Later writes win on group
	// name collisions.
	for _, fr := range p.rules.footers {
		text, ok := fields[fr.name]
		if !ok {
			continue
		}
		if loc := matchStart(fr.pattern, text); loc != nil {
			mergeGroups(fields, fr.pattern, text, loc)
		}
	}

	for name, value := range fields {
		if value == "" {
			delete(fields, name)
		}
	}

	return fields
}

// splitLines splits s into lines, keeping the terminator on each line. A
// trailing newline does not produce an empty final line.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// matchStart applies re to s anchored at position 0: the match must begin at
// the start of s but need not consume all of it. Returns the submatch index
// pairs, or nil if there is no match at the start.
func matchStart(re *regexp.Regexp, s string) []int {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil || loc[0] != 0 {
		return nil
	}
	return loc
}

// mergeGroups copies every named capture group that participated in the
// match into dst under its group name.
func mergeGroups(dst map[string]string, re *regexp.Regexp, s string, loc []int) {
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		if 2*i+1 >= len(loc) || loc[2*i] < 0 {
			continue
		}
		dst[name] = s[loc[2*i]:loc[2*i+1]]
	}
}

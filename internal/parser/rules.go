package parser

import (
	"regexp"
	"strings"

	"github.com/klauern/socials/internal/model"
)

// Captures maps a rule's field names to the text its pattern captured.
type Captures map[string]string

// Rule is one pattern in a platform's ordered rule table.
type Rule struct {
	// Name identifies the rule in diagnostics (e.g. "repo", "profile-by-id")
	Name string

	// Pattern is matched against the whole input URL
	Pattern *regexp.Regexp

	// Fields lists the named capture groups bound into Captures
	Fields []string

	// Exclude rejects a match after the fact, e.g. for reserved words.
	// A nil Exclude accepts every match.
	Exclude func(Captures) bool

	// Build turns the input URL and its captures into a record
	Build func(rawURL string, c Captures) model.Record
}

// Match returns the captures of r against rawURL, or false when the pattern
// does not match or the match is excluded.
func (r Rule) Match(rawURL string) (Captures, bool) {
	m := r.Pattern.FindStringSubmatch(rawURL)
	if m == nil {
		return nil, false
	}
	c := make(Captures, len(r.Fields))
	for _, field := range r.Fields {
		if idx := r.Pattern.SubexpIndex(field); idx >= 0 {
			c[field] = m[idx]
		}
	}
	if r.Exclude != nil && r.Exclude(c) {
		return nil, false
	}
	return c, true
}

// Rules is an ordered rule table. Earlier rules take precedence.
type Rules []Rule

// Find returns the first rule accepting rawURL along with its captures.
func (rs Rules) Find(rawURL string) (Rule, Captures, bool) {
	for _, r := range rs {
		if c, ok := r.Match(rawURL); ok {
			return r, c, true
		}
	}
	return Rule{}, nil, false
}

// Apply builds a record from the first rule accepting rawURL, or returns nil.
func (rs Rules) Apply(rawURL string) model.Record {
	r, c, ok := rs.Find(rawURL)
	if !ok {
		return nil
	}
	return r.Build(rawURL, c)
}

// WordSet is a case-insensitive set of words.
type WordSet map[string]struct{}

// NewWordSet creates a WordSet from the given words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Contains reports whether w is in the set, ignoring case.
func (s WordSet) Contains(w string) bool {
	_, ok := s[strings.ToLower(w)]
	return ok
}

// Reserved returns an Exclude func rejecting captures whose field is one of
// the reserved words.
func Reserved(field string, words WordSet) func(Captures) bool {
	return func(c Captures) bool {
		return words.Contains(c[field])
	}
}

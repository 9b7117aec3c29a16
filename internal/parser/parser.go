package parser

import "github.com/klauern/socials/internal/model"

// Parser defines the interface for platform-specific URL parsers
type Parser interface {
	// Platform returns the platform this parser handles
	Platform() model.Platform

	// Schemes returns the URL schemes this parser accepts
	Schemes() []string

	// HandlesHostname reports whether this parser serves the given
	// lower-cased hostname
	HandlesHostname(hostname string) bool

	// Parse converts rawURL into a typed record, or returns nil when the
	// URL does not match any of the parser's patterns
	Parse(rawURL string) model.Record
}

// WebSchemes is the scheme set shared by every hostname-routed parser.
var WebSchemes = []string{"http", "https"}

// Base holds the routing metadata and rule table shared by platform parsers.
// Platform packages embed it and override methods where routing differs.
type Base struct {
	platform model.Platform
	schemes  []string
	hosts    WordSet
	rules    Rules
}

// NewBase creates a Base serving the given schemes and exact hostnames.
func NewBase(platform model.Platform, schemes, hostnames []string, rules Rules) Base {
	return Base{
		platform: platform,
		schemes:  append([]string(nil), schemes...),
		hosts:    NewWordSet(hostnames...),
		rules:    rules,
	}
}

// Platform implements Parser.
func (b Base) Platform() model.Platform {
	return b.platform
}

// Schemes implements Parser.
func (b Base) Schemes() []string {
	return append([]string(nil), b.schemes...)
}

// HandlesHostname implements Parser.
func (b Base) HandlesHostname(hostname string) bool {
	return b.hosts.Contains(hostname)
}

// Parse implements Parser.
func (b Base) Parse(rawURL string) model.Record {
	return b.rules.Apply(rawURL)
}

// Rules returns the parser's rule table in evaluation order.
func (b Base) Rules() Rules {
	return b.rules
}

// RuleSource is implemented by parsers whose matching is driven by a rule
// table. It lets callers explain which rule accepted a URL.
type RuleSource interface {
	Rules() Rules
}

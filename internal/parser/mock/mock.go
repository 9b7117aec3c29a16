// Package mock provides mock implementations of parsers for testing.
package mock

import (
	"github.com/klauern/socials/internal/model"
)

// Record is a minimal record produced by the mock parser.
type Record struct {
	URL      string
	Kind     model.Platform
	ParentOf model.Record
}

func (r Record) RawURL() string               { return r.URL }
func (r Record) Platform() model.Platform     { return r.Kind }
func (r Record) EntityType() model.EntityType { return model.EntityProfile }
func (r Record) Fields() []model.Field        { return nil }
func (r Record) Parent() model.Record         { return r.ParentOf }

// Parser is a mock implementation of parser.Parser for testing.
type Parser struct {
	platform    model.Platform
	schemes     []string
	hostnames   map[string]bool
	accept      func(rawURL string) bool
	parseCalled int
}

// New creates a new mock parser. By default it serves http/https, no
// hostnames, and accepts nothing.
func New(platform model.Platform) *Parser {
	return &Parser{
		platform:  platform,
		schemes:   []string{"http", "https"},
		hostnames: map[string]bool{},
		accept:    func(string) bool { return false },
	}
}

// WithSchemes sets the schemes the parser claims.
func (p *Parser) WithSchemes(schemes ...string) *Parser {
	p.schemes = schemes
	return p
}

// WithHostnames sets the hostnames the parser serves.
func (p *Parser) WithHostnames(hostnames ...string) *Parser {
	for _, h := range hostnames {
		p.hostnames[h] = true
	}
	return p
}

// WithAccept configures which URLs Parse turns into records.
func (p *Parser) WithAccept(accept func(rawURL string) bool) *Parser {
	p.accept = accept
	return p
}

// AcceptAll configures Parse to succeed for every input.
func (p *Parser) AcceptAll() *Parser {
	return p.WithAccept(func(string) bool { return true })
}

// Platform implements parser.Parser.
func (p *Parser) Platform() model.Platform {
	return p.platform
}

// Schemes implements parser.Parser.
func (p *Parser) Schemes() []string {
	return append([]string(nil), p.schemes...)
}

// HandlesHostname implements parser.Parser.
func (p *Parser) HandlesHostname(hostname string) bool {
	return p.hostnames[hostname]
}

// Parse implements parser.Parser.
func (p *Parser) Parse(rawURL string) model.Record {
	p.parseCalled++
	if !p.accept(rawURL) {
		return nil
	}
	return Record{URL: rawURL, Kind: p.platform}
}

// ParseCalled returns the number of times Parse was called.
func (p *Parser) ParseCalled() int {
	return p.parseCalled
}

// Reset resets the call counters.
func (p *Parser) Reset() {
	p.parseCalled = 0
}

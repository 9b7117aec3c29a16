// Package registry routes URLs to platform parsers.
//
// A Registry holds parsers in registration order, which is also priority
// order: when two parsers could serve the same URL, the one registered first
// wins. Web URLs (http/https) route by hostname, other URLs by scheme, and
// scheme-less input (bare email addresses) by trying every parser in turn.
//
// Registration is append-only and not safe for concurrent use; once built, a
// Registry is read-only and may be shared between goroutines.
package registry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/klauern/socials/internal/logging"
	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser"
	"github.com/klauern/socials/internal/urlutil"
)

// Registry is an ordered collection of platform parsers.
type Registry struct {
	parsers  []parser.Parser
	warnings []string
}

// New creates a registry holding the given parsers, registered in order.
func New(parsers ...parser.Parser) *Registry {
	r := &Registry{}
	for _, p := range parsers {
		r.Register(p)
	}
	return r
}

// Register appends p to the registry. If p claims a non-web scheme already
// claimed by an earlier parser, a warning naming both is logged and
// recorded; only the first such conflict is reported. Registration always
// succeeds and the earlier parser keeps priority.
func (r *Registry) Register(p parser.Parser) {
	if existing, shared := r.firstOverlap(p); existing != nil {
		msg := fmt.Sprintf(
			"parser %q has overlapping schemes with %q (%s); %q takes priority",
			p.Platform(), existing.Platform(), strings.Join(shared, ", "), existing.Platform(),
		)
		r.warnings = append(r.warnings, msg)
		logging.Warn(msg,
			logging.Operation("register"),
			logging.Platform(p.Platform()),
			"existing", string(existing.Platform()),
		)
	}
	r.parsers = append(r.parsers, p)
	logging.Debug("registered parser",
		logging.Platform(p.Platform()),
		"schemes", strings.Join(p.Schemes(), ","),
	)
}

// firstOverlap returns the earliest registered parser sharing a non-web
// scheme with p, and the shared schemes in sorted order.
func (r *Registry) firstOverlap(p parser.Parser) (parser.Parser, []string) {
	claimed := nonWebSchemes(p)
	if len(claimed) == 0 {
		return nil, nil
	}
	for _, existing := range r.parsers {
		var shared []string
		for _, s := range nonWebSchemes(existing) {
			if slices.Contains(claimed, s) {
				shared = append(shared, s)
			}
		}
		if len(shared) > 0 {
			slices.Sort(shared)
			return existing, shared
		}
	}
	return nil, nil
}

func nonWebSchemes(p parser.Parser) []string {
	var schemes []string
	for _, s := range p.Schemes() {
		s = strings.ToLower(s)
		if !urlutil.IsWebScheme(s) {
			schemes = append(schemes, s)
		}
	}
	return schemes
}

// Warnings returns the registration warnings recorded so far.
func (r *Registry) Warnings() []string {
	return slices.Clone(r.warnings)
}

// Parsers returns the registered parsers in priority order.
func (r *Registry) Parsers() []parser.Parser {
	return slices.Clone(r.parsers)
}

// Len returns the number of registered parsers.
func (r *Registry) Len() int {
	return len(r.parsers)
}

// Platforms returns the platforms of the registered parsers in order.
func (r *Registry) Platforms() []model.Platform {
	platforms := make([]model.Platform, len(r.parsers))
	for i, p := range r.parsers {
		platforms[i] = p.Platform()
	}
	return platforms
}

// ParserForURL selects the parser for rawURL, or nil when none applies.
//
// For scheme-less input every parser is asked to parse the URL and the
// first that succeeds is returned, so the result is never a parser that
// would then reject it.
func (r *Registry) ParserForURL(rawURL string) parser.Parser {
	scheme := urlutil.ExtractScheme(rawURL)
	switch {
	case urlutil.IsWebScheme(scheme):
		return r.ParserForHostname(urlutil.ExtractHostname(rawURL))
	case scheme != "":
		return r.ParserForScheme(scheme)
	}
	for _, p := range r.parsers {
		if p.Parse(rawURL) != nil {
			return p
		}
	}
	return nil
}

// ParserForHostname returns the first parser serving hostname, or nil.
func (r *Registry) ParserForHostname(hostname string) parser.Parser {
	for _, p := range r.parsers {
		if p.HandlesHostname(hostname) {
			return p
		}
	}
	return nil
}

// ParserForScheme returns the first parser claiming scheme, or nil. Schemes
// compare case-insensitively, as they do for conflict detection.
func (r *Registry) ParserForScheme(scheme string) parser.Parser {
	for _, p := range r.parsers {
		if slices.ContainsFunc(p.Schemes(), func(s string) bool { return strings.EqualFold(s, scheme) }) {
			return p
		}
	}
	return nil
}

// ParserForPlatform returns the registered parser for platform, or nil.
func (r *Registry) ParserForPlatform(platform model.Platform) parser.Parser {
	for _, p := range r.parsers {
		if p.Platform() == platform {
			return p
		}
	}
	return nil
}

// Parse routes rawURL to its parser and returns the parsed record, or nil
// when no parser applies or the selected parser rejects the URL.
func (r *Registry) Parse(rawURL string) model.Record {
	p := r.ParserForURL(rawURL)
	if p == nil {
		logging.Debug("no parser for URL", logging.URL(rawURL))
		return nil
	}
	rec := p.Parse(rawURL)
	if rec == nil {
		logging.Debug("parser rejected URL", logging.URL(rawURL), logging.Platform(p.Platform()))
	}
	return rec
}

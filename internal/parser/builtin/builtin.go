// Package builtin provides factory functions for the built-in platform parsers.
package builtin

import (
	"fmt"

	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser"
	"github.com/klauern/socials/internal/parser/contact"
	"github.com/klauern/socials/internal/parser/facebook"
	"github.com/klauern/socials/internal/parser/github"
	"github.com/klauern/socials/internal/parser/instagram"
	"github.com/klauern/socials/internal/parser/linkedin"
	"github.com/klauern/socials/internal/parser/twitter"
	"github.com/klauern/socials/internal/parser/youtube"
)

// Factory creates a parser instance.
type Factory func() parser.Parser

// FactoryFor returns the Factory for a platform, or nil when the platform
// has no built-in parser.
func FactoryFor(platform model.Platform) Factory {
	switch platform {
	case model.GitHub:
		return func() parser.Parser { return github.New() }
	case model.Twitter:
		return func() parser.Parser { return twitter.New() }
	case model.LinkedIn:
		return func() parser.Parser { return linkedin.New() }
	case model.Facebook:
		return func() parser.Parser { return facebook.New() }
	case model.Instagram:
		return func() parser.Parser { return instagram.New() }
	case model.YouTube:
		return func() parser.Parser { return youtube.New() }
	case model.Email:
		return func() parser.Parser { return contact.NewEmail() }
	case model.Phone:
		return func() parser.Parser { return contact.NewPhone() }
	default:
		return nil
	}
}

// All returns one parser per built-in platform in canonical order.
func All() []parser.Parser {
	platforms := model.AllPlatforms()
	parsers := make([]parser.Parser, 0, len(platforms))
	for _, p := range platforms {
		parsers = append(parsers, FactoryFor(p)())
	}
	return parsers
}

// ForNames returns parsers for the named platforms, in the order given.
// Duplicate names yield a single parser. An unrecognized name fails with an
// error wrapping model.ErrUnknownPlatform.
func ForNames(names []string) ([]parser.Parser, error) {
	parsers := make([]parser.Parser, 0, len(names))
	seen := make(map[model.Platform]bool, len(names))
	for _, name := range names {
		platform, err := model.ParsePlatform(name)
		if err != nil {
			return nil, fmt.Errorf("no parser for %q: %w", name, err)
		}
		if seen[platform] {
			continue
		}
		seen[platform] = true
		parsers = append(parsers, FactoryFor(platform)())
	}
	return parsers, nil
}

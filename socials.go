// Package socials classifies and parses social-profile URLs into typed
// records.
//
// Supported platforms are GitHub, Twitter/X, LinkedIn, Facebook, Instagram,
// YouTube, email and phone. Parse and ParseAll use a shared extractor with
// every platform enabled; use NewExtractor to restrict platforms or enable
// strict mode.
//
//	rec := socials.Parse("https://github.com/lorey/socials")
//	if repo, ok := rec.(socials.GitHubRepo); ok {
//		fmt.Println(repo.Owner, repo.Repo)
//	}
package socials

import (
	"sync"

	"github.com/klauern/socials/internal/extractor"
	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser"
	"github.com/klauern/socials/internal/parser/builtin"
	"github.com/klauern/socials/internal/parser/contact"
	"github.com/klauern/socials/internal/parser/facebook"
	"github.com/klauern/socials/internal/parser/github"
	"github.com/klauern/socials/internal/parser/instagram"
	"github.com/klauern/socials/internal/parser/linkedin"
	"github.com/klauern/socials/internal/parser/twitter"
	"github.com/klauern/socials/internal/parser/youtube"
)

// Version is the library release.
const Version = "1.0.0"

type (
	Record     = model.Record
	Field      = model.Field
	Platform   = model.Platform
	EntityType = model.EntityType
	ParseError = model.ParseError
	Parser     = parser.Parser
	Extractor  = extractor.Extractor
	Extraction = extractor.Extraction
	Options    = extractor.Options
)

// Concrete record types.
type (
	GitHubProfile    = github.Profile
	GitHubRepo       = github.Repo
	TwitterProfile   = twitter.Profile
	LinkedInProfile  = linkedin.Profile
	LinkedInCompany  = linkedin.Company
	FacebookProfile  = facebook.Profile
	InstagramProfile = instagram.Profile
	YouTubeChannel   = youtube.Channel
	Email            = contact.Email
	Phone            = contact.Phone
)

// ErrUnknownPlatform is returned by NewExtractor for an unrecognized
// platform name.
var ErrUnknownPlatform = model.ErrUnknownPlatform

var defaultExtractor = sync.OnceValue(func() *Extractor {
	return extractor.NewWithParsers(Options{}, builtin.All()...)
})

// NewExtractor creates an extractor with the given options.
func NewExtractor(opts Options) (*Extractor, error) {
	return extractor.New(opts)
}

// Parse parses a single URL with every platform enabled. It returns nil
// when the URL is not recognized.
func Parse(rawURL string) Record {
	rec, _ := defaultExtractor().Parse(rawURL)
	return rec
}

// ParseAll parses urls with every platform enabled, skipping unrecognized
// ones.
func ParseAll(urls []string) *Extraction {
	x, _ := defaultExtractor().Extract(urls)
	return x
}

// Platforms returns every supported platform in priority order.
func Platforms() []Platform {
	return model.AllPlatforms()
}

// Root returns the top of r's hierarchy; records without a parent are
// their own root.
func Root(r Record) Record {
	return model.Root(r)
}

// Ancestors returns r's parents, nearest first.
func Ancestors(r Record) []Record {
	return model.Ancestors(r)
}

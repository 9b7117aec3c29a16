// Package twitter parses Twitter and X profile URLs.
package twitter

import (
	"regexp"

	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser"
)

var reserved = parser.NewWordSet(
	"home", "share", "privacy", "tos", "explore", "search", "settings",
	"messages", "i", "login", "compose",
)

var profilePattern = regexp.MustCompile(`^(?i:https?://(?:www\.|mobile\.)?(?:twitter|x)\.com)/@?(?P<username>[A-Za-z0-9_]{1,15})/?$`)

// Profile is a Twitter/X account.
type Profile struct {
	URL      string `json:"url" yaml:"url"`
	Username string `json:"username" yaml:"username"`
}

func (p Profile) RawURL() string               { return p.URL }
func (p Profile) Platform() model.Platform     { return model.Twitter }
func (p Profile) EntityType() model.EntityType { return model.EntityProfile }
func (p Profile) Parent() model.Record         { return nil }

func (p Profile) Fields() []model.Field {
	return model.Fields("username", p.Username)
}

// Parser parses twitter.com and x.com URLs.
type Parser struct {
	parser.Base
}

// New creates a Twitter/X parser. A leading "@" on the handle is dropped.
func New() *Parser {
	rules := parser.Rules{
		{
			Name:    "profile",
			Pattern: profilePattern,
			Fields:  []string{"username"},
			Exclude: parser.Reserved("username", reserved),
			Build: func(rawURL string, c parser.Captures) model.Record {
				return Profile{URL: rawURL, Username: c["username"]}
			},
		},
	}
	hosts := []string{
		"twitter.com", "www.twitter.com", "mobile.twitter.com",
		"x.com", "www.x.com", "mobile.x.com",
	}
	return &Parser{Base: parser.NewBase(model.Twitter, parser.WebSchemes, hosts, rules)}
}

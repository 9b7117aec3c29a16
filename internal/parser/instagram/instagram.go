// Package instagram parses Instagram profile URLs.
package instagram

import (
	"regexp"

	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser"
)

var reserved = parser.NewWordSet(
	"about", "accounts", "direct", "explore", "legal", "p", "privacy",
	"reels", "stories", "tv",
)

var profilePattern = regexp.MustCompile(`^(?i:https?://(?:www\.)?(?:instagram\.com|instagr\.am))/(?P<username>[A-Za-z0-9_.]{1,30})/?$`)

// Profile is an Instagram account.
type Profile struct {
	URL      string `json:"url" yaml:"url"`
	Username string `json:"username" yaml:"username"`
}

func (p Profile) RawURL() string               { return p.URL }
func (p Profile) Platform() model.Platform     { return model.Instagram }
func (p Profile) EntityType() model.EntityType { return model.EntityProfile }
func (p Profile) Parent() model.Record         { return nil }

func (p Profile) Fields() []model.Field {
	return model.Fields("username", p.Username)
}

// Parser parses instagram.com and instagr.am URLs.
type Parser struct {
	parser.Base
}

// New creates an Instagram parser.
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
	hosts := []string{"instagram.com", "www.instagram.com", "instagr.am", "www.instagr.am"}
	return &Parser{Base: parser.NewBase(model.Instagram, parser.WebSchemes, hosts, rules)}
}

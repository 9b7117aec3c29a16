// Package facebook parses Facebook profile URLs.
package facebook

import (
	"regexp"

	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser"
)

const host = `^(?i:https?://(?:www\.|m\.)?(?:facebook|fb)\.com)`

var (
	idPattern       = regexp.MustCompile(host + `/(?:profile\.php\?id=)?(?P<user_id>[0-9]+)$`)
	usernamePattern = regexp.MustCompile(host + `/(?P<username>[A-Za-z0-9_.-]+)/?$`)
	scriptPath      = regexp.MustCompile(`^[A-Za-z]+\.php`)
)

var reserved = parser.NewWordSet(
	"marketplace", "gaming", "watch", "me", "messages", "help", "search", "groups",
)

// Profile is a Facebook user or page. Exactly one of Username and UserID is set.
type Profile struct {
	URL      string `json:"url" yaml:"url"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	UserID   string `json:"user_id,omitempty" yaml:"user_id,omitempty"`
}

func (p Profile) RawURL() string               { return p.URL }
func (p Profile) Platform() model.Platform     { return model.Facebook }
func (p Profile) EntityType() model.EntityType { return model.EntityProfile }
func (p Profile) Parent() model.Record         { return nil }

func (p Profile) Fields() []model.Field {
	return model.Fields("username", p.Username, "user_id", p.UserID)
}

// Parser parses facebook.com and fb.com URLs.
type Parser struct {
	parser.Base
}

// New creates a Facebook parser. Numeric ids are tried before usernames.
func New() *Parser {
	rules := parser.Rules{
		{
			Name:    "profile-by-id",
			Pattern: idPattern,
			Fields:  []string{"user_id"},
			Build: func(rawURL string, c parser.Captures) model.Record {
				return Profile{URL: rawURL, UserID: c["user_id"]}
			},
		},
		{
			Name:    "profile",
			Pattern: usernamePattern,
			Fields:  []string{"username"},
			Exclude: func(c parser.Captures) bool {
				return scriptPath.MatchString(c["username"]) || reserved.Contains(c["username"])
			},
			Build: func(rawURL string, c parser.Captures) model.Record {
				return Profile{URL: rawURL, Username: c["username"]}
			},
		},
	}
	hosts := []string{"facebook.com", "www.facebook.com", "m.facebook.com", "fb.com", "www.fb.com"}
	return &Parser{Base: parser.NewBase(model.Facebook, parser.WebSchemes, hosts, rules)}
}

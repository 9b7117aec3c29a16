// Package github parses GitHub profile and repository URLs.
package github

import (
	"regexp"

	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser"
)

// Top-level github.com paths that are site features, not accounts.
var reserved = parser.NewWordSet(
	"about", "codespaces", "collections", "contact", "customer-stories",
	"enterprise", "events", "explore", "features", "issues", "login",
	"marketplace", "new", "notifications", "orgs", "pricing", "pulls",
	"readme", "search", "security", "settings", "sponsors", "team", "topics",
	"trending",
)

var (
	repoPattern    = regexp.MustCompile(`^(?i:https?://(?:www\.)?github\.com)/(?P<owner>[A-Za-z0-9_-]+)/(?P<repo>[A-Za-z0-9._-]+)/?$`)
	profilePattern = regexp.MustCompile(`^(?i:https?://(?:www\.)?github\.com)/(?P<username>[A-Za-z0-9_-]+)/?$`)
)

// Profile is a GitHub user or organization profile.
type Profile struct {
	URL      string `json:"url" yaml:"url"`
	Username string `json:"username" yaml:"username"`
}

func (p Profile) RawURL() string               { return p.URL }
func (p Profile) Platform() model.Platform     { return model.GitHub }
func (p Profile) EntityType() model.EntityType { return model.EntityProfile }
func (p Profile) Parent() model.Record         { return nil }

func (p Profile) Fields() []model.Field {
	return model.Fields("username", p.Username)
}

// Repo is a GitHub repository. Its parent is the owner's profile.
type Repo struct {
	URL   string `json:"url" yaml:"url"`
	Owner string `json:"owner" yaml:"owner"`
	Repo  string `json:"repo" yaml:"repo"`
}

func (r Repo) RawURL() string               { return r.URL }
func (r Repo) Platform() model.Platform     { return model.GitHub }
func (r Repo) EntityType() model.EntityType { return model.EntityRepo }

func (r Repo) Fields() []model.Field {
	return model.Fields("owner", r.Owner, "repo", r.Repo)
}

// Parent synthesizes the canonical profile URL of the repository owner.
func (r Repo) Parent() model.Record {
	return Profile{URL: "https://github.com/" + r.Owner, Username: r.Owner}
}

// Parser parses github.com URLs.
type Parser struct {
	parser.Base
}

// New creates a GitHub parser. Repository URLs are tried before profiles.
func New() *Parser {
	rules := parser.Rules{
		{
			Name:    "repo",
			Pattern: repoPattern,
			Fields:  []string{"owner", "repo"},
			Exclude: parser.Reserved("owner", reserved),
			Build: func(rawURL string, c parser.Captures) model.Record {
				return Repo{URL: rawURL, Owner: c["owner"], Repo: c["repo"]}
			},
		},
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
	return &Parser{
		Base: parser.NewBase(model.GitHub, parser.WebSchemes,
			[]string{"github.com", "www.github.com"}, rules),
	}
}

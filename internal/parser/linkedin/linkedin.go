// Package linkedin parses LinkedIn personal profile and company page URLs.
package linkedin

import (
	"regexp"
	"strings"

	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser"
)

const host = `^(?i:https?://(?:\w+\.)?linkedin\.com)`

var (
	companyPattern = regexp.MustCompile(host + `/(?:company|school)/(?P<company_id>[A-Za-z0-9_-]+)/?$`)
	profilePattern = regexp.MustCompile(host + `/in/(?P<username>[\w-]+)/?$`)
	publicPattern  = regexp.MustCompile(host + `/pub/(?P<username>[A-Za-z0-9_-]+)(?:/[A-Za-z0-9]+){3}/?$`)
)

func buildProfile(rawURL string, c parser.Captures) model.Record {
	return Profile{URL: rawURL, Username: c["username"]}
}

// Profile is a LinkedIn personal profile.
type Profile struct {
	URL      string `json:"url" yaml:"url"`
	Username string `json:"username" yaml:"username"`
}

func (p Profile) RawURL() string               { return p.URL }
func (p Profile) Platform() model.Platform     { return model.LinkedIn }
func (p Profile) EntityType() model.EntityType { return model.EntityProfile }
func (p Profile) Parent() model.Record         { return nil }

func (p Profile) Fields() []model.Field {
	return model.Fields("username", p.Username)
}

// Company is a LinkedIn company or school page.
type Company struct {
	URL       string `json:"url" yaml:"url"`
	CompanyID string `json:"company_id" yaml:"company_id"`
}

func (c Company) RawURL() string               { return c.URL }
func (c Company) Platform() model.Platform     { return model.LinkedIn }
func (c Company) EntityType() model.EntityType { return model.EntityCompany }
func (c Company) Parent() model.Record         { return nil }

func (c Company) Fields() []model.Field {
	return model.Fields("company_id", c.CompanyID)
}

// Parser parses linkedin.com URLs, including regional subdomains.
type Parser struct {
	parser.Base
}

// New creates a LinkedIn parser. Company and school pages are tried first,
// then /in/ profiles, then legacy /pub/ profiles.
func New() *Parser {
	rules := parser.Rules{
		{
			Name:    "company",
			Pattern: companyPattern,
			Fields:  []string{"company_id"},
			Build: func(rawURL string, c parser.Captures) model.Record {
				return Company{URL: rawURL, CompanyID: c["company_id"]}
			},
		},
		{Name: "profile", Pattern: profilePattern, Fields: []string{"username"}, Build: buildProfile},
		{Name: "profile-pub", Pattern: publicPattern, Fields: []string{"username"}, Build: buildProfile},
	}
	return &Parser{Base: parser.NewBase(model.LinkedIn, parser.WebSchemes, nil, rules)}
}

// HandlesHostname accepts linkedin.com and any of its subdomains.
func (p *Parser) HandlesHostname(hostname string) bool {
	return hostname == "linkedin.com" || strings.HasSuffix(hostname, ".linkedin.com")
}

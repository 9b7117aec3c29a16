// Package contact parses email addresses and telephone numbers.
//
// Neither parser serves a hostname; the registry routes to them by the
// "mailto" and "tel" schemes, or by trying every parser when the input has
// no scheme at all (bare email addresses).
package contact

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser"
)

const (
	mailtoPrefix = "mailto:"
	telPrefix    = "tel:"
)

var (
	emailPattern = regexp.MustCompile(`^(?P<email>[\w.+-]+@[\w.-]+\.[a-zA-Z]{2,})$`)
	phonePattern = regexp.MustCompile(`^(?P<number>[+\d\s().-]+)$`)
)

// Email is an email address, from a mailto: URL or a bare address.
type Email struct {
	URL   string `json:"url" yaml:"url"`
	Email string `json:"email" yaml:"email"`
}

func (e Email) RawURL() string               { return e.URL }
func (e Email) Platform() model.Platform     { return model.Email }
func (e Email) EntityType() model.EntityType { return model.EntityEmail }
func (e Email) Parent() model.Record         { return nil }

func (e Email) Fields() []model.Field {
	return model.Fields("email", e.Email)
}

// Phone is a telephone number from a tel: URL.
type Phone struct {
	URL    string `json:"url" yaml:"url"`
	Number string `json:"number" yaml:"number"`
}

func (p Phone) RawURL() string               { return p.URL }
func (p Phone) Platform() model.Platform     { return model.Phone }
func (p Phone) EntityType() model.EntityType { return model.EntityPhone }
func (p Phone) Parent() model.Record         { return nil }

func (p Phone) Fields() []model.Field {
	return model.Fields("number", p.Number)
}

// EmailParser parses mailto: URLs and bare email addresses.
type EmailParser struct {
	parser.Base
}

// NewEmail creates an email parser.
func NewEmail() *EmailParser {
	rules := parser.Rules{
		{
			Name:    "email",
			Pattern: emailPattern,
			Fields:  []string{"email"},
			Build: func(rawURL string, c parser.Captures) model.Record {
				return Email{URL: rawURL, Email: c["email"]}
			},
		},
	}
	return &EmailParser{Base: parser.NewBase(model.Email, []string{"mailto"}, nil, rules)}
}

// HandlesHostname always returns false; email routes by scheme.
func (p *EmailParser) HandlesHostname(string) bool {
	return false
}

// Parse strips an optional mailto: prefix and any query, percent-decodes the
// remainder and validates it as an address. The record keeps rawURL verbatim.
func (p *EmailParser) Parse(rawURL string) model.Record {
	address := rawURL
	if rest, ok := cutPrefixFold(rawURL, mailtoPrefix); ok {
		rest, _, _ = strings.Cut(rest, "?")
		address = unescape(rest)
	}
	rule, c, ok := p.Rules().Find(address)
	if !ok {
		return nil
	}
	return rule.Build(rawURL, c)
}

// PhoneParser parses tel: URLs.
type PhoneParser struct {
	parser.Base
}

// NewPhone creates a phone parser.
func NewPhone() *PhoneParser {
	rules := parser.Rules{
		{
			Name:    "phone",
			Pattern: phonePattern,
			Fields:  []string{"number"},
			Build: func(rawURL string, c parser.Captures) model.Record {
				return Phone{URL: rawURL, Number: c["number"]}
			},
		},
	}
	return &PhoneParser{Base: parser.NewBase(model.Phone, []string{"tel"}, nil, rules)}
}

// HandlesHostname always returns false; phone routes by scheme.
func (p *PhoneParser) HandlesHostname(string) bool {
	return false
}

// Parse requires a tel: prefix. The percent-decoded remainder may contain
// only digits, whitespace, and the characters + ( ) . -
func (p *PhoneParser) Parse(rawURL string) model.Record {
	rest, ok := cutPrefixFold(rawURL, telPrefix)
	if !ok {
		return nil
	}
	rule, c, ok := p.Rules().Find(unescape(rest))
	if !ok {
		return nil
	}
	return rule.Build(rawURL, c)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

// unescape percent-decodes s, returning it unchanged when it holds an
// invalid escape.
func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

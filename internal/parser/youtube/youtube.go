// Package youtube parses YouTube channel URLs.
package youtube

import (
	"regexp"

	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser"
)

const host = `^(?i:https?://(?:www\.|m\.)?youtube\.com)`

var (
	channelPattern = regexp.MustCompile(host + `/channel/(?P<channel_id>UC[A-Za-z0-9_-]+)/?$`)
	userPattern    = regexp.MustCompile(host + `/user/(?P<username>[A-Za-z0-9_.-]+)/?$`)
	customPattern  = regexp.MustCompile(host + `/c/(?P<custom_url>[A-Za-z0-9_.-]+)/?$`)
	handlePattern  = regexp.MustCompile(host + `/@(?P<custom_url>[A-Za-z0-9_.-]+)/?$`)
	directPattern  = regexp.MustCompile(host + `/(?P<custom_url>[A-Za-z0-9_.-]+)/?$`)
)

// Top-level youtube.com paths that are site features, not channels.
var reserved = parser.NewWordSet(
	"about", "account", "channel", "embed", "feed", "gaming", "hashtag",
	"live", "music", "playlist", "premium", "redirect", "results", "shorts",
	"trending", "upload", "watch", "c", "user",
)

// Channel is a YouTube channel. At most one of ChannelID, Username and
// CustomURL is set, depending on the URL form.
type Channel struct {
	URL       string `json:"url" yaml:"url"`
	ChannelID string `json:"channel_id,omitempty" yaml:"channel_id,omitempty"`
	Username  string `json:"username,omitempty" yaml:"username,omitempty"`
	CustomURL string `json:"custom_url,omitempty" yaml:"custom_url,omitempty"`
}

func (c Channel) RawURL() string               { return c.URL }
func (c Channel) Platform() model.Platform     { return model.YouTube }
func (c Channel) EntityType() model.EntityType { return model.EntityChannel }
func (c Channel) Parent() model.Record         { return nil }

func (c Channel) Fields() []model.Field {
	return model.Fields("channel_id", c.ChannelID, "username", c.Username, "custom_url", c.CustomURL)
}

func buildCustom(rawURL string, c parser.Captures) model.Record {
	return Channel{URL: rawURL, CustomURL: c["custom_url"]}
}

// Parser parses youtube.com URLs.
type Parser struct {
	parser.Base
}

// New creates a YouTube parser.
func New() *Parser {
	rules := parser.Rules{
		{
			Name:    "channel",
			Pattern: channelPattern,
			Fields:  []string{"channel_id"},
			Build: func(rawURL string, c parser.Captures) model.Record {
				return Channel{URL: rawURL, ChannelID: c["channel_id"]}
			},
		},
		{
			Name:    "user",
			Pattern: userPattern,
			Fields:  []string{"username"},
			Build: func(rawURL string, c parser.Captures) model.Record {
				return Channel{URL: rawURL, Username: c["username"]}
			},
		},
		{Name: "custom", Pattern: customPattern, Fields: []string{"custom_url"}, Build: buildCustom},
		{Name: "handle", Pattern: handlePattern, Fields: []string{"custom_url"}, Build: buildCustom},
		{
			Name:    "direct",
			Pattern: directPattern,
			Fields:  []string{"custom_url"},
			Exclude: parser.Reserved("custom_url", reserved),
			Build:   buildCustom,
		},
	}
	hosts := []string{"youtube.com", "www.youtube.com", "m.youtube.com"}
	return &Parser{Base: parser.NewBase(model.YouTube, parser.WebSchemes, hosts, rules)}
}

package registry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klauern/socials/internal/logging"
	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser/builtin"
	"github.com/klauern/socials/internal/parser/contact"
	"github.com/klauern/socials/internal/parser/github"
	"github.com/klauern/socials/internal/parser/mock"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := logging.Default()
	logging.SetDefault(logging.New(logging.Options{Level: logging.LevelWarn, Output: &buf}))
	t.Cleanup(func() { logging.SetDefault(previous) })
	return &buf
}

func TestRegistry_ParserForURL(t *testing.T) {
	r := New(builtin.All()...)

	tests := map[string]struct {
		url  string
		want model.Platform
	}{
		"github by host":       {url: "https://github.com/lorey", want: model.GitHub},
		"uppercase host":       {url: "https://WWW.GITHUB.COM/lorey", want: model.GitHub},
		"x by host":            {url: "https://x.com/lorey", want: model.Twitter},
		"linkedin subdomain":   {url: "https://de.linkedin.com/in/lorey", want: model.LinkedIn},
		"mailto by scheme":     {url: "mailto:test@example.com", want: model.Email},
		"uppercase mailto":     {url: "MAILTO:test@example.com", want: model.Email},
		"tel by scheme":        {url: "tel:+1234567890", want: model.Phone},
		"bare email tries all": {url: "test@example.com", want: model.Email},
		"host routed only":     {url: "https://github.com/user/repo/issues", want: model.GitHub},
		"unknown host":         {url: "https://example.com/lorey"},
		"unknown scheme":       {url: "ftp://github.com/lorey"},
		"no scheme no match":   {url: "not a url"},
		"empty":                {url: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := r.ParserForURL(tt.url)
			if tt.want == "" {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, tt.want, p.Platform())
		})
	}
}

func TestRegistry_Parse(t *testing.T) {
	r := New(builtin.All()...)

	rec := r.Parse("https://github.com/lorey/socials")
	require.NotNil(t, rec)
	assert.Equal(t, github.Repo{URL: "https://github.com/lorey/socials", Owner: "lorey", Repo: "socials"}, rec)

	rec = r.Parse("test@example.com")
	require.NotNil(t, rec)
	assert.Equal(t, contact.Email{URL: "test@example.com", Email: "test@example.com"}, rec)

	assert.Nil(t, r.Parse("https://github.com/user/repo/issues"), "routed parser rejects deep paths")
	assert.Nil(t, r.Parse("https://example.com/lorey"))
	assert.Nil(t, New().Parse("https://github.com/lorey"), "empty registry matches nothing")
}

func TestRegistry_FirstRegisteredWins(t *testing.T) {
	first := mock.New(model.GitHub).WithHostnames("example.com").AcceptAll()
	second := mock.New(model.Twitter).WithHostnames("example.com").AcceptAll()
	r := New(first, second)

	p := r.ParserForHostname("example.com")
	require.NotNil(t, p)
	assert.Equal(t, model.GitHub, p.Platform())

	rec := r.Parse("https://example.com/x")
	require.NotNil(t, rec)
	assert.Equal(t, model.GitHub, rec.Platform())
	assert.Equal(t, 0, second.ParseCalled())
}

func TestRegistry_SchemelessTriesInOrder(t *testing.T) {
	rejecting := mock.New(model.GitHub)
	accepting := mock.New(model.Email).WithSchemes("mailto").AcceptAll()
	r := New(rejecting, accepting)

	p := r.ParserForURL("someone@example.com")
	require.NotNil(t, p)
	assert.Equal(t, model.Email, p.Platform())
	assert.Equal(t, 1, rejecting.ParseCalled())
}

func TestRegistry_OverlappingSchemesWarn(t *testing.T) {
	logs := captureLogs(t)

	r := New(contact.NewEmail())
	assert.Empty(t, r.Warnings())

	r.Register(mock.New(model.Phone).WithSchemes("mailto"))

	warnings := r.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "overlapping schemes")
	assert.Contains(t, warnings[0], `"phone"`)
	assert.Contains(t, warnings[0], `"email"`)
	assert.Contains(t, warnings[0], "takes priority")
	assert.Contains(t, logs.String(), "overlapping schemes")
	assert.Contains(t, logs.String(), "level=WARN")

	p := r.ParserForScheme("mailto")
	require.NotNil(t, p)
	assert.Equal(t, model.Email, p.Platform())
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_SchemeCaseInsensitive(t *testing.T) {
	captureLogs(t)

	upper := mock.New(model.Email).WithSchemes("MAILTO").AcceptAll()
	r := New(upper)
	r.Register(mock.New(model.Phone).WithSchemes("mailto").AcceptAll())

	require.Len(t, r.Warnings(), 1, "differently cased schemes still overlap")

	p := r.ParserForScheme("mailto")
	require.NotNil(t, p)
	assert.Equal(t, model.Email, p.Platform())

	rec := r.Parse("MailTo:karl@example.com")
	require.NotNil(t, rec)
	assert.Equal(t, model.Email, rec.Platform())
	assert.Equal(t, 1, upper.ParseCalled())
}

func TestRegistry_WebSchemesNeverWarn(t *testing.T) {
	logs := captureLogs(t)

	r := New(builtin.All()...)
	r.Register(mock.New(model.GitHub).WithSchemes("HTTP", "https"))

	assert.Empty(t, r.Warnings())
	assert.Empty(t, logs.String())
}

func TestRegistry_OnlyFirstConflictReported(t *testing.T) {
	captureLogs(t)

	r := New(
		mock.New(model.Email).WithSchemes("mailto"),
		mock.New(model.Phone).WithSchemes("tel"),
	)
	r.Register(mock.New(model.GitHub).WithSchemes("tel", "mailto"))

	warnings := r.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"email"`)
	assert.NotContains(t, warnings[0], `"phone"`)
}

func TestRegistry_DefensiveCopies(t *testing.T) {
	r := New(builtin.All()...)

	parsers := r.Parsers()
	parsers[0] = nil
	assert.NotNil(t, r.Parsers()[0])

	assert.Equal(t, model.AllPlatforms(), r.Platforms())
}

func TestRegistry_ParserForPlatform(t *testing.T) {
	r := New(github.New(), contact.NewEmail())

	p := r.ParserForPlatform(model.Email)
	require.NotNil(t, p)
	assert.Equal(t, model.Email, p.Platform())
	assert.Nil(t, r.ParserForPlatform(model.Phone))
}

package socials_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klauern/socials"
)

func TestParse(t *testing.T) {
	rec := socials.Parse("https://github.com/lorey/socials")
	require.NotNil(t, rec)

	repo, ok := rec.(socials.GitHubRepo)
	require.True(t, ok, "expected GitHubRepo, got %T", rec)
	assert.Equal(t, "lorey", repo.Owner)
	assert.Equal(t, "socials", repo.Repo)

	assert.Equal(t, socials.GitHubProfile{URL: "https://github.com/lorey", Username: "lorey"}, socials.Root(rec))
	assert.Len(t, socials.Ancestors(rec), 1)

	assert.Nil(t, socials.Parse("https://unknown.example/x"))
}

func TestParseAll(t *testing.T) {
	x := socials.ParseAll([]string{
		"https://github.com/lorey",
		"https://twitter.com/karllorey",
		"mailto:a@b.com",
		"https://unknown.com/x",
	})
	require.NotNil(t, x)
	assert.Equal(t, 3, x.Len())
	assert.Equal(t,
		[]socials.Platform{"github", "twitter", "email"},
		x.Platforms(),
	)
}

func TestNewExtractor(t *testing.T) {
	e, err := socials.NewExtractor(socials.Options{Platforms: []string{"email"}, Strict: true})
	require.NoError(t, err)

	rec, err := e.Parse("mailto:a@b.com")
	require.NoError(t, err)
	assert.Equal(t, socials.Email{URL: "mailto:a@b.com", Email: "a@b.com"}, rec)

	_, err = e.Parse("https://github.com/lorey")
	var pe *socials.ParseError
	assert.True(t, errors.As(err, &pe))

	_, err = socials.NewExtractor(socials.Options{Platforms: []string{"myspace"}})
	assert.True(t, errors.Is(err, socials.ErrUnknownPlatform))
}

func TestPlatforms(t *testing.T) {
	assert.Len(t, socials.Platforms(), 8)
	assert.NotEmpty(t, socials.Version)
}

func ExampleParse() {
	rec := socials.Parse("https://www.linkedin.com/company/acme")
	fmt.Println(rec.Platform(), rec.EntityType())
	for _, f := range rec.Fields() {
		fmt.Printf("%s=%s\n", f.Name, f.Value)
	}
	// Output:
	// linkedin company
	// company_id=acme
}

func ExampleParseAll() {
	x := socials.ParseAll([]string{
		"https://github.com/lorey",
		"tel:+1 234 567",
		"https://example.com",
	})
	for _, p := range x.Platforms() {
		fmt.Println(p, len(x.ByPlatform()[p]))
	}
	// Output:
	// github 1
	// phone 1
}

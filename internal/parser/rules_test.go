package parser

import (
	"regexp"
	"testing"

	"github.com/klauern/socials/internal/model"
)

type testRecord struct {
	url  string
	name string
	rule string
}

func (r testRecord) RawURL() string               { return r.url }
func (r testRecord) Platform() model.Platform     { return model.GitHub }
func (r testRecord) EntityType() model.EntityType { return model.EntityProfile }
func (r testRecord) Fields() []model.Field        { return model.Fields("name", r.name) }
func (r testRecord) Parent() model.Record         { return nil }

func buildAs(rule string) func(string, Captures) model.Record {
	return func(rawURL string, c Captures) model.Record {
		return testRecord{url: rawURL, name: c["name"], rule: rule}
	}
}

func testRules() Rules {
	return Rules{
		{
			Name:    "nested",
			Pattern: regexp.MustCompile(`^https://example\.com/(?P<name>\w+)/(?P<child>\w+)$`),
			Fields:  []string{"name", "child"},
			Build:   buildAs("nested"),
		},
		{
			Name:    "single",
			Pattern: regexp.MustCompile(`^https://example\.com/(?P<name>\w+)/?$`),
			Fields:  []string{"name"},
			Exclude: Reserved("name", NewWordSet("about", "Login")),
			Build:   buildAs("single"),
		},
	}
}

func TestRulesApply(t *testing.T) {
	tests := map[string]struct {
		input    string
		wantNil  bool
		wantRule string
		wantName string
	}{
		"first rule wins":          {input: "https://example.com/octo/repo", wantRule: "nested", wantName: "octo"},
		"falls through":            {input: "https://example.com/octo", wantRule: "single", wantName: "octo"},
		"trailing slash":           {input: "https://example.com/octo/", wantRule: "single", wantName: "octo"},
		"reserved excluded":        {input: "https://example.com/about", wantNil: true},
		"reserved ignores case":    {input: "https://example.com/LOGIN", wantNil: true},
		"reserved is not a prefix": {input: "https://example.com/aboutme", wantRule: "single", wantName: "aboutme"},
		"no match":                 {input: "https://other.com/octo", wantNil: true},
	}

	rules := testRules()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := rules.Apply(tt.input)
			if tt.wantNil {
				if rec != nil {
					t.Fatalf("Apply(%q) = %+v, want nil", tt.input, rec)
				}
				return
			}
			got, ok := rec.(testRecord)
			if !ok {
				t.Fatalf("Apply(%q) = %T, want testRecord", tt.input, rec)
			}
			if got.rule != tt.wantRule || got.name != tt.wantName {
				t.Errorf("Apply(%q) = rule %q name %q, want rule %q name %q",
					tt.input, got.rule, got.name, tt.wantRule, tt.wantName)
			}
			if got.url != tt.input {
				t.Errorf("record URL = %q, want input verbatim", got.url)
			}
		})
	}
}

func TestRulesFind(t *testing.T) {
	rule, captures, ok := testRules().Find("https://example.com/octo/repo")
	if !ok {
		t.Fatal("Find() did not match")
	}
	if rule.Name != "nested" {
		t.Errorf("rule = %q, want nested", rule.Name)
	}
	if captures["child"] != "repo" {
		t.Errorf("captures[child] = %q, want repo", captures["child"])
	}

	if _, _, ok := testRules().Find("mailto:x@y.z"); ok {
		t.Error("Find() matched unrelated input")
	}
}

func TestWordSet(t *testing.T) {
	s := NewWordSet("GitHub.com", "www.github.com")
	for _, w := range []string{"github.com", "GITHUB.COM", "www.github.com"} {
		if !s.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if s.Contains("gist.github.com") {
		t.Error("Contains() matched a hostname not in the set")
	}
}

func TestBase(t *testing.T) {
	b := NewBase(model.GitHub, WebSchemes, []string{"example.com"}, testRules())

	if b.Platform() != model.GitHub {
		t.Errorf("Platform() = %q", b.Platform())
	}
	schemes := b.Schemes()
	schemes[0] = "mutated"
	if b.Schemes()[0] != "http" {
		t.Error("Schemes() should return a copy")
	}
	if !b.HandlesHostname("example.com") || b.HandlesHostname("evil.com") {
		t.Error("HandlesHostname() mismatch")
	}
	if b.Parse("https://example.com/octo") == nil {
		t.Error("Parse() should delegate to the rule table")
	}
	if len(b.Rules()) != 2 {
		t.Errorf("Rules() returned %d rules, want 2", len(b.Rules()))
	}
}

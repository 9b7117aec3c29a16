package export

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser/contact"
	"github.com/klauern/socials/internal/parser/github"
	"github.com/klauern/socials/internal/parser/twitter"
	"github.com/klauern/socials/internal/util"
)

var update = flag.Bool("update", false, "rewrite golden files")

func TestMain(m *testing.M) {
	flag.Parse()
	util.SetUpdateGolden(*update)
	os.Exit(m.Run())
}

func sampleRecords() []model.Record {
	return []model.Record{
		github.Repo{URL: "https://github.com/lorey/socials", Owner: "lorey", Repo: "socials"},
		twitter.Profile{URL: "https://twitter.com/karllorey", Username: "karllorey"},
		contact.Email{URL: "mailto:a@b.com", Email: "a@b.com"},
		github.Profile{URL: "https://github.com/lorey", Username: "lorey"},
	}
}

func TestFormat_IsValid(t *testing.T) {
	tests := map[string]struct {
		format Format
		want   bool
	}{
		"text":     {format: FormatText, want: true},
		"json":     {format: FormatJSON, want: true},
		"yaml":     {format: FormatYAML, want: true},
		"markdown": {format: FormatMarkdown, want: true},
		"empty":    {format: "", want: false},
		"csv":      {format: "csv", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.format.IsValid(); got != tt.want {
				t.Errorf("Format(%q).IsValid() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Format
		wantErr bool
	}{
		"json":        {input: "json", want: FormatJSON},
		"upper yaml":  {input: "YAML", want: FormatYAML},
		"md alias":    {input: "md", want: FormatMarkdown},
		"padded text": {input: " text ", want: FormatText},
		"invalid":     {input: "xml", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) expected error", tt.input)
				}
				if !strings.Contains(err.Error(), "text, json, yaml, markdown") {
					t.Errorf("error should list valid formats: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAllFormats(t *testing.T) {
	formats := AllFormats()
	if len(formats) != 4 {
		t.Fatalf("AllFormats() returned %d formats, want 4", len(formats))
	}
	for _, f := range formats {
		if !f.IsValid() {
			t.Errorf("AllFormats() returned invalid format %q", f)
		}
	}
}

func TestExporter_Golden(t *testing.T) {
	tests := map[string]Options{
		"tabbed.text":      {Format: FormatText},
		"hierarchy.json":   {Format: FormatJSON, Pretty: true, IncludeHierarchy: true},
		"grouped.markdown": {Format: FormatMarkdown},
	}

	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(opts).Export(sampleRecords(), &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			util.GoldenFile(t, "testdata", name, buf.String())
		})
	}
}

func TestExporter_ExportTextBare(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Format: FormatText, BareURLs: true, Platform: model.GitHub}
	if err := New(opts).Export(sampleRecords(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	want := "https://github.com/lorey/socials\nhttps://github.com/lorey\n"
	if buf.String() != want {
		t.Errorf("bare output = %q, want %q", buf.String(), want)
	}
}

func TestExporter_ExportJSON(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Format: FormatJSON, Pretty: true, IncludeHierarchy: true}
	if err := New(opts).Export(sampleRecords(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var result []exportRecord
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if len(result) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(result))
	}

	repo := result[0]
	if repo.Platform != "github" || repo.EntityType != "repo" {
		t.Errorf("unexpected discriminants: %+v", repo)
	}
	if repo.Fields["owner"] != "lorey" || repo.Fields["repo"] != "socials" {
		t.Errorf("Fields = %v", repo.Fields)
	}
	if repo.Parent != "https://github.com/lorey" || repo.Root != "https://github.com/lorey" {
		t.Errorf("hierarchy = parent %q root %q", repo.Parent, repo.Root)
	}
	if result[1].Parent != "" {
		t.Errorf("root records should have no parent, got %q", result[1].Parent)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("pretty JSON should be indented")
	}
}

func TestExporter_ExportJSON_Compact(t *testing.T) {
	var buf bytes.Buffer
	if err := New(Options{Format: FormatJSON}).Export(sampleRecords(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("compact JSON should be a single line, got %q", buf.String())
	}
	if strings.Contains(buf.String(), `"parent"`) {
		t.Error("hierarchy should be omitted unless requested")
	}
}

func TestExporter_ExportYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := New(Options{Format: FormatYAML, Pretty: true}).Export(sampleRecords(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var result []exportRecord
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse YAML output: %v", err)
	}
	if len(result) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(result))
	}
	if result[2].Fields["email"] != "a@b.com" {
		t.Errorf("email field = %q", result[2].Fields["email"])
	}
	if !strings.Contains(buf.String(), "entity_type: profile") {
		t.Errorf("YAML output missing entity_type: %s", buf.String())
	}
}

func TestExporter_ExportMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := New(Options{Format: FormatMarkdown}).Export(sampleRecords(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"# Extracted Profiles",
		"Total: 4 record(s)",
		"## github",
		"## twitter",
		"## email",
		"| repo | https://github.com/lorey/socials | owner=lorey, repo=socials |",
		"| profile | https://github.com/lorey | username=lorey |",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("markdown output missing %q:\n%s", want, output)
		}
	}
	if strings.Count(output, "## github") != 1 {
		t.Error("records of one platform should share a section")
	}
	if strings.Index(output, "## twitter") > strings.Index(output, "## email") {
		t.Error("sections should follow first appearance order")
	}
}

func TestExporter_EmptyRecords(t *testing.T) {
	for _, format := range AllFormats() {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(Options{Format: format}).Export(nil, &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}
		})
	}
}

func TestExporter_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := New(Options{Format: "csv"}).Export(sampleRecords(), &buf); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestEscapeCell(t *testing.T) {
	if got := escapeCell("a|b"); got != `a\|b` {
		t.Errorf("escapeCell() = %q", got)
	}
}

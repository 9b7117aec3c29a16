// Package export renders parsed records in the supported output formats.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/klauern/socials/internal/logging"
	"github.com/klauern/socials/internal/model"
)

// Format represents the output format for records.
type Format string

const (
	// FormatText writes one tab-separated line per record.
	FormatText Format = "text"
	// FormatJSON writes a JSON array.
	FormatJSON Format = "json"
	// FormatYAML writes a YAML sequence.
	FormatYAML Format = "yaml"
	// FormatMarkdown writes one table per platform.
	FormatMarkdown Format = "markdown"
)

// IsValid returns true if the format is recognized.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// AllFormats returns all supported output formats.
func AllFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}
}

// FormatNames returns the names of all supported formats.
func FormatNames() []string {
	formats := AllFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat parses a string into a Format. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "md" {
		return FormatMarkdown, nil
	}
	format := Format(name)
	if !format.IsValid() {
		return "", fmt.Errorf("unsupported format %q (valid: %s)", s, strings.Join(FormatNames(), ", "))
	}
	return format, nil
}

// Options configures export behavior.
type Options struct {
	// Format specifies the output format.
	Format Format
	// Pretty enables indentation for JSON and YAML.
	Pretty bool
	// BareURLs makes text output print only the URL of each record.
	BareURLs bool
	// IncludeHierarchy adds the parent and root URLs of child records.
	IncludeHierarchy bool
	// Platform filters records by platform (empty means all).
	Platform model.Platform
}

// DefaultOptions returns the default export options.
func DefaultOptions() Options {
	return Options{
		Format: FormatText,
		Pretty: true,
	}
}

// Exporter writes records in a configured format.
type Exporter struct {
	opts Options
}

// New creates a new Exporter with the given options.
func New(opts Options) *Exporter {
	return &Exporter{opts: opts}
}

// Export writes records to w in the configured format.
func (e *Exporter) Export(records []model.Record, w io.Writer) error {
	defer logging.Timer("export")()

	filtered := e.filterByPlatform(records)
	if len(filtered) != len(records) {
		logging.Debug("records filtered by platform",
			logging.Count(len(filtered)),
			slog.Int("original", len(records)),
			logging.Platform(e.opts.Platform),
		)
	}

	var err error
	switch e.opts.Format {
	case FormatText:
		err = e.exportText(filtered, w)
	case FormatJSON:
		err = e.exportJSON(filtered, w)
	case FormatYAML:
		err = e.exportYAML(filtered, w)
	case FormatMarkdown:
		err = e.exportMarkdown(filtered, w)
	default:
		err = fmt.Errorf("unsupported format: %s", e.opts.Format)
	}

	if err != nil {
		logging.Error("export failed", logging.Format(string(e.opts.Format)), logging.Err(err))
		return err
	}

	logging.Info("export completed", logging.Format(string(e.opts.Format)), logging.Count(len(filtered)))
	return nil
}

func (e *Exporter) filterByPlatform(records []model.Record) []model.Record {
	if e.opts.Platform == "" {
		return records
	}

	var filtered []model.Record
	for _, r := range records {
		if r.Platform() == e.opts.Platform {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// exportRecord is the serialized form of a record.
type exportRecord struct {
	URL        string            `json:"url" yaml:"url"`
	Platform   string            `json:"platform" yaml:"platform"`
	EntityType string            `json:"entity_type" yaml:"entity_type"`
	Fields     map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
	Parent     string            `json:"parent,omitempty" yaml:"parent,omitempty"`
	Root       string            `json:"root,omitempty" yaml:"root,omitempty"`
}

func (e *Exporter) toExportRecord(r model.Record) exportRecord {
	er := exportRecord{
		URL:        r.RawURL(),
		Platform:   string(r.Platform()),
		EntityType: string(r.EntityType()),
	}
	if fields := r.Fields(); len(fields) > 0 {
		er.Fields = make(map[string]string, len(fields))
		for _, f := range fields {
			er.Fields[f.Name] = f.Value
		}
	}
	if e.opts.IncludeHierarchy {
		if p := r.Parent(); p != nil {
			er.Parent = p.RawURL()
			er.Root = model.Root(r).RawURL()
		}
	}
	return er
}

func (e *Exporter) toExportRecords(records []model.Record) []exportRecord {
	exported := make([]exportRecord, len(records))
	for i, r := range records {
		exported[i] = e.toExportRecord(r)
	}
	return exported
}

func (e *Exporter) exportText(records []model.Record, w io.Writer) error {
	var sb strings.Builder
	for _, r := range records {
		if e.opts.BareURLs {
			fmt.Fprintln(&sb, r.RawURL())
		} else {
			fmt.Fprintf(&sb, "%s\t%s\n", r.Platform(), r.RawURL())
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (e *Exporter) exportJSON(records []model.Record, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if e.opts.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(e.toExportRecords(records))
}

func (e *Exporter) exportYAML(records []model.Record, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	if e.opts.Pretty {
		encoder.SetIndent(2)
	}
	if err := encoder.Encode(e.toExportRecords(records)); err != nil {
		_ = encoder.Close()
		return err
	}
	return encoder.Close()
}

func (e *Exporter) exportMarkdown(records []model.Record, w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("# Extracted Profiles\n\n")
	fmt.Fprintf(&sb, "Total: %d record(s)\n", len(records))

	var order []model.Platform
	groups := make(map[model.Platform][]model.Record)
	for _, r := range records {
		if _, ok := groups[r.Platform()]; !ok {
			order = append(order, r.Platform())
		}
		groups[r.Platform()] = append(groups[r.Platform()], r)
	}

	for _, p := range order {
		fmt.Fprintf(&sb, "\n## %s\n\n", p)
		sb.WriteString("| Type | URL | Fields |\n")
		sb.WriteString("|------|-----|--------|\n")
		for _, r := range groups[p] {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", r.EntityType(), escapeCell(r.RawURL()), escapeCell(formatFields(r.Fields())))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatFields(fields []model.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name + "=" + f.Value
	}
	return strings.Join(parts, ", ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Package extractor parses batches of URLs into typed records.
package extractor

import (
	"fmt"

	"github.com/klauern/socials/internal/logging"
	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser"
	"github.com/klauern/socials/internal/parser/builtin"
	"github.com/klauern/socials/internal/registry"
)

// Options configures an Extractor.
type Options struct {
	// Platforms restricts extraction to the named platforms, registered in
	// the given order. A nil slice enables every built-in platform in
	// canonical order; a non-nil empty slice enables none.
	Platforms []string

	// Strict turns unrecognized URLs into *model.ParseError.
	Strict bool

	// Observer, if set, is called after every parse attempt with the input
	// and its record (nil when unrecognized).
	Observer func(rawURL string, rec model.Record)
}

// Extractor parses URLs through a registry of platform parsers. It is
// immutable after New and safe for concurrent use.
type Extractor struct {
	registry *registry.Registry
	strict   bool
	observer func(string, model.Record)
}

// New creates an Extractor. An unrecognized platform name fails with an
// error wrapping model.ErrUnknownPlatform.
func New(opts Options) (*Extractor, error) {
	var parsers []parser.Parser
	if opts.Platforms == nil {
		parsers = builtin.All()
	} else {
		var err error
		parsers, err = builtin.ForNames(opts.Platforms)
		if err != nil {
			return nil, fmt.Errorf("invalid extractor options: %w", err)
		}
	}
	return NewWithParsers(opts, parsers...), nil
}

// NewWithParsers creates an Extractor over an explicit parser list,
// ignoring opts.Platforms.
func NewWithParsers(opts Options, parsers ...parser.Parser) *Extractor {
	return &Extractor{
		registry: registry.New(parsers...),
		strict:   opts.Strict,
		observer: opts.Observer,
	}
}

// Registry returns the registry backing the extractor.
func (e *Extractor) Registry() *registry.Registry {
	return e.registry
}

// Platforms returns the enabled platforms in priority order.
func (e *Extractor) Platforms() []model.Platform {
	return e.registry.Platforms()
}

// Strict reports whether unrecognized URLs are errors.
func (e *Extractor) Strict() bool {
	return e.strict
}

// Parse parses a single URL. An unrecognized URL yields (nil, nil), or a
// *model.ParseError in strict mode.
func (e *Extractor) Parse(rawURL string) (model.Record, error) {
	rec := e.registry.Parse(rawURL)
	if e.observer != nil {
		e.observer(rawURL, rec)
	}
	if rec == nil {
		if e.strict {
			return nil, &model.ParseError{URL: rawURL}
		}
		return nil, nil
	}
	logging.Debug("parsed URL",
		logging.URL(rawURL),
		logging.Platform(rec.Platform()),
		logging.EntityType(rec.EntityType()),
	)
	return rec, nil
}

// Extract parses urls in order, keeping recognized records. In strict mode
// the first unrecognized URL aborts the batch and no partial result is
// returned.
func (e *Extractor) Extract(urls []string) (*Extraction, error) {
	defer logging.Timer("extract")()

	records := make([]model.Record, 0, len(urls))
	for _, u := range urls {
		rec, err := e.Parse(u)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			records = append(records, rec)
		}
	}
	logging.Debug("extraction finished", logging.Count(len(records)), "inputs", len(urls))
	return NewExtraction(records), nil
}

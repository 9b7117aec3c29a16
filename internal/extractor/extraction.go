package extractor

import (
	"slices"

	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/parser/contact"
)

// Extraction is the ordered result of an extraction run.
type Extraction struct {
	records []model.Record
}

// NewExtraction wraps records, which the Extraction then owns.
func NewExtraction(records []model.Record) *Extraction {
	return &Extraction{records: records}
}

// All returns a copy of every record in input order.
func (x *Extraction) All() []model.Record {
	return slices.Clone(x.records)
}

// Len returns the number of records.
func (x *Extraction) Len() int {
	return len(x.records)
}

// ByPlatform groups records by platform, preserving input order in each group.
func (x *Extraction) ByPlatform() map[model.Platform][]model.Record {
	grouped := make(map[model.Platform][]model.Record)
	for _, r := range x.records {
		grouped[r.Platform()] = append(grouped[r.Platform()], r)
	}
	return grouped
}

// ByType groups records by entity type, preserving input order in each group.
func (x *Extraction) ByType() map[model.EntityType][]model.Record {
	grouped := make(map[model.EntityType][]model.Record)
	for _, r := range x.records {
		grouped[r.EntityType()] = append(grouped[r.EntityType()], r)
	}
	return grouped
}

// Platforms returns the distinct platforms in order of first appearance.
func (x *Extraction) Platforms() []model.Platform {
	var platforms []model.Platform
	for _, r := range x.records {
		if !slices.Contains(platforms, r.Platform()) {
			platforms = append(platforms, r.Platform())
		}
	}
	return platforms
}

// Types returns the distinct entity types in order of first appearance.
func (x *Extraction) Types() []model.EntityType {
	var types []model.EntityType
	for _, r := range x.records {
		if !slices.Contains(types, r.EntityType()) {
			types = append(types, r.EntityType())
		}
	}
	return types
}

// Unique returns a new Extraction without records whose URL repeats an
// earlier one.
func (x *Extraction) Unique() *Extraction {
	return NewExtraction(model.Unique(x.records))
}

// MatchesPerPlatform returns URL strings grouped by platform name.
//
// Deprecated: use ByPlatform, which returns typed records.
func (x *Extraction) MatchesPerPlatform() map[string][]string {
	matches := make(map[string][]string)
	for _, r := range x.records {
		name := string(r.Platform())
		matches[name] = append(matches[name], compatString(r))
	}
	return matches
}

// MatchesForPlatform returns the URL strings of one platform.
//
// Deprecated: use ByPlatform()[platform].
func (x *Extraction) MatchesForPlatform(platform string) []string {
	var matches []string
	for _, r := range x.records {
		if string(r.Platform()) == platform {
			matches = append(matches, compatString(r))
		}
	}
	return matches
}

// compatString is the legacy string form of a record: the bare address for
// email, the input URL otherwise.
func compatString(r model.Record) string {
	if e, ok := r.(contact.Email); ok {
		return e.Email
	}
	return r.RawURL()
}

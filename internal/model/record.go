package model

// Record is the common interface of every parsed URL.
//
// Records are values: identity is the original URL string alone, so two
// records parsed from the same input are equal regardless of their fields.
// Use Key, Equal and Unique rather than comparing records with ==.
type Record interface {
	// RawURL returns the original input string, verbatim.
	RawURL() string
	// Platform returns the fixed platform discriminant.
	Platform() Platform
	// EntityType returns the fixed entity type discriminant.
	EntityType() EntityType
	// Fields returns the identifying fields that are set, in declaration order.
	Fields() []Field
	// Parent returns the record one level up, or nil for roots.
	Parent() Record
}

// Field is a single named identifying value of a record.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Key returns the identity key of a record.
func Key(r Record) string {
	if r == nil {
		return ""
	}
	return r.RawURL()
}

// Equal reports whether two records share the same identity.
func Equal(a, b Record) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.RawURL() == b.RawURL()
}

// Unique drops records whose identity was already seen, keeping first occurrences.
func Unique(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	result := make([]Record, 0, len(records))
	for _, r := range records {
		k := Key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, r)
	}
	return result
}

// Root follows parents until a record without one is reached.
func Root(r Record) Record {
	if r == nil {
		return nil
	}
	for {
		p := r.Parent()
		if p == nil {
			return r
		}
		r = p
	}
}

// Ancestors returns the chain from the immediate parent up to the root,
// parent first. Roots have no ancestors.
func Ancestors(r Record) []Record {
	if r == nil {
		return nil
	}
	var chain []Record
	for p := r.Parent(); p != nil; p = p.Parent() {
		chain = append(chain, p)
	}
	return chain
}

// FieldValue returns the value of the named field, or "" when unset.
func FieldValue(r Record, name string) string {
	for _, f := range r.Fields() {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Identifier returns the first identifying field value of a record.
func Identifier(r Record) string {
	fields := r.Fields()
	if len(fields) == 0 {
		return ""
	}
	return fields[0].Value
}

// Fields builds a field list, skipping empty values.
func Fields(pairs ...string) []Field {
	fields := make([]Field, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		fields = append(fields, Field{Name: pairs[i], Value: pairs[i+1]})
	}
	return fields
}

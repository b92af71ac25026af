// Package colgroup implements the column-group folding engine: a declarative
// rule set that recognizes families of mechanically-related flat columns
// (MinDam/MaxDam, Skill1..Skill8, ...) and packs them into nested TOML
// values, plus the lossless reverse transform.
package colgroup

import (
	"strings"

	"github.com/d2modkit/d2txt/pkg/errors"
)

// Schema describes how the member columns of a group fold into one nested
// value. It is a closed sum of three shapes:
//
//   - Leaf: a single concrete column name
//   - Map: an ordered alias-to-schema mapping, folded to an inline table
//   - Seq: an ordered list of schemas, folded to an array
type Schema interface {
	isSchema()
}

// Leaf is a schema holding a single column name.
type Leaf string

func (Leaf) isSchema() {}

// Entry is one key of a Map schema.
type Entry struct {
	Key    string
	Schema Schema
}

// Map is an ordered alias-to-schema mapping. Ordering matters for the
// serialized inline-table form, so it is a slice rather than a Go map.
type Map []Entry

func (Map) isSchema() {}

// Seq is an ordered list of schemas folded to an array.
type Seq []Schema

func (Seq) isSchema() {}

// Rule pairs a group alias with the schema of its member columns. Rules are
// immutable after construction.
type Rule struct {
	Alias  string
	Schema Schema
}

// Members returns the rule's member column names in schema order.
func (r Rule) Members() []string {
	return memberNames(r.Schema)
}

// memberNames recursively collects the leaf column names of a schema.
func memberNames(schema Schema) []string {
	var names []string
	walkLeaves(schema, func(leaf Leaf) {
		names = append(names, string(leaf))
	})
	return names
}

func walkLeaves(schema Schema, visit func(Leaf)) {
	switch s := schema.(type) {
	case Leaf:
		visit(s)
	case Map:
		for _, entry := range s {
			walkLeaves(entry.Schema, visit)
		}
	case Seq:
		for _, elem := range s {
			walkLeaves(elem, visit)
		}
	}
}

// formatSchema returns a copy of schema with every "{}" placeholder in keys
// and column names replaced by param.
func formatSchema(schema Schema, param string) Schema {
	switch s := schema.(type) {
	case Leaf:
		return Leaf(strings.ReplaceAll(string(s), "{}", param))
	case Map:
		formatted := make(Map, len(s))
		for i, entry := range s {
			formatted[i] = Entry{
				Key:    strings.ReplaceAll(entry.Key, "{}", param),
				Schema: formatSchema(entry.Schema, param),
			}
		}
		return formatted
	case Seq:
		formatted := make(Seq, len(s))
		for i, elem := range s {
			formatted[i] = formatSchema(elem, param)
		}
		return formatted
	}
	return schema
}

// ParseSchema converts a decoded TOML value (as produced by a column_groups
// section) back into a Schema. Accepted shapes are strings, arrays and
// tables, mirroring the serialized schema literal.
func ParseSchema(value interface{}) (Schema, error) {
	switch v := value.(type) {
	case string:
		return Leaf(v), nil
	case []interface{}:
		seq := make(Seq, len(v))
		for i, elem := range v {
			parsed, err := ParseSchema(elem)
			if err != nil {
				return nil, err
			}
			seq[i] = parsed
		}
		return seq, nil
	case map[string]interface{}:
		// Key order inside a decoded table is not preserved, but unpacking
		// matches keys by name, so order is irrelevant on this path.
		m := make(Map, 0, len(v))
		for key, elem := range v {
			parsed, err := ParseSchema(elem)
			if err != nil {
				return nil, err
			}
			m = append(m, Entry{Key: key, Schema: parsed})
		}
		return m, nil
	}
	return nil, errors.Newf(errors.ErrorTypeData, "invalid column group schema value %T", value)
}

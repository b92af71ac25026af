package colgroup

import (
	"github.com/d2modkit/d2txt/pkg/errors"
)

// Unpack is the structural inverse of Pack: it walks a decoded nested value
// in lockstep with its schema and calls emit once per leaf with the flat
// column name and its value. The value's shape must agree with the schema;
// a wrong key set or excess arity is a hard error that aborts the import.
func Unpack(schema Schema, value interface{}, emit func(column string, value interface{}) error) error {
	switch v := value.(type) {
	case map[string]interface{}:
		m, ok := schema.(Map)
		if !ok {
			return errors.New(errors.ErrorTypeData, "column group value is a table but its schema is not")
		}
		for key, child := range v {
			entry, ok := findEntry(m, key)
			if !ok {
				return errors.Newf(errors.ErrorTypeData, "unknown key %q in column group value", key)
			}
			if err := Unpack(entry.Schema, child, emit); err != nil {
				return err
			}
		}
		return nil

	case []interface{}:
		seq, ok := schema.(Seq)
		if !ok {
			return errors.New(errors.ErrorTypeData, "column group value is an array but its schema is not")
		}
		if len(v) > len(seq) {
			return errors.Newf(errors.ErrorTypeData,
				"column group value has %d elements, schema allows %d", len(v), len(seq))
		}
		for i, child := range v {
			if err := Unpack(seq[i], child, emit); err != nil {
				return err
			}
		}
		return nil

	default:
		leaf, ok := schema.(Leaf)
		if !ok {
			return errors.Newf(errors.ErrorTypeData,
				"column group value %v is a scalar but its schema is nested", value)
		}
		return emit(string(leaf), value)
	}
}

func findEntry(m Map, key string) (Entry, bool) {
	for _, entry := range m {
		if entry.Key == key {
			return entry, true
		}
	}
	return Entry{}, false
}

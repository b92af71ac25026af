package colgroup

import "strconv"

// KV is one key of a packed Inline table.
type KV struct {
	Key   string
	Value interface{}
}

// Inline is an ordered key/value list produced by packing a Map schema.
// It serializes as a TOML inline table; ordering follows the schema.
type Inline []KV

// Pack folds the flat values of one row into the nested form described by
// schema. values maps column names to decoded cell values (int64, string,
// or a pre-decoded composite); empty cells must be omitted from the map.
// Returns nil when the entire group is empty, in which case the caller
// omits the group's alias from the row.
func Pack(schema Schema, values map[string]interface{}) interface{} {
	switch s := schema.(type) {
	case Leaf:
		v, ok := values[string(s)]
		if !ok {
			return nil
		}
		return v

	case Map:
		table := make(Inline, 0, len(s))
		for _, entry := range s {
			child := Pack(entry.Schema, values)
			if isEmpty(child) {
				continue
			}
			table = append(table, KV{Key: entry.Key, Value: child})
		}
		if len(table) == 0 {
			return nil
		}
		return table

	case Seq:
		elems := make([]interface{}, len(s))
		for i, elem := range s {
			child := Pack(elem, values)
			if isEmpty(child) {
				// Placeholder keeps later positions correctly indexed.
				child = emptyFor(elem)
			}
			elems[i] = child
		}

		// Trailing empties carry no information and are trimmed. This
		// happens before the uniformity check, so an all-integer array
		// with empty tail slots stays an integer array.
		for len(elems) > 0 && isEmpty(elems[len(elems)-1]) {
			elems = elems[:len(elems)-1]
		}
		if len(elems) == 0 {
			return nil
		}
		return uniformArray(elems)
	}
	return nil
}

// uniformArray enforces the serialization format's single-type arrays:
// whenever integers and strings coexist in one array, even when the only
// strings are empty placeholders, every integer is coerced to its string
// form. All-integer arrays keep their type, and arrays of inline tables
// are left as-is.
func uniformArray(elems []interface{}) []interface{} {
	allInt := true
	anyTable := false
	for _, v := range elems {
		switch v.(type) {
		case Inline:
			anyTable = true
		case int64:
		default:
			allInt = false
		}
	}
	if anyTable || allInt {
		return elems
	}

	coerced := make([]interface{}, len(elems))
	for i, v := range elems {
		if n, ok := v.(int64); ok {
			coerced[i] = strconv.FormatInt(n, 10)
		} else {
			coerced[i] = v
		}
	}
	return coerced
}

// emptyFor returns the placeholder for an empty slot of the given schema
// shape: an empty inline table for maps, the empty string otherwise.
func emptyFor(schema Schema) interface{} {
	if _, ok := schema.(Map); ok {
		return Inline{}
	}
	return ""
}

// isEmpty reports whether a packed value carries no information. Zero
// integers are not empty; only absent values, empty strings and empty
// containers are.
func isEmpty(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case Inline:
		return len(value) == 0
	case []interface{}:
		return len(value) == 0
	}
	return false
}

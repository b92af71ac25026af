package colgroup

import (
	"strings"
)

// MatchedGroup is a rule whose schema leaves have been resolved against one
// table's actual column names, recased to match the table. It is only valid
// for the column set it was matched against.
type MatchedGroup struct {
	Alias  string
	Schema Schema
}

// Members returns the matched group's member column names, in the table's
// casing.
func (g MatchedGroup) Members() []string {
	return memberNames(g.Schema)
}

// Match finds the rules that fully apply to the given column names. Column
// names are compared case-insensitively; a rule matches only if every one
// of its member columns is present. Matching walks the rule set in order
// (largest groups first) and removes consumed columns from consideration,
// so overlapping rules resolve to disjoint groups deterministically.
func Match(rules []Rule, columns []string) []MatchedGroup {
	// Remaining candidate names, folded name -> original name. Threaded
	// through the loop explicitly; consumed names are removed so a later,
	// smaller rule cannot reclaim them.
	remaining := make(map[string]string, len(columns))
	for _, name := range columns {
		remaining[strings.ToLower(name)] = name
	}

	var matched []MatchedGroup
	for _, rule := range rules {
		schema, ok := recaseSchema(rule.Schema, remaining)
		if !ok {
			continue
		}
		matched = append(matched, MatchedGroup{Alias: rule.Alias, Schema: schema})
		for _, member := range rule.Members() {
			delete(remaining, strings.ToLower(member))
		}
	}

	return matched
}

// recaseSchema resolves every leaf of schema against the folded-name lookup,
// returning a copy with leaves recased to the original column names. The
// second return is false when any leaf is absent (no partial matches).
func recaseSchema(schema Schema, lookup map[string]string) (Schema, bool) {
	switch s := schema.(type) {
	case Leaf:
		original, ok := lookup[strings.ToLower(string(s))]
		if !ok {
			return nil, false
		}
		return Leaf(original), true
	case Map:
		recased := make(Map, len(s))
		for i, entry := range s {
			child, ok := recaseSchema(entry.Schema, lookup)
			if !ok {
				return nil, false
			}
			recased[i] = Entry{Key: entry.Key, Schema: child}
		}
		return recased, true
	case Seq:
		recased := make(Seq, len(s))
		for i, elem := range s {
			child, ok := recaseSchema(elem, lookup)
			if !ok {
				return nil, false
			}
			recased[i] = child
		}
		return recased, true
	}
	return nil, false
}

package colgroup

import "sort"

// Item is one element of the merged declaration order: either a plain
// column name or a matched group. Exactly one field is set.
type Item struct {
	Column string
	Group  *MatchedGroup
}

// Order merges matched groups and plain columns into a single declaration
// order. Each group takes the minimum positional index among its member
// columns; a stable sort with groups listed first guarantees that a group
// is emitted before any of its own members would appear individually.
func Order(columns []string, groups []MatchedGroup) []Item {
	indexOf := make(map[string]int, len(columns))
	for i, name := range columns {
		indexOf[name] = i
	}

	type indexed struct {
		index int
		item  Item
	}

	combined := make([]indexed, 0, len(groups)+len(columns))
	for i := range groups {
		g := &groups[i]
		minIndex := len(columns)
		for _, member := range g.Members() {
			if idx, ok := indexOf[member]; ok && idx < minIndex {
				minIndex = idx
			}
		}
		combined = append(combined, indexed{index: minIndex, item: Item{Group: g}})
	}
	for i, name := range columns {
		combined = append(combined, indexed{index: i, item: Item{Column: name}})
	}

	sort.SliceStable(combined, func(a, b int) bool {
		return combined[a].index < combined[b].index
	})

	items := make([]Item, len(combined))
	for i, c := range combined {
		items[i] = c.item
	}
	return items
}

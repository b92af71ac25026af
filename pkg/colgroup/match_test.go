package colgroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var damageRules = []Rule{
	{Alias: "--Damage3", Schema: Seq{Leaf("MinDam"), Leaf("MaxDam"), Leaf("DamBonus")}},
	{Alias: "--Damage", Schema: Seq{Leaf("MinDam"), Leaf("MaxDam")}},
	{Alias: "__Range", Schema: Map{{"min", Leaf("RangeMin")}, {"max", Leaf("RangeMax")}}},
}

func TestMatchFullGroupsOnly(t *testing.T) {
	// RangeMax is missing, so __Range must not match at all.
	groups := Match(damageRules, []string{"Name", "MinDam", "MaxDam", "DamBonus", "RangeMin"})
	require.Len(t, groups, 1)
	assert.Equal(t, "--Damage3", groups[0].Alias)
	assert.Equal(t, []string{"MinDam", "MaxDam", "DamBonus"}, groups[0].Members())
}

func TestMatchLargerRuleWins(t *testing.T) {
	// Both damage rules cover MinDam/MaxDam; the earlier (larger) rule
	// consumes them, leaving nothing for the two-column rule.
	groups := Match(damageRules, []string{"MinDam", "MaxDam", "DamBonus"})
	require.Len(t, groups, 1)
	assert.Equal(t, "--Damage3", groups[0].Alias)

	groups = Match(damageRules, []string{"MinDam", "MaxDam"})
	require.Len(t, groups, 1)
	assert.Equal(t, "--Damage", groups[0].Alias)
}

func TestMatchRecasesToTableColumns(t *testing.T) {
	groups := Match(damageRules, []string{"mindam", "MAXDAM"})
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"mindam", "MAXDAM"}, groups[0].Members(),
		"matched members must carry the table's casing, not the rule's")
}

func TestMatchDisjointGroups(t *testing.T) {
	groups := Match(damageRules, []string{"MinDam", "MaxDam", "RangeMin", "RangeMax"})
	require.Len(t, groups, 2)

	seen := make(map[string]bool)
	for _, g := range groups {
		for _, member := range g.Members() {
			assert.False(t, seen[member], "column %q claimed by two groups", member)
			seen[member] = true
		}
	}
}

func TestMatchAgainstDefaultRules(t *testing.T) {
	// A realistic Weapons.txt header slice.
	columns := []string{"name", "type", "mindam", "maxdam", "2handmindam", "2handmaxdam", "speed"}
	groups := Match(Default(), columns)

	aliases := make([]string, len(groups))
	for i, g := range groups {
		aliases[i] = g.Alias
	}
	assert.Contains(t, aliases, "__Damage")
	assert.Contains(t, aliases, "__2HandDam")
}

func TestOrderGroupsPrecedeMembers(t *testing.T) {
	columns := []string{"Name", "MinDam", "MaxDam", "Speed"}
	groups := Match(damageRules, columns)
	require.Len(t, groups, 1)

	items := Order(columns, groups)
	require.Len(t, items, 5)

	assert.Equal(t, "Name", items[0].Column)
	require.NotNil(t, items[1].Group, "group must sit at its first member's position, before the member")
	assert.Equal(t, "--Damage", items[1].Group.Alias)
	assert.Equal(t, "MinDam", items[2].Column)
	assert.Equal(t, "MaxDam", items[3].Column)
	assert.Equal(t, "Speed", items[4].Column)
}

func TestOrderWithoutGroups(t *testing.T) {
	columns := []string{"a", "b", "c"}
	items := Order(columns, nil)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Nil(t, item.Group)
		assert.Equal(t, columns[i], item.Column)
	}
}

func TestParseSchema(t *testing.T) {
	// The shape a TOML decoder produces for a column_groups entry.
	raw := []interface{}{
		map[string]interface{}{"min": "MinDam", "max": "MaxDam"},
		"DamBonus",
	}
	schema, err := ParseSchema(raw)
	require.NoError(t, err)

	seq, ok := schema.(Seq)
	require.True(t, ok)
	require.Len(t, seq, 2)
	assert.ElementsMatch(t, []string{"MinDam", "MaxDam", "DamBonus"}, memberNames(schema))

	_, err = ParseSchema(int64(5))
	assert.Error(t, err)
}

package toml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d2modkit/d2txt/pkg/colgroup"
	"github.com/d2modkit/d2txt/pkg/tabular"
)

func newTable(t *testing.T, columns []string, rows ...[]string) *tabular.Table {
	t.Helper()
	table, err := tabular.New(columns, tabular.DedupeReject)
	require.NoError(t, err)
	for _, row := range rows {
		table.AppendValues(row)
	}
	return table
}

func TestExportBasic(t *testing.T) {
	table := newTable(t,
		[]string{"Name", "MinDam", "MaxDam"},
		[]string{"axe", "5", "10"})

	text, err := Export(table)
	require.NoError(t, err)

	assert.Equal(t, "columns = [\n"+
		"  'Name',\n"+
		"  'MinDam',\n"+
		"  'MaxDam',\n"+
		"]\n"+
		"\n"+
		"[column_groups]\n"+
		"__Damage = {min = 'MinDam', max = 'MaxDam'}\n"+
		"\n"+
		"[[rows]]\n"+
		"Name = 'axe'\n"+
		"__Damage = {min = 5, max = 10}\n"+
		"\n", text)
}

func TestExportOmitsEmptyCellsAndGroups(t *testing.T) {
	table := newTable(t,
		[]string{"Name", "MinDam", "MaxDam"},
		[]string{"elixir", "", ""})

	text, err := Export(table)
	require.NoError(t, err)

	// The schema stays declared, but an all-empty group must not appear in
	// the row body.
	assert.Contains(t, text, "__Damage = {min = 'MinDam', max = 'MaxDam'}\n")
	i := strings.Index(text, "[[rows]]")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, "[[rows]]\nName = 'elixir'\n\n", text[i:])
}

func TestExportNoGroupsNoSection(t *testing.T) {
	table := newTable(t, []string{"Name", "Speed"}, []string{"axe", "10"})

	text, err := Export(table)
	require.NoError(t, err)
	assert.NotContains(t, text, "[column_groups]")
}

func TestExportAuraFilter(t *testing.T) {
	table := newTable(t,
		[]string{"skill", "aurafilter"},
		[]string{"Sanctuary", "33025"},
		[]string{"Conviction", "65535"},
		[]string{"Meditation", "0"})

	text, err := Export(table)
	require.NoError(t, err)

	assert.Contains(t, text, "aurafilter = [['FindPlayers', 'NotInsideTowns', 'IgnoreAllies']]\n")
	assert.Contains(t, text, "'IgnoreBoss', 'IgnoreAllies'], [0x840]]\n")
	assert.Contains(t, text, "aurafilter = [[]]\n")
}

func TestExportQuotedKeysAndStrings(t *testing.T) {
	table := newTable(t,
		[]string{"int 0", "text"},
		[]string{"55", "mace's"})

	text, err := Export(table)
	require.NoError(t, err)
	assert.Contains(t, text, "'int 0' = 55\n")
	assert.Contains(t, text, "text = \"mace's\"\n")
}

func TestExportIntCoercion(t *testing.T) {
	table := newTable(t,
		[]string{"a", "b"},
		[]string{"0042", "hello"})

	text, err := Export(table)
	require.NoError(t, err)
	// Integer-looking cells export as integers; leading zeros are not
	// preserved by design.
	assert.Contains(t, text, "a = 42\n")
	assert.Contains(t, text, "b = 'hello'\n")
}

func TestImportBasic(t *testing.T) {
	text := "columns = [\n  'Name',\n  'MinDam',\n  'MaxDam',\n]\n\n" +
		"[column_groups]\n__Damage = {min = 'MinDam', max = 'MaxDam'}\n\n" +
		"[[rows]]\nName = 'axe'\n__Damage = {min = 5, max = 10}\n"

	table, err := Import(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "MinDam", "MaxDam"}, table.ColumnNames())
	require.Equal(t, 1, table.Len())
	assert.Equal(t, []string{"axe", "5", "10"}, table.Row(0).Values())
}

func TestImportUndeclaredAliasIsFlatColumn(t *testing.T) {
	// No column_groups section: "__Damage" is just a column name here, and
	// import must not consult the built-in rules.
	text := "columns = [\n  '__Damage',\n]\n\n[[rows]]\n__Damage = 7\n"

	table, err := Import(text)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, []string{"7"}, table.Row(0).Values())
}

func TestImportUnknownColumn(t *testing.T) {
	text := "columns = [\n  'Name',\n]\n\n[[rows]]\nBogus = 1\n"
	_, err := Import(text)
	assert.Error(t, err)
}

func TestImportDuplicateColumns(t *testing.T) {
	text := "columns = [\n  'Name',\n  'Name',\n]\n"
	_, err := Import(text)
	assert.Error(t, err)
}

func TestImportNoColumns(t *testing.T) {
	_, err := Import("[[rows]]\na = 1\n")
	assert.Error(t, err)
}

func TestImportStructuralMismatch(t *testing.T) {
	text := "columns = [\n  'MinDam',\n  'MaxDam',\n]\n\n" +
		"[column_groups]\n__Damage = {min = 'MinDam', max = 'MaxDam'}\n\n" +
		"[[rows]]\n__Damage = [5, 10]\n"
	_, err := Import(text)
	assert.Error(t, err, "array value against a table schema must fail")
}

func TestImportAuraFilter(t *testing.T) {
	text := "columns = [\n  'aurafilter',\n]\n\n" +
		"[[rows]]\naurafilter = [['FindPlayers', 'NotInsideTowns', 'IgnoreAllies']]\n\n" +
		"[[rows]]\naurafilter = [[], [0x501]]\n\n" +
		"[[rows]]\naurafilter = [[]]\n"

	table, err := Import(text)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, "33025", table.Row(0).At(0))
	assert.Equal(t, "1281", table.Row(1).At(0))
	assert.Equal(t, "0", table.Row(2).At(0))
}

func TestImportAuraFilterUnknownName(t *testing.T) {
	text := "columns = [\n  'aurafilter',\n]\n\n" +
		"[[rows]]\naurafilter = [['NoSuchFlag']]\n"
	_, err := Import(text)
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	table := newTable(t,
		[]string{"Name", "MinDam", "MaxDam", "Skill1", "Skill2", "aurafilter"},
		[]string{"axe", "5", "10", "", "", "33025"},
		[]string{"wand", "", "3", "Firebolt", "", ""},
		[]string{"", "", "", "", "", ""})

	text, err := Export(table)
	require.NoError(t, err)

	got, err := Import(text)
	require.NoError(t, err)

	assert.Equal(t, table.ColumnNames(), got.ColumnNames())
	require.Equal(t, table.Len(), got.Len())
	for i := 0; i < table.Len(); i++ {
		assert.Equal(t, table.Row(i).Values(), got.Row(i).Values(), "row %d", i)
	}
}

func TestExportWithRulesSeqGroup(t *testing.T) {
	rules := []colgroup.Rule{
		{Alias: "--Skills", Schema: colgroup.Seq{
			colgroup.Leaf("Skill1"), colgroup.Leaf("Skill2"), colgroup.Leaf("Skill3"),
		}},
	}
	table := newTable(t,
		[]string{"Name", "Skill1", "Skill2", "Skill3"},
		[]string{"hireling", "5", "", ""})

	text, err := ExportWithRules(table, rules)
	require.NoError(t, err)

	assert.Contains(t, text, "--Skills = ['Skill1', 'Skill2', 'Skill3']\n")
	assert.Contains(t, text, "--Skills = [5]\n")
}

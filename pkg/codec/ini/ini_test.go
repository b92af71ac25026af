package ini

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d2modkit/d2txt/pkg/errors"
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

func export(t *testing.T, table *tabular.Table) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, table))
	return buf.String()
}

func TestExportBasic(t *testing.T) {
	table := newTable(t,
		[]string{"Name", "MinDam", "MaxDam"},
		[]string{"axe", "5", "10"},
		[]string{"dagger", "", "3"})

	assert.Equal(t, "[Columns]\n"+
		"Name\n"+
		"MinDam\n"+
		"MaxDam\n"+
		"\n"+
		"[1]\n"+
		"Name = axe\n"+
		"MinDam = 5\n"+
		"MaxDam = 10\n"+
		"\n"+
		"[2]\n"+
		"Name = dagger\n"+
		"MaxDam = 3\n"+
		"\n", export(t, table))
}

func TestExportEscaping(t *testing.T) {
	table := newTable(t,
		[]string{"a=b", ";note", " padded "},
		[]string{"x", " lead", "`tick`"})

	text := export(t, table)
	assert.Contains(t, text, "a${eq}b\n")
	assert.Contains(t, text, "`;note`\n")
	assert.Contains(t, text, "` padded `\n")
	assert.Contains(t, text, "a${eq}b = x\n")
	assert.Contains(t, text, "`;note` = ` lead`\n")
	assert.Contains(t, text, "` padded ` = ``tick``\n")
}

func TestCommentLeadingColumnRoundTrip(t *testing.T) {
	// Without backtick wrapping the parser would treat "#calc" lines as
	// comments and drop the column entirely.
	table := newTable(t,
		[]string{"#calc", "Name"},
		[]string{"lvl*2", "axe"})

	text := export(t, table)
	assert.Contains(t, text, "`#calc`\n")

	got, err := Import([]byte(text), tabular.DedupeReject)
	require.NoError(t, err)
	assert.Equal(t, []string{"#calc", "Name"}, got.ColumnNames())
	require.Equal(t, 1, got.Len())
	assert.Equal(t, []string{"lvl*2", "axe"}, got.Row(0).Values())
}

func TestExportAuraFilter(t *testing.T) {
	table := newTable(t,
		[]string{"skill", "aurafilter"},
		[]string{"Sanctuary", "33025"},
		[]string{"Meditation", "0"})

	text := export(t, table)
	assert.Contains(t, text, "aurafilter = FindPlayers | NotInsideTowns | IgnoreAllies\n")
	assert.Contains(t, text, "aurafilter = 0\n")
}

func TestImportBasic(t *testing.T) {
	text := "[Columns]\nName\nMinDam\nMaxDam\n\n[1]\nName = axe\nMinDam = 5\nMaxDam = 10\n"

	table, err := Import([]byte(text), tabular.DedupeReject)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "MinDam", "MaxDam"}, table.ColumnNames())
	require.Equal(t, 1, table.Len())
	assert.Equal(t, []string{"axe", "5", "10"}, table.Row(0).Values())
}

func TestImportSkipsNonNumericSections(t *testing.T) {
	text := "[Columns]\na\n\n[notes]\nx = 1\n\n[1]\na = 1\n"
	table, err := Import([]byte(text), tabular.DedupeReject)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
}

func TestImportFillsSkippedRows(t *testing.T) {
	// Section [3] with no [2] creates an empty row in between.
	text := "[Columns]\na\n\n[1]\na = x\n\n[3]\na = z\n"
	table, err := Import([]byte(text), tabular.DedupeReject)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, "x", table.Row(0).At(0))
	assert.Equal(t, "", table.Row(1).At(0))
	assert.Equal(t, "z", table.Row(2).At(0))
}

func TestImportUnknownKey(t *testing.T) {
	text := "[Columns]\na\n\n[1]\nb = 1\n"
	_, err := Import([]byte(text), tabular.DedupeReject)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestImportMissingColumnsSection(t *testing.T) {
	_, err := Import([]byte("[1]\na = 1\n"), tabular.DedupeReject)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeData))
}

func TestImportRejectsIndentedLines(t *testing.T) {
	// Some INI dialects would fold the indented line into the previous
	// value; here it is always an error.
	text := "[Columns]\na\n\n[1]\na = first\n  second\n"
	_, err := Import([]byte(text), tabular.DedupeReject)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeParse))
}

func TestImportInvalidRowNumber(t *testing.T) {
	text := "[Columns]\na\n\n[0]\na = 1\n"
	_, err := Import([]byte(text), tabular.DedupeReject)
	assert.Error(t, err)
}

func TestImportDedupeModes(t *testing.T) {
	text := "[Columns]\nName\nName\n"

	table, err := Import([]byte(text), tabular.DedupeRename)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Name(B)"}, table.ColumnNames())

	_, err = Import([]byte(text), tabular.DedupeReject)
	assert.Error(t, err)
}

func TestImportAuraFilter(t *testing.T) {
	text := "[Columns]\naurafilter\n\n" +
		"[1]\naurafilter = FindPlayers | NotInsideTowns | IgnoreAllies\n\n" +
		"[2]\naurafilter = 0x40 | FindItems\n\n" +
		"[3]\naurafilter = 0\n"

	table, err := Import([]byte(text), tabular.DedupeReject)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, "33025", table.Row(0).At(0))
	assert.Equal(t, "96", table.Row(1).At(0))
	assert.Equal(t, "0", table.Row(2).At(0))
}

func TestImportAuraFilterUnknownFlag(t *testing.T) {
	text := "[Columns]\naurafilter\n\n[1]\naurafilter = NoSuchFlag\n"
	_, err := Import([]byte(text), tabular.DedupeReject)
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	table := newTable(t,
		[]string{"Name", "a=b", " pad", "aurafilter"},
		[]string{"axe", "x", " spaced ", "33025"},
		[]string{"", "", "", ""},
		[]string{"`odd`", ";semi", "", ""})

	text := export(t, table)
	got, err := Import([]byte(text), tabular.DedupeReject)
	require.NoError(t, err)

	assert.Equal(t, table.ColumnNames(), got.ColumnNames())
	require.Equal(t, table.Len(), got.Len())
	for i := 0; i < table.Len(); i++ {
		assert.Equal(t, table.Row(i).Values(), got.Row(i).Values(), "row %d", i)
	}
}

package ini

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	inifile "gopkg.in/ini.v1"

	"github.com/d2modkit/d2txt/pkg/aurafilter"
	"github.com/d2modkit/d2txt/pkg/errors"
	"github.com/d2modkit/d2txt/pkg/logger"
	"github.com/d2modkit/d2txt/pkg/tabular"
)

// Import parses an INI document into a table. Column names come from the
// [Columns] section in key order; each section whose name parses as a
// positive integer becomes the row at that 1-based position, and rows
// mentioned by no section are created empty. mode is the duplicate-column
// policy applied after unescaping.
func Import(data []byte, mode tabular.DedupeMode) (*tabular.Table, error) {
	if err := rejectContinuationLines(data); err != nil {
		return nil, err
	}

	f, err := inifile.LoadSources(inifile.LoadOptions{
		AllowBooleanKeys:    true,
		IgnoreInlineComment: true,
		KeyValueDelimiters:  "=",
	}, data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to parse INI document")
	}

	// The [Columns] keys are read from the raw lines rather than from the
	// parsed section: the parser merges duplicate keys, which would hide
	// duplicate column names from the dedupe policy.
	iniKeys, err := scanColumnKeys(data)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(iniKeys))
	for i, key := range iniKeys {
		names[i] = unescapeColumnName(key)
	}

	table, err := tabular.New(names, mode)
	if err != nil {
		return nil, err
	}

	// Row sections refer to columns by their escaped INI key, as the parser
	// renders it (backtick quoting stripped, whitespace trimmed); map that
	// form to the post-dedupe column name by position. When two keys
	// collapse to the same form the later one wins.
	columnOf := make(map[string]string, len(iniKeys))
	for i, key := range iniKeys {
		columnOf[parsedKeyName(key)] = table.ColumnNames()[i]
	}

	for _, section := range f.Sections() {
		n, err := strconv.Atoi(section.Name())
		if err != nil {
			continue
		}
		if n < 1 {
			return nil, errors.Newf(errors.ErrorTypeData, "invalid row section [%d]: row numbers start at 1", n)
		}

		for table.Len() < n {
			table.AppendValues(nil)
		}
		row := table.Row(n - 1)

		for _, key := range section.Keys() {
			name, ok := columnOf[key.Name()]
			if !ok {
				return nil, errors.Newf(errors.ErrorTypeNotFound,
					"section [%d] uses key %q which is not listed in [Columns]", n, key.Name())
			}
			cell, err := iniToCell(name, key.Value())
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to decode cell").
					WithDetail("section", n).
					WithDetail("column", name)
			}
			if err := row.Set(name, cell); err != nil {
				return nil, err
			}
		}
	}

	return table, nil
}

// iniToCell converts one INI value back into a TXT cell. The parser has
// already stripped backtick escaping; the AuraFilter flag list is folded
// back into its integer value.
func iniToCell(column, value string) (string, error) {
	if aurafilter.IsField(column) {
		n, err := aurafilter.ParseList(value)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(n), 10), nil
	}
	return value, nil
}

// scanColumnKeys extracts the [Columns] section's key strings from the raw
// document, in order and with duplicates preserved. Blank lines and comment
// lines are skipped; a key line is either a bare key or "key = value", with
// backtick quoting honored the way the parser honors it.
func scanColumnKeys(data []byte) ([]string, error) {
	var keys []string
	found := false
	inColumns := false

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == ';' || trimmed[0] == '#' {
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			inColumns = trimmed[1:len(trimmed)-1] == "Columns"
			if inColumns {
				found = true
			}
			continue
		}
		if inColumns {
			keys = append(keys, rawKeyName(trimmed))
		}
	}

	if !found {
		return nil, errors.New(errors.ErrorTypeData, "INI document has no [Columns] section")
	}
	return keys, nil
}

// rawKeyName isolates the key portion of a trimmed key line, keeping any
// backtick quoting so the escaped form round-trips through unescaping.
func rawKeyName(line string) string {
	if line[0] == '`' {
		if end := strings.IndexByte(line[1:], '`'); end >= 0 {
			return line[:end+2]
		}
	}
	if i := strings.IndexByte(line, '='); i >= 0 {
		return strings.TrimSpace(line[:i])
	}
	return line
}

// parsedKeyName reduces an escaped key to the form the INI parser reports
// for it in a "key = value" line: backtick quotes stripped, then the
// remainder whitespace-trimmed.
func parsedKeyName(key string) string {
	if wrapped(key) {
		key = key[1 : len(key)-1]
	}
	return strings.TrimSpace(key)
}

// rejectContinuationLines fails on indented non-blank lines before parsing.
// Some INI dialects fold them into the previous value; here they are always
// a mistake (usually a cell that contains a newline) and folding would
// corrupt the cell silently.
func rejectContinuationLines(data []byte) error {
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return errors.Newf(errors.ErrorTypeParse,
				"line %d is indented; values cannot span multiple lines", i+1).
				WithDetail("line", strings.TrimSpace(line))
		}
	}
	return nil
}

// ImportFile loads an INI file from disk and parses it into a table.
func ImportFile(path string, mode tabular.DedupeMode) (*tabular.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read INI file").
			WithDetail("path", path)
	}

	table, err := Import(data, mode)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to import INI file").
			WithDetail("path", path)
	}

	logger.Debug("INI file loaded",
		zap.String("path", path),
		zap.Int("columns", table.NumColumns()),
		zap.Int("rows", table.Len()))
	return table, nil
}

package toml

import (
	"os"

	bstoml "github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/d2modkit/d2txt/pkg/colgroup"
	"github.com/d2modkit/d2txt/pkg/errors"
	"github.com/d2modkit/d2txt/pkg/logger"
	"github.com/d2modkit/d2txt/pkg/tabular"
)

// document is the decoded shape of a TOML table file.
type document struct {
	Columns      []string                 `toml:"columns"`
	ColumnGroups map[string]interface{}   `toml:"column_groups"`
	Rows         []map[string]interface{} `toml:"rows"`
}

// Import parses TOML text into a table. The document's own column_groups
// section drives unfolding; the built-in rule set is never consulted, so a
// file written against any rule revision round-trips unchanged. An alias
// used in a row but absent from column_groups is treated as a plain flat
// column.
func Import(text string) (*tabular.Table, error) {
	var doc document
	if _, err := bstoml.Decode(text, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to parse TOML document")
	}
	if len(doc.Columns) == 0 {
		return nil, errors.New(errors.ErrorTypeData, "TOML document has no columns list")
	}

	// Duplicate column names mean the document did not come from this tool;
	// renaming here would silently diverge, so reject outright.
	table, err := tabular.New(doc.Columns, tabular.DedupeReject)
	if err != nil {
		return nil, err
	}

	schemas := make(map[string]colgroup.Schema, len(doc.ColumnGroups))
	for alias, raw := range doc.ColumnGroups {
		schema, err := colgroup.ParseSchema(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "invalid column group schema").
				WithDetail("alias", alias)
		}
		schemas[alias] = schema
	}

	for i, rowValues := range doc.Rows {
		row := table.AppendValues(nil)
		for key, value := range rowValues {
			var err error
			if schema, ok := schemas[key]; ok {
				// Member cells come out of the unfold verbatim; group
				// members are never specially encoded.
				err = colgroup.Unpack(schema, value, func(column string, cell interface{}) error {
					return row.Set(column, ValueString(cell))
				})
			} else {
				var cell string
				cell, err = EncodeCell(key, value)
				if err == nil {
					err = row.Set(key, cell)
				}
			}
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to decode row").
					WithDetail("row", i+1).
					WithDetail("key", key)
			}
		}
	}

	return table, nil
}

// ImportFile loads a TOML file from disk and parses it into a table.
func ImportFile(path string) (*tabular.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read TOML file").
			WithDetail("path", path)
	}

	table, err := Import(string(data))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to import TOML file").
			WithDetail("path", path)
	}

	logger.Debug("TOML file loaded",
		zap.String("path", path),
		zap.Int("columns", table.NumColumns()),
		zap.Int("rows", table.Len()))
	return table, nil
}

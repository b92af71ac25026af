// Package toml converts game data tables to and from the TOML document
// form: a columns header preserving the exact TXT column order, a
// column_groups section describing how flat columns folded into nested
// values, and one [[rows]] table per record holding only non-empty cells.
package toml

import (
	"os"

	"go.uber.org/zap"

	"github.com/d2modkit/d2txt/pkg/colgroup"
	"github.com/d2modkit/d2txt/pkg/errors"
	"github.com/d2modkit/d2txt/pkg/logger"
	"github.com/d2modkit/d2txt/pkg/tabular"
)

// Export serializes a table to TOML text using the built-in column-group
// rule set.
func Export(table *tabular.Table) (string, error) {
	return ExportWithRules(table, colgroup.Default())
}

// ExportWithRules serializes a table to TOML text, folding columns with the
// given rule set. The document carries everything needed to reverse the
// transform without access to the rules.
func ExportWithRules(table *tabular.Table, rules []colgroup.Rule) (string, error) {
	columns := table.ColumnNames()
	groups := colgroup.Match(rules, columns)
	items := colgroup.Order(columns, groups)

	member := make(map[string]bool)
	for _, g := range groups {
		for _, name := range g.Members() {
			member[name] = true
		}
	}

	var w writer

	w.stringList("columns", columns)
	w.blankLine()

	if len(groups) > 0 {
		w.tableHeader("column_groups")
		for _, item := range items {
			if item.Group == nil {
				continue
			}
			w.b.WriteString(formatKey(item.Group.Alias))
			w.b.WriteString(" = ")
			if err := w.schemaValue(item.Group.Schema); err != nil {
				return "", err
			}
			w.b.WriteString("\n")
		}
		w.blankLine()
	}

	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)

		values := make(map[string]interface{}, len(columns))
		for j, name := range columns {
			cell := row.At(j)
			if cell == "" {
				continue
			}
			values[name] = DecodeCell(name, cell)
		}

		w.arrayTableHeader("rows")
		for _, item := range items {
			if item.Group != nil {
				packed := colgroup.Pack(item.Group.Schema, values)
				if packed == nil {
					continue
				}
				if err := w.keyValue(item.Group.Alias, packed); err != nil {
					return "", err
				}
				continue
			}
			// Members of a matched group are emitted through their group
			// alias, never individually.
			if member[item.Column] {
				continue
			}
			value, ok := values[item.Column]
			if !ok {
				continue
			}
			if err := w.keyValue(item.Column, value); err != nil {
				return "", err
			}
		}
		w.blankLine()
	}

	return w.String(), nil
}

// ExportFile serializes a table and writes it to a TOML file. The output is
// plain UTF-8.
func ExportFile(path string, table *tabular.Table) error {
	text, err := Export(table)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write TOML file").
			WithDetail("path", path)
	}

	logger.Debug("TOML file written",
		zap.String("path", path),
		zap.Int("rows", table.Len()))
	return nil
}

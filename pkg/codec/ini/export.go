package ini

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/d2modkit/d2txt/pkg/aurafilter"
	"github.com/d2modkit/d2txt/pkg/errors"
	"github.com/d2modkit/d2txt/pkg/logger"
	"github.com/d2modkit/d2txt/pkg/tabular"
)

// Export writes a table as an INI document: a [Columns] section of bare
// keys in column order, then one numbered section per row listing the
// non-empty cells. Output is written directly rather than through an INI
// library: the format needs value-less keys, unaligned delimiters and its
// own escaping, all of which library writers rewrite.
func Export(w io.Writer, table *tabular.Table) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("[Columns]\n")
	for _, name := range table.ColumnNames() {
		bw.WriteString(escapeColumnName(name))
		bw.WriteString("\n")
	}
	bw.WriteString("\n")

	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)

		bw.WriteString("[")
		bw.WriteString(strconv.Itoa(i + 1))
		bw.WriteString("]\n")

		for j, name := range table.ColumnNames() {
			value := row.At(j)
			if value == "" {
				continue
			}
			bw.WriteString(escapeColumnName(name))
			bw.WriteString(" = ")
			bw.WriteString(cellToINI(name, value))
			bw.WriteString("\n")
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

// cellToINI renders one cell for the INI form. The AuraFilter field becomes
// its pipe-separated flag list; everything else is escaped verbatim.
func cellToINI(column, value string) string {
	if aurafilter.IsField(column) {
		if n, err := strconv.ParseUint(value, 10, 32); err == nil {
			return aurafilter.FormatList(uint32(n))
		}
	}
	return escapeCellValue(value)
}

// ExportFile writes a table to an INI file on disk. Output is plain UTF-8.
func ExportFile(path string, table *tabular.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to create INI file").
			WithDetail("path", path)
	}

	if err := Export(f, table); err != nil {
		f.Close()
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write INI file").
			WithDetail("path", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to close INI file").
			WithDetail("path", path)
	}

	logger.Debug("INI file written",
		zap.String("path", path),
		zap.Int("rows", table.Len()))
	return nil
}

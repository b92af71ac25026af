// Package txt reads and writes Diablo II tab-separated TXT files.
//
// The format is a header row of column names followed by one row per
// record. Cells are separated by a single tab and are never quoted; tabs
// and newlines inside a cell are not representable. Files are written
// with CRLF line endings and, by default, Windows code page 949 text
// encoding (the encoding the game shipped with).
package txt

import (
	"bufio"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/d2modkit/d2txt/pkg/errors"
	"github.com/d2modkit/d2txt/pkg/logger"
	"github.com/d2modkit/d2txt/pkg/tabular"
)

// Windows949 is the text encoding of retail game TXT files. The x/text
// EUC-KR tables implement the full code page 949 repertoire.
var Windows949 encoding.Encoding = korean.EUCKR

// Codec reads and writes TXT files.
type Codec struct {
	// Dedupe is the duplicate-column policy applied to headers on read.
	Dedupe tabular.DedupeMode
	// Encoding transcodes file bytes on both read and write. nil means
	// plain UTF-8 passthrough.
	Encoding encoding.Encoding
}

// NewCodec returns a codec with the game's default settings: rename
// duplicate columns and transcode through code page 949.
func NewCodec() *Codec {
	return &Codec{Dedupe: tabular.DedupeRename, Encoding: Windows949}
}

// ReadFile loads a TXT file from disk.
func (c *Codec) ReadFile(path string) (*tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open TXT file").
			WithDetail("path", path)
	}
	defer f.Close()

	table, err := c.Read(f)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to read TXT file").
			WithDetail("path", path)
	}

	logger.Debug("TXT file loaded",
		zap.String("path", path),
		zap.Int("columns", table.NumColumns()),
		zap.Int("rows", table.Len()))
	return table, nil
}

// Read parses TXT content from a reader.
func (c *Codec) Read(r io.Reader) (*tabular.Table, error) {
	if c.Encoding != nil {
		r = transform.NewReader(r, c.Encoding.NewDecoder())
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to read header row")
		}
		return nil, errors.New(errors.ErrorTypeParse, "TXT file has no header row")
	}

	table, err := tabular.New(splitLine(scanner.Text()), c.Dedupe)
	if err != nil {
		return nil, err
	}

	for scanner.Scan() {
		table.AppendValues(splitLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to read row")
	}

	return table, nil
}

// WriteFile writes a table to a TXT file on disk.
func (c *Codec) WriteFile(path string, table *tabular.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to create TXT file").
			WithDetail("path", path)
	}

	if err := c.Write(f, table); err != nil {
		f.Close()
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write TXT file").
			WithDetail("path", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to close TXT file").
			WithDetail("path", path)
	}

	logger.Debug("TXT file written",
		zap.String("path", path),
		zap.Int("rows", table.Len()))
	return nil
}

// Write serializes a table as TXT content: header row first, CRLF line
// endings, cells joined by tabs with no quoting.
func (c *Codec) Write(w io.Writer, table *tabular.Table) error {
	var closer io.Closer
	if c.Encoding != nil {
		tw := transform.NewWriter(w, c.Encoding.NewEncoder())
		w = tw
		closer = tw
	}
	bw := bufio.NewWriter(w)

	if err := writeLine(bw, table.ColumnNames()); err != nil {
		return err
	}
	for i := 0; i < table.Len(); i++ {
		if err := writeLine(bw, table.Row(i).Values()); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return err
	}
	if closer != nil {
		return closer.Close()
	}
	return nil
}

func writeLine(w *bufio.Writer, cells []string) error {
	if _, err := w.WriteString(strings.Join(cells, "\t")); err != nil {
		return err
	}
	_, err := w.WriteString("\r\n")
	return err
}

func splitLine(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	return strings.Split(line, "\t")
}

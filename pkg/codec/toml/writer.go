package toml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/d2modkit/d2txt/pkg/aurafilter"
	"github.com/d2modkit/d2txt/pkg/colgroup"
	"github.com/d2modkit/d2txt/pkg/errors"
)

// writer emits TOML text. The standard encoders cannot produce the output
// this format needs (literal-quoted strings, ordered inline tables, hex
// integer literals), so emission is done by hand; parsing still goes
// through a real TOML decoder.
type writer struct {
	b strings.Builder
}

func (w *writer) String() string {
	return w.b.String()
}

// keyValue writes one "key = value" line.
func (w *writer) keyValue(key string, value interface{}) error {
	w.b.WriteString(formatKey(key))
	w.b.WriteString(" = ")
	if err := w.value(value); err != nil {
		return err
	}
	w.b.WriteString("\n")
	return nil
}

// stringList writes a multi-line array of strings, one element per line.
// Used for the columns header, which is long and reads best vertically.
func (w *writer) stringList(key string, values []string) {
	w.b.WriteString(formatKey(key))
	w.b.WriteString(" = [\n")
	for _, v := range values {
		w.b.WriteString("  ")
		w.b.WriteString(formatString(v))
		w.b.WriteString(",\n")
	}
	w.b.WriteString("]\n")
}

func (w *writer) tableHeader(name string) {
	w.b.WriteString("[")
	w.b.WriteString(name)
	w.b.WriteString("]\n")
}

func (w *writer) arrayTableHeader(name string) {
	w.b.WriteString("[[")
	w.b.WriteString(name)
	w.b.WriteString("]]\n")
}

func (w *writer) blankLine() {
	w.b.WriteString("\n")
}

// value writes a single TOML value inline.
func (w *writer) value(value interface{}) error {
	switch v := value.(type) {
	case string:
		w.b.WriteString(formatString(v))
	case int64:
		w.b.WriteString(strconv.FormatInt(v, 10))
	case int:
		w.b.WriteString(strconv.Itoa(v))
	case aurafilter.Hex:
		w.b.WriteString(v.String())
	case float64:
		w.b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case bool:
		w.b.WriteString(strconv.FormatBool(v))
	case colgroup.Inline:
		w.b.WriteString("{")
		for i, kv := range v {
			if i > 0 {
				w.b.WriteString(", ")
			}
			w.b.WriteString(formatKey(kv.Key))
			w.b.WriteString(" = ")
			if err := w.value(kv.Value); err != nil {
				return err
			}
		}
		w.b.WriteString("}")
	case []interface{}:
		w.b.WriteString("[")
		for i, elem := range v {
			if i > 0 {
				w.b.WriteString(", ")
			}
			if err := w.value(elem); err != nil {
				return err
			}
		}
		w.b.WriteString("]")
	default:
		return errors.Newf(errors.ErrorTypeInternal, "cannot serialize value of type %T", value)
	}
	return nil
}

// schemaValue writes a column-group schema as its self-describing literal:
// leaves as column-name strings, maps as inline tables, sequences as arrays.
func (w *writer) schemaValue(schema colgroup.Schema) error {
	switch s := schema.(type) {
	case colgroup.Leaf:
		w.b.WriteString(formatString(string(s)))
	case colgroup.Map:
		w.b.WriteString("{")
		for i, entry := range s {
			if i > 0 {
				w.b.WriteString(", ")
			}
			w.b.WriteString(formatKey(entry.Key))
			w.b.WriteString(" = ")
			if err := w.schemaValue(entry.Schema); err != nil {
				return err
			}
		}
		w.b.WriteString("}")
	case colgroup.Seq:
		w.b.WriteString("[")
		for i, elem := range s {
			if i > 0 {
				w.b.WriteString(", ")
			}
			if err := w.schemaValue(elem); err != nil {
				return err
			}
		}
		w.b.WriteString("]")
	default:
		return errors.Newf(errors.ErrorTypeInternal, "cannot serialize schema of type %T", schema)
	}
	return nil
}

// formatKey renders a table key, bare when possible.
func formatKey(key string) string {
	if isBareKey(key) {
		return key
	}
	return formatString(key)
}

func isBareKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

// formatString renders a string value, preferring the literal single-quoted
// form. Strings that cannot be literal-quoted fall back to the escaped
// basic form.
func formatString(s string) string {
	if canLiteralQuote(s) {
		return "'" + s + "'"
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(fmt.Sprintf(`\u%04X`, r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func canLiteralQuote(s string) bool {
	for _, r := range s {
		if r == '\'' || r == '\n' || r == '\r' || (r < 0x20 && r != '\t') {
			return false
		}
	}
	return true
}

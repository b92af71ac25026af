// Package ini converts game data tables to and from the INI document form:
// a [Columns] section listing column names as bare keys, followed by one
// numbered section per row holding only non-empty cells.
package ini

import (
	"strings"
	"unicode"
)

// escapeColumnName converts a column name into a safe INI key. Equal signs
// become "${eq}" since "=" delimits keys from values; names that are empty,
// backtick-wrapped, whitespace-padded, or start with a comment character
// (";" or "#") are wrapped in backticks.
func escapeColumnName(name string) string {
	name = strings.ReplaceAll(name, "=", "${eq}")
	if name == "" || wrapped(name) || padded(name) || name[0] == ';' || name[0] == '#' {
		return "`" + name + "`"
	}
	return name
}

// unescapeColumnName reverses escapeColumnName.
func unescapeColumnName(key string) string {
	key = strings.ReplaceAll(key, "${eq}", "=")
	if wrapped(key) {
		return key[1 : len(key)-1]
	}
	return key
}

// escapeCellValue wraps a cell value in backticks when the INI parser would
// otherwise mangle it: values that are already backtick-wrapped or carry
// leading or trailing whitespace.
func escapeCellValue(value string) string {
	if value != "" && (wrapped(value) || padded(value)) {
		return "`" + value + "`"
	}
	return value
}

// wrapped reports whether s is surrounded by a pair of backticks.
func wrapped(s string) bool {
	return len(s) >= 2 && s[0] == '`' && s[len(s)-1] == '`'
}

// padded reports whether s starts or ends with whitespace. Covers
// whitespace-only strings.
func padded(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	return unicode.IsSpace(runes[0]) || unicode.IsSpace(runes[len(runes)-1])
}

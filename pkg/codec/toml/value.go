package toml

import (
	"fmt"
	"strconv"

	"github.com/d2modkit/d2txt/pkg/aurafilter"
	"github.com/d2modkit/d2txt/pkg/errors"
)

// DecodeCell converts a raw TXT cell into the value placed in a TOML row.
// Integer-looking cells become integers; the AuraFilter field becomes its
// flag-list form; everything else passes through as a string.
func DecodeCell(column, value string) interface{} {
	var decoded interface{} = value
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		decoded = n
	}

	if aurafilter.IsField(column) {
		n, ok := decoded.(int64)
		if !ok || n < 0 || n > 0xFFFFFFFF {
			return decoded
		}
		names, residual := aurafilter.Decode(uint32(n))
		flags := make([]interface{}, len(names))
		for i, name := range names {
			flags[i] = name
		}
		// The flag list is wrapped in an outer array so the residual can
		// ride along without mixing types: [[names...], [0xRESIDUAL]].
		if residual != 0 {
			return []interface{}{flags, []interface{}{residual}}
		}
		return []interface{}{flags}
	}

	return decoded
}

// EncodeCell converts a decoded TOML value back into a TXT cell string.
// The AuraFilter flag-list form is folded back into its integer value; an
// unknown flag name is a hard error.
func EncodeCell(column string, value interface{}) (string, error) {
	if aurafilter.IsField(column) {
		if arr, ok := value.([]interface{}); ok && len(arr) > 0 {
			if flags, ok := arr[0].([]interface{}); ok {
				names := make([]string, len(flags))
				for i, flag := range flags {
					name, ok := flag.(string)
					if !ok {
						return "", errors.Newf(errors.ErrorTypeData,
							"AuraFilter flag list holds a non-string element %v", flag)
					}
					names[i] = name
				}
				combined, err := aurafilter.Encode(names)
				if err != nil {
					return "", err
				}
				if len(arr) > 1 {
					if residual, ok := arr[1].([]interface{}); ok && len(residual) > 0 {
						if bits, ok := residual[0].(int64); ok {
							combined |= uint32(bits)
						}
					}
				}
				return strconv.FormatUint(uint64(combined), 10), nil
			}
		}
	}

	return ValueString(value), nil
}

// ValueString renders a decoded TOML scalar as a TXT cell string.
func ValueString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Package aurafilter encodes and decodes the AuraFilter column of
// Skills.txt, a 32-bit bit-flag set with a fixed symbolic name table.
// See https://d2mods.info/forum/viewtopic.php?t=43737 for more information.
package aurafilter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/d2modkit/d2txt/pkg/errors"
)

// Hex is an integer that serializes in hexadecimal form. Used for the
// residual bits of an AuraFilter value that have no symbolic name.
type Hex uint32

func (h Hex) String() string {
	return fmt.Sprintf("0x%X", uint32(h))
}

type flagDef struct {
	name string
	bit  uint32
}

// Documented AuraFilter bits, low to high. Bits 0x40 and 0x800 have no
// known meaning and stay in the residual.
var flagTable = []flagDef{
	{"FindPlayers", 0x00000001},
	{"FindMonsters", 0x00000002},
	{"FindOnlyUndead", 0x00000004},
	// Ignores missiles with explosion=1 in missiles.txt
	{"FindMissiles", 0x00000008},
	{"FindObjects", 0x00000010},
	{"FindItems", 0x00000020},
	// Target units flagged as IsAtt in monstats2.txt
	{"FindAttackable", 0x00000080},
	{"NotInsideTowns", 0x00000100},
	{"UseLineOfSight", 0x00000200},
	// Checked manually by curse skill functions
	{"FindSelectable", 0x00000400},
	// Targets corpses of monsters and players
	{"FindCorpses", 0x00001000},
	{"NotInsideTowns2", 0x00002000},
	// Ignores units with SetBoss=1 in MonStats.txt
	{"IgnoreBoss", 0x00004000},
	{"IgnoreAllies", 0x00008000},
	// Ignores units with npc=1 in MonStats.txt
	{"IgnoreNPC", 0x00010000},
	// Ignores units with primeevil=1 in MonStats.txt
	{"IgnorePrimeEvil", 0x00040000},
	{"IgnoreJustHitUnits", 0x00080000}, // Used by chainlightning
	// Rest are unknown
}

var flagByName = func() map[string]uint32 {
	m := make(map[string]uint32, len(flagTable))
	for _, def := range flagTable {
		m[def.name] = def.bit
	}
	return m
}()

// IsField reports whether a column name refers to the AuraFilter field.
// The comparison is case-insensitive.
func IsField(column string) bool {
	return strings.EqualFold(column, "aurafilter")
}

// Decode splits an AuraFilter value into its known flag names and the
// residual unknown bits. Flag names come out in bit order.
func Decode(value uint32) ([]string, Hex) {
	names := make([]string, 0, len(flagTable))
	for _, def := range flagTable {
		if value&def.bit != 0 {
			value &^= def.bit
			names = append(names, def.name)
		}
	}
	return names, Hex(value)
}

// Encode combines a list of flag names back into an AuraFilter value.
// An unrecognized name is a hard error; flag names are case-sensitive.
func Encode(names []string) (uint32, error) {
	var value uint32
	for _, name := range names {
		bit, ok := flagByName[name]
		if !ok {
			return 0, errors.Newf(errors.ErrorTypeValidation, "unknown AuraFilter flag name %q", name)
		}
		value |= bit
	}
	return value, nil
}

// FormatList renders an AuraFilter value for the INI representation:
// flag names joined by " | ", unknown bits rendered as hex literals per
// set bit, and "0" for an empty value.
func FormatList(value uint32) string {
	if value == 0 {
		return "0"
	}

	names := make([]string, 0, 32)
	for shift := 0; shift < 32; shift++ {
		bit := uint32(1) << shift
		if value&bit == 0 {
			continue
		}
		if name, ok := flagName(bit); ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("%#x", bit))
		}
	}
	return strings.Join(names, " | ")
}

// ParseList parses the INI representation back into an AuraFilter value.
// Each pipe-separated element is either a known flag name or an integer
// literal (decimal, hex or octal); anything else is a hard error.
func ParseList(s string) (uint32, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}

	var value uint32
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if bit, ok := flagByName[part]; ok {
			value |= bit
			continue
		}
		n, err := strconv.ParseUint(part, 0, 32)
		if err != nil {
			return 0, errors.Newf(errors.ErrorTypeValidation, "unknown bit flag for aurafilter: %q", part)
		}
		value |= uint32(n)
	}
	return value, nil
}

func flagName(bit uint32) (string, bool) {
	for _, def := range flagTable {
		if def.bit == bit {
			return def.name, true
		}
	}
	return "", false
}

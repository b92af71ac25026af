// Package d2txt converts Diablo II game data files between their native
// tab-separated TXT form and editor-friendly TOML or INI documents.
//
// TXT files are tables: a header row of column names followed by one row
// per record, cells separated by tabs, written in Windows code page 949.
// The format is hostile to hand editing and to version control, so this
// module "decompiles" it into a text form that diffs well and "compiles"
// the result back, byte-for-byte equivalent in meaning.
//
// The TOML form additionally folds families of mechanically related
// columns (MinDam/MaxDam, Skill1..Skill8, per-difficulty stat triples)
// into nested values using a declarative rule set; every document carries
// its own column_groups section, so files round-trip even across rule
// revisions. See pkg/colgroup for the folding engine.
//
// # Packages
//
//   - pkg/tabular: in-memory table model with duplicate-column policies
//   - pkg/colgroup: column-group rules, matching, packing and unpacking
//   - pkg/aurafilter: the AuraFilter bit-flag codec for Skills.txt
//   - pkg/codec/txt: TXT reader/writer (tabs, CRLF, code page 949)
//   - pkg/codec/toml: grouped TOML export and import
//   - pkg/codec/ini: legacy flat INI export and import
//   - cmd/d2txt: the compile/decompile command-line tool
//
// # Quick Start
//
// Decompile a TXT file to TOML and back:
//
//	codec := txt.NewCodec()
//	table, err := codec.ReadFile("Weapons.txt")
//	if err != nil { ... }
//	text, err := toml.Export(table)
//	if err != nil { ... }
//
//	table, err = toml.Import(text)
//	if err != nil { ... }
//	err = codec.WriteFile("Weapons.txt", table)
package d2txt

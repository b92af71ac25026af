package main

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"github.com/d2modkit/d2txt/pkg/codec/ini"
	"github.com/d2modkit/d2txt/pkg/codec/toml"
	"github.com/d2modkit/d2txt/pkg/codec/txt"
	"github.com/d2modkit/d2txt/pkg/config"
	"github.com/d2modkit/d2txt/pkg/errors"
	"github.com/d2modkit/d2txt/pkg/logger"
	"github.com/d2modkit/d2txt/pkg/tabular"
)

// convertFunc converts a single source file to a single target file.
type convertFunc func(source, target string, opts *config.Options) error

// convertPairs runs a conversion over source/target pairs sequentially,
// stopping at the first failure.
func convertPairs(args []string, opts *config.Options, convert convertFunc) error {
	for i := 0; i+1 < len(args); i += 2 {
		source, target := args[i], args[i+1]
		logger.Info("converting file",
			zap.String("source", source),
			zap.String("target", target))
		if err := convert(source, target, opts); err != nil {
			return err
		}
	}
	return nil
}

// compileFile converts a TOML or INI file to a tabbed TXT file.
func compileFile(source, target string, opts *config.Options) error {
	format, err := resolveFormat(opts.Format, source)
	if err != nil {
		return err
	}

	var table *tabular.Table
	switch format {
	case config.FormatTOML:
		table, err = toml.ImportFile(source)
	case config.FormatINI:
		table, err = ini.ImportFile(source, dedupeMode(opts.Dedupe))
	}
	if err != nil {
		return err
	}

	codec := &txt.Codec{Dedupe: dedupeMode(opts.Dedupe), Encoding: txtEncoding(opts.Encoding)}
	return codec.WriteFile(target, table)
}

// decompileFile converts a tabbed TXT file to a TOML or INI file.
func decompileFile(source, target string, opts *config.Options) error {
	format, err := resolveFormat(opts.Format, target)
	if err != nil {
		return err
	}

	codec := &txt.Codec{Dedupe: dedupeMode(opts.Dedupe), Encoding: txtEncoding(opts.Encoding)}
	table, err := codec.ReadFile(source)
	if err != nil {
		return err
	}

	switch format {
	case config.FormatTOML:
		return toml.ExportFile(target, table)
	case config.FormatINI:
		return ini.ExportFile(target, table)
	}
	return nil
}

// resolveFormat turns the format option into a concrete format, using the
// non-TXT file's extension when set to auto.
func resolveFormat(format, path string) (string, error) {
	if format != config.FormatAuto {
		return format, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return config.FormatTOML, nil
	case ".ini":
		return config.FormatINI, nil
	}
	return "", errors.Newf(errors.ErrorTypeValidation,
		"cannot infer format from %q; use --format toml or --format ini", path)
}

func dedupeMode(mode string) tabular.DedupeMode {
	if mode == config.DedupeReject {
		return tabular.DedupeReject
	}
	return tabular.DedupeRename
}

func txtEncoding(name string) encoding.Encoding {
	if name == config.EncodingUTF8 {
		return nil
	}
	return txt.Windows949
}

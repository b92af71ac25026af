// Package config provides the unified configuration system for d2txt.
// It defines a single Options structure used by the CLI and the format
// codecs, loaded from defaults, environment variables and an optional
// configuration file.
//
// Example usage:
//
//	opts, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if opts.Dedupe == config.DedupeReject { ... }
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/d2modkit/d2txt/pkg/errors"
)

// Dedupe policies for duplicate column names in TXT/INI headers.
const (
	// DedupeRename renames duplicate columns with a base-26 suffix.
	DedupeRename = "rename"
	// DedupeReject aborts the conversion on the first duplicate column.
	DedupeReject = "reject"
)

// Output format selectors for the external (non-TXT) representation.
const (
	// FormatAuto picks the format from the file extension.
	FormatAuto = "auto"
	// FormatTOML selects the grouped TOML representation.
	FormatTOML = "toml"
	// FormatINI selects the legacy flat INI representation.
	FormatINI = "ini"
)

// Text encodings for TXT files.
const (
	// EncodingWindows949 reads and writes TXT files as Windows code page 949.
	EncodingWindows949 = "windows-949"
	// EncodingUTF8 reads and writes TXT files as UTF-8.
	EncodingUTF8 = "utf-8"
)

// Options is the configuration consumed by the CLI and the codecs.
type Options struct {
	// Dedupe selects the duplicate-column policy for TXT and INI headers
	Dedupe string `mapstructure:"dedupe"`
	// Format selects the external representation (auto, toml, ini)
	Format string `mapstructure:"format"`
	// Encoding selects the TXT file text encoding
	Encoding string `mapstructure:"encoding"`
	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `mapstructure:"log_level"`
	// LogEncoding sets the log output format (console or json)
	LogEncoding string `mapstructure:"log_encoding"`
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() *Options {
	return &Options{
		Dedupe:      DedupeRename,
		Format:      FormatAuto,
		Encoding:    EncodingWindows949,
		LogLevel:    "warn",
		LogEncoding: "console",
	}
}

// Load builds an Options from defaults, the D2TXT_* environment and an
// optional configuration file. An empty path skips the file entirely.
func Load(path string) (*Options, error) {
	v := viper.New()

	defaults := DefaultOptions()
	v.SetDefault("dedupe", defaults.Dedupe)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("encoding", defaults.Encoding)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_encoding", defaults.LogEncoding)

	v.SetEnvPrefix("D2TXT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to read config file").
				WithDetail("path", path)
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to decode configuration")
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Validate checks every option against its allowed values.
func (o *Options) Validate() error {
	switch o.Dedupe {
	case DedupeRename, DedupeReject:
	default:
		return errors.Newf(errors.ErrorTypeConfig, "invalid dedupe mode %q", o.Dedupe)
	}

	switch o.Format {
	case FormatAuto, FormatTOML, FormatINI:
	default:
		return errors.Newf(errors.ErrorTypeConfig, "invalid format %q", o.Format)
	}

	switch o.Encoding {
	case EncodingWindows949, EncodingUTF8:
	default:
		return errors.Newf(errors.ErrorTypeConfig, "invalid encoding %q", o.Encoding)
	}

	switch o.LogEncoding {
	case "console", "json":
	default:
		return errors.Newf(errors.ErrorTypeConfig, "invalid log encoding %q", o.LogEncoding)
	}

	return nil
}

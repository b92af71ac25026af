package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/d2modkit/d2txt/pkg/config"
	"github.com/d2modkit/d2txt/pkg/logger"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	var configFile string
	var flags cliFlags

	root := &cobra.Command{
		Use:   "d2txt",
		Short: "d2txt - Convert Diablo II TXT files to and from TOML/INI",
		Long: `d2txt converts tab-separated Diablo II game data files (TXT) to an
editor-friendly TOML or INI representation and back. The TOML form folds
families of related columns (MinDam/MaxDam, Skill1..Skill8, ...) into
nested values; both forms round-trip losslessly to the original TXT.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(configFile, cmd, &flags)
			if err != nil {
				return err
			}
			flags.opts = opts
			return logger.Init(logger.Config{
				Level:    opts.LogLevel,
				Encoding: opts.LogEncoding,
			})
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to a configuration file (optional)")
	root.PersistentFlags().StringVar(&flags.format, "format", config.FormatAuto, "Source format: toml, ini or auto (by file extension)")
	root.PersistentFlags().StringVar(&flags.dedupe, "dedupe", config.DedupeRename, "Duplicate column policy: rename or reject")
	root.PersistentFlags().StringVar(&flags.encoding, "encoding", config.EncodingWindows949, "TXT file text encoding: windows-949 or utf-8")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("d2txt v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "compile <source> <target> [<source> <target> ...]",
		Short: "Compile TOML/INI files to tabbed TXT files",
		Long: `Compile one or more TOML or INI files to tabbed TXT files. Arguments
are source/target pairs; conversion stops at the first failing pair.`,
		Args: pairedArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()
			return convertPairs(args, flags.opts, compileFile)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "decompile <source> <target> [<source> <target> ...]",
		Short: "Decompile tabbed TXT files to TOML/INI files",
		Long: `Decompile one or more tabbed TXT files to TOML or INI files. Arguments
are source/target pairs; conversion stops at the first failing pair.`,
		Args: pairedArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()
			return convertPairs(args, flags.opts, decompileFile)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cliFlags holds the raw persistent flag values and, after PersistentPreRunE,
// the merged Options.
type cliFlags struct {
	format   string
	dedupe   string
	encoding string
	logLevel string
	opts     *config.Options
}

// pairedArgs requires an even, non-zero number of positional arguments.
func pairedArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args)%2 != 0 {
		return fmt.Errorf("arguments must be <source> <target> pairs, got %d argument(s)", len(args))
	}
	return nil
}

// loadOptions merges the configuration sources: defaults, environment,
// optional config file, then explicitly set command-line flags on top.
func loadOptions(configFile string, cmd *cobra.Command, flags *cliFlags) (*config.Options, error) {
	opts, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	pf := cmd.Flags()
	if pf.Changed("format") {
		opts.Format = flags.format
	}
	if pf.Changed("dedupe") {
		opts.Dedupe = flags.dedupe
	}
	if pf.Changed("encoding") {
		opts.Encoding = flags.encoding
	}
	if pf.Changed("log-level") {
		opts.LogLevel = flags.logLevel
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

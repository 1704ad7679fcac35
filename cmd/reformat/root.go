package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	sstars "github.com/amaurea/s-stars"
	"github.com/amaurea/s-stars/internal/config"
	"github.com/amaurea/s-stars/internal/logging"
)

type rootFlags struct {
	format   string
	config   string
	schema   int
	workers  int
	summary  string
	logLevel string
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:           "reformat [-f format] [params.txt] [ofile]",
		Short:         "Render orbital element tables with periapsis distances and speeds",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          positionalArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, &flags)
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	bindFlags(rootCmd.Flags(), &flags)
	return rootCmd
}

func bindFlags(fs *pflag.FlagSet, flags *rootFlags) {
	fs.StringVarP(&flags.format, "format", "f", "ascii", "Output format: ascii, html or wiki")
	fs.StringVarP(&flags.config, "config", "c", "", "Configuration file path (TOML)")
	fs.IntVar(&flags.schema, "schema", 1, "Input schema version: 1 (20 columns) or 2 (21 columns)")
	fs.IntVar(&flags.workers, "workers", 1, "Rows derived in parallel per batch")
	fs.StringVar(&flags.summary, "summary", "", "Print run statistics to stderr: table, yaml or json")
	fs.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.VarP(helpFlag{}, "help", "h", "Print usage and exit")
	fs.Lookup("help").NoOptDefVal = "true"
}

// helpFlag takes the place of cobra's help flag so that -h and --help are
// usage errors like any other unsupported flag.
type helpFlag struct{}

func (helpFlag) String() string   { return "false" }
func (helpFlag) Type() string     { return "bool" }
func (helpFlag) Set(string) error { return errHelpRequested }

func positionalArgs(_ *cobra.Command, args []string) error {
	if len(args) > 2 {
		return &usageError{err: fmt.Errorf("accepts at most 2 args, received %d", len(args))}
	}
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return &usageError{err: fmt.Errorf("unknown flag %q", arg)}
		}
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string, flags *rootFlags) error {
	cfg, err := loadConfig(cmd.Flags(), flags)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: stderr,
	})
	if err != nil {
		return err
	}
	logger = logging.NewComponentLogger(logger, "reformat")

	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		logger.Warn("reading orbital elements from a terminal; end input with Ctrl-D")
	}

	out, closeOut, err := openOutput(cmd, args)
	if err != nil {
		return err
	}

	opts.Logger = logger
	opts.Diagnostics = stderr
	stats, runErr := sstars.Convert(cmd.Context(), in, out, opts)
	if err := closeOut(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close output: %w", err)
	}
	if runErr != nil {
		return runErr
	}

	if cfg.Summary != "" {
		format, err := sstars.ParseSummaryFormat(cfg.Summary)
		if err != nil {
			return err
		}
		return sstars.WriteSummary(stderr, format, stats)
	}
	return nil
}

// loadConfig layers explicitly set flags over the file and environment
// configuration. A bad -f or --schema value is a usage error.
func loadConfig(fs *pflag.FlagSet, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}
	if fs.Changed("format") {
		if _, err := sstars.ParseFormat(flags.format); err != nil {
			return nil, &usageError{err: err}
		}
		cfg.Format = flags.format
	}
	if fs.Changed("schema") {
		if _, err := sstars.ParseSchema(flags.schema); err != nil {
			return nil, &usageError{err: err}
		}
		cfg.SchemaVersion = flags.schema
	}
	if fs.Changed("workers") {
		cfg.Workers = flags.workers
	}
	if fs.Changed("summary") {
		cfg.Summary = flags.summary
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) < 1 {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, &openError{path: args[0], mode: "reading", err: err}
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(cmd *cobra.Command, args []string) (io.Writer, func() error, error) {
	if len(args) < 2 {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(args[1])
	if err != nil {
		return nil, nil, &openError{path: args[1], mode: "writing", err: err}
	}
	return f, f.Close, nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

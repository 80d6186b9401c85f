package main

import (
	"os"

	typedflags "github.com/cardinalby/go-typed-flags"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typedflags",
		Short:         "Parse flag argument strings against a typed schema",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(newParseCmd())
	return rootCmd
}

type parseOptions struct {
	schemaConfig
	input     string
	hasInput  bool
	output    string
	normalize bool
	verbose   bool
}

func newParseCmd() *cobra.Command {
	opts := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [flags] [-- tokens...]",
		Short: "Parse the argument string given by --input or the tokens after --",
		Example: `  typedflags parse --bool l --int32 p --string d --input "-l -p 1080 -d /hola/mundo"
  typedflags parse -f schema.yaml -- -p -1080 -d -hola_mundo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.hasInput = cmd.Flags().Changed("input")
			if opts.hasInput && len(args) > 0 {
				return errors.New("--input and positional tokens can't be used together")
			}
			return runParse(cmd, opts, args)
		},
	}
	fs := cmd.Flags()
	opts.addFlags(fs)
	fs.StringVarP(&opts.input, "input", "i", "", "whitespace separated argument string")
	fs.StringVarP(&opts.output, "output", "o", formatYAML, "output format: yaml or json")
	fs.BoolVar(&opts.normalize, "normalize", false, "print the canonical argument string instead of values")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log parser state transitions")
	return cmd
}

func runParse(cmd *cobra.Command, opts *parseOptions, args []string) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	schema, err := opts.schema()
	if err != nil {
		return err
	}
	logger.Debug("schema loaded", zap.Strings("flags", schema.Names()))

	parser, err := typedflags.NewParser(schema, typedflags.WithLogger(logger))
	if err != nil {
		return err
	}
	var res typedflags.Results
	if opts.hasInput {
		res, err = parser.Parse(opts.input)
	} else {
		res, err = parser.ParseArgs(args)
	}
	if err != nil {
		return err
	}
	return printResults(cmd.OutOrStdout(), res, opts.output, opts.normalize)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.OutputPaths = []string{"stderr"}
		return cfg.Build()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/itsatony/go-weave"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// commonConfig holds the flags shared by the document commands
type commonConfig struct {
	inputPath  string
	configPath string
	outputPath string
	format     string
	verbose    bool
}

// Output formats accepted by each document command; the first is the default
var (
	renderFormats     = []string{OutputFormatText}
	interleaveFormats = []string{OutputFormatJSON}
	explainFormats    = []string{OutputFormatText, OutputFormatJSON}
)

// parseCommonFlags parses the document command flags. formats lists the
// accepted values of --format, the first being its default.
func parseCommonFlags(name string, args []string, formats []string) (*commonConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &commonConfig{}

	fs.StringVar(&cfg.inputPath, FlagInput, "", "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.StringVar(&cfg.format, FlagFormat, formats[0], "")
	fs.StringVar(&cfg.format, FlagFormatShort, formats[0], "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.inputPath == "" {
		return nil, errors.New(ErrMsgMissingInput)
	}
	if !slices.Contains(formats, cfg.format) {
		return nil, fmt.Errorf(FmtInvalidValue, ErrMsgInvalidFormat, cfg.format)
	}

	return cfg, nil
}

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to stdout or atomically replaces a file
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return atomic.WriteFile(path, bytes.NewReader(data))
}

// newLogger returns a console logger on stderr when verbose, else a no-op
func newLogger(verbose bool, stderr io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(stderr),
		zap.DebugLevel,
	)
	return zap.New(core)
}

// newWeaver builds a weaver from an optional config file
func newWeaver(configPath string, logger *zap.Logger) (*weave.Weaver, error) {
	opts := []weave.Option{weave.WithLogger(logger)}
	if configPath != "" {
		cfg, err := weave.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfgOpts, err := cfg.Options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, cfgOpts...)
		logger.Debug(LogMsgConfigLoaded, zap.String(LogFieldPath, configPath))
	}
	return weave.New(opts...)
}

// loadDocument reads and decodes the input document
func loadDocument(path string, stdin io.Reader, logger *zap.Logger) (*weave.Document, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}
	doc, err := weave.ParseDocument(data)
	if err != nil {
		return nil, err
	}
	logger.Debug(LogMsgDocumentDecoded, zap.Int(LogFieldSegments, len(doc.Segments)))
	return doc, nil
}

// prepare resolves the logger, weaver and document for a document command.
// It returns a non-zero exit code when any step fails.
func prepare(cfg *commonConfig, stdin io.Reader, stderr io.Writer) (*weave.Weaver, *weave.Document, int) {
	logger := newLogger(cfg.verbose, stderr)

	w, err := newWeaver(cfg.configPath, logger)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidConfig, err)
		return nil, nil, ExitCodeInputError
	}

	doc, err := loadDocument(cfg.inputPath, stdin, logger)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidDocument, err)
		return nil, nil, ExitCodeInputError
	}

	return w, doc, ExitCodeSuccess
}

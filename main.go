package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mcncl/rdjson/internal/analyzer"
	"github.com/mcncl/rdjson/internal/config"
	"github.com/mcncl/rdjson/internal/errors"
	"github.com/mcncl/rdjson/internal/formatter"
	"github.com/mcncl/rdjson/internal/generator"
	"github.com/mcncl/rdjson/internal/logger"
	"github.com/mcncl/rdjson/internal/models"
	"github.com/mcncl/rdjson/internal/parser"
	"github.com/op/go-logging"
)

// CLI defines the command-line interface
type CLI struct {
	Input              string `help:"Path to the input document. If not specified, reads from stdin." short:"i" type:"path"`
	Output             string `help:"Path to the output file. If not specified, writes to stdout." short:"o" type:"path"`
	Mode               string `help:"Output mode: ${modes}." short:"m" placeholder:"MODE"`
	Package            string `help:"Package name for generated structs." short:"p"`
	RootName           string `help:"Name for the root struct." short:"r"`
	MaxDepth           int    `help:"Deepest object/array nesting accepted (root is 1)." name:"max-depth"`
	ExtendedWhitespace bool   `help:"Also treat tabs and carriage returns as whitespace." name:"extended-whitespace"`
	NoFormat           bool   `help:"Do not gofmt generated structs." name:"no-format"`
	Config             string `help:"Path to a config file. Defaults to the nearest .rdjson.yml." short:"c" type:"path"`
	Debug              bool   `help:"Enable debug logging." short:"d"`
	LogFile            string `help:"Also write logs to this file, rotated." name:"log-file" type:"path"`
	Version            bool   `help:"Show version information." short:"v"`
}

// Context holds what a single run needs
type Context struct {
	Config *config.Config
	Input  string
	Output string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Version information
const (
	Version = "0.1.0"
)

var log = logging.MustGetLogger("rdjson")

func main() {
	var cli CLI
	app := kong.Must(&cli,
		kong.Name("rdjson"),
		kong.Description("Parse a JSON-like document and report on it"),
		kong.UsageOnError(),
		kong.Vars{"modes": strings.Join(config.Modes, ", ")},
	)

	_, err := app.Parse(os.Args[1:])
	app.FatalIfErrorf(err)

	if cli.Version {
		fmt.Printf("rdjson version %s\n", Version)
		return
	}

	os.Exit(execute(&cli, stdin(cli.Input), os.Stdout, os.Stderr))
}

// stdin returns nil when no document is piped in and no file was named
func stdin(input string) io.Reader {
	if input != "" {
		return nil
	}
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	return os.Stdin
}

// execute loads configuration, sets up logging and runs the selected mode.
// It returns the process exit status.
func execute(cli *CLI, in io.Reader, stdout, stderr io.Writer) int {
	ctx, closer, err := newContext(cli, in, stdout, stderr)
	if err == nil {
		defer func() { _ = closer.Close() }()
		err = run(ctx)
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s\n", errors.UserFriendlyError(err))
		_, _ = fmt.Fprintf(stderr, "\nFor help, run: rdjson --help\n")
		return 1
	}
	return 0
}

func newContext(cli *CLI, in io.Reader, stdout, stderr io.Writer) (*Context, io.Closer, error) {
	configPath := cli.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, config.Overrides{
		Mode:               cli.Mode,
		Package:            cli.Package,
		RootName:           cli.RootName,
		MaxDepth:           cli.MaxDepth,
		ExtendedWhitespace: cli.ExtendedWhitespace,
		Debug:              cli.Debug,
		LogFile:            cli.LogFile,
		NoFormat:           cli.NoFormat,
	})
	if err != nil {
		return nil, nil, errors.NewConfigError(err.Error(), err)
	}

	closer, err := logger.Setup(stderr, cfg.Log)
	if err != nil {
		return nil, nil, errors.NewConfigError(err.Error(), err)
	}
	if configPath != "" {
		log.Debugf("using config file %s", configPath)
	}

	return &Context{
		Config: cfg,
		Input:  cli.Input,
		Output: cli.Output,
		Stdin:  in,
		Stdout: stdout,
		Stderr: stderr,
	}, closer, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	doc, err := parseInput(ctx)
	if err != nil {
		return err
	}

	var out string
	gen := generator.NewGenerator()
	switch ctx.Config.Output.Mode {
	case config.ModeCheck:
		out = fmt.Sprintf("ok: %d entries\n", doc.Root.Len())
	case config.ModeTree:
		out = gen.GenerateTree(doc.Root)
	case config.ModeSummary:
		out = gen.GenerateSummary(analyzer.Summarize(doc.Root))
	case config.ModeStructs:
		out, err = generateStructs(ctx.Config, doc)
		if err != nil {
			return err
		}
	default:
		return errors.NewConfigError(fmt.Sprintf("unknown output mode '%s'", ctx.Config.Output.Mode), errors.ErrUnknownMode)
	}

	return writeOutput(ctx, out)
}

func generateStructs(cfg *config.Config, doc models.Document) (string, error) {
	result, err := analyzer.NewAnalyzerWithConfig(cfg).Analyze(doc, cfg.Output.RootName)
	if err != nil {
		return "", errors.NewAnalysisError("failed to analyze document structure", err)
	}

	code, err := generator.NewGenerator().GenerateStructs(result, cfg.Output.Package)
	if err != nil {
		return "", errors.NewGenerateError("failed to generate Go structs", err)
	}

	if cfg.Formatting.Enabled {
		code, err = formatter.NewFormatter().Format(code)
		if err != nil {
			return "", errors.NewFormatError("failed to format Go code", err)
		}
	}
	return code, nil
}

// parseInput reads the document from the input file or stdin
func parseInput(ctx *Context) (models.Document, error) {
	opts := parser.Options{
		MaxDepth:           ctx.Config.Parser.MaxDepth,
		ExtendedWhitespace: ctx.Config.Parser.ExtendedWhitespace,
	}

	if ctx.Input != "" {
		return parser.ParseFile(ctx.Input, opts)
	}
	if ctx.Stdin == nil {
		return models.Document{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}
	return parser.ParseReader(ctx.Stdin, opts)
}

// writeOutput writes out to the output file or stdout
func writeOutput(ctx *Context, out string) error {
	if ctx.Output != "" {
		if err := os.WriteFile(ctx.Output, []byte(out), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", ctx.Output), err)
		}
		_, _ = fmt.Fprintf(ctx.Stderr, "Output written to %s\n", ctx.Output)
		return nil
	}

	if _, err := io.WriteString(ctx.Stdout, out); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

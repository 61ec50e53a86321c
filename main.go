package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mcncl/jsonkit/internal/config"
	"github.com/mcncl/jsonkit/internal/diagnose"
	"github.com/mcncl/jsonkit/internal/diffview"
	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/escape"
	"github.com/mcncl/jsonkit/internal/formatter"
	"github.com/mcncl/jsonkit/internal/jsonc"
	"github.com/mcncl/jsonkit/internal/keys"
	"github.com/mcncl/jsonkit/internal/log"
	"github.com/mcncl/jsonkit/internal/models"
	"github.com/mcncl/jsonkit/internal/repair"
	"github.com/mcncl/jsonkit/internal/sorter"
	"github.com/mcncl/jsonkit/internal/workspace"
)

// CLI defines the command-line interface
var CLI struct {
	Config  string `help:"Path to a jsonkit config file. Defaults to the nearest .jsonkit.yml." type:"path"`
	Dialect string `help:"Input dialect: json or json5. Overrides the config file." short:"D"`
	Indent  int    `help:"Indent width for pretty-printed output. Overrides the config file."`
	Debug   bool   `help:"Enable debug logging." short:"d"`

	Fmt      FmtCmd      `cmd:"" help:"Pretty-print or minify a JSON document."`
	Validate ValidateCmd `cmd:"" help:"Validate JSON files or stdin, reporting error positions."`
	Repair   RepairCmd   `cmd:"" help:"Heuristically repair malformed JSON."`
	Sort     SortCmd     `cmd:"" help:"Recursively sort object keys."`
	Keys     KeysCmd     `cmd:"" help:"Recursively rename object keys to a case style."`
	Strip    StripCmd    `cmd:"" help:"Strip // and /* */ comments outside string literals."`
	Escape   EscapeCmd   `cmd:"" help:"Wrap a document as a JSON string literal."`
	Unescape UnescapeCmd `cmd:"" help:"Unwrap an escaped JSON string back into a document."`
	Diff     DiffCmd     `cmd:"" help:"Show a unified diff between two JSON documents."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// Context holds the runtime context shared by all commands
type Context struct {
	Config  *config.Config
	Dialect models.Dialect
	Indent  int
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("jsonkit"),
		kong.Description("A toolbox for validating, repairing and reshaping JSON documents"),
		kong.UsageOnError(),
	)

	appCtx, err := buildContext()
	if err == nil {
		err = ctx.Run(appCtx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// buildContext resolves config-file values and CLI overrides
func buildContext() (*Context, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}

	if CLI.Debug {
		log.SetLevel(log.LevelDebug)
	} else {
		log.SetLevel(cfg.LogLevel)
	}

	dialect := models.Dialect(cfg.Dialect)
	if CLI.Dialect != "" {
		dialect = models.Dialect(CLI.Dialect)
	}
	switch dialect {
	case models.DialectJSON, models.DialectJSON5:
	default:
		return nil, errors.NewInputError(fmt.Sprintf("unsupported dialect %q", dialect), errors.ErrUnknownDialect)
	}

	indent := cfg.Indent
	if CLI.Indent > 0 {
		indent = CLI.Indent
	}

	return &Context{Config: cfg, Dialect: dialect, Indent: indent}, nil
}

// readInput reads a document from a file, or from stdin when path is empty
func readInput(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewInputError(fmt.Sprintf("file '%s' not found", path), errors.ErrFileNotFound)
			}
			return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
		}
		return string(data), nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive and nothing was piped
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	return string(data), nil
}

// writeOutput writes text to a file or stdout
func writeOutput(path, text string) error {
	if path != "" {
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", path), err)
		}
		return nil
	}
	_, err := fmt.Println(strings.TrimRight(text, "\n"))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// FmtCmd pretty-prints or minifies a document
type FmtCmd struct {
	Input  string `help:"Path to input file. Reads stdin when omitted." arg:"" optional:""`
	Output string `help:"Path to output file. Writes to stdout when omitted." short:"o" type:"path"`
	Minify bool   `help:"Emit the document without insignificant whitespace." short:"m"`
}

// Run executes the fmt command
func (c *FmtCmd) Run(ctx *Context) error {
	text, err := readInput(c.Input)
	if err != nil {
		return err
	}
	f := formatter.NewFormatter(ctx.Indent)
	var out string
	if c.Minify {
		out, err = f.MinifyText(text, ctx.Dialect)
	} else {
		out, err = f.FormatText(text, ctx.Dialect)
	}
	if err != nil {
		return err
	}
	return writeOutput(c.Output, out)
}

// ValidateCmd validates files or stdin
type ValidateCmd struct {
	Paths    []string `help:"Files or doublestar globs to validate. Reads stdin when omitted." arg:"" optional:""`
	Parallel int      `help:"Maximum concurrent file reads." default:"8"`
	Quiet    bool     `help:"Suppress per-file OK lines." short:"q"`
}

// Run executes the validate command
func (c *ValidateCmd) Run(ctx *Context) error {
	if len(c.Paths) == 0 {
		text, err := readInput("")
		if err != nil {
			return err
		}
		if info := diagnose.Diagnose(text, ctx.Dialect); info != nil {
			return errors.NewParseError(formatInfo("stdin", info), errors.ErrInvalidJSON)
		}
		if !c.Quiet {
			fmt.Println("stdin: OK")
		}
		return nil
	}

	results, err := workspace.Validate(context.Background(), c.Paths, ctx.Dialect, c.Parallel)
	if err != nil {
		return err
	}

	invalid := 0
	for _, result := range results {
		if result.Err != nil {
			invalid++
			fmt.Println(formatInfo(result.Path, result.Err))
			continue
		}
		if !c.Quiet {
			fmt.Printf("%s: OK\n", result.Path)
		}
	}
	if invalid > 0 {
		return errors.NewParseError(fmt.Sprintf("%d of %d files failed validation", invalid, len(results)), errors.ErrInvalidJSON)
	}
	return nil
}

func formatInfo(name string, info *models.ParseErrorInfo) string {
	if info.Line == 0 {
		return fmt.Sprintf("%s: %s", name, info.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", name, info.Line, info.Column, info.Message)
}

// RepairCmd heuristically repairs malformed JSON
type RepairCmd struct {
	Input  string `help:"Path to input file. Reads stdin when omitted." arg:"" optional:""`
	Output string `help:"Path to output file. Writes to stdout when omitted." short:"o" type:"path"`
	Pretty bool   `help:"Pretty-print the repaired document." short:"p"`
}

// Run executes the repair command
func (c *RepairCmd) Run(ctx *Context) error {
	text, err := readInput(c.Input)
	if err != nil {
		return err
	}
	repaired, err := repair.Repair(text)
	if err != nil {
		return err
	}
	if c.Pretty {
		repaired, err = formatter.NewFormatter(ctx.Indent).FormatText(repaired, models.DialectJSON)
		if err != nil {
			return err
		}
	}
	return writeOutput(c.Output, repaired)
}

// SortCmd recursively sorts object keys
type SortCmd struct {
	Input  string `help:"Path to input file. Reads stdin when omitted." arg:"" optional:""`
	Output string `help:"Path to output file. Writes to stdout when omitted." short:"o" type:"path"`
	Order  string `help:"Key order: asc or desc. Overrides the config file."`
}

// Run executes the sort command
func (c *SortCmd) Run(ctx *Context) error {
	text, err := readInput(c.Input)
	if err != nil {
		return err
	}
	order := models.SortOrder(ctx.Config.SortOrder)
	if c.Order != "" {
		order = models.SortOrder(c.Order)
	}
	out, err := sorter.SortText(text, ctx.Dialect, order, ctx.Indent)
	if err != nil {
		return err
	}
	return writeOutput(c.Output, out)
}

// KeysCmd renames object keys to a case style
type KeysCmd struct {
	Style  string `help:"Target key style." enum:"camel,pascal,snake,kebab" required:""`
	Input  string `help:"Path to input file. Reads stdin when omitted." arg:"" optional:""`
	Output string `help:"Path to output file. Writes to stdout when omitted." short:"o" type:"path"`
}

// Run executes the keys command
func (c *KeysCmd) Run(ctx *Context) error {
	text, err := readInput(c.Input)
	if err != nil {
		return err
	}
	out, err := keys.TransformText(text, ctx.Dialect, keys.Style(c.Style), ctx.Indent)
	if err != nil {
		return err
	}
	return writeOutput(c.Output, out)
}

// StripCmd removes comments from JSON-with-comments text
type StripCmd struct {
	Input  string `help:"Path to input file. Reads stdin when omitted." arg:"" optional:""`
	Output string `help:"Path to output file. Writes to stdout when omitted." short:"o" type:"path"`
}

// Run executes the strip command
func (c *StripCmd) Run(ctx *Context) error {
	text, err := readInput(c.Input)
	if err != nil {
		return err
	}
	return writeOutput(c.Output, jsonc.StripComments(text))
}

// EscapeCmd wraps a document as a JSON string literal
type EscapeCmd struct {
	Input  string `help:"Path to input file. Reads stdin when omitted." arg:"" optional:""`
	Output string `help:"Path to output file. Writes to stdout when omitted." short:"o" type:"path"`
}

// Run executes the escape command
func (c *EscapeCmd) Run(ctx *Context) error {
	text, err := readInput(c.Input)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return errors.NewInputError("cannot escape an empty document", errors.ErrEmptyInput)
	}
	return writeOutput(c.Output, escape.Escape(strings.TrimRight(text, "\n")))
}

// UnescapeCmd unwraps an escaped JSON string into a document
type UnescapeCmd struct {
	Input  string `help:"Path to input file. Reads stdin when omitted." arg:"" optional:""`
	Output string `help:"Path to output file. Writes to stdout when omitted." short:"o" type:"path"`
}

// Run executes the unescape command
func (c *UnescapeCmd) Run(ctx *Context) error {
	text, err := readInput(c.Input)
	if err != nil {
		return err
	}
	value, err := escape.Unescape(strings.TrimSpace(text))
	if err != nil {
		return err
	}
	out, err := formatter.NewFormatter(ctx.Indent).Format(value)
	if err != nil {
		return err
	}
	return writeOutput(c.Output, out)
}

// DiffCmd diffs two documents
type DiffCmd struct {
	From   string `help:"Left-hand file." arg:""`
	To     string `help:"Right-hand file." arg:""`
	Sorted bool   `help:"Sort keys on both sides before diffing." short:"s"`
}

// Run executes the diff command
func (c *DiffCmd) Run(ctx *Context) error {
	fromText, err := readInput(c.From)
	if err != nil {
		return err
	}
	toText, err := readInput(c.To)
	if err != nil {
		return err
	}
	out, err := diffview.Unified(fromText, toText, diffview.Options{
		Dialect:   ctx.Dialect,
		Indent:    ctx.Indent,
		Sorted:    c.Sorted,
		FromLabel: c.From,
		ToLabel:   c.To,
	})
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	fmt.Print(out)
	return nil
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (c *VersionCmd) Run(ctx *Context) error {
	fmt.Printf("jsonkit version %s\n", Version)
	return nil
}

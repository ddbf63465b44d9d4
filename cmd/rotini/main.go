// Command rotini validates a command tree definition written in YAML or JSON and prints the
// normalized tree.
//
//	rotini --file app.yaml [--format json|yaml] [--lint] [--verbose] [--quiet] [--locale de]
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/napalu/goopt/v2"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/napalu/rotini"
	"github.com/napalu/rotini/i18n"
	"github.com/napalu/rotini/internal/lint"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type Config struct {
	File    string `goopt:"name:file;short:f;required:true;desc:Definition file to validate (YAML or JSON)"`
	Format  string `goopt:"name:format;short:o;default:json;desc:Output format (json or yaml)"`
	Lint    bool   `goopt:"name:lint;desc:Report duplicate subcommand identifiers and unsplittable example usages"`
	Verbose bool   `goopt:"name:verbose;desc:Log progress to stderr"`
	Quiet   bool   `goopt:"name:quiet;short:q;desc:Only validate, do not print the tree"`
	Locale  string `goopt:"name:locale;desc:Language of definition error messages (defaults to the --lang setting)"`
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run returns 0 on success, 1 for invalid definitions or lint findings and 2 for usage errors
func run(args []string, stdout, stderr io.Writer) int {
	cfg := &Config{}
	parser, err := goopt.NewParserFromStruct(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	parser.SetStdout(stdout)
	parser.SetStderr(stderr)

	if !parser.Parse(args) {
		for _, err := range parser.GetErrors() {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		parser.PrintUsageWithGroups(stderr)
		return 2
	}
	if parser.WasHelpShown() {
		return 0
	}

	logger := newLogger(stderr, cfg.Verbose)
	locale := cfg.Locale
	if locale == "" {
		locale = parser.GetLanguage().String()
	}
	setLanguage(logger, locale)

	format := strings.ToLower(cfg.Format)
	if format != formatJSON && format != formatYAML {
		fmt.Fprintf(stderr, "Error: unsupported format %q\n", cfg.Format)
		return 2
	}

	root, err := load(logger, cfg.File)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	code := 0
	if cfg.Lint {
		findings := lint.Check(root)
		for _, finding := range findings {
			logger.Warn("lint", "kind", finding.Kind.String(), "finding", finding.String())
		}
		if len(findings) > 0 {
			code = 1
		}
	}

	if cfg.Quiet {
		return code
	}
	if err := write(stdout, root, format); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return code
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setLanguage switches definition error messages to the closest supported language
func setLanguage(logger *slog.Logger, tag string) {
	bundle := i18n.Default()
	lang, err := bundle.MatchLanguage(tag)
	if err != nil {
		logger.Debug("keeping default message language", "requested", tag, "error", err)
		return
	}
	if err := bundle.SetDefaultLanguage(lang); err != nil {
		logger.Debug("keeping default message language", "requested", tag, "error", err)
		return
	}
	logger.Debug("message language", "lang", lang.String())
}

func load(logger *slog.Logger, path string) (*rotini.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("read definition", "file", path, "bytes", len(data))

	def, err := rotini.DecodeDefinition(data)
	if err != nil {
		return nil, err
	}

	root, err := rotini.New(def)
	if err != nil {
		return nil, err
	}

	commands := 0
	_ = root.Walk(func(_ []string, _ *rotini.Command) error {
		commands++
		return nil
	})
	logger.Debug("definition valid", "root", root.Name, "commands", commands)

	return root, nil
}

func write(w io.Writer, root *rotini.Command, format string) error {
	switch format {
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(root); err != nil {
			return err
		}
		return encoder.Close()
	default:
		encoder := json.NewEncoder(w)
		if isTerminal(w) {
			encoder.SetIndent("", "  ")
		}
		return encoder.Encode(root)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

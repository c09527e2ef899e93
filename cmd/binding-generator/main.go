// Package main provides the CLI entrypoint for binding-generator.
//
// binding-generator turns YAML declaration files into script-engine binding
// source:
//   - gen validates the declarations and writes one source file per declaration file
//   - check regenerates in memory and reports files on disk that are missing or stale
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"binding-generator/internal/common"
	"binding-generator/internal/gen"
	"binding-generator/internal/logger"
	"binding-generator/internal/model"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const usage = `usage: binding-generator <command> [flags]

Commands:
  gen     generate binding source from declaration files
  check   report generated files that are missing or out of date
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if common.IsEmpty(args) {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	switch args[0] {
	case "gen":
		return runGen(args[1:], stdout, stderr)
	case "check":
		return runCheck(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "binding-generator: unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// commonFlags are shared by gen and check.
type commonFlags struct {
	decls     stringList
	templates string
	out       string
	jobs      int
	verbose   bool
	logFormat string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.Var(&c.decls, "decl", "declaration file (repeatable; trailing arguments are declaration files too)")
	fs.StringVar(&c.templates, "templates", "", "directory holding *.cc.tpl templates (default: built-in)")
	fs.StringVar(&c.out, "out", ".", "output directory")
	fs.IntVar(&c.jobs, "j", 1, "number of declaration files generated in parallel")
	fs.BoolVar(&c.verbose, "v", false, "enable debug logging")
	fs.StringVar(&c.logFormat, "log-format", logger.FormatText, "log format: text or json")
}

func parseFlags(name string, args []string, stderr io.Writer, extra func(*flag.FlagSet)) (*commonFlags, error) {
	c := &commonFlags{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	c.register(fs)

	if extra != nil {
		extra(fs)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	c.decls = append(c.decls, fs.Args()...)
	if common.IsEmpty(c.decls) {
		return nil, errors.New("no declaration files given")
	}

	return c, nil
}

func (c *commonFlags) logger(stderr io.Writer) (*slog.Logger, error) {
	cfg := logger.DefaultConfig()
	cfg.Output = stderr
	cfg.Format = c.logFormat

	if c.verbose {
		cfg.Level = logger.LevelDebug
	}

	return logger.New(cfg)
}

func (c *commonFlags) generator(log *slog.Logger) (*gen.Generator, error) {
	var (
		templates *gen.TemplateSet
		err       error
	)

	if c.templates != "" {
		templates, err = gen.LoadTemplates(c.templates)
	} else {
		templates, err = gen.DefaultTemplates()
	}

	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	config := gen.DefaultGeneratorConfig()
	config.Concurrency = c.jobs
	config.Logger = log

	return gen.NewGenerator(config, templates), nil
}

func loadDecls(paths []string) ([]*model.File, error) {
	files := make([]*model.File, 0, len(paths))

	for _, p := range paths {
		f, err := model.LoadFile(p)
		if err != nil {
			return nil, err
		}

		files = append(files, f)
	}

	return files, nil
}

func runGen(args []string, stdout, stderr io.Writer) int {
	flags, err := parseFlags("gen", args, stderr, nil)
	if err != nil {
		return usageError(stderr, err)
	}

	log, err := flags.logger(stderr)
	if err != nil {
		return usageError(stderr, err)
	}

	g, err := flags.generator(log)
	if err != nil {
		return failure(stderr, err)
	}

	decls, err := loadDecls(flags.decls)
	if err != nil {
		return failure(stderr, err)
	}

	files, genErr := g.Generate(decls)

	// Whatever generated cleanly is still written.
	if err := gen.WriteFiles(files, flags.out); err != nil {
		return failure(stderr, err)
	}

	log.Info("generated files", "out", flags.out,
		"files", common.Map(files, func(f gen.GeneratedFile) string { return f.Filename }))

	for _, f := range files {
		fmt.Fprintln(stdout, f.Filename)
	}

	if genErr != nil {
		return failure(stderr, genErr)
	}

	return exitOK
}

func runCheck(args []string, stdout, stderr io.Writer) int {
	var dump bool

	flags, err := parseFlags("check", args, stderr, func(fs *flag.FlagSet) {
		fs.BoolVar(&dump, "dump", false, "print the parsed declaration model")
	})
	if err != nil {
		return usageError(stderr, err)
	}

	log, err := flags.logger(stderr)
	if err != nil {
		return usageError(stderr, err)
	}

	g, err := flags.generator(log)
	if err != nil {
		return failure(stderr, err)
	}

	decls, err := loadDecls(flags.decls)
	if err != nil {
		return failure(stderr, err)
	}

	ok := true

	for _, f := range decls {
		if dump {
			fmt.Fprint(stdout, spew.Sdump(f))
		}

		diags := model.ValidateFile(f)
		for _, w := range diags.Warnings {
			fmt.Fprintf(stdout, "%s: warning: %s\n", f.Name, w)
		}

		for _, e := range diags.Errors {
			fmt.Fprintf(stdout, "%s: error: %s\n", f.Name, e)
		}

		ok = ok && diags.IsValid()
	}

	files, genErr := g.Generate(decls)
	if genErr != nil {
		ok = false
	}

	stale, err := gen.CheckFiles(files, flags.out)
	if err != nil {
		return failure(stderr, err)
	}

	for _, s := range stale {
		ok = false

		if s.Missing {
			fmt.Fprintf(stdout, "%s: missing\n", s.Filename)
			continue
		}

		fmt.Fprintf(stdout, "%s: out of date\n%s", s.Filename, s.Diff)
	}

	if !ok {
		return exitFailure
	}

	fmt.Fprintf(stdout, "%d file(s) up to date\n", len(files))

	return exitOK
}

func usageError(stderr io.Writer, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	fmt.Fprintf(stderr, "binding-generator: %v\n", err)

	return exitUsage
}

func failure(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "binding-generator: %v\n", err)
	return exitFailure
}

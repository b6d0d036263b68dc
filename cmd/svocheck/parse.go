package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/svocheck/config"
	"github.com/revelaction/svocheck/render"
)

// CommonOptions are the flags of the commands that analyze sentences
type CommonOptions struct {
	ConfigPath string
	Parser     string
}

// Option structs for subcommands that have flags
type CheckOptions struct {
	CommonOptions
	Format  string
	Tree    bool
	NoColor bool
}

type TreeOptions struct {
	CommonOptions
	SVG bool
}

type ReplOptions struct {
	CommonOptions
	NoColor bool
}

type ServeOptions struct {
	CommonOptions
	Addr string
}

type ImportOptions struct {
	From string
	To   string
}

type StatOptions struct {
	Corpus string
}

type CategoriesOptions struct {
	Markdown bool
	NoColor  bool
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

func backends() []string {
	return []string{config.BackendSpacy, config.BackendGcloud, config.BackendStore}
}

func addCommonFlags(fs *flag.FlagSet, opts *CommonOptions) {
	defaultConfig := os.Getenv("SVOCHECK_CONFIG")
	if defaultConfig == "" {
		defaultConfig = config.DefaultFile
	}

	fs.StringVar(&opts.ConfigPath, "config", defaultConfig, "Path to the YAML configuration file")

	parserFlag := &enumFlag{allowed: backends(), value: &opts.Parser}
	fs.Var(parserFlag, "parser", "Parser backend: spacy, gcloud or store (overrides the configuration)")
	fs.Var(parserFlag, "p", "alias for -parser")
}

// parseFlags parses args, printing the usage to the right stream on error
func parseFlags(fs *flag.FlagSet, args []string, ui UI) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}

	return nil
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("svocheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := parseFlags(fs, args, ui); err != nil {
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parseCheckArgs(args []string, ui UI) (CheckOptions, string, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts CheckOptions
	addCommonFlags(fs, &opts.CommonOptions)

	opts.Format = render.Defaultformat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Output format: text or json")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.BoolVar(&opts.Tree, "tree", false, "Show the dependency tree")
	fs.BoolVar(&opts.Tree, "t", false, "alias for -tree")

	fs.BoolVar(&opts.NoColor, "no-color", false, "Show the sentence without formatting (color)")
	fs.BoolVar(&opts.NoColor, "c", false, "alias for -no-color")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s check [options] <sentence>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Check the subject, verb and object of a sentence and show feedback.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, "", err
	}

	sentence := sentenceArg(fs.Args())
	if sentence == "" {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("check command requires a sentence")
	}

	return opts, sentence, nil
}

func parseTreeArgs(args []string, ui UI) (TreeOptions, string, error) {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts TreeOptions
	addCommonFlags(fs, &opts.CommonOptions)
	fs.BoolVar(&opts.SVG, "svg", false, "Output the tree as SVG markup")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s tree [options] <sentence>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show the dependency tree of a sentence.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, "", err
	}

	sentence := sentenceArg(fs.Args())
	if sentence == "" {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("tree command requires a sentence")
	}

	return opts, sentence, nil
}

func parseReplArgs(args []string, ui UI) (ReplOptions, error) {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ReplOptions
	addCommonFlags(fs, &opts.CommonOptions)
	fs.BoolVar(&opts.NoColor, "no-color", false, "Show sentences without formatting (color)")
	fs.BoolVar(&opts.NoColor, "c", false, "alias for -no-color")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s repl [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive check mode.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		return opts, errors.New("repl command takes no arguments")
	}

	return opts, nil
}

func parseServeArgs(args []string, ui UI) (ServeOptions, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ServeOptions
	addCommonFlags(fs, &opts.CommonOptions)
	fs.StringVar(&opts.Addr, "addr", "", "Listen address (overrides the configuration)")
	fs.StringVar(&opts.Addr, "a", "", "alias for -addr")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s serve [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Serve the JSON HTTP API.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		return opts, errors.New("serve command takes no arguments")
	}

	return opts, nil
}

func parseImportArgs(args []string, ui UI) (ImportOptions, error) {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportOptions
	fs.StringVar(&opts.To, "db", os.Getenv("SVOCHECK_DB"), "Path to the SQLite parse database")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import [options] <dir>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Import the parsed docs of a directory into the SQLite parse database.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.To == "" {
		return opts, errors.New("Database must be specified via -db or SVOCHECK_DB")
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("import command requires a doc directory")
	}

	opts.From = fs.Arg(0)

	info, err := os.Stat(opts.From)
	if err != nil || !info.IsDir() {
		return opts, fmt.Errorf("Doc directory not found: %s", opts.From)
	}

	return opts, nil
}

func parseCategoriesArgs(args []string, ui UI) (CategoriesOptions, error) {
	fs := flag.NewFlagSet("categories", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts CategoriesOptions
	fs.BoolVar(&opts.Markdown, "markdown", false, "Print the full feedback message of each category")
	fs.BoolVar(&opts.Markdown, "m", false, "alias for -markdown")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Print without formatting (color)")
	fs.BoolVar(&opts.NoColor, "c", false, "alias for -no-color")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s categories [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List the feedback categories.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	return opts, nil
}

func parseStatArgs(args []string, ui UI) (StatOptions, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	fs.StringVar(&opts.Corpus, "corpus", os.Getenv("SVOCHECK_CORPUS"), "Path to the directory of parsed docs")
	fs.StringVar(&opts.Corpus, "d", os.Getenv("SVOCHECK_CORPUS"), "alias for -corpus")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show the feedback categories of every sentence of a corpus.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.Corpus == "" {
		return opts, errors.New("Corpus must be specified via -corpus or SVOCHECK_CORPUS")
	}

	return opts, nil
}

func parseBashArgs(args []string, ui UI) error {
	fs := flag.NewFlagSet("bash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s bash\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Output bash completion script.\n")
	}

	return parseFlags(fs, args, ui)
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs.Args(), nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Subject, verb and object order checker for English sentences\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  check       Check a sentence and show feedback.\n")
		_, _ = fmt.Fprintf(output, "  tree        Show the dependency tree of a sentence.\n")
		_, _ = fmt.Fprintf(output, "  repl        Enter interactive check mode.\n")
		_, _ = fmt.Fprintf(output, "  serve       Serve the JSON HTTP API.\n")
		_, _ = fmt.Fprintf(output, "  import      Import parsed docs into the SQLite parse database.\n")
		_, _ = fmt.Fprintf(output, "  categories  List the feedback categories.\n")
		_, _ = fmt.Fprintf(output, "  stat        Show feedback statistics of a corpus.\n")
		_, _ = fmt.Fprintf(output, "  version     Show version.\n")
		_, _ = fmt.Fprintf(output, "  bash        Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  help        Show help for a command.\n")
	}
}

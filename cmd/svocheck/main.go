package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/revelaction/svocheck/feedback"
	"github.com/revelaction/svocheck/query"
	"github.com/revelaction/svocheck/render"
	"github.com/revelaction/svocheck/render/tree"
	"github.com/revelaction/svocheck/server"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	cmd, args, err := parseMainArgs(os.Args[1:], ui)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runCommand(ctx, cmd, args, ui); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "svocheck: %v\n", err)
}

func runCommand(ctx context.Context, cmd string, args []string, ui UI) error {
	switch cmd {
	case "help":
		if len(args) > 0 {
			return runCommand(ctx, args[0], []string{"--help"}, ui)
		}
		fs := flag.NewFlagSet("svocheck", flag.ContinueOnError)
		fs.SetOutput(ui.Out)
		setupUsage(fs)
		fs.Usage()
		return nil

	case "check":
		opts, sentence, err := parseCheckArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return checkCommand(ctx, opts, sentence, ui)

	case "tree":
		opts, sentence, err := parseTreeArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return treeCommand(ctx, opts, sentence, ui)

	case "repl":
		opts, err := parseReplArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return replCommand(ctx, opts, ui)

	case "serve":
		opts, err := parseServeArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return serveCommand(ctx, opts, ui)

	case "import":
		opts, err := parseImportArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return importCommand(opts, ui)

	case "categories":
		opts, err := parseCategoriesArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return categoriesCommand(opts, ui)

	case "stat":
		opts, err := parseStatArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return statCommand(opts, ui)

	case "version":
		return versionCommand(ui)

	case "bash":
		if err := parseBashArgs(args, ui); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return bashCommand(ui)

	case "complete":
		completeArgs, err := parseCompleteArgs(args, ui)
		if err != nil {
			return err
		}
		return completeCommand(completeArgs, ui)
	}

	return fmt.Errorf("unknown command: %s", cmd)
}

func checkCommand(ctx context.Context, opts CheckOptions, sentence string, ui UI) error {
	a, err := newApp(opts.CommonOptions)
	if err != nil {
		return err
	}
	defer a.Close()

	an, err := a.analyzer(ctx)
	if err != nil {
		return err
	}

	res, err := an.Analyze(ctx, sentence)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		render.NewJSONRenderer(ui.Out).Render(res)
		return nil
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor
	r.HasTree = opts.Tree
	r.Render(res)
	return nil
}

func treeCommand(ctx context.Context, opts TreeOptions, sentence string, ui UI) error {
	a, err := newApp(opts.CommonOptions)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.parser(ctx)
	if err != nil {
		return err
	}

	tokens, err := p.Parse(ctx, sentence)
	if err != nil {
		return err
	}

	if opts.SVG {
		_, err = fmt.Fprint(ui.Out, tree.SVG(tokens))
		return err
	}

	_, err = fmt.Fprint(ui.Out, tree.Text(tokens))
	return err
}

// replCommand presents the interactive check loop
func replCommand(ctx context.Context, opts ReplOptions, ui UI) error {
	a, err := newApp(opts.CommonOptions)
	if err != nil {
		return err
	}
	defer a.Close()

	an, err := a.analyzer(ctx)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor

	h := query.NewHandler(an, r, ui.Out)
	h.Sentences, err = a.corpusSentences()
	if err != nil {
		return err
	}

	return h.Run(ctx)
}

func serveCommand(ctx context.Context, opts ServeOptions, ui UI) error {
	a, err := newApp(opts.CommonOptions)
	if err != nil {
		return err
	}
	defer a.Close()

	if opts.Addr != "" {
		a.cfg.Server.Addr = opts.Addr
	}

	an, err := a.analyzer(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "✍  serving on %s\n", a.cfg.Server.Addr)
	return server.New(an, a.cfg.Server, a.logger).Run(ctx)
}

func categoriesCommand(opts CategoriesOptions, ui UI) error {
	if !opts.Markdown {
		r := render.NewRenderer(ui.Out)
		r.HasColor = !opts.NoColor
		r.Catalog(feedback.Catalog())
		return nil
	}

	for _, e := range feedback.Catalog() {
		_, err := fmt.Fprintf(ui.Out, "## %s\n\n%s\n\n", e.Category, e.Markdown())
		if err != nil {
			return err
		}
	}

	return nil
}

// sentenceArg joins the positional arguments of a command into a sentence
func sentenceArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

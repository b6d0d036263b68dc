// Package query is the interactive sentence check loop.
package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/svocheck/analyzer"
	"github.com/revelaction/svocheck/feedback"
	"github.com/revelaction/svocheck/render"
)

const (
	completionThreshold = 2

	// commandPrefix is the character in the prompt that prefixes a REPL
	// command
	commandPrefix = ":"

	quit = "quit"
)

// errQuit ends the loop
var errQuit = errors.New("quit")

var replCommands = []prompt.Suggest{
	{Text: ":tree", Description: "toggle the dependency tree"},
	{Text: ":color", Description: "toggle colors"},
	{Text: ":format", Description: "next output format"},
	{Text: ":categories", Description: "list the feedback categories"},
	{Text: quit, Description: "leave"},
}

type Handler struct {
	Analyzer *analyzer.Analyzer
	Renderer *render.Renderer
	JSON     *render.JSONRenderer

	// Format is one of render.SupportedFormats
	Format string

	// Sentences are offered as completions
	Sentences []string

	W io.Writer
}

func NewHandler(a *analyzer.Analyzer, r *render.Renderer, w io.Writer) *Handler {
	return &Handler{
		Analyzer: a,
		Renderer: r,
		JSON:     render.NewJSONRenderer(w),
		Format:   render.Defaultformat,
		W:        w,
	}
}

func (h *Handler) Run(ctx context.Context) error {

	fmt.Fprintln(h.W, "🔑 Ctrl+F: next Format, Ctrl+T: toggle tree, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      ✍  ", h.completer(),
			prompt.OptionTitle("svocheck repl"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.NextFormat()
					fmt.Fprintln(h.W, "Format set to: "+h.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlT,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.HasTree = !h.Renderer.HasTree
					fmt.Fprintf(h.W, "Tree set to %t\n", h.Renderer.HasTree)
				}}),
		)

		err := h.Eval(ctx, in)
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			fmt.Fprintf(h.W, "✍  %v\n", err)
			continue
		}

		history = append(history, in)
	}
}

// Eval runs one line of input: a REPL command or a sentence to check.
func (h *Handler) Eval(ctx context.Context, in string) error {
	in = strings.TrimSpace(in)

	switch in {
	case "":
		return nil
	case quit:
		return errQuit
	}

	if strings.HasPrefix(in, commandPrefix) {
		return h.command(in)
	}

	res, err := h.Analyzer.Analyze(ctx, in)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		h.JSON.Render(res)
		return nil
	}

	h.Renderer.Render(res)
	return nil
}

func (h *Handler) command(in string) error {
	switch in {
	case ":tree":
		h.Renderer.HasTree = !h.Renderer.HasTree
		fmt.Fprintf(h.W, "Tree set to %t\n", h.Renderer.HasTree)
	case ":color":
		h.Renderer.HasColor = !h.Renderer.HasColor
		fmt.Fprintf(h.W, "Color set to %t\n", h.Renderer.HasColor)
	case ":format":
		h.NextFormat()
		fmt.Fprintln(h.W, "Format set to: "+h.Format)
	case ":categories":
		h.Renderer.Catalog(feedback.Catalog())
	default:
		return fmt.Errorf("unknown command %s", in)
	}

	return nil
}

// NextFormat sets Format to the next one, following the
// render.SupportedFormats() order.
func (h *Handler) NextFormat() {

	supported := render.SupportedFormats()
	for i, format := range supported {
		if format == h.Format {
			switch i {
			case len(supported) - 1:
				h.Format = supported[0]
			default:
				h.Format = supported[i+1]
			}

			return
		}
	}

	h.Format = supported[0]
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return h.suggest(in.TextBeforeCursor())
	}
}

func (h *Handler) suggest(befCursor string) []prompt.Suggest {
	s := []prompt.Suggest{}

	if len(befCursor) < completionThreshold {
		return s
	}

	if strings.HasPrefix(befCursor, commandPrefix) || strings.HasPrefix(quit, befCursor) {
		return prompt.FilterHasPrefix(replCommands, befCursor, false)
	}

	for _, sentence := range h.Sentences {
		if strings.HasPrefix(sentence, befCursor) {
			s = append(s, prompt.Suggest{Text: sentence})
		}
	}

	return s
}

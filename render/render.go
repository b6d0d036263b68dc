package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/svocheck/analyzer"
	"github.com/revelaction/svocheck/feedback"
	"github.com/revelaction/svocheck/render/tree"
	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/svo"
)

const Defaultformat = "text"

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

// roleColors are the colors of the subject, verb and object tokens
var roleColors = map[svo.Role]string{
	svo.Subject: Teal,
	svo.Verb:    Green256,
	svo.Object:  Yellow256,
}

func SupportedFormats() []string {
	return []string{"text", "json"}
}

// Renderer writes analysis results for a terminal.
type Renderer struct {
	W io.Writer

	HasColor bool

	// HasTree adds the dependency tree of the sentence
	HasTree bool
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w}
}

// Render prints the sentence with its subject, verb and object highlighted,
// the roles found and the feedback message.
func (r *Renderer) Render(res analyzer.Result) {
	fmt.Fprintf(r.W, "%s\n", r.SentenceString(res.Tokens, res.Triple))
	fmt.Fprintf(r.W, "%s\n", r.roles(res.Triple))
	fmt.Fprintf(r.W, "%s %s\n", r.label(res.Category), r.order(res.Order))

	if r.HasTree {
		fmt.Fprintf(r.W, "\n%s", tree.Text(res.Tokens))
	}

	fmt.Fprintf(r.W, "\n%s\n", res.Message)
}

// SentenceString returns the text of the sentence, coloring the tokens that
// fill a role of the triple.
func (r *Renderer) SentenceString(s []sent.Token, triple svo.Triple) string {
	return sent.TextFunc(s, func(t sent.Token) string {
		return r.colorToken(t, triple)
	})
}

func (r *Renderer) colorToken(token sent.Token, triple svo.Triple) string {
	if !r.HasColor {
		return token.Text
	}

	if color, ok := roleColors[triple.RoleOf(token.Index)]; ok {
		return color + token.Text + Off
	}

	return token.Text
}

func (r *Renderer) roles(triple svo.Triple) string {
	parts := []string{
		r.role(svo.Subject, triple.Subject),
		r.role(svo.Verb, triple.Verb),
		r.role(svo.Object, triple.Object),
	}

	return strings.Join(parts, "  ")
}

func (r *Renderer) role(role svo.Role, text string) string {
	if text == "" {
		text = "-"
	}

	if r.HasColor && text != "-" {
		text = roleColors[role] + text + Off
	}

	return fmt.Sprintf("%s: %s", role, text)
}

func (r *Renderer) label(c feedback.Category) string {
	l := fmt.Sprintf("[%s]", c)
	if !r.HasColor {
		return l
	}

	switch c {
	case feedback.CorrectOrder:
		return Green + l + Off
	case feedback.PassiveVoice:
		return Yellow + l + Off
	}

	return Red + l + Off
}

func (r *Renderer) order(o svo.Order) string {
	if !r.HasColor {
		return o.String()
	}

	return Grey256 + o.String() + Off
}

// Catalog prints the feedback catalog, one category per line.
func (r *Renderer) Catalog(entries []feedback.Entry) {
	for _, e := range entries {
		name := fmt.Sprintf("%-24s", e.Category)
		if r.HasColor {
			name = Yellow256 + name + Off
		}

		fmt.Fprintf(r.W, "%s %s\n", name, e.Title)
	}
}

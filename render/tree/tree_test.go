package tree

import (
	"strings"
	"testing"

	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/sentence/fixture"
)

func TestText(t *testing.T) {
	got := Text(fixture.Parses["John threw the ball."])
	want := "threw (ROOT, VERB)\n" +
		"  John (nsubj, PROPN)\n" +
		"  ball (dobj, NOUN)\n" +
		"    the (det, DET)\n" +
		"  . (punct, PUNCT)\n"

	if got != want {
		t.Errorf("unexpected tree:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextCycle(t *testing.T) {
	tokens := []sent.Token{
		{Index: 0, Head: 1, Text: "a", Dep: "x", Pos: "X"},
		{Index: 1, Head: 0, Text: "b", Dep: "y", Pos: "X"},
	}

	got := Text(tokens)
	if strings.Count(got, "\n") != 2 {
		t.Errorf("expected every token once, got:\n%s", got)
	}
}

func TestTextEmpty(t *testing.T) {
	if got := Text(nil); got != "" {
		t.Errorf("expected empty tree, got %q", got)
	}
}

func TestSVG(t *testing.T) {
	tokens := fixture.Parses["The cake was baked by Mary."]
	svg := SVG(tokens)

	if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("not an svg document: %q", svg)
	}

	// one arc per non root token
	if n := strings.Count(svg, `class="arc"`); n != len(tokens)-1 {
		t.Errorf("expected %d arcs, got %d", len(tokens)-1, n)
	}

	for _, label := range []string{">auxpass<", ">agent<", ">pobj<", ">Mary<"} {
		if !strings.Contains(svg, label) {
			t.Errorf("missing %s", label)
		}
	}
}

func TestSVGEscapes(t *testing.T) {
	tokens := []sent.Token{{Index: 0, Head: 0, Text: "<b>&", Pos: "X", Dep: "ROOT"}}
	svg := SVG(tokens)

	if strings.Contains(svg, "<b>&") || !strings.Contains(svg, "&lt;b&gt;&amp;") {
		t.Errorf("text not escaped: %s", svg)
	}
}

func TestSVGEmpty(t *testing.T) {
	if SVG(nil) != "" {
		t.Error("expected no markup for no tokens")
	}
}

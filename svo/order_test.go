package svo

import (
	"testing"

	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/sentence/fixture"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		text string
		want Order
	}{
		{"John threw the ball.", Active},
		{"The cake was baked by Mary.", Passive},
		{"I went to the park.", Incomplete},
		{"Run, jump and play!", Incomplete},
	}

	for _, c := range cases {
		tokens := fixture.Parses[c.text]
		if got := Check(tokens, Extract(tokens)); got != c.want {
			t.Errorf("%q: expected %s, got %s", c.text, c.want, got)
		}
	}
}

func TestCheckIncompleteIgnoresPassiveMarker(t *testing.T) {
	tokens := []sent.Token{
		{Index: 0, Text: "It", Pos: "PRON", Dep: "nsubjpass", Head: 2},
		{Index: 1, Text: "was", Pos: "AUX", Dep: "auxpass", Head: 2},
		{Index: 2, Text: "done", Pos: "VERB", Dep: "ROOT", Head: 2},
	}

	if got := Check(tokens, Extract(tokens)); got != Incomplete {
		t.Fatalf("expected incomplete, got %s", got)
	}
}

func TestCheckUniversalDependencies(t *testing.T) {
	tokens := []sent.Token{
		{Index: 0, Text: "cake", Pos: "NOUN", Dep: "nsubj:pass", Head: 2},
		{Index: 1, Text: "was", Pos: "AUX", Dep: "aux:pass", Head: 2},
		{Index: 2, Text: "eaten", Pos: "VERB", Dep: "root", Head: 2},
		{Index: 3, Text: "crumbs", Pos: "NOUN", Dep: "obj", Head: 2},
	}

	if got := Check(tokens, Extract(tokens)); got != Passive {
		t.Fatalf("expected passive, got %s", got)
	}
}

func TestOrderMessage(t *testing.T) {
	for _, o := range []Order{Incomplete, Active, Passive} {
		if o.Message() == "" {
			t.Errorf("%s: empty message", o)
		}
	}
}

package svo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/sentence/fixture"
)

func TestExtractFixtures(t *testing.T) {
	cases := []struct {
		text string
		want Triple
	}{
		{"I went to the park.", Triple{Subject: "I", Verb: "went"}},
		{"John threw the ball.", Triple{Subject: "John", Verb: "threw", Object: "ball"}},
		{"The cake was baked by Mary.", Triple{Subject: "cake", Verb: "baked", Object: "Mary"}},
		{"She does not like coffee.", Triple{Subject: "She", Verb: "like", Object: "coffee"}},
		{"John and Mary went to the park.", Triple{Subject: "John", Verb: "went"}},
		{"The cat is happy.", Triple{Subject: "cat"}},
		{"Run, jump and play!", Triple{Verb: "Run"}},
		{"She gave him a book.", Triple{Subject: "She", Verb: "gave", Object: "him"}},
	}

	for _, c := range cases {
		got := Extract(fixture.Parses[c.text])
		if diff := cmp.Diff(c.want, got, cmpopts.IgnoreUnexported(Triple{})); diff != "" {
			t.Errorf("%q: triple mismatch (-want +got):\n%s", c.text, diff)
		}
	}
}

func TestExtractFirstMatchWins(t *testing.T) {
	tokens := []sent.Token{
		{Index: 0, Text: "Dogs", Pos: "NOUN", Dep: "nsubj", Head: 1},
		{Index: 1, Text: "chase", Pos: "VERB", Dep: "ROOT", Head: 1},
		{Index: 2, Text: "cats", Pos: "NOUN", Dep: "dobj", Head: 1},
		{Index: 3, Text: "and", Pos: "CCONJ", Dep: "cc", Head: 1},
		{Index: 4, Text: "birds", Pos: "NOUN", Dep: "nsubj", Head: 5},
		{Index: 5, Text: "watch", Pos: "VERB", Dep: "conj", Head: 1},
		{Index: 6, Text: "worms", Pos: "NOUN", Dep: "dobj", Head: 5},
	}

	got := Extract(tokens)
	if got.Subject != "Dogs" || got.Verb != "chase" || got.Object != "cats" {
		t.Fatalf("expected Dogs/chase/cats, got %s/%s/%s", got.Subject, got.Verb, got.Object)
	}
}

func TestExtractTokenTakesOneRole(t *testing.T) {
	// A verb token with a subject label (clausal subject) is consumed by the
	// subject test and never becomes the verb, even once the subject is set.
	tokens := []sent.Token{
		{Index: 0, Text: "He", Pos: "PRON", Dep: "nsubj", Head: 3},
		{Index: 1, Text: "running", Pos: "VERB", Dep: "csubj", Head: 3},
		{Index: 2, Text: "daily", Pos: "ADV", Dep: "advmod", Head: 1},
		{Index: 3, Text: "helps", Pos: "VERB", Dep: "ROOT", Head: 3},
		{Index: 4, Text: "him", Pos: "PRON", Dep: "dobj", Head: 3},
	}

	got := Extract(tokens)
	if got.Subject != "He" {
		t.Errorf("expected subject He, got %q", got.Subject)
	}

	if got.Verb != "helps" {
		t.Errorf("expected verb helps, got %q", got.Verb)
	}
}

func TestExtractEmpty(t *testing.T) {
	got := Extract(nil)
	if got.HasSubject() || got.HasVerb() || got.HasObject() {
		t.Fatalf("expected empty triple, got %+v", got)
	}
}

func TestRoleOf(t *testing.T) {
	triple := Extract(fixture.Parses["John threw the ball."])

	want := []Role{Subject, Verb, NoRole, Object, NoRole}
	for idx, r := range want {
		if got := triple.RoleOf(idx); got != r {
			t.Errorf("token %d: expected %s, got %s", idx, r, got)
		}
	}

	if got := (Triple{}).RoleOf(0); got != NoRole {
		t.Errorf("zero triple: expected none, got %s", got)
	}
}

func TestIsObjectPrepositional(t *testing.T) {
	tokens := fixture.Parses["I went to the park."]
	if IsObject(tokens, tokens[4]) {
		t.Error("object of 'to' must not be an object of the verb")
	}

	tokens = fixture.Parses["The cake was baked by Mary."]
	if !IsObject(tokens, tokens[5]) {
		t.Error("object of the passive agent must be an object")
	}
}

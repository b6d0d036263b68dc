// Package fixture holds en_core_web_sm parses of the sentences used across
// the test suites, so that parser dependent behavior is pinned in one place.
package fixture

import (
	"context"
	"fmt"
	"strings"

	sent "github.com/revelaction/svocheck/sentence"
)

// tok builds a token. Lemma is the lowercased text, which is good enough for
// the closed class words used here.
func tok(index int, text, pos, dep string, head, idx int) sent.Token {
	return sent.Token{
		Id:    index,
		Index: index,
		Head:  head,
		Text:  text,
		Lemma: strings.ToLower(text),
		Pos:   pos,
		Dep:   dep,
		Idx:   idx,
	}
}

// Parses maps a sentence to its tokens.
var Parses = map[string][]sent.Token{
	"I went to the park.": {
		tok(0, "I", "PRON", "nsubj", 1, 0),
		tok(1, "went", "VERB", "ROOT", 1, 2),
		tok(2, "to", "ADP", "prep", 1, 7),
		tok(3, "the", "DET", "det", 4, 10),
		tok(4, "park", "NOUN", "pobj", 2, 14),
		tok(5, ".", "PUNCT", "punct", 1, 18),
	},
	"John threw the ball.": {
		tok(0, "John", "PROPN", "nsubj", 1, 0),
		tok(1, "threw", "VERB", "ROOT", 1, 5),
		tok(2, "the", "DET", "det", 3, 11),
		tok(3, "ball", "NOUN", "dobj", 1, 15),
		tok(4, ".", "PUNCT", "punct", 1, 19),
	},
	"The cake was baked by Mary.": {
		tok(0, "The", "DET", "det", 1, 0),
		tok(1, "cake", "NOUN", "nsubjpass", 3, 4),
		tok(2, "was", "AUX", "auxpass", 3, 9),
		tok(3, "baked", "VERB", "ROOT", 3, 13),
		tok(4, "by", "ADP", "agent", 3, 19),
		tok(5, "Mary", "PROPN", "pobj", 4, 22),
		tok(6, ".", "PUNCT", "punct", 3, 26),
	},
	"She does not like coffee.": {
		tok(0, "She", "PRON", "nsubj", 3, 0),
		tok(1, "does", "AUX", "aux", 3, 4),
		tok(2, "not", "PART", "neg", 3, 9),
		tok(3, "like", "VERB", "ROOT", 3, 13),
		tok(4, "coffee", "NOUN", "dobj", 3, 18),
		tok(5, ".", "PUNCT", "punct", 3, 24),
	},
	"John and Mary went to the park.": {
		tok(0, "John", "PROPN", "nsubj", 3, 0),
		tok(1, "and", "CCONJ", "cc", 0, 5),
		tok(2, "Mary", "PROPN", "conj", 0, 9),
		tok(3, "went", "VERB", "ROOT", 3, 14),
		tok(4, "to", "ADP", "prep", 3, 19),
		tok(5, "the", "DET", "det", 6, 22),
		tok(6, "park", "NOUN", "pobj", 4, 26),
		tok(7, ".", "PUNCT", "punct", 3, 30),
	},
	"She quickly ate the cake.": {
		tok(0, "She", "PRON", "nsubj", 2, 0),
		tok(1, "quickly", "ADV", "advmod", 2, 4),
		tok(2, "ate", "VERB", "ROOT", 2, 12),
		tok(3, "the", "DET", "det", 4, 16),
		tok(4, "cake", "NOUN", "dobj", 2, 20),
		tok(5, ".", "PUNCT", "punct", 2, 24),
	},
	"The cat is happy.": {
		tok(0, "The", "DET", "det", 1, 0),
		tok(1, "cat", "NOUN", "nsubj", 2, 4),
		tok(2, "is", "AUX", "ROOT", 2, 8),
		tok(3, "happy", "ADJ", "acomp", 2, 11),
		tok(4, ".", "PUNCT", "punct", 2, 16),
	},
	"Run, jump and play!": {
		tok(0, "Run", "VERB", "ROOT", 0, 0),
		tok(1, ",", "PUNCT", "punct", 0, 3),
		tok(2, "jump", "VERB", "conj", 0, 5),
		tok(3, "and", "CCONJ", "cc", 2, 10),
		tok(4, "play", "VERB", "conj", 2, 14),
		tok(5, "!", "PUNCT", "punct", 0, 18),
	},
	"She gave him a book.": {
		tok(0, "She", "PRON", "nsubj", 1, 0),
		tok(1, "gave", "VERB", "ROOT", 1, 4),
		tok(2, "him", "PRON", "dative", 1, 9),
		tok(3, "a", "DET", "det", 4, 13),
		tok(4, "book", "NOUN", "dobj", 1, 15),
		tok(5, ".", "PUNCT", "punct", 1, 19),
	},
}

// Parse returns the tokens of a known sentence. It has the shape of
// parse.Func.
func Parse(_ context.Context, text string) ([]sent.Token, error) {
	tokens, ok := Parses[text]
	if !ok {
		return nil, fmt.Errorf("no fixture for %q", text)
	}

	return tokens, nil
}

// Doc wraps every fixture in a single Doc, in a stable order.
func Doc(title string) sent.Doc {
	doc := sent.Doc{Title: title}
	for _, text := range Sentences() {
		doc.Tokens = append(doc.Tokens, Parses[text])
	}

	return doc
}

// Sentences returns the fixture sentences in a stable order.
func Sentences() []string {
	return []string{
		"I went to the park.",
		"John threw the ball.",
		"The cake was baked by Mary.",
		"She does not like coffee.",
		"John and Mary went to the park.",
		"She quickly ate the cake.",
		"The cat is happy.",
		"Run, jump and play!",
		"She gave him a book.",
	}
}

package sentence

import (
	"strings"
	"unicode/utf8"
)

// Doc is a spaCy export: a titled collection of parsed sentences.
type Doc struct {
	Id int

	Title string

	Labels []string
	Tokens [][]Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	Id         int    `json:"id"`
	Head       int    `json:"head"`
	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// HeadToken returns the token the dependency arc of t points to. Head holds
// the sentence index of the head token. The root of a sentence is its own
// head.
func HeadToken(tokens []Token, t Token) (Token, bool) {
	for _, c := range tokens {
		if c.Index == t.Head {
			return c, true
		}
	}

	return Token{}, false
}

// Text rebuilds the surface string of a parsed sentence.
//
// When the tokens carry character offsets (idx), the original spacing is
// restored from them. Tokens sharing the same idx (parts of a multi token
// word) are written once. Without offsets the words are joined with a single
// space and punctuation is attached to the previous word.
func Text(tokens []Token) string {
	return TextFunc(tokens, func(t Token) string { return t.Text })
}

// TextFunc is like Text but writes word(t) for each token. Spacing is still
// computed from the token texts.
func TextFunc(tokens []Token, word func(Token) string) string {
	if len(tokens) == 0 {
		return ""
	}

	if !hasOffsets(tokens) {
		return joinWords(tokens, word)
	}

	var str strings.Builder
	first := tokens[0]
	str.WriteString(word(first))
	lastIdx := first.Idx
	lastLen := utf8.RuneCountInString(first.Text)

	for _, token := range tokens[1:] {
		diff := token.Idx - lastIdx
		if diff <= 0 {
			continue
		}

		if gap := diff - lastLen; gap > 0 {
			str.WriteString(strings.Repeat(" ", gap))
		}

		str.WriteString(word(token))
		lastIdx = token.Idx
		lastLen = utf8.RuneCountInString(token.Text)
	}

	return str.String()
}

func hasOffsets(tokens []Token) bool {
	for _, t := range tokens[1:] {
		if t.Idx > 0 {
			return true
		}
	}

	return false
}

func joinWords(tokens []Token, word func(Token) string) string {
	var str strings.Builder
	for i, t := range tokens {
		if i > 0 && t.Pos != "PUNCT" {
			str.WriteString(" ")
		}
		str.WriteString(word(t))
	}

	return str.String()
}

// Key normalizes a sentence text to the form used to index parses.
func Key(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

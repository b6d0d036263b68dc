package storage

import (
	"errors"

	sent "github.com/revelaction/svocheck/sentence"
)

// ErrReadOnly is returned by repositories that can not persist parses.
var ErrReadOnly = errors.New("parse repository is read only")

// ParseReader defines read operations for stored parses
type ParseReader interface {
	// Lookup returns the tokens stored for the sentence text. The text is
	// normalized with sentence.Key before lookup. ok is false if the
	// sentence was never stored.
	Lookup(text string) (tokens []sent.Token, ok bool, err error)

	// Len returns the number of stored sentences
	Len() (int, error)
}

// ParseWriter defines write operations for stored parses
type ParseWriter interface {
	// Write persists the tokens of the sentence text, replacing any previous
	// parse of the same text.
	Write(text string, tokens []sent.Token) error
}

// ParseRepository combines read and write operations
type ParseRepository interface {
	ParseReader
	ParseWriter
}

// DocImporter stores every sentence of a parsed Doc.
type DocImporter interface {
	Import(doc sent.Doc) (int, error)
}

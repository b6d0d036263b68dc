package parse

import (
	"context"
	"fmt"

	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/storage"
)

// Store is an offline parser: it only knows the sentences present in a parse
// repository, typically a spaCy corpus imported beforehand.
type Store struct {
	repo storage.ParseReader
}

var _ Parser = (*Store)(nil)

func NewStore(repo storage.ParseReader) *Store {
	return &Store{repo: repo}
}

func (s *Store) Parse(_ context.Context, text string) ([]sent.Token, error) {
	tokens, ok, err := s.repo.Lookup(text)
	if err != nil {
		return nil, &Error{Parser: "store", Err: err}
	}

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotParsed, text)
	}

	return tokens, nil
}

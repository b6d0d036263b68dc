package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/storage"
)

// ParseStore answers parse lookups from a directory of spaCy JSON docs. Docs
// are read once, on Load or on the first Lookup, and indexed by the text of
// each sentence. The store is read only.
type ParseStore struct {
	dir   string
	names []string

	once    sync.Once
	loadErr error

	// In-memory index, sentence key -> tokens
	index map[string][]sent.Token
}

var _ storage.ParseRepository = (*ParseStore)(nil)

// NewParseStore lists the docs of dir. Content is not loaded.
func NewParseStore(dir string) (*ParseStore, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		names = append(names, file.Name())
	}

	sort.Strings(names)

	return &ParseStore{dir: dir, names: names}, nil
}

// Names returns the file names of the docs, sorted.
func (s *ParseStore) Names() []string {
	return s.names
}

// Doc reads the doc with the given file name.
func (s *ParseStore) Doc(name string) (sent.Doc, error) {
	doc, err := ReadDoc(filepath.Join(s.dir, name))
	if err != nil {
		return sent.Doc{}, err
	}

	if doc.Title == "" {
		doc.Title = name
	}

	return doc, nil
}

// Load reads and indexes all docs. The callback is called for each file
// loaded. Only the first call does any work.
func (s *ParseStore) Load(cb func(current, total int, name string)) error {
	s.once.Do(func() {
		s.loadErr = s.load(cb)
	})

	return s.loadErr
}

func (s *ParseStore) load(cb func(current, total int, name string)) error {
	index := map[string][]sent.Token{}
	for i, name := range s.names {
		if cb != nil {
			cb(i+1, len(s.names), name)
		}

		doc, err := s.Doc(name)
		if err != nil {
			return err
		}

		for _, tokens := range doc.Tokens {
			key := sent.Key(sent.Text(tokens))
			if key == "" {
				continue
			}

			// first doc wins on duplicated sentences
			if _, ok := index[key]; !ok {
				index[key] = tokens
			}
		}
	}

	s.index = index
	return nil
}

func (s *ParseStore) Lookup(text string) ([]sent.Token, bool, error) {
	if err := s.Load(nil); err != nil {
		return nil, false, err
	}

	tokens, ok := s.index[sent.Key(text)]
	return tokens, ok, nil
}

func (s *ParseStore) Len() (int, error) {
	if err := s.Load(nil); err != nil {
		return 0, err
	}

	return len(s.index), nil
}

// Sentences returns the indexed sentences, sorted.
func (s *ParseStore) Sentences() ([]string, error) {
	if err := s.Load(nil); err != nil {
		return nil, err
	}

	sentences := make([]string, 0, len(s.index))
	for key := range s.index {
		sentences = append(sentences, key)
	}

	sort.Strings(sentences)
	return sentences, nil
}

func (s *ParseStore) Write(text string, tokens []sent.Token) error {
	return storage.ErrReadOnly
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error in %s: %w", filepath.Base(path), err)
	}

	return doc, nil
}

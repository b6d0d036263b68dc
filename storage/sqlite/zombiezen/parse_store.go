package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const upsertParse = `INSERT INTO parses (text, data, doc) VALUES (?, ?, ?)
ON CONFLICT(text) DO UPDATE SET data = excluded.data, doc = excluded.doc`

// ParseStore keeps sentence parses in the parses table, keyed by the
// normalized sentence text. Tokens are stored as a JSON array.
type ParseStore struct {
	pool *sqlitex.Pool

	// owned pools are closed by Close
	owned bool
}

var (
	_ storage.ParseRepository = (*ParseStore)(nil)
	_ storage.DocImporter     = (*ParseStore)(nil)
)

func NewParseStore(pool *sqlitex.Pool) *ParseStore {
	return &ParseStore{pool: pool}
}

func (s *ParseStore) Lookup(text string) ([]sent.Token, bool, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, false, err
	}
	defer s.pool.Put(conn)

	var tokens []sent.Token
	found := false

	err = sqlitex.Execute(conn, "SELECT data FROM parses WHERE text = ?", &sqlitex.ExecOptions{
		Args: []any{sent.Key(text)},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			return json.Unmarshal([]byte(stmt.ColumnText(0)), &tokens)
		},
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read parse: %w", err)
	}

	return tokens, found, nil
}

func (s *ParseStore) Len() (int, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer s.pool.Put(conn)

	n := 0
	err = sqlitex.Execute(conn, "SELECT count(*) FROM parses", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			n = stmt.ColumnInt(0)
			return nil
		},
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}

func (s *ParseStore) Write(text string, tokens []sent.Token) error {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	return writeParse(conn, sent.Key(text), tokens, "")
}

// Import writes every sentence of the doc in a single savepoint and returns
// the number of sentences stored. Sentences are keyed by their reconstructed
// text.
func (s *ParseStore) Import(doc sent.Doc) (n int, err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	for _, tokens := range doc.Tokens {
		key := sent.Key(sent.Text(tokens))
		if key == "" {
			continue
		}

		if err = writeParse(conn, key, tokens, doc.Title); err != nil {
			return 0, err
		}
		n++
	}

	return n, nil
}

// Close closes the pool if the store opened it.
func (s *ParseStore) Close() error {
	if s.owned {
		return s.pool.Close()
	}
	return nil
}

func writeParse(conn *sqlite.Conn, key string, tokens []sent.Token, title string) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return err
	}

	err = sqlitex.Execute(conn, upsertParse, &sqlitex.ExecOptions{
		Args: []any{key, string(data), title},
	})
	if err != nil {
		return fmt.Errorf("failed to insert parse: %w", err)
	}

	return nil
}

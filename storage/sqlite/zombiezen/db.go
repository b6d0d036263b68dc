package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool creates a SQLite connection pool sized to the number of CPUs. The
// default flags open the file read-write, create it if needed and enable WAL.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	initString := fmt.Sprintf("file:%s", dbPath)

	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite pool at %s: %w", dbPath, err)
	}
	return pool, nil
}

// Open opens (or creates) the parse database at dbPath and makes sure its
// schema exists. The returned store owns the pool.
func Open(dbPath string) (*ParseStore, error) {
	pool, err := NewPool(dbPath)
	if err != nil {
		return nil, err
	}

	if err := CreateSchema(pool, ParseSchema); err != nil {
		pool.Close()
		return nil, err
	}

	s := NewParseStore(pool)
	s.owned = true
	return s, nil
}

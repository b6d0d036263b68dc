package main

import (
	"github.com/revelaction/svocheck/storage/sqlite/zombiezen"
)

// Pool opens the SQLite parse store once and closes it at the end of the
// command.
type Pool struct {
	s *zombiezen.ParseStore
}

func (p *Pool) Open(path string) (*zombiezen.ParseStore, error) {
	if p.s != nil {
		return p.s, nil
	}
	s, err := zombiezen.Open(path)
	if err != nil {
		return nil, err
	}
	p.s = s
	return p.s, nil
}

func (p *Pool) Close() error {
	if p.s != nil {
		return p.s.Close()
	}
	return nil
}

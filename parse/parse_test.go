package parse

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/sentence/fixture"
)

// memRepo is an in-memory storage.ParseRepository
type memRepo struct {
	mu       sync.Mutex
	parses   map[string][]sent.Token
	writeErr error
	writes   int
}

func newMemRepo() *memRepo {
	return &memRepo{parses: map[string][]sent.Token{}}
}

func (r *memRepo) Lookup(text string) ([]sent.Token, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.parses[sent.Key(text)]
	return t, ok, nil
}

func (r *memRepo) Len() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.parses), nil
}

func (r *memRepo) Write(text string, tokens []sent.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if r.writeErr != nil {
		return r.writeErr
	}
	r.parses[sent.Key(text)] = tokens
	return nil
}

// countingParser counts the calls to the fixture parser
type countingParser struct {
	calls int
}

func (p *countingParser) Parse(ctx context.Context, text string) ([]sent.Token, error) {
	p.calls++
	return fixture.Parse(ctx, text)
}

func TestFunc(t *testing.T) {
	var p Parser = Func(fixture.Parse)

	tokens, err := p.Parse(context.Background(), "John threw the ball.")
	require.NoError(t, err)
	assert.Len(t, tokens, 5)
}

func TestStore(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, repo.Write("The cat is happy.", fixture.Parses["The cat is happy."]))

	s := NewStore(repo)

	tokens, err := s.Parse(context.Background(), "The cat is happy.")
	require.NoError(t, err)
	assert.Equal(t, "cat", tokens[1].Text)

	_, err = s.Parse(context.Background(), "John threw the ball.")
	assert.ErrorIs(t, err, ErrNotParsed)
}

func TestCachedWritesThrough(t *testing.T) {
	repo := newMemRepo()
	inner := &countingParser{}
	c := NewCached(inner, repo, nil)

	for i := 0; i < 3; i++ {
		tokens, err := c.Parse(context.Background(), "John threw the ball.")
		require.NoError(t, err)
		assert.Len(t, tokens, 5)
	}

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 1, repo.writes)
}

func TestCachedParserError(t *testing.T) {
	repo := newMemRepo()
	c := NewCached(&countingParser{}, repo, nil)

	_, err := c.Parse(context.Background(), "Unknown sentence.")
	assert.Error(t, err)
	assert.Equal(t, 0, repo.writes)
}

func TestCachedWriteFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	repo := newMemRepo()
	repo.writeErr = errors.New("disk full")

	c := NewCached(&countingParser{}, repo, zap.New(core))

	tokens, err := c.Parse(context.Background(), "The cat is happy.")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens)
	assert.Equal(t, 1, logs.FilterMessage("parse cache write failed").Len())
}

func TestShared(t *testing.T) {
	builds := 0
	build := func() (Parser, error) {
		builds++
		return Func(fixture.Parse), nil
	}

	p1, err := Shared(build)
	require.NoError(t, err)
	p2, err := Shared(build)
	require.NoError(t, err)

	assert.Equal(t, 1, builds)
	assert.NotNil(t, p1)
	assert.NotNil(t, p2)
}

func TestErrorUnwrap(t *testing.T) {
	err := &Error{Parser: "spacy", Err: context.DeadlineExceeded}
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "spacy parser: context deadline exceeded", err.Error())
}

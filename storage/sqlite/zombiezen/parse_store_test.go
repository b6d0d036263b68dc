package zombiezen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/sentence/fixture"
)

func openStore(t *testing.T) *ParseStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "parses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestParseStoreWriteLookup(t *testing.T) {
	s := openStore(t)

	_, ok, err := s.Lookup("John threw the ball.")
	require.NoError(t, err)
	assert.False(t, ok)

	tokens := fixture.Parses["John threw the ball."]
	require.NoError(t, s.Write("John threw the ball.", tokens))

	got, ok, err := s.Lookup(" John  threw the ball.")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tokens, got)

	// upsert replaces the previous parse
	require.NoError(t, s.Write("John threw the ball.", tokens[:2]))
	got, _, err = s.Lookup("John threw the ball.")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestParseStoreImport(t *testing.T) {
	s := openStore(t)

	doc := fixture.Doc("fixtures")
	doc.Tokens = append(doc.Tokens, []sent.Token{})

	n, err := s.Import(doc)
	require.NoError(t, err)
	assert.Equal(t, len(fixture.Sentences()), n)

	got, ok, err := s.Lookup("The cake was baked by Mary.")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "auxpass", got[2].Dep)

	total, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, n, total)
}

func TestOpenReusesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parses.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Write("The cat is happy.", fixture.Parses["The cat is happy."]))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Lookup("The cat is happy.")
	require.NoError(t, err)
	assert.True(t, ok)
}

package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revelaction/svocheck/feedback"
	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/sentence/fixture"
	"github.com/revelaction/svocheck/svo"
)

func TestAggregate(t *testing.T) {
	h := NewHandler()
	h.Aggregate(fixture.Doc("fixtures"))
	h.Aggregate(sent.Doc{Tokens: [][]sent.Token{fixture.Parses["John threw the ball."], {}}})

	stats := h.Get()
	assert.Equal(t, 10, stats.NumSentences)
	assert.Equal(t, 3, stats.Categories[feedback.CorrectOrder])
	assert.Equal(t, 1, stats.Categories[feedback.PassiveVoice])
	assert.Equal(t, 2, stats.Categories[feedback.MissingObject])
	assert.Equal(t, 1, stats.Orders[svo.Passive])
	assert.Equal(t, stats.NumTokens/10, stats.TokensPerSentenceMean)
	assert.Equal(t, 3, stats.TokensPerSentenceDis[5])
}

func TestAggregateEmpty(t *testing.T) {
	h := NewHandler()
	h.Aggregate(sent.Doc{})
	assert.Equal(t, 0, h.Get().TokensPerSentenceMean)
}

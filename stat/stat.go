// Package stat aggregates the feedback of every sentence of parsed docs.
package stat

import (
	"github.com/revelaction/svocheck/feedback"
	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/svo"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	Categories map[feedback.Category]int
	Orders     map[svo.Order]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		TokensPerSentenceDis: map[int]int{},
		Categories:           map[feedback.Category]int{},
		Orders:               map[svo.Order]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate classifies every sentence of doc and adds it to the stats. The
// sentence text is rebuilt from the tokens.
func (h *Handler) Aggregate(doc sent.Doc) {
	for _, tokens := range doc.Tokens {
		if len(tokens) == 0 {
			continue
		}

		h.stats.NumSentences++
		h.stats.NumTokens += len(tokens)
		h.stats.TokensPerSentenceDis[len(tokens)]++

		triple := svo.Extract(tokens)
		order := svo.Check(tokens, triple)
		h.stats.Orders[order]++
		h.stats.Categories[feedback.Classify(sent.Text(tokens), triple, order)]++
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

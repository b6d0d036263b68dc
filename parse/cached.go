package parse

import (
	"context"

	"go.uber.org/zap"

	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/storage"
)

// Cached answers from a parse repository first and falls back to the wrapped
// parser, storing what it returns. Failing to store a parse is logged and
// does not fail the call.
type Cached struct {
	parser Parser
	repo   storage.ParseRepository
	logger *zap.Logger
}

var _ Parser = (*Cached)(nil)

func NewCached(p Parser, repo storage.ParseRepository, logger *zap.Logger) *Cached {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Cached{parser: p, repo: repo, logger: logger}
}

func (c *Cached) Parse(ctx context.Context, text string) ([]sent.Token, error) {
	tokens, ok, err := c.repo.Lookup(text)
	if err != nil {
		c.logger.Warn("parse cache lookup failed", zap.Error(err))
	}

	if ok {
		c.logger.Debug("parse cache hit", zap.String("sentence", text))
		return tokens, nil
	}

	tokens, err = c.parser.Parse(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := c.repo.Write(text, tokens); err != nil {
		c.logger.Warn("parse cache write failed", zap.String("sentence", text), zap.Error(err))
	}

	return tokens, nil
}

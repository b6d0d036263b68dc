// Package analyzer runs the sentence check pipeline: parse, extract the
// subject, verb and object, check order and voice, classify and look up the
// feedback message.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/revelaction/svocheck/feedback"
	"github.com/revelaction/svocheck/parse"
	"github.com/revelaction/svocheck/render/tree"
	sent "github.com/revelaction/svocheck/sentence"
	"github.com/revelaction/svocheck/svo"
)

// ErrEmptySentence is returned for input without any non space character.
var ErrEmptySentence = errors.New("empty sentence")

// Result is the outcome of the analysis of one sentence.
type Result struct {
	Sentence string            `json:"sentence"`
	Tokens   []sent.Token      `json:"tokens"`
	Triple   svo.Triple        `json:"triple"`
	Order    svo.Order         `json:"order"`
	Category feedback.Category `json:"category"`
	Message  string            `json:"message"`

	// Tree is the SVG markup of the dependency tree
	Tree string `json:"tree,omitempty"`
}

type Analyzer struct {
	parser   parse.Parser
	logger   *zap.Logger
	drawTree bool
}

type Option func(*Analyzer)

func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithoutTree skips the rendering of the dependency tree.
func WithoutTree() Option {
	return func(a *Analyzer) {
		a.drawTree = false
	}
}

func New(p parse.Parser, opts ...Option) *Analyzer {
	a := &Analyzer{
		parser:   p,
		logger:   zap.NewNop(),
		drawTree: true,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = zap.NewNop()
	}

	return a
}

// Analyze returns the feedback for text. The same text always gets the same
// result from the same parser.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Result, error) {
	tokens, err := a.parse(ctx, text)
	if err != nil {
		return Result{}, err
	}

	text = strings.TrimSpace(text)

	triple := svo.Extract(tokens)
	a.logger.Debug("extracted",
		zap.String("subject", triple.Subject),
		zap.String("verb", triple.Verb),
		zap.String("object", triple.Object))

	order := svo.Check(tokens, triple)
	a.logger.Debug("checked", zap.Stringer("order", order))

	category := feedback.Classify(text, triple, order)
	a.logger.Debug("classified", zap.Stringer("category", category))

	msg, err := feedback.Message(category)
	if err != nil {
		return Result{}, fmt.Errorf("could not find feedback for %q: %w", text, err)
	}

	res := Result{
		Sentence: text,
		Tokens:   tokens,
		Triple:   triple,
		Order:    order,
		Category: category,
		Message:  msg,
	}

	if a.drawTree {
		res.Tree = tree.SVG(tokens)
	}

	return res, nil
}

// Extract returns the subject, verb and object of text.
func (a *Analyzer) Extract(ctx context.Context, text string) (svo.Triple, error) {
	tokens, err := a.parse(ctx, text)
	if err != nil {
		return svo.Triple{}, err
	}

	return svo.Extract(tokens), nil
}

// Check returns the order and voice verdict of text.
func (a *Analyzer) Check(ctx context.Context, text string) (svo.Order, error) {
	tokens, err := a.parse(ctx, text)
	if err != nil {
		return svo.Incomplete, err
	}

	return svo.Check(tokens, svo.Extract(tokens)), nil
}

func (a *Analyzer) parse(ctx context.Context, text string) ([]sent.Token, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptySentence
	}

	tokens, err := a.parser.Parse(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", text, err)
	}

	a.logger.Debug("parsed", zap.String("sentence", text), zap.Int("tokens", len(tokens)))
	return tokens, nil
}

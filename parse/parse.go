// Package parse defines the dependency parser adapter consumed by the
// analyzer and the adapters that sit in front of concrete parsers.
package parse

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sent "github.com/revelaction/svocheck/sentence"
)

// ErrNotParsed is returned by offline parsers for sentences they have no
// parse for.
var ErrNotParsed = errors.New("sentence not parsed")

// Parser converts a raw sentence into its annotated tokens, in parse order.
// Implementations must be safe for concurrent use.
type Parser interface {
	Parse(ctx context.Context, text string) ([]sent.Token, error)
}

// Func adapts an ordinary function to a Parser.
type Func func(ctx context.Context, text string) ([]sent.Token, error)

func (f Func) Parse(ctx context.Context, text string) ([]sent.Token, error) {
	return f(ctx, text)
}

// shared holds the process wide parser.
var (
	sharedParser Parser
	sharedErr    error
	sharedOnce   sync.Once
)

// Shared returns the process wide parser, building it with build on the
// first call. Later calls return the same parser (or the same error) and
// ignore build. The parser lives for the rest of the process.
func Shared(build func() (Parser, error)) (Parser, error) {
	sharedOnce.Do(func() {
		sharedParser, sharedErr = build()
		if sharedErr == nil && sharedParser == nil {
			sharedErr = errors.New("parser builder returned no parser")
		}
	})

	return sharedParser, sharedErr
}

// Error wraps a failure of the underlying parser with the parser name.
type Error struct {
	Parser string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s parser: %v", e.Parser, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

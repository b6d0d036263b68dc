// Package spacy talks to a spaCy parse service over HTTP.
//
// The service accepts POST /parse with {"text": ..., "model": ...} and
// answers {"tokens": [...]}, each token in the sentence.Token JSON format
// (id, head, sent, pos, dep, tag, idx, text, lemma, index).
package spacy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/revelaction/svocheck/parse"
	sent "github.com/revelaction/svocheck/sentence"
)

const (
	DefaultModel   = "en_core_web_sm"
	DefaultTimeout = 10 * time.Second

	parsePath = "/parse"
)

type request struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}

type response struct {
	Tokens []sent.Token `json:"tokens"`
	Error  string       `json:"error,omitempty"`
}

type Parser struct {
	url    string
	model  string
	client *http.Client
}

var _ parse.Parser = (*Parser)(nil)

type Option func(*Parser)

// WithModel selects the spaCy pipeline the service should use.
func WithModel(model string) Option {
	return func(p *Parser) { p.model = model }
}

// WithHTTPClient replaces the default client (DefaultTimeout).
func WithHTTPClient(c *http.Client) Option {
	return func(p *Parser) { p.client = c }
}

func New(baseURL string, opts ...Option) *Parser {
	p := &Parser{
		url:    strings.TrimRight(baseURL, "/") + parsePath,
		model:  DefaultModel,
		client: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Parser) Parse(ctx context.Context, text string) ([]sent.Token, error) {
	tokens, err := p.call(ctx, text)
	if err != nil {
		return nil, &parse.Error{Parser: "spacy", Err: err}
	}

	return tokens, nil
}

func (p *Parser) call(ctx context.Context, text string) ([]sent.Token, error) {
	payload, err := json.Marshal(request{Text: text, Model: p.model})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body response
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && body.Error != "" {
			return nil, fmt.Errorf("service returned status %s: %s", resp.Status, body.Error)
		}
		return nil, errors.New("service returned status: " + resp.Status)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("decoding response: %w", decodeErr)
	}

	return body.Tokens, nil
}

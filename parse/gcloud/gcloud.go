// Package gcloud parses sentences with the Cloud Natural Language API
// (AnalyzeSyntax, v1) and converts the answer to spaCy style tokens.
package gcloud

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	language "cloud.google.com/go/language/apiv1"
	"cloud.google.com/go/language/apiv1/languagepb"
	"google.golang.org/api/option"

	"github.com/revelaction/svocheck/parse"
	sent "github.com/revelaction/svocheck/sentence"
)

// languageClient is the process wide client.
var (
	languageClient *language.Client
	clientErr      error
	clientOnce     sync.Once
)

// Client initializes and returns the process wide language client.
// encodedCreds is a base64 encoded service account JSON; when empty the
// application default credentials are used. Only the first call creates the
// client.
func Client(ctx context.Context, encodedCreds string) (*language.Client, error) {
	clientOnce.Do(func() {
		var opts []option.ClientOption
		if encodedCreds != "" {
			creds, err := base64.StdEncoding.DecodeString(encodedCreds)
			if err != nil {
				clientErr = fmt.Errorf("failed to decode natural language credentials: %w", err)
				return
			}
			opts = append(opts, option.WithCredentialsJSON(creds))
		}

		languageClient, clientErr = language.NewClient(ctx, opts...)
		if clientErr != nil {
			clientErr = fmt.Errorf("failed to create natural language client: %w", clientErr)
		}
	})

	return languageClient, clientErr
}

// CloseClient closes the process wide client, if any.
func CloseClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}

type analyzeFunc func(ctx context.Context, req *languagepb.AnalyzeSyntaxRequest) (*languagepb.AnalyzeSyntaxResponse, error)

type Parser struct {
	analyze  analyzeFunc
	language string
}

var _ parse.Parser = (*Parser)(nil)

// New returns a parser using client. lang is the BCP-47 language of the
// input; empty lets the API detect it.
func New(client *language.Client, lang string) *Parser {
	return &Parser{
		analyze: func(ctx context.Context, req *languagepb.AnalyzeSyntaxRequest) (*languagepb.AnalyzeSyntaxResponse, error) {
			return client.AnalyzeSyntax(ctx, req)
		},
		language: lang,
	}
}

func (p *Parser) Parse(ctx context.Context, text string) ([]sent.Token, error) {
	req := &languagepb.AnalyzeSyntaxRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type:     languagepb.Document_PLAIN_TEXT,
			Language: p.language,
		},
		// UTF32 offsets count code points, like spaCy idx
		EncodingType: languagepb.EncodingType_UTF32,
	}

	resp, err := p.analyze(ctx, req)
	if err != nil {
		return nil, &parse.Error{Parser: "gcloud", Err: fmt.Errorf("AnalyzeSyntax: %w", err)}
	}

	return Tokens(resp), nil
}

// Tokens converts the API tokens. All sentences of the response are taken
// as one sequence, so Index and Head are document wide.
func Tokens(resp *languagepb.AnalyzeSyntaxResponse) []sent.Token {
	tokens := make([]sent.Token, 0, len(resp.GetTokens()))
	for i, t := range resp.GetTokens() {
		dep := depLabel(t.GetDependencyEdge().GetLabel())
		tokens = append(tokens, sent.Token{
			Id:    i,
			Index: i,
			Head:  int(t.GetDependencyEdge().GetHeadTokenIndex()),
			Text:  t.GetText().GetContent(),
			Idx:   int(t.GetText().GetBeginOffset()),
			Lemma: t.GetLemma(),
			Pos:   posTag(t.GetPartOfSpeech().GetTag(), dep),
			Dep:   dep,
			Tag:   t.GetPartOfSpeech().GetTag().String(),
		})
	}

	return tokens
}

// the API labels that differ from their spaCy name once lowercased
var depNames = map[languagepb.DependencyEdge_Label]string{
	languagepb.DependencyEdge_ROOT: "ROOT",
	languagepb.DependencyEdge_P:    "punct",
}

func depLabel(l languagepb.DependencyEdge_Label) string {
	if name, ok := depNames[l]; ok {
		return name
	}

	return strings.ToLower(l.String())
}

// auxiliary labels; the API tags auxiliaries as VERB
var auxDeps = map[string]bool{
	"aux":     true,
	"auxpass": true,
	"auxcaus": true,
	"auxvv":   true,
}

func posTag(tag languagepb.PartOfSpeech_Tag, dep string) string {
	switch tag {
	case languagepb.PartOfSpeech_VERB:
		if auxDeps[dep] {
			return "AUX"
		}
	case languagepb.PartOfSpeech_CONJ:
		return "CCONJ"
	case languagepb.PartOfSpeech_PRT:
		return "PART"
	}

	return tag.String()
}

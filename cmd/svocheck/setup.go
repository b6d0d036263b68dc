package main

import (
	"context"
	"net/http"

	"github.com/gosuri/uiprogress"
	"go.uber.org/zap"

	"github.com/revelaction/svocheck/analyzer"
	"github.com/revelaction/svocheck/config"
	"github.com/revelaction/svocheck/parse"
	"github.com/revelaction/svocheck/parse/gcloud"
	"github.com/revelaction/svocheck/parse/spacy"
	"github.com/revelaction/svocheck/storage"
	"github.com/revelaction/svocheck/storage/filesystem"
)

// app holds what the analyzing commands share: the configuration, the
// logger and the SQLite store, if one is opened.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	pool   Pool

	corpus *filesystem.ParseStore
}

func newApp(opts CommonOptions) (*app, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Parser != "" {
		cfg.Parser.Backend = opts.Parser
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger}, nil
}

func (a *app) Close() error {
	_ = a.logger.Sync()
	return a.pool.Close()
}

func (a *app) analyzer(ctx context.Context) (*analyzer.Analyzer, error) {
	p, err := a.parser(ctx)
	if err != nil {
		return nil, err
	}

	return analyzer.New(p, analyzer.WithLogger(a.logger)), nil
}

// parser returns the process wide parser, built from the configuration on
// the first call.
func (a *app) parser(ctx context.Context) (parse.Parser, error) {
	return parse.Shared(func() (parse.Parser, error) {
		return a.newParser(ctx)
	})
}

func (a *app) newParser(ctx context.Context) (parse.Parser, error) {
	var p parse.Parser

	switch a.cfg.Parser.Backend {
	case config.BackendStore:
		repo, err := a.parseReader()
		if err != nil {
			return nil, err
		}
		return parse.NewStore(repo), nil

	case config.BackendGcloud:
		client, err := gcloud.Client(ctx, a.cfg.Parser.Credentials)
		if err != nil {
			return nil, err
		}
		p = gcloud.New(client, a.cfg.Parser.Language)

	default:
		p = spacy.New(a.cfg.Parser.SpacyURL,
			spacy.WithModel(a.cfg.Parser.Model),
			spacy.WithHTTPClient(&http.Client{Timeout: a.cfg.Parser.Timeout}))
	}

	if !a.cfg.Parser.Cache {
		return p, nil
	}

	store, err := a.pool.Open(a.cfg.Storage.Database)
	if err != nil {
		return nil, err
	}

	return parse.NewCached(p, store, a.logger), nil
}

// parseReader returns the SQLite store if a database is configured, the
// corpus directory otherwise.
func (a *app) parseReader() (storage.ParseReader, error) {
	if a.cfg.Storage.Database != "" {
		return a.pool.Open(a.cfg.Storage.Database)
	}

	return a.loadCorpus()
}

// loadCorpus reads the corpus directory once, showing progress.
func (a *app) loadCorpus() (*filesystem.ParseStore, error) {
	if a.corpus != nil {
		return a.corpus, nil
	}

	s, err := filesystem.NewParseStore(a.cfg.Storage.Corpus)
	if err != nil {
		return nil, err
	}

	names := s.Names()
	if len(names) > 0 {
		uiprogress.Start()
		bar := uiprogress.AddBar(len(names))
		bar.AppendCompleted()
		bar.PrependElapsed()

		var currentName string
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			return currentName
		})

		err = s.Load(func(current, total int, name string) {
			currentName = name
			bar.Set(current)
		})
		uiprogress.Stop()

		if err != nil {
			return nil, err
		}
	}

	a.corpus = s
	return s, nil
}

// corpusSentences returns the corpus sentences, for completion. Without a
// corpus there are none.
func (a *app) corpusSentences() ([]string, error) {
	if a.cfg.Storage.Corpus == "" {
		return nil, nil
	}

	s, err := a.loadCorpus()
	if err != nil {
		return nil, err
	}

	return s.Sentences()
}

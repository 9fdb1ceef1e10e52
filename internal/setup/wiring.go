// Package setup builds the component graph from configuration.
package setup

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dwood/corpus-search/internal/config"
	"github.com/dwood/corpus-search/internal/corpus"
	"github.com/dwood/corpus-search/internal/editor"
	"github.com/dwood/corpus-search/internal/embedding"
	"github.com/dwood/corpus-search/internal/search"
	"github.com/dwood/corpus-search/internal/selector"
)

// Dependencies holds the wired components a binary needs.
type Dependencies struct {
	Store         *corpus.Store
	Index         *embedding.Index
	SearchService *search.Service
	SearchHandler *search.Handler
	EditorHandler *editor.Handler
}

// Wire loads the corpus and the embedding model, then assembles the search
// coordinator and the HTTP handlers. The model load completes here, before
// any listener binds, so requests never race a half-loaded index.
func Wire(cfg *config.AppConfig, logger *zerolog.Logger) (*Dependencies, error) {
	store, err := corpus.New(corpus.Config{
		Path:        cfg.Corpus.Path,
		ContextSize: cfg.Corpus.ContextSize,
	})
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	// Expansion candidates stay restricted to words the corpus actually
	// contains; a neighbor with zero occurrences cannot match any sentence.
	index := embedding.NewIndex(store.Contains)
	if err := index.Load(cfg.Model.Path); err != nil {
		return nil, fmt.Errorf("loading embedding model: %w", err)
	}

	searchService := search.NewService(
		store,
		index,
		selector.NewDefault(),
		cfg.Search.Threshold,
		cfg.Search.ExpansionK,
		logger,
	)

	return &Dependencies{
		Store:         store,
		Index:         index,
		SearchService: searchService,
		SearchHandler: search.NewHandler(searchService),
		EditorHandler: editor.NewHandler(store),
	}, nil
}

// One-shot CLI search against a local corpus and vector model, for poking at
// retrieval behavior without standing up the HTTP server.
package main

import (
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dwood/corpus-search/internal/config"
	"github.com/dwood/corpus-search/internal/setup"
	"github.com/dwood/corpus-search/internal/setup/logger"
)

func main() {
	query := flag.String("query", "", "The word to search for")
	configPath := flag.String("config", "configs/config.yaml", "Path to the config file")
	showSimilar := flag.Bool("similar", false, "Also print the expansion words for the query")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New(zerolog.LevelWarnValue)

	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded .env")
	}

	if *query == "" {
		log.Fatal().Msg("Please provide a word with -query")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	deps, err := setup.Wire(cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire components")
	}

	results, err := deps.SearchService.Search(*query)
	if err != nil {
		log.Fatal().Err(err).Str("query", *query).Msg("Search failed")
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return
	}
	for i, r := range results {
		fmt.Printf("%d. [%s] %s\n", i+1, r.MatchedTerm, r.Text)
	}

	if *showSimilar {
		similar, err := deps.SearchService.SimilarWords(*query)
		if err != nil {
			log.Fatal().Err(err).Msg("Similar-word lookup failed")
		}
		fmt.Println("\nSimilar words:")
		for _, w := range similar {
			fmt.Printf("  %d. %s\n", w.Rank, w.Word)
		}
	}
}

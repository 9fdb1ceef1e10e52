package main

import (
	"flag"
	"fmt"
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dwood/corpus-search/internal/api/middleware"
	"github.com/dwood/corpus-search/internal/config"
	"github.com/dwood/corpus-search/internal/editor"
	"github.com/dwood/corpus-search/internal/search"
	"github.com/dwood/corpus-search/internal/setup"
	"github.com/dwood/corpus-search/internal/setup/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the config file")
	flag.Parse()

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New(zerolog.LevelInfoValue)

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("Failed to load config")
	}
	log.Logger = logger.New(cfg.LogLevel)

	// Wire components: corpus, embedding model, coordinator, handlers. The
	// model load finishes before the listener binds.
	deps, err := setup.Wire(cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire components")
	}

	// Setup routes
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	search.RegisterRoutes(container, deps.SearchHandler)
	editor.RegisterRoutes(container, deps.EditorHandler)

	// OpenAPI docs
	container.Add(restfulspec.NewOpenAPIService(restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/apidocs.json",
		PostBuildSwaggerObjectHandler: enrichSwagger,
	}))

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().
		Str("address", addr).
		Str("corpus", cfg.Corpus.Path).
		Str("model", cfg.Model.Path).
		Msg("Starting Corpus Search API")

	server := http.Server{
		Addr:    addr,
		Handler: corsHandler.Handler(container),
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func enrichSwagger(s *spec.Swagger) {
	s.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Corpus Search API",
			Description: "Sentence search over a text corpus with word-embedding query expansion",
			Version:     "1.0.0",
		},
	}
}

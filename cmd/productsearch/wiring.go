package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/aiconsole/internal/config"
	"github.com/kailas-cloud/aiconsole/internal/db"
	dbRedis "github.com/kailas-cloud/aiconsole/internal/db/redis"
	"github.com/kailas-cloud/aiconsole/internal/domain"
	logpkg "github.com/kailas-cloud/aiconsole/internal/logger"
	"github.com/kailas-cloud/aiconsole/internal/metrics"
	catalogrepo "github.com/kailas-cloud/aiconsole/internal/repository/catalog"
	"github.com/kailas-cloud/aiconsole/internal/repository/criteriacache"
	openaiTransport "github.com/kailas-cloud/aiconsole/internal/transport/openai"
	healthuc "github.com/kailas-cloud/aiconsole/internal/usecase/health"
	"github.com/kailas-cloud/aiconsole/internal/usecase/productsearch"
)

// app is the composition root shared by the search and serve commands.
type app struct {
	env    string
	cfg    config.Config
	logger *zap.Logger
	ai     *openaiTransport.Client
	store  db.Store
	search *productsearch.Service
	health *healthuc.Service
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	_ = a.logger.Sync()
}

// setup loads configuration and builds the search service.
// defaultLevel is used when neither the flag nor the config sets a log level.
func setup(c *cli.Context, defaultLevel string) (*app, error) {
	if err := config.LoadDotEnv(c.String("env-file")); err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}

	env := c.String("config-env")
	cfg, err := config.LoadOrDefault(env)
	if err != nil {
		return nil, configError(err)
	}
	if path := c.String("catalog"); path != "" {
		cfg.Catalog.Path = path
	}

	level := firstNonEmpty(c.String("log-level"), cfg.Logging.Level, defaultLevel)
	logger, err := logpkg.NewLogger(env, level)
	if err != nil {
		return nil, cli.Exit("failed to create logger: "+err.Error(), 1)
	}

	products, err := catalogrepo.Load(cfg.Catalog.Path)
	if err != nil {
		_ = logger.Sync()
		return nil, cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	logger.Debug("Catalog loaded", zap.String("path", cfg.Catalog.Path), zap.Int("products", len(products)))

	a := &app{env: env, cfg: cfg, logger: logger}
	a.ai = openaiTransport.NewClient(&openaiTransport.Config{
		APIKey:             cfg.OpenAI.APIKey,
		BaseURL:            cfg.OpenAI.BaseURL,
		ChatModel:          cfg.OpenAI.ChatModel,
		TranscriptionModel: cfg.OpenAI.TranscriptionModel,
		Temperature:        *cfg.OpenAI.Temperature,
		Timeout:            cfg.OpenAI.Timeout(),
		Logger:             logger,
	})

	var translator productsearch.Translator = a.ai
	if cfg.Cache.Enabled() {
		store, err := openStore(c.Context, cfg.Cache)
		if err != nil {
			logger.Warn("Criteria cache unavailable, continuing without it",
				zap.String("driver", cfg.Cache.Driver), zap.Error(err))
		} else {
			a.store = store
			translator = criteriacache.New(a.ai, store, cfg.Cache.TTL(), metrics.CriteriaCacheTotal, logger)
			logger.Info("Criteria cache enabled",
				zap.String("driver", cfg.Cache.Driver), zap.Strings("addrs", cfg.Cache.Addrs))
		}
	}

	a.search = productsearch.New(products, translator, logger)

	var cache healthuc.CachePinger
	if a.store != nil {
		cache = a.store
	}
	a.health = healthuc.New(a.search, cache, a.ai)

	return a, nil
}

func openStore(ctx context.Context, cfg config.CacheConfig) (db.Store, error) {
	// Valkey speaks the same protocol for the commands the cache uses.
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Addrs,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s store: %w", cfg.Driver, err)
	}
	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// configError turns configuration failures into actionable messages.
func configError(err error) error {
	if strings.Contains(err.Error(), "openai.api_key is required") {
		return cli.Exit("Error: OPENAI_API_KEY not found!\n"+
			"Please create a .env file with your OpenAI API key:\n"+
			"OPENAI_API_KEY=your_openai_api_key_here", 1)
	}
	return cli.Exit("failed to load config: "+err.Error(), 1)
}

// searchError turns search failures into actionable messages.
func searchError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		return cli.Exit("No search query provided. Exiting.", 1)
	case errors.Is(err, domain.ErrEmptyCatalog):
		return cli.Exit("No products available to search.", 1)
	case errors.Is(err, domain.ErrProviderError):
		return cli.Exit(fmt.Sprintf("Error during search: %v\n"+
			"Please check your OpenAI API key and internet connection.", err), 1)
	default:
		return cli.Exit(fmt.Sprintf("Error during search: %v", err), 1)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

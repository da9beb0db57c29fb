package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/xmlsoccer-import/external/xmlsoccer"
	"github.com/riskibarqy/xmlsoccer-import/internal/config"
	"github.com/riskibarqy/xmlsoccer-import/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/xmlsoccer-import/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/xmlsoccer-import/internal/platform/cache"
	"github.com/riskibarqy/xmlsoccer-import/internal/platform/logging"
	"github.com/riskibarqy/xmlsoccer-import/internal/usecase"
)

// App holds the wired client and import service for one CLI run.
type App struct {
	Client  *xmlsoccer.Client
	Imports *usecase.ImportService

	closers []func() error
}

// New builds the importer. apiKey overrides the configured key when set.
func New(ctx context.Context, cfg config.Config, apiKey string, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	a := &App{}

	responseCache, err := a.openCache(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	if apiKey == "" {
		apiKey = cfg.XMLSoccerAPIKey
	}
	serviceURL := cfg.XMLSoccerServiceURL
	if serviceURL == "" {
		serviceURL = xmlsoccer.DefaultServiceURL
	}
	client, err := xmlsoccer.NewClient(xmlsoccer.ClientConfig{
		ServiceURL:     serviceURL,
		APIKey:         apiKey,
		RequestIP:      cfg.XMLSoccerRequestIP,
		GenerateHash:   cfg.XMLSoccerGenerateHash,
		Cache:          responseCache,
		CacheKeyPrefix: cfg.CacheKeyPrefix,
		Transport: xmlsoccer.NewFastHTTPTransport(xmlsoccer.TransportConfig{
			RequestIP: cfg.XMLSoccerRequestIP,
			Timeout:   cfg.XMLSoccerTimeout,
			Logger:    logger,
		}),
		InvalidKeyMarkers: cfg.XMLSoccerInvalidMarkers,
		Logger:            logger,
	})
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("build xmlsoccer client: %w", err)
	}
	a.Client = client

	repos, err := a.openRepositories(cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Imports = usecase.NewImportService(client, repos, usecase.ImportOptions{
		Workers: cfg.ImportWorkers,
		Logger:  logger,
	})

	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) openCache(ctx context.Context, cfg config.Config, logger *logging.Logger) (xmlsoccer.Cache, error) {
	switch cfg.CacheDriver {
	case config.CacheRedis:
		store, err := cache.NewRedisStore(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis cache: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		logger.Debug("response cache ready", "driver", cfg.CacheDriver, "addr", cfg.RedisAddr)
		return store, nil
	case config.CacheMemory:
		logger.Debug("response cache ready", "driver", cfg.CacheDriver, "max_entries", cfg.CacheMaxEntries)
		return cache.NewStore(0, cfg.CacheMaxEntries), nil
	default:
		logger.Debug("response cache disabled")
		return nil, nil
	}
}

func (a *App) openRepositories(cfg config.Config, logger *logging.Logger) (usecase.ImportRepositories, error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("using in-memory storage, imported data is discarded on exit")
		return usecase.ImportRepositories{
			Leagues: memory.NewLeagueRepository(nil),
			Teams:   memory.NewTeamRepository(),
			Players: memory.NewPlayerRepository(),
			Groups:  memory.NewGroupRepository(),
			Matches: memory.NewMatchRepository(),
			Goals:   memory.NewGoalRepository(),
		}, nil
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return usecase.ImportRepositories{}, err
	}
	a.closers = append(a.closers, db.Close)

	return usecase.ImportRepositories{
		Leagues: postgres.NewLeagueRepository(db),
		Teams:   postgres.NewTeamRepository(db),
		Players: postgres.NewPlayerRepository(db),
		Groups:  postgres.NewGroupRepository(db),
		Matches: postgres.NewMatchRepository(db),
		Goals:   postgres.NewGoalRepository(db),
	}, nil
}

// OpenDB opens a traced postgres pool.
func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

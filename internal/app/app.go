package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/hasysamur-cmd/cosmus-league/internal/config"
	"github.com/hasysamur-cmd/cosmus-league/internal/domain/leaguestate"
	"github.com/hasysamur-cmd/cosmus-league/internal/infrastructure/export"
	filesnapshot "github.com/hasysamur-cmd/cosmus-league/internal/infrastructure/snapshot/file"
	pgsnapshot "github.com/hasysamur-cmd/cosmus-league/internal/infrastructure/snapshot/postgres"
	"github.com/hasysamur-cmd/cosmus-league/internal/interfaces/httpapi"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/cache"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/id"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/logging"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/resilience"
	"github.com/hasysamur-cmd/cosmus-league/internal/store"
	"github.com/hasysamur-cmd/cosmus-league/internal/usecase"
)

// NewHTTPServer wires the snapshot backend, the league store, the services,
// and the HTTP router into a ready-to-run server. The returned cleanup
// releases backend resources (the postgres handle when that backend is
// active) and must be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger, accessLog *slog.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	snapshots, cleanup, err := newSnapshotBackend(cfg)
	if err != nil {
		return nil, nil, err
	}

	leagueStore := store.New(snapshots, logger)
	if err := leagueStore.Hydrate(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	leagueStore.Seed(cfg.LeagueName, cfg.AdminPassword)

	ids := id.NewRandomGenerator()

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	var exporter usecase.ArchiveExporter
	if cfg.ExportEnabled {
		exporter = export.NewClient(export.ClientConfig{
			URL:     cfg.ExportURL,
			Token:   cfg.ExportToken,
			Timeout: cfg.ExportTimeout,
			Logger:  logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.ExportCircuitEnabled,
				FailureThreshold: cfg.ExportCircuitFailureCount,
				OpenTimeout:      cfg.ExportCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.ExportCircuitHalfOpenReq,
			},
		})
	}

	authSvc := usecase.NewAuthService(leagueStore, ids, logger)
	seasonSvc := usecase.NewSeasonService(leagueStore, ids, exporter, logger)
	querySvc := usecase.NewQueryService(leagueStore, cacheStore)
	statsSvc := usecase.NewStatsService(leagueStore, cacheStore)
	archiveSvc := usecase.NewArchiveService(leagueStore)
	cupSvc := usecase.NewCupService(leagueStore, ids)
	exportSvc := usecase.NewExportService(leagueStore, exporter, cfg.ExportWorkers, logger)

	handler := httpapi.NewHandler(authSvc, seasonSvc, querySvc, statsSvc, archiveSvc, cupSvc, exportSvc, accessLog)
	router := httpapi.NewRouter(handler, authSvc, accessLog, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func newSnapshotBackend(cfg config.Config) (leaguestate.Snapshots, func(), error) {
	switch cfg.SnapshotBackend {
	case config.SnapshotBackendPostgres:
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		return pgsnapshot.NewSnapshots(db, pgsnapshot.DefaultSnapshotName), func() { _ = db.Close() }, nil
	default:
		return filesnapshot.NewSnapshots(cfg.SnapshotFile), func() {}, nil
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return db, nil
}

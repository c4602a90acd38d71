package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/raju4789/tourna-mate/internal/config"
	"github.com/raju4789/tourna-mate/internal/domain/match"
	"github.com/raju4789/tourna-mate/internal/domain/pointstable"
	"github.com/raju4789/tourna-mate/internal/domain/team"
	"github.com/raju4789/tourna-mate/internal/domain/teamstats"
	"github.com/raju4789/tourna-mate/internal/domain/tournament"
	"github.com/raju4789/tourna-mate/internal/infrastructure/account/identity"
	"github.com/raju4789/tourna-mate/internal/infrastructure/repository/memory"
	"github.com/raju4789/tourna-mate/internal/infrastructure/repository/postgres"
	"github.com/raju4789/tourna-mate/internal/interfaces/httpapi"
	"github.com/raju4789/tourna-mate/internal/platform/logging"
	"github.com/raju4789/tourna-mate/internal/platform/resilience"
	"github.com/raju4789/tourna-mate/internal/usecase"
)

type repositories struct {
	tournaments tournament.Repository
	teams       team.Repository
	teamStats   teamstats.Repository
	points      pointstable.Repository
	matches     match.Repository
}

// NewHTTPServer builds the full service graph and returns the HTTP
// server plus a cleanup function that releases database resources.
// With DB_URL unset the service runs against seeded in-memory
// repositories, which is the local development mode.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	matchResultSvc := usecase.NewMatchResultService(
		repos.tournaments,
		repos.teamStats,
		repos.points,
		repos.matches,
		logger,
	)
	pointsTableSvc := usecase.NewPointsTableService(
		repos.tournaments,
		repos.teams,
		repos.points,
	)
	rebuildSvc := usecase.NewRebuildService(
		repos.tournaments,
		repos.teamStats,
		repos.points,
		repos.matches,
		logger,
	)

	identityClient := identity.NewClient(identity.ClientConfig{
		BaseURL:        cfg.IdentityBaseURL,
		IntrospectPath: cfg.IdentityIntrospectPath,
		Timeout:        cfg.IdentityTimeout,
		MaxRetries:     cfg.IdentityMaxRetries,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.IdentityCircuitEnabled,
			FailureThreshold: cfg.IdentityCircuitFailureCount,
			OpenTimeout:      cfg.IdentityCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.IdentityCircuitHalfOpenMaxReq,
		},
	})

	handler := httpapi.NewHandler(matchResultSvc, pointsTableSvc, rebuildSvc, cfg.RebuildMaxWorkers, logger)
	router := httpapi.NewRouter(handler, identityClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

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

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("database disabled", "reason", "DB_URL empty", "mode", "in-memory")
		return repositories{
			tournaments: memory.NewTournamentRepository(memory.SeedTournaments()),
			teams:       memory.NewTeamRepository(memory.SeedTeams(), memory.SeedTeamEntries()),
			teamStats:   memory.NewTeamStatsRepository(memory.SeedTeamStats()),
			points:      memory.NewPointsTableRepository(memory.SeedPointsRows()),
			matches:     memory.NewMatchResultRepository(),
		}, func() error { return nil }, nil
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open database: %w", err)
	}

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
	}

	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		tournaments: postgres.NewTournamentRepository(db),
		teams:       postgres.NewTeamRepository(db),
		teamStats:   postgres.NewTeamStatsRepository(db),
		points:      postgres.NewPointsTableRepository(db),
		matches:     postgres.NewMatchResultRepository(db),
	}, db.Close, nil
}

func openDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

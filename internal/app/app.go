package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/clubdeskhq/clubdesk/external/accounts"
	"github.com/clubdeskhq/clubdesk/internal/config"
	"github.com/clubdeskhq/clubdesk/internal/domain/clubrule"
	"github.com/clubdeskhq/clubdesk/internal/domain/prize"
	"github.com/clubdeskhq/clubdesk/internal/domain/role"
	"github.com/clubdeskhq/clubdesk/internal/domain/venue"
	"github.com/clubdeskhq/clubdesk/internal/infrastructure/account/clubauth"
	cacherepo "github.com/clubdeskhq/clubdesk/internal/infrastructure/repository/cache"
	"github.com/clubdeskhq/clubdesk/internal/infrastructure/repository/memory"
	"github.com/clubdeskhq/clubdesk/internal/infrastructure/repository/postgres"
	"github.com/clubdeskhq/clubdesk/internal/interfaces/httpapi"
	basecache "github.com/clubdeskhq/clubdesk/internal/platform/cache"
	idgen "github.com/clubdeskhq/clubdesk/internal/platform/id"
	"github.com/clubdeskhq/clubdesk/internal/platform/logging"
	"github.com/clubdeskhq/clubdesk/internal/platform/notify"
	"github.com/clubdeskhq/clubdesk/internal/platform/resilience"
	"github.com/clubdeskhq/clubdesk/internal/usecase"
)

// dbModeMemory selects the seeded in-memory repositories instead of
// Postgres. Meant for local development and demos.
const dbModeMemory = "memory"

type repositories struct {
	venues    venue.Repository
	clubRules clubrule.Repository
	prizes    prize.Repository
	roles     role.Repository
	db        *sqlx.DB
}

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	store := basecache.NewStore(cfg.CacheTTL)
	if cfg.CacheEnabled {
		repos.venues = cacherepo.NewVenueRepository(repos.venues, store)
		repos.clubRules = cacherepo.NewClubRuleRepository(repos.clubRules, store)
		repos.prizes = cacherepo.NewPrizeRepository(repos.prizes, store)
		repos.roles = cacherepo.NewRoleRepository(repos.roles, store)
	}

	alerter := buildAlerter(cfg, logger)

	accountsClient := accounts.NewClient(accounts.ClientConfig{
		BaseURL:    cfg.AccountsBaseURL,
		Token:      cfg.AccountsToken,
		Timeout:    cfg.AccountsTimeout,
		MaxRetries: cfg.AccountsMaxRetries,
		Logger:     logging.Default(),
		Alerter:    alerter,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AccountsCircuitEnabled,
			FailureThreshold: cfg.AccountsCircuitFailureCount,
			OpenTimeout:      cfg.AccountsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AccountsCircuitHalfOpenMaxReq,
		},
	})

	generator := idgen.NewRandomGenerator()

	reportSvc := usecase.NewReportService(accountsClient, store)
	venueSvc := usecase.NewVenueService(repos.venues, generator)
	clubRuleSvc := usecase.NewClubRuleService(repos.clubRules, generator)
	prizeSvc := usecase.NewPrizeService(repos.prizes, generator)
	roleSvc := usecase.NewRoleService(repos.roles)
	refreshSvc := usecase.NewMetricsRefreshService(reportSvc, cfg.RefreshWorkerCount)

	verifier := clubauth.NewClient(clubauth.ClientConfig{
		BaseURL:        cfg.AuthBaseURL,
		IntrospectPath: cfg.AuthIntrospectURL,
		Timeout:        cfg.AuthTimeout,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AuthCircuitEnabled,
			FailureThreshold: cfg.AuthCircuitFailureCount,
			OpenTimeout:      cfg.AuthCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AuthCircuitHalfOpenMaxReq,
		},
	})

	handler := httpapi.NewHandler(reportSvc, venueSvc, clubRuleSvc, prizeSvc, roleSvc, refreshSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func() error {
		if repos.db != nil {
			return repos.db.Close()
		}
		return nil
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, error) {
	if strings.EqualFold(strings.TrimSpace(cfg.DBURL), dbModeMemory) {
		logger.Info("using in-memory repositories", "reason", "DB_URL=memory")
		return repositories{
			venues:    memory.NewVenueRepository(memory.SeedVenues()),
			clubRules: memory.NewClubRuleRepository(memory.SeedClubRules()),
			prizes:    memory.NewPrizeRepository(memory.SeedPrizes()),
			roles:     memory.NewRoleRepository(memory.SeedRoles()),
		}, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("connected to database", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		venues:    postgres.NewVenueRepository(db),
		clubRules: postgres.NewClubRuleRepository(db),
		prizes:    postgres.NewPrizeRepository(db),
		roles:     postgres.NewRoleRepository(db),
		db:        db,
	}, nil
}

func buildAlerter(cfg config.Config, logger *slog.Logger) *notify.Notifier {
	var sink notify.Sink
	if cfg.AlertWebhookEnabled {
		webhook, err := notify.NewWebhookSink(notify.WebhookSinkConfig{
			Endpoint: cfg.AlertWebhookEndpoint,
			Token:    cfg.AlertWebhookToken,
			Timeout:  cfg.AlertWebhookTimeout,
			Service:  cfg.ServiceName,
			Env:      cfg.AppEnv,
		})
		if err != nil {
			logger.Warn("alert webhook disabled", "error", err)
		} else {
			sink = webhook
		}
	}

	return notify.NewNotifier(sink, logger, notify.WithWindow(cfg.AlertDedupWindow))
}

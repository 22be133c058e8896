package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pagepilot/pagepilot/internal/config"
	adinteldomain "github.com/pagepilot/pagepilot/internal/domain/adintel"
	analyticsdomain "github.com/pagepilot/pagepilot/internal/domain/analytics"
	billingdomain "github.com/pagepilot/pagepilot/internal/domain/billing"
	botdomain "github.com/pagepilot/pagepilot/internal/domain/bot"
	contentdomain "github.com/pagepilot/pagepilot/internal/domain/content"
	"github.com/pagepilot/pagepilot/internal/domain/generation"
	pagedomain "github.com/pagepilot/pagepilot/internal/domain/page"
	userdomain "github.com/pagepilot/pagepilot/internal/domain/user"
	"github.com/pagepilot/pagepilot/internal/infrastructure/aiprovider"
	"github.com/pagepilot/pagepilot/internal/infrastructure/auth"
	stripebilling "github.com/pagepilot/pagepilot/internal/infrastructure/billing"
	"github.com/pagepilot/pagepilot/internal/infrastructure/cache"
	"github.com/pagepilot/pagepilot/internal/infrastructure/crontab"
	"github.com/pagepilot/pagepilot/internal/infrastructure/database"
	"github.com/pagepilot/pagepilot/internal/infrastructure/facebook"
	"github.com/pagepilot/pagepilot/internal/infrastructure/logger"
	"github.com/pagepilot/pagepilot/internal/infrastructure/observability"
	adintelrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/adintel"
	analyticsrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/analytics"
	botrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/bot"
	contentrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/content"
	pagerepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/page"
	userrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/user"
	"github.com/pagepilot/pagepilot/internal/interfaces/httpserver"
	"github.com/pagepilot/pagepilot/internal/interfaces/httpserver/handlers"
	"github.com/pagepilot/pagepilot/internal/interfaces/httpserver/routes"
)

// Application bundles the long-running pieces of the service.
type Application struct {
	httpServer *httpserver.HttpServer
	cron       *crontab.Crontab
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, cron *crontab.Crontab, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		cron:       cron,
		log:        log,
	}
}

// Start runs the HTTP server and the background jobs until ctx ends.
func (a *Application) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.httpServer.Run(ctx) })
	g.Go(func() error { return a.cron.Run(ctx) })
	return g.Wait()
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}
	if !cfg.AuthEnabled {
		if err := database.SeedDemoUser(ctx, db, log, cfg.DemoUserID); err != nil {
			log.Fatal().Err(err).Msg("seed demo user")
		}
	}

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}

	var statsCache analyticsdomain.StatsCache
	if cfg.RedisConfigured() {
		redisCache, err := cache.NewRedisStatsCache(cfg.RedisURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("initialize redis cache")
		}
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, continuing without stats cache")
		} else {
			statsCache = redisCache
			defer redisCache.Close()
		}
	}

	openaiClient := aiprovider.NewOpenAIClient(cfg.OpenAIAPIKey)
	claudeClient := aiprovider.NewClaudeClient(cfg.ClaudeAPIKey, cfg.ProviderTimeout)
	perplexityClient := aiprovider.NewPerplexityClient(cfg.PerplexityAPIKey, cfg.ProviderTimeout)
	dispatcher := generation.NewDispatcher(openaiClient, claudeClient, perplexityClient, log)

	var (
		graph *facebook.GraphClient
		oauth *facebook.OAuthClient
	)
	if cfg.FacebookConfigured() {
		graph = facebook.NewGraphClient(cfg.ProviderTimeout, log)
		oauth = facebook.NewOAuthClient(cfg.FacebookAppID, cfg.FacebookAppSecret, cfg.FacebookRedirectURL, cfg.ProviderTimeout)
	}
	adsLibrary := facebook.NewAdsLibraryClient(cfg.FacebookAccessToken, cfg.ProviderTimeout, nil, log)

	users := userrepo.NewPostgresRepository(db)
	pages := pagerepo.NewPostgresRepository(db)
	contents := contentrepo.NewPostgresRepository(db)
	bots := botrepo.NewPostgresRepository(db)
	snapshots := analyticsrepo.NewPostgresRepository(db)
	ads := adintelrepo.NewPostgresRepository(db)

	userService := userdomain.NewService(users, log)
	pageService := pagedomain.NewService(pages, graphOrNil(graph), log)
	contentService := contentdomain.NewService(contents, dispatcher, openaiClient, publisherOrNil(graph), pages, log)
	botService := botdomain.NewService(bots, dispatcher, openaiClient, botdomain.Options{
		LearningSampleRate: cfg.LearningSampleRate,
		SatisfactionBase:   cfg.SatisfactionBase,
		SatisfactionSpread: cfg.SatisfactionSpread,
	}, nil, log)
	analyticsService := analyticsdomain.NewService(snapshots, pages, contents, statsCache, log)
	adIntelService := adinteldomain.NewService(ads, adsLibrary, log)

	var billingService billingdomain.Service
	if cfg.StripeConfigured() {
		billingService = billingdomain.NewService(users, stripebilling.NewStripeClient(cfg.StripeSecretKey, cfg.StripePriceID), log)
	}

	handlerProvider := handlers.NewProvider(
		dispatcher,
		openaiClient,
		userService,
		contentService,
		pageService,
		botService,
		analyticsService,
		adIntelService,
		billingService,
		oauth,
		graph,
		log,
	)
	routeProvider := routes.NewProvider(cfg, handlerProvider, authValidator)

	ready := func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}

	httpServer := httpserver.New(cfg, log, routeProvider, ready)
	cron := crontab.NewCrontab(cfg, contentService, botService, log)
	app := NewApplication(httpServer, cron, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// graphOrNil keeps the typed-nil pointer out of the page service interface.
func graphOrNil(graph *facebook.GraphClient) pagedomain.GraphAPI {
	if graph == nil {
		return nil
	}
	return graph
}

func publisherOrNil(graph *facebook.GraphClient) contentdomain.Publisher {
	if graph == nil {
		return nil
	}
	return graph
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}

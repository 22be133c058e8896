//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pagepilot/pagepilot/internal/config"
	"github.com/pagepilot/pagepilot/internal/infrastructure/database"
	"github.com/pagepilot/pagepilot/internal/infrastructure/logger"
	adintelrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/adintel"
	analyticsrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/analytics"
	botrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/bot"
	contentrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/content"
	pagerepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/page"
	userrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/user"
)

// Repositories groups the GORM-backed storage layer.
type Repositories struct {
	Users     *userrepo.PostgresRepository
	Pages     *pagerepo.PostgresRepository
	Contents  *contentrepo.PostgresRepository
	Bots      *botrepo.PostgresRepository
	Snapshots *analyticsrepo.PostgresRepository
	Ads       *adintelrepo.PostgresRepository
}

var repositorySet = wire.NewSet(
	userrepo.NewPostgresRepository,
	pagerepo.NewPostgresRepository,
	contentrepo.NewPostgresRepository,
	botrepo.NewPostgresRepository,
	analyticsrepo.NewPostgresRepository,
	adintelrepo.NewPostgresRepository,
	wire.Struct(new(Repositories), "*"),
)

// BuildRepositories demonstrates how to assemble the storage layer with Wire.
// The full application graph in main stays hand wired because several
// dependencies are conditional on configuration.
func BuildRepositories(ctx context.Context) (*Repositories, error) {
	wire.Build(
		config.Load,
		newLogger,
		newDatabaseConfig,
		newGormDB,
		repositorySet,
	)
	return nil, nil
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

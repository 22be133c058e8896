package crontab

import (
	"context"
	"fmt"
	"time"

	"github.com/mileusna/crontab"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/config"
	"github.com/pagepilot/pagepilot/internal/domain/bot"
	"github.com/pagepilot/pagepilot/internal/domain/content"
)

const (
	DefaultLearningSyncInterval = 60              // in minutes
	CronJobTimeout              = 5 * time.Minute // timeout for each cron job execution
)

// Crontab runs the background jobs: publishing due scheduled content and
// aggregating bot learning data.
type Crontab struct {
	ctab     *crontab.Crontab
	cfg      *config.Config
	contents content.Service
	bots     bot.Service
	log      zerolog.Logger
}

func NewCrontab(cfg *config.Config, contents content.Service, bots bot.Service, log zerolog.Logger) *Crontab {
	return &Crontab{
		ctab:     crontab.New(),
		cfg:      cfg,
		contents: contents,
		bots:     bots,
		log:      log.With().Str("component", "crontab").Logger(),
	}
}

// Run installs the jobs and blocks until ctx is cancelled.
func (c *Crontab) Run(ctx context.Context) error {
	// publish once on server start so a restart never strands due rows
	c.publishDue(ctx)

	publishMinutes := int(c.cfg.PublishInterval.Minutes())
	if publishMinutes <= 0 {
		publishMinutes = 1
	}
	publishExpr := fmt.Sprintf("*/%d * * * *", publishMinutes)
	if err := c.ctab.AddJob(publishExpr, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
		defer cancel()
		c.publishDue(jobCtx)
	}); err != nil {
		return fmt.Errorf("add publish job: %w", err)
	}
	c.log.Info().Str("schedule", publishExpr).Msg("scheduled publish job installed")

	if c.cfg.LearningSyncEnabled {
		syncInterval := c.cfg.LearningSyncInterval
		if syncInterval <= 0 {
			syncInterval = DefaultLearningSyncInterval
		}

		var syncExpr string
		if syncInterval >= 60 {
			syncExpr = fmt.Sprintf("0 */%d * * *", syncInterval/60)
		} else {
			syncExpr = fmt.Sprintf("*/%d * * * *", syncInterval)
		}
		if err := c.ctab.AddJob(syncExpr, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.aggregateLearning(jobCtx)
		}); err != nil {
			return fmt.Errorf("add learning sync job: %w", err)
		}
		c.log.Info().Str("schedule", syncExpr).Msg("bot learning sync installed")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) publishDue(ctx context.Context) {
	if err := c.contents.PublishDue(ctx); err != nil {
		c.log.Error().Err(err).Msg("publish due content")
	}
}

func (c *Crontab) aggregateLearning(ctx context.Context) {
	if err := c.bots.AggregateLearning(ctx); err != nil {
		c.log.Error().Err(err).Msg("aggregate bot learning")
	}
}

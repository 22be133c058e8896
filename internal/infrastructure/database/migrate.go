package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pagepilot/pagepilot/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes and seeds the demo account.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.User{},
		&entities.FacebookPage{},
		&entities.GeneratedContent{},
		&entities.MessengerBot{},
		&entities.Conversation{},
		&entities.LearningRecord{},
		&entities.AnalyticsSnapshot{},
		&entities.AdIntelligence{},
	); err != nil {
		return err
	}

	return nil
}

// SeedDemoUser makes sure the configured demo principal exists so that the
// unauthenticated demo flow can attach content to a real row.
func SeedDemoUser(ctx context.Context, db *gorm.DB, log zerolog.Logger, demoUserID string) error {
	if demoUserID == "" {
		return nil
	}
	if _, err := uuid.Parse(demoUserID); err != nil {
		return err
	}
	user := entities.User{
		ID:        demoUserID,
		Email:     "demo@pagepilot.local",
		FirstName: "Demo",
		LastName:  "User",
	}
	err := db.WithContext(ctx).
		Where(entities.User{ID: demoUserID}).
		FirstOrCreate(&user).Error
	if err != nil {
		return err
	}
	log.Debug().Str("user_id", demoUserID).Msg("demo user present")
	return nil
}

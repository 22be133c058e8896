package adintel

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/pagepilot/pagepilot/internal/domain/adintel"
	"github.com/pagepilot/pagepilot/internal/infrastructure/database/entities"
)

// PostgresRepository persists ad intelligence snapshots via PostgreSQL
// using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Ad, error) {
	var records []entities.AdIntelligence
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	ads := make([]domain.Ad, len(records))
	for i := range records {
		ads[i] = *toDomain(&records[i])
	}
	return ads, nil
}

func (r *PostgresRepository) Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	record := toEntity(ad)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return toDomain(record), nil
}

func toEntity(a *domain.Ad) *entities.AdIntelligence {
	return &entities.AdIntelligence{
		ID:             a.ID,
		UserID:         a.UserID,
		AdID:           a.AdID,
		PageID:         a.PageID,
		PageName:       a.PageName,
		AdContent:      a.Content,
		AdImageURL:     a.ImageURL,
		Category:       a.Category,
		StartDate:      a.StartDate,
		EndDate:        a.EndDate,
		IsActive:       a.IsActive,
		Spend:          a.Spend,
		Impressions:    a.Impressions,
		TargetAudience: entities.JSONColumn(a.TargetAudience),
	}
}

func toDomain(e *entities.AdIntelligence) *domain.Ad {
	return &domain.Ad{
		ID:             e.ID,
		UserID:         e.UserID,
		AdID:           e.AdID,
		PageID:         e.PageID,
		PageName:       e.PageName,
		Content:        e.AdContent,
		ImageURL:       e.AdImageURL,
		Category:       e.Category,
		StartDate:      e.StartDate,
		EndDate:        e.EndDate,
		IsActive:       e.IsActive,
		Spend:          e.Spend,
		Impressions:    e.Impressions,
		TargetAudience: string(e.TargetAudience),
		CreatedAt:      e.CreatedAt,
	}
}

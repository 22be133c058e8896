package analytics

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/pagepilot/pagepilot/internal/domain/analytics"
	"github.com/pagepilot/pagepilot/internal/infrastructure/database/entities"
)

// PostgresRepository persists analytics snapshots via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, s *domain.Snapshot) (*domain.Snapshot, error) {
	record := toEntity(s)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return toDomain(record), nil
}

func (r *PostgresRepository) Range(ctx context.Context, pageID string, from, to *time.Time) ([]domain.Snapshot, error) {
	tx := r.db.WithContext(ctx).Where("page_id = ?", pageID)
	if from != nil {
		tx = tx.Where("date >= ?", *from)
	}
	if to != nil {
		tx = tx.Where("date <= ?", *to)
	}
	var records []entities.AnalyticsSnapshot
	if err := tx.Order("date ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(records), nil
}

func (r *PostgresRepository) Since(ctx context.Context, pageIDs []string, since time.Time) ([]domain.Snapshot, error) {
	if len(pageIDs) == 0 {
		return nil, nil
	}
	var records []entities.AnalyticsSnapshot
	err := r.db.WithContext(ctx).
		Where("page_id IN ? AND date >= ?", pageIDs, since).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomainSlice(records), nil
}

func toEntity(s *domain.Snapshot) *entities.AnalyticsSnapshot {
	return &entities.AnalyticsSnapshot{
		ID:          s.ID,
		PageID:      s.PageID,
		ContentID:   s.ContentID,
		Date:        s.Date,
		Reach:       s.Reach,
		Impressions: s.Impressions,
		Engagements: s.Engagements,
		Likes:       s.Likes,
		Comments:    s.Comments,
		Shares:      s.Shares,
		Clicks:      s.Clicks,
		Spend:       s.Spend,
	}
}

func toDomain(e *entities.AnalyticsSnapshot) *domain.Snapshot {
	return &domain.Snapshot{
		ID:          e.ID,
		PageID:      e.PageID,
		ContentID:   e.ContentID,
		Date:        e.Date,
		Reach:       e.Reach,
		Impressions: e.Impressions,
		Engagements: e.Engagements,
		Likes:       e.Likes,
		Comments:    e.Comments,
		Shares:      e.Shares,
		Clicks:      e.Clicks,
		Spend:       e.Spend,
		CreatedAt:   e.CreatedAt,
	}
}

func toDomainSlice(records []entities.AnalyticsSnapshot) []domain.Snapshot {
	out := make([]domain.Snapshot, len(records))
	for i := range records {
		out[i] = *toDomain(&records[i])
	}
	return out
}

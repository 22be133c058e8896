package content

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/pagepilot/pagepilot/internal/domain/content"
	"github.com/pagepilot/pagepilot/internal/domain/generation"
	"github.com/pagepilot/pagepilot/internal/infrastructure/database/entities"
)

// PostgresRepository persists generated content via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Content, error) {
	var records []entities.GeneratedContent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomainSlice(records), nil
}

func (r *PostgresRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.GeneratedContent{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*domain.Content, error) {
	var record entities.GeneratedContent
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDomain(&record), nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	record := toEntity(c)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return toDomain(record), nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	record := toEntity(c)
	tx := r.db.WithContext(ctx).Model(&entities.GeneratedContent{}).
		Where("id = ?", c.ID).
		Select("title", "content", "page_id", "image_url", "status", "scheduled_at", "published_at").
		Updates(record)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.Get(ctx, c.ID)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&entities.GeneratedContent{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ScheduledDue(ctx context.Context, now time.Time) ([]domain.Content, error) {
	var records []entities.GeneratedContent
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", string(domain.StatusScheduled), now).
		Order("scheduled_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomainSlice(records), nil
}

func toEntity(c *domain.Content) *entities.GeneratedContent {
	return &entities.GeneratedContent{
		ID:          c.ID,
		UserID:      c.UserID,
		PageID:      c.PageID,
		Title:       c.Title,
		Content:     c.Content,
		ContentType: string(c.ContentType),
		AIModel:     c.AIModel,
		Prompt:      c.Prompt,
		ImageURL:    c.ImageURL,
		Status:      string(c.Status),
		ScheduledAt: c.ScheduledAt,
		PublishedAt: c.PublishedAt,
	}
}

func toDomain(e *entities.GeneratedContent) *domain.Content {
	return &domain.Content{
		ID:          e.ID,
		UserID:      e.UserID,
		PageID:      e.PageID,
		Title:       e.Title,
		Content:     e.Content,
		ContentType: generation.ContentType(e.ContentType),
		AIModel:     e.AIModel,
		Prompt:      e.Prompt,
		ImageURL:    e.ImageURL,
		Status:      domain.Status(e.Status),
		ScheduledAt: e.ScheduledAt,
		PublishedAt: e.PublishedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toDomainSlice(records []entities.GeneratedContent) []domain.Content {
	out := make([]domain.Content, len(records))
	for i := range records {
		out[i] = *toDomain(&records[i])
	}
	return out
}

package page

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/pagepilot/pagepilot/internal/domain/page"
	"github.com/pagepilot/pagepilot/internal/infrastructure/database/entities"
)

// PostgresRepository persists Facebook pages via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]domain.Page, error) {
	var records []entities.FacebookPage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	pages := make([]domain.Page, len(records))
	for i := range records {
		pages[i] = *toDomain(&records[i])
	}
	return pages, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*domain.Page, error) {
	var record entities.FacebookPage
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDomain(&record), nil
}

func (r *PostgresRepository) GetByFacebookID(ctx context.Context, facebookPageID string) (*domain.Page, error) {
	var record entities.FacebookPage
	err := r.db.WithContext(ctx).First(&record, "facebook_page_id = ?", facebookPageID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDomain(&record), nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *domain.Page) (*domain.Page, error) {
	record := toEntity(p)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return toDomain(record), nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *domain.Page) (*domain.Page, error) {
	record := toEntity(p)
	tx := r.db.WithContext(ctx).Model(&entities.FacebookPage{}).
		Where("id = ?", p.ID).
		Select("page_name", "profile_image_url", "followers", "access_token", "is_active").
		Updates(record)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.Get(ctx, p.ID)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&entities.FacebookPage{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toEntity(p *domain.Page) *entities.FacebookPage {
	return &entities.FacebookPage{
		ID:              p.ID,
		UserID:          p.UserID,
		FacebookPageID:  p.FacebookPageID,
		PageName:        p.Name,
		ProfileImageURL: p.ProfileImageURL,
		Followers:       p.Followers,
		AccessToken:     p.AccessToken,
		IsActive:        p.IsActive,
	}
}

func toDomain(e *entities.FacebookPage) *domain.Page {
	return &domain.Page{
		ID:              e.ID,
		UserID:          e.UserID,
		FacebookPageID:  e.FacebookPageID,
		Name:            e.PageName,
		ProfileImageURL: e.ProfileImageURL,
		Followers:       e.Followers,
		AccessToken:     e.AccessToken,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

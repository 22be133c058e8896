package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/pagepilot/pagepilot/internal/domain/user"
	"github.com/pagepilot/pagepilot/internal/infrastructure/database/entities"
)

// PostgresRepository persists users via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	var record entities.User
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDomain(&record), nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	record := toEntity(u)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(record).Error
	if err != nil {
		return nil, err
	}
	return toDomain(record), nil
}

func (r *PostgresRepository) UpdateStripeInfo(ctx context.Context, id, customerID, subscriptionID string) (*domain.User, error) {
	tx := r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Updates(map[string]any{
		"stripe_customer_id":     customerID,
		"stripe_subscription_id": subscriptionID,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.Get(ctx, id)
}

func toEntity(u *domain.User) *entities.User {
	return &entities.User{
		ID:                   u.ID,
		Email:                u.Email,
		FirstName:            u.FirstName,
		LastName:             u.LastName,
		ProfileImageURL:      u.ProfileImageURL,
		StripeCustomerID:     u.StripeCustomerID,
		StripeSubscriptionID: u.StripeSubscriptionID,
		SubscriptionStatus:   u.SubscriptionStatus,
	}
}

func toDomain(e *entities.User) *domain.User {
	return &domain.User{
		ID:                   e.ID,
		Email:                e.Email,
		FirstName:            e.FirstName,
		LastName:             e.LastName,
		ProfileImageURL:      e.ProfileImageURL,
		StripeCustomerID:     e.StripeCustomerID,
		StripeSubscriptionID: e.StripeSubscriptionID,
		SubscriptionStatus:   e.SubscriptionStatus,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

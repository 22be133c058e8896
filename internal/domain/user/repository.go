package user

import "context"

// Repository exposes data access for User entities.
type Repository interface {
	Get(ctx context.Context, id string) (*User, error)
	Upsert(ctx context.Context, u *User) (*User, error)
	UpdateStripeInfo(ctx context.Context, id, customerID, subscriptionID string) (*User, error)
}

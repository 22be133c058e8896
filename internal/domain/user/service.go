package user

import (
	"context"

	"github.com/rs/zerolog"
)

// Service describes the business logic surface for user operations.
type Service interface {
	Get(ctx context.Context, id string) (*User, error)
	Upsert(ctx context.Context, u *User) (*User, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the user service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "user-service").Logger(),
	}
}

func (s *service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Upsert(ctx context.Context, u *User) (*User, error) {
	saved, err := s.repo.Upsert(ctx, u)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", u.ID).Msg("upsert user")
		return nil, err
	}
	return saved, nil
}

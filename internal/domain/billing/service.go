package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/user"
)

// Service describes the billing business logic surface.
type Service interface {
	CreateSubscription(ctx context.Context, userID string) (*Subscription, error)
}

type service struct {
	users    user.Repository
	provider PaymentProvider
	log      zerolog.Logger
}

// NewService wires the billing service. provider may be nil when billing
// is not configured; CreateSubscription then fails with ErrNotConfigured.
func NewService(users user.Repository, provider PaymentProvider, log zerolog.Logger) Service {
	return &service{
		users:    users,
		provider: provider,
		log:      log.With().Str("component", "billing-service").Logger(),
	}
}

// CreateSubscription returns the user's existing subscription when one is
// already on file, otherwise creates a customer plus an incomplete
// subscription and persists both ids on the user record.
func (s *service) CreateSubscription(ctx context.Context, userID string) (*Subscription, error) {
	if s.provider == nil {
		return nil, ErrNotConfigured
	}

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.StripeSubscriptionID != "" {
		sub, err := s.provider.RetrieveSubscription(ctx, u.StripeSubscriptionID)
		if err != nil {
			return nil, fmt.Errorf("retrieve subscription: %w", err)
		}
		return sub, nil
	}

	if strings.TrimSpace(u.Email) == "" {
		return nil, ErrNoEmail
	}

	customerID := u.StripeCustomerID
	if customerID == "" {
		name := strings.TrimSpace(u.FirstName + " " + u.LastName)
		customerID, err = s.provider.CreateCustomer(ctx, u.Email, name)
		if err != nil {
			return nil, fmt.Errorf("create customer: %w", err)
		}
	}

	sub, err := s.provider.CreateSubscription(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	if _, err := s.users.UpdateStripeInfo(ctx, u.ID, customerID, sub.ID); err != nil {
		s.log.Error().Err(err).Str("user_id", u.ID).Msg("persist billing ids")
	}

	s.log.Info().Str("user_id", u.ID).Str("subscription_id", sub.ID).Msg("subscription created")
	return sub, nil
}

package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/billing"
	"github.com/pagepilot/pagepilot/internal/domain/user"
)

type fakeUsers struct {
	users map[string]*user.User

	updatedCustomerID     string
	updatedSubscriptionID string
}

func (f *fakeUsers) Get(ctx context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsers) Upsert(ctx context.Context, u *user.User) (*user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) UpdateStripeInfo(ctx context.Context, id, customerID, subscriptionID string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	u.StripeCustomerID = customerID
	u.StripeSubscriptionID = subscriptionID
	f.updatedCustomerID = customerID
	f.updatedSubscriptionID = subscriptionID
	return u, nil
}

type fakeProvider struct {
	retrieved       []string
	customersMade   int
	subscriptionsTo []string
}

func (f *fakeProvider) RetrieveSubscription(ctx context.Context, subscriptionID string) (*billing.Subscription, error) {
	f.retrieved = append(f.retrieved, subscriptionID)
	return &billing.Subscription{ID: subscriptionID, Status: "active"}, nil
}

func (f *fakeProvider) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	f.customersMade++
	return "cus_test", nil
}

func (f *fakeProvider) CreateSubscription(ctx context.Context, customerID string) (*billing.Subscription, error) {
	f.subscriptionsTo = append(f.subscriptionsTo, customerID)
	return &billing.Subscription{ID: "sub_test", ClientSecret: "pi_secret", Status: "incomplete"}, nil
}

func TestCreateSubscriptionNotConfigured(t *testing.T) {
	svc := billing.NewService(&fakeUsers{users: map[string]*user.User{}}, nil, zerolog.Nop())

	if _, err := svc.CreateSubscription(context.Background(), "u1"); !errors.Is(err, billing.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestCreateSubscriptionRequiresEmail(t *testing.T) {
	users := &fakeUsers{users: map[string]*user.User{
		"u1": {ID: "u1"},
	}}
	svc := billing.NewService(users, &fakeProvider{}, zerolog.Nop())

	if _, err := svc.CreateSubscription(context.Background(), "u1"); !errors.Is(err, billing.ErrNoEmail) {
		t.Fatalf("err = %v, want ErrNoEmail", err)
	}
}

func TestCreateSubscriptionReturnsExisting(t *testing.T) {
	users := &fakeUsers{users: map[string]*user.User{
		"u1": {ID: "u1", Email: "a@b.c", StripeSubscriptionID: "sub_existing"},
	}}
	provider := &fakeProvider{}
	svc := billing.NewService(users, provider, zerolog.Nop())

	sub, err := svc.CreateSubscription(context.Background(), "u1")
	if err != nil {
		t.Fatalf("CreateSubscription: %v", err)
	}
	if sub.ID != "sub_existing" {
		t.Errorf("ID = %q, want sub_existing", sub.ID)
	}
	if provider.customersMade != 0 || len(provider.subscriptionsTo) != 0 {
		t.Errorf("existing subscription must not create anything: %+v", provider)
	}
}

func TestCreateSubscriptionNewCustomer(t *testing.T) {
	users := &fakeUsers{users: map[string]*user.User{
		"u1": {ID: "u1", Email: "a@b.c", FirstName: "Ada", LastName: "Lovelace"},
	}}
	provider := &fakeProvider{}
	svc := billing.NewService(users, provider, zerolog.Nop())

	sub, err := svc.CreateSubscription(context.Background(), "u1")
	if err != nil {
		t.Fatalf("CreateSubscription: %v", err)
	}
	if sub.ID != "sub_test" || sub.ClientSecret != "pi_secret" {
		t.Errorf("sub = %+v", sub)
	}
	if provider.customersMade != 1 {
		t.Errorf("customersMade = %d, want 1", provider.customersMade)
	}
	if users.updatedCustomerID != "cus_test" || users.updatedSubscriptionID != "sub_test" {
		t.Errorf("stripe ids not persisted: %q %q", users.updatedCustomerID, users.updatedSubscriptionID)
	}
}

func TestCreateSubscriptionReusesCustomer(t *testing.T) {
	users := &fakeUsers{users: map[string]*user.User{
		"u1": {ID: "u1", Email: "a@b.c", StripeCustomerID: "cus_prior"},
	}}
	provider := &fakeProvider{}
	svc := billing.NewService(users, provider, zerolog.Nop())

	if _, err := svc.CreateSubscription(context.Background(), "u1"); err != nil {
		t.Fatalf("CreateSubscription: %v", err)
	}
	if provider.customersMade != 0 {
		t.Errorf("should not create a second customer")
	}
	if len(provider.subscriptionsTo) != 1 || provider.subscriptionsTo[0] != "cus_prior" {
		t.Errorf("subscriptionsTo = %v, want [cus_prior]", provider.subscriptionsTo)
	}
}

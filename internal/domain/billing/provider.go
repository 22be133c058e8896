package billing

import "context"

// PaymentProvider abstracts the payment platform API.
type PaymentProvider interface {
	RetrieveSubscription(ctx context.Context, subscriptionID string) (*Subscription, error)
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	CreateSubscription(ctx context.Context, customerID string) (*Subscription, error)
}

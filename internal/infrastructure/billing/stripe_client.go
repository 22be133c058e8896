package billing

import (
	"context"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"

	domain "github.com/pagepilot/pagepilot/internal/domain/billing"
)

// StripeClient implements the payment provider against the Stripe API.
type StripeClient struct {
	api     *client.API
	priceID string
}

// NewStripeClient builds a Stripe-backed payment provider.
func NewStripeClient(secretKey, priceID string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api, priceID: priceID}
}

func (c *StripeClient) RetrieveSubscription(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Params: stripe.Params{Context: ctx},
	}
	params.AddExpand("latest_invoice.payment_intent")

	sub, err := c.api.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		return nil, err
	}
	return toDomain(sub), nil
}

func (c *StripeClient) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(email),
	}
	if name != "" {
		params.Name = stripe.String(name)
	}
	customer, err := c.api.Customers.New(params)
	if err != nil {
		return "", err
	}
	return customer.ID, nil
}

// CreateSubscription opens an incomplete subscription so the client can
// confirm the first payment with the returned client secret.
func (c *StripeClient) CreateSubscription(ctx context.Context, customerID string) (*domain.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(c.priceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	params.AddExpand("latest_invoice.payment_intent")

	sub, err := c.api.Subscriptions.New(params)
	if err != nil {
		return nil, err
	}
	return toDomain(sub), nil
}

func toDomain(sub *stripe.Subscription) *domain.Subscription {
	out := &domain.Subscription{
		ID:     sub.ID,
		Status: string(sub.Status),
	}
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		out.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}
	return out
}

package stripe

import (
	"context"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// Client is the subset of the Stripe API used by checkout and health checks.
type Client interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error)
	GetBalance(ctx context.Context) (*stripe.Balance, error)
}

type stripeClient struct {
	api *client.API
}

func NewStripeClient(apiKey string) Client {
	return &stripeClient{api: client.New(apiKey, nil)}
}

// NewStripeClientWithBackend routes every call through backend, e.g. a test server.
func NewStripeClientWithBackend(apiKey string, backend stripe.Backend) Client {
	return &stripeClient{api: client.New(apiKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})}
}

// CreateCheckoutSession implements Client.
func (s *stripeClient) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// GetCheckoutSession implements Client.
func (s *stripeClient) GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := s.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// GetBalance implements Client.
func (s *stripeClient) GetBalance(ctx context.Context) (*stripe.Balance, error) {
	params := &stripe.BalanceParams{}
	params.Context = ctx

	balance, err := s.api.Balance.Get(params)
	if err != nil {
		return nil, err
	}

	return balance, nil
}

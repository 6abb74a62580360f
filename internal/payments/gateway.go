// Package payments wraps the payment processor. The rest of the system
// only ever asks it one thing: turn an amount into a client secret the
// browser can use to complete the charge.
package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Gateway creates a pending charge for the given amount in minor units
// and returns the opaque client secret representing it.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// StripeGateway is the production Gateway, backed by Stripe payment
// intents restricted to card payments.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, nil)}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

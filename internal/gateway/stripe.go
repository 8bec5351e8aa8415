// Package gateway wraps the external payment processor.
package gateway

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeGateway creates payment intents against the Stripe API.
type StripeGateway struct {
	api      *client.API
	currency string
}

// NewStripeGateway constructs a gateway bound to the given secret key.
func NewStripeGateway(secretKey, currency string) *StripeGateway {
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return &StripeGateway{api: client.New(secretKey, nil), currency: currency}
}

// CreatePaymentIntent pre-authorizes a card charge for the minor-unit amount
// and returns the processor's client secret verbatim.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pillowstat/models"
	"pillowstat/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeGateway talks to the Stripe API with a per-instance client.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	return &StripeGateway{
		api:           client.New(secretKey, nil),
		webhookSecret: webhookSecret,
	}
}

func (g *StripeGateway) Name() string { return "stripe" }

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, bookingID string, amount float64, currency, description string) (*models.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(utils.ToMinorUnits(amount)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if description != "" {
		params.Description = stripe.String(description)
	}
	params.AddMetadata("bookingId", bookingID)
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return &models.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       utils.FromMinorUnits(pi.Amount),
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
		BookingID:    bookingID,
		CreatedAt:    time.Unix(pi.Created, 0),
	}, nil
}

// ConfirmPayment reads the intent back; the card itself is confirmed client-side.
func (g *StripeGateway) ConfirmPayment(ctx context.Context, paymentIntentID string) (string, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.Get(paymentIntentID, params)
	if err != nil {
		return "", fmt.Errorf("stripe: get payment intent: %w", err)
	}
	return string(pi.Status), nil
}

func (g *StripeGateway) CreateRefund(ctx context.Context, paymentIntentID string, amount float64, reason string) (*models.GatewayRefund, error) {
	if paymentIntentID == "" {
		return nil, fmt.Errorf("stripe: refund needs the original payment intent")
	}
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
		Amount:        stripe.Int64(utils.ToMinorUnits(amount)),
		Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	if reason != "" {
		params.AddMetadata("note", reason)
	}
	params.Context = ctx

	re, err := g.api.Refunds.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create refund: %w", err)
	}
	return &models.GatewayRefund{
		ID:     re.ID,
		Amount: utils.FromMinorUnits(re.Amount),
		Status: string(re.Status),
		Reason: reason,
	}, nil
}

// ParseWebhook verifies the Stripe-Signature header before decoding the event.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*models.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("stripe: webhook verification failed: %w", err)
	}

	out := &models.WebhookEvent{
		ID:         event.ID,
		Type:       string(event.Type),
		ReceivedAt: time.Now(),
	}
	var obj struct {
		ID       string            `json:"id"`
		Amount   int64             `json:"amount"`
		Metadata map[string]string `json:"metadata"`
	}
	if event.Data != nil && len(event.Data.Raw) > 0 {
		if err := json.Unmarshal(event.Data.Raw, &obj); err == nil {
			out.ObjectID = obj.ID
			out.BookingID = obj.Metadata["bookingId"]
			out.Amount = utils.FromMinorUnits(obj.Amount)
		}
	}
	return out, nil
}

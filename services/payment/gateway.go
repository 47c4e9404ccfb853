package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pillowstat/models"

	"github.com/google/uuid"
)

// Gateway is the external card processor. Calls may block on the network and are
// never made while a unit lock is held.
type Gateway interface {
	Name() string
	CreatePaymentIntent(ctx context.Context, bookingID string, amount float64, currency, description string) (*models.PaymentIntent, error)
	// ConfirmPayment reports the processor-side status of an intent ("succeeded" when captured).
	ConfirmPayment(ctx context.Context, paymentIntentID string) (string, error)
	CreateRefund(ctx context.Context, paymentIntentID string, amount float64, reason string) (*models.GatewayRefund, error)
	ParseWebhook(payload []byte, signature string) (*models.WebhookEvent, error)
}

// --- Mock gateway ---

// MockGateway succeeds every call locally. It is the default for development and tests.
type MockGateway struct {
	Now func() time.Time
}

func NewMockGateway() *MockGateway {
	return &MockGateway{Now: time.Now}
}

func (g *MockGateway) Name() string { return "mock" }

func (g *MockGateway) CreatePaymentIntent(_ context.Context, bookingID string, amount float64, currency, _ string) (*models.PaymentIntent, error) {
	id := "pi_mock_" + shortID()
	return &models.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret_" + shortID(),
		Amount:       amount,
		Currency:     currency,
		Status:       "requires_payment_method",
		BookingID:    bookingID,
		CreatedAt:    g.Now(),
	}, nil
}

func (g *MockGateway) ConfirmPayment(_ context.Context, paymentIntentID string) (string, error) {
	if paymentIntentID == "" {
		return "", fmt.Errorf("payment intent id is empty")
	}
	return "succeeded", nil
}

func (g *MockGateway) CreateRefund(_ context.Context, _ string, amount float64, reason string) (*models.GatewayRefund, error) {
	return &models.GatewayRefund{
		ID:     "re_mock_" + shortID(),
		Amount: amount,
		Status: "succeeded",
		Reason: reason,
	}, nil
}

type mockWebhook struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string            `json:"id"`
			Amount   int64             `json:"amount"`
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// ParseWebhook accepts the Stripe event envelope without verifying a signature.
func (g *MockGateway) ParseWebhook(payload []byte, _ string) (*models.WebhookEvent, error) {
	var raw mockWebhook
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("invalid webhook payload: %w", err)
	}
	if raw.Type == "" {
		return nil, fmt.Errorf("webhook event type is missing")
	}
	return &models.WebhookEvent{
		ID:         raw.ID,
		Type:       raw.Type,
		ObjectID:   raw.Data.Object.ID,
		BookingID:  raw.Data.Object.Metadata["bookingId"],
		Amount:     float64(raw.Data.Object.Amount) / 100,
		ReceivedAt: g.Now(),
	}, nil
}

func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}

package models

import "time"

// --- Gateway requests & results ---

type PaymentIntent struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"clientSecret"`
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency"`
	Status       string            `json:"status"`
	BookingID    string            `json:"bookingId"`
	CreatedAt    time.Time         `json:"createdAt"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string
	BookingID       string
	Amount          *float64
	Type            TransactionType
}

type RefundRequest struct {
	BookingID string
	Amount    *float64
	Reason    string
}

// GatewayRefund is what the payment provider reports for a refund.
type GatewayRefund struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	Reason string  `json:"reason,omitempty"`
}

// PaymentResult pairs the recorded transaction with the booking's recomputed payment status.
type PaymentResult struct {
	Transaction   Transaction   `json:"transaction"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

type RefundResult struct {
	Refund        GatewayRefund `json:"refund"`
	Transaction   Transaction   `json:"transaction"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

type PaymentSummary struct {
	BookingID     string        `json:"bookingId"`
	TotalAmount   float64       `json:"totalAmount"`
	TotalPaid     float64       `json:"totalPaid"`
	TotalRefunded float64       `json:"totalRefunded"`
	NetPaid       float64       `json:"netPaid"`
	Remaining     float64       `json:"remaining"`
	IsFullyPaid   bool          `json:"isFullyPaid"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Transactions  []Transaction `json:"transactions"`
}

// --- Webhooks ---

type WebhookEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ObjectID   string    `json:"objectId,omitempty"`
	BookingID  string    `json:"bookingId,omitempty"`
	Amount     float64   `json:"amount,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
}

type WebhookAck struct {
	Received bool   `json:"received"`
	Type     string `json:"type"`
	Handled  bool   `json:"handled"`
	Message  string `json:"message"`
}

type TransactionFilter struct {
	BookingID string
	Type      TransactionType
	Status    TransactionStatus
	Page      int
	Limit     int
}

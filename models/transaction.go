package models

import "time"

type TransactionType string

const (
	TransactionPayment TransactionType = "payment"
	TransactionDeposit TransactionType = "deposit"
	TransactionRefund  TransactionType = "refund"
	TransactionFee     TransactionType = "fee"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

// Transaction records money movement reported by the payment gateway.
type Transaction struct {
	ID          string            `json:"id"`
	BookingID   string            `json:"bookingId"`
	Amount      float64           `json:"amount"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	ExternalRef string            `json:"stripeId,omitempty"`
	Description string            `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func (t Transaction) GetID() string      { return t.ID }
func (t Transaction) Clone() Transaction { return t }

// Inflow reports whether the transaction counts toward amount paid.
func (t Transaction) Inflow() bool {
	return t.Type == TransactionPayment || t.Type == TransactionDeposit
}

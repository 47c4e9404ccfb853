package payment

import (
	"context"
	"time"

	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/metrics"
	"pillowstat/models"
	"pillowstat/services/booking"

	"go.uber.org/zap"
)

// PaymentService records what the gateway reports and keeps each booking's payment
// status derived from its completed transactions.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, bookingID string, amount float64, description string) (*models.PaymentIntent, error)
	ConfirmPayment(ctx context.Context, req models.ConfirmPaymentRequest) (*models.PaymentResult, error)
	CreateRefund(ctx context.Context, req models.RefundRequest) (*models.RefundResult, error)
	GetSummary(bookingID string) (*models.PaymentSummary, error)
	ListTransactions(filter models.TransactionFilter) models.Page[models.Transaction]
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*models.WebhookAck, error)
}

type DefaultPaymentService struct {
	Transactions recordsRepo.RecordStore[models.Transaction]
	Bookings     booking.BookingService
	Gateway      Gateway
	Currency     string
	Logger       *zap.Logger
	Metrics      *metrics.Metrics
	Now          func() time.Time

	// per-booking serialization of the paid/refunded arithmetic
	locks *booking.UnitLocks
}

func NewPaymentService(
	txs recordsRepo.RecordStore[models.Transaction],
	bookings booking.BookingService,
	gateway Gateway,
	currency string,
	logger *zap.Logger,
	m *metrics.Metrics,
) *DefaultPaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gateway == nil {
		gateway = NewMockGateway()
	}
	return &DefaultPaymentService{
		Transactions: txs,
		Bookings:     bookings,
		Gateway:      gateway,
		Currency:     currency,
		Logger:       logger,
		Metrics:      m,
		Now:          time.Now,
		locks:        booking.NewUnitLocks(),
	}
}

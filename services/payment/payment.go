package payment

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"pillowstat/models"
	"pillowstat/utils"

	"go.uber.org/zap"
)

// --- Payment intents ---

func (s *DefaultPaymentService) CreatePaymentIntent(ctx context.Context, bookingID string, amount float64, description string) (*models.PaymentIntent, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, utils.NewInvalidInput("bookingId", "bookingId and amount are required")
	}
	if _, err := s.Bookings.GetBooking(bookingID); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, utils.NewInvalidInput("amount", "Amount must be greater than 0")
	}

	pi, err := s.Gateway.CreatePaymentIntent(ctx, bookingID, utils.RoundMoney(amount), utils.NormalizeCurrency(s.Currency), description)
	if err != nil {
		s.Logger.Error("Payment intent creation failed", zap.String("bookingId", bookingID), zap.Error(err))
		return nil, utils.NewInternal("Failed to create payment intent", err)
	}
	s.Logger.Info("Payment intent created",
		zap.String("gateway", s.Gateway.Name()),
		zap.String("bookingId", bookingID),
		zap.String("paymentIntentId", pi.ID))
	return pi, nil
}

// ConfirmPayment records a completed payment (or deposit) once the gateway reports success.
// Amount defaults to the booking total.
func (s *DefaultPaymentService) ConfirmPayment(ctx context.Context, req models.ConfirmPaymentRequest) (*models.PaymentResult, error) {
	if req.PaymentIntentID == "" || req.BookingID == "" {
		return nil, utils.NewInvalidInput("paymentIntentId", "paymentIntentId and bookingId are required")
	}
	b, err := s.Bookings.GetBooking(req.BookingID)
	if err != nil {
		return nil, err
	}
	amount := b.TotalAmount
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount <= 0 {
		return nil, utils.NewInvalidInput("amount", "Amount must be greater than 0")
	}
	txType := req.Type
	if txType == "" {
		txType = models.TransactionPayment
	}
	if txType != models.TransactionPayment && txType != models.TransactionDeposit {
		return nil, utils.NewInvalidInput("type", "Type must be payment or deposit")
	}

	status, err := s.Gateway.ConfirmPayment(ctx, req.PaymentIntentID)
	if err != nil {
		s.Logger.Error("Payment confirmation failed", zap.String("paymentIntentId", req.PaymentIntentID), zap.Error(err))
		return nil, utils.NewInternal("Failed to confirm payment", err)
	}
	if status != "succeeded" {
		return nil, utils.NewInvalidState(fmt.Sprintf("Payment intent is %s, not succeeded", status))
	}

	unlock := s.locks.Lock(req.BookingID)
	defer unlock()

	if s.alreadyRecorded(req.BookingID, req.PaymentIntentID, models.TransactionPayment, models.TransactionDeposit) {
		return nil, utils.NewConflict("Payment already recorded", nil, nil)
	}

	tx, err := s.record(models.Transaction{
		BookingID:   req.BookingID,
		Amount:      utils.RoundMoney(amount),
		Type:        txType,
		Status:      models.TransactionCompleted,
		ExternalRef: req.PaymentIntentID,
		Description: "Payment confirmed",
	})
	if err != nil {
		return nil, err
	}
	ps, err := s.syncStatus(req.BookingID)
	if err != nil {
		return nil, err
	}
	return &models.PaymentResult{Transaction: tx, PaymentStatus: ps}, nil
}

// --- Refunds ---

// CreateRefund refunds against the most recent completed payment. The amount may not
// exceed what has been paid net of earlier refunds.
func (s *DefaultPaymentService) CreateRefund(ctx context.Context, req models.RefundRequest) (*models.RefundResult, error) {
	if req.BookingID == "" || req.Amount == nil {
		return nil, utils.NewInvalidInput("amount", "bookingId and amount are required")
	}
	if _, err := s.Bookings.GetBooking(req.BookingID); err != nil {
		return nil, err
	}
	amount := utils.RoundMoney(*req.Amount)
	if amount <= 0 {
		return nil, utils.NewInvalidInput("amount", "Amount must be greater than 0")
	}

	unlock := s.locks.Lock(req.BookingID)
	defer unlock()

	txs := s.transactionsFor(req.BookingID)
	paid, refunded, _ := Totals(txs)
	net := utils.RoundMoney(paid - refunded)
	if amount > net {
		return nil, utils.NewInvalidInput("amount",
			fmt.Sprintf("Refund amount ($%.2f) exceeds total paid ($%.2f)", amount, net))
	}

	re, err := s.Gateway.CreateRefund(ctx, lastPaymentRef(txs), amount, req.Reason)
	if err != nil {
		s.Logger.Error("Refund failed", zap.String("bookingId", req.BookingID), zap.Error(err))
		return nil, utils.NewInternal("Failed to create refund", err)
	}

	description := req.Reason
	if description == "" {
		description = "Refund processed"
	}
	tx, err := s.record(models.Transaction{
		BookingID:   req.BookingID,
		Amount:      amount,
		Type:        models.TransactionRefund,
		Status:      models.TransactionCompleted,
		ExternalRef: re.ID,
		Description: description,
	})
	if err != nil {
		return nil, err
	}
	ps, err := s.syncStatus(req.BookingID)
	if err != nil {
		return nil, err
	}
	return &models.RefundResult{Refund: *re, Transaction: tx, PaymentStatus: ps}, nil
}

func lastPaymentRef(txs []models.Transaction) string {
	var ref string
	var latest models.Transaction
	for _, t := range txs {
		if t.Status == models.TransactionCompleted && t.Inflow() && t.ExternalRef != "" && !t.CreatedAt.Before(latest.CreatedAt) {
			latest = t
			ref = t.ExternalRef
		}
	}
	return ref
}

// --- Reads ---

func (s *DefaultPaymentService) GetSummary(bookingID string) (*models.PaymentSummary, error) {
	if bookingID == "" {
		return nil, utils.NewInvalidInput("bookingId", "bookingId is required")
	}
	b, err := s.Bookings.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	txs := s.transactionsFor(bookingID)
	paid, refunded, _ := Totals(txs)
	net := utils.RoundMoney(paid - refunded)
	remaining := utils.RoundMoney(math.Max(0, b.TotalAmount-net))

	sort.SliceStable(txs, func(i, j int) bool { return txs[i].CreatedAt.After(txs[j].CreatedAt) })
	return &models.PaymentSummary{
		BookingID:     bookingID,
		TotalAmount:   b.TotalAmount,
		TotalPaid:     utils.RoundMoney(paid),
		TotalRefunded: utils.RoundMoney(refunded),
		NetPaid:       net,
		Remaining:     remaining,
		IsFullyPaid:   remaining == 0,
		PaymentStatus: b.PaymentStatus,
		Transactions:  txs,
	}, nil
}

func (s *DefaultPaymentService) ListTransactions(f models.TransactionFilter) models.Page[models.Transaction] {
	matches := s.Transactions.Filter(func(t models.Transaction) bool {
		switch {
		case f.BookingID != "" && t.BookingID != f.BookingID:
			return false
		case f.Type != "" && t.Type != f.Type:
			return false
		case f.Status != "" && t.Status != f.Status:
			return false
		}
		return true
	})
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].CreatedAt.After(matches[j].CreatedAt) })
	return models.Paginate(matches, f.Page, f.Limit, utils.DefaultPageLimit)
}

// --- Webhooks ---

// HandleWebhook acknowledges every verified event. A succeeded intent carrying a
// bookingId is recorded as a payment unless it was already confirmed.
func (s *DefaultPaymentService) HandleWebhook(_ context.Context, payload []byte, signature string) (*models.WebhookAck, error) {
	event, err := s.Gateway.ParseWebhook(payload, signature)
	if err != nil {
		s.Logger.Warn("Rejected webhook", zap.Error(err))
		return nil, utils.NewInvalidInput("payload", "Invalid webhook payload")
	}
	log := s.Logger.With(zap.String("event", event.Type), zap.String("object", event.ObjectID))
	ack := &models.WebhookAck{Received: true, Type: event.Type, Handled: true}

	switch event.Type {
	case "payment_intent.succeeded":
		ack.Message = "Payment intent succeeded event received"
		if event.BookingID != "" && event.Amount > 0 {
			if err := s.recordFromWebhook(event); err != nil {
				log.Error("Failed to record webhook payment", zap.Error(err))
			}
		}
	case "payment_intent.payment_failed":
		ack.Message = "Payment failed event received"
		log.Warn("Payment failed")
	case "charge.refunded":
		ack.Message = "Refund event received"
		log.Info("Charge refunded")
	case "charge.dispute.created":
		ack.Message = "Dispute created event received"
		log.Warn("Dispute opened")
	default:
		ack.Handled = false
		ack.Message = "Unhandled event type: " + event.Type
		log.Info("Unhandled webhook event")
	}
	return ack, nil
}

func (s *DefaultPaymentService) recordFromWebhook(event *models.WebhookEvent) error {
	if _, err := s.Bookings.GetBooking(event.BookingID); err != nil {
		return err
	}
	unlock := s.locks.Lock(event.BookingID)
	defer unlock()
	if s.alreadyRecorded(event.BookingID, event.ObjectID, models.TransactionPayment, models.TransactionDeposit) {
		return nil
	}
	if _, err := s.record(models.Transaction{
		BookingID:   event.BookingID,
		Amount:      utils.RoundMoney(event.Amount),
		Type:        models.TransactionPayment,
		Status:      models.TransactionCompleted,
		ExternalRef: event.ObjectID,
		Description: "Payment received via webhook",
	}); err != nil {
		return err
	}
	_, err := s.syncStatus(event.BookingID)
	return err
}

// --- helpers ---

func (s *DefaultPaymentService) transactionsFor(bookingID string) []models.Transaction {
	return s.Transactions.Filter(func(t models.Transaction) bool { return t.BookingID == bookingID })
}

func (s *DefaultPaymentService) alreadyRecorded(bookingID, ref string, types ...models.TransactionType) bool {
	return s.Transactions.Count(func(t models.Transaction) bool {
		if t.BookingID != bookingID || t.ExternalRef != ref {
			return false
		}
		for _, ty := range types {
			if t.Type == ty {
				return true
			}
		}
		return false
	}) > 0
}

func (s *DefaultPaymentService) record(tx models.Transaction) (models.Transaction, error) {
	tx.ID = utils.NewID(utils.TransactionIDPrefix)
	tx.CreatedAt = s.Now()
	created, err := s.Transactions.Create(tx)
	if err != nil {
		s.Logger.Error("Failed to store transaction", zap.String("bookingId", tx.BookingID), zap.Error(err))
		return models.Transaction{}, utils.NewInternal("Failed to record transaction", err)
	}
	s.Metrics.PaymentRecorded(string(tx.Type))
	s.Logger.Info("Transaction recorded",
		zap.String("transactionId", created.ID),
		zap.String("bookingId", created.BookingID),
		zap.String("type", string(created.Type)),
		zap.Float64("amount", created.Amount))
	return created, nil
}

// syncStatus must run under the booking's payment lock.
func (s *DefaultPaymentService) syncStatus(bookingID string) (models.PaymentStatus, error) {
	b, err := s.Bookings.GetBooking(bookingID)
	if err != nil {
		return "", err
	}
	status := ComputePaymentStatus(b.TotalAmount, s.transactionsFor(bookingID), b.PaymentStatus)
	if status == b.PaymentStatus {
		return status, nil
	}
	if _, err := s.Bookings.SetPaymentStatus(bookingID, status); err != nil {
		return "", err
	}
	return status, nil
}

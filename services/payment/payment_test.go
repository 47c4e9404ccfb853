package payment

import (
	"context"
	"fmt"
	"testing"
	"time"

	availabilityRepo "pillowstat/database/repository/availability"
	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/models"
	"pillowstat/services/booking"
	"pillowstat/services/guest"
	"pillowstat/services/units"
	"pillowstat/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, total float64) (*DefaultPaymentService, *models.Booking) {
	t.Helper()
	bookings := recordsRepo.NewStore[models.Booking]()
	guests := guest.NewGuestService(recordsRepo.NewStore[models.Guest](), bookings, nil)
	bsvc := booking.NewBookingService(bookings, guests, availabilityRepo.NewMemoryLedger(), units.NewStaticCatalog(nil), nil, nil, nil)

	g, err := guests.CreateGuest(models.CreateGuestRequest{
		FirstName: "Michael", LastName: "Chen", Email: "mchen@email.com", Phone: "(206) 555-0102",
	})
	require.NoError(t, err)
	v, err := bsvc.CreateBooking(models.CreateBookingRequest{
		GuestID:     g.ID,
		UnitID:      "studio-suite",
		StartDate:   models.MustParseDate("2025-04-01"),
		EndDate:     models.MustParseDate("2025-05-01"),
		TotalAmount: &total,
	})
	require.NoError(t, err)

	svc := NewPaymentService(recordsRepo.NewStore[models.Transaction](), bsvc, NewMockGateway(), "USD", nil, nil)
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	b := v.Booking
	return svc, &b
}

func ptr(v float64) *float64 { return &v }

func TestComputePaymentStatus(t *testing.T) {
	pay := func(a float64) models.Transaction {
		return models.Transaction{Type: models.TransactionPayment, Status: models.TransactionCompleted, Amount: a}
	}
	refund := func(a float64) models.Transaction {
		return models.Transaction{Type: models.TransactionRefund, Status: models.TransactionCompleted, Amount: a}
	}
	pendingPay := models.Transaction{Type: models.TransactionPayment, Status: models.TransactionPending, Amount: 500}
	deposit := models.Transaction{Type: models.TransactionDeposit, Status: models.TransactionCompleted, Amount: 100}

	tests := []struct {
		name    string
		total   float64
		txs     []models.Transaction
		current models.PaymentStatus
		want    models.PaymentStatus
	}{
		{"nothing recorded keeps current", 500, nil, models.PaymentFailed, models.PaymentFailed},
		{"nothing recorded defaults to pending", 500, nil, "", models.PaymentPending},
		{"pending payments ignored", 500, []models.Transaction{pendingPay}, models.PaymentPending, models.PaymentPending},
		{"full payment", 500, []models.Transaction{pay(500)}, models.PaymentPending, models.PaymentPaid},
		{"overpayment is paid", 500, []models.Transaction{pay(600)}, models.PaymentPending, models.PaymentPaid},
		{"deposit is partial", 500, []models.Transaction{deposit}, models.PaymentPending, models.PaymentPartial},
		{"deposit plus balance", 500, []models.Transaction{deposit, pay(400)}, models.PaymentPartial, models.PaymentPaid},
		{"partial refund", 500, []models.Transaction{pay(500), refund(200)}, models.PaymentPaid, models.PaymentPartial},
		{"full refund", 500, []models.Transaction{pay(500), refund(500)}, models.PaymentPaid, models.PaymentRefunded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePaymentStatus(tt.total, tt.txs, tt.current))
		})
	}
}

func TestConfirmPaymentRecordsAndUpdatesStatus(t *testing.T) {
	svc, b := newTestService(t, 2000)
	ctx := context.Background()

	pi, err := svc.CreatePaymentIntent(ctx, b.ID, 500, "Deposit")
	require.NoError(t, err)
	assert.Equal(t, "usd", pi.Currency)
	assert.Equal(t, b.ID, pi.BookingID)

	res, err := svc.ConfirmPayment(ctx, models.ConfirmPaymentRequest{
		PaymentIntentID: pi.ID, BookingID: b.ID, Amount: ptr(500), Type: models.TransactionDeposit,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPartial, res.PaymentStatus)
	assert.Equal(t, pi.ID, res.Transaction.ExternalRef)

	// default amount is the booking total
	res, err = svc.ConfirmPayment(ctx, models.ConfirmPaymentRequest{PaymentIntentID: "pi_second", BookingID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, res.Transaction.Amount)
	assert.Equal(t, models.PaymentPaid, res.PaymentStatus)

	stored, err := svc.Bookings.GetBooking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)

	_, err = svc.ConfirmPayment(ctx, models.ConfirmPaymentRequest{PaymentIntentID: pi.ID, BookingID: b.ID, Amount: ptr(500)})
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestPaymentValidation(t *testing.T) {
	svc, b := newTestService(t, 1000)
	ctx := context.Background()

	_, err := svc.CreatePaymentIntent(ctx, "missing", 100, "")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
	_, err = svc.CreatePaymentIntent(ctx, b.ID, 0, "")
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))
	_, err = svc.ConfirmPayment(ctx, models.ConfirmPaymentRequest{BookingID: b.ID})
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))
	_, err = svc.ConfirmPayment(ctx, models.ConfirmPaymentRequest{PaymentIntentID: "pi_x", BookingID: b.ID, Type: models.TransactionRefund})
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))
	_, err = svc.CreateRefund(ctx, models.RefundRequest{BookingID: b.ID})
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))
}

func TestRefundCannotExceedNetPaid(t *testing.T) {
	svc, b := newTestService(t, 1000)
	ctx := context.Background()

	_, err := svc.ConfirmPayment(ctx, models.ConfirmPaymentRequest{PaymentIntentID: "pi_1", BookingID: b.ID})
	require.NoError(t, err)

	res, err := svc.CreateRefund(ctx, models.RefundRequest{BookingID: b.ID, Amount: ptr(400), Reason: "Early checkout"})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPartial, res.PaymentStatus)
	assert.Equal(t, "Early checkout", res.Transaction.Description)

	_, err = svc.CreateRefund(ctx, models.RefundRequest{BookingID: b.ID, Amount: ptr(600.01)})
	require.Error(t, err)
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))
	assert.Contains(t, err.Error(), "exceeds total paid ($600.00)")

	res, err = svc.CreateRefund(ctx, models.RefundRequest{BookingID: b.ID, Amount: ptr(600)})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRefunded, res.PaymentStatus)

	summary, err := svc.GetSummary(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, summary.TotalPaid)
	assert.Equal(t, 1000.0, summary.TotalRefunded)
	assert.Equal(t, 0.0, summary.NetPaid)
	assert.Equal(t, 1000.0, summary.Remaining)
	assert.False(t, summary.IsFullyPaid)
	require.Len(t, summary.Transactions, 3)
	assert.Equal(t, models.TransactionRefund, summary.Transactions[0].Type, "newest first")
}

func TestWebhookRecordsSucceededIntentOnce(t *testing.T) {
	svc, b := newTestService(t, 750)
	payload := []byte(fmt.Sprintf(`{"id":"evt_1","type":"payment_intent.succeeded",
		"data":{"object":{"id":"pi_hook","amount":75000,"metadata":{"bookingId":%q}}}}`, b.ID))

	ack, err := svc.HandleWebhook(context.Background(), payload, "")
	require.NoError(t, err)
	assert.True(t, ack.Received)
	assert.True(t, ack.Handled)

	_, err = svc.HandleWebhook(context.Background(), payload, "")
	require.NoError(t, err)

	page := svc.ListTransactions(models.TransactionFilter{BookingID: b.ID})
	require.Len(t, page.Data, 1)
	assert.Equal(t, 750.0, page.Data[0].Amount)

	stored, err := svc.Bookings.GetBooking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)
}

func TestWebhookUnknownAndInvalid(t *testing.T) {
	svc, _ := newTestService(t, 100)

	ack, err := svc.HandleWebhook(context.Background(), []byte(`{"id":"evt_2","type":"customer.created","data":{"object":{}}}`), "")
	require.NoError(t, err)
	assert.True(t, ack.Received)
	assert.False(t, ack.Handled)

	_, err = svc.HandleWebhook(context.Background(), []byte(`not json`), "")
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))
}

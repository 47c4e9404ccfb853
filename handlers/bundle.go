package handlers

import (
	"pillowstat/metrics"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Metrics *metrics.Metrics

	// Booking endpoints
	ListBookings  gin.HandlerFunc
	CreateBooking gin.HandlerFunc
	GetBooking    gin.HandlerFunc
	UpdateBooking gin.HandlerFunc
	CancelBooking gin.HandlerFunc

	// Availability endpoints
	GetAvailability       gin.HandlerFunc
	SetAvailability       gin.HandlerFunc
	ReconcileAvailability gin.HandlerFunc

	// Guest endpoints
	ListGuests  gin.HandlerFunc
	CreateGuest gin.HandlerFunc
	GetGuest    gin.HandlerFunc
	UpdateGuest gin.HandlerFunc

	// Payment endpoints
	CreatePaymentIntent gin.HandlerFunc
	ConfirmPayment      gin.HandlerFunc
	CreateRefund        gin.HandlerFunc
	GetPaymentSummary   gin.HandlerFunc
	ListTransactions    gin.HandlerFunc
	PaymentWebhook      gin.HandlerFunc

	// Message endpoints
	ListMessages gin.HandlerFunc
	SendMessage  gin.HandlerFunc
	MarkRead     gin.HandlerFunc

	// Inquiry endpoints
	ListInquiries gin.HandlerFunc
	CreateInquiry gin.HandlerFunc
	UpdateInquiry gin.HandlerFunc

	// Catalog & reporting
	ListUnits    gin.HandlerFunc
	GetUnit      gin.HandlerFunc
	GetQuote     gin.HandlerFunc
	GetAnalytics gin.HandlerFunc
}

// Handlers holds the constructed handler structs NewHandlerBundle flattens.
type Handlers struct {
	Bookings     *BookingHandler
	Availability *AvailabilityHandler
	Guests       *GuestHandler
	Payments     *PaymentHandler
	Messages     *MessageHandler
	Inquiries    *InquiryHandler
	Units        *UnitHandler
	Analytics    *AnalyticsHandler
}

func NewHandlerBundle(h Handlers, m *metrics.Metrics) *HandlerBundle {
	RegisterValidators()
	return &HandlerBundle{
		Metrics: m,

		ListBookings:  h.Bookings.ListBookingsHandler,
		CreateBooking: h.Bookings.CreateBookingHandler,
		GetBooking:    h.Bookings.GetBookingHandler,
		UpdateBooking: h.Bookings.UpdateBookingHandler,
		CancelBooking: h.Bookings.CancelBookingHandler,

		GetAvailability:       h.Availability.GetAvailabilityHandler,
		SetAvailability:       h.Availability.SetAvailabilityHandler,
		ReconcileAvailability: h.Availability.ReconcileHandler,

		ListGuests:  h.Guests.ListGuestsHandler,
		CreateGuest: h.Guests.CreateGuestHandler,
		GetGuest:    h.Guests.GetGuestHandler,
		UpdateGuest: h.Guests.UpdateGuestHandler,

		CreatePaymentIntent: h.Payments.CreatePaymentIntentHandler,
		ConfirmPayment:      h.Payments.ConfirmPaymentHandler,
		CreateRefund:        h.Payments.CreateRefundHandler,
		GetPaymentSummary:   h.Payments.GetSummaryHandler,
		ListTransactions:    h.Payments.ListTransactionsHandler,
		PaymentWebhook:      h.Payments.WebhookHandler,

		ListMessages: h.Messages.ListMessagesHandler,
		SendMessage:  h.Messages.SendMessageHandler,
		MarkRead:     h.Messages.MarkReadHandler,

		ListInquiries: h.Inquiries.ListInquiriesHandler,
		CreateInquiry: h.Inquiries.CreateInquiryHandler,
		UpdateInquiry: h.Inquiries.UpdateInquiryHandler,

		ListUnits:    h.Units.ListUnitsHandler,
		GetUnit:      h.Units.GetUnitHandler,
		GetQuote:     h.Units.QuoteHandler,
		GetAnalytics: h.Analytics.GetAnalyticsHandler,
	}
}

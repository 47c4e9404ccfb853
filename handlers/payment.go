package handlers

import (
	"io"
	"net/http"

	"pillowstat/models"
	"pillowstat/services/payment"
	"pillowstat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxWebhookBytes bounds the webhook body read before signature verification.
const maxWebhookBytes = 65536

// PaymentHandler serves /api/payments.
type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

type paymentIntentBody struct {
	BookingID   string  `json:"bookingId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

type confirmPaymentBody struct {
	PaymentIntentID string   `json:"paymentIntentId" binding:"required"`
	BookingID       string   `json:"bookingId" binding:"required"`
	Amount          *float64 `json:"amount"`
	Type            string   `json:"type"`
}

type refundBody struct {
	BookingID string   `json:"bookingId" binding:"required"`
	Amount    *float64 `json:"amount"`
	Reason    string   `json:"reason"`
}

type transactionsQuery struct {
	BookingID string `form:"bookingId"`
	Type      string `form:"type"`
	Status    string `form:"status"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

// CreatePaymentIntentHandler handles POST /api/payments/intents.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var body paymentIntentBody
	if !bindJSON(c, &body) {
		return
	}
	pi, err := h.Service.CreatePaymentIntent(c.Request.Context(), body.BookingID, body.Amount, body.Description)
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentIntent": pi})
}

// ConfirmPaymentHandler handles POST /api/payments/confirm.
func (h *PaymentHandler) ConfirmPaymentHandler(c *gin.Context) {
	var body confirmPaymentBody
	if !bindJSON(c, &body) {
		return
	}
	res, err := h.Service.ConfirmPayment(c.Request.Context(), models.ConfirmPaymentRequest{
		PaymentIntentID: body.PaymentIntentID,
		BookingID:       body.BookingID,
		Amount:          body.Amount,
		Type:            models.TransactionType(body.Type),
	})
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateRefundHandler handles POST /api/payments/refunds.
func (h *PaymentHandler) CreateRefundHandler(c *gin.Context) {
	var body refundBody
	if !bindJSON(c, &body) {
		return
	}
	res, err := h.Service.CreateRefund(c.Request.Context(), models.RefundRequest{
		BookingID: body.BookingID,
		Amount:    body.Amount,
		Reason:    body.Reason,
	})
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetSummaryHandler handles GET /api/payments/bookings/:id.
func (h *PaymentHandler) GetSummaryHandler(c *gin.Context) {
	summary, err := h.Service.GetSummary(c.Param("id"))
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ListTransactionsHandler handles GET /api/payments/transactions.
func (h *PaymentHandler) ListTransactionsHandler(c *gin.Context) {
	var q transactionsQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, h.Service.ListTransactions(models.TransactionFilter{
		BookingID: q.BookingID,
		Type:      models.TransactionType(q.Type),
		Status:    models.TransactionStatus(q.Status),
		Page:      q.Page,
		Limit:     q.Limit,
	}))
}

// WebhookHandler handles POST /api/payments/webhook. The raw body is needed for signature checks.
func (h *PaymentHandler) WebhookHandler(c *gin.Context) {
	logger := getLogger(c)
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		logger.Warn("Failed to read webhook body", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to read body"})
		return
	}
	ack, err := h.Service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

package handlers

import (
	"net/http"

	"pillowstat/models"
	"pillowstat/services/booking"
	"pillowstat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves /api/bookings.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

type listBookingsQuery struct {
	Status        string `form:"status" binding:"omitempty,bookingstatus"`
	UnitID        string `form:"unitId"`
	GuestID       string `form:"guestId"`
	PaymentStatus string `form:"paymentStatus" binding:"omitempty,paymentstatus"`
	StartDate     string `form:"startDate" binding:"omitempty,isodate"`
	EndDate       string `form:"endDate" binding:"omitempty,isodate"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

type createBookingBody struct {
	GuestID       string   `json:"guestId" binding:"required"`
	UnitID        string   `json:"unitId" binding:"required"`
	StartDate     string   `json:"startDate" binding:"required,isodate"`
	EndDate       string   `json:"endDate" binding:"required,isodate"`
	TotalAmount   *float64 `json:"totalAmount"`
	Status        string   `json:"status" binding:"omitempty,bookingstatus"`
	PaymentStatus string   `json:"paymentStatus" binding:"omitempty,paymentstatus"`
	Notes         string   `json:"notes"`
}

// updateBookingBody is the PATCH allow-list; anything else in the body is ignored.
type updateBookingBody struct {
	Status        *string  `json:"status" binding:"omitempty,bookingstatus"`
	PaymentStatus *string  `json:"paymentStatus" binding:"omitempty,paymentstatus"`
	Notes         *string  `json:"notes"`
	StartDate     *string  `json:"startDate" binding:"omitempty,isodate"`
	EndDate       *string  `json:"endDate" binding:"omitempty,isodate"`
	TotalAmount   *float64 `json:"totalAmount"`
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	var q listBookingsQuery
	if !bindQuery(c, &q) {
		return
	}
	page := h.Service.ListBookings(models.BookingFilter{
		Status:        models.BookingStatus(q.Status),
		UnitID:        q.UnitID,
		GuestID:       q.GuestID,
		PaymentStatus: models.PaymentStatus(q.PaymentStatus),
		StartDate:     parseDate(q.StartDate),
		EndDate:       parseDate(q.EndDate),
		Page:          q.Page,
		Limit:         q.Limit,
	})
	c.JSON(http.StatusOK, page)
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	var body createBookingBody
	if !bindJSON(c, &body) {
		return
	}
	view, err := h.Service.CreateBooking(models.CreateBookingRequest{
		GuestID:       body.GuestID,
		UnitID:        body.UnitID,
		StartDate:     parseDate(body.StartDate),
		EndDate:       parseDate(body.EndDate),
		TotalAmount:   body.TotalAmount,
		Status:        models.BookingStatus(body.Status),
		PaymentStatus: models.PaymentStatus(body.PaymentStatus),
		Notes:         body.Notes,
	})
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	logger.Info("Booking created", zap.String("bookingId", view.ID), zap.String("unitId", view.UnitID))
	c.JSON(http.StatusCreated, view)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	detail, err := h.Service.GetBookingDetail(c.Param("id"))
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateBookingHandler handles PATCH /api/bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var body updateBookingBody
	if !bindJSON(c, &body) {
		return
	}
	req := models.UpdateBookingRequest{
		Notes:       body.Notes,
		StartDate:   parseDatePtr(body.StartDate),
		EndDate:     parseDatePtr(body.EndDate),
		TotalAmount: body.TotalAmount,
	}
	if body.Status != nil {
		st := models.BookingStatus(*body.Status)
		req.Status = &st
	}
	if body.PaymentStatus != nil {
		ps := models.PaymentStatus(*body.PaymentStatus)
		req.PaymentStatus = &ps
	}

	view, err := h.Service.UpdateBooking(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelBookingHandler handles DELETE /api/bookings/:id. Bookings are cancelled, never removed.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	res, err := h.Service.CancelBooking(c.Param("id"))
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

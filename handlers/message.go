package handlers

import (
	"net/http"

	"pillowstat/models"
	"pillowstat/services/message"
	"pillowstat/utils"

	"github.com/gin-gonic/gin"
)

// MessageHandler serves /api/messages.
type MessageHandler struct {
	Service message.MessageService
}

func NewMessageHandler(svc message.MessageService) *MessageHandler {
	return &MessageHandler{Service: svc}
}

type listMessagesQuery struct {
	View       string `form:"view" binding:"omitempty,oneof=threads messages"`
	BookingID  string `form:"bookingId"`
	GuestID    string `form:"guestId"`
	UnreadOnly bool   `form:"unreadOnly"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

type sendMessageBody struct {
	BookingID string `json:"bookingId" binding:"required"`
	GuestID   string `json:"guestId"`
	Content   string `json:"content" binding:"required"`
	Sender    string `json:"sender" binding:"required,messagesender"`
}

type markReadBody struct {
	MessageID   string `json:"messageId"`
	BookingID   string `json:"bookingId"`
	MarkAllRead bool   `json:"markAllRead"`
}

// ListMessagesHandler handles GET /api/messages; view=threads (default) groups by booking.
func (h *MessageHandler) ListMessagesHandler(c *gin.Context) {
	var q listMessagesQuery
	if !bindQuery(c, &q) {
		return
	}
	f := models.MessageFilter{
		BookingID:  q.BookingID,
		GuestID:    q.GuestID,
		UnreadOnly: q.UnreadOnly,
		Page:       q.Page,
		Limit:      q.Limit,
	}
	if q.View == "messages" {
		c.JSON(http.StatusOK, h.Service.ListMessages(f))
		return
	}
	c.JSON(http.StatusOK, h.Service.ListThreads(f))
}

// SendMessageHandler handles POST /api/messages.
func (h *MessageHandler) SendMessageHandler(c *gin.Context) {
	var body sendMessageBody
	if !bindJSON(c, &body) {
		return
	}
	msg, err := h.Service.Send(models.SendMessageRequest{
		BookingID: body.BookingID,
		GuestID:   body.GuestID,
		Content:   body.Content,
		Sender:    models.MessageSender(body.Sender),
	})
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// MarkReadHandler handles PATCH /api/messages.
func (h *MessageHandler) MarkReadHandler(c *gin.Context) {
	var body markReadBody
	if !bindJSON(c, &body) {
		return
	}
	res, err := h.Service.MarkRead(models.MarkReadRequest{
		MessageID:   body.MessageID,
		BookingID:   body.BookingID,
		MarkAllRead: body.MarkAllRead,
	})
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

package models

import "time"

type MessageSender string

const (
	SenderGuest MessageSender = "guest"
	SenderHost  MessageSender = "host"
)

type Message struct {
	ID        string        `json:"id"`
	BookingID string        `json:"bookingId"`
	GuestID   string        `json:"guestId"`
	Content   string        `json:"content"`
	Sender    MessageSender `json:"sender"`
	CreatedAt time.Time     `json:"createdAt"`
	Read      bool          `json:"read"`
}

func (m Message) GetID() string  { return m.ID }
func (m Message) Clone() Message { return m }

type MessageFilter struct {
	BookingID  string
	GuestID    string
	UnreadOnly bool
	Page       int
	Limit      int
}

type MessageView struct {
	Message
	GuestName string `json:"guestName"`
}

type MessageThread struct {
	GuestID      string  `json:"guestId"`
	GuestName    string  `json:"guestName"`
	GuestEmail   string  `json:"guestEmail"`
	BookingID    string  `json:"bookingId"`
	LastMessage  Message `json:"lastMessage"`
	UnreadCount  int     `json:"unreadCount"`
	MessageCount int     `json:"messageCount"`
}

type ThreadSummary struct {
	TotalUnread  int `json:"totalUnread"`
	TotalThreads int `json:"totalThreads"`
}

type ThreadPage struct {
	Data       []MessageThread `json:"data"`
	Pagination Pagination      `json:"pagination"`
	Summary    ThreadSummary   `json:"summary"`
}

type SendMessageRequest struct {
	BookingID string
	GuestID   string
	Content   string
	Sender    MessageSender
}

// MarkReadRequest marks one message, or every unread message of a booking when MarkAllRead is set.
type MarkReadRequest struct {
	MessageID   string
	BookingID   string
	MarkAllRead bool
}

type MarkReadResult struct {
	Message      string `json:"message"`
	UpdatedCount int    `json:"updatedCount"`
}

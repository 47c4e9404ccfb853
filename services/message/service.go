package message

import (
	"fmt"
	"sort"
	"strings"
	"time"

	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/models"
	"pillowstat/utils"

	"go.uber.org/zap"
)

type MessageService interface {
	ListThreads(filter models.MessageFilter) models.ThreadPage
	ListMessages(filter models.MessageFilter) models.Page[models.MessageView]
	Send(req models.SendMessageRequest) (*models.MessageView, error)
	MarkRead(req models.MarkReadRequest) (*models.MarkReadResult, error)
}

// DefaultMessageService stores host/guest conversations, one thread per booking.
type DefaultMessageService struct {
	Repo     recordsRepo.RecordStore[models.Message]
	Bookings recordsRepo.RecordStore[models.Booking]
	Guests   recordsRepo.RecordStore[models.Guest]
	Logger   *zap.Logger
	Now      func() time.Time
}

func NewMessageService(
	repo recordsRepo.RecordStore[models.Message],
	bookings recordsRepo.RecordStore[models.Booking],
	guests recordsRepo.RecordStore[models.Guest],
	logger *zap.Logger,
) *DefaultMessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultMessageService{Repo: repo, Bookings: bookings, Guests: guests, Logger: logger, Now: time.Now}
}

func unreadFromGuest(m models.Message) bool {
	return !m.Read && m.Sender == models.SenderGuest
}

// filtered returns matching messages newest first.
func (s *DefaultMessageService) filtered(f models.MessageFilter) []models.Message {
	msgs := s.Repo.Filter(func(m models.Message) bool {
		switch {
		case f.BookingID != "" && m.BookingID != f.BookingID:
			return false
		case f.GuestID != "" && m.GuestID != f.GuestID:
			return false
		case f.UnreadOnly && !unreadFromGuest(m):
			return false
		}
		return true
	})
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].CreatedAt.After(msgs[j].CreatedAt) })
	return msgs
}

func (s *DefaultMessageService) guestName(id string) (name, email string) {
	g, ok := s.Guests.GetByID(id)
	if !ok {
		return "Unknown Guest", ""
	}
	return g.FullName(), g.Email
}

// ListThreads groups messages by booking. Threads are ordered by their latest message.
func (s *DefaultMessageService) ListThreads(f models.MessageFilter) models.ThreadPage {
	byBooking := map[string]*models.MessageThread{}
	var threads []*models.MessageThread
	for _, m := range s.filtered(f) {
		t, ok := byBooking[m.BookingID]
		if !ok {
			name, email := s.guestName(m.GuestID)
			t = &models.MessageThread{
				GuestID:     m.GuestID,
				GuestName:   name,
				GuestEmail:  email,
				BookingID:   m.BookingID,
				LastMessage: m,
			}
			byBooking[m.BookingID] = t
			threads = append(threads, t)
		}
		t.MessageCount++
		if unreadFromGuest(m) {
			t.UnreadCount++
		}
		if m.CreatedAt.After(t.LastMessage.CreatedAt) {
			t.LastMessage = m
		}
	}
	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].LastMessage.CreatedAt.After(threads[j].LastMessage.CreatedAt)
	})

	all := make([]models.MessageThread, 0, len(threads))
	summary := models.ThreadSummary{TotalThreads: len(threads)}
	for _, t := range threads {
		all = append(all, *t)
		summary.TotalUnread += t.UnreadCount
	}
	page := models.Paginate(all, f.Page, f.Limit, utils.DefaultMessageLimit)
	return models.ThreadPage{Data: page.Data, Pagination: page.Pagination, Summary: summary}
}

func (s *DefaultMessageService) ListMessages(f models.MessageFilter) models.Page[models.MessageView] {
	page := models.Paginate(s.filtered(f), f.Page, f.Limit, utils.DefaultMessageLimit)
	views := make([]models.MessageView, 0, len(page.Data))
	for _, m := range page.Data {
		views = append(views, s.view(m))
	}
	return models.Page[models.MessageView]{Data: views, Pagination: page.Pagination}
}

func (s *DefaultMessageService) view(m models.Message) models.MessageView {
	name := "Unknown"
	if g, ok := s.Guests.GetByID(m.GuestID); ok {
		name = g.FullName()
	}
	return models.MessageView{Message: m, GuestName: name}
}

// Send appends a message to a booking's thread. Host messages start read.
func (s *DefaultMessageService) Send(req models.SendMessageRequest) (*models.MessageView, error) {
	content := strings.TrimSpace(req.Content)
	switch {
	case req.BookingID == "":
		return nil, utils.NewInvalidInput("bookingId", "Missing required field: bookingId")
	case content == "":
		return nil, utils.NewInvalidInput("content", "Missing required field: content")
	case req.Sender == "":
		return nil, utils.NewInvalidInput("sender", "Missing required field: sender")
	case req.Sender != models.SenderGuest && req.Sender != models.SenderHost:
		return nil, utils.NewInvalidInput("sender", `Sender must be either "guest" or "host"`)
	}
	b, ok := s.Bookings.GetByID(req.BookingID)
	if !ok {
		return nil, utils.NewNotFound("Booking not found")
	}
	guestID := req.GuestID
	if guestID == "" {
		guestID = b.GuestID
	}

	created, err := s.Repo.Create(models.Message{
		ID:        utils.NewID(utils.MessageIDPrefix),
		BookingID: b.ID,
		GuestID:   guestID,
		Content:   content,
		Sender:    req.Sender,
		CreatedAt: s.Now(),
		Read:      req.Sender == models.SenderHost,
	})
	if err != nil {
		s.Logger.Error("Failed to store message", zap.String("bookingId", b.ID), zap.Error(err))
		return nil, utils.NewInternal("Failed to send message", err)
	}
	s.Logger.Info("Message sent", zap.String("bookingId", b.ID), zap.String("sender", string(req.Sender)))
	v := s.view(created)
	return &v, nil
}

// MarkRead reports how many messages changed. An unknown message id marks nothing.
func (s *DefaultMessageService) MarkRead(req models.MarkReadRequest) (*models.MarkReadResult, error) {
	if req.MessageID == "" && req.BookingID == "" {
		return nil, utils.NewInvalidInput("messageId", "Either messageId or bookingId is required")
	}
	markRead := func(m *models.Message) { m.Read = true }

	updated := 0
	switch {
	case req.MessageID != "":
		if _, err := s.Repo.Update(req.MessageID, markRead); err == nil {
			updated = 1
		}
	case req.MarkAllRead:
		for _, m := range s.Repo.Filter(func(m models.Message) bool { return m.BookingID == req.BookingID && !m.Read }) {
			if _, err := s.Repo.Update(m.ID, markRead); err == nil {
				updated++
			}
		}
	}
	return &models.MarkReadResult{
		Message:      fmt.Sprintf("Marked %d message(s) as read", updated),
		UpdatedCount: updated,
	}, nil
}

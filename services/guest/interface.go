package guest

import (
	"sync"
	"time"

	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/models"

	"go.uber.org/zap"
)

type GuestService interface {
	CreateGuest(req models.CreateGuestRequest) (*models.Guest, error)
	GetGuest(id string) (*models.Guest, error)
	GetGuestView(id string) (*models.GuestView, error)
	UpdateGuest(id string, req models.UpdateGuestRequest) (*models.Guest, error)
	ListGuests(filter models.GuestFilter) models.Page[models.GuestView]
	AddBooking(guestID, bookingID string) error
	Summary(id string) (*models.GuestSummary, bool)
}

// DefaultGuestService keeps guests in a record store. Bookings are read only, for stats.
type DefaultGuestService struct {
	Repo     recordsRepo.RecordStore[models.Guest]
	Bookings recordsRepo.RecordStore[models.Booking]
	Logger   *zap.Logger
	Now      func() time.Time

	// serializes the email uniqueness check with the write that follows it
	emailMu sync.Mutex
}

func NewGuestService(repo recordsRepo.RecordStore[models.Guest], bookings recordsRepo.RecordStore[models.Booking], logger *zap.Logger) *DefaultGuestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultGuestService{
		Repo:     repo,
		Bookings: bookings,
		Logger:   logger,
		Now:      time.Now,
	}
}

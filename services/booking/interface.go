package booking

import (
	"time"

	availabilityRepo "pillowstat/database/repository/availability"
	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/metrics"
	"pillowstat/models"
	"pillowstat/services/guest"
	"pillowstat/services/units"

	"go.uber.org/zap"
)

// BookingService owns the booking lifecycle and keeps the availability ledger in step with it.
type BookingService interface {
	CreateBooking(req models.CreateBookingRequest) (*models.BookingView, error)
	GetBooking(id string) (*models.Booking, error)
	GetBookingDetail(id string) (*models.BookingDetail, error)
	UpdateBooking(id string, req models.UpdateBookingRequest) (*models.BookingView, error)
	CancelBooking(id string) (*models.CancelResult, error)
	ListBookings(filter models.BookingFilter) models.Page[models.BookingView]
	ActiveBookingsOverlapping(unitID string, r models.DateRange, excludeID string) []models.Booking
	SetPaymentStatus(id string, status models.PaymentStatus) (*models.Booking, error)
}

// DefaultBookingService is the in-process implementation.
type DefaultBookingService struct {
	Repo    recordsRepo.RecordStore[models.Booking]
	Guests  guest.GuestService
	Ledger  availabilityRepo.Ledger
	Catalog units.Catalog
	Locks   *UnitLocks
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Now     func() time.Time

	// MaxStayDays bounds the nights one booking may hold.
	MaxStayDays int
}

const DefaultMaxStayDays = 365

func NewBookingService(
	repo recordsRepo.RecordStore[models.Booking],
	guests guest.GuestService,
	ledger availabilityRepo.Ledger,
	catalog units.Catalog,
	locks *UnitLocks,
	logger *zap.Logger,
	m *metrics.Metrics,
) *DefaultBookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if locks == nil {
		locks = NewUnitLocks()
	}
	return &DefaultBookingService{
		Repo:    repo,
		Guests:  guests,
		Ledger:  ledger,
		Catalog: catalog,
		Locks:   locks,
		Logger:  logger,
		Metrics: m,
		Now:     time.Now,

		MaxStayDays: DefaultMaxStayDays,
	}
}

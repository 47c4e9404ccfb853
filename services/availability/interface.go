package availability

import (
	availabilityRepo "pillowstat/database/repository/availability"
	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/metrics"
	"pillowstat/models"
	"pillowstat/services/booking"
	"pillowstat/services/units"

	"go.uber.org/zap"
)

// AvailabilityService is the calendar side: range queries, host blocks and ledger repair.
type AvailabilityService interface {
	QueryUnit(unitID string, start, end models.Date) (*models.UnitAvailability, error)
	QueryAll(start, end models.Date) (*models.AvailabilityOverview, error)
	SetRange(req models.SetAvailabilityRequest) (*models.AvailabilityUpdateResult, error)
	Reconcile() models.ReconcileReport
}

type Options struct {
	MaxRangeDays int
	// CapWrites applies MaxRangeDays to SetRange as well as to queries.
	CapWrites bool
}

type DefaultAvailabilityService struct {
	Ledger   availabilityRepo.Ledger
	Bookings recordsRepo.RecordStore[models.Booking]
	Catalog  units.Catalog
	Locks    *booking.UnitLocks
	Options  Options
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
}

func NewAvailabilityService(
	ledger availabilityRepo.Ledger,
	bookings recordsRepo.RecordStore[models.Booking],
	catalog units.Catalog,
	locks *booking.UnitLocks,
	opts Options,
	logger *zap.Logger,
	m *metrics.Metrics,
) *DefaultAvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if locks == nil {
		locks = booking.NewUnitLocks()
	}
	if opts.MaxRangeDays <= 0 {
		opts.MaxRangeDays = 365
	}
	return &DefaultAvailabilityService{
		Ledger:   ledger,
		Bookings: bookings,
		Catalog:  catalog,
		Locks:    locks,
		Options:  opts,
		Logger:   logger,
		Metrics:  m,
	}
}

package analytics

import (
	"context"
	"time"

	availabilityRepo "pillowstat/database/repository/availability"
	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/models"
	"pillowstat/services/units"

	"go.uber.org/zap"
)

type AnalyticsService interface {
	Report(ctx context.Context, q models.AnalyticsQuery) (*models.AnalyticsReport, error)
}

// Sources are the read-only stores a report is computed from.
type Sources struct {
	Bookings     recordsRepo.RecordStore[models.Booking]
	Transactions recordsRepo.RecordStore[models.Transaction]
	Guests       recordsRepo.RecordStore[models.Guest]
	Reviews      recordsRepo.RecordStore[models.Review]
	Ledger       availabilityRepo.Ledger
	Catalog      units.Catalog
}

type DefaultAnalyticsService struct {
	Sources
	Cache    Cache
	Location *time.Location
	Logger   *zap.Logger
	Now      func() time.Time
}

func NewAnalyticsService(src Sources, cache Cache, loc *time.Location, logger *zap.Logger) *DefaultAnalyticsService {
	if cache == nil {
		cache = NoopCache{}
	}
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAnalyticsService{Sources: src, Cache: cache, Location: loc, Logger: logger, Now: time.Now}
}

package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	availabilityRepo "pillowstat/database/repository/availability"
	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/models"
	"pillowstat/services/units"
	"pillowstat/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func d(s string) models.Date { return models.MustParseDate(s) }

func newTestService(cache Cache) *DefaultAnalyticsService {
	bookings := recordsRepo.NewStore(
		models.Booking{ID: "b1", GuestID: "g1", UnitID: "studio-suite", StartDate: d("2025-03-01"), EndDate: d("2025-03-11"),
			Status: models.BookingCheckedIn, TotalAmount: 1000, CreatedAt: now.AddDate(0, 0, -20)},
		models.Booking{ID: "b2", GuestID: "g1", UnitID: "garden-suite", StartDate: d("2025-01-01"), EndDate: d("2025-01-21"),
			Status: models.BookingCheckedOut, TotalAmount: 2000, CreatedAt: now.AddDate(0, 0, -5)},
		models.Booking{ID: "b3", GuestID: "g2", UnitID: "studio-suite", StartDate: d("2025-05-01"), EndDate: d("2025-05-05"),
			Status: models.BookingCancelled, TotalAmount: 400, CreatedAt: now.AddDate(0, 0, -1)},
	)
	txs := recordsRepo.NewStore(
		models.Transaction{ID: "t1", BookingID: "b1", Amount: 1000, Type: models.TransactionPayment, Status: models.TransactionCompleted, CreatedAt: now.AddDate(0, 0, -2)},
		models.Transaction{ID: "t2", BookingID: "b2", Amount: 2000, Type: models.TransactionPayment, Status: models.TransactionCompleted, CreatedAt: now.AddDate(0, -1, 0)},
		models.Transaction{ID: "t3", BookingID: "b2", Amount: 300, Type: models.TransactionRefund, Status: models.TransactionCompleted, CreatedAt: now.AddDate(0, 0, -1)},
		models.Transaction{ID: "t4", BookingID: "b1", Amount: 999, Type: models.TransactionPayment, Status: models.TransactionPending, CreatedAt: now},
	)
	guests := recordsRepo.NewStore(
		models.Guest{ID: "g1", Bookings: []string{"b1", "b2"}},
		models.Guest{ID: "g2", Bookings: []string{"b3"}},
	)
	reviews := recordsRepo.NewStore(
		models.Review{ID: "r1", Rating: 5},
		models.Review{ID: "r2", Rating: 4},
	)
	ledger := availabilityRepo.NewMemoryLedger()
	ledger.BulkUpdate("studio-suite", d("2025-03-01"), d("2025-03-10"), models.BookedPatch("b1"))

	svc := NewAnalyticsService(Sources{
		Bookings:     bookings,
		Transactions: txs,
		Guests:       guests,
		Reviews:      reviews,
		Ledger:       ledger,
		Catalog:      units.NewStaticCatalog(nil),
	}, cache, time.UTC, nil)
	svc.Now = func() time.Time { return now }
	return svc
}

func TestReportComputesMetrics(t *testing.T) {
	svc := newTestService(nil)

	r, err := svc.Report(context.Background(), models.AnalyticsQuery{StartDate: d("2025-03-01"), EndDate: d("2025-03-20")})
	require.NoError(t, err)

	require.Len(t, r.Occupancy, 3)
	assert.Equal(t, models.UnitOccupancy{UnitID: "studio-suite", UnitName: "Studio Suite", OccupancyRate: 50, BookedDays: 10, TotalDays: 20}, r.Occupancy[0])
	assert.Equal(t, 0, r.Occupancy[1].BookedDays)
	assert.Equal(t, 17, r.OverallOccupancy)

	assert.Equal(t, 700.0, r.Revenue.TotalRevenue, "t2 falls before the period, pending t4 is ignored")
	assert.Equal(t, 700.0, r.Revenue.MonthlyRevenue)
	assert.Equal(t, 1500.0, r.Revenue.AverageBookingValue)
	assert.Equal(t, 1000.0, r.Revenue.RevenueByUnit[0].Revenue)
	assert.Equal(t, -300.0, r.Revenue.RevenueByUnit[1].Revenue)
	require.Len(t, r.Revenue.RevenueByMonth, 6)
	assert.Equal(t, "Oct 2024", r.Revenue.RevenueByMonth[0].Month)
	assert.Equal(t, models.MonthlyRevenue{Month: "Feb 2025", Revenue: 2000}, r.Revenue.RevenueByMonth[4])
	assert.Equal(t, models.MonthlyRevenue{Month: "Mar 2025", Revenue: 700}, r.Revenue.RevenueByMonth[5])

	assert.Equal(t, 3, r.BookingTrends.TotalBookings)
	assert.Equal(t, 2, r.BookingTrends.BookingsThisMonth)
	assert.Equal(t, 1, r.BookingTrends.BookingsLastMonth)
	assert.Equal(t, 15, r.BookingTrends.AverageStayLength)
	assert.Contains(t, r.BookingTrends.StatusBreakdown, models.StatusCount{Status: models.BookingCancelled, Count: 1})

	assert.Equal(t, models.AdditionalMetrics{
		TotalGuests: 2, RepeatGuests: 1, RepeatGuestRate: 50, AverageRating: 4.5, TotalReviews: 2,
	}, r.AdditionalMetrics)
}

func TestReportDefaultsPeriod(t *testing.T) {
	svc := newTestService(nil)

	r, err := svc.Report(context.Background(), models.AnalyticsQuery{Days: 30})
	require.NoError(t, err)
	assert.Equal(t, models.Period{StartDate: d("2025-02-13"), EndDate: d("2025-03-15")}, r.Period)

	_, err = svc.Report(context.Background(), models.AnalyticsQuery{StartDate: d("2025-03-10"), EndDate: d("2025-03-01")})
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))
}

type memCache struct {
	items map[string]*models.AnalyticsReport
	fail  bool
	sets  int
}

func (c *memCache) Get(_ context.Context, key string) (*models.AnalyticsReport, error) {
	if c.fail {
		return nil, errors.New("connection refused")
	}
	r, ok := c.items[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return r, nil
}

func (c *memCache) Set(_ context.Context, key string, r *models.AnalyticsReport) error {
	c.sets++
	if c.fail {
		return errors.New("connection refused")
	}
	c.items[key] = r
	return nil
}

func TestReportUsesCache(t *testing.T) {
	cache := &memCache{items: map[string]*models.AnalyticsReport{}}
	svc := newTestService(cache)
	q := models.AnalyticsQuery{StartDate: d("2025-03-01"), EndDate: d("2025-03-20")}

	first, err := svc.Report(context.Background(), q)
	require.NoError(t, err)
	second, err := svc.Report(context.Background(), q)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.sets)
	assert.Contains(t, cache.items, "2025-03-01:2025-03-20")
}

func TestReportFallsThroughOnCacheFailure(t *testing.T) {
	svc := newTestService(&memCache{fail: true})

	r, err := svc.Report(context.Background(), models.AnalyticsQuery{StartDate: d("2025-03-01"), EndDate: d("2025-03-20")})
	require.NoError(t, err)
	assert.Equal(t, 3, r.BookingTrends.TotalBookings)
}

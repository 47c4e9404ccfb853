package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"pillowstat/models"
	"pillowstat/utils"

	"go.uber.org/zap"
)

const defaultPeriodDays = 90

// Report serves a cached snapshot for the period when one exists. Cache errors are
// logged and the report is computed instead.
func (s *DefaultAnalyticsService) Report(ctx context.Context, q models.AnalyticsQuery) (*models.AnalyticsReport, error) {
	period, err := s.resolvePeriod(q)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%s:%s", period.StartDate, period.EndDate)

	cached, err := s.Cache.Get(ctx, key)
	switch {
	case err == nil:
		return cached, nil
	case err != ErrCacheMiss:
		s.Logger.Warn("Analytics cache read failed", zap.String("key", key), zap.Error(err))
	}

	report := s.compute(period)
	if err := s.Cache.Set(ctx, key, report); err != nil {
		s.Logger.Warn("Analytics cache write failed", zap.String("key", key), zap.Error(err))
	}
	return report, nil
}

func (s *DefaultAnalyticsService) resolvePeriod(q models.AnalyticsQuery) (models.Period, error) {
	days := q.Days
	if days == 0 {
		days = defaultPeriodDays
	}
	if days < 0 {
		return models.Period{}, utils.NewInvalidInput("days", "days must be positive")
	}
	end := q.EndDate
	if end.IsZero() {
		end = models.DateOf(s.Now().In(s.Location))
	}
	start := q.StartDate
	if start.IsZero() {
		start = end.AddDays(-days)
	}
	if end.Before(start) {
		return models.Period{}, utils.NewInvalidInput("endDate", "endDate must be after startDate")
	}
	return models.Period{StartDate: start, EndDate: end}, nil
}

func (s *DefaultAnalyticsService) compute(p models.Period) *models.AnalyticsReport {
	now := s.Now().In(s.Location)
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.Location)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	report := &models.AnalyticsReport{Period: p}

	// --- Occupancy ---
	totalDays := p.StartDate.DaysUntil(p.EndDate) + 1
	var bookedAll, daysAll int
	for _, u := range s.Catalog.List() {
		booked := 0
		for _, e := range s.Ledger.GetByUnitAndDateRange(u.ID, p.StartDate, p.EndDate) {
			if e.Status == models.AvailabilityBooked {
				booked++
			}
		}
		bookedAll += booked
		daysAll += totalDays
		report.Occupancy = append(report.Occupancy, models.UnitOccupancy{
			UnitID:        u.ID,
			UnitName:      u.Name,
			OccupancyRate: utils.Percent(booked, totalDays),
			BookedDays:    booked,
			TotalDays:     totalDays,
		})
	}
	report.OverallOccupancy = utils.Percent(bookedAll, daysAll)

	// --- Revenue ---
	txs := s.Transactions.GetAll()
	inPeriod := func(t models.Transaction) bool {
		d := models.DateOf(t.CreatedAt.In(s.Location))
		return !d.Before(p.StartDate) && !d.After(p.EndDate)
	}
	report.Revenue.TotalRevenue = revenue(txs, inPeriod)
	report.Revenue.MonthlyRevenue = revenue(txs, func(t models.Transaction) bool {
		return !t.CreatedAt.Before(thisMonth)
	})

	unitOf := map[string]string{}
	for _, b := range s.Bookings.GetAll() {
		unitOf[b.ID] = b.UnitID
	}
	for _, u := range s.Catalog.List() {
		unitID := u.ID
		report.Revenue.RevenueByUnit = append(report.Revenue.RevenueByUnit, models.UnitRevenue{
			UnitID:   u.ID,
			UnitName: u.Name,
			Revenue: revenue(txs, func(t models.Transaction) bool {
				return inPeriod(t) && unitOf[t.BookingID] == unitID
			}),
		})
	}
	for i := 5; i >= 0; i-- {
		from := thisMonth.AddDate(0, -i, 0)
		to := from.AddDate(0, 1, 0)
		report.Revenue.RevenueByMonth = append(report.Revenue.RevenueByMonth, models.MonthlyRevenue{
			Month: from.Format("Jan 2006"),
			Revenue: revenue(txs, func(t models.Transaction) bool {
				return !t.CreatedAt.Before(from) && t.CreatedAt.Before(to)
			}),
		})
	}

	// --- Booking trends ---
	bookings := s.Bookings.GetAll()
	trends := &report.BookingTrends
	trends.TotalBookings = len(bookings)
	var stayed, stayNights int
	var stayedValue float64
	counts := map[models.BookingStatus]int{}
	for _, b := range bookings {
		counts[b.Status]++
		switch {
		case !b.CreatedAt.Before(thisMonth):
			trends.BookingsThisMonth++
		case !b.CreatedAt.Before(lastMonth):
			trends.BookingsLastMonth++
		}
		if b.Status == models.BookingCheckedIn || b.Status == models.BookingCheckedOut {
			stayed++
			stayNights += b.Range().Nights()
			stayedValue += b.TotalAmount
		}
	}
	for _, st := range models.BookingStatuses {
		trends.StatusBreakdown = append(trends.StatusBreakdown, models.StatusCount{Status: st, Count: counts[st]})
	}
	if stayed > 0 {
		trends.AverageStayLength = int(math.Round(float64(stayNights) / float64(stayed)))
		report.Revenue.AverageBookingValue = math.Round(stayedValue / float64(stayed))
	}

	// --- Guests & reviews ---
	extra := &report.AdditionalMetrics
	extra.TotalGuests = s.Guests.Count(func(models.Guest) bool { return true })
	extra.RepeatGuests = s.Guests.Count(func(g models.Guest) bool { return len(g.Bookings) > 1 })
	extra.RepeatGuestRate = utils.Percent(extra.RepeatGuests, extra.TotalGuests)
	reviews := s.Reviews.GetAll()
	extra.TotalReviews = len(reviews)
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		extra.AverageRating = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}
	return report
}

// revenue nets completed inflows against completed refunds among the matching transactions.
func revenue(txs []models.Transaction, match func(models.Transaction) bool) float64 {
	var total float64
	for _, t := range txs {
		if t.Status != models.TransactionCompleted || !match(t) {
			continue
		}
		switch {
		case t.Inflow():
			total += t.Amount
		case t.Type == models.TransactionRefund:
			total -= t.Amount
		}
	}
	return utils.RoundMoney(total)
}

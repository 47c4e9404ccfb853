package availability

import (
	"pillowstat/models"

	"go.uber.org/zap"
)

// Reconcile rebuilds booked days from the booking collection, one unit at a time under
// that unit's lock. Nights of active bookings are marked booked; booked days no active
// booking covers are released.
func (s *DefaultAvailabilityService) Reconcile() models.ReconcileReport {
	var report models.ReconcileReport
	for _, u := range s.Catalog.List() {
		marked, released := s.reconcileUnit(u.ID)
		report.UnitsChecked++
		report.Marked += marked
		report.Released += released
	}
	s.Metrics.Repaired("marked", report.Marked)
	s.Metrics.Repaired("released", report.Released)
	if report.Marked > 0 || report.Released > 0 {
		s.Logger.Warn("Ledger drift repaired",
			zap.Int("marked", report.Marked),
			zap.Int("released", report.Released))
	}
	return report
}

func (s *DefaultAvailabilityService) reconcileUnit(unitID string) (marked, released int) {
	unlock := s.Locks.Lock(unitID)
	defer unlock()

	expected := make(map[models.Date]string)
	for _, b := range s.Bookings.Filter(func(b models.Booking) bool {
		return b.UnitID == unitID && b.Status.Active()
	}) {
		r := b.Range()
		models.EachDay(r.Start, r.LastNight(), func(day models.Date) {
			expected[day] = b.ID
		})
	}

	for _, e := range s.Ledger.GetAll() {
		if e.UnitID != unitID || e.Status != models.AvailabilityBooked {
			continue
		}
		if _, ok := expected[e.Date]; !ok {
			s.Ledger.Update(unitID, e.Date, models.ReleasePatch())
			released++
		}
	}
	for day, bookingID := range expected {
		cur := s.Ledger.GetByDate(unitID, day)
		if cur.Status == models.AvailabilityBooked && cur.BookingID == bookingID {
			continue
		}
		s.Ledger.Update(unitID, day, models.BookedPatch(bookingID))
		marked++
	}
	return marked, released
}

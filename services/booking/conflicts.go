package booking

import (
	"fmt"

	"pillowstat/models"
	"pillowstat/utils"
)

const unavailableMessage = "Unit is not available for the selected dates"

// ActiveBookingsOverlapping returns non-cancelled bookings of the unit whose stay
// intersects r under the half-open rule. excludeID drops the booking being edited.
func (s *DefaultBookingService) ActiveBookingsOverlapping(unitID string, r models.DateRange, excludeID string) []models.Booking {
	return s.Repo.Filter(func(b models.Booking) bool {
		return b.ID != excludeID &&
			b.UnitID == unitID &&
			b.Status.Active() &&
			b.Range().Overlaps(r)
	})
}

// blockedNights lists the nights of r that a host has marked blocked or under maintenance.
func (s *DefaultBookingService) blockedNights(unitID string, r models.DateRange) []models.Date {
	var out []models.Date
	for _, e := range s.Ledger.GetByUnitAndDateRange(unitID, r.Start, r.LastNight()) {
		if e.Status == models.AvailabilityBlocked || e.Status == models.AvailabilityMaintenance {
			out = append(out, e.Date)
		}
	}
	return out
}

func (s *DefaultBookingService) checkStayLength(r models.DateRange) error {
	limit := s.MaxStayDays
	if limit <= 0 {
		limit = DefaultMaxStayDays
	}
	if r.Nights() > limit {
		return utils.NewInvalidInput("endDate", fmt.Sprintf("Stay cannot exceed %d nights", limit))
	}
	return nil
}

// checkAvailability must run under the unit lock.
func (s *DefaultBookingService) checkAvailability(op, unitID string, r models.DateRange, excludeID string) error {
	overlapping := s.ActiveBookingsOverlapping(unitID, r, excludeID)
	blocked := s.blockedNights(unitID, r)
	if len(overlapping) == 0 && len(blocked) == 0 {
		return nil
	}
	s.Metrics.Conflict(op)
	return utils.NewConflict(unavailableMessage, ToConflicts(overlapping), blocked)
}

func ToConflicts(bookings []models.Booking) []models.ConflictingBooking {
	if len(bookings) == 0 {
		return nil
	}
	out := make([]models.ConflictingBooking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, models.ConflictingBooking{ID: b.ID, StartDate: b.StartDate, EndDate: b.EndDate})
	}
	return out
}

// occupy marks the stay's nights booked; the checkout day stays free.
func (s *DefaultBookingService) occupy(b models.Booking) {
	written := s.Ledger.BulkUpdate(b.UnitID, b.StartDate, b.Range().LastNight(), models.BookedPatch(b.ID))
	s.Metrics.DaysWritten(string(models.AvailabilityBooked), len(written))
}

func (s *DefaultBookingService) release(unitID string, r models.DateRange) {
	written := s.Ledger.BulkUpdate(unitID, r.Start, r.LastNight(), models.ReleasePatch())
	s.Metrics.DaysWritten(string(models.AvailabilityAvailable), len(written))
}

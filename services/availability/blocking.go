package availability

import (
	"fmt"
	"strings"

	"pillowstat/models"
	"pillowstat/services/booking"
	"pillowstat/utils"

	"go.uber.org/zap"
)

// UncappedWriteDays still bounds SetRange when CapWrites is off.
const UncappedWriteDays = 3650

const invalidManualStatus = "Invalid status. Must be one of: available, blocked, maintenance. Use bookings API to set 'booked' status."

// SetRange writes a host status over the inclusive span [StartDate, EndDate].
// Any active booking holding a night in the span makes the write a conflict,
// whether the host is blocking or releasing.
func (s *DefaultAvailabilityService) SetRange(req models.SetAvailabilityRequest) (*models.AvailabilityUpdateResult, error) {
	req.UnitID = strings.TrimSpace(req.UnitID)
	if req.UnitID == "" || req.StartDate.IsZero() || req.EndDate.IsZero() || req.Status == "" {
		return nil, utils.NewInvalidInput("", "unitId, startDate, endDate, and status are required")
	}
	unit, ok := s.Catalog.Get(req.UnitID)
	if !ok {
		return nil, utils.NewNotFound("Unit not found")
	}
	if !req.Status.Manual() {
		return nil, utils.NewInvalidInput("status", invalidManualStatus)
	}
	if err := s.validateRange(req.StartDate, req.EndDate, s.writeLimit()); err != nil {
		return nil, err
	}

	unlock := s.Locks.Lock(req.UnitID)
	defer unlock()

	holding := s.Bookings.Filter(func(b models.Booking) bool {
		return b.UnitID == req.UnitID && b.Status.Active() && b.Range().OverlapsDays(req.StartDate, req.EndDate)
	})
	if len(holding) > 0 {
		msg := "Cannot block dates with existing bookings"
		if req.Status == models.AvailabilityAvailable {
			msg = "Cannot release dates held by active bookings"
		}
		s.Metrics.Conflict("availability")
		s.Logger.Info("Availability write rejected",
			zap.String("unitId", req.UnitID),
			zap.String("status", string(req.Status)),
			zap.Int("conflicts", len(holding)))
		return nil, utils.NewConflict(msg, booking.ToConflicts(holding), nil)
	}

	status := req.Status
	patch := models.AvailabilityPatch{Status: &status, Note: req.Note}
	if status == models.AvailabilityAvailable {
		empty := ""
		patch.BookingID = &empty
	}
	written := s.Ledger.BulkUpdate(req.UnitID, req.StartDate, req.EndDate, patch)
	s.Metrics.DaysWritten(string(status), len(written))

	dates := make([]models.Date, 0, len(written))
	for _, e := range written {
		dates = append(dates, e.Date)
	}
	s.Logger.Info("Availability updated",
		zap.String("unitId", req.UnitID),
		zap.String("status", string(status)),
		zap.Int("days", len(written)))

	return &models.AvailabilityUpdateResult{
		Message:      fmt.Sprintf("Updated %d days", len(written)),
		UnitID:       unit.ID,
		UnitName:     unit.Name,
		Period:       models.Period{StartDate: req.StartDate, EndDate: req.EndDate},
		Status:       status,
		UpdatedDates: dates,
	}, nil
}

func (s *DefaultAvailabilityService) writeLimit() int {
	if s.Options.CapWrites {
		return s.Options.MaxRangeDays
	}
	return UncappedWriteDays
}

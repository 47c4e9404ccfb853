package availability

import (
	"fmt"

	"pillowstat/models"
	"pillowstat/utils"
)

// validateRange rejects missing or reversed dates and spans longer than limit days.
func (s *DefaultAvailabilityService) validateRange(start, end models.Date, limit int) error {
	if start.IsZero() || end.IsZero() {
		return utils.NewInvalidInput("startDate", "startDate and endDate are required")
	}
	if end.Before(start) {
		return utils.NewInvalidInput("endDate", "endDate must be after startDate")
	}
	if start.DaysUntil(end) > limit {
		return utils.NewInvalidInput("endDate", fmt.Sprintf("Date range cannot exceed %d days", limit))
	}
	return nil
}

// QueryUnit lists every day in [start, end] for one unit. Days never written read as available.
func (s *DefaultAvailabilityService) QueryUnit(unitID string, start, end models.Date) (*models.UnitAvailability, error) {
	if err := s.validateRange(start, end, s.Options.MaxRangeDays); err != nil {
		return nil, err
	}
	unit, ok := s.Catalog.Get(unitID)
	if !ok {
		return nil, utils.NewNotFound("Unit not found")
	}

	days := materialize(unitID, start, end, s.Ledger.GetByUnitAndDateRange(unitID, start, end))
	summary := summarize(days)
	return &models.UnitAvailability{
		UnitID:       unit.ID,
		UnitName:     unit.Name,
		Period:       models.Period{StartDate: start, EndDate: end},
		Summary:      summary,
		Availability: days,
	}, nil
}

// QueryAll groups the range by unit, with one summary per catalog unit.
func (s *DefaultAvailabilityService) QueryAll(start, end models.Date) (*models.AvailabilityOverview, error) {
	if err := s.validateRange(start, end, s.Options.MaxRangeDays); err != nil {
		return nil, err
	}
	stored := s.Ledger.GetByUnitAndDateRange("", start, end)
	byUnit := make(map[string][]models.AvailabilityEntry)
	for _, e := range stored {
		byUnit[e.UnitID] = append(byUnit[e.UnitID], e)
	}

	out := &models.AvailabilityOverview{
		Period:       models.Period{StartDate: start, EndDate: end},
		Summary:      []models.AvailabilitySummary{},
		Availability: make(map[string][]models.AvailabilityEntry),
	}
	for _, u := range s.Catalog.List() {
		days := materialize(u.ID, start, end, byUnit[u.ID])
		sum := summarize(days)
		sum.UnitID = u.ID
		sum.UnitName = u.Name
		out.Summary = append(out.Summary, sum)
		out.Availability[u.ID] = days
	}
	return out, nil
}

// materialize fills the gaps in one unit's date-ordered entries with available defaults.
func materialize(unitID string, start, end models.Date, stored []models.AvailabilityEntry) []models.AvailabilityEntry {
	byDate := make(map[models.Date]models.AvailabilityEntry, len(stored))
	for _, e := range stored {
		byDate[e.Date] = e
	}
	out := make([]models.AvailabilityEntry, 0, start.DaysUntil(end)+1)
	models.EachDay(start, end, func(day models.Date) {
		if e, ok := byDate[day]; ok {
			out = append(out, e)
			return
		}
		out = append(out, models.AvailabilityEntry{UnitID: unitID, Date: day, Status: models.AvailabilityAvailable})
	})
	return out
}

func summarize(days []models.AvailabilityEntry) models.AvailabilitySummary {
	var sum models.AvailabilitySummary
	for _, e := range days {
		switch e.Status {
		case models.AvailabilityAvailable:
			sum.Available++
		case models.AvailabilityBooked:
			sum.Booked++
		case models.AvailabilityBlocked:
			sum.Blocked++
		case models.AvailabilityMaintenance:
			sum.Maintenance++
		}
	}
	sum.Total = len(days)
	sum.OccupancyRate = utils.Percent(sum.Booked, sum.Total)
	return sum
}

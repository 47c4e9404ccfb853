package models

type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityBooked      AvailabilityStatus = "booked"
	AvailabilityBlocked     AvailabilityStatus = "blocked"
	AvailabilityMaintenance AvailabilityStatus = "maintenance"
)

func (s AvailabilityStatus) Valid() bool {
	switch s {
	case AvailabilityAvailable, AvailabilityBooked, AvailabilityBlocked, AvailabilityMaintenance:
		return true
	}
	return false
}

// Manual statuses are the ones a host may write directly; booked belongs to bookings.
func (s AvailabilityStatus) Manual() bool {
	switch s {
	case AvailabilityAvailable, AvailabilityBlocked, AvailabilityMaintenance:
		return true
	}
	return false
}

// AvailabilityEntry is one (unit, day) ledger record.
type AvailabilityEntry struct {
	UnitID    string             `json:"unitId"`
	Date      Date               `json:"date"`
	Status    AvailabilityStatus `json:"status"`
	BookingID string             `json:"bookingId,omitempty"`
	Note      string             `json:"note,omitempty"`
}

// AvailabilityPatch merges into an entry. A non-nil empty BookingID clears the reference.
type AvailabilityPatch struct {
	Status    *AvailabilityStatus
	BookingID *string
	Note      *string
}

func (p AvailabilityPatch) Apply(e *AvailabilityEntry) {
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.BookingID != nil {
		e.BookingID = *p.BookingID
	}
	if p.Note != nil {
		e.Note = *p.Note
	}
}

// BookedPatch marks days as held by a booking.
func BookedPatch(bookingID string) AvailabilityPatch {
	status := AvailabilityBooked
	return AvailabilityPatch{Status: &status, BookingID: &bookingID}
}

// ReleasePatch returns days to available and drops any booking reference.
func ReleasePatch() AvailabilityPatch {
	status := AvailabilityAvailable
	empty := ""
	return AvailabilityPatch{Status: &status, BookingID: &empty}
}

// SetAvailabilityRequest is a host-initiated write over an inclusive day span.
type SetAvailabilityRequest struct {
	UnitID    string
	StartDate Date
	EndDate   Date
	Status    AvailabilityStatus
	Note      *string
}

type AvailabilitySummary struct {
	UnitID        string `json:"unitId,omitempty"`
	UnitName      string `json:"unitName,omitempty"`
	Available     int    `json:"available"`
	Booked        int    `json:"booked"`
	Blocked       int    `json:"blocked"`
	Maintenance   int    `json:"maintenance"`
	Total         int    `json:"total"`
	OccupancyRate int    `json:"occupancyRate"`
}

type Period struct {
	StartDate Date `json:"startDate"`
	EndDate   Date `json:"endDate"`
}

type UnitAvailability struct {
	UnitID       string              `json:"unitId"`
	UnitName     string              `json:"unitName"`
	Period       Period              `json:"period"`
	Summary      AvailabilitySummary `json:"summary"`
	Availability []AvailabilityEntry `json:"availability"`
}

type AvailabilityOverview struct {
	Period       Period                         `json:"period"`
	Summary      []AvailabilitySummary          `json:"summary"`
	Availability map[string][]AvailabilityEntry `json:"availability"`
}

type AvailabilityUpdateResult struct {
	Message      string             `json:"message"`
	UnitID       string             `json:"unitId"`
	UnitName     string             `json:"unitName"`
	Period       Period             `json:"period"`
	Status       AvailabilityStatus `json:"status"`
	UpdatedDates []Date             `json:"updatedDates"`
}

type ReconcileReport struct {
	UnitsChecked int `json:"unitsChecked"`
	Marked       int `json:"marked"`
	Released     int `json:"released"`
}

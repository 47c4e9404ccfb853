// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"sync"

	"pillowstat/models"
)

// Key is the composite (unit, day) identity of a ledger entry.
type Key struct {
	UnitID string
	Date   models.Date
}

// Ledger tracks per-unit per-day availability. Days never written read as available.
type Ledger interface {
	GetByUnitAndDateRange(unitID string, start, end models.Date) []models.AvailabilityEntry
	GetByDate(unitID string, date models.Date) models.AvailabilityEntry
	Update(unitID string, date models.Date, patch models.AvailabilityPatch) models.AvailabilityEntry
	BulkUpdate(unitID string, start, end models.Date, patch models.AvailabilityPatch) []models.AvailabilityEntry
	GetAll() []models.AvailabilityEntry
}

type memoryLedger struct {
	mu      sync.RWMutex
	entries map[Key]models.AvailabilityEntry
}

// NewMemoryLedger constructs an empty in-process Ledger.
func NewMemoryLedger() Ledger {
	return &memoryLedger{
		entries: make(map[Key]models.AvailabilityEntry),
	}
}

func defaultEntry(unitID string, date models.Date) models.AvailabilityEntry {
	return models.AvailabilityEntry{
		UnitID: unitID,
		Date:   date,
		Status: models.AvailabilityAvailable,
	}
}

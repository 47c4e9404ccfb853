// File: database/repository/availability/queries.go
package availabilityRepo

import (
	"sort"

	"pillowstat/models"
)

// GetByUnitAndDateRange returns stored entries with start <= date <= end, sorted by unit then date.
// An empty unitID spans every unit.
func (l *memoryLedger) GetByUnitAndDateRange(unitID string, start, end models.Date) []models.AvailabilityEntry {
	l.mu.RLock()
	out := []models.AvailabilityEntry{}
	for k, e := range l.entries {
		if unitID != "" && k.UnitID != unitID {
			continue
		}
		if k.Date.Before(start) || k.Date.After(end) {
			continue
		}
		out = append(out, e)
	}
	l.mu.RUnlock()
	sortEntries(out)
	return out
}

// GetByDate returns the entry for the day, or the implicit available default.
func (l *memoryLedger) GetByDate(unitID string, date models.Date) models.AvailabilityEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if e, ok := l.entries[Key{UnitID: unitID, Date: date}]; ok {
		return e
	}
	return defaultEntry(unitID, date)
}

func (l *memoryLedger) GetAll() []models.AvailabilityEntry {
	l.mu.RLock()
	out := make([]models.AvailabilityEntry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	l.mu.RUnlock()
	sortEntries(out)
	return out
}

func sortEntries(entries []models.AvailabilityEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].UnitID != entries[j].UnitID {
			return entries[i].UnitID < entries[j].UnitID
		}
		return entries[i].Date.Before(entries[j].Date)
	})
}

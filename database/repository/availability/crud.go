// File: database/repository/availability/crud.go
package availabilityRepo

import "pillowstat/models"

// Update upserts: an absent entry starts as available before the patch is merged.
func (l *memoryLedger) Update(unitID string, date models.Date, patch models.AvailabilityPatch) models.AvailabilityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.upsert(unitID, date, patch)
}

// BulkUpdate patches every day in the inclusive span [start, end] under one write lock,
// so readers see either none or all of the span. Entries are returned in date order.
func (l *memoryLedger) BulkUpdate(unitID string, start, end models.Date, patch models.AvailabilityPatch) []models.AvailabilityEntry {
	out := []models.AvailabilityEntry{}
	if end.Before(start) {
		return out
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	models.EachDay(start, end, func(d models.Date) {
		out = append(out, l.upsert(unitID, d, patch))
	})
	return out
}

func (l *memoryLedger) upsert(unitID string, date models.Date, patch models.AvailabilityPatch) models.AvailabilityEntry {
	k := Key{UnitID: unitID, Date: date}
	entry, ok := l.entries[k]
	if !ok {
		entry = defaultEntry(unitID, date)
	}
	patch.Apply(&entry)
	if entry.Status != models.AvailabilityBooked {
		entry.BookingID = ""
	}
	l.entries[k] = entry
	return entry
}

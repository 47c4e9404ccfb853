package booking

import "sync"

// UnitLocks serializes every mutation that touches one unit's bookings or ledger days.
// Different units never contend.
type UnitLocks struct {
	mu    sync.Mutex
	units map[string]*sync.Mutex
}

func NewUnitLocks() *UnitLocks {
	return &UnitLocks{units: make(map[string]*sync.Mutex)}
}

// Lock blocks until the unit is free and returns its unlock func.
func (l *UnitLocks) Lock(unitID string) func() {
	l.mu.Lock()
	m, ok := l.units[unitID]
	if !ok {
		m = &sync.Mutex{}
		l.units[unitID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

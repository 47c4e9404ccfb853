package database

import (
	availabilityRepo "pillowstat/database/repository/availability"
	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/models"
	"pillowstat/utils"

	"go.uber.org/zap"
)

// DB groups every collection the process keeps in memory.
type DB struct {
	Guests       *recordsRepo.Store[models.Guest]
	Bookings     *recordsRepo.Store[models.Booking]
	Transactions *recordsRepo.Store[models.Transaction]
	Messages     *recordsRepo.Store[models.Message]
	Reviews      *recordsRepo.Store[models.Review]
	Inquiries    *recordsRepo.Store[models.Inquiry]
	Ledger       availabilityRepo.Ledger
}

// Store is the process-wide database instance set by InitDB.
var Store *DB

// NewDB returns empty collections.
func NewDB() *DB {
	return &DB{
		Guests:       recordsRepo.NewStore[models.Guest](),
		Bookings:     recordsRepo.NewStore[models.Booking](),
		Transactions: recordsRepo.NewStore[models.Transaction](),
		Messages:     recordsRepo.NewStore[models.Message](),
		Reviews:      recordsRepo.NewStore[models.Review](),
		Inquiries:    recordsRepo.NewStore[models.Inquiry](),
		Ledger:       availabilityRepo.NewMemoryLedger(),
	}
}

// InitDB builds the in-memory database, loading the demo data set relative to today when seed is set.
func InitDB(seed bool, today models.Date) *DB {
	db := NewDB()
	if seed {
		Seed(db, today)
	}
	Store = db
	utils.GetLogger().Info("In-memory store initialized",
		zap.Bool("seeded", seed),
		zap.Int("guests", len(db.Guests.GetAll())),
		zap.Int("bookings", len(db.Bookings.GetAll())),
		zap.Int("ledgerEntries", len(db.Ledger.GetAll())))
	return db
}

package database

import (
	"time"

	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/models"
)

// Seed loads the demo property: eight guests, twelve bookings and their payments,
// message threads, reviews and inquiries. Dates are relative to today. Active
// bookings never overlap on a unit, and the ledger is written from them.
func Seed(db *DB, today models.Date) {
	day := func(offset int) models.Date { return today.AddDays(offset) }
	at := func(offset, hour, min int) time.Time {
		d := today.AddDays(offset)
		return time.Date(d.Year, d.Month, d.Day, hour, min, 0, 0, time.UTC)
	}
	stamp := func(s string) time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}
		return t
	}

	// --- Guests ---
	for _, g := range []models.Guest{
		{ID: "guest-1", FirstName: "Sarah", LastName: "Johnson", Email: "sarah.johnson@email.com", Phone: "(555) 123-4567",
			Employer: "TravelNurse Inc", Hospital: "Regional Medical Center", ProfileImage: "/avatars/sarah.jpg",
			CreatedAt: stamp("2024-01-15T10:30:00Z"), Bookings: []string{"booking-1", "booking-7"}},
		{ID: "guest-2", FirstName: "Michael", LastName: "Chen", Email: "mchen@healthcare.com", Phone: "(555) 987-6543",
			Employer: "Aya Healthcare", Hospital: "University Hospital", ProfileImage: "/avatars/michael.jpg",
			CreatedAt: stamp("2024-01-20T14:15:00Z"), Bookings: []string{"booking-2", "booking-11"}},
		{ID: "guest-3", FirstName: "Emily", LastName: "Rodriguez", Email: "emily.r@nursestaffing.com", Phone: "(555) 456-7890",
			Employer: "Cross Country Nurses", Hospital: "St. Mary's Hospital", ProfileImage: "/avatars/emily.jpg",
			CreatedAt: stamp("2024-02-01T09:00:00Z"), Bookings: []string{"booking-3", "booking-8"}},
		{ID: "guest-4", FirstName: "James", LastName: "Williams", Email: "jwilliams@medpro.com", Phone: "(555) 234-5678",
			Employer: "MedPro Staffing", Hospital: "General Hospital", ProfileImage: "/avatars/james.jpg",
			CreatedAt: stamp("2024-02-05T11:30:00Z"), Bookings: []string{"booking-4"}},
		{ID: "guest-5", FirstName: "Amanda", LastName: "Thompson", Email: "athompson@nursefly.com", Phone: "(555) 345-6789",
			Employer: "NurseFly", Hospital: "Children's Medical Center",
			CreatedAt: stamp("2024-02-10T08:45:00Z"), Bookings: []string{"booking-5", "booking-12"}},
		{ID: "guest-6", FirstName: "David", LastName: "Martinez", Email: "david.m@flexcare.com", Phone: "(555) 567-8901",
			Employer: "FlexCare Medical", Hospital: "Valley Medical Center",
			CreatedAt: stamp("2024-02-15T16:00:00Z"), Bookings: []string{"booking-6"}},
		{ID: "guest-7", FirstName: "Jessica", LastName: "Brown", Email: "jbrown@trustaff.com", Phone: "(555) 678-9012",
			Employer: "Trustaff", Hospital: "Memorial Hospital",
			CreatedAt: stamp("2024-02-20T13:20:00Z"), Bookings: []string{"booking-9"}},
		{ID: "guest-8", FirstName: "Robert", LastName: "Taylor", Email: "rtaylor@healthtrust.com", Phone: "(555) 789-0123",
			Employer: "HealthTrust Workforce", Hospital: "Mercy Hospital",
			CreatedAt: stamp("2024-02-25T10:00:00Z"), Bookings: []string{"booking-10"}},
	} {
		mustCreate(db.Guests, g)
	}

	// --- Bookings ---
	// Studio stays chain back to back: each checkout day is the next check-in.
	bookings := []models.Booking{
		{ID: "booking-11", GuestID: "guest-2", UnitID: "studio-suite", StartDate: day(-300), EndDate: day(-210),
			Status: models.BookingCheckedOut, TotalAmount: 6600, PaymentStatus: models.PaymentPaid,
			CreatedAt: at(-315, 14, 15), Notes: "Previous stay. Returning guest."},
		{ID: "booking-8", GuestID: "guest-3", UnitID: "studio-suite", StartDate: day(-210), EndDate: day(-120),
			Status: models.BookingCheckedOut, TotalAmount: 6600, PaymentStatus: models.PaymentPaid,
			CreatedAt: at(-225, 9, 0), Notes: "Great guest. Left unit in perfect condition."},
		{ID: "booking-1", GuestID: "guest-1", UnitID: "studio-suite", StartDate: day(-120), EndDate: day(-90),
			Status: models.BookingCheckedOut, TotalAmount: 4400, PaymentStatus: models.PaymentPaid,
			CreatedAt: at(-135, 10, 30), Notes: "Excellent guest. Very quiet and respectful."},
		{ID: "booking-10", GuestID: "guest-8", UnitID: "studio-suite", StartDate: day(-90), EndDate: day(-1),
			Status: models.BookingCheckedOut, TotalAmount: 6600, PaymentStatus: models.PaymentPaid,
			CreatedAt: at(-105, 10, 0), Notes: "Checked out yesterday. 13-week contract."},
		{ID: "booking-4", GuestID: "guest-4", UnitID: "studio-suite", StartDate: day(14), EndDate: day(104),
			Status: models.BookingConfirmed, TotalAmount: 6600, PaymentStatus: models.PaymentPartial,
			CreatedAt: at(-7, 11, 30), Notes: "First deposit received. Balance due at check-in."},

		{ID: "booking-2", GuestID: "guest-2", UnitID: "garden-suite", StartDate: day(-45), EndDate: day(45),
			Status: models.BookingCheckedIn, TotalAmount: 4950, PaymentStatus: models.PaymentPaid,
			CreatedAt: at(-60, 14, 15), Notes: "13-week contract. ICU nurse."},
		{ID: "booking-9", GuestID: "guest-7", UnitID: "garden-suite", StartDate: day(45), EndDate: day(85),
			Status: models.BookingConfirmed, TotalAmount: 3300, PaymentStatus: models.PaymentPaid,
			CreatedAt: at(-10, 13, 20), Notes: "8-week contract. ER nurse."},
		{ID: "booking-5", GuestID: "guest-5", UnitID: "garden-suite", StartDate: day(95), EndDate: day(185),
			Status: models.BookingPending, TotalAmount: 4950, PaymentStatus: models.PaymentPending,
			CreatedAt: at(-3, 8, 45), Notes: "Awaiting contract confirmation from hospital."},

		{ID: "booking-6", GuestID: "guest-6", UnitID: "upper-retreat", StartDate: day(-20), EndDate: day(-5),
			Status: models.BookingCancelled, TotalAmount: 0, PaymentStatus: models.PaymentRefunded,
			CreatedAt: at(-35, 16, 0), Notes: "Contract cancelled by hospital. Full refund processed."},
		{ID: "booking-3", GuestID: "guest-3", UnitID: "upper-retreat", StartDate: day(7), EndDate: day(97),
			Status: models.BookingConfirmed, TotalAmount: 6300, PaymentStatus: models.PaymentPaid,
			CreatedAt: at(-14, 9, 0), Notes: "13-week contract starting next week."},
		{ID: "booking-7", GuestID: "guest-1", UnitID: "upper-retreat", StartDate: day(120), EndDate: day(210),
			Status: models.BookingPending, TotalAmount: 6300, PaymentStatus: models.PaymentPending,
			CreatedAt: at(-2, 10, 30), Notes: "Repeat guest! Extending for another contract."},
		{ID: "booking-12", GuestID: "guest-5", UnitID: "upper-retreat", StartDate: day(210), EndDate: day(300),
			Status: models.BookingPending, TotalAmount: 6300, PaymentStatus: models.PaymentPending,
			CreatedAt: at(-1, 8, 45), Notes: "Future booking inquiry."},
	}
	for _, b := range bookings {
		mustCreate(db.Bookings, b)
		if b.Status.Active() {
			db.Ledger.BulkUpdate(b.UnitID, b.StartDate, b.Range().LastNight(), models.BookedPatch(b.ID))
		}
	}

	// --- Host holds ---
	maintenance, blocked := models.AvailabilityMaintenance, models.AvailabilityBlocked
	cleaning, personal := "Deep cleaning scheduled", "Owner personal use"
	db.Ledger.BulkUpdate("studio-suite", day(5), day(7), models.AvailabilityPatch{Status: &maintenance, Note: &cleaning})
	db.Ledger.BulkUpdate("garden-suite", day(88), day(90), models.AvailabilityPatch{Status: &blocked, Note: &personal})

	// --- Transactions ---
	completed := func(id, bookingID string, amount float64, typ models.TransactionType, ref string, when time.Time, desc string) models.Transaction {
		return models.Transaction{ID: id, BookingID: bookingID, Amount: amount, Type: typ,
			Status: models.TransactionCompleted, ExternalRef: ref, CreatedAt: when, Description: desc}
	}
	for _, t := range []models.Transaction{
		completed("txn-1", "booking-1", 2200, models.TransactionDeposit, "pi_1234567890_deposit_1", at(-135, 10, 30), "Initial deposit - 50%"),
		completed("txn-2", "booking-1", 2200, models.TransactionPayment, "pi_1234567890_final_1", at(-120, 14, 0), "Final payment at check-in"),
		completed("txn-3", "booking-2", 4950, models.TransactionPayment, "pi_1234567891", at(-50, 14, 15), "Full payment - 13 week stay"),
		completed("txn-4", "booking-3", 6300, models.TransactionPayment, "pi_1234567892", at(-14, 9, 0), "Full payment - Upper Retreat 13 weeks"),
		completed("txn-5", "booking-4", 3300, models.TransactionDeposit, "pi_1234567893_deposit", at(-7, 11, 30), "Initial deposit - 50%"),
		completed("txn-6", "booking-6", 3150, models.TransactionDeposit, "pi_1234567894_deposit", at(-35, 16, 0), "Initial deposit - cancelled"),
		completed("txn-7", "booking-6", 3150, models.TransactionRefund, "pi_1234567894_refund", at(-25, 11, 0), "Full refund - contract cancelled"),
		completed("txn-8", "booking-8", 6600, models.TransactionPayment, "pi_1234567895", at(-225, 9, 0), "Full payment - 13 week stay"),
		completed("txn-9", "booking-9", 3300, models.TransactionPayment, "pi_1234567896", at(-10, 13, 20), "Full payment - 8 week stay"),
		completed("txn-10", "booking-10", 6600, models.TransactionPayment, "pi_1234567897", at(-105, 10, 0), "Full payment - 13 week stay"),
		completed("txn-11", "booking-11", 6600, models.TransactionPayment, "pi_1234567898", at(-315, 14, 15), "Full payment - returning guest"),
		completed("txn-12", "booking-3", 150, models.TransactionFee, "pi_fee_001", at(-14, 9, 5), "Late booking fee"),
	} {
		mustCreate(db.Transactions, t)
	}

	// --- Messages ---
	msg := func(id, bookingID, guestID string, sender models.MessageSender, when time.Time, read bool, content string) models.Message {
		return models.Message{ID: id, BookingID: bookingID, GuestID: guestID, Sender: sender, CreatedAt: when, Read: read, Content: content}
	}
	guest, host := models.SenderGuest, models.SenderHost
	for _, m := range []models.Message{
		msg("msg-1", "booking-1", "guest-1", guest, at(-127, 9, 0), true, "Hi! I just wanted to confirm my check-in time for next week. Is 3pm still good?"),
		msg("msg-2", "booking-1", "guest-1", host, at(-127, 9, 30), true, "Yes, 3pm works perfectly! I'll have everything ready for you. Do you need directions?"),
		msg("msg-3", "booking-1", "guest-1", guest, at(-127, 10, 0), true, "That would be great, thank you! I'm coming from the airport."),
		msg("msg-4", "booking-2", "guest-2", guest, at(-5, 18, 0), true, "Quick question - is it okay if I have a quiet guest over for dinner this weekend?"),
		msg("msg-5", "booking-2", "guest-2", host, at(-5, 18, 30), true, "Of course! Just please keep noise levels down after 10pm. Enjoy your dinner!"),
		msg("msg-6", "booking-2", "guest-2", guest, at(-5, 18, 45), true, "Absolutely, thank you so much!"),
		msg("msg-7", "booking-3", "guest-3", guest, at(-3, 14, 0), true, "Hi! I'm so excited for my upcoming stay. Just wanted to ask about parking - is there a dedicated spot?"),
		msg("msg-8", "booking-3", "guest-3", host, at(-3, 14, 30), true, "Yes! You'll have a dedicated parking spot right in front of the unit. I'll send you the access code the day before check-in."),
		msg("msg-9", "booking-4", "guest-4", guest, at(-6, 11, 0), true, "I've sent the first deposit. When is the remaining balance due?"),
		msg("msg-10", "booking-4", "guest-4", host, at(-6, 11, 30), true, "Got it, thank you! The remaining balance is due 3 days before check-in. I'll send a reminder."),
		msg("msg-11", "booking-5", "guest-5", guest, at(-1, 8, 0), false, "Hi! My hospital just confirmed my contract. Can we proceed with the booking?"),
		msg("msg-12", "booking-5", "guest-5", guest, at(-1, 8, 15), false, "Also, I work in the NICU and sometimes have early shifts. Is there flexible check-in available?"),
		msg("msg-13", "booking-6", "guest-6", guest, at(-25, 10, 0), true, "Unfortunately my contract was cancelled. I need to cancel my reservation."),
		msg("msg-14", "booking-6", "guest-6", host, at(-25, 10, 30), true, "I'm sorry to hear that. I've processed a full refund. Please let me know if you get another contract in the area!"),
		msg("msg-15", "booking-7", "guest-1", guest, at(-2, 9, 0), true, "I loved my last stay so much I wanted to book again! I got extended for another 13-week contract."),
		msg("msg-16", "booking-7", "guest-1", host, at(-2, 9, 30), true, "Welcome back, Sarah! So happy to have you again. I've reserved the Upper Retreat for you this time since you mentioned wanting more space."),
	} {
		mustCreate(db.Messages, m)
	}

	// --- Reviews ---
	responded := func(offset, hour int) *time.Time {
		t := at(offset, hour, 0)
		return &t
	}
	for _, r := range []models.Review{
		{ID: "review-1", GuestID: "guest-1", UnitID: "studio-suite", BookingID: "booking-1", Rating: 5, CreatedAt: at(-88, 10, 0),
			Content:  "Absolutely perfect for my 8-week assignment! The private entrance was amazing for my night shift schedule. Super quiet neighborhood and the kitchen had everything I needed.",
			Response: "Thank you so much, Sarah! It was a pleasure having you. Looking forward to your next stay!", ResponseDate: responded(-87, 9)},
		{ID: "review-2", GuestID: "guest-3", UnitID: "studio-suite", BookingID: "booking-8", Rating: 5, CreatedAt: at(-118, 14, 0),
			Content:  "This was my second stay at pillowSTAT and it was just as wonderful as the first. The location is perfect - only 10 minutes from the hospital.",
			Response: "We love having repeat guests! Thank you for the kind words, Emily. See you next time!", ResponseDate: responded(-117, 10)},
		{ID: "review-3", GuestID: "guest-2", UnitID: "studio-suite", BookingID: "booking-11", Rating: 4, CreatedAt: at(-208, 16, 0),
			Content:  "Great space and location. Kitchen was well-equipped and the bed was comfortable. Only minor issue was the water pressure in the shower but it was still fine.",
			Response: "Thanks Michael! We've since upgraded the shower head - hope you notice the improvement on your current stay!", ResponseDate: responded(-207, 11)},
		{ID: "review-4", GuestID: "guest-8", UnitID: "studio-suite", BookingID: "booking-10", Rating: 5, CreatedAt: at(-1, 8, 0),
			Content: "Best travel nurse housing I've ever had! The private patio is perfect for morning coffee before shifts. Everything is clean, modern, and well-maintained."},
		{ID: "review-5", GuestID: "guest-7", UnitID: "garden-suite", BookingID: "booking-9", Rating: 5, CreatedAt: at(-5, 12, 0),
			Content:  "Such a cozy and affordable option! Yes, the kitchen is shared but I rarely saw the other tenant. The garden area is lovely!",
			Response: "Thank you Jessica! So glad you enjoyed the garden space. Have a great rest of your assignment!", ResponseDate: responded(-4, 9)},
		{ID: "review-6", GuestID: "guest-4", UnitID: "upper-retreat", Rating: 5, CreatedAt: at(-180, 10, 0),
			Content: "The Upper Retreat is incredible - so much space! The water view from the deck helped me decompress after long ICU shifts."},
	} {
		mustCreate(db.Reviews, r)
	}

	// --- Inquiries ---
	for _, i := range []models.Inquiry{
		{ID: "inquiry-1", UnitID: "studio-suite", UnitName: "Studio Suite", FirstName: "Sarah", LastName: "Johnson",
			Email: "sarah.johnson@email.com", Phone: "(555) 123-4567", ContractLength: 13, StartDate: day(30),
			Employer: "TravelNurse Inc", Hospital: "Regional Medical Center",
			Message: "Looking for a quiet place during my 13-week contract. I work night shifts.",
			Status:  models.InquiryNew, CreatedAt: at(-4, 10, 30)},
		{ID: "inquiry-2", UnitID: "garden-suite", UnitName: "Garden Suite", FirstName: "Michael", LastName: "Chen",
			Email: "mchen@email.com", Phone: "(555) 987-6543", ContractLength: 26, StartDate: day(200),
			Employer: "Aya Healthcare", Hospital: "University Hospital",
			Status: models.InquiryContacted, CreatedAt: at(-8, 14, 15),
			Notes: "Called back. Very interested. Waiting for contract confirmation."},
	} {
		mustCreate(db.Inquiries, i)
	}
}

func mustCreate[T recordsRepo.Record[T]](store *recordsRepo.Store[T], record T) {
	if _, err := store.Create(record); err != nil {
		panic(err)
	}
}

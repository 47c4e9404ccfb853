package booking

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	availabilityRepo "pillowstat/database/repository/availability"
	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/models"
	"pillowstat/services/guest"
	"pillowstat/services/units"
	"pillowstat/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc    *DefaultBookingService
	ledger availabilityRepo.Ledger
	guests *guest.DefaultGuestService
	guest  *models.Guest
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bookings := recordsRepo.NewStore[models.Booking]()
	guests := guest.NewGuestService(recordsRepo.NewStore[models.Guest](), bookings, nil)
	ledger := availabilityRepo.NewMemoryLedger()
	svc := NewBookingService(bookings, guests, ledger, units.NewStaticCatalog(nil), nil, nil, nil)

	clock := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	svc.Now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		clock = clock.Add(time.Second)
		return clock
	}

	g, err := guests.CreateGuest(models.CreateGuestRequest{
		FirstName: "Sarah", LastName: "Johnson", Email: "sarah@email.com", Phone: "(206) 555-0101",
	})
	require.NoError(t, err)
	return &fixture{svc: svc, ledger: ledger, guests: guests, guest: g}
}

func d(s string) models.Date { return models.MustParseDate(s) }

func amount(v float64) *float64 { return &v }

func (f *fixture) book(unitID, start, end string) (*models.BookingView, error) {
	return f.svc.CreateBooking(models.CreateBookingRequest{
		GuestID:     f.guest.ID,
		UnitID:      unitID,
		StartDate:   d(start),
		EndDate:     d(end),
		TotalAmount: amount(525),
	})
}

func bookedBy(l availabilityRepo.Ledger, unitID, start, end, bookingID string) int {
	n := 0
	for _, e := range l.GetByUnitAndDateRange(unitID, d(start), d(end)) {
		if e.Status == models.AvailabilityBooked && e.BookingID == bookingID {
			n++
		}
	}
	return n
}

func TestConcreteScenario(t *testing.T) {
	f := newFixture(t)

	first, err := f.book("studio-suite", "2025-03-01", "2025-03-08")
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, first.Status)
	assert.Equal(t, models.PaymentPending, first.PaymentStatus)
	assert.Equal(t, 525.0, first.TotalAmount)
	assert.Equal(t, "Sarah Johnson", first.GuestName)
	assert.Equal(t, "Studio Suite", first.UnitName)

	_, err = f.book("studio-suite", "2025-03-05", "2025-03-10")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, utils.KindConflict, appErr.Kind)
	require.Len(t, appErr.Conflicts, 1)
	assert.Equal(t, first.ID, appErr.Conflicts[0].ID)
	assert.Equal(t, d("2025-03-01"), appErr.Conflicts[0].StartDate)

	_, err = f.svc.CancelBooking(first.ID)
	require.NoError(t, err)

	second, err := f.book("studio-suite", "2025-03-05", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 5, bookedBy(f.ledger, "studio-suite", "2025-03-05", "2025-03-10", second.ID))
}

func TestOverlapRejectionRoundTrip(t *testing.T) {
	f := newFixture(t)
	_, err := f.book("garden-suite", "2025-04-10", "2025-04-20")
	require.NoError(t, err)

	for _, r := range [][2]string{
		{"2025-04-01", "2025-04-11"},
		{"2025-04-19", "2025-04-25"},
		{"2025-04-12", "2025-04-15"},
		{"2025-04-05", "2025-04-25"},
		{"2025-04-10", "2025-04-20"},
	} {
		_, err := f.book("garden-suite", r[0], r[1])
		assert.Equal(t, utils.KindConflict, utils.KindOf(err), "range %v", r)
	}

	_, err = f.book("garden-suite", "2025-04-20", "2025-04-30")
	require.NoError(t, err, "check-in on the previous checkout day is allowed")
	_, err = f.book("garden-suite", "2025-04-01", "2025-04-10")
	require.NoError(t, err, "checkout on the next check-in day is allowed")

	_, err = f.book("upper-retreat", "2025-04-10", "2025-04-20")
	require.NoError(t, err, "other units are independent")
}

func TestCheckoutDayStaysAvailableInLedger(t *testing.T) {
	f := newFixture(t)
	b, err := f.book("studio-suite", "2025-03-01", "2025-03-08")
	require.NoError(t, err)

	checkout := f.ledger.GetByDate("studio-suite", d("2025-03-08"))
	assert.Equal(t, models.AvailabilityAvailable, checkout.Status)
	assert.Equal(t, 7, bookedBy(f.ledger, "studio-suite", "2025-03-01", "2025-03-08", b.ID))
}

func TestCancellationFreesTheLedger(t *testing.T) {
	f := newFixture(t)
	b, err := f.book("upper-retreat", "2025-05-01", "2025-05-15")
	require.NoError(t, err)
	require.Equal(t, 14, bookedBy(f.ledger, "upper-retreat", "2025-05-01", "2025-05-15", b.ID))

	res, err := f.svc.CancelBooking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, res.Booking.Status)

	for _, e := range f.ledger.GetByUnitAndDateRange("upper-retreat", d("2025-05-01"), d("2025-05-15")) {
		assert.NotEqual(t, b.ID, e.BookingID)
		assert.NotEqual(t, models.AvailabilityBooked, e.Status)
	}
}

func TestCancelAppendsNoteAndIsIdempotent(t *testing.T) {
	f := newFixture(t)
	b, err := f.svc.CreateBooking(models.CreateBookingRequest{
		GuestID: f.guest.ID, UnitID: "studio-suite",
		StartDate: d("2025-06-01"), EndDate: d("2025-06-10"),
		TotalAmount: amount(900), Notes: "Late arrival",
	})
	require.NoError(t, err)

	res, err := f.svc.CancelBooking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Booking cancelled successfully", res.Message)
	assert.Regexp(t, `^Late arrival\n\[Cancelled on \d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z\]$`, res.Booking.Notes)

	again, err := f.svc.CancelBooking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Booking.Notes, again.Booking.Notes, "second cancel must not append another note")

	_, err = f.svc.CancelBooking("booking-missing")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestCannotCancelCheckedInBooking(t *testing.T) {
	f := newFixture(t)
	b, err := f.book("studio-suite", "2025-03-01", "2025-03-08")
	require.NoError(t, err)
	checkedIn := models.BookingCheckedIn
	_, err = f.svc.UpdateBooking(b.ID, models.UpdateBookingRequest{Status: &checkedIn})
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(b.ID)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.KindInvalidState, appErr.Kind)
	assert.Contains(t, appErr.Message, "check out first")

	cancelled := models.BookingCancelled
	_, err = f.svc.UpdateBooking(b.ID, models.UpdateBookingRequest{Status: &cancelled})
	assert.Equal(t, utils.KindInvalidState, utils.KindOf(err))

	assert.Equal(t, 7, bookedBy(f.ledger, "studio-suite", "2025-03-01", "2025-03-08", b.ID))
}

func TestUpdateAllowListAndValidation(t *testing.T) {
	f := newFixture(t)
	b, err := f.book("studio-suite", "2025-03-01", "2025-03-08")
	require.NoError(t, err)

	confirmed := models.BookingConfirmed
	paid := models.PaymentPaid
	notes := "Gate code 1234"
	updated, err := f.svc.UpdateBooking(b.ID, models.UpdateBookingRequest{
		Status: &confirmed, PaymentStatus: &paid, Notes: &notes, TotalAmount: amount(600),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, "Gate code 1234", updated.Notes)
	assert.Equal(t, 600.0, updated.TotalAmount)
	assert.Equal(t, b.GuestID, updated.GuestID)
	assert.Equal(t, b.UnitID, updated.UnitID)
	assert.Equal(t, b.CreatedAt, updated.CreatedAt)

	bogus := models.BookingStatus("archived")
	_, err = f.svc.UpdateBooking(b.ID, models.UpdateBookingRequest{Status: &bogus})
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))

	bogusPay := models.PaymentStatus("comped")
	_, err = f.svc.UpdateBooking(b.ID, models.UpdateBookingRequest{PaymentStatus: &bogusPay})
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))

	end := d("2025-03-01")
	_, err = f.svc.UpdateBooking(b.ID, models.UpdateBookingRequest{EndDate: &end})
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))

	_, err = f.svc.UpdateBooking("booking-missing", models.UpdateBookingRequest{Notes: &notes})
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestUpdateDatesMovesLedgerAndChecksConflicts(t *testing.T) {
	f := newFixture(t)
	a, err := f.book("garden-suite", "2025-03-01", "2025-03-08")
	require.NoError(t, err)
	b, err := f.book("garden-suite", "2025-03-10", "2025-03-20")
	require.NoError(t, err)

	// extending into b is refused; a conflict only names b, never a itself
	end := d("2025-03-12")
	_, err = f.svc.UpdateBooking(a.ID, models.UpdateBookingRequest{EndDate: &end})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Conflicts, 1)
	assert.Equal(t, b.ID, appErr.Conflicts[0].ID)

	// shifting within its own range is fine
	start, end := d("2025-03-03"), d("2025-03-10")
	moved, err := f.svc.UpdateBooking(a.ID, models.UpdateBookingRequest{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, d("2025-03-03"), moved.StartDate)

	assert.Equal(t, 0, bookedBy(f.ledger, "garden-suite", "2025-03-01", "2025-03-02", a.ID))
	assert.Equal(t, 7, bookedBy(f.ledger, "garden-suite", "2025-03-03", "2025-03-09", a.ID))
	assert.Equal(t, 10, bookedBy(f.ledger, "garden-suite", "2025-03-10", "2025-03-19", b.ID))
}

func TestReactivationRechecksAvailability(t *testing.T) {
	f := newFixture(t)
	a, err := f.book("studio-suite", "2025-03-01", "2025-03-08")
	require.NoError(t, err)
	_, err = f.svc.CancelBooking(a.ID)
	require.NoError(t, err)
	b, err := f.book("studio-suite", "2025-03-05", "2025-03-10")
	require.NoError(t, err)

	confirmed := models.BookingConfirmed
	_, err = f.svc.UpdateBooking(a.ID, models.UpdateBookingRequest{Status: &confirmed})
	require.Equal(t, utils.KindConflict, utils.KindOf(err))

	_, err = f.svc.CancelBooking(b.ID)
	require.NoError(t, err)
	_, err = f.svc.UpdateBooking(a.ID, models.UpdateBookingRequest{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, 7, bookedBy(f.ledger, "studio-suite", "2025-03-01", "2025-03-08", a.ID))
}

func TestCreateRefusesBlockedDays(t *testing.T) {
	f := newFixture(t)
	maintenance := models.AvailabilityMaintenance
	f.ledger.BulkUpdate("studio-suite", d("2025-03-05"), d("2025-03-06"), models.AvailabilityPatch{Status: &maintenance})

	_, err := f.book("studio-suite", "2025-03-01", "2025-03-08")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.KindConflict, appErr.Kind)
	assert.Empty(t, appErr.Conflicts)
	assert.Equal(t, []models.Date{d("2025-03-05"), d("2025-03-06")}, appErr.BlockedDates)

	_, err = f.book("studio-suite", "2025-03-01", "2025-03-05")
	require.NoError(t, err, "a stay checking out on the first blocked day does not occupy it")
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateBooking(models.CreateBookingRequest{
		GuestID: f.guest.ID, UnitID: "studio-suite", StartDate: d("2025-03-01"), EndDate: d("2025-03-08"),
	})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "totalAmount", appErr.Field)

	_, err = f.svc.CreateBooking(models.CreateBookingRequest{
		GuestID: "guest-missing", UnitID: "studio-suite", StartDate: d("2025-03-01"), EndDate: d("2025-03-08"), TotalAmount: amount(1),
	})
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	_, err = f.book("penthouse", "2025-03-01", "2025-03-08")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	_, err = f.book("studio-suite", "2025-03-08", "2025-03-08")
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))

	_, err = f.svc.CreateBooking(models.CreateBookingRequest{
		GuestID: f.guest.ID, UnitID: "studio-suite", StartDate: d("2025-03-01"), EndDate: d("2025-03-08"),
		TotalAmount: amount(1), Status: "archived",
	})
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))
}

func TestStayLengthIsCapped(t *testing.T) {
	f := newFixture(t)

	_, err := f.book("studio-suite", "0001-01-01", "9999-12-31")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.KindInvalidInput, appErr.Kind)
	assert.Equal(t, "endDate", appErr.Field)
	assert.Equal(t, "Stay cannot exceed 365 nights", appErr.Message)
	assert.Empty(t, f.ledger.GetAll())

	_, err = f.book("studio-suite", "2025-01-01", "2026-01-02")
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))

	full, err := f.book("studio-suite", "2025-01-01", "2026-01-01")
	require.NoError(t, err, "exactly 365 nights is allowed")

	longer := d("2026-01-02")
	_, err = f.svc.UpdateBooking(full.ID, models.UpdateBookingRequest{EndDate: &longer})
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))
	got, err := f.svc.GetBooking(full.ID)
	require.NoError(t, err)
	assert.Equal(t, d("2026-01-01"), got.EndDate)
	assert.Equal(t, 0, bookedBy(f.ledger, "studio-suite", "2026-01-01", "2026-01-01", full.ID))

	f.svc.MaxStayDays = 7
	_, err = f.book("garden-suite", "2025-03-01", "2025-03-09")
	assert.Equal(t, utils.KindInvalidInput, utils.KindOf(err))
	_, err = f.book("garden-suite", "2025-03-01", "2025-03-08")
	assert.NoError(t, err)
}

func TestCreateLinksBookingToGuest(t *testing.T) {
	f := newFixture(t)
	b, err := f.book("studio-suite", "2025-03-01", "2025-03-08")
	require.NoError(t, err)

	g, err := f.guests.GetGuest(f.guest.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, g.Bookings)
}

func TestCancelledCreateSkipsChecksAndLedger(t *testing.T) {
	f := newFixture(t)
	_, err := f.book("studio-suite", "2025-03-01", "2025-03-08")
	require.NoError(t, err)

	c, err := f.svc.CreateBooking(models.CreateBookingRequest{
		GuestID: f.guest.ID, UnitID: "studio-suite", StartDate: d("2025-03-01"), EndDate: d("2025-03-08"),
		TotalAmount: amount(1), Status: models.BookingCancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, bookedBy(f.ledger, "studio-suite", "2025-03-01", "2025-03-08", c.ID))
}

func TestNoDoubleBookingUnderRandomLoad(t *testing.T) {
	f := newFixture(t)
	rng := rand.New(rand.NewSource(42))
	base := d("2025-01-01")
	unitIDs := []string{"studio-suite", "garden-suite", "upper-retreat"}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		seeds := make([][3]int, 40)
		for i := range seeds {
			seeds[i] = [3]int{rng.Intn(len(unitIDs)), rng.Intn(120), 1 + rng.Intn(20)}
		}
		wg.Add(1)
		go func(seeds [][3]int) {
			defer wg.Done()
			for i, s := range seeds {
				start := base.AddDays(s[1])
				end := start.AddDays(s[2])
				created, err := f.svc.CreateBooking(models.CreateBookingRequest{
					GuestID: f.guest.ID, UnitID: unitIDs[s[0]], StartDate: start, EndDate: end, TotalAmount: amount(100),
				})
				if err == nil && i%5 == 0 {
					newEnd := end.AddDays(3)
					_, _ = f.svc.UpdateBooking(created.ID, models.UpdateBookingRequest{EndDate: &newEnd})
				}
				if err == nil && i%7 == 0 {
					_, _ = f.svc.CancelBooking(created.ID)
				}
			}
		}(seeds)
	}
	wg.Wait()

	active := f.svc.Repo.Filter(func(b models.Booking) bool { return b.Status.Active() })
	require.NotEmpty(t, active)
	for i := range active {
		for j := i + 1; j < len(active); j++ {
			a, b := active[i], active[j]
			if a.UnitID != b.UnitID {
				continue
			}
			require.False(t, a.Range().Overlaps(b.Range()),
				fmt.Sprintf("%s %v overlaps %s %v", a.ID, a.Range(), b.ID, b.Range()))
		}
	}

	// ledger and bookings agree on every night
	for _, b := range active {
		nights := b.Range().Nights()
		assert.Equal(t, nights, bookedBy(f.ledger, b.UnitID, b.StartDate.String(), b.Range().LastNight().String(), b.ID))
	}
}

func TestListBookingsFiltersAndPaginates(t *testing.T) {
	f := newFixture(t)
	first, err := f.book("studio-suite", "2025-03-01", "2025-03-08")
	require.NoError(t, err)
	_, err = f.book("garden-suite", "2025-04-01", "2025-04-08")
	require.NoError(t, err)
	last, err := f.book("studio-suite", "2025-05-01", "2025-05-08")
	require.NoError(t, err)

	all := f.svc.ListBookings(models.BookingFilter{})
	require.Len(t, all.Data, 3)
	assert.Equal(t, last.ID, all.Data[0].ID, "newest first")
	assert.Equal(t, "Sarah Johnson", all.Data[0].GuestName)

	studio := f.svc.ListBookings(models.BookingFilter{UnitID: "studio-suite", Limit: 1, Page: 2})
	require.Len(t, studio.Data, 1)
	assert.Equal(t, first.ID, studio.Data[0].ID)
	assert.Equal(t, models.Pagination{Page: 2, Limit: 1, Total: 2, TotalPages: 2}, studio.Pagination)

	window := f.svc.ListBookings(models.BookingFilter{StartDate: d("2025-03-15"), EndDate: d("2025-04-30")})
	require.Len(t, window.Data, 1)
	assert.Equal(t, "Garden Suite", window.Data[0].UnitName)
}

func TestGetBookingDetail(t *testing.T) {
	f := newFixture(t)
	b, err := f.book("studio-suite", "2025-03-01", "2025-03-08")
	require.NoError(t, err)

	detail, err := f.svc.GetBookingDetail(b.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Guest)
	require.NotNil(t, detail.Unit)
	assert.Equal(t, "Sarah Johnson", detail.Guest.Name)
	assert.Equal(t, 2100.0, detail.Unit.MonthlyPrice)

	_, err = f.svc.GetBookingDetail("booking-missing")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

package models

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked-in"
	BookingCheckedOut BookingStatus = "checked-out"
	BookingCancelled  BookingStatus = "cancelled"
	BookingCompleted  BookingStatus = "completed"
)

var BookingStatuses = []BookingStatus{
	BookingPending, BookingConfirmed, BookingCheckedIn,
	BookingCheckedOut, BookingCancelled, BookingCompleted,
}

func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Active bookings hold their nights; only cancellation releases them.
func (s BookingStatus) Active() bool {
	return s != BookingCancelled
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

var PaymentStatuses = []PaymentStatus{
	PaymentPending, PaymentPaid, PaymentPartial, PaymentRefunded, PaymentFailed,
}

func (s PaymentStatus) Valid() bool {
	for _, v := range PaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Booking is a reservation of one unit for a half-open range of nights.
type Booking struct {
	ID            string        `json:"id"`
	GuestID       string        `json:"guestId"`
	UnitID        string        `json:"unitId"`
	StartDate     Date          `json:"startDate"`
	EndDate       Date          `json:"endDate"`
	Status        BookingStatus `json:"status"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func (b Booking) GetID() string { return b.ID }
func (b Booking) Clone() Booking { return b }

func (b Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// CreateBookingRequest carries a booking intent. Optional fields are zero when omitted.
type CreateBookingRequest struct {
	GuestID       string
	UnitID        string
	StartDate     Date
	EndDate       Date
	TotalAmount   *float64
	Status        BookingStatus
	PaymentStatus PaymentStatus
	Notes         string
}

// UpdateBookingRequest holds the mutable allow-list; nil means "leave unchanged".
type UpdateBookingRequest struct {
	Status        *BookingStatus
	PaymentStatus *PaymentStatus
	Notes         *string
	StartDate     *Date
	EndDate       *Date
	TotalAmount   *float64
}

// BookingFilter drives the admin listing.
type BookingFilter struct {
	Status        BookingStatus
	UnitID        string
	GuestID       string
	PaymentStatus PaymentStatus
	StartDate     Date // keep bookings starting on or after
	EndDate       Date // keep bookings ending on or before
	Page          int
	Limit         int
}

// BookingView is a booking enriched for listings.
type BookingView struct {
	Booking
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail,omitempty"`
	UnitName   string `json:"unitName"`
}

type GuestSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Employer string `json:"employer,omitempty"`
	Hospital string `json:"hospital,omitempty"`
}

type UnitSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Tier         string  `json:"tier"`
	MonthlyPrice float64 `json:"monthlyPrice"`
}

// BookingDetail embeds guest and unit summaries for the single-booking view.
type BookingDetail struct {
	Booking
	Guest *GuestSummary `json:"guest"`
	Unit  *UnitSummary  `json:"unit"`
}

// ConflictingBooking names an active booking that blocks a requested range.
type ConflictingBooking struct {
	ID        string `json:"id"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`
}

type CancelResult struct {
	Message string  `json:"message"`
	Booking Booking `json:"booking"`
}

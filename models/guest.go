package models

import "time"

// Guest is a traveling professional who books units. Guests are never deleted.
type Guest struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Employer     string    `json:"employer,omitempty"`
	Hospital     string    `json:"hospital,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	Bookings     []string  `json:"bookings"`
}

func (g Guest) GetID() string { return g.ID }

func (g Guest) Clone() Guest {
	c := g
	c.Bookings = append([]string(nil), g.Bookings...)
	return c
}

func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

type CreateGuestRequest struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Employer     string
	Hospital     string
	ProfileImage string
}

// UpdateGuestRequest is the profile-edit allow-list.
type UpdateGuestRequest struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	Employer     *string
	Hospital     *string
	ProfileImage *string
}

type GuestFilter struct {
	Search   string
	Hospital string
	Employer string
	Page     int
	Limit    int
}

type GuestStats struct {
	TotalBookings     int     `json:"totalBookings"`
	CompletedBookings int     `json:"completedBookings"`
	TotalSpent        float64 `json:"totalSpent"`
	LastStay          *Date   `json:"lastStay,omitempty"`
}

type GuestView struct {
	Guest
	Stats GuestStats `json:"stats"`
}

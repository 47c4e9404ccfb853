package models

import "time"

type Review struct {
	ID           string     `json:"id"`
	GuestID      string     `json:"guestId"`
	UnitID       string     `json:"unitId"`
	BookingID    string     `json:"bookingId,omitempty"`
	Rating       int        `json:"rating"`
	Content      string     `json:"content"`
	CreatedAt    time.Time  `json:"createdAt"`
	Response     string     `json:"response,omitempty"`
	ResponseDate *time.Time `json:"responseDate,omitempty"`
}

func (r Review) GetID() string { return r.ID }

func (r Review) Clone() Review {
	c := r
	if r.ResponseDate != nil {
		t := *r.ResponseDate
		c.ResponseDate = &t
	}
	return c
}

package models

import "time"

type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryContacted InquiryStatus = "contacted"
	InquiryApproved  InquiryStatus = "approved"
	InquiryBooked    InquiryStatus = "booked"
	InquiryDeclined  InquiryStatus = "declined"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryContacted, InquiryApproved, InquiryBooked, InquiryDeclined:
		return true
	}
	return false
}

// Inquiry is a prospective guest's request from the public site.
type Inquiry struct {
	ID             string        `json:"id"`
	UnitID         string        `json:"unitId"`
	UnitName       string        `json:"unitName"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	ContractLength int           `json:"contractLength"`
	StartDate      Date          `json:"startDate"`
	Employer       string        `json:"employer,omitempty"`
	Hospital       string        `json:"hospital,omitempty"`
	Message        string        `json:"message,omitempty"`
	Status         InquiryStatus `json:"status"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}

func (i Inquiry) GetID() string  { return i.ID }
func (i Inquiry) Clone() Inquiry { return i }

type UpdateInquiryRequest struct {
	Status *InquiryStatus
	Notes  *string
}

type CreateInquiryRequest struct {
	UnitID         string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	ContractLength int
	StartDate      Date
	Employer       string
	Hospital       string
	Message        string
}

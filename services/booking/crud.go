package booking

import (
	"sort"
	"strings"

	"pillowstat/models"
	"pillowstat/services/units"
	"pillowstat/utils"

	"go.uber.org/zap"
)

// CreateBooking validates the intent and inserts it under the unit lock, so two
// overlapping requests can never both pass the availability check.
func (s *DefaultBookingService) CreateBooking(req models.CreateBookingRequest) (*models.BookingView, error) {
	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	g, err := s.Guests.GetGuest(req.GuestID)
	if err != nil {
		return nil, err
	}
	unit, ok := s.Catalog.Get(req.UnitID)
	if !ok {
		return nil, utils.NewNotFound("Unit not found")
	}
	stay := models.DateRange{Start: req.StartDate, End: req.EndDate}
	if !stay.Valid() {
		return nil, utils.NewInvalidInput("endDate", "End date must be after start date")
	}
	if err := s.checkStayLength(stay); err != nil {
		return nil, err
	}

	unlock := s.Locks.Lock(req.UnitID)
	defer unlock()

	if req.Status.Active() {
		if err := s.checkAvailability("create", req.UnitID, stay, ""); err != nil {
			s.Logger.Info("Booking rejected: dates unavailable",
				zap.String("unitId", req.UnitID),
				zap.String("startDate", stay.Start.String()),
				zap.String("endDate", stay.End.String()))
			return nil, err
		}
	}

	b := models.Booking{
		ID:            utils.NewID(utils.BookingIDPrefix),
		GuestID:       req.GuestID,
		UnitID:        req.UnitID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        req.Status,
		TotalAmount:   *req.TotalAmount,
		PaymentStatus: req.PaymentStatus,
		Notes:         req.Notes,
		CreatedAt:     s.Now(),
	}
	created, err := s.Repo.Create(b)
	if err != nil {
		s.Logger.Error("Failed to store booking", zap.String("bookingId", b.ID), zap.Error(err))
		return nil, utils.NewInternal("Failed to create booking", err)
	}
	if created.Status.Active() {
		s.occupy(created)
	}
	if err := s.Guests.AddBooking(g.ID, created.ID); err != nil {
		s.Logger.Error("Failed to link booking to guest", zap.String("guestId", g.ID), zap.Error(err))
	}

	s.Metrics.BookingCreated()
	s.Logger.Info("Booking created",
		zap.String("bookingId", created.ID),
		zap.String("unitId", created.UnitID),
		zap.String("status", string(created.Status)))

	return &models.BookingView{
		Booking:    created,
		GuestName:  g.FullName(),
		GuestEmail: g.Email,
		UnitName:   unit.Name,
	}, nil
}

func validateCreate(req *models.CreateBookingRequest) error {
	req.GuestID = strings.TrimSpace(req.GuestID)
	req.UnitID = strings.TrimSpace(req.UnitID)
	switch {
	case req.GuestID == "":
		return utils.NewInvalidInput("guestId", "Missing required field: guestId")
	case req.UnitID == "":
		return utils.NewInvalidInput("unitId", "Missing required field: unitId")
	case req.StartDate.IsZero():
		return utils.NewInvalidInput("startDate", "Missing required field: startDate")
	case req.EndDate.IsZero():
		return utils.NewInvalidInput("endDate", "Missing required field: endDate")
	case req.TotalAmount == nil:
		return utils.NewInvalidInput("totalAmount", "Missing required field: totalAmount")
	case *req.TotalAmount < 0:
		return utils.NewInvalidInput("totalAmount", "Total amount cannot be negative")
	}

	if req.Status == "" {
		req.Status = models.BookingPending
	}
	if !req.Status.Valid() {
		return invalidStatus()
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = models.PaymentPending
	}
	if !req.PaymentStatus.Valid() {
		return invalidPaymentStatus()
	}
	return nil
}

func invalidStatus() error {
	names := make([]string, 0, len(models.BookingStatuses))
	for _, st := range models.BookingStatuses {
		names = append(names, string(st))
	}
	return utils.NewInvalidInput("status", "Invalid status. Must be one of: "+strings.Join(names, ", "))
}

func invalidPaymentStatus() error {
	names := make([]string, 0, len(models.PaymentStatuses))
	for _, st := range models.PaymentStatuses {
		names = append(names, string(st))
	}
	return utils.NewInvalidInput("paymentStatus", "Invalid payment status. Must be one of: "+strings.Join(names, ", "))
}

func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, ok := s.Repo.GetByID(id)
	if !ok {
		return nil, utils.NewNotFound("Booking not found")
	}
	return &b, nil
}

// GetBookingDetail embeds guest and unit summaries; either is nil if the reference dangles.
func (s *DefaultBookingService) GetBookingDetail(id string) (*models.BookingDetail, error) {
	b, err := s.GetBooking(id)
	if err != nil {
		return nil, err
	}
	detail := &models.BookingDetail{Booking: *b}
	if g, ok := s.Guests.Summary(b.GuestID); ok {
		detail.Guest = g
	}
	if u, ok := s.Catalog.Get(b.UnitID); ok {
		detail.Unit = units.Summary(u)
	}
	return detail, nil
}

// ListBookings filters, sorts newest-created first and paginates.
func (s *DefaultBookingService) ListBookings(f models.BookingFilter) models.Page[models.BookingView] {
	matches := s.Repo.Filter(func(b models.Booking) bool {
		switch {
		case f.Status != "" && b.Status != f.Status:
			return false
		case f.UnitID != "" && b.UnitID != f.UnitID:
			return false
		case f.GuestID != "" && b.GuestID != f.GuestID:
			return false
		case f.PaymentStatus != "" && b.PaymentStatus != f.PaymentStatus:
			return false
		case !f.StartDate.IsZero() && b.StartDate.Before(f.StartDate):
			return false
		case !f.EndDate.IsZero() && b.EndDate.After(f.EndDate):
			return false
		}
		return true
	})
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	page := models.Paginate(matches, f.Page, f.Limit, utils.DefaultPageLimit)
	views := make([]models.BookingView, 0, len(page.Data))
	for _, b := range page.Data {
		views = append(views, s.view(b))
	}
	return models.Page[models.BookingView]{Data: views, Pagination: page.Pagination}
}

func (s *DefaultBookingService) view(b models.Booking) models.BookingView {
	v := models.BookingView{Booking: b, GuestName: "Unknown", UnitName: "Unknown"}
	if g, ok := s.Guests.Summary(b.GuestID); ok {
		v.GuestName = g.Name
		v.GuestEmail = g.Email
	}
	if u, ok := s.Catalog.Get(b.UnitID); ok {
		v.UnitName = u.Name
	}
	return v
}

// SetPaymentStatus is used by the payment flow; it never touches occupancy.
func (s *DefaultBookingService) SetPaymentStatus(id string, status models.PaymentStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, invalidPaymentStatus()
	}
	updated, err := s.Repo.Update(id, func(b *models.Booking) { b.PaymentStatus = status })
	if err != nil {
		return nil, utils.NewNotFound("Booking not found")
	}
	return &updated, nil
}

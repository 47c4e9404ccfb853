package booking

import (
	"fmt"
	"time"

	"pillowstat/models"
	"pillowstat/utils"

	"go.uber.org/zap"
)

// UpdateBooking merges the mutable allow-list (status, paymentStatus, notes, dates,
// totalAmount) and re-syncs the ledger for whatever the change did to occupancy.
func (s *DefaultBookingService) UpdateBooking(id string, req models.UpdateBookingRequest) (*models.BookingView, error) {
	existing, ok := s.Repo.GetByID(id)
	if !ok {
		return nil, utils.NewNotFound("Booking not found")
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, invalidStatus()
	}
	if req.PaymentStatus != nil && !req.PaymentStatus.Valid() {
		return nil, invalidPaymentStatus()
	}
	if req.TotalAmount != nil && *req.TotalAmount < 0 {
		return nil, utils.NewInvalidInput("totalAmount", "Total amount cannot be negative")
	}

	unlock := s.Locks.Lock(existing.UnitID)
	defer unlock()

	// re-read under the lock; the unit cannot change so the lock is still the right one
	existing, ok = s.Repo.GetByID(id)
	if !ok {
		return nil, utils.NewNotFound("Booking not found")
	}

	next := existing.Range()
	if req.StartDate != nil {
		next.Start = *req.StartDate
	}
	if req.EndDate != nil {
		next.End = *req.EndDate
	}
	if !next.Valid() {
		return nil, utils.NewInvalidInput("endDate", "End date must be after start date")
	}
	if err := s.checkStayLength(next); err != nil {
		return nil, err
	}
	datesChanged := next != existing.Range()

	status := existing.Status
	if req.Status != nil {
		status = *req.Status
	}
	if status == models.BookingCancelled && existing.Status == models.BookingCheckedIn {
		return nil, utils.NewInvalidState(checkedInMessage)
	}

	wasActive := existing.Status.Active()
	isActive := status.Active()
	if isActive && (datesChanged || !wasActive) {
		if err := s.checkAvailability("update", existing.UnitID, next, id); err != nil {
			return nil, err
		}
	}

	updated, err := s.Repo.Update(id, func(b *models.Booking) {
		b.Status = status
		b.StartDate = next.Start
		b.EndDate = next.End
		if req.PaymentStatus != nil {
			b.PaymentStatus = *req.PaymentStatus
		}
		if req.Notes != nil {
			b.Notes = *req.Notes
		}
		if req.TotalAmount != nil {
			b.TotalAmount = *req.TotalAmount
		}
	})
	if err != nil {
		s.Logger.Error("Failed to update booking", zap.String("bookingId", id), zap.Error(err))
		return nil, utils.NewInternal("Failed to update booking", err)
	}

	if wasActive && (!isActive || datesChanged) {
		s.release(existing.UnitID, existing.Range())
	}
	if isActive && (!wasActive || datesChanged) {
		s.occupy(updated)
	}
	if wasActive && !isActive {
		s.Metrics.BookingCancelled()
	}

	s.Logger.Info("Booking updated",
		zap.String("bookingId", id),
		zap.String("from", string(existing.Status)),
		zap.String("to", string(updated.Status)),
		zap.Bool("datesChanged", datesChanged))

	v := s.view(updated)
	return &v, nil
}

const checkedInMessage = "Cannot cancel a checked-in booking. Please check out first."

// CancelBooking soft-cancels: the record stays, its nights return to available and a
// timestamped note is appended. Cancelling twice is a no-op.
func (s *DefaultBookingService) CancelBooking(id string) (*models.CancelResult, error) {
	existing, ok := s.Repo.GetByID(id)
	if !ok {
		return nil, utils.NewNotFound("Booking not found")
	}

	unlock := s.Locks.Lock(existing.UnitID)
	defer unlock()

	existing, ok = s.Repo.GetByID(id)
	if !ok {
		return nil, utils.NewNotFound("Booking not found")
	}
	switch existing.Status {
	case models.BookingCheckedIn:
		return nil, utils.NewInvalidState(checkedInMessage)
	case models.BookingCancelled:
		return &models.CancelResult{Message: "Booking already cancelled", Booking: existing}, nil
	}

	note := fmt.Sprintf("[Cancelled on %s]", s.Now().UTC().Format(time.RFC3339))
	updated, err := s.Repo.Update(id, func(b *models.Booking) {
		b.Status = models.BookingCancelled
		if b.Notes != "" {
			b.Notes += "\n" + note
		} else {
			b.Notes = note
		}
	})
	if err != nil {
		s.Logger.Error("Failed to cancel booking", zap.String("bookingId", id), zap.Error(err))
		return nil, utils.NewInternal("Failed to cancel booking", err)
	}
	s.release(existing.UnitID, existing.Range())

	s.Metrics.BookingCancelled()
	s.Logger.Info("Booking cancelled", zap.String("bookingId", id), zap.String("unitId", existing.UnitID))
	return &models.CancelResult{Message: "Booking cancelled successfully", Booking: updated}, nil
}

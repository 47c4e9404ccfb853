package guest

import (
	"regexp"
	"sort"
	"strings"

	"pillowstat/models"
	"pillowstat/utils"

	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *DefaultGuestService) CreateGuest(req models.CreateGuestRequest) (*models.Guest, error) {
	g := models.Guest{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        normalizeEmail(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		Employer:     strings.TrimSpace(req.Employer),
		Hospital:     strings.TrimSpace(req.Hospital),
		ProfileImage: strings.TrimSpace(req.ProfileImage),
		Bookings:     []string{},
	}
	for _, f := range []struct{ name, value string }{
		{"firstName", g.FirstName}, {"lastName", g.LastName}, {"email", g.Email}, {"phone", g.Phone},
	} {
		if f.value == "" {
			return nil, utils.NewInvalidInput(f.name, "Missing required field: "+f.name)
		}
	}
	if !emailPattern.MatchString(g.Email) {
		return nil, utils.NewInvalidInput("email", "Invalid email format")
	}

	s.emailMu.Lock()
	defer s.emailMu.Unlock()
	if s.emailTaken(g.Email, "") {
		return nil, utils.NewConflict("A guest with this email already exists", nil, nil)
	}

	g.ID = utils.NewID(utils.GuestIDPrefix)
	g.CreatedAt = s.Now()
	created, err := s.Repo.Create(g)
	if err != nil {
		s.Logger.Error("Failed to store guest", zap.Error(err))
		return nil, utils.NewInternal("Failed to create guest", err)
	}
	s.Logger.Info("Guest created", zap.String("guestId", created.ID))
	return &created, nil
}

func (s *DefaultGuestService) GetGuest(id string) (*models.Guest, error) {
	g, ok := s.Repo.GetByID(id)
	if !ok {
		return nil, utils.NewNotFound("Guest not found")
	}
	return &g, nil
}

func (s *DefaultGuestService) GetGuestView(id string) (*models.GuestView, error) {
	g, err := s.GetGuest(id)
	if err != nil {
		return nil, err
	}
	return &models.GuestView{Guest: *g, Stats: s.stats(g.ID)}, nil
}

// UpdateGuest applies the profile allow-list; id, createdAt and bookings are not editable.
func (s *DefaultGuestService) UpdateGuest(id string, req models.UpdateGuestRequest) (*models.Guest, error) {
	if _, ok := s.Repo.GetByID(id); !ok {
		return nil, utils.NewNotFound("Guest not found")
	}

	for _, f := range []struct {
		name  string
		value *string
	}{{"firstName", req.FirstName}, {"lastName", req.LastName}, {"phone", req.Phone}} {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			return nil, utils.NewInvalidInput(f.name, f.name+" cannot be empty")
		}
	}

	var email string
	if req.Email != nil {
		email = normalizeEmail(*req.Email)
		if !emailPattern.MatchString(email) {
			return nil, utils.NewInvalidInput("email", "Invalid email format")
		}
		s.emailMu.Lock()
		defer s.emailMu.Unlock()
		if s.emailTaken(email, id) {
			return nil, utils.NewConflict("A guest with this email already exists", nil, nil)
		}
	}

	updated, err := s.Repo.Update(id, func(g *models.Guest) {
		setTrimmed(&g.FirstName, req.FirstName)
		setTrimmed(&g.LastName, req.LastName)
		setTrimmed(&g.Phone, req.Phone)
		setTrimmed(&g.Employer, req.Employer)
		setTrimmed(&g.Hospital, req.Hospital)
		setTrimmed(&g.ProfileImage, req.ProfileImage)
		if req.Email != nil {
			g.Email = email
		}
	})
	if err != nil {
		return nil, utils.NewInternal("Failed to update guest", err)
	}
	s.Logger.Info("Guest updated", zap.String("guestId", id))
	return &updated, nil
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// AddBooking appends a booking id to the guest's history once.
func (s *DefaultGuestService) AddBooking(guestID, bookingID string) error {
	_, err := s.Repo.Update(guestID, func(g *models.Guest) {
		for _, id := range g.Bookings {
			if id == bookingID {
				return
			}
		}
		g.Bookings = append(g.Bookings, bookingID)
	})
	if err != nil {
		return utils.NewNotFound("Guest not found")
	}
	return nil
}

func (s *DefaultGuestService) Summary(id string) (*models.GuestSummary, bool) {
	g, ok := s.Repo.GetByID(id)
	if !ok {
		return nil, false
	}
	return &models.GuestSummary{
		ID:       g.ID,
		Name:     g.FullName(),
		Email:    g.Email,
		Phone:    g.Phone,
		Employer: g.Employer,
		Hospital: g.Hospital,
	}, true
}

func (s *DefaultGuestService) emailTaken(email, exceptID string) bool {
	return s.Repo.Count(func(g models.Guest) bool {
		return g.ID != exceptID && strings.EqualFold(g.Email, email)
	}) > 0
}

// ListGuests searches name, email and phone, newest first.
func (s *DefaultGuestService) ListGuests(f models.GuestFilter) models.Page[models.GuestView] {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	hospital := strings.ToLower(strings.TrimSpace(f.Hospital))
	employer := strings.ToLower(strings.TrimSpace(f.Employer))

	matches := s.Repo.Filter(func(g models.Guest) bool {
		if search != "" &&
			!strings.Contains(strings.ToLower(g.FirstName), search) &&
			!strings.Contains(strings.ToLower(g.LastName), search) &&
			!strings.Contains(strings.ToLower(g.Email), search) &&
			!strings.Contains(g.Phone, search) {
			return false
		}
		if hospital != "" && !strings.Contains(strings.ToLower(g.Hospital), hospital) {
			return false
		}
		if employer != "" && !strings.Contains(strings.ToLower(g.Employer), employer) {
			return false
		}
		return true
	})
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	views := make([]models.GuestView, 0, len(matches))
	for _, g := range matches {
		views = append(views, models.GuestView{Guest: g, Stats: s.stats(g.ID)})
	}
	return models.Paginate(views, f.Page, f.Limit, utils.DefaultPageLimit)
}

// stats counts checked-in and checked-out bookings as completed stays; spend is their total.
// The last stay is the end date of the most recently created booking.
func (s *DefaultGuestService) stats(guestID string) models.GuestStats {
	var st models.GuestStats
	if s.Bookings == nil {
		return st
	}
	var latest *models.Booking
	for _, b := range s.Bookings.Filter(func(b models.Booking) bool { return b.GuestID == guestID }) {
		st.TotalBookings++
		if b.Status == models.BookingCheckedIn || b.Status == models.BookingCheckedOut {
			st.CompletedBookings++
			st.TotalSpent += b.TotalAmount
		}
		if latest == nil || b.CreatedAt.After(latest.CreatedAt) {
			b := b
			latest = &b
		}
	}
	if latest != nil {
		end := latest.EndDate
		st.LastStay = &end
	}
	return st
}

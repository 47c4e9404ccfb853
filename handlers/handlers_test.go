package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	availabilityRepo "pillowstat/database/repository/availability"
	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/models"
	"pillowstat/services/availability"
	"pillowstat/services/booking"
	"pillowstat/services/guest"
	"pillowstat/services/payment"
	"pillowstat/services/units"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router  *gin.Engine
	guestID string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	bookings := recordsRepo.NewStore[models.Booking]()
	ledger := availabilityRepo.NewMemoryLedger()
	catalog := units.NewStaticCatalog(units.DefaultUnits())
	locks := booking.NewUnitLocks()

	guests := guest.NewGuestService(recordsRepo.NewStore[models.Guest](), bookings, nil)
	bsvc := booking.NewBookingService(bookings, guests, ledger, catalog, locks, nil, nil)
	asvc := availability.NewAvailabilityService(ledger, bookings, catalog, locks, availability.Options{}, nil, nil)
	psvc := payment.NewPaymentService(recordsRepo.NewStore[models.Transaction](), bsvc, payment.NewMockGateway(), "usd", nil, nil)

	g, err := guests.CreateGuest(models.CreateGuestRequest{
		FirstName: "Sarah", LastName: "Johnson", Email: "sarah.j@email.com", Phone: "(206) 555-0101",
	})
	require.NoError(t, err)

	bh := NewBookingHandler(bsvc)
	ah := NewAvailabilityHandler(asvc)
	ph := NewPaymentHandler(psvc)

	r := gin.New()
	r.POST("/api/bookings", bh.CreateBookingHandler)
	r.GET("/api/bookings/:id", bh.GetBookingHandler)
	r.PATCH("/api/bookings/:id", bh.UpdateBookingHandler)
	r.DELETE("/api/bookings/:id", bh.CancelBookingHandler)
	r.GET("/api/availability", ah.GetAvailabilityHandler)
	r.POST("/api/availability", ah.SetAvailabilityHandler)
	r.POST("/api/availability/reconcile", ah.ReconcileHandler)
	r.POST("/api/payments/webhook", ph.WebhookHandler)
	r.GET("/api/payments/bookings/:id", ph.GetSummaryHandler)

	return &testServer{router: r, guestID: g.ID}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func (s *testServer) createBooking(t *testing.T, start, end string) string {
	t.Helper()
	w, out := s.do(t, http.MethodPost, "/api/bookings", gin.H{
		"guestId": s.guestID, "unitId": "studio-suite", "startDate": start, "endDate": end, "totalAmount": 3600,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return out["id"].(string)
}

func TestCreateBooking_Created(t *testing.T) {
	s := newTestServer(t)
	w, out := s.do(t, http.MethodPost, "/api/bookings", gin.H{
		"guestId": s.guestID, "unitId": "studio-suite", "startDate": "2025-06-01", "endDate": "2025-07-01", "totalAmount": 3600,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "pending", out["status"])
	assert.Equal(t, "2025-06-01", out["startDate"])
	assert.Equal(t, "Sarah Johnson", out["guestName"])
}

func TestCreateBooking_MissingField(t *testing.T) {
	s := newTestServer(t)
	w, out := s.do(t, http.MethodPost, "/api/bookings", gin.H{
		"unitId": "studio-suite", "startDate": "2025-06-01", "endDate": "2025-07-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required field: guestId", out["error"])
	assert.Equal(t, "guestId", out["field"])
}

func TestCreateBooking_MalformedDate(t *testing.T) {
	s := newTestServer(t)
	w, out := s.do(t, http.MethodPost, "/api/bookings", gin.H{
		"guestId": s.guestID, "unitId": "studio-suite", "startDate": "06/01/2025", "endDate": "2025-07-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid date for startDate: use YYYY-MM-DD", out["error"])
}

func TestCreateBooking_InvalidJSON(t *testing.T) {
	s := newTestServer(t)
	w, out := s.do(t, http.MethodPost, "/api/bookings", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", out["error"])
}

func TestCreateBooking_ConflictListsBlockingBooking(t *testing.T) {
	s := newTestServer(t)
	first := s.createBooking(t, "2025-06-01", "2025-07-01")

	w, out := s.do(t, http.MethodPost, "/api/bookings", gin.H{
		"guestId": s.guestID, "unitId": "studio-suite", "startDate": "2025-06-15", "endDate": "2025-07-15", "totalAmount": 1800,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	conflicts, ok := out["conflictingBookings"].([]any)
	require.True(t, ok, w.Body.String())
	require.Len(t, conflicts, 1)
	assert.Equal(t, first, conflicts[0].(map[string]any)["id"])
}

func TestCreateBooking_CheckoutDayIsFree(t *testing.T) {
	s := newTestServer(t)
	s.createBooking(t, "2025-06-01", "2025-07-01")
	s.createBooking(t, "2025-07-01", "2025-08-01")
}

func TestGetBooking_NotFound(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(t, http.MethodGet, "/api/bookings/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateBooking_RejectsUnknownStatus(t *testing.T) {
	s := newTestServer(t)
	id := s.createBooking(t, "2025-06-01", "2025-07-01")
	w, out := s.do(t, http.MethodPatch, "/api/bookings/"+id, gin.H{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, out["error"], "Invalid status")
}

func TestUpdateBooking_IgnoresImmutableFields(t *testing.T) {
	s := newTestServer(t)
	id := s.createBooking(t, "2025-06-01", "2025-07-01")

	w, out := s.do(t, http.MethodPatch, "/api/bookings/"+id, gin.H{
		"guestId": "guest-other", "unitId": "garden-suite", "id": "booking-other", "notes": "Late arrival",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, id, out["id"])
	assert.Equal(t, s.guestID, out["guestId"])
	assert.Equal(t, "studio-suite", out["unitId"])
	assert.Equal(t, "Late arrival", out["notes"])

	w, out = s.do(t, http.MethodGet, "/api/bookings/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, s.guestID, out["guestId"])
	assert.Equal(t, "studio-suite", out["unitId"])
}

func TestCreateBooking_RejectsOverlongStay(t *testing.T) {
	s := newTestServer(t)
	w, out := s.do(t, http.MethodPost, "/api/bookings", gin.H{
		"guestId": s.guestID, "unitId": "studio-suite", "startDate": "0001-01-01", "endDate": "9999-12-31", "totalAmount": 100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Stay cannot exceed 365 nights", out["error"])
	assert.Equal(t, "endDate", out["field"])

	id := s.createBooking(t, "2025-06-01", "2025-07-01")
	w, _ = s.do(t, http.MethodPatch, "/api/bookings/"+id, gin.H{"endDate": "2027-01-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailability_RejectsOverlongBlock(t *testing.T) {
	s := newTestServer(t)
	w, out := s.do(t, http.MethodPost, "/api/availability", gin.H{
		"unitId": "studio-suite", "startDate": "0001-01-01", "endDate": "9999-12-31", "status": "blocked",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, out["error"], "Date range cannot exceed")
}

func TestCancelBooking_ReleasesNights(t *testing.T) {
	s := newTestServer(t)
	id := s.createBooking(t, "2025-06-01", "2025-06-10")

	w, out := s.do(t, http.MethodDelete, "/api/bookings/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Booking cancelled successfully", out["message"])

	w, out = s.do(t, http.MethodGet, "/api/availability?unitId=studio-suite&startDate=2025-06-01&endDate=2025-06-09", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := out["summary"].(map[string]any)
	assert.EqualValues(t, 0, summary["booked"])

	s.createBooking(t, "2025-06-01", "2025-06-10")
}

func TestAvailability_QueryAllAndSet(t *testing.T) {
	s := newTestServer(t)

	w, out := s.do(t, http.MethodPost, "/api/availability", gin.H{
		"unitId": "garden-suite", "startDate": "2025-06-01", "endDate": "2025-06-03", "status": "maintenance", "note": "Paint",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, out["updatedDates"], 3)

	w, out = s.do(t, http.MethodGet, "/api/availability?startDate=2025-06-01&endDate=2025-06-05", nil)
	require.Equal(t, http.StatusOK, w.Code)
	byUnit := out["availability"].(map[string]any)
	assert.Len(t, byUnit, 3)
	assert.Len(t, byUnit["garden-suite"], 5)
}

func TestAvailability_SetRejectsUnknownUnit(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(t, http.MethodPost, "/api/availability", gin.H{
		"unitId": "penthouse", "startDate": "2025-06-01", "endDate": "2025-06-03", "status": "blocked",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAvailability_Reconcile(t *testing.T) {
	s := newTestServer(t)
	s.createBooking(t, "2025-06-01", "2025-06-10")
	w, out := s.do(t, http.MethodPost, "/api/availability/reconcile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, out["unitsChecked"])
	assert.EqualValues(t, 0, out["marked"])
}

func TestWebhook_RecordsPayment(t *testing.T) {
	s := newTestServer(t)
	id := s.createBooking(t, "2025-06-01", "2025-07-01")

	payload := `{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","amount":360000,"metadata":{"bookingId":"` + id + `"}}}}`
	w, out := s.do(t, http.MethodPost, "/api/payments/webhook", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, out["handled"])

	w, out = s.do(t, http.MethodGet, "/api/payments/bookings/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["isFullyPaid"])
}

func TestWebhook_InvalidPayload(t *testing.T) {
	s := newTestServer(t)
	w, out := s.do(t, http.MethodPost, "/api/payments/webhook", "garbage")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid webhook payload", out["error"])
}

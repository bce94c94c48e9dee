package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"callpilot/models"
	"callpilot/services/ledger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingService struct {
	ledger *ledger.BookingLedger
}

func (s *stubBookingService) IngestConfirmation(ctx context.Context, payload models.BookingWebhookPayload) models.BookingRecord {
	rec := models.NewBookingRecord(payload, time.Now())
	rec.Forwarded = true
	s.ledger.Record(rec)
	return rec
}

func newBookingRouter(t *testing.T) (*gin.Engine, *ledger.BookingLedger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := ledger.NewBookingLedger()
	h := NewBookingHandler(&stubBookingService{ledger: l}, l, zap.NewNop())

	r := gin.New()
	r.POST("/webhook/booking", h.BookingWebhook)
	r.GET("/bookings/recent", h.RecentBookings)
	return r, l
}

func TestBookingWebhookRoundTrip(t *testing.T) {
	router, _ := newBookingRouter(t)

	body := `{"date": "2026-09-01", "time": "10:30", "provider_name": "Alpha Dental", "title": "Cleaning"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status  string               `json:"status"`
		Booking models.BookingRecord `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "Alpha Dental", resp.Booking.ProviderName)

	// Read the record back through the ledger endpoint.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/recent", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Bookings []models.BookingRecord `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Bookings, 1)
	assert.Equal(t, "2026-09-01", listResp.Bookings[0].Date)
	assert.Equal(t, "10:30", listResp.Bookings[0].Time)
	assert.Equal(t, "Alpha Dental", listResp.Bookings[0].ProviderName)
}

func TestBookingWebhookRejectsInvalidPayload(t *testing.T) {
	router, l := newBookingRouter(t)

	// Missing required provider_name.
	body := `{"date": "2026-09-01", "time": "10:30"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, l.Recent())
}

func TestRecentBookingsEmpty(t *testing.T) {
	router, _ := newBookingRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/recent", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Bookings []models.BookingRecord `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Bookings)
}

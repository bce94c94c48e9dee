// Package calendar wraps the external calendar webhooks: a free-slot lookup
// with a deterministic fallback, and a best-effort event write.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"callpilot/models"

	"go.uber.org/zap"
)

// availabilityTimeout bounds the free-slot lookup so a slow calendar can
// never stall prompt construction.
const availabilityTimeout = 10 * time.Second

// Service defines the calendar operations the orchestrator and the booking
// webhook pipeline depend on.
type Service interface {
	// FreeSlots returns the caller's free time windows. It never fails and
	// never returns an empty list: on any error or empty result it falls back
	// to the resolved preferred time, which downstream prompt construction
	// relies on.
	FreeSlots(ctx context.Context, prefs models.PreferenceSet) []string
	// CreateEvent writes a confirmed booking to the external calendar.
	CreateEvent(ctx context.Context, rec models.BookingRecord) error
}

// HTTPService talks to the configured calendar webhook endpoints.
type HTTPService struct {
	AvailabilityURL string
	BookingURL      string
	Client          *http.Client
	Logger          *zap.Logger
}

type availabilityResponse struct {
	FreeSlots      []string `json:"free_slots"`
	Slots          []string `json:"slots"`
	AvailableSlots []string `json:"available_slots"`
}

func (s *HTTPService) FreeSlots(ctx context.Context, prefs models.PreferenceSet) []string {
	fallback := []string{prefs.PreferredTime}
	if s.AvailabilityURL == "" {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, availabilityTimeout)
	defer cancel()

	body, _ := json.Marshal(map[string]string{"preferred_time": prefs.PreferredTime})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.AvailabilityURL, bytes.NewReader(body))
	if err != nil {
		return fallback
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Logger.Warn("Calendar availability lookup failed, using fallback", zap.Error(err))
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		s.Logger.Warn("Calendar availability lookup returned error status, using fallback",
			zap.Int("status", resp.StatusCode))
		return fallback
	}

	var parsed availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fallback
	}
	for _, slots := range [][]string{parsed.FreeSlots, parsed.Slots, parsed.AvailableSlots} {
		if len(slots) > 0 {
			return slots
		}
	}
	return fallback
}

func (s *HTTPService) CreateEvent(ctx context.Context, rec models.BookingRecord) error {
	if s.BookingURL == "" {
		return fmt.Errorf("calendar booking endpoint not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, availabilityTimeout)
	defer cancel()

	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal booking record: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BookingURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("calendar event creation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("calendar event creation returned status %d", resp.StatusCode)
	}
	return nil
}

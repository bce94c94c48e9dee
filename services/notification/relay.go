// Package notification forwards booking confirmations to a downstream
// relay webhook.
package notification

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

const relayTimeout = 10 * time.Second

// RelayService forwards a booking confirmation downstream. Forwarding is
// best-effort; callers record the outcome as a flag and move on.
type RelayService interface {
	ForwardBooking(ctx context.Context, rec models.BookingRecord) error
}

// WebhookRelayService posts booking records to the configured relay URL.
type WebhookRelayService struct {
	RelayURL string
	Client   *http.Client
	Logger   *zap.Logger
}

func (s *WebhookRelayService) ForwardBooking(ctx context.Context, rec models.BookingRecord) error {
	if s.RelayURL == "" {
		return fmt.Errorf("booking relay not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, relayTimeout)
	defer cancel()

	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal booking record: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.RelayURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("booking relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("booking relay returned status %d", resp.StatusCode)
	}
	s.Logger.Debug("Booking forwarded to relay", zap.String("bookingId", rec.ID))
	return nil
}

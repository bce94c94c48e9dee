// Package booking ingests inbound booking confirmations: it records them in
// the ledger and fires the downstream side effects.
package booking

import (
	"context"
	"sync"
	"time"

	"callpilot/models"
	"callpilot/services/calendar"
	"callpilot/services/ledger"
	"callpilot/services/notification"

	"go.uber.org/zap"
)

// Service handles booking-confirmation webhooks.
type Service interface {
	// IngestConfirmation builds a ledger record from the payload, runs the
	// relay-forward and calendar-write side effects, and returns the stored
	// record. It never fails: side-effect failures only clear their flags.
	IngestConfirmation(ctx context.Context, payload models.BookingWebhookPayload) models.BookingRecord
}

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	Ledger   *ledger.BookingLedger
	Relay    notification.RelayService
	Calendar calendar.Service
	Logger   *zap.Logger
}

func (s *DefaultBookingService) IngestConfirmation(ctx context.Context, payload models.BookingWebhookPayload) models.BookingRecord {
	rec := models.NewBookingRecord(payload, time.Now())
	s.Logger.Info("Booking confirmation received",
		zap.String("provider", rec.ProviderName),
		zap.String("date", rec.Date),
		zap.String("time", rec.Time))

	// The two side effects are independent and individually fallible; neither
	// may abort the ingestion.
	var wg sync.WaitGroup
	var forwardErr, calendarErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		forwardErr = s.Relay.ForwardBooking(ctx, rec)
	}()
	go func() {
		defer wg.Done()
		calendarErr = s.Calendar.CreateEvent(ctx, rec)
	}()
	wg.Wait()

	rec.Forwarded = forwardErr == nil
	rec.CalendarCreated = calendarErr == nil
	if forwardErr != nil {
		s.Logger.Warn("Booking relay forward failed", zap.Error(forwardErr))
	}
	if calendarErr != nil {
		s.Logger.Warn("Calendar event creation failed", zap.Error(calendarErr))
	}

	s.Ledger.Record(rec)
	return rec
}

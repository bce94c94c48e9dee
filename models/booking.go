package models

import (
	"fmt"
	"time"
)

// BookingWebhookPayload is the inbound booking-confirmation notification
// posted by the voice-agent tooling once a call results in an appointment.
type BookingWebhookPayload struct {
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	ProviderName string `json:"provider_name" binding:"required"`
	Title        string `json:"title,omitempty"`
	UserPhone    string `json:"user_phone,omitempty"`
}

// BookingRecord is one confirmed appointment held in the in-memory ledger.
type BookingRecord struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	ProviderName    string `json:"provider_name"`
	Title           string `json:"title,omitempty"`
	ReceivedAt      int64  `json:"received_at"` // epoch milliseconds
	Forwarded       bool   `json:"forwarded"`
	CalendarCreated bool   `json:"calendar_created"`
}

// NewBookingRecord builds a ledger record from a webhook payload. The ID is a
// de-duplication-friendly composite, not a globally unique key.
func NewBookingRecord(p BookingWebhookPayload, receivedAt time.Time) BookingRecord {
	ms := receivedAt.UnixMilli()
	return BookingRecord{
		ID:           fmt.Sprintf("%s-%s-%s-%d", p.ProviderName, p.Date, p.Time, ms),
		Date:         p.Date,
		Time:         p.Time,
		ProviderName: p.ProviderName,
		Title:        p.Title,
		ReceivedAt:   ms,
	}
}

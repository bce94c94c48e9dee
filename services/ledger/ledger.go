// Package ledger keeps the bounded in-memory history of booking
// confirmations. State lives for the process lifetime only.
package ledger

import (
	"sync"

	"callpilot/models"
)

// MaxRecords caps how many confirmations the ledger retains.
const MaxRecords = 20

// BookingLedger is a newest-first bounded record list shared across all
// requests. Insertion and eviction happen under one lock; reads return a
// snapshot copy so callers never hold the lock.
type BookingLedger struct {
	mu      sync.Mutex
	records []models.BookingRecord
}

func NewBookingLedger() *BookingLedger {
	return &BookingLedger{
		records: make([]models.BookingRecord, 0, MaxRecords),
	}
}

// Record inserts a booking at the front, evicting the oldest entry when the
// ledger is full.
func (l *BookingLedger) Record(rec models.BookingRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append([]models.BookingRecord{rec}, l.records...)
	if len(l.records) > MaxRecords {
		l.records = l.records[:MaxRecords]
	}
}

// Recent returns a snapshot of the ledger, newest first.
func (l *BookingLedger) Recent() []models.BookingRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.BookingRecord, len(l.records))
	copy(out, l.records)
	return out
}

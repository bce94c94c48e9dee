package handlers

import (
	"net/http"

	"callpilot/models"
	"callpilot/services/booking"
	"callpilot/services/ledger"
	"callpilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking-confirmation webhook and the ledger view.
type BookingHandler struct {
	Service booking.Service
	Ledger  *ledger.BookingLedger
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.Service, l *ledger.BookingLedger, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Ledger: l, Logger: logger}
}

// BookingWebhook ingests an inbound booking confirmation. Side-effect
// failures never fail the response; they show up as cleared flags on the
// returned record.
func (h *BookingHandler) BookingWebhook(c *gin.Context) {
	var payload models.BookingWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rec := h.Service.IngestConfirmation(c.Request.Context(), payload)
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"booking": rec,
	})
}

// RecentBookings returns the ledger contents, newest first.
func (h *BookingHandler) RecentBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"bookings": h.Ledger.Recent(),
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glowbook/models"
	"glowbook/services/booking"
	"glowbook/utils"
)

// BookingHandler wires the booking engine to the public HTTP surface.
type BookingHandler struct {
	Engine booking.Engine
	Logger *zap.Logger
}

func NewBookingHandler(engine booking.Engine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Logger: logger}
}

// ComputeSlotsHandler lists bookable start times for a provider (or "any")
// on a date, for the requested cart of services.
func (h *BookingHandler) ComputeSlotsHandler(c *gin.Context) {
	var req struct {
		ProviderID string   `json:"providerId" binding:"required"`
		Date       string   `json:"date" binding:"required"`
		ServiceIDs []string `json:"serviceIds" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot request", err.Error())
		return
	}

	result, err := h.Engine.ComputeSlots(c.Request.Context(), req.ProviderID, req.Date, req.ServiceIDs)
	if err != nil {
		h.Logger.Error("slot computation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// CommitBookingHandler commits a chosen slot. Tagged rejections map to 409
// (conflict) and 422 (capability mismatch / out of window) so the UI can
// re-search without parsing messages.
func (h *BookingHandler) CommitBookingHandler(c *gin.Context) {
	var req models.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid commit request", err.Error())
		return
	}

	outcome, err := h.Engine.CommitBooking(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("booking commit failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to commit booking", err.Error())
		return
	}
	c.JSON(statusForOutcome(outcome), outcome)
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")
	if bookingID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing booking ID", "")
		return
	}
	if err := h.Engine.CancelBooking(c.Request.Context(), bookingID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")
	var req struct {
		Date  string `json:"date" binding:"required"`
		Start int    `json:"start"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reschedule request", err.Error())
		return
	}

	outcome, err := h.Engine.RescheduleBooking(c.Request.Context(), bookingID, req.Date, req.Start)
	if err != nil {
		h.Logger.Error("reschedule failed", zap.String("bookingID", bookingID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reschedule booking", err.Error())
		return
	}
	c.JSON(statusForOutcome(outcome), outcome)
}

func statusForOutcome(outcome *models.CommitOutcome) int {
	switch outcome.Status {
	case models.CommitCommitted:
		return http.StatusOK
	case models.CommitConflict:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

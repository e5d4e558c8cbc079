package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	bookingRepo "glowbook/database/repository/booking"
	"glowbook/models"
	"glowbook/services/booking"
	"glowbook/utils"
)

// CalendarHandler serves the admin calendar: working windows for greying
// out non-working days, and a provider's day sheet.
type CalendarHandler struct {
	Engine   booking.Engine
	Bookings bookingRepo.Repository
}

func NewCalendarHandler(engine booking.Engine, bookings bookingRepo.Repository) *CalendarHandler {
	return &CalendarHandler{Engine: engine, Bookings: bookings}
}

// ResolveDayHandler returns the provider's effective working window for a
// date. working=false with no window means the provider has no schedule or
// is off that day.
func (h *CalendarHandler) ResolveDayHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	dateStr := c.Param("date")

	date, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}

	dayCfg, err := h.Engine.ResolveDay(c.Request.Context(), providerID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to resolve day", err.Error())
		return
	}
	if dayCfg == nil || !dayCfg.Working() {
		c.JSON(http.StatusOK, gin.H{"working": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"working": true,
		"from":    utils.FormatClock(dayCfg.From),
		"to":      utils.FormatClock(dayCfg.To),
	})
}

// DaySheetHandler lists a provider's bookings for one date, sorted by start.
func (h *CalendarHandler) DaySheetHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	dateStr := c.Param("date")

	if _, err := time.Parse(models.DateLayout, dateStr); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}

	bookings, err := h.Bookings.ListForDay(c.Request.Context(), providerID, dateStr)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load day sheet", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

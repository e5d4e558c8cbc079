package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glowbook/models"
	"glowbook/services/staff"
	"glowbook/utils"
)

// StaffHandler exposes staff management and shift scheduling.
type StaffHandler struct {
	Service staff.Service
}

func NewStaffHandler(svc staff.Service) *StaffHandler {
	return &StaffHandler{Service: svc}
}

func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	members, err := h.Service.ListStaff(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": members})
}

func (h *StaffHandler) CreateStaffHandler(c *gin.Context) {
	var member models.Staff
	if err := c.ShouldBindJSON(&member); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid staff payload", err.Error())
		return
	}
	if err := h.Service.CreateStaff(c.Request.Context(), &member); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create staff member", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"staff": member})
}

func (h *StaffHandler) UpdateCapabilitiesHandler(c *gin.Context) {
	staffID := c.Param("staffID")
	var caps models.Capabilities
	if err := c.ShouldBindJSON(&caps); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid capabilities payload", err.Error())
		return
	}
	if err := h.Service.UpdateCapabilities(c.Request.Context(), staffID, caps); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update capabilities", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Capabilities updated"})
}

// SetupShiftsHandler replaces a staff member's shift configuration.
func (h *StaffHandler) SetupShiftsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	staffID := c.Param("staffID")

	var req models.SetupShiftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid shift setup request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	cfg, err := h.Service.SetupShifts(c.Request.Context(), staffID, req)
	if err != nil {
		logger.Error("Failed to set up shifts", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Failed to set up shifts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Shift configuration saved",
		"configuration": cfg,
	})
}

// SetOverrideHandler appends a single-day override onto the current
// configuration.
func (h *StaffHandler) SetOverrideHandler(c *gin.Context) {
	staffID := c.Param("staffID")

	var req models.SetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid override payload", err.Error())
		return
	}
	if err := h.Service.SetOverride(c.Request.Context(), staffID, req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to set override", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Override saved"})
}

func (h *StaffHandler) GetConfigurationHandler(c *gin.Context) {
	staffID := c.Param("staffID")

	cfg, err := h.Service.GetConfiguration(c.Request.Context(), staffID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch configuration", err.Error())
		return
	}
	if cfg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No shift configuration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"configuration": cfg})
}

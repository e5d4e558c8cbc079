package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glowbook/models"
	"glowbook/services/client"
	"glowbook/utils"
)

// ClientHandler exposes client profile CRUD and booking history.
type ClientHandler struct {
	Service client.Service
}

func NewClientHandler(svc client.Service) *ClientHandler {
	return &ClientHandler{Service: svc}
}

func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	clients, err := h.Service.ListClients(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list clients", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	profile, err := h.Service.GetClient(c.Request.Context(), c.Param("clientID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch client", err.Error())
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": profile})
}

func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	var profile models.Client
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid client payload", err.Error())
		return
	}
	if err := h.Service.CreateClient(c.Request.Context(), &profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create client", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": profile})
}

func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	var profile models.Client
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid client payload", err.Error())
		return
	}
	profile.ID = c.Param("clientID")
	if err := h.Service.UpdateClient(c.Request.Context(), &profile); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update client", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": profile})
}

func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	if err := h.Service.DeleteClient(c.Request.Context(), c.Param("clientID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete client", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}

func (h *ClientHandler) BookingHistoryHandler(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	history, err := h.Service.BookingHistory(c.Request.Context(), c.Param("clientID"), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": history})
}

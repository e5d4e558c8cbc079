package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "glowbook/database/repository/catalog"
	"glowbook/utils"
)

// CatalogHandler serves the read-only service catalog.
type CatalogHandler struct {
	Catalog catalogRepo.Repository
}

func NewCatalogHandler(catalog catalogRepo.Repository) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

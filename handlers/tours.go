package handlers

import (
	"net/http"

	"tourvia/models"
	"tourvia/services/catalog"
	"tourvia/utils"

	"github.com/gin-gonic/gin"
)

// TourHandler exposes catalog reads against the live mirror.
type TourHandler struct {
	Catalog catalog.Service
}

// NewTourHandler creates a TourHandler.
func NewTourHandler(svc catalog.Service) *TourHandler {
	return &TourHandler{Catalog: svc}
}

// ListToursHandler returns the full catalog snapshot.
func (h *TourHandler) ListToursHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tours": h.Catalog.Snapshot()})
}

// GetTourHandler returns a single tour from the mirror.
func (h *TourHandler) GetTourHandler(c *gin.Context) {
	id := c.Param("id")
	tour, ok := h.Catalog.GetByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "tour not found", id)
		return
	}
	c.JSON(http.StatusOK, tour)
}

// FilterToursHandler applies a filter predicate to the snapshot. A JSON
// null body resets to the unfiltered set.
func (h *TourHandler) FilterToursHandler(c *gin.Context) {
	var criteria *models.FilterCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filter criteria", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": h.Catalog.Filter(criteria)})
}

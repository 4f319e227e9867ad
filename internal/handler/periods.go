package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StartPeriod opens a new accounting period, closing the previous one.
func (h *Handler) StartPeriod(c *gin.Context) {
	var req StartPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period, err := h.roster.StartPeriod(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, period)
}

// ActivePeriod returns the period currently accepting records.
// 404 here is what the UI renders as "No active month".
func (h *Handler) ActivePeriod(c *gin.Context) {
	period, err := h.roster.ActivePeriod(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, period)
}

// ClosePeriod ends a period without opening a new one.
func (h *Handler) ClosePeriod(c *gin.Context) {
	if err := h.roster.ClosePeriod(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

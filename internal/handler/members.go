package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddMember adds a member to the roster.
func (h *Handler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.roster.AddMember(c.Request.Context(), req.DisplayName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListMembers returns the active roster.
func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.roster.Roster(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// RemoveMember soft-deletes a member; their records keep counting
// toward period totals.
func (h *Handler) RemoveMember(c *gin.Context) {
	if err := h.roster.RemoveMember(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

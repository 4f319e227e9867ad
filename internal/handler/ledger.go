package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PeriodSummary returns the collective month summary for a period.
func (h *Handler) PeriodSummary(c *gin.Context) {
	summary, err := h.ledger.PeriodSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// MemberBalances returns the per-member balance sheet for a period,
// alongside the summary it was computed against.
func (h *Handler) MemberBalances(c *gin.Context) {
	summary, balances, err := h.ledger.MemberBalances(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":  summary,
		"balances": balances,
	})
}

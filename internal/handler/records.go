package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/messmate/backend/internal/models"
)

// LogMeals records a member's meal units for one day of the period.
// Resubmitting the same day replaces the earlier entry.
func (h *Handler) LogMeals(c *gin.Context) {
	var req LogMealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := &models.MealRecord{
		PeriodID:       c.Param("id"),
		MemberID:       req.MemberID,
		Date:           req.Date,
		BreakfastUnits: *req.BreakfastUnits,
		LunchUnits:     *req.LunchUnits,
		DinnerUnits:    *req.DinnerUnits,
	}
	if err := h.ledger.LogMeals(c.Request.Context(), record); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListMeals returns all meal records of the period.
func (h *Handler) ListMeals(c *gin.Context) {
	records, err := h.ledger.ListMeals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": records})
}

// AddDeposit records money paid into the mess fund.
func (h *Handler) AddDeposit(c *gin.Context) {
	var req AddDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deposit := &models.Deposit{
		PeriodID: c.Param("id"),
		MemberID: req.MemberID,
		Amount:   req.Amount,
		Date:     req.Date,
	}
	if err := h.ledger.AddDeposit(c.Request.Context(), deposit); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, deposit)
}

// ListDeposits returns all deposits of the period.
func (h *Handler) ListDeposits(c *gin.Context) {
	deposits, err := h.ledger.ListDeposits(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deposits": deposits})
}

// AddMealCost records grocery spend consumed by the whole mess.
func (h *Handler) AddMealCost(c *gin.Context) {
	var req AddMealCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cost := &models.MealCost{
		PeriodID: c.Param("id"),
		MemberID: req.MemberID,
		Amount:   req.Amount,
		Date:     req.Date,
		Note:     req.Note,
	}
	if err := h.ledger.AddMealCost(c.Request.Context(), cost); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cost)
}

// ListMealCosts returns all grocery spend of the period.
func (h *Handler) ListMealCosts(c *gin.Context) {
	costs, err := h.ledger.ListMealCosts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_costs": costs})
}

// AddOtherCost records a shared or individual expense.
func (h *Handler) AddOtherCost(c *gin.Context) {
	var req AddOtherCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cost := &models.OtherCost{
		PeriodID: c.Param("id"),
		MemberID: req.MemberID,
		Amount:   req.Amount,
		IsShared: req.IsShared,
		Date:     req.Date,
		Note:     req.Note,
	}
	if err := h.ledger.AddOtherCost(c.Request.Context(), cost); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cost)
}

// ListOtherCosts returns all other costs of the period.
func (h *Handler) ListOtherCosts(c *gin.Context) {
	costs, err := h.ledger.ListOtherCosts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"other_costs": costs})
}

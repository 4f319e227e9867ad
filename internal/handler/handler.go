// Package handler exposes the mess ledger over a JSON HTTP API.
//
// Validation happens here, once, at the record boundary: request
// structs carry binding tags and anything that passes them is a
// well-formed record the engine can assume. Display formatting of the
// returned amounts (currency rounding, separators) is the client's
// concern; responses carry raw float64 values.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/messmate/backend/internal/service"
	"github.com/messmate/backend/internal/storage"
)

// Handler holds the services backing the HTTP API.
type Handler struct {
	ledger *service.LedgerService
	roster *service.RosterService
}

// New creates a Handler and registers the custom binding validators.
func New(ledger *service.LedgerService, roster *service.RosterService) *Handler {
	registerValidators()
	return &Handler{ledger: ledger, roster: roster}
}

// Register mounts all API routes on the router group.
func (h *Handler) Register(r *gin.RouterGroup) {
	r.POST("/periods", h.StartPeriod)
	r.GET("/periods/active", h.ActivePeriod)
	r.POST("/periods/:id/close", h.ClosePeriod)

	r.POST("/members", h.AddMember)
	r.GET("/members", h.ListMembers)
	r.DELETE("/members/:id", h.RemoveMember)

	r.POST("/periods/:id/meals", h.LogMeals)
	r.GET("/periods/:id/meals", h.ListMeals)
	r.POST("/periods/:id/deposits", h.AddDeposit)
	r.GET("/periods/:id/deposits", h.ListDeposits)
	r.POST("/periods/:id/meal-costs", h.AddMealCost)
	r.GET("/periods/:id/meal-costs", h.ListMealCosts)
	r.POST("/periods/:id/other-costs", h.AddOtherCost)
	r.GET("/periods/:id/other-costs", h.ListOtherCosts)

	r.GET("/periods/:id/summary", h.PeriodSummary)
	r.GET("/periods/:id/balances", h.MemberBalances)
}

// registerValidators adds the dateonly rule to gin's validator engine.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01-02", fl.Field().String())
			return err == nil
		})
	}
}

// respondError maps service errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

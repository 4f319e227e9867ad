// Package service orchestrates the record store and the ledger engine.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/messmate/backend/internal/ledger"
	"github.com/messmate/backend/internal/metrics"
	"github.com/messmate/backend/internal/models"
	"github.com/messmate/backend/internal/storage"
)

// LedgerService fetches a period's records from the store and runs the
// ledger engine over them. All validation happens before records reach
// the store; the engine itself is total and never fails.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// periodRecords is the bundle of raw records one computation consumes.
type periodRecords struct {
	roster     []models.Member
	meals      []models.MealRecord
	deposits   []models.Deposit
	mealCosts  []models.MealCost
	otherCosts []models.OtherCost
}

// fetchPeriodRecords loads the roster and every record of one period.
// The roster is the active member set; records of removed members are
// still included so totals reflect real consumption.
func (s *LedgerService) fetchPeriodRecords(ctx context.Context, periodID string) (*periodRecords, error) {
	if _, err := s.store.GetPeriod(ctx, periodID); err != nil {
		return nil, err
	}

	roster, err := s.store.ListMembers(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	meals, err := s.store.ListMealRecords(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load meal records: %w", err)
	}
	deposits, err := s.store.ListDeposits(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deposits: %w", err)
	}
	mealCosts, err := s.store.ListMealCosts(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load meal costs: %w", err)
	}
	otherCosts, err := s.store.ListOtherCosts(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load other costs: %w", err)
	}

	return &periodRecords{
		roster:     roster,
		meals:      meals,
		deposits:   deposits,
		mealCosts:  mealCosts,
		otherCosts: otherCosts,
	}, nil
}

// PeriodSummary computes the collective month summary for a period.
func (s *LedgerService) PeriodSummary(ctx context.Context, periodID string) (*models.PeriodSummary, error) {
	start := time.Now()
	records, err := s.fetchPeriodRecords(ctx, periodID)
	if err != nil {
		return nil, err
	}

	summary := ledger.Summarize(periodID, records.meals, records.deposits, records.mealCosts, records.otherCosts)

	metrics.LedgerComputations.WithLabelValues("summary").Inc()
	metrics.LedgerComputeDuration.Observe(time.Since(start).Seconds())
	slog.Info("Period summary computed",
		"period_id", periodID,
		"total_meals", summary.TotalMeals,
		"mess_balance", summary.MessBalance,
	)

	return &summary, nil
}

// MemberBalances computes the per-member balance sheet for a period.
func (s *LedgerService) MemberBalances(ctx context.Context, periodID string) (*models.PeriodSummary, []models.MemberBalance, error) {
	start := time.Now()
	records, err := s.fetchPeriodRecords(ctx, periodID)
	if err != nil {
		return nil, nil, err
	}

	summary, balances := ledger.Compute(periodID,
		records.roster, records.meals, records.deposits, records.mealCosts, records.otherCosts)

	metrics.LedgerComputations.WithLabelValues("balances").Inc()
	metrics.LedgerComputeDuration.Observe(time.Since(start).Seconds())
	slog.Info("Member balances computed",
		"period_id", periodID,
		"roster_size", len(balances),
		"mess_balance", summary.MessBalance,
	)

	return &summary, balances, nil
}

// ListMeals returns all meal records of a period.
func (s *LedgerService) ListMeals(ctx context.Context, periodID string) ([]models.MealRecord, error) {
	if _, err := s.store.GetPeriod(ctx, periodID); err != nil {
		return nil, err
	}
	return s.store.ListMealRecords(ctx, periodID)
}

// ListDeposits returns all deposits of a period.
func (s *LedgerService) ListDeposits(ctx context.Context, periodID string) ([]models.Deposit, error) {
	if _, err := s.store.GetPeriod(ctx, periodID); err != nil {
		return nil, err
	}
	return s.store.ListDeposits(ctx, periodID)
}

// ListMealCosts returns all grocery spend of a period.
func (s *LedgerService) ListMealCosts(ctx context.Context, periodID string) ([]models.MealCost, error) {
	if _, err := s.store.GetPeriod(ctx, periodID); err != nil {
		return nil, err
	}
	return s.store.ListMealCosts(ctx, periodID)
}

// ListOtherCosts returns all other costs of a period.
func (s *LedgerService) ListOtherCosts(ctx context.Context, periodID string) ([]models.OtherCost, error) {
	if _, err := s.store.GetPeriod(ctx, periodID); err != nil {
		return nil, err
	}
	return s.store.ListOtherCosts(ctx, periodID)
}

// LogMeals records one member's meal units for a day, replacing any
// earlier submission for the same day.
func (s *LedgerService) LogMeals(ctx context.Context, record *models.MealRecord) error {
	if err := s.store.UpsertMealRecord(ctx, record); err != nil {
		return err
	}
	metrics.RecordsWritten.WithLabelValues("meal").Inc()
	slog.Info("Meals logged",
		"period_id", record.PeriodID,
		"member_id", record.MemberID,
		"date", record.Date,
		"units", record.TotalUnits(),
	)
	return nil
}

// AddDeposit records a deposit into the mess fund.
func (s *LedgerService) AddDeposit(ctx context.Context, deposit *models.Deposit) error {
	if err := s.store.AddDeposit(ctx, deposit); err != nil {
		return err
	}
	metrics.RecordsWritten.WithLabelValues("deposit").Inc()
	slog.Info("Deposit added",
		"period_id", deposit.PeriodID,
		"member_id", deposit.MemberID,
		"amount", deposit.Amount,
	)
	return nil
}

// AddMealCost records grocery spend for the period.
func (s *LedgerService) AddMealCost(ctx context.Context, cost *models.MealCost) error {
	if err := s.store.AddMealCost(ctx, cost); err != nil {
		return err
	}
	metrics.RecordsWritten.WithLabelValues("meal_cost").Inc()
	slog.Info("Meal cost added",
		"period_id", cost.PeriodID,
		"purchaser_id", cost.MemberID,
		"amount", cost.Amount,
	)
	return nil
}

// AddOtherCost records a shared or individual expense.
func (s *LedgerService) AddOtherCost(ctx context.Context, cost *models.OtherCost) error {
	if err := s.store.AddOtherCost(ctx, cost); err != nil {
		return err
	}
	metrics.RecordsWritten.WithLabelValues("other_cost").Inc()
	slog.Info("Other cost added",
		"period_id", cost.PeriodID,
		"member_id", cost.MemberID,
		"amount", cost.Amount,
		"shared", cost.IsShared,
	)
	return nil
}

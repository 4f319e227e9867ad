// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/messmate/backend/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for mess ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreatePeriod opens a new accounting period and closes any period
	// that is currently active. The period.ID field will be populated.
	CreatePeriod(ctx context.Context, period *models.Period) error

	// GetPeriod retrieves a period by its ID.
	GetPeriod(ctx context.Context, periodID string) (*models.Period, error)

	// GetActivePeriod retrieves the currently active period.
	// Returns ErrNotFound when no period is active.
	GetActivePeriod(ctx context.Context) (*models.Period, error)

	// ClosePeriod marks a period inactive.
	ClosePeriod(ctx context.Context, periodID string) error

	// AddMember adds a member to the roster. The member.ID field will
	// be populated by the store.
	AddMember(ctx context.Context, member *models.Member) error

	// ListMembers retrieves members in insertion order. When activeOnly
	// is true, removed members are excluded.
	ListMembers(ctx context.Context, activeOnly bool) ([]models.Member, error)

	// RemoveMember soft-deletes a member; their historical records are
	// kept.
	RemoveMember(ctx context.Context, memberID string) error

	// UpsertMealRecord stores one member's meal units for a day,
	// replacing any previous row for the same period, member, and date.
	UpsertMealRecord(ctx context.Context, record *models.MealRecord) error

	// ListMealRecords retrieves all meal records for a period.
	ListMealRecords(ctx context.Context, periodID string) ([]models.MealRecord, error)

	// AddDeposit records a deposit. The deposit.ID field will be populated.
	AddDeposit(ctx context.Context, deposit *models.Deposit) error

	// ListDeposits retrieves all deposits for a period.
	ListDeposits(ctx context.Context, periodID string) ([]models.Deposit, error)

	// AddMealCost records grocery spend. The cost.ID field will be populated.
	AddMealCost(ctx context.Context, cost *models.MealCost) error

	// ListMealCosts retrieves all meal costs for a period.
	ListMealCosts(ctx context.Context, periodID string) ([]models.MealCost, error)

	// AddOtherCost records a shared or individual expense. The cost.ID
	// field will be populated.
	AddOtherCost(ctx context.Context, cost *models.OtherCost) error

	// ListOtherCosts retrieves all other costs for a period.
	ListOtherCosts(ctx context.Context, periodID string) ([]models.OtherCost, error)

	// Close releases any resources held by the store.
	Close() error
}

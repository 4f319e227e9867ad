package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/messmate/backend/internal/models"
	"github.com/messmate/backend/internal/storage"
)

// CreatePeriod opens a new period, closing any currently active one in
// the same transaction so that at most one period is ever active.
func (s *SQLiteStore) CreatePeriod(ctx context.Context, period *models.Period) error {
	if period.ID == "" {
		period.ID = uuid.New().String()
	}
	if period.CreatedAt == 0 {
		period.CreatedAt = time.Now().Unix()
	}
	if period.Name == "" {
		period.Name = time.Unix(period.CreatedAt, 0).Format("January 2006")
	}
	period.IsActive = true

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"UPDATE periods SET is_active = 0, closed_at = ? WHERE is_active = 1",
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to close active period: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO periods (id, name, is_active, created_at, closed_at) VALUES (?, ?, 1, ?, 0)",
		period.ID, period.Name, period.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert period: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetPeriod retrieves a period by ID.
func (s *SQLiteStore) GetPeriod(ctx context.Context, periodID string) (*models.Period, error) {
	period := &models.Period{}
	var isActive int

	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, is_active, created_at, closed_at FROM periods WHERE id = ?",
		periodID,
	).Scan(&period.ID, &period.Name, &isActive, &period.CreatedAt, &period.ClosedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("period %s: %w", periodID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get period: %w", err)
	}

	period.IsActive = isActive == 1
	return period, nil
}

// GetActivePeriod retrieves the currently active period.
func (s *SQLiteStore) GetActivePeriod(ctx context.Context) (*models.Period, error) {
	period := &models.Period{IsActive: true}

	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at, closed_at FROM periods WHERE is_active = 1",
	).Scan(&period.ID, &period.Name, &period.CreatedAt, &period.ClosedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("active period: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active period: %w", err)
	}

	return period, nil
}

// ClosePeriod marks a period inactive.
func (s *SQLiteStore) ClosePeriod(ctx context.Context, periodID string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE periods SET is_active = 0, closed_at = ? WHERE id = ? AND is_active = 1",
		time.Now().Unix(), periodID,
	)
	if err != nil {
		return fmt.Errorf("failed to close period: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check close result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("active period %s: %w", periodID, storage.ErrNotFound)
	}

	return nil
}

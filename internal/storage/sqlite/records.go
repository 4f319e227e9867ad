package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/messmate/backend/internal/models"
)

// UpsertMealRecord stores one member's meal units for a day. A second
// write for the same period, member, and date replaces the first, so
// the day's log is always the latest submission.
func (s *SQLiteStore) UpsertMealRecord(ctx context.Context, record *models.MealRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO meal_records (id, period_id, member_id, date, breakfast_units, lunch_units, dinner_units)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (period_id, member_id, date) DO UPDATE SET
		     breakfast_units = excluded.breakfast_units,
		     lunch_units = excluded.lunch_units,
		     dinner_units = excluded.dinner_units`,
		record.ID, record.PeriodID, record.MemberID, record.Date,
		record.BreakfastUnits, record.LunchUnits, record.DinnerUnits,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert meal record: %w", err)
	}

	return nil
}

// ListMealRecords retrieves all meal records for a period.
func (s *SQLiteStore) ListMealRecords(ctx context.Context, periodID string) ([]models.MealRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, period_id, member_id, date, breakfast_units, lunch_units, dinner_units
		 FROM meal_records WHERE period_id = ? ORDER BY date, member_id`,
		periodID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal records: %w", err)
	}
	defer rows.Close()

	var records []models.MealRecord
	for rows.Next() {
		var r models.MealRecord
		if err := rows.Scan(&r.ID, &r.PeriodID, &r.MemberID, &r.Date,
			&r.BreakfastUnits, &r.LunchUnits, &r.DinnerUnits); err != nil {
			return nil, fmt.Errorf("failed to scan meal record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meal records: %w", err)
	}

	return records, nil
}

// AddDeposit records a deposit into the mess fund.
func (s *SQLiteStore) AddDeposit(ctx context.Context, deposit *models.Deposit) error {
	if deposit.ID == "" {
		deposit.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO deposits (id, period_id, member_id, amount, date) VALUES (?, ?, ?, ?, ?)",
		deposit.ID, deposit.PeriodID, deposit.MemberID, deposit.Amount, deposit.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert deposit: %w", err)
	}

	return nil
}

// ListDeposits retrieves all deposits for a period.
func (s *SQLiteStore) ListDeposits(ctx context.Context, periodID string) ([]models.Deposit, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, period_id, member_id, amount, date FROM deposits WHERE period_id = ? ORDER BY date, member_id",
		periodID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	defer rows.Close()

	var deposits []models.Deposit
	for rows.Next() {
		var d models.Deposit
		if err := rows.Scan(&d.ID, &d.PeriodID, &d.MemberID, &d.Amount, &d.Date); err != nil {
			return nil, fmt.Errorf("failed to scan deposit: %w", err)
		}
		deposits = append(deposits, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deposits: %w", err)
	}

	return deposits, nil
}

// AddMealCost records grocery spend for the period.
func (s *SQLiteStore) AddMealCost(ctx context.Context, cost *models.MealCost) error {
	if cost.ID == "" {
		cost.ID = uuid.New().String()
	}

	var note interface{} = nil
	if cost.Note != "" {
		note = cost.Note
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO meal_costs (id, period_id, member_id, amount, date, note) VALUES (?, ?, ?, ?, ?, ?)",
		cost.ID, cost.PeriodID, cost.MemberID, cost.Amount, cost.Date, note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert meal cost: %w", err)
	}

	return nil
}

// ListMealCosts retrieves all meal costs for a period.
func (s *SQLiteStore) ListMealCosts(ctx context.Context, periodID string) ([]models.MealCost, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, period_id, member_id, amount, date, note FROM meal_costs WHERE period_id = ? ORDER BY date, member_id",
		periodID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal costs: %w", err)
	}
	defer rows.Close()

	var costs []models.MealCost
	for rows.Next() {
		var c models.MealCost
		var note sql.NullString
		if err := rows.Scan(&c.ID, &c.PeriodID, &c.MemberID, &c.Amount, &c.Date, &note); err != nil {
			return nil, fmt.Errorf("failed to scan meal cost: %w", err)
		}
		if note.Valid {
			c.Note = note.String
		}
		costs = append(costs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meal costs: %w", err)
	}

	return costs, nil
}

// AddOtherCost records a shared or individual expense.
func (s *SQLiteStore) AddOtherCost(ctx context.Context, cost *models.OtherCost) error {
	if cost.ID == "" {
		cost.ID = uuid.New().String()
	}

	var note interface{} = nil
	if cost.Note != "" {
		note = cost.Note
	}

	isShared := 0
	if cost.IsShared {
		isShared = 1
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO other_costs (id, period_id, member_id, amount, is_shared, date, note) VALUES (?, ?, ?, ?, ?, ?, ?)",
		cost.ID, cost.PeriodID, cost.MemberID, cost.Amount, isShared, cost.Date, note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert other cost: %w", err)
	}

	return nil
}

// ListOtherCosts retrieves all other costs for a period.
func (s *SQLiteStore) ListOtherCosts(ctx context.Context, periodID string) ([]models.OtherCost, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, period_id, member_id, amount, is_shared, date, note FROM other_costs WHERE period_id = ? ORDER BY date, member_id",
		periodID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list other costs: %w", err)
	}
	defer rows.Close()

	var costs []models.OtherCost
	for rows.Next() {
		var c models.OtherCost
		var note sql.NullString
		var isShared int
		if err := rows.Scan(&c.ID, &c.PeriodID, &c.MemberID, &c.Amount, &isShared, &c.Date, &note); err != nil {
			return nil, fmt.Errorf("failed to scan other cost: %w", err)
		}
		c.IsShared = isShared == 1
		if note.Valid {
			c.Note = note.String
		}
		costs = append(costs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate other costs: %w", err)
	}

	return costs, nil
}

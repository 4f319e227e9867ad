package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/messmate/backend/internal/models"
	"github.com/messmate/backend/internal/storage"
)

// AddMember inserts a new roster member.
func (s *SQLiteStore) AddMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO members (id, display_name, created_at, removed_at) VALUES (?, ?, ?, 0)",
		member.ID, member.DisplayName, member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	return nil
}

// ListMembers retrieves members ordered by join time. With activeOnly
// set, removed members are excluded; this is the roster shared costs
// divide over.
func (s *SQLiteStore) ListMembers(ctx context.Context, activeOnly bool) ([]models.Member, error) {
	query := "SELECT id, display_name, created_at, removed_at FROM members"
	if activeOnly {
		query += " WHERE removed_at = 0"
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.DisplayName, &m.CreatedAt, &m.RemovedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// RemoveMember soft-deletes a member. Their meal, deposit, and cost
// records stay in place so period totals remain correct.
func (s *SQLiteStore) RemoveMember(ctx context.Context, memberID string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE members SET removed_at = ? WHERE id = ? AND removed_at = 0",
		time.Now().Unix(), memberID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check remove result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}

	return nil
}

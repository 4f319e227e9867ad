package service

import (
	"context"
	"log/slog"

	"github.com/messmate/backend/internal/models"
	"github.com/messmate/backend/internal/storage"
)

// RosterService manages periods and the member roster.
type RosterService struct {
	store storage.Store
}

// NewRosterService creates a new RosterService with the given storage backend.
func NewRosterService(store storage.Store) *RosterService {
	return &RosterService{store: store}
}

// StartPeriod opens a new accounting period. Any currently active
// period is closed first; records always land in exactly one month.
func (s *RosterService) StartPeriod(ctx context.Context, name string) (*models.Period, error) {
	period := &models.Period{Name: name}
	if err := s.store.CreatePeriod(ctx, period); err != nil {
		return nil, err
	}
	slog.Info("Period started", "period_id", period.ID, "name", period.Name)
	return period, nil
}

// ClosePeriod ends a period without starting a new one.
func (s *RosterService) ClosePeriod(ctx context.Context, periodID string) error {
	if err := s.store.ClosePeriod(ctx, periodID); err != nil {
		return err
	}
	slog.Info("Period closed", "period_id", periodID)
	return nil
}

// ActivePeriod returns the period currently accepting records.
func (s *RosterService) ActivePeriod(ctx context.Context) (*models.Period, error) {
	return s.store.GetActivePeriod(ctx)
}

// AddMember adds a member to the roster.
func (s *RosterService) AddMember(ctx context.Context, displayName string) (*models.Member, error) {
	member := &models.Member{DisplayName: displayName}
	if err := s.store.AddMember(ctx, member); err != nil {
		return nil, err
	}
	slog.Info("Member added", "member_id", member.ID, "display_name", member.DisplayName)
	return member, nil
}

// Roster returns the active member set shared costs divide over.
func (s *RosterService) Roster(ctx context.Context) ([]models.Member, error) {
	return s.store.ListMembers(ctx, true)
}

// RemoveMember soft-deletes a member. Their historical records keep
// counting toward period totals.
func (s *RosterService) RemoveMember(ctx context.Context, memberID string) error {
	if err := s.store.RemoveMember(ctx, memberID); err != nil {
		return err
	}
	slog.Info("Member removed", "member_id", memberID)
	return nil
}

package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/messmate/backend/internal/models"
	"github.com/messmate/backend/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "messmate-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestPeriods(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreatePeriod generates ID and name", func(t *testing.T) {
		period := &models.Period{}
		if err := store.CreatePeriod(ctx, period); err != nil {
			t.Fatalf("CreatePeriod failed: %v", err)
		}
		if period.ID == "" {
			t.Error("Expected period ID to be generated")
		}
		if period.Name == "" {
			t.Error("Expected period name to be generated")
		}
		if !period.IsActive {
			t.Error("Expected new period to be active")
		}
	})

	t.Run("CreatePeriod closes the previous active period", func(t *testing.T) {
		first := &models.Period{Name: "First"}
		if err := store.CreatePeriod(ctx, first); err != nil {
			t.Fatalf("CreatePeriod failed: %v", err)
		}

		second := &models.Period{Name: "Second"}
		if err := store.CreatePeriod(ctx, second); err != nil {
			t.Fatalf("CreatePeriod failed: %v", err)
		}

		active, err := store.GetActivePeriod(ctx)
		if err != nil {
			t.Fatalf("GetActivePeriod failed: %v", err)
		}
		if active.ID != second.ID {
			t.Errorf("active period = %s, want %s", active.ID, second.ID)
		}

		reloaded, err := store.GetPeriod(ctx, first.ID)
		if err != nil {
			t.Fatalf("GetPeriod failed: %v", err)
		}
		if reloaded.IsActive {
			t.Error("Expected first period to be closed")
		}
		if reloaded.ClosedAt == 0 {
			t.Error("Expected ClosedAt to be set on the closed period")
		}
	})

	t.Run("ClosePeriod deactivates", func(t *testing.T) {
		period := &models.Period{Name: "Closable"}
		if err := store.CreatePeriod(ctx, period); err != nil {
			t.Fatalf("CreatePeriod failed: %v", err)
		}
		if err := store.ClosePeriod(ctx, period.ID); err != nil {
			t.Fatalf("ClosePeriod failed: %v", err)
		}

		_, err := store.GetActivePeriod(ctx)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetActivePeriod error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ClosePeriod on unknown period returns ErrNotFound", func(t *testing.T) {
		err := store.ClosePeriod(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("ClosePeriod error = %v, want ErrNotFound", err)
		}
	})
}

func TestMembers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := &models.Member{DisplayName: "Alice"}
	bob := &models.Member{DisplayName: "Bob"}
	if err := store.AddMember(ctx, alice); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if err := store.AddMember(ctx, bob); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	t.Run("ListMembers returns all in join order", func(t *testing.T) {
		members, err := store.ListMembers(ctx, false)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 2 {
			t.Fatalf("got %d members, want 2", len(members))
		}
	})

	t.Run("RemoveMember excludes from active roster only", func(t *testing.T) {
		if err := store.RemoveMember(ctx, bob.ID); err != nil {
			t.Fatalf("RemoveMember failed: %v", err)
		}

		active, err := store.ListMembers(ctx, true)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(active) != 1 || active[0].ID != alice.ID {
			t.Errorf("active roster = %v, want just Alice", active)
		}

		all, err := store.ListMembers(ctx, false)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("got %d members, want 2 (soft delete)", len(all))
		}
	})

	t.Run("RemoveMember twice returns ErrNotFound", func(t *testing.T) {
		err := store.RemoveMember(ctx, bob.ID)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("RemoveMember error = %v, want ErrNotFound", err)
		}
	})
}

func TestRecords(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	period := &models.Period{Name: "Test Month"}
	if err := store.CreatePeriod(ctx, period); err != nil {
		t.Fatalf("CreatePeriod failed: %v", err)
	}
	alice := &models.Member{DisplayName: "Alice"}
	if err := store.AddMember(ctx, alice); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	t.Run("UpsertMealRecord replaces the day's units", func(t *testing.T) {
		first := &models.MealRecord{
			PeriodID: period.ID, MemberID: alice.ID, Date: "2026-08-01",
			BreakfastUnits: 1, LunchUnits: 1, DinnerUnits: 1,
		}
		if err := store.UpsertMealRecord(ctx, first); err != nil {
			t.Fatalf("UpsertMealRecord failed: %v", err)
		}

		// Correction for the same day replaces, never doubles.
		second := &models.MealRecord{
			PeriodID: period.ID, MemberID: alice.ID, Date: "2026-08-01",
			LunchUnits: 0.5,
		}
		if err := store.UpsertMealRecord(ctx, second); err != nil {
			t.Fatalf("UpsertMealRecord failed: %v", err)
		}

		records, err := store.ListMealRecords(ctx, period.ID)
		if err != nil {
			t.Fatalf("ListMealRecords failed: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("got %d records, want 1", len(records))
		}
		if records[0].TotalUnits() != 0.5 {
			t.Errorf("TotalUnits = %v, want 0.5", records[0].TotalUnits())
		}
	})

	t.Run("Deposits round-trip", func(t *testing.T) {
		d := &models.Deposit{PeriodID: period.ID, MemberID: alice.ID, Amount: 500, Date: "2026-08-02"}
		if err := store.AddDeposit(ctx, d); err != nil {
			t.Fatalf("AddDeposit failed: %v", err)
		}
		if d.ID == "" {
			t.Error("Expected deposit ID to be generated")
		}

		deposits, err := store.ListDeposits(ctx, period.ID)
		if err != nil {
			t.Fatalf("ListDeposits failed: %v", err)
		}
		if len(deposits) != 1 || deposits[0].Amount != 500 {
			t.Errorf("deposits = %v, want one of amount 500", deposits)
		}
	})

	t.Run("MealCosts round-trip with optional note", func(t *testing.T) {
		c := &models.MealCost{PeriodID: period.ID, MemberID: alice.ID, Amount: 300, Date: "2026-08-03", Note: "weekly groceries"}
		if err := store.AddMealCost(ctx, c); err != nil {
			t.Fatalf("AddMealCost failed: %v", err)
		}

		costs, err := store.ListMealCosts(ctx, period.ID)
		if err != nil {
			t.Fatalf("ListMealCosts failed: %v", err)
		}
		if len(costs) != 1 || costs[0].Note != "weekly groceries" {
			t.Errorf("costs = %v, want one with note", costs)
		}
	})

	t.Run("OtherCosts keep the shared flag", func(t *testing.T) {
		shared := &models.OtherCost{PeriodID: period.ID, MemberID: alice.ID, Amount: 90, IsShared: true, Date: "2026-08-04"}
		individual := &models.OtherCost{PeriodID: period.ID, MemberID: alice.ID, Amount: 50, Date: "2026-08-05"}
		if err := store.AddOtherCost(ctx, shared); err != nil {
			t.Fatalf("AddOtherCost failed: %v", err)
		}
		if err := store.AddOtherCost(ctx, individual); err != nil {
			t.Fatalf("AddOtherCost failed: %v", err)
		}

		costs, err := store.ListOtherCosts(ctx, period.ID)
		if err != nil {
			t.Fatalf("ListOtherCosts failed: %v", err)
		}
		if len(costs) != 2 {
			t.Fatalf("got %d costs, want 2", len(costs))
		}
		var sharedCount int
		for _, c := range costs {
			if c.IsShared {
				sharedCount++
			}
		}
		if sharedCount != 1 {
			t.Errorf("got %d shared costs, want 1", sharedCount)
		}
	})

	t.Run("Listing a different period returns nothing", func(t *testing.T) {
		other := &models.Period{Name: "Other Month"}
		if err := store.CreatePeriod(ctx, other); err != nil {
			t.Fatalf("CreatePeriod failed: %v", err)
		}
		deposits, err := store.ListDeposits(ctx, other.ID)
		if err != nil {
			t.Fatalf("ListDeposits failed: %v", err)
		}
		if len(deposits) != 0 {
			t.Errorf("got %d deposits in fresh period, want 0", len(deposits))
		}
	})
}

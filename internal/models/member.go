package models

// Member represents a person sharing mess expenses.
//
// A member stays in the roster until removed; removal is soft so that
// historical records keep resolving to a display name.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string `json:"id"`

	// DisplayName is the name shown on balance sheets.
	DisplayName string `json:"display_name"`

	// CreatedAt is the Unix timestamp when the member joined.
	CreatedAt int64 `json:"created_at"`

	// RemovedAt is the Unix timestamp when the member was removed,
	// or 0 while the member is active.
	RemovedAt int64 `json:"removed_at,omitempty"`
}

// Active reports whether the member is part of the current roster.
func (m Member) Active() bool {
	return m.RemovedAt == 0
}

// Period represents one monthly accounting cycle.
//
// All meal, deposit, and cost records hang off exactly one period.
// At most one period is active at a time; starting a new period closes
// the previous one.
type Period struct {
	// ID is the unique identifier for the period (UUID format).
	ID string `json:"id"`

	// Name is the human-readable label, e.g. "August 2026".
	Name string `json:"name"`

	// IsActive marks the period currently accepting records.
	IsActive bool `json:"is_active"`

	// CreatedAt is the Unix timestamp when the period was opened.
	CreatedAt int64 `json:"created_at"`

	// ClosedAt is the Unix timestamp when the period was closed,
	// or 0 while it is still open.
	ClosedAt int64 `json:"closed_at,omitempty"`
}

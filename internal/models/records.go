package models

// MealRecord holds one member's meal units for one day of a period.
//
// Units are non-negative and may be fractional (half meals for guests
// or skipped meals are valid). The store keeps at most one row per
// member and date; if duplicates ever reach the engine it sums them
// rather than rejecting.
type MealRecord struct {
	// ID is the unique identifier for the record (UUID format).
	ID string `json:"id"`

	// PeriodID is the period this record belongs to.
	PeriodID string `json:"period_id"`

	// MemberID is the member who ate the meals.
	MemberID string `json:"member_id"`

	// Date is the day the meals were taken, "YYYY-MM-DD".
	Date string `json:"date"`

	// BreakfastUnits, LunchUnits and DinnerUnits are the meal counts
	// for each slot.
	BreakfastUnits float64 `json:"breakfast_units"`
	LunchUnits     float64 `json:"lunch_units"`
	DinnerUnits    float64 `json:"dinner_units"`
}

// TotalUnits returns the sum of all meal slots for the day.
func (r MealRecord) TotalUnits() float64 {
	return r.BreakfastUnits + r.LunchUnits + r.DinnerUnits
}

// Deposit represents money a member paid into the mess fund.
type Deposit struct {
	// ID is the unique identifier for the deposit (UUID format).
	ID string `json:"id"`

	// PeriodID is the period this deposit belongs to.
	PeriodID string `json:"period_id"`

	// MemberID is the member who paid.
	MemberID string `json:"member_id"`

	// Amount is the deposited amount. The HTTP boundary rejects
	// non-positive amounts; the engine counts whatever it is given.
	Amount float64 `json:"amount"`

	// Date is the day of the deposit, "YYYY-MM-DD".
	Date string `json:"date"`
}

// MealCost represents grocery spend consumed by the whole mess.
//
// The purchaser is recorded for provenance only. It does not exempt
// them from meal-rate charges: everyone, purchaser included, pays
// mealCount x mealRate.
type MealCost struct {
	// ID is the unique identifier for the cost entry (UUID format).
	ID string `json:"id"`

	// PeriodID is the period this cost belongs to.
	PeriodID string `json:"period_id"`

	// MemberID is the purchaser of record.
	MemberID string `json:"member_id"`

	// Amount is the amount spent.
	Amount float64 `json:"amount"`

	// Date is the day of purchase, "YYYY-MM-DD".
	Date string `json:"date"`

	// Note is an optional description of the purchase.
	Note string `json:"note,omitempty"`
}

// OtherCost represents a non-meal expense, either split equally across
// the whole roster or charged to a single member.
type OtherCost struct {
	// ID is the unique identifier for the cost entry (UUID format).
	ID string `json:"id"`

	// PeriodID is the period this cost belongs to.
	PeriodID string `json:"period_id"`

	// MemberID is the payer of record when shared, or the charged
	// member when individual.
	MemberID string `json:"member_id"`

	// Amount is the amount spent.
	Amount float64 `json:"amount"`

	// IsShared selects the attribution mode: true splits the amount
	// equally across all active members regardless of MemberID, false
	// charges the full amount to MemberID alone.
	IsShared bool `json:"is_shared"`

	// Date is the day of the expense, "YYYY-MM-DD".
	Date string `json:"date"`

	// Note is an optional description of the expense.
	Note string `json:"note,omitempty"`
}

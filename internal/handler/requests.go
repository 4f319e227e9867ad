package handler

// StartPeriodRequest starts a new accounting period.
type StartPeriodRequest struct {
	// Name is optional; the store generates "January 2006" style names.
	Name string `json:"name"`
}

// AddMemberRequest adds a member to the roster.
type AddMemberRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

// LogMealsRequest records one member's meals for a day. Units may be
// fractional (half portions for guests) but never negative.
type LogMealsRequest struct {
	MemberID       string   `json:"member_id" binding:"required,uuid"`
	Date           string   `json:"date" binding:"required,dateonly"`
	BreakfastUnits *float64 `json:"breakfast_units" binding:"required,gte=0"`
	LunchUnits     *float64 `json:"lunch_units" binding:"required,gte=0"`
	DinnerUnits    *float64 `json:"dinner_units" binding:"required,gte=0"`
}

// AddDepositRequest records money paid into the mess fund.
type AddDepositRequest struct {
	MemberID string  `json:"member_id" binding:"required,uuid"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Date     string  `json:"date" binding:"required,dateonly"`
}

// AddMealCostRequest records grocery spend; member_id is the purchaser
// of record.
type AddMealCostRequest struct {
	MemberID string  `json:"member_id" binding:"required,uuid"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Date     string  `json:"date" binding:"required,dateonly"`
	Note     string  `json:"note"`
}

// AddOtherCostRequest records a shared or individual expense.
type AddOtherCostRequest struct {
	MemberID string  `json:"member_id" binding:"required,uuid"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	IsShared bool    `json:"is_shared"`
	Date     string  `json:"date" binding:"required,dateonly"`
	Note     string  `json:"note"`
}

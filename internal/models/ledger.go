package models

// PeriodSummary is the collective month summary for one period.
// It is recomputed from scratch on every call; nothing is cached.
type PeriodSummary struct {
	// PeriodID is the period this summary describes.
	PeriodID string `json:"period_id"`

	// TotalDeposit is the sum of all deposits in the period.
	TotalDeposit float64 `json:"total_deposit"`

	// TotalMeals is the sum of all meal units in the period,
	// including units of members no longer in the roster.
	TotalMeals float64 `json:"total_meals"`

	// TotalMealCost is the sum of all grocery spend in the period.
	TotalMealCost float64 `json:"total_meal_cost"`

	// MealRate is TotalMealCost / TotalMeals, or 0 when no meals were
	// logged. Carried at full precision; rounding is a display concern.
	MealRate float64 `json:"meal_rate"`

	// TotalIndividualCost is the sum of non-shared other costs.
	TotalIndividualCost float64 `json:"total_individual_cost"`

	// TotalSharedCost is the sum of shared other costs.
	TotalSharedCost float64 `json:"total_shared_cost"`

	// MessBalance is the mess's net cash position:
	// TotalDeposit - TotalMealCost - TotalIndividualCost - TotalSharedCost.
	MessBalance float64 `json:"mess_balance"`
}

// MemberBalance is one member's settlement row for a period.
// Positive Balance means credit, negative means the member owes the mess.
type MemberBalance struct {
	// MemberID identifies the member.
	MemberID string `json:"member_id"`

	// DisplayName is the member's name for display.
	DisplayName string `json:"display_name"`

	// TotalMeals is the member's meal units for the period.
	TotalMeals float64 `json:"total_meals"`

	// TotalDeposit is the member's deposits for the period.
	TotalDeposit float64 `json:"total_deposit"`

	// MealCost is TotalMeals x the period meal rate.
	MealCost float64 `json:"meal_cost"`

	// IndividualCost is the sum of non-shared costs charged to the member.
	IndividualCost float64 `json:"individual_cost"`

	// SharedCost is the member's equal share of the period's shared costs.
	SharedCost float64 `json:"shared_cost"`

	// Balance is TotalDeposit - MealCost - IndividualCost - SharedCost.
	Balance float64 `json:"balance"`
}

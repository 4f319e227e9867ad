// Package ledger computes mess settlement figures for one accounting
// period: a collective PeriodSummary and one MemberBalance per roster
// member.
//
// Every function here is a pure, total function over its inputs: no
// state, no I/O, no errors. Degenerate inputs (zero meals, empty
// roster, negative amounts) produce defined numeric results instead of
// failures; input validation belongs to the record store boundary.
// Money stays float64 at full precision; rounding happens only at the
// display layer.
package ledger

import (
	"github.com/messmate/backend/internal/models"
)

// ResolveRoster returns the member set shared costs are divided over.
// Duplicated IDs collapse to one entry keeping insertion order, with
// the last occurrence winning on display name. Duplicates are a
// defensive tolerance, not an expected input shape.
func ResolveRoster(members []models.Member) []models.Member {
	index := make(map[string]int, len(members))
	roster := make([]models.Member, 0, len(members))
	for _, m := range members {
		if i, seen := index[m.ID]; seen {
			if m.DisplayName != "" {
				roster[i].DisplayName = m.DisplayName
			}
			continue
		}
		index[m.ID] = len(roster)
		roster = append(roster, m)
	}
	return roster
}

// Summarize computes the collective month summary for one period.
//
// Algorithm:
//   - totalDeposit, totalMeals, totalMealCost: plain sums over all
//     records, with no filtering by member validity (a deposit from a
//     removed member still counts toward the mess's cash position)
//   - mealRate = totalMealCost / totalMeals, defined as 0 when no meals
//     were logged so a division by zero never leaks out as NaN/Inf
//   - messBalance = totalDeposit - totalMealCost - totalIndividualCost - totalSharedCost
//
// Meal cost with zero logged meals still reduces messBalance even
// though it cannot be attributed to anyone through the meal rate.
func Summarize(periodID string, meals []models.MealRecord, deposits []models.Deposit, mealCosts []models.MealCost, otherCosts []models.OtherCost) models.PeriodSummary {
	summary := models.PeriodSummary{PeriodID: periodID}

	for _, d := range deposits {
		summary.TotalDeposit += d.Amount
	}
	for _, r := range meals {
		summary.TotalMeals += r.TotalUnits()
	}
	for _, c := range mealCosts {
		summary.TotalMealCost += c.Amount
	}
	for _, c := range otherCosts {
		if c.IsShared {
			summary.TotalSharedCost += c.Amount
		} else {
			summary.TotalIndividualCost += c.Amount
		}
	}

	if summary.TotalMeals > 0 {
		summary.MealRate = summary.TotalMealCost / summary.TotalMeals
	}

	summary.MessBalance = summary.TotalDeposit - summary.TotalMealCost -
		summary.TotalIndividualCost - summary.TotalSharedCost

	return summary
}

// MemberBalances computes one settlement row per roster member.
//
// mealRate must be the period rate from Summarize, not recomputed per
// member. Shared costs split equally over the roster size; members who
// have records but are not in the roster (removed members) get no row,
// even though their meals already influenced the period meal rate.
// With an empty roster shared costs are distributed to nobody; they
// still reduce the mess balance in the summary.
func MemberBalances(roster []models.Member, meals []models.MealRecord, deposits []models.Deposit, otherCosts []models.OtherCost, mealRate float64) []models.MemberBalance {
	roster = ResolveRoster(roster)
	if len(roster) == 0 {
		return []models.MemberBalance{}
	}

	index := make(map[string]int, len(roster))
	balances := make([]models.MemberBalance, len(roster))
	for i, m := range roster {
		index[m.ID] = i
		balances[i] = models.MemberBalance{
			MemberID:    m.ID,
			DisplayName: m.DisplayName,
		}
	}

	var totalSharedCost float64
	for _, r := range meals {
		if i, ok := index[r.MemberID]; ok {
			balances[i].TotalMeals += r.TotalUnits()
		}
	}
	for _, d := range deposits {
		if i, ok := index[d.MemberID]; ok {
			balances[i].TotalDeposit += d.Amount
		}
	}
	for _, c := range otherCosts {
		if c.IsShared {
			totalSharedCost += c.Amount
			continue
		}
		if i, ok := index[c.MemberID]; ok {
			balances[i].IndividualCost += c.Amount
		}
	}

	sharedShare := totalSharedCost / float64(len(roster))
	for i := range balances {
		balances[i].MealCost = balances[i].TotalMeals * mealRate
		balances[i].SharedCost = sharedShare
		balances[i].Balance = balances[i].TotalDeposit - balances[i].MealCost -
			balances[i].IndividualCost - balances[i].SharedCost
	}

	return balances
}

// Compute runs the full settlement for one period: the summary first,
// then per-member balances using the summary's meal rate.
func Compute(periodID string, roster []models.Member, meals []models.MealRecord, deposits []models.Deposit, mealCosts []models.MealCost, otherCosts []models.OtherCost) (models.PeriodSummary, []models.MemberBalance) {
	summary := Summarize(periodID, meals, deposits, mealCosts, otherCosts)
	balances := MemberBalances(roster, meals, deposits, otherCosts, summary.MealRate)
	return summary, balances
}

package payroll

import (
	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/fournilsoft/backoffice-go/internal/pkg/monthkey"
	"github.com/shopspring/decimal"
)

// referenceDays is the fixed payroll month length used for all proration,
// regardless of the actual number of calendar days in the month.
var referenceDays = decimal.NewFromInt(26)

// EffectiveBaseSalary derives the base salary in force for a month from the
// salary-evolution timeline: the latest HIRE or RAISE event dated on or
// before the first calendar day of the month. When the timeline holds no such
// event the contract's cached base salary applies.
func EffectiveBaseSalary(timeline []employee.HistoryEvent, contractBase decimal.Decimal, key monthkey.Key) decimal.Decimal {
	firstOfMonth := key.FirstOfMonth()

	var latest *employee.HistoryEvent
	for i := range timeline {
		ev := &timeline[i]
		if ev.Kind != employee.HistoryKindHire && ev.Kind != employee.HistoryKindRaise {
			continue
		}
		if ev.Date.After(firstOfMonth) {
			continue
		}
		if latest == nil || ev.Date.After(latest.Date) {
			latest = ev
		}
	}

	if latest == nil {
		return contractBase
	}
	return latest.Amount
}

// EffectiveFlatBonus returns the flat monthly bonus in force for a month: the
// latest BONUS_GRANT event dated on or before the first of the month, zero
// when none exists.
func EffectiveFlatBonus(timeline []employee.HistoryEvent, key monthkey.Key) decimal.Decimal {
	firstOfMonth := key.FirstOfMonth()

	var latest *employee.HistoryEvent
	for i := range timeline {
		ev := &timeline[i]
		if ev.Kind != employee.HistoryKindBonusGrant {
			continue
		}
		if ev.Date.After(firstOfMonth) {
			continue
		}
		if latest == nil || ev.Date.After(latest.Date) {
			latest = ev
		}
	}

	if latest == nil {
		return decimal.Zero
	}
	return latest.Amount
}

// ProrateFlatBonus prorates a flat bonus by the worked-days ratio over the
// fixed 26-day reference month, rounded half-up to two decimals. A full month
// or more pays the bonus untouched.
func ProrateFlatBonus(flatBonus, workedDays decimal.Decimal) decimal.Decimal {
	if workedDays.GreaterThanOrEqual(referenceDays) {
		return flatBonus
	}
	if workedDays.IsNegative() {
		workedDays = decimal.Zero
	}
	return flatBonus.Mul(workedDays).Div(referenceDays).Round(2)
}

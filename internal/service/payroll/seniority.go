package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

var seniorityTiers = []struct {
	minYears int
	rate     decimal.Decimal
}{
	{25, decimal.RequireFromString("0.25")},
	{20, decimal.RequireFromString("0.20")},
	{12, decimal.RequireFromString("0.15")},
	{5, decimal.RequireFromString("0.10")},
	{2, decimal.RequireFromString("0.05")},
}

// SeniorityRate maps length of service to the seniority bonus rate tier.
// Years are counted on exact anniversaries, not calendar years.
func SeniorityRate(hireDate, referenceDate time.Time) decimal.Decimal {
	years := fullYearsBetween(hireDate, referenceDate)
	for _, tier := range seniorityTiers {
		if years >= tier.minYears {
			return tier.rate
		}
	}
	return decimal.Zero
}

// fullYearsBetween counts completed years from from to to, decrementing when
// to falls before the anniversary within its year.
func fullYearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()

	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}

	if years < 0 {
		return 0
	}
	return years
}

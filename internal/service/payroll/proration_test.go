package payroll

import (
	"testing"
	"time"

	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/fournilsoft/backoffice-go/internal/pkg/monthkey"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(kind employee.HistoryKind, y int, m time.Month, day int, amount string) employee.HistoryEvent {
	return employee.HistoryEvent{
		Kind:   kind,
		Date:   date(y, m, day),
		Amount: d(amount),
	}
}

func mk(s string) monthkey.Key {
	key, err := monthkey.Parse(s)
	if err != nil {
		panic(err)
	}
	return key
}

func TestEffectiveBaseSalary(t *testing.T) {
	timeline := []employee.HistoryEvent{
		event(employee.HistoryKindHire, 2022, time.January, 1, "3000"),
		event(employee.HistoryKindRaise, 2024, time.June, 15, "4000"),
	}
	contractBase := d("4000")

	cases := []struct {
		month string
		want  string
	}{
		{"MARS_2024", "3000"},    // raise not yet effective
		{"JUIN_2024", "3000"},    // raise lands mid-June, first of June precedes it
		{"JUILLET_2024", "4000"}, // raise in force
		{"JANVIER_2022", "3000"}, // hire snapshot applies from its own month
	}

	for _, c := range cases {
		got := EffectiveBaseSalary(timeline, contractBase, mk(c.month))
		assert.True(t, d(c.want).Equal(got), "%s: got %s, want %s", c.month, got, c.want)
	}
}

func TestEffectiveBaseSalary_Fallbacks(t *testing.T) {
	contractBase := d("3500")

	// Empty timeline falls back to the contract salary.
	got := EffectiveBaseSalary(nil, contractBase, mk("MARS_2024"))
	assert.True(t, contractBase.Equal(got))

	// A month before any timeline entry falls back too.
	timeline := []employee.HistoryEvent{
		event(employee.HistoryKindHire, 2022, time.January, 1, "3000"),
	}
	got = EffectiveBaseSalary(timeline, contractBase, mk("DECEMBRE_2021"))
	assert.True(t, contractBase.Equal(got))

	// Bonus grants never drive the base salary.
	timeline = append(timeline, event(employee.HistoryKindBonusGrant, 2023, time.March, 1, "9999"))
	got = EffectiveBaseSalary(timeline, contractBase, mk("AVRIL_2023"))
	assert.True(t, d("3000").Equal(got))
}

func TestEffectiveBaseSalary_RaiseOnFirstOfMonth(t *testing.T) {
	timeline := []employee.HistoryEvent{
		event(employee.HistoryKindHire, 2022, time.January, 1, "3000"),
		event(employee.HistoryKindRaise, 2024, time.March, 1, "4000"),
	}
	// A raise dated on the first of the month is effective that month.
	got := EffectiveBaseSalary(timeline, d("3000"), mk("MARS_2024"))
	assert.True(t, d("4000").Equal(got))
}

func TestEffectiveFlatBonus(t *testing.T) {
	timeline := []employee.HistoryEvent{
		event(employee.HistoryKindHire, 2022, time.January, 1, "3000"),
		event(employee.HistoryKindBonusGrant, 2023, time.May, 10, "500"),
		event(employee.HistoryKindBonusGrant, 2024, time.February, 1, "800"),
	}

	assert.True(t, EffectiveFlatBonus(timeline, mk("JANVIER_2023")).IsZero())
	assert.True(t, d("500").Equal(EffectiveFlatBonus(timeline, mk("JUIN_2023"))))
	assert.True(t, d("800").Equal(EffectiveFlatBonus(timeline, mk("MARS_2024"))))
}

func TestProrateFlatBonus(t *testing.T) {
	amount := d("780")

	// A full month pays the bonus exactly, no rounding applied.
	require.True(t, amount.Equal(ProrateFlatBonus(amount, d("26"))))
	require.True(t, amount.Equal(ProrateFlatBonus(amount, d("30"))))

	// Zero days pays nothing.
	require.True(t, ProrateFlatBonus(amount, decimal.Zero).IsZero())

	// 13 of 26 days pays half.
	assert.True(t, d("390").Equal(ProrateFlatBonus(amount, d("13"))))

	// Rounded half-up to two decimals: 1000 * 7 / 26 = 269.2307... -> 269.23
	assert.True(t, d("269.23").Equal(ProrateFlatBonus(d("1000"), d("7"))))

	// Negative worked days clamp to zero.
	assert.True(t, ProrateFlatBonus(amount, d("-3")).IsZero())
}

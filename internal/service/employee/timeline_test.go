package employee

import (
	"testing"
	"time"

	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestEnsureAnchorEntry_FirstRaise(t *testing.T) {
	contract := employee.Contract{
		HireDate:   date(2022, time.January, 1),
		BaseSalary: d("3000"),
	}

	anchor := ensureAnchorEntry(nil, contract, "emp-1", employee.HistoryKindRaise)
	require.NotNil(t, anchor)
	assert.Equal(t, employee.HistoryKindHire, anchor.Kind)
	assert.Equal(t, "emp-1", anchor.EmployeeID)
	assert.True(t, contract.HireDate.Equal(anchor.Date))
	assert.True(t, d("3000").Equal(anchor.Amount))
}

func TestEnsureAnchorEntry_NotNeeded(t *testing.T) {
	contract := employee.Contract{
		HireDate:   date(2022, time.January, 1),
		BaseSalary: d("3000"),
	}

	// A raise on a timeline that already has a salary event needs no anchor.
	timeline := []employee.HistoryEvent{
		{Kind: employee.HistoryKindHire, Date: date(2022, time.January, 1), Amount: d("3000")},
	}
	assert.Nil(t, ensureAnchorEntry(timeline, contract, "emp-1", employee.HistoryKindRaise))

	// Bonus grants in the timeline do not count as salary events.
	bonusOnly := []employee.HistoryEvent{
		{Kind: employee.HistoryKindBonusGrant, Date: date(2023, time.May, 1), Amount: d("500")},
	}
	assert.NotNil(t, ensureAnchorEntry(bonusOnly, contract, "emp-1", employee.HistoryKindRaise))

	// Only raises trigger the anchor.
	assert.Nil(t, ensureAnchorEntry(nil, contract, "emp-1", employee.HistoryKindHire))
	assert.Nil(t, ensureAnchorEntry(nil, contract, "emp-1", employee.HistoryKindBonusGrant))
	assert.Nil(t, ensureAnchorEntry(nil, contract, "emp-1", employee.HistoryKindPromotion))
}

func TestDeriveBaseSalary(t *testing.T) {
	timeline := []employee.HistoryEvent{
		{Kind: employee.HistoryKindHire, Date: date(2022, time.January, 1), Amount: d("3000")},
		{Kind: employee.HistoryKindRaise, Date: date(2024, time.June, 15), Amount: d("4000")},
		{Kind: employee.HistoryKindBonusGrant, Date: date(2025, time.January, 1), Amount: d("9999")},
	}

	// Latest salary event wins; later bonus grants are ignored.
	got := deriveBaseSalary(timeline, d("1"))
	assert.True(t, d("4000").Equal(got))

	// No salary event falls back to the current value.
	got = deriveBaseSalary(nil, d("3500"))
	assert.True(t, d("3500").Equal(got))
}

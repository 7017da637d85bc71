package payroll

import (
	"testing"

	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBreakdown_FullMonth(t *testing.T) {
	b := ComputeBreakdown(d("4000"), d("26"), 0, employee.MaritalStatusSingle, decimal.Zero)

	// The solved gross must net back to the base salary.
	assert.True(t, b.Net.Sub(d("4000")).Abs().LessThanOrEqual(d("0.05")),
		"net %s should match the 4000 target", b.Net)
	assert.True(t, b.Gross.GreaterThan(b.Net))

	// No seniority: base equals gross.
	assert.True(t, b.SeniorityAmount.IsZero())
	assert.True(t, b.Base.Equal(b.Gross))

	// 26 days at 8 hours.
	assert.True(t, d("208").Equal(b.Hours))
	assert.True(t, b.HourlyRate.IsPositive())
}

func TestComputeBreakdown_Seniority(t *testing.T) {
	rate := d("0.10")
	b := ComputeBreakdown(d("4000"), d("26"), 0, employee.MaritalStatusSingle, rate)

	// Gross splits into base plus seniority, with seniority = base * rate.
	sum := b.Base.Add(b.SeniorityAmount)
	assert.True(t, sum.Sub(b.Gross).Abs().LessThanOrEqual(d("0.01")),
		"base %s + seniority %s should equal gross %s", b.Base, b.SeniorityAmount, b.Gross)

	wantSeniority := b.Base.Mul(rate)
	assert.True(t, wantSeniority.Sub(b.SeniorityAmount).Abs().LessThanOrEqual(d("0.01")))
}

func TestComputeBreakdown_PartialMonth(t *testing.T) {
	full := ComputeBreakdown(d("8000"), d("26"), 0, employee.MaritalStatusSingle, decimal.Zero)
	half := ComputeBreakdown(d("8000"), d("13"), 0, employee.MaritalStatusSingle, decimal.Zero)

	// Half a month nets half the salary.
	assert.True(t, half.Net.Sub(d("4000")).Abs().LessThanOrEqual(d("0.05")),
		"net %s should match the 4000 prorated target", half.Net)

	// The half-month gross is solved against the prorated net, so the lighter
	// bracket leaves it below half of the full-month gross.
	twice := half.Gross.Mul(decimal.NewFromInt(2))
	assert.True(t, twice.LessThan(full.Gross),
		"2x half gross %s should undercut full gross %s", twice, full.Gross)
	assert.True(t, d("104").Equal(half.Hours))
}

func TestComputeBreakdown_ZeroDays(t *testing.T) {
	b := ComputeBreakdown(d("4000"), decimal.Zero, 2, employee.MaritalStatusMarried, d("0.05"))

	require.True(t, b.Gross.IsZero())
	require.True(t, b.Net.IsZero())
	require.True(t, b.IR.IsZero())
	require.True(t, b.CNSS.IsZero())
	require.True(t, b.AMO.IsZero())
	require.True(t, b.Hours.IsZero())
	// No hours worked leaves the hourly rate at zero rather than dividing.
	require.True(t, b.HourlyRate.IsZero())
}

func TestComputeBreakdown_NegativeDaysClamp(t *testing.T) {
	b := ComputeBreakdown(d("4000"), d("-5"), 0, employee.MaritalStatusSingle, decimal.Zero)
	assert.True(t, b.Gross.IsZero())
	assert.True(t, b.Hours.IsZero())
}

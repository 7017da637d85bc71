package payroll

import (
	"testing"

	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeContributions(t *testing.T) {
	cases := []struct {
		name       string
		gross      string
		cnss       string
		amo        string
		proFees    string
		taxableNet string
	}{
		{
			name:       "below CNSS ceiling",
			gross:      "5000",
			cnss:       "224",    // 5000 * 0.0448
			amo:        "113",    // 5000 * 0.0226
			proFees:    "1000",   // 5000 * 0.20 < 2500
			taxableNet: "3663",   // 5000 - 224 - 113 - 1000
		},
		{
			name:       "above CNSS ceiling, pro fees capped",
			gross:      "20000",
			cnss:       "268.80", // capped base 6000
			amo:        "452",    // uncapped
			proFees:    "2500",   // capped
			taxableNet: "16779.20",
		},
		{
			name:       "zero gross",
			gross:      "0",
			cnss:       "0",
			amo:        "0",
			proFees:    "0",
			taxableNet: "0",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeContributions(d(c.gross))
			assert.True(t, d(c.cnss).Equal(got.CNSS), "cnss = %s, want %s", got.CNSS, c.cnss)
			assert.True(t, d(c.amo).Equal(got.AMO), "amo = %s, want %s", got.AMO, c.amo)
			assert.True(t, d(c.proFees).Equal(got.ProFees), "pro fees = %s, want %s", got.ProFees, c.proFees)
			assert.True(t, d(c.taxableNet).Equal(got.TaxableNet), "taxable net = %s, want %s", got.TaxableNet, c.taxableNet)
		})
	}
}

func TestComputeIncomeTax_Brackets(t *testing.T) {
	single := employee.MaritalStatusSingle

	cases := []struct {
		taxableNet string
		want       string
	}{
		{"0", "0"},
		{"3000", "0"},          // exempt bracket
		{"3333.33", "0"},       // top of exempt bracket
		{"4000", "66.67"},      // 4000*0.10 - 333.33
		{"6000", "366.67"},     // 6000*0.20 - 833.33
		{"8000", "900.00"},     // 8000*0.30 - 1500
		{"10000", "1566.67"},   // 10000*0.34 - 1833.33
		{"20000", "5116.67"},   // 20000*0.37 - 2283.33
	}

	for _, c := range cases {
		got := ComputeIncomeTax(d(c.taxableNet), 0, single)
		assert.True(t, d(c.want).Equal(got), "tax(%s) = %s, want %s", c.taxableNet, got, c.want)
	}
}

// The scale must be continuous at every bracket boundary: the cumulative
// deductions are built so crossing a boundary never jumps the tax due.
func TestComputeIncomeTax_ContinuousAtBoundaries(t *testing.T) {
	boundaries := []string{"3333.33", "5000.00", "6666.67", "8333.33", "15000.00"}
	step := d("0.01")
	maxJump := d("0.02")

	for _, b := range boundaries {
		at := ComputeIncomeTax(d(b), 0, employee.MaritalStatusSingle)
		above := ComputeIncomeTax(d(b).Add(step), 0, employee.MaritalStatusSingle)
		jump := above.Sub(at).Abs()
		assert.True(t, jump.LessThanOrEqual(maxJump), "discontinuity at %s: jump %s", b, jump)
	}
}

func TestComputeIncomeTax_FamilyRelief(t *testing.T) {
	taxableNet := d("10000")
	noRelief := ComputeIncomeTax(taxableNet, 0, employee.MaritalStatusSingle)

	// Married adds one unit on top of the children.
	married2 := ComputeIncomeTax(taxableNet, 2, employee.MaritalStatusMarried)
	wantRelief := d("41.67").Mul(d("3"))
	assert.True(t, noRelief.Sub(married2).Equal(wantRelief), "married+2 relief = %s, want %s", noRelief.Sub(married2), wantRelief)

	// Widowed status carries no marriage unit.
	widowed2 := ComputeIncomeTax(taxableNet, 2, employee.MaritalStatusWidowed)
	assert.True(t, noRelief.Sub(widowed2).Equal(d("41.67").Mul(d("2"))))
}

func TestComputeIncomeTax_FamilyReliefCap(t *testing.T) {
	taxableNet := d("10000")
	noRelief := ComputeIncomeTax(taxableNet, 0, employee.MaritalStatusSingle)

	// Relief never exceeds six units however many children are declared.
	capped := ComputeIncomeTax(taxableNet, 100, employee.MaritalStatusMarried)
	maxRelief := d("41.67").Mul(d("6"))
	assert.True(t, noRelief.Sub(capped).Equal(maxRelief), "relief = %s, want cap %s", noRelief.Sub(capped), maxRelief)

	// Single with 100 children hits the same six-unit cap.
	cappedSingle := ComputeIncomeTax(taxableNet, 100, employee.MaritalStatusSingle)
	assert.True(t, noRelief.Sub(cappedSingle).Equal(maxRelief))
}

func TestComputeIncomeTax_NeverNegative(t *testing.T) {
	// Low taxable net with maximum relief must clamp at zero.
	got := ComputeIncomeTax(d("3500"), 6, employee.MaritalStatusMarried)
	assert.True(t, got.Equal(decimal.Zero), "tax = %s, want 0", got)

	got = ComputeIncomeTax(d("-100"), 0, employee.MaritalStatusSingle)
	assert.True(t, got.Equal(decimal.Zero))
}

func TestGrossToNet_Scenario(t *testing.T) {
	// gross 10000, married, 2 children:
	// cnss 268.80 (capped base), amo 226, pro fees 2000,
	// taxable net 7505.20 -> bracket 30%: 751.56 gross tax,
	// relief 3*41.67 = 125.01 -> tax 626.55 -> net 8878.65.
	net := GrossToNet(d("10000"), 2, employee.MaritalStatusMarried)
	diff := net.Sub(d("8878.65")).Abs()
	require.True(t, diff.LessThanOrEqual(d("0.05")), "net = %s, want 8878.65 +-0.05", net)
}

func TestGrossToNet_Monotonic(t *testing.T) {
	// Non-decreasing over a dense sample of [0, 200000]; bisection relies
	// on this.
	statuses := []employee.MaritalStatus{
		employee.MaritalStatusSingle,
		employee.MaritalStatusMarried,
		employee.MaritalStatusWidowed,
	}
	step := d("137.50")

	for _, status := range statuses {
		prev := GrossToNet(decimal.Zero, 3, status)
		for gross := step; gross.LessThanOrEqual(d("200000")); gross = gross.Add(step) {
			net := GrossToNet(gross, 3, status)
			require.True(t, net.GreaterThanOrEqual(prev),
				"net decreased at gross %s (status %s): %s < %s", gross, status, net, prev)
			prev = net
		}
	}
}

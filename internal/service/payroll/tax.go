package payroll

import (
	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/fournilsoft/backoffice-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Statutory rates for the Moroccan monthly payroll scale.
var (
	cnssCeiling    = decimal.NewFromInt(6000)
	cnssRate       = decimal.RequireFromString("0.0448")
	amoRate        = decimal.RequireFromString("0.0226")
	proFeesRate    = decimal.RequireFromString("0.20")
	proFeesCeiling = decimal.NewFromInt(2500)

	familyReliefPerUnit = decimal.RequireFromString("41.67")
)

const maxReliefUnits = 6

type taxBracket struct {
	upper     decimal.Decimal
	rate      decimal.Decimal
	deduction decimal.Decimal
}

// Monthly income-tax scale: each bracket carries its rate and the cumulative
// deduction so the tax is a single multiply-subtract. The last bracket has no
// upper bound.
var taxScale = []taxBracket{
	{decimal.RequireFromString("3333.33"), decimal.Zero, decimal.Zero},
	{decimal.RequireFromString("5000.00"), decimal.RequireFromString("0.10"), decimal.RequireFromString("333.33")},
	{decimal.RequireFromString("6666.67"), decimal.RequireFromString("0.20"), decimal.RequireFromString("833.33")},
	{decimal.RequireFromString("8333.33"), decimal.RequireFromString("0.30"), decimal.RequireFromString("1500.00")},
	{decimal.RequireFromString("15000.00"), decimal.RequireFromString("0.34"), decimal.RequireFromString("1833.33")},
	{decimal.Decimal{}, decimal.RequireFromString("0.37"), decimal.RequireFromString("2283.33")},
}

// ComputeIncomeTax returns the monthly income tax due on a taxable net,
// after family relief. Negative inputs are treated as zero; the result is
// never negative.
func ComputeIncomeTax(taxableNet decimal.Decimal, dependentChildren int, status employee.MaritalStatus) decimal.Decimal {
	if taxableNet.IsNegative() {
		taxableNet = decimal.Zero
	}

	bracket := taxScale[len(taxScale)-1]
	for _, b := range taxScale[:len(taxScale)-1] {
		if taxableNet.LessThanOrEqual(b.upper) {
			bracket = b
			break
		}
	}

	grossTax := taxableNet.Mul(bracket.rate).Sub(bracket.deduction)
	if grossTax.IsNegative() {
		grossTax = decimal.Zero
	}

	relief := familyReliefPerUnit.Mul(decimal.NewFromInt(int64(reliefUnits(dependentChildren, status))))
	tax := grossTax.Sub(relief)
	if tax.IsNegative() {
		return decimal.Zero
	}
	return tax
}

// reliefUnits counts family-relief units: one for a married taxpayer plus one
// per dependent child, capped at six units in total.
func reliefUnits(dependentChildren int, status employee.MaritalStatus) int {
	if dependentChildren < 0 {
		dependentChildren = 0
	}

	units := 0
	childCap := maxReliefUnits
	if status == employee.MaritalStatusMarried {
		units = 1
		childCap = maxReliefUnits - 1
	}
	if dependentChildren > childCap {
		dependentChildren = childCap
	}
	units += dependentChildren
	if units > maxReliefUnits {
		units = maxReliefUnits
	}
	return units
}

// ComputeContributions returns the mandatory contributions and the deductible
// professional-expense allowance for a gross salary.
func ComputeContributions(gross decimal.Decimal) payroll.Contributions {
	if gross.IsNegative() {
		gross = decimal.Zero
	}

	cnssBase := gross
	if cnssBase.GreaterThan(cnssCeiling) {
		cnssBase = cnssCeiling
	}
	cnss := cnssBase.Mul(cnssRate)
	amo := gross.Mul(amoRate)

	proFees := gross.Mul(proFeesRate)
	if proFees.GreaterThan(proFeesCeiling) {
		proFees = proFeesCeiling
	}

	taxableNet := gross.Sub(cnss).Sub(amo).Sub(proFees)
	if taxableNet.IsNegative() {
		taxableNet = decimal.Zero
	}

	return payroll.Contributions{
		CNSS:       cnss,
		AMO:        amo,
		ProFees:    proFees,
		TaxableNet: taxableNet,
	}
}

// GrossToNet computes the net salary paid out for a gross salary. It is
// non-decreasing in gross, which the bisection solver relies on.
func GrossToNet(gross decimal.Decimal, dependentChildren int, status employee.MaritalStatus) decimal.Decimal {
	if gross.IsNegative() {
		gross = decimal.Zero
	}
	c := ComputeContributions(gross)
	tax := ComputeIncomeTax(c.TaxableNet, dependentChildren, status)
	return gross.Sub(c.CNSS).Sub(c.AMO).Sub(tax)
}

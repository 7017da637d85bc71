package payroll

import (
	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/fournilsoft/backoffice-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	one         = decimal.NewFromInt(1)
	hoursPerDay = decimal.NewFromInt(8)
)

// ComputeBreakdown produces the accounting view of a payslip for a number of
// worked days. The gross is re-solved from the prorated target net, so a
// partial month is taxed on its own prorated pay rather than prorated after
// the fact from a full-month gross.
func ComputeBreakdown(baseSalaryForMonth, workedDays decimal.Decimal, dependentChildren int, status employee.MaritalStatus, seniorityRate decimal.Decimal) payroll.Breakdown {
	if workedDays.IsNegative() {
		workedDays = decimal.Zero
	}

	targetNet := baseSalaryForMonth.Mul(workedDays).Div(referenceDays)
	gross := SolveGrossForNet(targetNet, dependentChildren, status)

	base := gross.Div(one.Add(seniorityRate))
	seniorityAmount := gross.Sub(base)

	c := ComputeContributions(gross)
	tax := ComputeIncomeTax(c.TaxableNet, dependentChildren, status)
	net := gross.Sub(c.CNSS).Sub(c.AMO).Sub(tax)

	hours := workedDays.Mul(hoursPerDay)
	hourlyRate := decimal.Zero
	if hours.IsPositive() {
		hourlyRate = base.Div(hours)
	}

	return payroll.Breakdown{
		Gross:           gross.Round(2),
		Base:            base.Round(2),
		SeniorityAmount: seniorityAmount.Round(2),
		CNSS:            c.CNSS.Round(2),
		AMO:             c.AMO.Round(2),
		TaxableNet:      c.TaxableNet.Round(2),
		IR:              tax.Round(2),
		Net:             net.Round(2),
		HourlyRate:      hourlyRate.Round(2),
		Hours:           hours,
	}
}

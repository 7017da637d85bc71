package payroll

import (
	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

const solverMaxIterations = 50

var (
	solverTolerance = decimal.RequireFromString("0.01")
	two             = decimal.NewFromInt(2)
)

// SolveGrossForNet finds the gross salary whose net pay equals targetNet, by
// bisection over [targetNet, 2*targetNet]. The upper bound always brackets
// the solution because total deductions stay well under half of gross. The
// search stops once the interval is narrower than 0.01 or after 50
// iterations, returning the interval midpoint either way; it never fails.
// A non-positive target yields zero.
func SolveGrossForNet(targetNet decimal.Decimal, dependentChildren int, status employee.MaritalStatus) decimal.Decimal {
	if targetNet.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	low := targetNet
	high := targetNet.Mul(two)

	for i := 0; i < solverMaxIterations && high.Sub(low).GreaterThan(solverTolerance); i++ {
		mid := low.Add(high).Div(two)
		if GrossToNet(mid, dependentChildren, status).LessThan(targetNet) {
			low = mid
		} else {
			high = mid
		}
	}

	return low.Add(high).Div(two)
}

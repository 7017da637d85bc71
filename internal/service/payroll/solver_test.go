package payroll

import (
	"testing"

	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveGrossForNet_NonPositiveTarget(t *testing.T) {
	assert.True(t, SolveGrossForNet(decimal.Zero, 0, employee.MaritalStatusSingle).Equal(decimal.Zero))
	assert.True(t, SolveGrossForNet(d("-500"), 0, employee.MaritalStatusSingle).Equal(decimal.Zero))
}

func TestSolveGrossForNet_RoundTrip(t *testing.T) {
	// For any gross, solving for its own net must land back on the gross
	// within the bisection tolerance.
	grosses := []string{"1000", "2500", "3333.33", "4500", "6000", "8000", "10000", "15000", "26500", "50000", "120000", "200000"}
	tolerance := d("0.02")

	cases := []struct {
		children int
		status   employee.MaritalStatus
	}{
		{0, employee.MaritalStatusSingle},
		{2, employee.MaritalStatusMarried},
		{6, employee.MaritalStatusMarried},
		{3, employee.MaritalStatusWidowed},
	}

	for _, c := range cases {
		for _, g := range grosses {
			gross := d(g)
			net := GrossToNet(gross, c.children, c.status)
			solved := SolveGrossForNet(net, c.children, c.status)
			diff := solved.Sub(gross).Abs()
			require.True(t, diff.LessThanOrEqual(tolerance),
				"round trip gross %s (children %d, %s): solved %s, diff %s", g, c.children, c.status, solved, diff)
		}
	}
}

func TestSolveGrossForNet_NetMatchesTarget(t *testing.T) {
	targets := []string{"3000", "5505.20", "9362.50", "18000"}
	for _, tgt := range targets {
		target := d(tgt)
		gross := SolveGrossForNet(target, 2, employee.MaritalStatusMarried)
		net := GrossToNet(gross, 2, employee.MaritalStatusMarried)
		diff := net.Sub(target).Abs()
		assert.True(t, diff.LessThanOrEqual(d("0.02")),
			"target %s: solved gross %s gives net %s", tgt, gross, net)
	}
}

func TestSolveGrossForNet_Terminates(t *testing.T) {
	// The iteration cap bounds the search even for extreme inputs.
	gross := SolveGrossForNet(d("99999999"), 0, employee.MaritalStatusSingle)
	assert.True(t, gross.IsPositive())
}

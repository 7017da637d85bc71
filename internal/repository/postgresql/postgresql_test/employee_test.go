package postgresql_test

import (
	"context"
	"testing"

	domainEmployee "github.com/fournilsoft/backoffice-go/internal/domain/employee"
	domainPayroll "github.com/fournilsoft/backoffice-go/internal/domain/payroll"
	"github.com/fournilsoft/backoffice-go/internal/repository/postgresql"
	employeeService "github.com/fournilsoft/backoffice-go/internal/service/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addBonusGrant(t *testing.T, svc domainEmployee.EmployeeService, employeeID, date string, amount int64) {
	t.Helper()

	_, err := svc.AddHistoryEvent(context.Background(), domainEmployee.AddHistoryEventRequest{
		EmployeeID: employeeID,
		Kind:       string(domainEmployee.HistoryKindBonusGrant),
		Date:       date,
		Amount:     decimal.NewFromInt(amount),
	})
	require.NoError(t, err)
}

func TestBonusGrantRecomputesMonthlyPremium(t *testing.T) {
	db := mustTestDB(t)
	truncateTables(t, db)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	svc := employeeService.NewEmployeeService(db, employeeRepo, payrollRepo)

	ctx := context.Background()
	emp := createTestEmployee(t, employeeRepo, "0", "0")

	// Half a month already recorded: the new grant's premium must come out
	// prorated without waiting for another worked-days edit.
	_, err := payrollRepo.UpsertMonthlyData(ctx, domainPayroll.MonthlyData{
		EmployeeID: emp.ID,
		MonthKey:   "AVRIL_2024",
		WorkedDays: decimal.NewFromInt(13),
	})
	require.NoError(t, err)

	addBonusGrant(t, svc, emp.ID, "2024-04-01", 500)

	data, err := payrollRepo.GetMonthlyData(ctx, emp.ID, "AVRIL_2024")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(250).Equal(data.RegularBonus), "premium %s", data.RegularBonus)
}

func TestBonusGrantMidMonthTakesEffectNextMonth(t *testing.T) {
	db := mustTestDB(t)
	truncateTables(t, db)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	svc := employeeService.NewEmployeeService(db, employeeRepo, payrollRepo)

	ctx := context.Background()
	emp := createTestEmployee(t, employeeRepo, "0", "0")

	// Granted on the 10th of May: not in force for May, so June carries the
	// premium, over a freshly defaulted full month.
	addBonusGrant(t, svc, emp.ID, "2024-05-10", 600)

	_, err := payrollRepo.GetMonthlyData(ctx, emp.ID, "MAI_2024")
	assert.ErrorIs(t, err, domainPayroll.ErrMonthlyDataNotFound)

	data, err := payrollRepo.GetMonthlyData(ctx, emp.ID, "JUIN_2024")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(600).Equal(data.RegularBonus), "premium %s", data.RegularBonus)
}

func TestBonusGrantLeavesClosedMonthUntouched(t *testing.T) {
	db := mustTestDB(t)
	truncateTables(t, db)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	svc := employeeService.NewEmployeeService(db, employeeRepo, payrollRepo)

	ctx := context.Background()
	emp := createTestEmployee(t, employeeRepo, "0", "0")

	_, err := payrollRepo.UpsertMonthlyData(ctx, domainPayroll.MonthlyData{
		EmployeeID: emp.ID,
		MonthKey:   "AOUT_2024",
		WorkedDays: decimal.NewFromInt(26),
	})
	require.NoError(t, err)
	require.NoError(t, payrollRepo.MarkPeriodClosed(ctx, "AOUT_2024"))

	// The grant itself is recorded, the closed month's premium is not.
	addBonusGrant(t, svc, emp.ID, "2024-08-01", 400)

	history, err := employeeRepo.GetHistory(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)

	data, err := payrollRepo.GetMonthlyData(ctx, emp.ID, "AOUT_2024")
	require.NoError(t, err)
	assert.True(t, data.RegularBonus.IsZero(), "premium %s", data.RegularBonus)
}

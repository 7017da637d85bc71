package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/fournilsoft/backoffice-go/internal/domain/ledger"
	"github.com/fournilsoft/backoffice-go/internal/domain/payroll"
	"github.com/fournilsoft/backoffice-go/internal/pkg/database"
	"github.com/fournilsoft/backoffice-go/internal/pkg/monthkey"
	"github.com/fournilsoft/backoffice-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	ledgerRepo   ledger.LedgerRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	ledgerRepo ledger.LedgerRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// ========== MONTHLY DATA ==========

func (s *PayrollServiceImpl) GetMonthlyData(ctx context.Context, employeeID, monthKey string) (payroll.MonthlyDataResponse, error) {
	key, err := monthkey.Parse(monthKey)
	if err != nil {
		return payroll.MonthlyDataResponse{}, fmt.Errorf("%w: %v", payroll.ErrInvalidMonthKey, err)
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return payroll.MonthlyDataResponse{}, err
	}

	data, err := s.loadOrDefaultMonthlyData(ctx, employeeID, key)
	if err != nil {
		return payroll.MonthlyDataResponse{}, err
	}

	return mapToMonthlyDataResponse(data), nil
}

func (s *PayrollServiceImpl) UpdateMonthlyData(ctx context.Context, req payroll.UpdateMonthlyDataRequest) (payroll.MonthlyDataResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.MonthlyDataResponse{}, err
	}

	key, err := monthkey.Parse(req.MonthKey)
	if err != nil {
		return payroll.MonthlyDataResponse{}, fmt.Errorf("%w: %v", payroll.ErrInvalidMonthKey, err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.MonthlyDataResponse{}, err
	}

	data, err := s.loadOrDefaultMonthlyData(ctx, req.EmployeeID, key)
	if err != nil {
		return payroll.MonthlyDataResponse{}, err
	}
	if data.IsClosed {
		return payroll.MonthlyDataResponse{}, payroll.ErrMonthClosed
	}

	// The period flag wins even when the per-employee entry predates the close.
	period, err := s.payrollRepo.GetPeriod(ctx, key.String())
	if err != nil && !errors.Is(err, payroll.ErrPeriodNotFound) {
		return payroll.MonthlyDataResponse{}, err
	}
	if period.IsClosed {
		return payroll.MonthlyDataResponse{}, payroll.ErrMonthClosed
	}

	workedDaysChanged := false
	if req.WorkedDays != nil {
		workedDaysChanged = !req.WorkedDays.Equal(data.WorkedDays)
		data.WorkedDays = *req.WorkedDays
	}
	if req.OvertimeHours != nil {
		data.OvertimeHours = *req.OvertimeHours
	}
	if req.RegularBonus != nil {
		data.RegularBonus = *req.RegularBonus
	}
	if req.OccasionalBonus != nil {
		data.OccasionalBonus = *req.OccasionalBonus
	}
	if req.Advances != nil {
		data.Advances = *req.Advances
	}
	if req.LoanDeduction != nil {
		data.LoanDeduction = *req.LoanDeduction
	}
	if req.IsPaid != nil {
		data.IsPaid = *req.IsPaid
	}

	// Worked-days edits re-prorate the flat bonus unless the caller set it
	// explicitly in the same request.
	if workedDaysChanged && req.RegularBonus == nil {
		history, err := s.employeeRepo.GetHistory(ctx, emp.ID)
		if err != nil {
			return payroll.MonthlyDataResponse{}, err
		}
		flatBonus := EffectiveFlatBonus(history, key)
		data.RegularBonus = ProrateFlatBonus(flatBonus, data.WorkedDays)
	}

	updated, err := s.payrollRepo.UpsertMonthlyData(ctx, data)
	if err != nil {
		return payroll.MonthlyDataResponse{}, err
	}

	return mapToMonthlyDataResponse(updated), nil
}

func (s *PayrollServiceImpl) loadOrDefaultMonthlyData(ctx context.Context, employeeID string, key monthkey.Key) (payroll.MonthlyData, error) {
	data, err := s.payrollRepo.GetMonthlyData(ctx, employeeID, key.String())
	if err != nil {
		if errors.Is(err, payroll.ErrMonthlyDataNotFound) {
			return payroll.DefaultMonthlyData(employeeID, key.String(), key.Year), nil
		}
		return payroll.MonthlyData{}, err
	}
	return data, nil
}

// ========== PAYSLIPS ==========

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, employeeID, monthKey string) (payroll.PayslipResponse, error) {
	key, err := monthkey.Parse(monthKey)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("%w: %v", payroll.ErrInvalidMonthKey, err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	history, err := s.employeeRepo.GetHistory(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	data, err := s.loadOrDefaultMonthlyData(ctx, employeeID, key)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return s.buildPayslip(emp, history, data, key), nil
}

func (s *PayrollServiceImpl) buildPayslip(emp employee.Employee, history []employee.HistoryEvent, data payroll.MonthlyData, key monthkey.Key) payroll.PayslipResponse {
	baseSalary := EffectiveBaseSalary(history, emp.Contract.BaseSalary, key)
	rate := SeniorityRate(emp.Contract.HireDate, emp.Contract.SeniorityReferenceDate(time.Now()))
	b := ComputeBreakdown(baseSalary, data.WorkedDays, emp.DependentChildren, emp.MaritalStatus, rate)

	return payroll.PayslipResponse{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FirstName + " " + emp.LastName,
		MonthKey:        key.String(),
		WorkedDays:      data.WorkedDays,
		Gross:           b.Gross,
		Base:            b.Base,
		SeniorityRate:   rate,
		SeniorityAmount: b.SeniorityAmount,
		CNSS:            b.CNSS,
		AMO:             b.AMO,
		TaxableNet:      b.TaxableNet,
		IR:              b.IR,
		Net:             b.Net,
		HourlyRate:      b.HourlyRate,
		Hours:           b.Hours,
	}
}

// ========== PERIODS ==========

func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, monthKey string) (payroll.PeriodResponse, error) {
	key, err := monthkey.Parse(monthKey)
	if err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("%w: %v", payroll.ErrInvalidMonthKey, err)
	}

	period, err := s.payrollRepo.GetPeriod(ctx, key.String())
	if err != nil {
		if errors.Is(err, payroll.ErrPeriodNotFound) {
			// A period nobody closed yet is simply open.
			return payroll.PeriodResponse{MonthKey: key.String(), IsClosed: false}, nil
		}
		return payroll.PeriodResponse{}, err
	}

	var closedAt *string
	if period.ClosedAt != nil {
		str := period.ClosedAt.Format(time.RFC3339)
		closedAt = &str
	}

	return payroll.PeriodResponse{
		MonthKey: period.MonthKey,
		IsClosed: period.IsClosed,
		ClosedAt: closedAt,
	}, nil
}

func (s *PayrollServiceImpl) GetPeriodSummary(ctx context.Context, monthKey string) (payroll.PeriodSummaryResponse, error) {
	key, err := monthkey.Parse(monthKey)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, fmt.Errorf("%w: %v", payroll.ErrInvalidMonthKey, err)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	summary := payroll.PeriodSummaryResponse{
		MonthKey:        key.String(),
		TotalGross:      decimal.Zero,
		TotalNet:        decimal.Zero,
		TotalCNSS:       decimal.Zero,
		TotalAMO:        decimal.Zero,
		TotalIR:         decimal.Zero,
		TotalAdvances:   decimal.Zero,
		TotalLoanDeduct: decimal.Zero,
	}

	for _, emp := range employees {
		history, err := s.employeeRepo.GetHistory(ctx, emp.ID)
		if err != nil {
			return payroll.PeriodSummaryResponse{}, err
		}
		data, err := s.loadOrDefaultMonthlyData(ctx, emp.ID, key)
		if err != nil {
			return payroll.PeriodSummaryResponse{}, err
		}

		slip := s.buildPayslip(emp, history, data, key)
		summary.EmployeeCount++
		summary.TotalGross = summary.TotalGross.Add(slip.Gross)
		summary.TotalNet = summary.TotalNet.Add(slip.Net)
		summary.TotalCNSS = summary.TotalCNSS.Add(slip.CNSS)
		summary.TotalAMO = summary.TotalAMO.Add(slip.AMO)
		summary.TotalIR = summary.TotalIR.Add(slip.IR)
		summary.TotalAdvances = summary.TotalAdvances.Add(data.Advances)
		summary.TotalLoanDeduct = summary.TotalLoanDeduct.Add(data.LoanDeduction)
	}

	return summary, nil
}

// ClosePeriod locks the month, applies loan repayments, records the cash
// movements in the ledger and seeds the next month's entries. Everything runs
// in one transaction so a failing ledger write rolls the whole close back.
func (s *PayrollServiceImpl) ClosePeriod(ctx context.Context, req payroll.ClosePeriodRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	key, err := monthkey.Parse(req.MonthKey)
	if err != nil {
		return fmt.Errorf("%w: %v", payroll.ErrInvalidMonthKey, err)
	}
	nextKey := key.Next()

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Compare-and-set: fails when the period is already closed, so a
		// repeated close can never double-apply loan deductions.
		if err := s.payrollRepo.MarkPeriodClosed(txCtx, key.String()); err != nil {
			return err
		}

		if err := s.payrollRepo.SetMonthClosed(txCtx, key.String(), true); err != nil {
			return err
		}

		employees, err := s.employeeRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}

		nextEntries := make([]payroll.MonthlyData, 0, len(employees))
		for _, emp := range employees {
			data, err := s.loadOrDefaultMonthlyData(txCtx, emp.ID, key)
			if err != nil {
				return err
			}

			if data.LoanDeduction.IsPositive() {
				applied := data.LoanDeduction
				if remaining := emp.Credit.Remaining(); applied.GreaterThan(remaining) {
					applied = remaining
				}
				if applied.IsPositive() {
					credit := emp.Credit
					credit.Repaid = credit.Repaid.Add(applied)
					if err := s.employeeRepo.UpdateCredit(txCtx, emp.ID, credit); err != nil {
						return err
					}
				}
				// Persist the amount actually applied so a reopen can
				// reverse it exactly.
				if !applied.Equal(data.LoanDeduction) {
					data.LoanDeduction = applied
					if _, err := s.payrollRepo.UpsertMonthlyData(txCtx, data); err != nil {
						return err
					}
				}
			}

			nextEntries = append(nextEntries, payroll.DefaultMonthlyData(emp.ID, nextKey.String(), nextKey.Year))
		}

		if err := s.payrollRepo.EnsureMonthlyData(txCtx, nextEntries); err != nil {
			return err
		}

		label := "Paie " + key.String()
		var txs []ledger.Transaction
		for _, mov := range []struct {
			account ledger.Account
			amount  decimal.Decimal
		}{
			{ledger.AccountBank, req.Bank},
			{ledger.AccountTill, req.Till},
			{ledger.AccountSafe, req.Safe},
		} {
			if mov.amount.IsZero() {
				continue
			}
			txs = append(txs, ledger.Transaction{
				MonthKey: key.String(),
				Account:  mov.account,
				Label:    label,
				Amount:   mov.amount,
			})
		}
		if len(txs) > 0 {
			if err := s.ledgerRepo.RecordTransactions(txCtx, txs); err != nil {
				return fmt.Errorf("failed to record ledger transactions: %w", err)
			}
		}

		return nil
	})
}

// ReopenPeriod undoes a close: unlocks the month, gives back the loan
// repayments applied at close time and deletes the period's ledger
// transactions. Reopening an already-open period is a no-op.
func (s *PayrollServiceImpl) ReopenPeriod(ctx context.Context, monthKey string) error {
	key, err := monthkey.Parse(monthKey)
	if err != nil {
		return fmt.Errorf("%w: %v", payroll.ErrInvalidMonthKey, err)
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		wasClosed, err := s.payrollRepo.MarkPeriodOpen(txCtx, key.String())
		if err != nil {
			return err
		}
		if !wasClosed {
			// Already open: retrying a reopen must not double-reverse.
			return nil
		}

		if err := s.payrollRepo.SetMonthClosed(txCtx, key.String(), false); err != nil {
			return err
		}

		entries, err := s.payrollRepo.ListMonthlyDataForMonth(txCtx, key.String())
		if err != nil {
			return err
		}
		for _, data := range entries {
			if !data.LoanDeduction.IsPositive() {
				continue
			}
			emp, err := s.employeeRepo.GetByID(txCtx, data.EmployeeID)
			if err != nil {
				return err
			}
			credit := emp.Credit
			credit.Repaid = credit.Repaid.Sub(data.LoanDeduction)
			if credit.Repaid.IsNegative() {
				credit.Repaid = decimal.Zero
			}
			if err := s.employeeRepo.UpdateCredit(txCtx, emp.ID, credit); err != nil {
				return err
			}
		}

		if err := s.ledgerRepo.DeleteByMonth(txCtx, key.String()); err != nil {
			return fmt.Errorf("failed to delete ledger transactions: %w", err)
		}

		return nil
	})
}

// ========== HELPERS ==========

func mapToMonthlyDataResponse(data payroll.MonthlyData) payroll.MonthlyDataResponse {
	return payroll.MonthlyDataResponse{
		EmployeeID:      data.EmployeeID,
		MonthKey:        data.MonthKey,
		WorkedDays:      data.WorkedDays,
		OvertimeHours:   data.OvertimeHours,
		RegularBonus:    data.RegularBonus,
		OccasionalBonus: data.OccasionalBonus,
		Advances:        data.Advances,
		LoanDeduction:   data.LoanDeduction,
		IsPaid:          data.IsPaid,
		IsClosed:        data.IsClosed,
	}
}

package postgresql

import (
	"context"

	"github.com/fournilsoft/backoffice-go/internal/domain/payroll"
	"github.com/fournilsoft/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const monthlyDataColumns = `id, employee_id, month_key, worked_days, overtime_hours, regular_bonus,
		occasional_bonus, advances, loan_deduction, is_paid, is_closed, created_at, updated_at`

func scanMonthlyData(row pgx.Row) (payroll.MonthlyData, error) {
	var data payroll.MonthlyData
	err := row.Scan(
		&data.ID, &data.EmployeeID, &data.MonthKey,
		&data.WorkedDays, &data.OvertimeHours, &data.RegularBonus,
		&data.OccasionalBonus, &data.Advances, &data.LoanDeduction,
		&data.IsPaid, &data.IsClosed, &data.CreatedAt, &data.UpdatedAt,
	)
	return data, err
}

// GetMonthlyData implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetMonthlyData(ctx context.Context, employeeID, monthKey string) (payroll.MonthlyData, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + monthlyDataColumns + ` FROM payroll_monthly_data WHERE employee_id = $1 AND month_key = $2`

	data, err := scanMonthlyData(q.QueryRow(ctx, query, employeeID, monthKey))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.MonthlyData{}, payroll.ErrMonthlyDataNotFound
		}
		return payroll.MonthlyData{}, err
	}
	return data, nil
}

// UpsertMonthlyData implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpsertMonthlyData(ctx context.Context, data payroll.MonthlyData) (payroll.MonthlyData, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_monthly_data (
			employee_id, month_key, worked_days, overtime_hours, regular_bonus,
			occasional_bonus, advances, loan_deduction, is_paid, is_closed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, month_key) DO UPDATE SET
			worked_days = EXCLUDED.worked_days,
			overtime_hours = EXCLUDED.overtime_hours,
			regular_bonus = EXCLUDED.regular_bonus,
			occasional_bonus = EXCLUDED.occasional_bonus,
			advances = EXCLUDED.advances,
			loan_deduction = EXCLUDED.loan_deduction,
			is_paid = EXCLUDED.is_paid,
			is_closed = EXCLUDED.is_closed,
			updated_at = NOW()
		RETURNING ` + monthlyDataColumns

	return scanMonthlyData(q.QueryRow(ctx, query,
		data.EmployeeID, data.MonthKey, data.WorkedDays, data.OvertimeHours, data.RegularBonus,
		data.OccasionalBonus, data.Advances, data.LoanDeduction, data.IsPaid, data.IsClosed,
	))
}

// ListMonthlyDataForMonth implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListMonthlyDataForMonth(ctx context.Context, monthKey string) ([]payroll.MonthlyData, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + monthlyDataColumns + ` FROM payroll_monthly_data WHERE month_key = $1`

	rows, err := q.Query(ctx, query, monthKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []payroll.MonthlyData
	for rows.Next() {
		data, err := scanMonthlyData(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, data)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// EnsureMonthlyData implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) EnsureMonthlyData(ctx context.Context, entries []payroll.MonthlyData) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_monthly_data (
			employee_id, month_key, worked_days, overtime_hours, regular_bonus,
			occasional_bonus, advances, loan_deduction, is_paid, is_closed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, month_key) DO NOTHING
	`

	for _, data := range entries {
		_, err := q.Exec(ctx, query,
			data.EmployeeID, data.MonthKey, data.WorkedDays, data.OvertimeHours, data.RegularBonus,
			data.OccasionalBonus, data.Advances, data.LoanDeduction, data.IsPaid, data.IsClosed,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// SetMonthClosed implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) SetMonthClosed(ctx context.Context, monthKey string, closed bool) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE payroll_monthly_data SET is_closed = $1, updated_at = NOW() WHERE month_key = $2`,
		closed, monthKey,
	)
	return err
}

// GetPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPeriod(ctx context.Context, monthKey string) (payroll.PeriodStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT month_key, is_closed, closed_at FROM payroll_periods WHERE month_key = $1`

	var period payroll.PeriodStatus
	err := q.QueryRow(ctx, query, monthKey).Scan(&period.MonthKey, &period.IsClosed, &period.ClosedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PeriodStatus{}, payroll.ErrPeriodNotFound
		}
		return payroll.PeriodStatus{}, err
	}

	return period, nil
}

// MarkPeriodClosed implements payroll.PayrollRepository. The insert-or-update
// only succeeds when the period row is still open, so two concurrent closes
// cannot both win.
func (r *payrollRepositoryImpl) MarkPeriodClosed(ctx context.Context, monthKey string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (month_key, is_closed, closed_at)
		VALUES ($1, TRUE, NOW())
		ON CONFLICT (month_key) DO UPDATE
			SET is_closed = TRUE, closed_at = NOW()
			WHERE payroll_periods.is_closed = FALSE
	`

	tag, err := q.Exec(ctx, query, monthKey)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPeriodAlreadyClosed
	}
	return nil
}

// MarkPeriodOpen implements payroll.PayrollRepository. The returned bool
// reports whether the period really was closed, so an idempotent reopen can
// skip the reversal work.
func (r *payrollRepositoryImpl) MarkPeriodOpen(ctx context.Context, monthKey string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET is_closed = FALSE, closed_at = NULL
		WHERE month_key = $1 AND is_closed = TRUE
	`

	tag, err := q.Exec(ctx, query, monthKey)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

package payroll

import "context"

type PayrollRepository interface {
	// Monthly data
	GetMonthlyData(ctx context.Context, employeeID, monthKey string) (MonthlyData, error)
	UpsertMonthlyData(ctx context.Context, data MonthlyData) (MonthlyData, error)
	ListMonthlyDataForMonth(ctx context.Context, monthKey string) ([]MonthlyData, error)
	// EnsureMonthlyData inserts entries that do not exist yet and leaves
	// existing ones untouched.
	EnsureMonthlyData(ctx context.Context, entries []MonthlyData) error
	SetMonthClosed(ctx context.Context, monthKey string, closed bool) error

	// Periods. MarkPeriodClosed is a compare-and-set: it fails with
	// ErrPeriodAlreadyClosed when the period is closed. MarkPeriodOpen
	// reports via its bool return whether the period was actually closed,
	// so a redundant reopen can be treated as a no-op by the caller.
	GetPeriod(ctx context.Context, monthKey string) (PeriodStatus, error)
	MarkPeriodClosed(ctx context.Context, monthKey string) error
	MarkPeriodOpen(ctx context.Context, monthKey string) (bool, error)
}

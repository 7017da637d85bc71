package payroll

import "context"

type PayrollService interface {
	// Monthly data
	GetMonthlyData(ctx context.Context, employeeID, monthKey string) (MonthlyDataResponse, error)
	UpdateMonthlyData(ctx context.Context, req UpdateMonthlyDataRequest) (MonthlyDataResponse, error)

	// Payslips
	GetPayslip(ctx context.Context, employeeID, monthKey string) (PayslipResponse, error)

	// Period closing
	GetPeriod(ctx context.Context, monthKey string) (PeriodResponse, error)
	GetPeriodSummary(ctx context.Context, monthKey string) (PeriodSummaryResponse, error)
	ClosePeriod(ctx context.Context, req ClosePeriodRequest) error
	ReopenPeriod(ctx context.Context, monthKey string) error
}

package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyData holds everything entered for one employee in one payroll month.
// Entries are created lazily with DefaultMonthlyData the first time a month is
// read, and become immutable once the period is closed.
type MonthlyData struct {
	ID              string
	EmployeeID      string
	MonthKey        string
	WorkedDays      decimal.Decimal
	OvertimeHours   decimal.Decimal
	RegularBonus    decimal.Decimal
	OccasionalBonus decimal.Decimal
	Advances        decimal.Decimal
	LoanDeduction   decimal.Decimal
	IsPaid          bool
	IsClosed        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Payroll months before 2026 default to a full 26-day month; from 2026 onward
// entries start at zero and days are entered explicitly.
const workedDaysPolicyCutoverYear = 2026

// DefaultMonthlyData returns the lazily-initialized entry for a month that has
// never been written.
func DefaultMonthlyData(employeeID, monthKey string, year int) MonthlyData {
	workedDays := decimal.Zero
	if year < workedDaysPolicyCutoverYear {
		workedDays = decimal.NewFromInt(26)
	}
	return MonthlyData{
		EmployeeID:      employeeID,
		MonthKey:        monthKey,
		WorkedDays:      workedDays,
		OvertimeHours:   decimal.Zero,
		RegularBonus:    decimal.Zero,
		OccasionalBonus: decimal.Zero,
		Advances:        decimal.Zero,
		LoanDeduction:   decimal.Zero,
	}
}

// PeriodStatus is the closing state of one payroll month across the company.
type PeriodStatus struct {
	MonthKey string
	IsClosed bool
	ClosedAt *time.Time
}

// CashTotals are the aggregated cash movements recorded in the ledger when a
// period is closed.
type CashTotals struct {
	Bank decimal.Decimal
	Till decimal.Decimal
	Safe decimal.Decimal
}

// Breakdown is the accounting view of one payslip. Field names are the stable
// contract with the export layer: gross, base, seniority amount, CNSS, AMO,
// taxable net, IR, net, hourly rate, hours.
type Breakdown struct {
	Gross           decimal.Decimal
	Base            decimal.Decimal
	SeniorityAmount decimal.Decimal
	CNSS            decimal.Decimal
	AMO             decimal.Decimal
	TaxableNet      decimal.Decimal
	IR              decimal.Decimal
	Net             decimal.Decimal
	HourlyRate      decimal.Decimal
	Hours           decimal.Decimal
}

// Contributions is the statutory deduction set computed from a gross salary.
type Contributions struct {
	CNSS       decimal.Decimal
	AMO        decimal.Decimal
	ProFees    decimal.Decimal
	TaxableNet decimal.Decimal
}

package payroll

import (
	"github.com/fournilsoft/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateMonthlyDataRequest struct {
	EmployeeID      string           `json:"-"`
	MonthKey        string           `json:"-"`
	WorkedDays      *decimal.Decimal `json:"worked_days,omitempty"`
	OvertimeHours   *decimal.Decimal `json:"overtime_hours,omitempty"`
	RegularBonus    *decimal.Decimal `json:"regular_bonus,omitempty"`
	OccasionalBonus *decimal.Decimal `json:"occasional_bonus,omitempty"`
	Advances        *decimal.Decimal `json:"advances,omitempty"`
	LoanDeduction   *decimal.Decimal `json:"loan_deduction,omitempty"`
	IsPaid          *bool            `json:"is_paid,omitempty"`
}

func (r *UpdateMonthlyDataRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkedDays != nil && (r.WorkedDays.IsNegative() || r.WorkedDays.GreaterThan(decimal.NewFromInt(31))) {
		errs = append(errs, validator.ValidationError{Field: "worked_days", Message: "must be between 0 and 31"})
	}
	if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.RegularBonus != nil && r.RegularBonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "regular_bonus", Message: "must be non-negative"})
	}
	if r.OccasionalBonus != nil && r.OccasionalBonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "occasional_bonus", Message: "must be non-negative"})
	}
	if r.Advances != nil && r.Advances.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "advances", Message: "must be non-negative"})
	}
	if r.LoanDeduction != nil && r.LoanDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "loan_deduction", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyDataResponse struct {
	EmployeeID      string          `json:"employee_id"`
	MonthKey        string          `json:"month_key"`
	WorkedDays      decimal.Decimal `json:"worked_days"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	RegularBonus    decimal.Decimal `json:"regular_bonus"`
	OccasionalBonus decimal.Decimal `json:"occasional_bonus"`
	Advances        decimal.Decimal `json:"advances"`
	LoanDeduction   decimal.Decimal `json:"loan_deduction"`
	IsPaid          bool            `json:"is_paid"`
	IsClosed        bool            `json:"is_closed"`
}

// PayslipResponse exposes the accounting breakdown under the stable field
// names the export layer maps on.
type PayslipResponse struct {
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	MonthKey        string          `json:"month_key"`
	WorkedDays      decimal.Decimal `json:"worked_days"`
	Gross           decimal.Decimal `json:"gross"`
	Base            decimal.Decimal `json:"base"`
	SeniorityRate   decimal.Decimal `json:"seniority_rate"`
	SeniorityAmount decimal.Decimal `json:"seniority_amount"`
	CNSS            decimal.Decimal `json:"cnss"`
	AMO             decimal.Decimal `json:"amo"`
	TaxableNet      decimal.Decimal `json:"taxable_net"`
	IR              decimal.Decimal `json:"ir"`
	Net             decimal.Decimal `json:"net"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	Hours           decimal.Decimal `json:"hours"`
}

type ClosePeriodRequest struct {
	MonthKey string          `json:"-"`
	Bank     decimal.Decimal `json:"bank"`
	Till     decimal.Decimal `json:"till"`
	Safe     decimal.Decimal `json:"safe"`
}

func (r *ClosePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Bank.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bank", Message: "must be non-negative"})
	}
	if r.Till.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "till", Message: "must be non-negative"})
	}
	if r.Safe.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "safe", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	MonthKey string  `json:"month_key"`
	IsClosed bool    `json:"is_closed"`
	ClosedAt *string `json:"closed_at,omitempty"`
}

type PeriodSummaryResponse struct {
	MonthKey        string          `json:"month_key"`
	EmployeeCount   int             `json:"employee_count"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalNet        decimal.Decimal `json:"total_net"`
	TotalCNSS       decimal.Decimal `json:"total_cnss"`
	TotalAMO        decimal.Decimal `json:"total_amo"`
	TotalIR         decimal.Decimal `json:"total_ir"`
	TotalAdvances   decimal.Decimal `json:"total_advances"`
	TotalLoanDeduct decimal.Decimal `json:"total_loan_deductions"`
}

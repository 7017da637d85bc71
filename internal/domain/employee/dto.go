package employee

import (
	"github.com/fournilsoft/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Gender            string          `json:"gender"`
	DOB               *string         `json:"dob,omitempty"`
	MaritalStatus     string          `json:"marital_status"`
	DependentChildren int             `json:"dependent_children"`
	HireDate          string          `json:"hire_date"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if r.Gender != string(Male) && r.Gender != string(Female) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "must be 'Male' or 'Female'"})
	}
	if !validator.IsInSlice(r.MaritalStatus, []string{string(MaritalStatusSingle), string(MaritalStatusMarried), string(MaritalStatusWidowed)}) {
		errs = append(errs, validator.ValidationError{Field: "marital_status", Message: "must be 'single', 'married' or 'widowed'"})
	}
	if r.DependentChildren < 0 {
		errs = append(errs, validator.ValidationError{Field: "dependent_children", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string           `json:"-"`
	FirstName         *string          `json:"first_name,omitempty"`
	LastName          *string          `json:"last_name,omitempty"`
	Gender            *string          `json:"gender,omitempty"`
	DOB               *string          `json:"dob,omitempty"`
	MaritalStatus     *string          `json:"marital_status,omitempty"`
	DependentChildren *int             `json:"dependent_children,omitempty"`
	ExitDate          *string          `json:"exit_date,omitempty"`
	BaseSalary        *decimal.Decimal `json:"base_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MaritalStatus != nil && !validator.IsInSlice(*r.MaritalStatus, []string{string(MaritalStatusSingle), string(MaritalStatusMarried), string(MaritalStatusWidowed)}) {
		errs = append(errs, validator.ValidationError{Field: "marital_status", Message: "must be 'single', 'married' or 'widowed'"})
	}
	if r.Gender != nil && *r.Gender != string(Male) && *r.Gender != string(Female) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "must be 'Male' or 'Female'"})
	}
	if r.DependentChildren != nil && *r.DependentChildren < 0 {
		errs = append(errs, validator.ValidationError{Field: "dependent_children", Message: "must be non-negative"})
	}
	if r.ExitDate != nil {
		if _, ok := validator.IsValidDate(*r.ExitDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "exit_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddHistoryEventRequest struct {
	EmployeeID string          `json:"-"`
	Kind       string          `json:"kind"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note,omitempty"`
}

func (r *AddHistoryEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, []string{string(HistoryKindHire), string(HistoryKindRaise), string(HistoryKindBonusGrant), string(HistoryKindPromotion)}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'HIRE', 'RAISE', 'BONUS_GRANT' or 'PROMOTION'"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCreditRequest struct {
	EmployeeID string           `json:"-"`
	LoanAmount *decimal.Decimal `json:"loan_amount,omitempty"`
	Repaid     *decimal.Decimal `json:"repaid,omitempty"`
}

func (r *UpdateCreditRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LoanAmount != nil && r.LoanAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "loan_amount", Message: "must be non-negative"})
	}
	if r.Repaid != nil && r.Repaid.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "repaid", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                string          `json:"id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Gender            string          `json:"gender"`
	DOB               *string         `json:"dob,omitempty"`
	MaritalStatus     string          `json:"marital_status"`
	DependentChildren int             `json:"dependent_children"`
	HireDate          string          `json:"hire_date"`
	ExitDate          *string         `json:"exit_date,omitempty"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	LoanRepaid        decimal.Decimal `json:"loan_repaid"`
	LoanRemaining     decimal.Decimal `json:"loan_remaining"`
}

type HistoryEventResponse struct {
	ID     string          `json:"id"`
	Kind   string          `json:"kind"`
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Note   *string         `json:"note,omitempty"`
}

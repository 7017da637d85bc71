package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	FirstName         string
	LastName          string
	Gender            Gender
	DOB               *time.Time
	MaritalStatus     MaritalStatus
	DependentChildren int
	Contract          Contract
	Credit            CreditInfo
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type MaritalStatus string

const (
	MaritalStatusSingle  MaritalStatus = "single"
	MaritalStatusMarried MaritalStatus = "married"
	MaritalStatusWidowed MaritalStatus = "widowed"
)

// Contract carries the employment dates and the cached current base salary.
// BaseSalary is re-derived from the salary history whenever the timeline
// changes; the per-month effective salary is always computed from the
// timeline, never read from here directly.
type Contract struct {
	HireDate   time.Time
	ExitDate   *time.Time
	BaseSalary decimal.Decimal
}

// SeniorityReferenceDate is "now" for active employees and the exit date for
// terminated ones.
func (c Contract) SeniorityReferenceDate(now time.Time) time.Time {
	if c.ExitDate != nil {
		return *c.ExitDate
	}
	return now
}

// CreditInfo tracks an employee loan. Remaining debt is derived, never stored.
type CreditInfo struct {
	LoanAmount decimal.Decimal
	Repaid     decimal.Decimal
}

func (c CreditInfo) Remaining() decimal.Decimal {
	return c.LoanAmount.Sub(c.Repaid)
}

type HistoryKind string

const (
	HistoryKindHire       HistoryKind = "HIRE"
	HistoryKindRaise      HistoryKind = "RAISE"
	HistoryKindBonusGrant HistoryKind = "BONUS_GRANT"
	HistoryKindPromotion  HistoryKind = "PROMOTION"
)

// HistoryEvent is one entry of the salary-evolution timeline. For HIRE and
// RAISE events Amount is the new monthly base salary; for BONUS_GRANT it is
// the granted flat bonus.
type HistoryEvent struct {
	ID         string
	EmployeeID string
	Kind       HistoryKind
	Date       time.Time
	Amount     decimal.Decimal
	Note       *string
	CreatedAt  time.Time
}

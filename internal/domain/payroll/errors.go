package payroll

import "errors"

var (
	ErrMonthlyDataNotFound = errors.New("monthly data not found")
	ErrMonthClosed         = errors.New("month is closed, entry cannot be modified")
	ErrPeriodAlreadyClosed = errors.New("payroll period already closed")
	ErrPeriodNotFound      = errors.New("payroll period not found")
	ErrInvalidMonthKey     = errors.New("invalid month key")
)

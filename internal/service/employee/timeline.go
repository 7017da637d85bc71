package employee

import (
	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// ensureAnchorEntry synthesizes the hire-date salary snapshot when a raise is
// about to be recorded against a timeline that carries no salary event yet.
// Without it the first raise would erase any trace of what the employee
// earned before. Returns nil when no anchor is needed.
func ensureAnchorEntry(timeline []employee.HistoryEvent, contract employee.Contract, employeeID string, incoming employee.HistoryKind) *employee.HistoryEvent {
	if incoming != employee.HistoryKindRaise {
		return nil
	}
	for _, ev := range timeline {
		if ev.Kind == employee.HistoryKindHire || ev.Kind == employee.HistoryKindRaise {
			return nil
		}
	}
	return &employee.HistoryEvent{
		EmployeeID: employeeID,
		Kind:       employee.HistoryKindHire,
		Date:       contract.HireDate,
		Amount:     contract.BaseSalary,
	}
}

// deriveBaseSalary returns the cached contract salary implied by the
// timeline: the amount of the most recent HIRE or RAISE event, falling back
// to the current value when the timeline carries none.
func deriveBaseSalary(timeline []employee.HistoryEvent, fallback decimal.Decimal) decimal.Decimal {
	var latest *employee.HistoryEvent
	for i := range timeline {
		ev := &timeline[i]
		if ev.Kind != employee.HistoryKindHire && ev.Kind != employee.HistoryKindRaise {
			continue
		}
		if latest == nil || ev.Date.After(latest.Date) {
			latest = ev
		}
	}
	if latest == nil {
		return fallback
	}
	return latest.Amount
}

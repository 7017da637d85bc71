package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error

	// Timeline
	GetHistory(ctx context.Context, employeeID string) ([]HistoryEvent, error)
	AddHistoryEvent(ctx context.Context, event HistoryEvent) (HistoryEvent, error)
	DeleteHistoryEvent(ctx context.Context, id string, employeeID string) error

	// Contract / credit mutations
	UpdateContractBaseSalary(ctx context.Context, employeeID string, amount decimal.Decimal) error
	UpdateCredit(ctx context.Context, employeeID string, credit CreditInfo) error
}

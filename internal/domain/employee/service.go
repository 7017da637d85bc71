package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error

	// Salary-evolution timeline
	GetHistory(ctx context.Context, employeeID string) ([]HistoryEventResponse, error)
	AddHistoryEvent(ctx context.Context, req AddHistoryEventRequest) (HistoryEventResponse, error)
	DeleteHistoryEvent(ctx context.Context, employeeID, eventID string) error

	// Credit
	UpdateCredit(ctx context.Context, req UpdateCreditRequest) (EmployeeResponse, error)
}

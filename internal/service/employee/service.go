package employee

import (
	"context"
	"errors"
	"time"

	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/fournilsoft/backoffice-go/internal/domain/payroll"
	"github.com/fournilsoft/backoffice-go/internal/pkg/database"
	"github.com/fournilsoft/backoffice-go/internal/pkg/monthkey"
	"github.com/fournilsoft/backoffice-go/internal/pkg/validator"
	"github.com/fournilsoft/backoffice-go/internal/repository/postgresql"
	payrollService "github.com/fournilsoft/backoffice-go/internal/service/payroll"
	"github.com/jackc/pgx/v5"
)

const dateLayout = "2006-01-02"

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	payrollRepo  payroll.PayrollRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository, payrollRepo payroll.PayrollRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		payrollRepo:  payrollRepo,
	}
}

// ========== CRUD ==========

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	emp := employee.Employee{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Gender:            employee.Gender(req.Gender),
		MaritalStatus:     employee.MaritalStatus(req.MaritalStatus),
		DependentChildren: req.DependentChildren,
		Contract: employee.Contract{
			HireDate:   hireDate,
			BaseSalary: req.BaseSalary,
		},
	}
	if req.DOB != nil {
		dob, _ := validator.IsValidDate(*req.DOB)
		emp.DOB = &dob
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapToEmployeeResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Gender != nil {
		emp.Gender = employee.Gender(*req.Gender)
	}
	if req.DOB != nil {
		dob, _ := validator.IsValidDate(*req.DOB)
		emp.DOB = &dob
	}
	if req.MaritalStatus != nil {
		emp.MaritalStatus = employee.MaritalStatus(*req.MaritalStatus)
	}
	if req.DependentChildren != nil {
		emp.DependentChildren = *req.DependentChildren
	}
	if req.ExitDate != nil {
		exit, _ := validator.IsValidDate(*req.ExitDate)
		emp.Contract.ExitDate = &exit
	}
	if req.BaseSalary != nil {
		emp.Contract.BaseSalary = *req.BaseSalary
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

// ========== TIMELINE ==========

func (s *EmployeeServiceImpl) GetHistory(ctx context.Context, employeeID string) ([]employee.HistoryEventResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	history, err := s.employeeRepo.GetHistory(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.HistoryEventResponse, 0, len(history))
	for _, ev := range history {
		responses = append(responses, mapToHistoryEventResponse(ev))
	}
	return responses, nil
}

// AddHistoryEvent appends a timeline entry and keeps the cached contract
// salary in sync with the timeline. The first raise on an empty salary
// history also writes the hire-date anchor snapshot, so both inserts and the
// salary update share one transaction.
func (s *EmployeeServiceImpl) AddHistoryEvent(ctx context.Context, req employee.AddHistoryEventRequest) (employee.HistoryEventResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.HistoryEventResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.HistoryEventResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	event := employee.HistoryEvent{
		EmployeeID: req.EmployeeID,
		Kind:       employee.HistoryKind(req.Kind),
		Date:       date,
		Amount:     req.Amount,
		Note:       req.Note,
	}

	var created employee.HistoryEvent
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		history, err := s.employeeRepo.GetHistory(txCtx, emp.ID)
		if err != nil {
			return err
		}

		if anchor := ensureAnchorEntry(history, emp.Contract, emp.ID, event.Kind); anchor != nil {
			inserted, err := s.employeeRepo.AddHistoryEvent(txCtx, *anchor)
			if err != nil {
				return err
			}
			history = append(history, inserted)
		}

		created, err = s.employeeRepo.AddHistoryEvent(txCtx, event)
		if err != nil {
			return err
		}
		history = append(history, created)

		salary := deriveBaseSalary(history, emp.Contract.BaseSalary)
		if !salary.Equal(emp.Contract.BaseSalary) {
			if err := s.employeeRepo.UpdateContractBaseSalary(txCtx, emp.ID, salary); err != nil {
				return err
			}
		}

		// A fresh grant changes the regularization premium of the month it
		// takes effect in, so the stored monthly entry is recomputed here.
		if event.Kind == employee.HistoryKindBonusGrant {
			return s.reprorateBonusMonth(txCtx, emp.ID, history, event.Date)
		}
		return nil
	})
	if err != nil {
		return employee.HistoryEventResponse{}, err
	}

	return mapToHistoryEventResponse(created), nil
}

func (s *EmployeeServiceImpl) DeleteHistoryEvent(ctx context.Context, employeeID, eventID string) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.employeeRepo.DeleteHistoryEvent(txCtx, eventID, employeeID); err != nil {
			return err
		}

		history, err := s.employeeRepo.GetHistory(txCtx, employeeID)
		if err != nil {
			return err
		}

		salary := deriveBaseSalary(history, emp.Contract.BaseSalary)
		if !salary.Equal(emp.Contract.BaseSalary) {
			return s.employeeRepo.UpdateContractBaseSalary(txCtx, employeeID, salary)
		}
		return nil
	})
}

// reprorateBonusMonth recomputes the regularization premium of the first
// month a bonus grant is in force for. A grant dated after the first of the
// month takes effect the following month. Closed months keep the premium
// they were closed with.
func (s *EmployeeServiceImpl) reprorateBonusMonth(ctx context.Context, employeeID string, history []employee.HistoryEvent, grantDate time.Time) error {
	key := monthkey.FromTime(grantDate)
	if grantDate.After(key.FirstOfMonth()) {
		key = key.Next()
	}

	period, err := s.payrollRepo.GetPeriod(ctx, key.String())
	if err != nil && !errors.Is(err, payroll.ErrPeriodNotFound) {
		return err
	}
	if period.IsClosed {
		return nil
	}

	data, err := s.payrollRepo.GetMonthlyData(ctx, employeeID, key.String())
	if errors.Is(err, payroll.ErrMonthlyDataNotFound) {
		data = payroll.DefaultMonthlyData(employeeID, key.String(), key.Year)
	} else if err != nil {
		return err
	}
	if data.IsClosed {
		return nil
	}

	flatBonus := payrollService.EffectiveFlatBonus(history, key)
	data.RegularBonus = payrollService.ProrateFlatBonus(flatBonus, data.WorkedDays)
	if _, err := s.payrollRepo.UpsertMonthlyData(ctx, data); err != nil {
		return err
	}
	return nil
}

// ========== CREDIT ==========

func (s *EmployeeServiceImpl) UpdateCredit(ctx context.Context, req employee.UpdateCreditRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	credit := emp.Credit
	if req.LoanAmount != nil {
		credit.LoanAmount = *req.LoanAmount
	}
	if req.Repaid != nil {
		credit.Repaid = *req.Repaid
	}

	if err := s.employeeRepo.UpdateCredit(ctx, emp.ID, credit); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.Credit = credit
	return mapToEmployeeResponse(emp), nil
}

// ========== HELPERS ==========

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:                emp.ID,
		FirstName:         emp.FirstName,
		LastName:          emp.LastName,
		Gender:            string(emp.Gender),
		MaritalStatus:     string(emp.MaritalStatus),
		DependentChildren: emp.DependentChildren,
		HireDate:          emp.Contract.HireDate.Format(dateLayout),
		BaseSalary:        emp.Contract.BaseSalary,
		LoanAmount:        emp.Credit.LoanAmount,
		LoanRepaid:        emp.Credit.Repaid,
		LoanRemaining:     emp.Credit.Remaining(),
	}
	if emp.DOB != nil {
		dob := emp.DOB.Format(dateLayout)
		resp.DOB = &dob
	}
	if emp.Contract.ExitDate != nil {
		exit := emp.Contract.ExitDate.Format(dateLayout)
		resp.ExitDate = &exit
	}
	return resp
}

func mapToHistoryEventResponse(ev employee.HistoryEvent) employee.HistoryEventResponse {
	return employee.HistoryEventResponse{
		ID:     ev.ID,
		Kind:   string(ev.Kind),
		Date:   ev.Date.Format(dateLayout),
		Amount: ev.Amount,
		Note:   ev.Note,
	}
}

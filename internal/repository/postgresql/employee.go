package postgresql

import (
	"context"

	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/fournilsoft/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, first_name, last_name, gender, dob, marital_status, dependent_children,
		hire_date, exit_date, base_salary, loan_amount, loan_repaid, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Gender, &emp.DOB,
		&emp.MaritalStatus, &emp.DependentChildren,
		&emp.Contract.HireDate, &emp.Contract.ExitDate, &emp.Contract.BaseSalary,
		&emp.Credit.LoanAmount, &emp.Credit.Repaid,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			first_name, last_name, gender, dob, marital_status, dependent_children,
			hire_date, exit_date, base_salary, loan_amount, loan_repaid
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Gender, emp.DOB, emp.MaritalStatus, emp.DependentChildren,
		emp.Contract.HireDate, emp.Contract.ExitDate, emp.Contract.BaseSalary,
		emp.Credit.LoanAmount, emp.Credit.Repaid,
	))
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, gender = $3, dob = $4, marital_status = $5,
			dependent_children = $6, hire_date = $7, exit_date = $8, base_salary = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Gender, emp.DOB, emp.MaritalStatus,
		emp.DependentChildren, emp.Contract.HireDate, emp.Contract.ExitDate, emp.Contract.BaseSalary,
		emp.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// GetHistory implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetHistory(ctx context.Context, employeeID string) ([]employee.HistoryEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, event_date, amount, note, created_at
		FROM employee_history
		WHERE employee_id = $1
		ORDER BY event_date, created_at
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []employee.HistoryEvent
	for rows.Next() {
		var ev employee.HistoryEvent
		err := rows.Scan(&ev.ID, &ev.EmployeeID, &ev.Kind, &ev.Date, &ev.Amount, &ev.Note, &ev.CreatedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// AddHistoryEvent implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) AddHistoryEvent(ctx context.Context, event employee.HistoryEvent) (employee.HistoryEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_history (employee_id, kind, event_date, amount, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, kind, event_date, amount, note, created_at
	`

	var created employee.HistoryEvent
	err := q.QueryRow(ctx, query, event.EmployeeID, event.Kind, event.Date, event.Amount, event.Note).Scan(
		&created.ID, &created.EmployeeID, &created.Kind, &created.Date, &created.Amount, &created.Note, &created.CreatedAt,
	)
	if err != nil {
		return employee.HistoryEvent{}, err
	}

	return created, nil
}

// DeleteHistoryEvent implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteHistoryEvent(ctx context.Context, id string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_history WHERE id = $1 AND employee_id = $2`, id, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrHistoryEventNotFound
	}
	return nil
}

// UpdateContractBaseSalary implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateContractBaseSalary(ctx context.Context, employeeID string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET base_salary = $1, updated_at = NOW() WHERE id = $2`, amount, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// UpdateCredit implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateCredit(ctx context.Context, employeeID string, credit employee.CreditInfo) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET loan_amount = $1, loan_repaid = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, credit.LoanAmount, credit.Repaid, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

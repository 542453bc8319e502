package postgresql

import (
	"context"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/employee"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, user_id, employee_code, full_name, email, designation, department,
	joining_date, working_hours, scheduled_seconds, is_active, created_at, updated_at
`

func scanEmployee(row interface{ Scan(...any) error }) (employee.Employee, error) {
	var found employee.Employee
	err := row.Scan(
		&found.ID,
		&found.UserID,
		&found.EmployeeCode,
		&found.FullName,
		&found.Email,
		&found.Designation,
		&found.Department,
		&found.JoiningDate,
		&found.WorkingHours,
		&found.ScheduledSeconds,
		&found.IsActive,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return found, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE user_id = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, userID))
}

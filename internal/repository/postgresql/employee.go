package postgresql

import (
	"context"
	"fmt"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/employee"
	"github.com/Vanshahuja1/shrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, company_id, employee_code, full_name, email,
	position, department, join_date, is_active,
	created_at, updated_at
`

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE id = $1 AND company_id = $2
	`, employeeColumns)

	return r.scanOne(q.QueryRow(ctx, query, id, companyID))
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepository) GetByCode(ctx context.Context, code string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE employee_code = $1 AND company_id = $2
	`, employeeColumns)

	return r.scanOne(q.QueryRow(ctx, query, code, companyID))
}

func (r *employeeRepository) scanOne(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName, &emp.Email,
		&emp.Position, &emp.Department, &emp.JoinDate, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, fmt.Errorf("employee not found: %w", err)
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

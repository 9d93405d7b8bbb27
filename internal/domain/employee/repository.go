package employee

import "context"

// EmployeeRepository defines data access for employees. Attendance and report
// services only need lookups; employee CRUD lives elsewhere.
type EmployeeRepository interface {
	// GetByID retrieves an employee with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// GetByCode retrieves an employee by employee code within a company
	GetByCode(ctx context.Context, code string, companyID string) (Employee, error)
}

package employee

import "time"

type Employee struct {
	ID           string
	CompanyID    string
	EmployeeCode string
	FullName     string
	Email        string
	Position     *string
	Department   *string
	JoinDate     *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/user"
	"github.com/Vanshahuja1/shrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.company_id, u.email, u.password_hash, u.role,
			   u.created_at, u.updated_at, e.id
		FROM users u
		LEFT JOIN employees e ON e.email = u.email AND e.company_id = u.company_id
		WHERE u.email = $1
	`

	return r.scanOne(q.QueryRow(ctx, query, email))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.company_id, u.email, u.password_hash, u.role,
			   u.created_at, u.updated_at, e.id
		FROM users u
		LEFT JOIN employees e ON e.email = u.email AND e.company_id = u.company_id
		WHERE u.id = $1
	`

	return r.scanOne(q.QueryRow(ctx, query, id))
}

// GetByEmployeeCode implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	// Login is by employee code, so the employee row drives the lookup here.
	query := `
		SELECT u.id, u.company_id, u.email, u.password_hash, u.role,
			   u.created_at, u.updated_at, e.id
		FROM employees e
		JOIN users u ON u.email = e.email AND u.company_id = e.company_id
		WHERE e.employee_code = $1
	`

	return r.scanOne(q.QueryRow(ctx, query, employeeCode))
}

func (r *userRepositoryImpl) scanOne(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash, &u.Role,
		&u.CreatedAt, &u.UpdatedAt, &u.EmployeeID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, fmt.Errorf("user not found: %w", err)
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

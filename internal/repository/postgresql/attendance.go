package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
	"github.com/Vanshahuja1/shrm-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type punchRecordRepository struct {
	db *database.DB
}

func NewPunchRecordRepository(db *database.DB) attendance.PunchRecordRepository {
	return &punchRecordRepository{db: db}
}

// Create implements attendance.PunchRecordRepository.
func (r *punchRecordRepository) Create(ctx context.Context, record attendance.PunchRecord) (attendance.PunchRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO punch_records (
			id, employee_id, company_id, date,
			punch_in, punch_out, total_hours, break_time_minutes,
			status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.CompanyID,
		record.Date,
		record.PunchIn,
		record.PunchOut,
		record.TotalHours,
		record.BreakTimeMinutes,
		record.Status,
		record.Notes,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.PunchRecord{}, fmt.Errorf("failed to create punch record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.PunchRecordRepository.
func (r *punchRecordRepository) GetByID(ctx context.Context, id string, companyID string) (attendance.PunchRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date,
			   punch_in, punch_out, total_hours, break_time_minutes,
			   status, notes, created_at, updated_at
		FROM punch_records
		WHERE id = $1 AND company_id = $2
	`

	var rec attendance.PunchRecord
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
		&rec.PunchIn, &rec.PunchOut, &rec.TotalHours, &rec.BreakTimeMinutes,
		&rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.PunchRecord{}, fmt.Errorf("punch record not found: %w", err)
		}
		return attendance.PunchRecord{}, fmt.Errorf("failed to get punch record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.PunchRecordRepository.
func (r *punchRecordRepository) Update(ctx context.Context, record attendance.PunchRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punch_records
		SET punch_out = $1,
			total_hours = $2,
			break_time_minutes = $3,
			status = $4,
			notes = $5,
			updated_at = NOW()
		WHERE id = $6 AND company_id = $7
	`

	tag, err := q.Exec(ctx, query,
		record.PunchOut,
		record.TotalHours,
		record.BreakTimeMinutes,
		record.Status,
		record.Notes,
		record.ID,
		record.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update punch record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("punch record not found: %w", pgx.ErrNoRows)
	}

	return nil
}

// GetOpenSession implements attendance.PunchRecordRepository.
func (r *punchRecordRepository) GetOpenSession(ctx context.Context, employeeID string, companyID string) (attendance.PunchRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date,
			   punch_in, punch_out, total_hours, break_time_minutes,
			   status, notes, created_at, updated_at
		FROM punch_records
		WHERE employee_id = $1
		  AND company_id = $2
		  AND punch_in IS NOT NULL
		  AND punch_out IS NULL
		ORDER BY punch_in DESC
		LIMIT 1
	`

	var rec attendance.PunchRecord
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
		&rec.PunchIn, &rec.PunchOut, &rec.TotalHours, &rec.BreakTimeMinutes,
		&rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.PunchRecord{}, fmt.Errorf("no open punch session found: %w", err)
		}
		return attendance.PunchRecord{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return rec, nil
}

// HasPunchedInOn implements attendance.PunchRecordRepository.
func (r *punchRecordRepository) HasPunchedInOn(ctx context.Context, employeeID string, dateLocal string, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM punch_records
			WHERE employee_id = $1
			  AND company_id = $2
			  AND date = $3::date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, companyID, dateLocal).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check punch record existence: %w", err)
	}

	return exists, nil
}

// ListByEmployeeAndRange implements attendance.PunchRecordRepository.
func (r *punchRecordRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]attendance.PunchRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date,
			   punch_in, punch_out, total_hours, break_time_minutes,
			   status, notes, created_at, updated_at
		FROM punch_records
		WHERE employee_id = $1
		  AND company_id = $2
		  AND date >= $3
		  AND date <= $4
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch records: %w", err)
	}
	defer rows.Close()

	var records []attendance.PunchRecord
	for rows.Next() {
		var rec attendance.PunchRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
			&rec.PunchIn, &rec.PunchOut, &rec.TotalHours, &rec.BreakTimeMinutes,
			&rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punch records: %w", err)
	}

	return records, nil
}

// List implements attendance.PunchRecordRepository.
func (r *punchRecordRepository) List(ctx context.Context, filter attendance.RecordFilter, companyID string) ([]attendance.PunchRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE conditions
	conditions := []string{"p.company_id = $1"}
	args := []interface{}{companyID}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, strings.ToLower(*filter.Status))
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("p.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("p.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count query
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM punch_records p WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count punch records: %w", err)
	}

	// Validate sort column
	validSortColumns := map[string]string{
		"date":      "p.date",
		"punch_in":  "p.punch_in",
		"punch_out": "p.punch_out",
		"status":    "p.status",
	}
	sortColumn, ok := validSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "p.date"
	}

	sortOrder := "DESC"
	if strings.ToUpper(filter.SortOrder) == "ASC" {
		sortOrder = "ASC"
	}

	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.company_id, p.date,
			   p.punch_in, p.punch_out, p.total_hours, p.break_time_minutes,
			   p.status, p.notes, p.created_at, p.updated_at,
			   e.full_name
		FROM punch_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punch records: %w", err)
	}
	defer rows.Close()

	var records []attendance.PunchRecord
	for rows.Next() {
		var rec attendance.PunchRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
			&rec.PunchIn, &rec.PunchOut, &rec.TotalHours, &rec.BreakTimeMinutes,
			&rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan punch record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate punch records: %w", err)
	}

	return records, total, nil
}

// Delete implements attendance.PunchRecordRepository.
func (r *punchRecordRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM punch_records WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete punch record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

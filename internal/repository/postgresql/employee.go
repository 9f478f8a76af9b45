package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employee"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// FindByFingerprint implements employee.EmployeeRepository. Matching is
// strict: the template must belong to an enrolled, active employee bound to
// the scanning device.
func (e *employeeRepository) FindByFingerprint(ctx context.Context, deviceID string, fingerID int) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT emp.id, emp.employer_id, emp.emp_code, emp.full_name, emp.email, emp.phone,
			   emp.position, emp.daily_rate, emp.hire_date,
			   emp.shift_type, emp.custom_start_time, emp.custom_end_time,
			   emp.device_id, emp.finger_enrolled, emp.is_active,
			   emp.created_at, emp.updated_at
		FROM employees emp
		JOIN fingerprints f ON f.employee_id = emp.id
		WHERE emp.device_id = $1
		  AND f.finger_id = $2
		  AND emp.finger_enrolled = TRUE
		  AND emp.is_active = TRUE
		LIMIT 1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, deviceID, fingerID).Scan(
		&emp.ID, &emp.EmployerID, &emp.EmpCode, &emp.FullName, &emp.Email, &emp.Phone,
		&emp.Position, &emp.DailyRate, &emp.HireDate,
		&emp.ShiftType, &emp.CustomStartTime, &emp.CustomEndTime,
		&emp.DeviceID, &emp.FingerEnrolled, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to find employee by fingerprint: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employer_id, emp_code, full_name, email, phone,
			   position, daily_rate, hire_date,
			   shift_type, custom_start_time, custom_end_time,
			   device_id, finger_enrolled, is_active,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployerID, &emp.EmpCode, &emp.FullName, &emp.Email, &emp.Phone,
		&emp.Position, &emp.DailyRate, &emp.HireDate,
		&emp.ShiftType, &emp.CustomStartTime, &emp.CustomEndTime,
		&emp.DeviceID, &emp.FingerEnrolled, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	fingerprints, err := e.listFingerprints(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	emp.Fingerprints = fingerprints

	return emp, nil
}

func (e *employeeRepository) listFingerprints(ctx context.Context, employeeID string) ([]employee.Fingerprint, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, finger_id
		FROM fingerprints
		WHERE employee_id = $1
		ORDER BY finger_id ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fingerprints: %w", err)
	}
	defer rows.Close()

	var fingerprints []employee.Fingerprint
	for rows.Next() {
		var f employee.Fingerprint
		if err := rows.Scan(&f.ID, &f.FingerID); err != nil {
			return nil, fmt.Errorf("failed to scan fingerprint: %w", err)
		}
		fingerprints = append(fingerprints, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fingerprints: %w", err)
	}

	return fingerprints, nil
}

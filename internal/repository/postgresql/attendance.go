package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/attendance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, fingerprint_id, device_id, time_in, time_out, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.FingerprintID,
		newAttendance.DeviceID,
		newAttendance.TimeIn,
		newAttendance.TimeOut,
		newAttendance.Status,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, err
	}

	return newAttendance, nil
}

// FindOpenInWindow implements attendance.AttendanceRepository. The row lock
// serializes concurrent scans for the same employee when called inside a
// transaction.
func (a *attendanceRepository) FindOpenInWindow(ctx context.Context, employeeID string, from, to time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, fingerprint_id, device_id, time_in, time_out, status,
			   created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND time_in >= $2
		  AND time_in <= $3
		ORDER BY time_in DESC
		LIMIT 1
		FOR UPDATE
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, from, to).Scan(
		&att.ID, &att.EmployeeID, &att.FingerprintID, &att.DeviceID, &att.TimeIn, &att.TimeOut, &att.Status,
		&att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance in window: %w", err)
	}

	return &att, nil
}

// Close implements attendance.AttendanceRepository.
func (a *attendanceRepository) Close(ctx context.Context, id string, timeOut time.Time) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET time_out = $2, updated_at = NOW()
		WHERE id = $1 AND time_out IS NULL
	`

	result, err := q.Exec(ctx, query, id, timeOut)
	if err != nil {
		return fmt.Errorf("failed to close attendance: %w", err)
	}
	if result.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.fingerprint_id, a.device_id, a.time_in, a.time_out, a.status,
			   a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.FingerprintID, &att.DeviceID, &att.TimeIn, &att.TimeOut, &att.Status,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// ListByEmployer implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployer(ctx context.Context, employerID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.fingerprint_id, a.device_id, a.time_in, a.time_out, a.status,
			   a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE e.employer_id = $1
		ORDER BY a.time_in DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.FingerprintID, &att.DeviceID, &att.TimeIn, &att.TimeOut, &att.Status,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

// ListForPeriod implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, fingerprint_id, device_id, time_in, time_out, status,
			   created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND time_in >= $2
		  AND time_in <= $3
		ORDER BY time_in ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for period: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.FingerprintID, &att.DeviceID, &att.TimeIn, &att.TimeOut, &att.Status,
			&att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

// UpdateTimes implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateTimes(ctx context.Context, id string, timeIn, timeOut *time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET time_in = COALESCE($2, time_in),
			time_out = COALESCE($3, time_out),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, fingerprint_id, device_id, time_in, time_out, status,
				  created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id, timeIn, timeOut).Scan(
		&att.ID, &att.EmployeeID, &att.FingerprintID, &att.DeviceID, &att.TimeIn, &att.TimeOut, &att.Status,
		&att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance times: %w", err)
	}

	return att, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employer"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/database"
)

type employerRepository struct {
	db *database.DB
}

func NewEmployerRepository(db *database.DB) employer.EmployerRepository {
	return &employerRepository{db: db}
}

// Create implements employer.EmployerRepository.
func (e *employerRepository) Create(ctx context.Context, newEmployer employer.Employer) (employer.Employer, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employers (
			name, email, password_hash, company_name, address, contact,
			work_start_time, work_end_time, grace_period_minutes, late_deduc_minutes,
			minutes_threshold_after_late, overtime_threshold_minutes,
			overtime_rate, rdot_rate, rest_day
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployer.Name,
		newEmployer.Email,
		newEmployer.PasswordHash,
		newEmployer.CompanyName,
		newEmployer.Address,
		newEmployer.Contact,
		newEmployer.Policy.WorkStartTime,
		newEmployer.Policy.WorkEndTime,
		newEmployer.Policy.GracePeriodInMinutes,
		newEmployer.Policy.LateDeducInMinutes,
		newEmployer.Policy.MinutesThresholdAfterLate,
		newEmployer.Policy.OvertimeThresholdInMinutes,
		newEmployer.Policy.OvertimeRate,
		newEmployer.Policy.RdotRate,
		newEmployer.Policy.RestDay,
	).Scan(&newEmployer.ID, &newEmployer.CreatedAt, &newEmployer.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employer.Employer{}, employer.ErrEmailExists
		}
		return employer.Employer{}, fmt.Errorf("failed to create employer: %w", err)
	}

	return newEmployer, nil
}

// GetByID implements employer.EmployerRepository.
func (e *employerRepository) GetByID(ctx context.Context, id string) (employer.Employer, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, password_hash, company_name, address, contact,
			   work_start_time, work_end_time, grace_period_minutes, late_deduc_minutes,
			   minutes_threshold_after_late, overtime_threshold_minutes,
			   overtime_rate, rdot_rate, rest_day,
			   created_at, updated_at
		FROM employers
		WHERE id = $1
	`

	var emp employer.Employer
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.PasswordHash, &emp.CompanyName, &emp.Address, &emp.Contact,
		&emp.Policy.WorkStartTime, &emp.Policy.WorkEndTime, &emp.Policy.GracePeriodInMinutes, &emp.Policy.LateDeducInMinutes,
		&emp.Policy.MinutesThresholdAfterLate, &emp.Policy.OvertimeThresholdInMinutes,
		&emp.Policy.OvertimeRate, &emp.Policy.RdotRate, &emp.Policy.RestDay,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employer.Employer{}, employer.ErrEmployerNotFound
		}
		return employer.Employer{}, fmt.Errorf("failed to get employer: %w", err)
	}

	return emp, nil
}

// GetPolicyByEmployeeID implements employer.EmployerRepository.
func (e *employerRepository) GetPolicyByEmployeeID(ctx context.Context, employeeID string) (employer.Policy, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT er.work_start_time, er.work_end_time, er.grace_period_minutes, er.late_deduc_minutes,
			   er.minutes_threshold_after_late, er.overtime_threshold_minutes,
			   er.overtime_rate, er.rdot_rate, er.rest_day
		FROM employers er
		JOIN employees emp ON emp.employer_id = er.id
		WHERE emp.id = $1
	`

	var policy employer.Policy
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&policy.WorkStartTime, &policy.WorkEndTime, &policy.GracePeriodInMinutes, &policy.LateDeducInMinutes,
		&policy.MinutesThresholdAfterLate, &policy.OvertimeThresholdInMinutes,
		&policy.OvertimeRate, &policy.RdotRate, &policy.RestDay,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employer.Policy{}, employer.ErrEmployerNotFound
		}
		return employer.Policy{}, fmt.Errorf("failed to get policy by employee: %w", err)
	}

	return policy, nil
}

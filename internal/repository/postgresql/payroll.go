package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/payroll"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// Create implements payroll.PayrollRepository.
func (p *payrollRepository) Create(ctx context.Context, payslip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payrolls (
			employee_id, period_start, period_end,
			regular_hours, overtime_hours, rdot_hours, total_hours,
			ca_deduction, gross_pay, net_pay, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		payslip.EmployeeID,
		payslip.PeriodStart,
		payslip.PeriodEnd,
		payslip.RegularHours,
		payslip.OvertimeHours,
		payslip.RdotHours,
		payslip.TotalHours,
		payslip.CADeduction,
		payslip.GrossPay,
		payslip.NetPay,
		payslip.Status,
	).Scan(&payslip.ID, &payslip.CreatedAt, &payslip.UpdatedAt)

	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return payslip, nil
}

// GetByID implements payroll.PayrollRepository.
func (p *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT pr.id, pr.employee_id, pr.period_start, pr.period_end,
			   pr.regular_hours, pr.overtime_hours, pr.rdot_hours, pr.total_hours,
			   pr.ca_deduction, pr.gross_pay, pr.net_pay, pr.status,
			   pr.created_at, pr.updated_at,
			   e.full_name AS employee_name
		FROM payrolls pr
		LEFT JOIN employees e ON e.id = pr.employee_id
		WHERE pr.id = $1
	`

	var payslip payroll.Payslip
	err := q.QueryRow(ctx, query, id).Scan(
		&payslip.ID, &payslip.EmployeeID, &payslip.PeriodStart, &payslip.PeriodEnd,
		&payslip.RegularHours, &payslip.OvertimeHours, &payslip.RdotHours, &payslip.TotalHours,
		&payslip.CADeduction, &payslip.GrossPay, &payslip.NetPay, &payslip.Status,
		&payslip.CreatedAt, &payslip.UpdatedAt,
		&payslip.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return payslip, nil
}

// ListByEmployer implements payroll.PayrollRepository.
func (p *payrollRepository) ListByEmployer(ctx context.Context, employerID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT pr.id, pr.employee_id, pr.period_start, pr.period_end,
			   pr.regular_hours, pr.overtime_hours, pr.rdot_hours, pr.total_hours,
			   pr.ca_deduction, pr.gross_pay, pr.net_pay, pr.status,
			   pr.created_at, pr.updated_at,
			   e.full_name AS employee_name
		FROM payrolls pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE e.employer_id = $1
		ORDER BY pr.period_end DESC, pr.created_at DESC
	`

	rows, err := q.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		var payslip payroll.Payslip
		if err := rows.Scan(
			&payslip.ID, &payslip.EmployeeID, &payslip.PeriodStart, &payslip.PeriodEnd,
			&payslip.RegularHours, &payslip.OvertimeHours, &payslip.RdotHours, &payslip.TotalHours,
			&payslip.CADeduction, &payslip.GrossPay, &payslip.NetPay, &payslip.Status,
			&payslip.CreatedAt, &payslip.UpdatedAt,
			&payslip.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, payslip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslips: %w", err)
	}

	return payslips, nil
}

// UpdateStatus implements payroll.PayrollRepository.
func (p *payrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.PayslipStatus) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payrolls
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update payslip status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}

	return nil
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/cashadvance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/database"
)

type cashAdvanceRepository struct {
	db *database.DB
}

func NewCashAdvanceRepository(db *database.DB) cashadvance.CashAdvanceRepository {
	return &cashAdvanceRepository{db: db}
}

// Grant implements cashadvance.CashAdvanceRepository. The balance upsert and
// the ledger append run as one transaction so the two can never diverge.
func (c *cashAdvanceRepository) Grant(ctx context.Context, employeeID string, amount decimal.Decimal, date time.Time) (cashadvance.CashAdvance, error) {
	var advance cashadvance.CashAdvance

	err := WithTransaction(ctx, c.db, func(tx pgx.Tx) error {
		upsert := `
			INSERT INTO cash_advances (employee_id, amount)
			VALUES ($1, $2)
			ON CONFLICT (employee_id)
			DO UPDATE SET amount = cash_advances.amount + EXCLUDED.amount, updated_at = NOW()
			RETURNING id, employee_id, amount, created_at, updated_at
		`

		err := tx.QueryRow(ctx, upsert, employeeID, amount).Scan(
			&advance.ID, &advance.EmployeeID, &advance.Amount, &advance.CreatedAt, &advance.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert cash advance: %w", err)
		}

		appendLog := `
			INSERT INTO cash_advance_logs (cash_advance_id, amount, date)
			VALUES ($1, $2, $3)
		`

		if _, err := tx.Exec(ctx, appendLog, advance.ID, amount, date); err != nil {
			return fmt.Errorf("failed to append cash advance log: %w", err)
		}

		return nil
	})

	if err != nil {
		return cashadvance.CashAdvance{}, err
	}

	return advance, nil
}

// GetBalance implements cashadvance.CashAdvanceRepository.
func (c *cashAdvanceRepository) GetBalance(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT amount
		FROM cash_advances
		WHERE employee_id = $1
	`

	var balance decimal.Decimal
	err := q.QueryRow(ctx, query, employeeID).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get cash advance balance: %w", err)
	}

	return balance, nil
}

// Settle implements cashadvance.CashAdvanceRepository. GREATEST keeps the
// balance from going negative when the deduction exceeds it.
func (c *cashAdvanceRepository) Settle(ctx context.Context, employeeID string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE cash_advances
		SET amount = GREATEST(amount - $2, 0), updated_at = NOW()
		WHERE employee_id = $1
	`

	if _, err := q.Exec(ctx, query, employeeID, amount); err != nil {
		return fmt.Errorf("failed to settle cash advance: %w", err)
	}

	return nil
}

// ListLogsByEmployer implements cashadvance.CashAdvanceRepository.
func (c *cashAdvanceRepository) ListLogsByEmployer(ctx context.Context, employerID string) ([]cashadvance.Log, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT l.id, l.cash_advance_id, l.amount, l.date, l.created_at,
			   ca.employee_id, e.full_name AS employee_name
		FROM cash_advance_logs l
		JOIN cash_advances ca ON ca.id = l.cash_advance_id
		JOIN employees e ON e.id = ca.employee_id
		WHERE e.employer_id = $1
		ORDER BY l.date DESC, l.created_at DESC
	`

	rows, err := q.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash advance logs: %w", err)
	}
	defer rows.Close()

	var logs []cashadvance.Log
	for rows.Next() {
		var l cashadvance.Log
		if err := rows.Scan(
			&l.ID, &l.CashAdvanceID, &l.Amount, &l.Date, &l.CreatedAt,
			&l.EmployeeID, &l.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cash advance log: %w", err)
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cash advance logs: %w", err)
	}

	return logs, nil
}

// ListBalancesByEmployer implements cashadvance.CashAdvanceRepository.
func (c *cashAdvanceRepository) ListBalancesByEmployer(ctx context.Context, employerID string) ([]cashadvance.CashAdvance, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT ca.id, ca.employee_id, ca.amount, ca.created_at, ca.updated_at,
			   e.full_name AS employee_name
		FROM cash_advances ca
		JOIN employees e ON e.id = ca.employee_id
		WHERE e.employer_id = $1
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash advance balances: %w", err)
	}
	defer rows.Close()

	var balances []cashadvance.CashAdvance
	for rows.Next() {
		var ca cashadvance.CashAdvance
		if err := rows.Scan(
			&ca.ID, &ca.EmployeeID, &ca.Amount, &ca.CreatedAt, &ca.UpdatedAt,
			&ca.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cash advance balance: %w", err)
		}
		balances = append(balances, ca)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cash advance balances: %w", err)
	}

	return balances, nil
}

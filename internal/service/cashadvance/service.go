package cashadvance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/cashadvance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employee"
)

type CashAdvanceServiceImpl struct {
	cashAdvanceRepo cashadvance.CashAdvanceRepository
	employeeRepo    employee.EmployeeRepository
	loc             *time.Location
}

func NewCashAdvanceService(
	cashAdvanceRepo cashadvance.CashAdvanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) cashadvance.CashAdvanceService {
	return &CashAdvanceServiceImpl{
		cashAdvanceRepo: cashAdvanceRepo,
		employeeRepo:    employeeRepo,
		loc:             loc,
	}
}

// Grant implements cashadvance.CashAdvanceService.
func (s *CashAdvanceServiceImpl) Grant(ctx context.Context, req cashadvance.GrantCashAdvanceRequest) (cashadvance.CashAdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return cashadvance.CashAdvanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return cashadvance.CashAdvanceResponse{}, employee.ErrEmployeeNotFound
		}
		return cashadvance.CashAdvanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date := time.Now().In(s.loc)
	if req.Date != "" {
		date, _ = time.ParseInLocation("2006-01-02", req.Date, s.loc)
	}

	advance, err := s.cashAdvanceRepo.Grant(ctx, req.EmployeeID, req.Amount, date)
	if err != nil {
		return cashadvance.CashAdvanceResponse{}, fmt.Errorf("failed to grant cash advance: %w", err)
	}

	slog.Info("cash advance granted",
		"employee_id", req.EmployeeID, "amount", req.Amount.String())

	name := emp.FullName
	advance.EmployeeName = &name
	return cashadvance.MapToResponse(advance), nil
}

// ListLogs implements cashadvance.CashAdvanceService.
func (s *CashAdvanceServiceImpl) ListLogs(ctx context.Context, employerID string) ([]cashadvance.LogResponse, error) {
	logs, err := s.cashAdvanceRepo.ListLogsByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash advance logs: %w", err)
	}

	responses := make([]cashadvance.LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, cashadvance.MapLogToResponse(l))
	}
	return responses, nil
}

// ListBalances implements cashadvance.CashAdvanceService.
func (s *CashAdvanceServiceImpl) ListBalances(ctx context.Context, employerID string) ([]cashadvance.CashAdvanceResponse, error) {
	balances, err := s.cashAdvanceRepo.ListBalancesByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash advance balances: %w", err)
	}

	responses := make([]cashadvance.CashAdvanceResponse, 0, len(balances))
	for _, ca := range balances {
		responses = append(responses, cashadvance.MapToResponse(ca))
	}
	return responses, nil
}

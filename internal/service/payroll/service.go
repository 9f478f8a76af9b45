package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/attendance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/cashadvance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employee"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employer"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/payroll"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/database"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/repository/postgresql"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/service/schedule"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/service/timesheet"
)

// Standard divisor for converting a daily rate to an hourly one.
const hoursPerWorkDay = 8

type PayrollServiceImpl struct {
	payrollRepo     payroll.PayrollRepository
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	employerRepo    employer.EmployerRepository
	cashAdvanceRepo cashadvance.CashAdvanceRepository
	resolver        *schedule.Resolver
	classifier      *timesheet.Classifier
	loc             *time.Location

	// transact wraps payslip creation and cash advance settlement in one
	// transaction. Tests swap it for a passthrough.
	transact func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	employerRepo employer.EmployerRepository,
	cashAdvanceRepo cashadvance.CashAdvanceRepository,
	resolver *schedule.Resolver,
	classifier *timesheet.Classifier,
	loc *time.Location,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:     payrollRepo,
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		employerRepo:    employerRepo,
		cashAdvanceRepo: cashAdvanceRepo,
		resolver:        resolver,
		classifier:      classifier,
		loc:             loc,
		transact: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// summarizePeriod fetches and classifies every record whose attendance day
// falls in [startDay, endDay] (inclusive calendar days in the fixed zone).
// A resolver failure yields a zero summary with a warning instead of an
// error, so one misconfigured employee cannot fail a whole report.
func (s *PayrollServiceImpl) summarizePeriod(ctx context.Context, employeeID string, startDay, endDay time.Time) (timesheet.Summary, []attendance.Attendance, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return timesheet.Summary{}, nil, err
	}

	pol, err := s.employerRepo.GetPolicyByEmployeeID(ctx, employeeID)
	if err != nil {
		return timesheet.Summary{}, nil, fmt.Errorf("failed to get employer policy: %w", err)
	}

	win, err := s.resolver.Resolve(emp, pol)
	if err != nil {
		slog.Warn("skipping period summary, shift not resolvable",
			"employee_id", employeeID, "error", err)
		return timesheet.Summary{}, nil, nil
	}

	// Query bounds follow the attendance-day windows of the first and last
	// day, so overnight clock-ins belonging to the first day are included
	// and next-period ones are not.
	from, _ := win.DayWindow(startDay, s.loc)
	_, to := win.DayWindow(endDay, s.loc)

	records, err := s.attendanceRepo.ListForPeriod(ctx, employeeID, from, to)
	if err != nil {
		return timesheet.Summary{}, nil, err
	}

	return s.classifier.Summarize(records, win, pol), records, nil
}

// dayInZone pins a YYYY-MM-DD date string to midnight in the fixed zone.
func (s *PayrollServiceImpl) dayInZone(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, s.loc)
	if err != nil {
		return time.Time{}, payroll.ErrInvalidPeriod
	}
	return t, nil
}

// BuildPeriodSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) BuildPeriodSummary(ctx context.Context, employeeID string, start, end string) (payroll.PeriodSummaryResponse, error) {
	startDay, err := s.dayInZone(start)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}
	endDay, err := s.dayInZone(end)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}
	if endDay.Before(startDay) {
		return payroll.PeriodSummaryResponse{}, payroll.ErrInvalidPeriod
	}

	summary, records, err := s.summarizePeriod(ctx, employeeID, startDay, endDay)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	logs := make([]payroll.AttendanceLog, 0, len(records))
	for _, rec := range records {
		if rec.TimeOut == nil {
			continue
		}
		logs = append(logs, payroll.AttendanceLog{
			TimeIn:  rec.TimeIn.UTC().Format(time.RFC3339),
			TimeOut: rec.TimeOut.UTC().Format(time.RFC3339),
		})
	}

	return payroll.PeriodSummaryResponse{
		TotalHours:     summary.TotalHours,
		RegularHours:   summary.RegularHours,
		OvertimeHours:  summary.OvertimeHours,
		RdotHours:      summary.RdotHours,
		AttendanceLogs: logs,
	}, nil
}

// BuildWeeklySummary implements payroll.PayrollService. Weeks start Monday in
// the fixed zone; weeksAgo 0 is the week containing today.
func (s *PayrollServiceImpl) BuildWeeklySummary(ctx context.Context, employeeID string, weeksAgo int) (payroll.WeeklySummaryResponse, error) {
	if weeksAgo < 0 {
		weeksAgo = 0
	}

	now := time.Now().In(s.loc)
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, s.loc)

	daysSinceMonday := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -daysSinceMonday-7*weeksAgo)
	sunday := monday.AddDate(0, 0, 6)

	summary, _, err := s.summarizePeriod(ctx, employeeID, monday, sunday)
	if err != nil {
		return payroll.WeeklySummaryResponse{}, err
	}

	return payroll.WeeklySummaryResponse{
		WeeklyHours:   summary.WeeklyHours,
		RegularHours:  summary.RegularHours,
		OvertimeHours: summary.OvertimeHours,
		RdotHours:     summary.RdotHours,
	}, nil
}

// CreatePayslip implements payroll.PayrollService. The cash advance deduction
// is capped at the outstanding balance; persisting the payslip and settling
// the advance happen in one transaction.
func (s *PayrollServiceImpl) CreatePayslip(ctx context.Context, req payroll.CreatePayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	startDay, err := s.dayInZone(req.PeriodStart)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	endDay, err := s.dayInZone(req.PeriodEnd)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	pol, err := s.employerRepo.GetPolicyByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to get employer policy: %w", err)
	}

	summary, _, err := s.summarizePeriod(ctx, req.EmployeeID, startDay, endDay)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	hourlyRate := emp.DailyRate.Div(decimal.NewFromInt(hoursPerWorkDay))
	grossPay := decimal.NewFromFloat(summary.RegularHours).Mul(hourlyRate).
		Add(decimal.NewFromFloat(summary.OvertimeHours).Mul(hourlyRate).Mul(pol.OvertimeRate)).
		Add(decimal.NewFromFloat(summary.RdotHours).Mul(hourlyRate).Mul(pol.RdotRate)).
		Round(2)

	balance, err := s.cashAdvanceRepo.GetBalance(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	deduction := req.CADeduction
	if deduction.GreaterThan(balance) {
		deduction = balance
	}
	netPay := grossPay.Sub(deduction).Round(2)

	payslip := payroll.Payslip{
		EmployeeID:    req.EmployeeID,
		PeriodStart:   startDay,
		PeriodEnd:     endDay,
		RegularHours:  summary.RegularHours,
		OvertimeHours: summary.OvertimeHours,
		RdotHours:     summary.RdotHours,
		TotalHours:    summary.TotalHours,
		CADeduction:   deduction,
		GrossPay:      grossPay,
		NetPay:        netPay,
		Status:        payroll.PayslipStatusPending,
	}

	err = s.transact(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err := s.payrollRepo.Create(txCtx, payslip)
		if err != nil {
			return err
		}
		payslip = created

		if deduction.IsPositive() {
			if err := s.cashAdvanceRepo.Settle(txCtx, req.EmployeeID, deduction); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	name := emp.FullName
	payslip.EmployeeName = &name
	return payroll.MapToResponse(payslip), nil
}

// ListByEmployer implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByEmployer(ctx context.Context, employerID string) ([]payroll.PayslipResponse, error) {
	payslips, err := s.payrollRepo.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}

	responses := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, payroll.MapToResponse(p))
	}
	return responses, nil
}

// UpdateStatus implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateStatus(ctx context.Context, req payroll.UpdatePayslipStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.payrollRepo.UpdateStatus(ctx, req.ID, payroll.PayslipStatus(req.Status))
	if err != nil {
		if errors.Is(err, payroll.ErrPayslipNotFound) {
			return payroll.ErrPayslipNotFound
		}
		return fmt.Errorf("failed to update payslip status: %w", err)
	}
	return nil
}

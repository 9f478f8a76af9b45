package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/attendance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/cashadvance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employee"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employer"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/payroll"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/fixtures"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/service/schedule"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/service/timesheet"
)

var testLoc = time.FixedZone("UTC+8", 8*3600)

type fakeEmployeeRepo struct {
	emp employee.Employee
}

func (f *fakeEmployeeRepo) FindByFingerprint(_ context.Context, _ string, _ int) (employee.Employee, error) {
	return f.emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if id != f.emp.ID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.emp, nil
}

type fakeEmployerRepo struct {
	policy employer.Policy
}

func (f *fakeEmployerRepo) Create(_ context.Context, e employer.Employer) (employer.Employer, error) {
	return e, nil
}

func (f *fakeEmployerRepo) GetByID(_ context.Context, _ string) (employer.Employer, error) {
	return employer.Employer{Policy: f.policy}, nil
}

func (f *fakeEmployerRepo) GetPolicyByEmployeeID(_ context.Context, _ string) (employer.Policy, error) {
	return f.policy, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, att)
	return att, nil
}

func (f *fakeAttendanceRepo) FindOpenInWindow(_ context.Context, _ string, _, _ time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Close(_ context.Context, _ string, _ time.Time) error {
	return nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployer(_ context.Context, _ string, _ int) ([]attendance.Attendance, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) ListForPeriod(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.TimeIn.Before(from) && !rec.TimeIn.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) UpdateTimes(_ context.Context, _ string, _, _ *time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

type fakePayrollRepo struct {
	payslips []payroll.Payslip
}

func (f *fakePayrollRepo) Create(_ context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	p.ID = uuid.NewString()
	f.payslips = append(f.payslips, p)
	return p, nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.Payslip, error) {
	for _, p := range f.payslips {
		if p.ID == id {
			return p, nil
		}
	}
	return payroll.Payslip{}, payroll.ErrPayslipNotFound
}

func (f *fakePayrollRepo) ListByEmployer(_ context.Context, _ string) ([]payroll.Payslip, error) {
	return f.payslips, nil
}

func (f *fakePayrollRepo) UpdateStatus(_ context.Context, id string, status payroll.PayslipStatus) error {
	for i := range f.payslips {
		if f.payslips[i].ID == id {
			f.payslips[i].Status = status
			return nil
		}
	}
	return payroll.ErrPayslipNotFound
}

type fakeCashAdvanceRepo struct {
	balance decimal.Decimal
	settled []decimal.Decimal
}

func (f *fakeCashAdvanceRepo) Grant(_ context.Context, employeeID string, amount decimal.Decimal, date time.Time) (cashadvance.CashAdvance, error) {
	f.balance = f.balance.Add(amount)
	return cashadvance.CashAdvance{EmployeeID: employeeID, Amount: f.balance}, nil
}

func (f *fakeCashAdvanceRepo) GetBalance(_ context.Context, _ string) (decimal.Decimal, error) {
	return f.balance, nil
}

func (f *fakeCashAdvanceRepo) Settle(_ context.Context, _ string, amount decimal.Decimal) error {
	f.settled = append(f.settled, amount)
	f.balance = decimal.Max(f.balance.Sub(amount), decimal.Zero)
	return nil
}

func (f *fakeCashAdvanceRepo) ListLogsByEmployer(_ context.Context, _ string) ([]cashadvance.Log, error) {
	return nil, nil
}

func (f *fakeCashAdvanceRepo) ListBalancesByEmployer(_ context.Context, _ string) ([]cashadvance.CashAdvance, error) {
	return nil, nil
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:         "emp-1",
		EmployerID: "employer-1",
		FullName:   "Maria Santos",
		DailyRate:  decimal.NewFromInt(1000),
		ShiftType:  employee.ShiftTypeNormal,
		IsActive:   true,
	}
}

// Week of Monday 2026-03-09; Sunday 2026-03-15 is the default rest day.
func day(dayOfMonth, hour, min int) time.Time {
	return time.Date(2026, time.March, dayOfMonth, hour, min, 0, 0, testLoc)
}

func timePtr(t time.Time) *time.Time { return &t }

func weekRecords() []attendance.Attendance {
	return []attendance.Attendance{
		{EmployeeID: "emp-1", TimeIn: day(9, 8, 0), TimeOut: timePtr(day(9, 17, 0))},   // Monday, 8 regular
		{EmployeeID: "emp-1", TimeIn: day(10, 8, 0), TimeOut: timePtr(day(10, 18, 0))}, // Tuesday, 8 regular + 1 OT
		{EmployeeID: "emp-1", TimeIn: day(15, 8, 0), TimeOut: timePtr(day(15, 17, 0))}, // Sunday, 8 RDOT
	}
}

func newTestService(attRepo *fakeAttendanceRepo, payrollRepo *fakePayrollRepo, cashRepo *fakeCashAdvanceRepo) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		payrollRepo:     payrollRepo,
		attendanceRepo:  attRepo,
		employeeRepo:    &fakeEmployeeRepo{emp: testEmployee()},
		employerRepo:    &fakeEmployerRepo{policy: fixtures.DefaultPolicy()},
		cashAdvanceRepo: cashRepo,
		resolver:        schedule.NewResolver(),
		classifier:      timesheet.NewClassifier(testLoc),
		loc:             testLoc,
		transact: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}
}

func TestBuildPeriodSummary(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: weekRecords()}
	svc := newTestService(attRepo, &fakePayrollRepo{}, &fakeCashAdvanceRepo{})

	summary, err := svc.BuildPeriodSummary(context.Background(), "emp-1", "2026-03-09", "2026-03-15")
	require.NoError(t, err)

	assert.InDelta(t, 16.0, summary.RegularHours, 1e-9)
	assert.InDelta(t, 1.0, summary.OvertimeHours, 1e-9)
	assert.InDelta(t, 8.0, summary.RdotHours, 1e-9)
	assert.InDelta(t, 25.0, summary.TotalHours, 1e-9)
	assert.Len(t, summary.AttendanceLogs, 3)
}

func TestBuildPeriodSummaryInvalidPeriod(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakePayrollRepo{}, &fakeCashAdvanceRepo{})

	_, err := svc.BuildPeriodSummary(context.Background(), "emp-1", "not-a-date", "2026-03-15")
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = svc.BuildPeriodSummary(context.Background(), "emp-1", "2026-03-15", "2026-03-09")
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestBuildPeriodSummaryUnknownEmployee(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakePayrollRepo{}, &fakeCashAdvanceRepo{})

	_, err := svc.BuildPeriodSummary(context.Background(), "missing", "2026-03-09", "2026-03-15")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreatePayslip(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: weekRecords()}
	payrollRepo := &fakePayrollRepo{}
	cashRepo := &fakeCashAdvanceRepo{balance: decimal.NewFromInt(500)}
	svc := newTestService(attRepo, payrollRepo, cashRepo)

	result, err := svc.CreatePayslip(context.Background(), payroll.CreatePayslipRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2026-03-09",
		PeriodEnd:   "2026-03-15",
		CADeduction: decimal.NewFromInt(800),
	})
	require.NoError(t, err)

	// Hourly rate 125: 16 regular + 1 OT at 1.25 + 8 RDOT at 1.3.
	assert.True(t, decimal.NewFromFloat(3456.25).Equal(result.GrossPay), "gross %s", result.GrossPay)

	// Requested 800 but only 500 outstanding.
	assert.True(t, decimal.NewFromInt(500).Equal(result.CADeduction), "deduction %s", result.CADeduction)
	assert.True(t, decimal.NewFromFloat(2956.25).Equal(result.NetPay), "net %s", result.NetPay)
	assert.Equal(t, string(payroll.PayslipStatusPending), result.Status)
	assert.Equal(t, "Maria Santos", result.EmployeeName)

	require.Len(t, payrollRepo.payslips, 1)
	require.Len(t, cashRepo.settled, 1)
	assert.True(t, decimal.NewFromInt(500).Equal(cashRepo.settled[0]))
	assert.True(t, cashRepo.balance.IsZero())
}

func TestCreatePayslipNoDeductionSkipsSettlement(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: weekRecords()}
	cashRepo := &fakeCashAdvanceRepo{}
	svc := newTestService(attRepo, &fakePayrollRepo{}, cashRepo)

	result, err := svc.CreatePayslip(context.Background(), payroll.CreatePayslipRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2026-03-09",
		PeriodEnd:   "2026-03-15",
	})
	require.NoError(t, err)

	assert.True(t, result.CADeduction.IsZero())
	assert.True(t, result.GrossPay.Equal(result.NetPay))
	assert.Empty(t, cashRepo.settled)
}

func TestCreatePayslipValidation(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakePayrollRepo{}, &fakeCashAdvanceRepo{})

	_, err := svc.CreatePayslip(context.Background(), payroll.CreatePayslipRequest{
		EmployeeID:  "",
		PeriodStart: "2026-03-09",
		PeriodEnd:   "2026-03-15",
	})
	assert.Error(t, err)
}

func TestUpdateStatus(t *testing.T) {
	payrollRepo := &fakePayrollRepo{}
	svc := newTestService(&fakeAttendanceRepo{records: weekRecords()}, payrollRepo, &fakeCashAdvanceRepo{})

	created, err := svc.CreatePayslip(context.Background(), payroll.CreatePayslipRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2026-03-09",
		PeriodEnd:   "2026-03-15",
	})
	require.NoError(t, err)

	err = svc.UpdateStatus(context.Background(), payroll.UpdatePayslipStatusRequest{
		ID:     created.ID,
		Status: string(payroll.PayslipStatusReleased),
	})
	require.NoError(t, err)
	assert.Equal(t, payroll.PayslipStatusReleased, payrollRepo.payslips[0].Status)

	err = svc.UpdateStatus(context.Background(), payroll.UpdatePayslipStatusRequest{
		ID:     "missing",
		Status: string(payroll.PayslipStatusReleased),
	})
	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)
}

func TestUpdateStatusValidation(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakePayrollRepo{}, &fakeCashAdvanceRepo{})

	err := svc.UpdateStatus(context.Background(), payroll.UpdatePayslipStatusRequest{
		ID:     "id-1",
		Status: "SHIPPED",
	})
	assert.Error(t, err)
}

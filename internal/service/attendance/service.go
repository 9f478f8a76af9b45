package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/attendance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employee"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employer"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/database"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/repository/postgresql"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/service/schedule"
)

// Debounce for duplicate scans: a second event within this interval of an
// open record is rejected rather than treated as a clock-out.
const minClockInterval = 30 * time.Minute

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	employerRepo   employer.EmployerRepository
	resolver       *schedule.Resolver
	loc            *time.Location

	// transact wraps the lookup+write sequence in a database transaction.
	// Tests swap it for a passthrough.
	transact func(ctx context.Context, fn func(tx pgx.Tx) error) error

	// now is the event clock; stamped once per event.
	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	employerRepo employer.EmployerRepository,
	resolver *schedule.Resolver,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		employerRepo:   employerRepo,
		resolver:       resolver,
		loc:            loc,
		transact: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// HandleClockEvent implements attendance.AttendanceService.
//
// One instant is captured up front and threads through window bucketing,
// debounce and status so the event is judged consistently. The lookup and
// the create/close run inside a single transaction; the row lock plus the
// one-open-record unique constraint make near-simultaneous scans safe.
func (s *AttendanceServiceImpl) HandleClockEvent(ctx context.Context, req attendance.ClockEventRequest) (attendance.ClockEventResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockEventResult{}, err
	}
	now := s.now()

	emp, err := s.employeeRepo.FindByFingerprint(ctx, req.DeviceToken, req.FingerID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.ClockEventResult{}, employee.ErrEmployeeNotFound
		}
		return attendance.ClockEventResult{}, fmt.Errorf("failed to resolve fingerprint: %w", err)
	}

	policy, err := s.employerRepo.GetPolicyByEmployeeID(ctx, emp.ID)
	if err != nil {
		return attendance.ClockEventResult{}, fmt.Errorf("failed to get employer policy: %w", err)
	}

	win, err := s.resolver.Resolve(emp, policy)
	if err != nil {
		return attendance.ClockEventResult{}, fmt.Errorf("failed to resolve shift window: %w", err)
	}

	from, to := win.DayWindow(now, s.loc)

	eventTime := now
	if req.TimeIn != nil {
		eventTime = req.TimeIn.UTC()
	}

	var result attendance.ClockEventResult
	err = s.transact(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.attendanceRepo.FindOpenInWindow(txCtx, emp.ID, from, to)
		if err != nil {
			return fmt.Errorf("failed to look up attendance day: %w", err)
		}

		if existing != nil {
			if existing.TimeOut != nil {
				return attendance.ErrSignedOutAlready
			}
			if eventTime.Sub(existing.TimeIn) < minClockInterval {
				return attendance.ErrSignedInAlready
			}
			if err := s.attendanceRepo.Close(txCtx, existing.ID, eventTime); err != nil {
				return fmt.Errorf("failed to close attendance record: %w", err)
			}
			out := eventTime
			result = attendance.ClockEventResult{
				Name:    emp.FirstName(),
				TimeOut: &out,
			}
			return nil
		}

		created, err := s.attendanceRepo.Create(txCtx, attendance.Attendance{
			EmployeeID:    emp.ID,
			FingerprintID: req.FingerID,
			DeviceID:      req.DeviceToken,
			TimeIn:        eventTime,
			Status:        s.lateStatus(eventTime, win, policy),
		})
		if err != nil {
			return err
		}
		in := created.TimeIn
		result = attendance.ClockEventResult{
			Name:      emp.FirstName(),
			TimeIn:    &in,
			ClockedIn: true,
		}
		return nil
	})

	if err != nil {
		// A second scan racing the insert trips the one-open-record
		// constraint; report it the same way as the debounce.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ClockEventResult{}, attendance.ErrSignedInAlready
		}
		if errors.Is(err, attendance.ErrSignedInAlready) || errors.Is(err, attendance.ErrSignedOutAlready) {
			return attendance.ClockEventResult{}, err
		}
		return attendance.ClockEventResult{}, fmt.Errorf("failed to record clock event: %w", err)
	}

	return result, nil
}

// lateStatus applies the grace cutoff: a clock-in past shift start plus the
// grace period is LATE, anything up to and including the cutoff is ONTIME.
func (s *AttendanceServiceImpl) lateStatus(timeIn time.Time, win schedule.Window, policy employer.Policy) attendance.Status {
	local := timeIn.In(s.loc)
	timeInHours := float64(local.Hour()) + float64(local.Minute())/60
	graceCutoff := win.StartHours + float64(policy.GracePeriodInMinutes)/60

	if timeInHours > graceCutoff {
		return attendance.StatusLate
	}
	return attendance.StatusOnTime
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, employerID string, limit int) ([]attendance.AttendanceResponse, error) {
	if limit <= 0 {
		limit = 100
	}

	records, err := s.attendanceRepo.ListByEmployer(ctx, employerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.MapToResponse(rec))
	}
	return responses, nil
}

// Correct implements attendance.AttendanceService. Manual corrections bypass
// classification; the next period computation simply reads the new times.
func (s *AttendanceServiceImpl) Correct(ctx context.Context, req attendance.CorrectAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var timeIn, timeOut *time.Time
	if req.TimeIn != "" {
		t, _ := time.Parse(time.RFC3339, req.TimeIn)
		utc := t.UTC()
		timeIn = &utc
	}
	if req.TimeOut != "" {
		t, _ := time.Parse(time.RFC3339, req.TimeOut)
		utc := t.UTC()
		timeOut = &utc
	}

	if timeIn != nil && timeOut != nil && !timeOut.After(*timeIn) {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidTimeRange
	}

	updated, err := s.attendanceRepo.UpdateTimes(ctx, req.ID, timeIn, timeOut)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to correct attendance: %w", err)
	}

	slog.Info("attendance manually corrected", "id", req.ID)
	return attendance.MapToResponse(updated), nil
}

package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/attendance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employee"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/handler/http/response"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/payroll"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ClockEvent(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Correct(w http.ResponseWriter, r *http.Request)
	PeriodSummary(w http.ResponseWriter, r *http.Request)
	WeeklySummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	payrollService    payroll.PayrollService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, payrollService payroll.PayrollService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		payrollService:    payrollService,
	}
}

// clockEventBody is the raw device payload.
type clockEventBody struct {
	FingerID int     `json:"fingerId"`
	TimeIn   *string `json:"timeIn"`
}

// ClockEvent implements AttendanceHandler. The fingerprint device firmware
// parses fixed response shapes, so this endpoint writes them directly instead
// of the standard envelope.
func (h *attendanceHandlerImpl) ClockEvent(w http.ResponseWriter, r *http.Request) {
	var body clockEventBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Raw(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields."})
		return
	}

	req := attendance.ClockEventRequest{
		DeviceToken: r.URL.Query().Get("deviceToken"),
		FingerID:    body.FingerID,
	}
	if body.TimeIn != nil {
		t, err := time.Parse(time.RFC3339, *body.TimeIn)
		if err != nil {
			response.Raw(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields."})
			return
		}
		req.TimeIn = &t
	}

	result, err := h.attendanceService.HandleClockEvent(r.Context(), req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			response.Raw(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields."})
		case errors.Is(err, attendance.ErrSignedInAlready):
			response.Raw(w, http.StatusBadRequest, map[string]string{"error": attendance.CodeSignedInAlready})
		case errors.Is(err, attendance.ErrSignedOutAlready):
			response.Raw(w, http.StatusBadRequest, map[string]string{"error": attendance.CodeSignedOutAlready})
		case errors.Is(err, employee.ErrEmployeeNotFound), errors.Is(err, employee.ErrDeviceNotFound):
			response.Raw(w, http.StatusNotFound, map[string]string{"error": "Employee not recognized."})
		default:
			slog.Error("clock event failed", "error", err)
			response.Raw(w, http.StatusInternalServerError, map[string]string{"error": "Something went wrong."})
		}
		return
	}

	if result.ClockedIn {
		response.Raw(w, http.StatusCreated, map[string]string{
			"name":   result.Name,
			"timeIn": result.TimeIn.UTC().Format(time.RFC3339),
		})
		return
	}
	response.Raw(w, http.StatusOK, map[string]string{
		"name":    result.Name,
		"timeOut": result.TimeOut.UTC().Format(time.RFC3339),
	})
}

// List implements AttendanceHandler. The dashboard expects a bare array.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employerID := r.URL.Query().Get("id")
	if employerID == "" {
		response.BadRequest(w, "Query parameter 'id' is required", nil)
		return
	}

	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, "Query parameter 'limit' must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	records, err := h.attendanceService.List(r.Context(), employerID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Raw(w, http.StatusOK, records)
}

// Correct implements AttendanceHandler.
func (h *attendanceHandlerImpl) Correct(w http.ResponseWriter, r *http.Request) {
	var req attendance.CorrectAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = r.URL.Query().Get("id")

	result, err := h.attendanceService.Correct(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance corrected", result)
}

// PeriodSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if employeeID == "" || start == "" || end == "" {
		response.BadRequest(w, "Query parameters 'employeeId', 'start' and 'end' are required", nil)
		return
	}

	summary, err := h.payrollService.BuildPeriodSummary(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// WeeklySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Query parameter 'employeeId' is required", nil)
		return
	}

	weeksAgo := 0
	if raw := r.URL.Query().Get("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "Query parameter 'week' must be a non-negative integer", nil)
			return
		}
		weeksAgo = parsed
	}

	summary, err := h.payrollService.BuildWeeklySummary(r.Context(), employeeID, weeksAgo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

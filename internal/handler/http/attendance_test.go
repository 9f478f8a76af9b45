package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/attendance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employee"
)

type stubAttendanceService struct {
	result attendance.ClockEventResult
	err    error

	gotReq attendance.ClockEventRequest
}

func (s *stubAttendanceService) HandleClockEvent(_ context.Context, req attendance.ClockEventRequest) (attendance.ClockEventResult, error) {
	s.gotReq = req
	return s.result, s.err
}

func (s *stubAttendanceService) List(_ context.Context, _ string, _ int) ([]attendance.AttendanceResponse, error) {
	return []attendance.AttendanceResponse{}, nil
}

func (s *stubAttendanceService) Correct(_ context.Context, _ attendance.CorrectAttendanceRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}

func postClockEvent(t *testing.T, svc attendance.AttendanceService, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewAttendanceHandler(svc, nil)

	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ClockEvent(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestClockEventClockIn(t *testing.T) {
	timeIn := time.Date(2026, time.March, 10, 0, 5, 0, 0, time.UTC)
	svc := &stubAttendanceService{
		result: attendance.ClockEventResult{Name: "Maria", TimeIn: &timeIn, ClockedIn: true},
	}

	rec := postClockEvent(t, svc, "/attendance?deviceToken=device-1", `{"fingerId":3}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Maria", body["name"])
	assert.Equal(t, "2026-03-10T00:05:00Z", body["timeIn"])

	assert.Equal(t, "device-1", svc.gotReq.DeviceToken)
	assert.Equal(t, 3, svc.gotReq.FingerID)
}

func TestClockEventClockOut(t *testing.T) {
	timeOut := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	svc := &stubAttendanceService{
		result: attendance.ClockEventResult{Name: "Maria", TimeOut: &timeOut},
	}

	rec := postClockEvent(t, svc, "/attendance?deviceToken=device-1", `{"fingerId":3}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Maria", body["name"])
	assert.Equal(t, "2026-03-10T09:00:00Z", body["timeOut"])
}

func TestClockEventDuplicate(t *testing.T) {
	svc := &stubAttendanceService{err: attendance.ErrSignedInAlready}

	rec := postClockEvent(t, svc, "/attendance?deviceToken=device-1", `{"fingerId":3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SIGNED_IN_ALREADY", decodeBody(t, rec)["error"])
}

func TestClockEventAlreadyClosed(t *testing.T) {
	svc := &stubAttendanceService{err: attendance.ErrSignedOutAlready}

	rec := postClockEvent(t, svc, "/attendance?deviceToken=device-1", `{"fingerId":3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SIGNED_OUT_ALREADY", decodeBody(t, rec)["error"])
}

func TestClockEventUnknownEmployee(t *testing.T) {
	svc := &stubAttendanceService{err: employee.ErrEmployeeNotFound}

	rec := postClockEvent(t, svc, "/attendance?deviceToken=device-1", `{"fingerId":99}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["error"])
}

func TestClockEventMalformedBody(t *testing.T) {
	svc := &stubAttendanceService{}

	rec := postClockEvent(t, svc, "/attendance?deviceToken=device-1", `{`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields.", decodeBody(t, rec)["error"])
}

func TestClockEventExplicitTimeIn(t *testing.T) {
	timeIn := time.Date(2026, time.March, 10, 0, 5, 0, 0, time.UTC)
	svc := &stubAttendanceService{
		result: attendance.ClockEventResult{Name: "Maria", TimeIn: &timeIn, ClockedIn: true},
	}

	rec := postClockEvent(t, svc, "/attendance?deviceToken=device-1",
		`{"fingerId":3,"timeIn":"2026-03-10T00:05:00Z"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.gotReq.TimeIn)
	assert.True(t, timeIn.Equal(*svc.gotReq.TimeIn))
}

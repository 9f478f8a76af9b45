package http

import (
	"encoding/json"
	"net/http"

	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/payroll"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// List implements PayrollHandler.
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employerID := r.URL.Query().Get("id")
	if employerID == "" {
		response.BadRequest(w, "Query parameter 'id' is required", nil)
		return
	}

	payslips, err := h.payrollService.ListByEmployer(r.Context(), employerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}

// Create implements PayrollHandler.
func (h *payrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.CreatePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip created", result)
}

// UpdateStatus implements PayrollHandler.
func (h *payrollHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePayslipStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = r.URL.Query().Get("id")

	if err := h.payrollService.UpdateStatus(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip status updated", nil)
}

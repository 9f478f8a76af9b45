package http

import (
	"encoding/json"
	"net/http"

	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/cashadvance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/handler/http/response"
)

type CashAdvanceHandler interface {
	Grant(w http.ResponseWriter, r *http.Request)
	ListLogs(w http.ResponseWriter, r *http.Request)
	ListBalances(w http.ResponseWriter, r *http.Request)
}

type cashAdvanceHandlerImpl struct {
	cashAdvanceService cashadvance.CashAdvanceService
}

func NewCashAdvanceHandler(cashAdvanceService cashadvance.CashAdvanceService) CashAdvanceHandler {
	return &cashAdvanceHandlerImpl{cashAdvanceService: cashAdvanceService}
}

// Grant implements CashAdvanceHandler.
func (h *cashAdvanceHandlerImpl) Grant(w http.ResponseWriter, r *http.Request) {
	var req cashadvance.GrantCashAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.cashAdvanceService.Grant(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Cash advance granted", result)
}

// ListLogs implements CashAdvanceHandler.
func (h *cashAdvanceHandlerImpl) ListLogs(w http.ResponseWriter, r *http.Request) {
	employerID := r.URL.Query().Get("id")
	if employerID == "" {
		response.BadRequest(w, "Query parameter 'id' is required", nil)
		return
	}

	logs, err := h.cashAdvanceService.ListLogs(r.Context(), employerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

// ListBalances implements CashAdvanceHandler.
func (h *cashAdvanceHandlerImpl) ListBalances(w http.ResponseWriter, r *http.Request) {
	employerID := r.URL.Query().Get("id")
	if employerID == "" {
		response.BadRequest(w, "Query parameter 'id' is required", nil)
		return
	}

	balances, err := h.cashAdvanceService.ListBalances(r.Context(), employerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

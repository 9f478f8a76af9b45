package http

import (
	"encoding/json"
	"net/http"

	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employer"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/handler/http/response"
)

type EmployerHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type employerHandlerImpl struct {
	employerService employer.EmployerService
}

func NewEmployerHandler(employerService employer.EmployerService) EmployerHandler {
	return &employerHandlerImpl{employerService: employerService}
}

// Register implements EmployerHandler.
func (h *employerHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req employer.RegisterEmployerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employerService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employer registered", result)
}

// Get implements EmployerHandler.
func (h *employerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		response.BadRequest(w, "Query parameter 'id' is required", nil)
		return
	}

	result, err := h.employerService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

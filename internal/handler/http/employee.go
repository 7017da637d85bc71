package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/fournilsoft/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	GetHistory(w http.ResponseWriter, r *http.Request)
	AddHistoryEvent(w http.ResponseWriter, r *http.Request)
	DeleteHistoryEvent(w http.ResponseWriter, r *http.Request)

	UpdateCredit(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", emp)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	emp, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", emp)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// GetHistory implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	history, err := h.employeeService.GetHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// AddHistoryEvent implements EmployeeHandler.
func (h *EmployeeHandlerImpl) AddHistoryEvent(w http.ResponseWriter, r *http.Request) {
	var req employee.AddHistoryEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add history event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	event, err := h.employeeService.AddHistoryEvent(r.Context(), req)
	if err != nil {
		slog.Error("Add history event service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "History event added", event)
}

// DeleteHistoryEvent implements EmployeeHandler.
func (h *EmployeeHandlerImpl) DeleteHistoryEvent(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	eventID := chi.URLParam(r, "eventID")

	if err := h.employeeService.DeleteHistoryEvent(r.Context(), employeeID, eventID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "History event deleted", nil)
}

// UpdateCredit implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateCredit(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateCreditRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update credit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	emp, err := h.employeeService.UpdateCredit(r.Context(), req)
	if err != nil {
		slog.Error("Update credit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Credit updated", emp)
}

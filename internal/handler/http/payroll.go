package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fournilsoft/backoffice-go/internal/domain/payroll"
	"github.com/fournilsoft/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GetMonthlyData(w http.ResponseWriter, r *http.Request)
	UpdateMonthlyData(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)

	GetPeriod(w http.ResponseWriter, r *http.Request)
	GetPeriodSummary(w http.ResponseWriter, r *http.Request)
	ClosePeriod(w http.ResponseWriter, r *http.Request)
	ReopenPeriod(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GetMonthlyData implements PayrollHandler.
func (h *PayrollHandlerImpl) GetMonthlyData(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	monthKey := chi.URLParam(r, "monthKey")

	data, err := h.payrollService.GetMonthlyData(r.Context(), employeeID, monthKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

// UpdateMonthlyData implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateMonthlyData(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateMonthlyDataRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update monthly data decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")
	req.MonthKey = chi.URLParam(r, "monthKey")

	data, err := h.payrollService.UpdateMonthlyData(r.Context(), req)
	if err != nil {
		slog.Error("Update monthly data service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly data updated", data)
}

// GetPayslip implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	monthKey := chi.URLParam(r, "monthKey")

	slip, err := h.payrollService.GetPayslip(r.Context(), employeeID, monthKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}

// GetPeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	monthKey := chi.URLParam(r, "monthKey")

	period, err := h.payrollService.GetPeriod(r.Context(), monthKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, period)
}

// GetPeriodSummary implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	monthKey := chi.URLParam(r, "monthKey")

	summary, err := h.payrollService.GetPeriodSummary(r.Context(), monthKey)
	if err != nil {
		slog.Error("Period summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ClosePeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) ClosePeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.ClosePeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Close period decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.MonthKey = chi.URLParam(r, "monthKey")

	if err := h.payrollService.ClosePeriod(r.Context(), req); err != nil {
		slog.Error("Close period service error", "error", err, "month_key", req.MonthKey)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll period closed", "month_key", req.MonthKey)
	response.SuccessWithMessage(w, "Period closed", nil)
}

// ReopenPeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) ReopenPeriod(w http.ResponseWriter, r *http.Request) {
	monthKey := chi.URLParam(r, "monthKey")

	if err := h.payrollService.ReopenPeriod(r.Context(), monthKey); err != nil {
		slog.Error("Reopen period service error", "error", err, "month_key", monthKey)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll period reopened", "month_key", monthKey)
	response.SuccessWithMessage(w, "Period reopened", nil)
}

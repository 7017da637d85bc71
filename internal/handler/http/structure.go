package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fournilsoft/backoffice-go/internal/domain/structure"
	"github.com/fournilsoft/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StructureHandler interface {
	CreateAccount(w http.ResponseWriter, r *http.Request)
	ListAccounts(w http.ResponseWriter, r *http.Request)
	UpdateAccount(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)

	CreateProductFamily(w http.ResponseWriter, r *http.Request)
	ListProductFamilies(w http.ResponseWriter, r *http.Request)
	DeleteProductFamily(w http.ResponseWriter, r *http.Request)
}

type StructureHandlerImpl struct {
	structureService structure.StructureService
}

func NewStructureHandler(structureService structure.StructureService) StructureHandler {
	return &StructureHandlerImpl{structureService: structureService}
}

// CreateAccount implements StructureHandler.
func (h *StructureHandlerImpl) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req structure.CreateAccountRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create account decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	account, err := h.structureService.CreateAccount(r.Context(), req)
	if err != nil {
		slog.Error("Create account service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account created", account)
}

// ListAccounts implements StructureHandler.
func (h *StructureHandlerImpl) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.structureService.ListAccounts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, accounts)
}

// UpdateAccount implements StructureHandler.
func (h *StructureHandlerImpl) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req structure.UpdateAccountRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update account decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	account, err := h.structureService.UpdateAccount(r.Context(), req)
	if err != nil {
		slog.Error("Update account service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account updated", account)
}

// DeleteAccount implements StructureHandler.
func (h *StructureHandlerImpl) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.structureService.DeleteAccount(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account deleted", nil)
}

// CreateProductFamily implements StructureHandler.
func (h *StructureHandlerImpl) CreateProductFamily(w http.ResponseWriter, r *http.Request) {
	var req structure.CreateProductFamilyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create product family decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	family, err := h.structureService.CreateProductFamily(r.Context(), req)
	if err != nil {
		slog.Error("Create product family service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product family created", family)
}

// ListProductFamilies implements StructureHandler.
func (h *StructureHandlerImpl) ListProductFamilies(w http.ResponseWriter, r *http.Request) {
	families, err := h.structureService.ListProductFamilies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, families)
}

// DeleteProductFamily implements StructureHandler.
func (h *StructureHandlerImpl) DeleteProductFamily(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.structureService.DeleteProductFamily(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product family deleted", nil)
}

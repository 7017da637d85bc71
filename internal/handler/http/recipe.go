package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fournilsoft/backoffice-go/internal/domain/recipe"
	"github.com/fournilsoft/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RecipeHandler interface {
	CreateIngredient(w http.ResponseWriter, r *http.Request)
	ListIngredients(w http.ResponseWriter, r *http.Request)
	UpdateIngredient(w http.ResponseWriter, r *http.Request)
	DeleteIngredient(w http.ResponseWriter, r *http.Request)

	CreateRecipe(w http.ResponseWriter, r *http.Request)
	GetRecipe(w http.ResponseWriter, r *http.Request)
	ListRecipes(w http.ResponseWriter, r *http.Request)
	DeleteRecipe(w http.ResponseWriter, r *http.Request)
	GetRecipeCost(w http.ResponseWriter, r *http.Request)
}

type RecipeHandlerImpl struct {
	recipeService recipe.RecipeService
}

func NewRecipeHandler(recipeService recipe.RecipeService) RecipeHandler {
	return &RecipeHandlerImpl{recipeService: recipeService}
}

// CreateIngredient implements RecipeHandler.
func (h *RecipeHandlerImpl) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	var req recipe.CreateIngredientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create ingredient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ing, err := h.recipeService.CreateIngredient(r.Context(), req)
	if err != nil {
		slog.Error("Create ingredient service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ingredient created", ing)
}

// ListIngredients implements RecipeHandler.
func (h *RecipeHandlerImpl) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.recipeService.ListIngredients(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ingredients)
}

// UpdateIngredient implements RecipeHandler.
func (h *RecipeHandlerImpl) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	var req recipe.UpdateIngredientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update ingredient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	ing, err := h.recipeService.UpdateIngredient(r.Context(), req)
	if err != nil {
		slog.Error("Update ingredient service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ingredient updated", ing)
}

// DeleteIngredient implements RecipeHandler.
func (h *RecipeHandlerImpl) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recipeService.DeleteIngredient(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ingredient deleted", nil)
}

// CreateRecipe implements RecipeHandler.
func (h *RecipeHandlerImpl) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req recipe.CreateRecipeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create recipe decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.recipeService.CreateRecipe(r.Context(), req)
	if err != nil {
		slog.Error("Create recipe service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Recipe created", rec)
}

// GetRecipe implements RecipeHandler.
func (h *RecipeHandlerImpl) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.recipeService.GetRecipe(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

// ListRecipes implements RecipeHandler.
func (h *RecipeHandlerImpl) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipeService.ListRecipes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, recipes)
}

// DeleteRecipe implements RecipeHandler.
func (h *RecipeHandlerImpl) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recipeService.DeleteRecipe(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Recipe deleted", nil)
}

// GetRecipeCost implements RecipeHandler.
func (h *RecipeHandlerImpl) GetRecipeCost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cost, err := h.recipeService.GetRecipeCost(r.Context(), id)
	if err != nil {
		slog.Error("Recipe cost service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, cost)
}

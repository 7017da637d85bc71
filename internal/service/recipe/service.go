package recipe

import (
	"context"

	"github.com/fournilsoft/backoffice-go/internal/domain/recipe"
	"github.com/fournilsoft/backoffice-go/internal/pkg/database"
	"github.com/fournilsoft/backoffice-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type RecipeServiceImpl struct {
	db         *database.DB
	recipeRepo recipe.RecipeRepository
}

func NewRecipeService(db *database.DB, recipeRepo recipe.RecipeRepository) recipe.RecipeService {
	return &RecipeServiceImpl{db: db, recipeRepo: recipeRepo}
}

// ========== INGREDIENTS ==========

func (s *RecipeServiceImpl) CreateIngredient(ctx context.Context, req recipe.CreateIngredientRequest) (recipe.IngredientResponse, error) {
	if err := req.Validate(); err != nil {
		return recipe.IngredientResponse{}, err
	}

	ing, err := s.recipeRepo.CreateIngredient(ctx, recipe.Ingredient{
		Name:          req.Name,
		PurchaseUnit:  recipe.Unit(req.PurchaseUnit),
		PackSize:      req.PackSize,
		PurchasePrice: req.PurchasePrice,
	})
	if err != nil {
		return recipe.IngredientResponse{}, err
	}

	return mapToIngredientResponse(ing), nil
}

func (s *RecipeServiceImpl) ListIngredients(ctx context.Context) ([]recipe.IngredientResponse, error) {
	ingredients, err := s.recipeRepo.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]recipe.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		responses = append(responses, mapToIngredientResponse(ing))
	}
	return responses, nil
}

func (s *RecipeServiceImpl) UpdateIngredient(ctx context.Context, req recipe.UpdateIngredientRequest) (recipe.IngredientResponse, error) {
	if err := req.Validate(); err != nil {
		return recipe.IngredientResponse{}, err
	}

	if err := s.recipeRepo.UpdateIngredient(ctx, req); err != nil {
		return recipe.IngredientResponse{}, err
	}

	ing, err := s.recipeRepo.GetIngredientByID(ctx, req.ID)
	if err != nil {
		return recipe.IngredientResponse{}, err
	}
	return mapToIngredientResponse(ing), nil
}

func (s *RecipeServiceImpl) DeleteIngredient(ctx context.Context, id string) error {
	return s.recipeRepo.DeleteIngredient(ctx, id)
}

// ========== RECIPES ==========

func (s *RecipeServiceImpl) CreateRecipe(ctx context.Context, req recipe.CreateRecipeRequest) (recipe.RecipeResponse, error) {
	if err := req.Validate(); err != nil {
		return recipe.RecipeResponse{}, err
	}

	// All referenced ingredients must exist before the recipe is stored.
	ids := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		ids = append(ids, line.IngredientID)
	}
	ingredients, err := s.recipeRepo.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return recipe.RecipeResponse{}, err
	}
	for _, id := range ids {
		if _, ok := ingredients[id]; !ok {
			return recipe.RecipeResponse{}, recipe.ErrIngredientNotFound
		}
	}

	rec := recipe.Recipe{
		Name:      req.Name,
		FamilyID:  req.FamilyID,
		YieldQty:  req.YieldQty,
		YieldUnit: recipe.Unit(req.YieldUnit),
	}
	for _, line := range req.Lines {
		rec.Lines = append(rec.Lines, recipe.RecipeLine{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         recipe.Unit(line.Unit),
		})
	}

	// Header and lines land together or not at all.
	var created recipe.Recipe
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		created, err = s.recipeRepo.CreateRecipe(txCtx, rec)
		return err
	})
	if err != nil {
		return recipe.RecipeResponse{}, err
	}

	return mapToRecipeResponse(created), nil
}

func (s *RecipeServiceImpl) GetRecipe(ctx context.Context, id string) (recipe.RecipeResponse, error) {
	rec, err := s.recipeRepo.GetRecipeByID(ctx, id)
	if err != nil {
		return recipe.RecipeResponse{}, err
	}
	return mapToRecipeResponse(rec), nil
}

func (s *RecipeServiceImpl) ListRecipes(ctx context.Context) ([]recipe.RecipeResponse, error) {
	recipes, err := s.recipeRepo.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]recipe.RecipeResponse, 0, len(recipes))
	for _, rec := range recipes {
		responses = append(responses, mapToRecipeResponse(rec))
	}
	return responses, nil
}

func (s *RecipeServiceImpl) DeleteRecipe(ctx context.Context, id string) error {
	return s.recipeRepo.DeleteRecipe(ctx, id)
}

// ========== COSTING ==========

func (s *RecipeServiceImpl) GetRecipeCost(ctx context.Context, id string) (recipe.RecipeCostResponse, error) {
	rec, err := s.recipeRepo.GetRecipeByID(ctx, id)
	if err != nil {
		return recipe.RecipeCostResponse{}, err
	}

	ids := make([]string, 0, len(rec.Lines))
	for _, line := range rec.Lines {
		ids = append(ids, line.IngredientID)
	}
	ingredients, err := s.recipeRepo.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return recipe.RecipeCostResponse{}, err
	}

	return ComputeRecipeCost(rec, ingredients)
}

// ========== HELPERS ==========

func mapToIngredientResponse(ing recipe.Ingredient) recipe.IngredientResponse {
	return recipe.IngredientResponse{
		ID:            ing.ID,
		Name:          ing.Name,
		PurchaseUnit:  string(ing.PurchaseUnit),
		PackSize:      ing.PackSize,
		PurchasePrice: ing.PurchasePrice,
	}
}

func mapToRecipeResponse(rec recipe.Recipe) recipe.RecipeResponse {
	resp := recipe.RecipeResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		FamilyID:  rec.FamilyID,
		YieldQty:  rec.YieldQty,
		YieldUnit: string(rec.YieldUnit),
		Lines:     make([]recipe.RecipeLineResponse, 0, len(rec.Lines)),
	}
	for _, line := range rec.Lines {
		name := ""
		if line.IngredientName != nil {
			name = *line.IngredientName
		}
		resp.Lines = append(resp.Lines, recipe.RecipeLineResponse{
			ID:             line.ID,
			IngredientID:   line.IngredientID,
			IngredientName: name,
			Quantity:       line.Quantity,
			Unit:           string(line.Unit),
		})
	}
	return resp
}

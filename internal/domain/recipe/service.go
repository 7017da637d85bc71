package recipe

import "context"

type RecipeService interface {
	// Ingredients
	CreateIngredient(ctx context.Context, req CreateIngredientRequest) (IngredientResponse, error)
	ListIngredients(ctx context.Context) ([]IngredientResponse, error)
	UpdateIngredient(ctx context.Context, req UpdateIngredientRequest) (IngredientResponse, error)
	DeleteIngredient(ctx context.Context, id string) error

	// Recipes
	CreateRecipe(ctx context.Context, req CreateRecipeRequest) (RecipeResponse, error)
	GetRecipe(ctx context.Context, id string) (RecipeResponse, error)
	ListRecipes(ctx context.Context) ([]RecipeResponse, error)
	DeleteRecipe(ctx context.Context, id string) error

	// Costing
	GetRecipeCost(ctx context.Context, id string) (RecipeCostResponse, error)
}

package recipe

import "context"

type RecipeRepository interface {
	// Ingredients
	CreateIngredient(ctx context.Context, ing Ingredient) (Ingredient, error)
	GetIngredientByID(ctx context.Context, id string) (Ingredient, error)
	ListIngredients(ctx context.Context) ([]Ingredient, error)
	UpdateIngredient(ctx context.Context, req UpdateIngredientRequest) error
	DeleteIngredient(ctx context.Context, id string) error

	// Recipes
	CreateRecipe(ctx context.Context, rec Recipe) (Recipe, error)
	GetRecipeByID(ctx context.Context, id string) (Recipe, error)
	ListRecipes(ctx context.Context) ([]Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error

	// GetIngredientsByIDs loads the ingredients referenced by a recipe's
	// lines in one round trip, keyed by ID.
	GetIngredientsByIDs(ctx context.Context, ids []string) (map[string]Ingredient, error)
}

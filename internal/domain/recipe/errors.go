package recipe

import "errors"

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientInUse    = errors.New("ingredient is used by a recipe")
	ErrUnknownUnit        = errors.New("unknown measurement unit")
	ErrUnitMismatch       = errors.New("line unit is not convertible to the ingredient purchase unit")
)

package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/fournilsoft/backoffice-go/internal/domain/recipe"
	"github.com/fournilsoft/backoffice-go/internal/domain/structure"
	"github.com/fournilsoft/backoffice-go/internal/pkg/database"
	"github.com/fournilsoft/backoffice-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type recipeRepositoryImpl struct {
	db *database.DB
}

func NewRecipeRepository(db *database.DB) recipe.RecipeRepository {
	return &recipeRepositoryImpl{db: db}
}

// CreateIngredient implements recipe.RecipeRepository.
func (r *recipeRepositoryImpl) CreateIngredient(ctx context.Context, ing recipe.Ingredient) (recipe.Ingredient, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ingredients (name, purchase_unit, pack_size, purchase_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, purchase_unit, pack_size, purchase_price, created_at, updated_at
	`

	var created recipe.Ingredient
	err := q.QueryRow(ctx, query, ing.Name, ing.PurchaseUnit, ing.PackSize, ing.PurchasePrice).Scan(
		&created.ID, &created.Name, &created.PurchaseUnit, &created.PackSize, &created.PurchasePrice,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return recipe.Ingredient{}, err
	}

	return created, nil
}

// GetIngredientByID implements recipe.RecipeRepository.
func (r *recipeRepositoryImpl) GetIngredientByID(ctx context.Context, id string) (recipe.Ingredient, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, purchase_unit, pack_size, purchase_price, created_at, updated_at FROM ingredients WHERE id = $1`

	var ing recipe.Ingredient
	err := q.QueryRow(ctx, query, id).Scan(
		&ing.ID, &ing.Name, &ing.PurchaseUnit, &ing.PackSize, &ing.PurchasePrice, &ing.CreatedAt, &ing.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return recipe.Ingredient{}, recipe.ErrIngredientNotFound
		}
		return recipe.Ingredient{}, err
	}

	return ing, nil
}

// ListIngredients implements recipe.RecipeRepository.
func (r *recipeRepositoryImpl) ListIngredients(ctx context.Context) ([]recipe.Ingredient, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, purchase_unit, pack_size, purchase_price, created_at, updated_at FROM ingredients ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []recipe.Ingredient
	for rows.Next() {
		var ing recipe.Ingredient
		err := rows.Scan(&ing.ID, &ing.Name, &ing.PurchaseUnit, &ing.PackSize, &ing.PurchasePrice, &ing.CreatedAt, &ing.UpdatedAt)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ingredients, nil
}

// UpdateIngredient implements recipe.RecipeRepository.
func (r *recipeRepositoryImpl) UpdateIngredient(ctx context.Context, req recipe.UpdateIngredientRequest) error {
	q := GetQuerier(ctx, r.db)

	var sets []string
	var args []interface{}
	idx := 1

	if req.Name != nil {
		sets = append(sets, "name = $"+validator.Itoa(idx))
		args = append(args, *req.Name)
		idx++
	}
	if req.PackSize != nil {
		sets = append(sets, "pack_size = $"+validator.Itoa(idx))
		args = append(args, *req.PackSize)
		idx++
	}
	if req.PurchasePrice != nil {
		sets = append(sets, "purchase_price = $"+validator.Itoa(idx))
		args = append(args, *req.PurchasePrice)
		idx++
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, req.ID)
	query := "UPDATE ingredients SET " + strings.Join(sets, ", ") + " WHERE id = $" + validator.Itoa(idx)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recipe.ErrIngredientNotFound
	}
	return nil
}

// DeleteIngredient implements recipe.RecipeRepository. Ingredients referenced
// by a recipe line are protected by a foreign key.
func (r *recipeRepositoryImpl) DeleteIngredient(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return recipe.ErrIngredientInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return recipe.ErrIngredientNotFound
	}
	return nil
}

// CreateRecipe implements recipe.RecipeRepository. The recipe header and its
// lines are inserted together; callers wanting atomicity run this inside
// WithTransaction.
func (r *recipeRepositoryImpl) CreateRecipe(ctx context.Context, rec recipe.Recipe) (recipe.Recipe, error) {
	q := GetQuerier(ctx, r.db)

	headerQuery := `
		INSERT INTO recipes (name, family_id, yield_qty, yield_unit)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, family_id, yield_qty, yield_unit, created_at, updated_at
	`

	var created recipe.Recipe
	err := q.QueryRow(ctx, headerQuery, rec.Name, rec.FamilyID, rec.YieldQty, rec.YieldUnit).Scan(
		&created.ID, &created.Name, &created.FamilyID, &created.YieldQty, &created.YieldUnit,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return recipe.Recipe{}, structure.ErrProductFamilyNotFound
		}
		return recipe.Recipe{}, err
	}

	lineQuery := `
		INSERT INTO recipe_lines (recipe_id, ingredient_id, quantity, unit)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for _, line := range rec.Lines {
		line.RecipeID = created.ID
		if err := q.QueryRow(ctx, lineQuery, line.RecipeID, line.IngredientID, line.Quantity, line.Unit).Scan(&line.ID); err != nil {
			return recipe.Recipe{}, err
		}
		created.Lines = append(created.Lines, line)
	}

	return created, nil
}

// GetRecipeByID implements recipe.RecipeRepository.
func (r *recipeRepositoryImpl) GetRecipeByID(ctx context.Context, id string) (recipe.Recipe, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, family_id, yield_qty, yield_unit, created_at, updated_at FROM recipes WHERE id = $1`

	var rec recipe.Recipe
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.Name, &rec.FamilyID, &rec.YieldQty, &rec.YieldUnit, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return recipe.Recipe{}, recipe.ErrRecipeNotFound
		}
		return recipe.Recipe{}, err
	}

	lines, err := r.getLines(ctx, rec.ID)
	if err != nil {
		return recipe.Recipe{}, err
	}
	rec.Lines = lines

	return rec, nil
}

// ListRecipes implements recipe.RecipeRepository. Lines are loaded per
// recipe; the catalog is small enough that this stays cheap.
func (r *recipeRepositoryImpl) ListRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, family_id, yield_qty, yield_unit, created_at, updated_at FROM recipes ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []recipe.Recipe
	for rows.Next() {
		var rec recipe.Recipe
		err := rows.Scan(&rec.ID, &rec.Name, &rec.FamilyID, &rec.YieldQty, &rec.YieldUnit, &rec.CreatedAt, &rec.UpdatedAt)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range recipes {
		lines, err := r.getLines(ctx, recipes[i].ID)
		if err != nil {
			return nil, err
		}
		recipes[i].Lines = lines
	}

	return recipes, nil
}

func (r *recipeRepositoryImpl) getLines(ctx context.Context, recipeID string) ([]recipe.RecipeLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rl.id, rl.recipe_id, rl.ingredient_id, rl.quantity, rl.unit, i.name
		FROM recipe_lines rl
		JOIN ingredients i ON i.id = rl.ingredient_id
		WHERE rl.recipe_id = $1
		ORDER BY rl.created_at
	`

	rows, err := q.Query(ctx, query, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []recipe.RecipeLine
	for rows.Next() {
		var line recipe.RecipeLine
		var ingredientName string
		err := rows.Scan(&line.ID, &line.RecipeID, &line.IngredientID, &line.Quantity, &line.Unit, &ingredientName)
		if err != nil {
			return nil, err
		}
		line.IngredientName = &ingredientName
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// DeleteRecipe implements recipe.RecipeRepository. Lines go with the recipe
// through the cascading foreign key.
func (r *recipeRepositoryImpl) DeleteRecipe(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recipe.ErrRecipeNotFound
	}
	return nil
}

// GetIngredientsByIDs implements recipe.RecipeRepository.
func (r *recipeRepositoryImpl) GetIngredientsByIDs(ctx context.Context, ids []string) (map[string]recipe.Ingredient, error) {
	result := make(map[string]recipe.Ingredient, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, purchase_unit, pack_size, purchase_price, created_at, updated_at
		FROM ingredients
		WHERE id = ANY($1)
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ing recipe.Ingredient
		err := rows.Scan(&ing.ID, &ing.Name, &ing.PurchaseUnit, &ing.PackSize, &ing.PurchasePrice, &ing.CreatedAt, &ing.UpdatedAt)
		if err != nil {
			return nil, err
		}
		result[ing.ID] = ing
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

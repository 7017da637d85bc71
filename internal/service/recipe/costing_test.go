package recipe

import (
	"testing"

	"github.com/fournilsoft/backoffice-go/internal/domain/recipe"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeRecipeCost(t *testing.T) {
	// Flour: 25 kg bag at 250 -> 0.01 per g.
	// Milk: 1 l bottle at 8 -> 0.008 per ml.
	// Eggs: 30-piece tray at 36 -> 1.20 per piece.
	ingredients := map[string]recipe.Ingredient{
		"flour": {ID: "flour", Name: "Farine", PurchaseUnit: recipe.UnitKilogram, PackSize: d("25"), PurchasePrice: d("250")},
		"milk":  {ID: "milk", Name: "Lait", PurchaseUnit: recipe.UnitLiter, PackSize: d("1"), PurchasePrice: d("8")},
		"eggs":  {ID: "eggs", Name: "Oeufs", PurchaseUnit: recipe.UnitPiece, PackSize: d("30"), PurchasePrice: d("36")},
	}

	rec := recipe.Recipe{
		ID:       "brioche",
		YieldQty: d("20"),
		Lines: []recipe.RecipeLine{
			{IngredientID: "flour", Quantity: d("500"), Unit: recipe.UnitGram},     // 5.00
			{IngredientID: "milk", Quantity: d("25"), Unit: recipe.UnitCentiliter}, // 2.00
			{IngredientID: "eggs", Quantity: d("3"), Unit: recipe.UnitPiece},       // 3.60
		},
	}

	cost, err := ComputeRecipeCost(rec, ingredients)
	require.NoError(t, err)

	require.Len(t, cost.Lines, 3)
	assert.True(t, d("5").Equal(cost.Lines[0].Cost), "flour cost %s", cost.Lines[0].Cost)
	assert.True(t, d("2").Equal(cost.Lines[1].Cost), "milk cost %s", cost.Lines[1].Cost)
	assert.True(t, d("3.6").Equal(cost.Lines[2].Cost), "egg cost %s", cost.Lines[2].Cost)

	assert.True(t, d("10.6").Equal(cost.TotalCost), "total %s", cost.TotalCost)
	assert.True(t, d("0.53").Equal(cost.UnitCost), "unit cost %s", cost.UnitCost)
	assert.Equal(t, "Farine", cost.Lines[0].IngredientName)
}

func TestComputeRecipeCost_UnitMismatch(t *testing.T) {
	ingredients := map[string]recipe.Ingredient{
		"flour": {ID: "flour", Name: "Farine", PurchaseUnit: recipe.UnitKilogram, PackSize: d("25"), PurchasePrice: d("250")},
	}
	rec := recipe.Recipe{
		ID:       "broken",
		YieldQty: d("1"),
		Lines: []recipe.RecipeLine{
			{IngredientID: "flour", Quantity: d("2"), Unit: recipe.UnitLiter},
		},
	}

	_, err := ComputeRecipeCost(rec, ingredients)
	assert.ErrorIs(t, err, recipe.ErrUnitMismatch)
}

func TestComputeRecipeCost_MissingIngredient(t *testing.T) {
	rec := recipe.Recipe{
		ID:       "orphan",
		YieldQty: d("1"),
		Lines: []recipe.RecipeLine{
			{IngredientID: "ghost", Quantity: d("1"), Unit: recipe.UnitGram},
		},
	}

	_, err := ComputeRecipeCost(rec, map[string]recipe.Ingredient{})
	assert.ErrorIs(t, err, recipe.ErrIngredientNotFound)
}

func TestComputeRecipeCost_EmptyRecipe(t *testing.T) {
	rec := recipe.Recipe{ID: "empty", YieldQty: d("10")}

	cost, err := ComputeRecipeCost(rec, nil)
	require.NoError(t, err)
	assert.True(t, cost.TotalCost.IsZero())
	assert.True(t, cost.UnitCost.IsZero())
	assert.Empty(t, cost.Lines)
}

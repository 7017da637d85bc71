package recipe

import (
	"fmt"

	"github.com/fournilsoft/backoffice-go/internal/domain/recipe"
	"github.com/shopspring/decimal"
)

// ComputeRecipeCost rolls the ingredient costs of a recipe up to a total and
// a per-yield-unit cost. Each line's quantity converts to the ingredient's
// base unit first, so a recipe can use 500 g of an ingredient bought by the
// 25 kg bag. Lines whose unit does not convert to the ingredient's base unit
// fail the whole rollup.
func ComputeRecipeCost(rec recipe.Recipe, ingredients map[string]recipe.Ingredient) (recipe.RecipeCostResponse, error) {
	resp := recipe.RecipeCostResponse{
		RecipeID:  rec.ID,
		TotalCost: decimal.Zero,
		Lines:     make([]recipe.LineCostResponse, 0, len(rec.Lines)),
	}

	for _, line := range rec.Lines {
		ing, ok := ingredients[line.IngredientID]
		if !ok {
			return recipe.RecipeCostResponse{}, fmt.Errorf("%w: %s", recipe.ErrIngredientNotFound, line.IngredientID)
		}

		lineBase, lineFactor, ok := line.Unit.BaseFactor()
		if !ok {
			return recipe.RecipeCostResponse{}, fmt.Errorf("%w: %s", recipe.ErrUnknownUnit, line.Unit)
		}
		ingBase, _, ok := ing.PurchaseUnit.BaseFactor()
		if !ok {
			return recipe.RecipeCostResponse{}, fmt.Errorf("%w: %s", recipe.ErrUnknownUnit, ing.PurchaseUnit)
		}
		if lineBase != ingBase {
			return recipe.RecipeCostResponse{}, fmt.Errorf("%w: %s vs %s for %s", recipe.ErrUnitMismatch, line.Unit, ing.PurchaseUnit, ing.Name)
		}

		qtyInBase := line.Quantity.Mul(lineFactor)
		cost := ing.CostPerBaseUnit().Mul(qtyInBase)

		name := ing.Name
		if line.IngredientName != nil {
			name = *line.IngredientName
		}
		resp.Lines = append(resp.Lines, recipe.LineCostResponse{
			IngredientID:   line.IngredientID,
			IngredientName: name,
			Quantity:       line.Quantity,
			Unit:           string(line.Unit),
			Cost:           cost.Round(4),
		})
		resp.TotalCost = resp.TotalCost.Add(cost)
	}

	resp.UnitCost = decimal.Zero
	if rec.YieldQty.IsPositive() {
		resp.UnitCost = resp.TotalCost.Div(rec.YieldQty).Round(4)
	}
	resp.TotalCost = resp.TotalCost.Round(2)

	return resp, nil
}

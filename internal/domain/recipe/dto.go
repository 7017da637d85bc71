package recipe

import (
	"github.com/fournilsoft/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var validUnits = []string{
	string(UnitGram), string(UnitKilogram),
	string(UnitMilliliter), string(UnitCentiliter), string(UnitLiter),
	string(UnitPiece),
}

type CreateIngredientRequest struct {
	Name          string          `json:"name"`
	PurchaseUnit  string          `json:"purchase_unit"`
	PackSize      decimal.Decimal `json:"pack_size"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

func (r *CreateIngredientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsInSlice(r.PurchaseUnit, validUnits) {
		errs = append(errs, validator.ValidationError{Field: "purchase_unit", Message: "must be one of g, kg, ml, cl, l, piece"})
	}
	if !r.PackSize.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "pack_size", Message: "must be positive"})
	}
	if r.PurchasePrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "purchase_price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateIngredientRequest struct {
	ID            string           `json:"-"`
	Name          *string          `json:"name,omitempty"`
	PackSize      *decimal.Decimal `json:"pack_size,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
}

func (r *UpdateIngredientRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.PackSize != nil && !r.PackSize.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "pack_size", Message: "must be positive"})
	}
	if r.PurchasePrice != nil && r.PurchasePrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "purchase_price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IngredientResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PurchaseUnit  string          `json:"purchase_unit"`
	PackSize      decimal.Decimal `json:"pack_size"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

type RecipeLineRequest struct {
	IngredientID string          `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
}

type CreateRecipeRequest struct {
	Name      string              `json:"name"`
	FamilyID  *string             `json:"family_id,omitempty"`
	YieldQty  decimal.Decimal     `json:"yield_qty"`
	YieldUnit string              `json:"yield_unit"`
	Lines     []RecipeLineRequest `json:"lines"`
}

func (r *CreateRecipeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !r.YieldQty.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "yield_qty", Message: "must be positive"})
	}
	if !validator.IsInSlice(r.YieldUnit, validUnits) {
		errs = append(errs, validator.ValidationError{Field: "yield_unit", Message: "must be one of g, kg, ml, cl, l, piece"})
	}
	for i, line := range r.Lines {
		if validator.IsEmpty(line.IngredientID) {
			errs = append(errs, validator.ValidationError{Field: "lines", Message: "ingredient_id is required on line " + validator.Itoa(i)})
		}
		if !line.Quantity.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "lines", Message: "quantity must be positive on line " + validator.Itoa(i)})
		}
		if !validator.IsInSlice(line.Unit, validUnits) {
			errs = append(errs, validator.ValidationError{Field: "lines", Message: "unknown unit on line " + validator.Itoa(i)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecipeResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	FamilyID  *string              `json:"family_id,omitempty"`
	YieldQty  decimal.Decimal      `json:"yield_qty"`
	YieldUnit string               `json:"yield_unit"`
	Lines     []RecipeLineResponse `json:"lines"`
}

type RecipeLineResponse struct {
	ID             string          `json:"id"`
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}

// RecipeCostResponse is the weighted cost rollup of one recipe.
type RecipeCostResponse struct {
	RecipeID  string             `json:"recipe_id"`
	TotalCost decimal.Decimal    `json:"total_cost"`
	UnitCost  decimal.Decimal    `json:"unit_cost"`
	Lines     []LineCostResponse `json:"lines"`
}

type LineCostResponse struct {
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	Cost           decimal.Decimal `json:"cost"`
}

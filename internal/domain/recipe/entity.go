package recipe

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit is a purchase or recipe measurement unit. Units convert down a fixed
// chain to their base unit (g for mass, ml for volume, piece for count).
type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMilliliter Unit = "ml"
	UnitCentiliter Unit = "cl"
	UnitLiter      Unit = "l"
	UnitPiece      Unit = "piece"
)

// BaseFactor returns the base unit of u and the multiplicative factor from u
// to that base. ok is false for unknown units.
func (u Unit) BaseFactor() (base Unit, factor decimal.Decimal, ok bool) {
	switch u {
	case UnitGram:
		return UnitGram, decimal.NewFromInt(1), true
	case UnitKilogram:
		return UnitGram, decimal.NewFromInt(1000), true
	case UnitMilliliter:
		return UnitMilliliter, decimal.NewFromInt(1), true
	case UnitCentiliter:
		return UnitMilliliter, decimal.NewFromInt(10), true
	case UnitLiter:
		return UnitMilliliter, decimal.NewFromInt(1000), true
	case UnitPiece:
		return UnitPiece, decimal.NewFromInt(1), true
	}
	return "", decimal.Zero, false
}

// Ingredient is a purchasable raw material. PackSize is the quantity of
// PurchaseUnit bought for PurchasePrice, e.g. a 25 kg flour bag.
type Ingredient struct {
	ID            string
	Name          string
	PurchaseUnit  Unit
	PackSize      decimal.Decimal
	PurchasePrice decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CostPerBaseUnit returns the ingredient cost per base unit (per g, ml or
// piece). Zero pack sizes yield a zero cost rather than an error.
func (i Ingredient) CostPerBaseUnit() decimal.Decimal {
	_, factor, ok := i.PurchaseUnit.BaseFactor()
	if !ok {
		return decimal.Zero
	}
	baseQty := i.PackSize.Mul(factor)
	if baseQty.IsZero() {
		return decimal.Zero
	}
	return i.PurchasePrice.Div(baseQty)
}

type Recipe struct {
	ID        string
	Name      string
	FamilyID  *string
	YieldQty  decimal.Decimal
	YieldUnit Unit
	Lines     []RecipeLine
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecipeLine is one ingredient usage within a recipe.
type RecipeLine struct {
	ID           string
	RecipeID     string
	IngredientID string
	Quantity     decimal.Decimal
	Unit         Unit

	// Joined fields
	IngredientName *string
}

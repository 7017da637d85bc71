package response

import (
	"errors"
	"net/http"

	"github.com/fournilsoft/backoffice-go/internal/domain/auth"
	"github.com/fournilsoft/backoffice-go/internal/domain/employee"
	"github.com/fournilsoft/backoffice-go/internal/domain/payroll"
	"github.com/fournilsoft/backoffice-go/internal/domain/recipe"
	"github.com/fournilsoft/backoffice-go/internal/domain/structure"
	"github.com/fournilsoft/backoffice-go/internal/domain/user"
	"github.com/fournilsoft/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrHistoryEventNotFound):
		NotFound(w, "History event not found")
	case errors.Is(err, employee.ErrInvalidHistoryKind):
		BadRequest(w, "Invalid history event kind", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidMonthKey):
		BadRequest(w, "Invalid month key", nil)
	case errors.Is(err, payroll.ErrMonthlyDataNotFound):
		NotFound(w, "Monthly payroll data not found")
	case errors.Is(err, payroll.ErrMonthClosed):
		Conflict(w, "Payroll month is closed")
	case errors.Is(err, payroll.ErrPeriodAlreadyClosed):
		Conflict(w, "Payroll period is already closed")
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")

	// Structure domain errors
	case errors.Is(err, structure.ErrAccountNotFound):
		NotFound(w, "Accounting account not found")
	case errors.Is(err, structure.ErrAccountCodeExists):
		Conflict(w, "Account code already exists")
	case errors.Is(err, structure.ErrProductFamilyNotFound):
		NotFound(w, "Product family not found")
	case errors.Is(err, structure.ErrFamilyNameExists):
		Conflict(w, "Product family name already exists")

	// Recipe domain errors
	case errors.Is(err, recipe.ErrRecipeNotFound):
		NotFound(w, "Recipe not found")
	case errors.Is(err, recipe.ErrIngredientNotFound):
		NotFound(w, "Ingredient not found")
	case errors.Is(err, recipe.ErrIngredientInUse):
		Conflict(w, "Ingredient is used by a recipe")
	case errors.Is(err, recipe.ErrUnknownUnit):
		BadRequest(w, "Unknown measurement unit", nil)
	case errors.Is(err, recipe.ErrUnitMismatch):
		BadRequest(w, "Line unit is not convertible to the ingredient purchase unit", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package structure

import "github.com/fournilsoft/backoffice-go/internal/pkg/validator"

type CreateAccountRequest struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

func (r *CreateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidAccountCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 4 to 8 digits"})
	}
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{Field: "label", Message: "is required"})
	}
	if !validator.IsInSlice(r.Kind, []string{string(AccountKindExpense), string(AccountKindRevenue), string(AccountKindAsset)}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'expense', 'revenue' or 'asset'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAccountRequest struct {
	ID    string  `json:"-"`
	Label *string `json:"label,omitempty"`
	Kind  *string `json:"kind,omitempty"`
}

func (r *UpdateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Label != nil && validator.IsEmpty(*r.Label) {
		errs = append(errs, validator.ValidationError{Field: "label", Message: "must not be empty"})
	}
	if r.Kind != nil && !validator.IsInSlice(*r.Kind, []string{string(AccountKindExpense), string(AccountKindRevenue), string(AccountKindAsset)}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'expense', 'revenue' or 'asset'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AccountResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

type CreateProductFamilyRequest struct {
	Name string `json:"name"`
}

func (r *CreateProductFamilyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProductFamilyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

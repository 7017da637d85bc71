package structure

import "errors"

var (
	ErrAccountNotFound       = errors.New("accounting account not found")
	ErrAccountCodeExists     = errors.New("account code already exists")
	ErrProductFamilyNotFound = errors.New("product family not found")
	ErrFamilyNameExists      = errors.New("product family name already exists")
)

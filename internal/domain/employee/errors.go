package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrHistoryEventNotFound = errors.New("history event not found")
	ErrInvalidHistoryKind   = errors.New("invalid history event kind")
)

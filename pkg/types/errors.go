package types

import "errors"

// Property access errors. Malformed persisted data never produces an error;
// these report programming mistakes in how a store is used.
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrInvalidName      = errors.New("invalid name")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrInvalidKind      = errors.New("invalid kind")
)

// Record operation errors.
var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidID     = errors.New("invalid record ID")
	ErrInvalidFilter = errors.New("invalid filter value type")
)

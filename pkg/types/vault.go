package types

import "errors"

// Vault is backend-agnostic storage for records. Callers attach to a
// backend, use the record table, and detach when done.
type Vault interface {
	// Attach connects the Vault to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached if
	// called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach, record
	// operations return ErrVaultDetached.
	Detach() error

	// Records returns the record table.
	Records() (RecordTable, error)
}

// Vault lifecycle errors.
var (
	ErrVaultDetached   = errors.New("vault is detached")
	ErrAlreadyAttached = errors.New("vault is already attached")
)

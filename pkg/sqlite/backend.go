// Package sqlite provides the public factory for the SQLite record backend
// while keeping its implementation internal.
package sqlite

import (
	"log/slog"

	"github.com/mesh-intelligence/satchel/internal/sqlite"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// NewBackend creates a detached SQLite vault. A nil logger means
// slog.Default().
//
// Example:
//
//	vault := sqlite.NewBackend(nil)
//	err := vault.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".satchel-db",
//	})
//	defer vault.Detach()
func NewBackend(logger *slog.Logger) types.Vault {
	var opts []sqlite.Option
	if logger != nil {
		opts = append(opts, sqlite.WithLogger(logger))
	}
	return sqlite.NewBackend(opts...)
}

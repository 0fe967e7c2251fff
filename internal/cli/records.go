package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/satchel/pkg/schema"
	"github.com/mesh-intelligence/satchel/pkg/sqlite"
	"github.com/mesh-intelligence/satchel/pkg/store"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// withRecords attaches the configured vault, runs fn against its record
// table, and detaches.
func (a *app) withRecords(fn func(types.RecordTable) error) (err error) {
	cfg, err := a.vaultConfig()
	if err != nil {
		return sysError(err)
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("config: %w", err))
	}

	vault := sqlite.NewBackend(a.logger)
	if err := vault.Attach(cfg); err != nil {
		return sysError(fmt.Errorf("attach backend: %w", err))
	}
	defer func() {
		if derr := vault.Detach(); derr != nil && err == nil {
			err = sysError(fmt.Errorf("detach backend: %w", derr))
		}
	}()

	table, err := vault.Records()
	if err != nil {
		return sysError(err)
	}
	return fn(table)
}

// openStore returns a store over an existing record.
func (a *app) openStore(table types.RecordTable, id string) (*store.Store, error) {
	if _, err := table.Get(id); err != nil {
		if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
			return nil, userError(fmt.Errorf("record %q not found", id))
		}
		return nil, sysError(fmt.Errorf("get record: %w", err))
	}
	host := store.NewRecordHost(table, id, a.descs...)
	return store.New(host, store.WithLogger(a.logger)), nil
}

// property looks up a declared property by name.
func (a *app) property(name string) (types.Descriptor, error) {
	d, err := schema.Lookup(a.descs, name)
	if err != nil {
		return nil, userError(fmt.Errorf("unknown property %q", name))
	}
	return d, nil
}

// storeError classifies an error returned by a store operation.
func storeError(err error) error {
	if errors.Is(err, types.ErrPropertyNotFound) || errors.Is(err, types.ErrTypeMismatch) {
		return userError(err)
	}
	return sysError(err)
}

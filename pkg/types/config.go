package types

import "errors"

// Config holds backend selection and parameters for Vault.Attach.
type Config struct {
	Backend      string        `json:"backend" yaml:"backend"`
	DataDir      string        `json:"data_dir" yaml:"data_dir"`
	SQLiteConfig *SQLiteConfig `json:"sqlite,omitempty" yaml:"sqlite,omitempty"`
}

// SQLiteConfig tunes the SQLite backend. A nil *SQLiteConfig means defaults.
type SQLiteConfig struct {
	SyncStrategy string `json:"sync_strategy" yaml:"sync_strategy"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Sync strategies decide when records.jsonl is rewritten.
const (
	SyncImmediate = "immediate"
	SyncOnClose   = "on_close"
)

// Config validation errors.
var (
	ErrBackendEmpty        = errors.New("backend must not be empty")
	ErrBackendUnknown      = errors.New("unknown backend")
	ErrSyncStrategyUnknown = errors.New("unknown sync strategy")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

var knownSyncStrategies = map[string]bool{
	"":            true,
	SyncImmediate: true,
	SyncOnClose:   true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.SQLiteConfig != nil && !knownSyncStrategies[c.SQLiteConfig.SyncStrategy] {
		return ErrSyncStrategyUnknown
	}
	return nil
}

// GetSyncStrategy returns the configured strategy, defaulting to immediate.
// Safe to call on a nil receiver.
func (c *SQLiteConfig) GetSyncStrategy() string {
	if c == nil || c.SyncStrategy == "" {
		return SyncImmediate
	}
	return c.SyncStrategy
}

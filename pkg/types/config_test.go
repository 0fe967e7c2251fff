package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", DataDir: "/tmp/data"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", DataDir: "/tmp/data"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "valid sqlite config",
			config:  Config{Backend: "sqlite", DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "sqlite with empty DataDir is valid at config level",
			config:  Config{Backend: "sqlite", DataDir: ""},
			wantErr: nil,
		},
		{
			name:    "on_close sync strategy is valid",
			config:  Config{Backend: "sqlite", SQLiteConfig: &SQLiteConfig{SyncStrategy: SyncOnClose}},
			wantErr: nil,
		},
		{
			name:    "unknown sync strategy returns ErrSyncStrategyUnknown",
			config:  Config{Backend: "sqlite", SQLiteConfig: &SQLiteConfig{SyncStrategy: "hourly"}},
			wantErr: ErrSyncStrategyUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSQLiteConfigGetSyncStrategy(t *testing.T) {
	var nilCfg *SQLiteConfig
	if got := nilCfg.GetSyncStrategy(); got != SyncImmediate {
		t.Errorf("nil config: got %q, want %q", got, SyncImmediate)
	}
	if got := (&SQLiteConfig{}).GetSyncStrategy(); got != SyncImmediate {
		t.Errorf("empty config: got %q, want %q", got, SyncImmediate)
	}
	if got := (&SQLiteConfig{SyncStrategy: SyncOnClose}).GetSyncStrategy(); got != SyncOnClose {
		t.Errorf("on_close config: got %q, want %q", got, SyncOnClose)
	}
}

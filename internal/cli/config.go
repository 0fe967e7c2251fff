package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/satchel/internal/paths"
	"github.com/mesh-intelligence/satchel/pkg/schema"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyBackend      = "backend"
	cfgKeyDataDir      = "data_dir"
	cfgKeySyncStrategy = "sync_strategy"
	cfgKeyLogLevel     = "log_level"
	cfgKeyProperties   = "properties"

	defaultLogLevel = "warn"
)

// configFile is the structure written to config.yaml on first run.
type configFile struct {
	Backend      string         `yaml:"backend"`
	DataDir      string         `yaml:"data_dir,omitempty"`
	SyncStrategy string         `yaml:"sync_strategy"`
	LogLevel     string         `yaml:"log_level"`
	Properties   []schema.Field `yaml:"properties"`
}

// defaultConfig declares a small example property set.
func defaultConfig() configFile {
	return configFile{
		Backend:      types.BackendSQLite,
		SyncStrategy: types.SyncImmediate,
		LogLevel:     defaultLogLevel,
		Properties: []schema.Field{
			{Name: "title", Kind: "text", Trim: true, MaxLength: 200},
			{Name: "priority", Kind: "enum", Values: []string{"low", "normal", "high"}, Default: "normal"},
			{Name: "tags", Kind: "set<text>"},
		},
	}
}

// loadConfig reads config.yaml from configDir, creating the directory and a
// default file on first run.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeySyncStrategy, types.SyncImmediate)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile writes defaultConfig to config.yaml if the file
// does not exist. An existing file is left alone.
func ensureDefaultConfigFile(configDir string) error {
	path := paths.ConfigFile(configDir)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# satchel configuration\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}

// vaultConfig assembles the backend config, resolving the data directory as
// --data-dir > data_dir > SATCHEL_DATA_DIR > $(CWD)/.satchel-db.
func (a *app) vaultConfig() (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, a.config.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	return types.Config{
		Backend: a.config.GetString(cfgKeyBackend),
		DataDir: dataDir,
		SQLiteConfig: &types.SQLiteConfig{
			SyncStrategy: a.config.GetString(cfgKeySyncStrategy),
		},
	}, nil
}

// newLogger builds a text handler on w at the named level.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log_level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

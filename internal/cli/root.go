// Package cli implements the satchel command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/satchel/internal/paths"
	"github.com/mesh-intelligence/satchel/pkg/schema"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	format    string
}

// app is the state shared by the subcommands of one invocation.
type app struct {
	flags  rootFlags
	config *viper.Viper
	logger *slog.Logger
	descs  []types.Descriptor
}

// NewRootCmd creates the top-level "satchel" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.Default()}
	root := &cobra.Command{
		Use:   "satchel",
		Short: "Typed property records stored as one text blob each",
		Long: "Satchel keeps records whose typed properties, declared in config.yaml,\n" +
			"are persisted together as a single escaped text blob.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")
	pf.StringVar(&a.flags.format, "format", formatText, "output format: text, json, or yaml")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newNewCmd(a),
		newGetCmd(a),
		newSetCmd(a),
		newClearCmd(a),
		newShowCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newDecodeCmd(a),
	)
	return root
}

// Execute runs the root command and exits with the matching code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "satchel:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// setup loads config.yaml, configures logging, and builds the property
// schema before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}
	if !validFormat(a.flags.format) {
		return userError(fmt.Errorf("unknown format %q (valid: text, json, yaml)", a.flags.format))
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	a.config = v

	logger, err := newLogger(v.GetString(cfgKeyLogLevel), cmd.ErrOrStderr())
	if err != nil {
		return userError(err)
	}
	a.logger = logger

	var fields []schema.Field
	if err := v.UnmarshalKey(cfgKeyProperties, &fields); err != nil {
		return userError(fmt.Errorf("read properties: %w", err))
	}
	descs, err := schema.Build(fields)
	if err != nil {
		return userError(fmt.Errorf("invalid properties: %w", err))
	}
	a.descs = descs

	a.logger.Debug("config loaded",
		"config_dir", configDir,
		"properties", len(descs),
	)
	return nil
}

// exitError carries the exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userError marks a failure caused by arguments or configuration.
func userError(err error) error { return &exitError{code: exitUserError, err: err} }

// sysError marks a failure of storage or the environment.
func sysError(err error) error { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error to an exit code. Errors raised by cobra itself,
// such as a wrong argument count, are user errors.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

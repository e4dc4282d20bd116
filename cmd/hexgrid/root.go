package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andreiashu/hexgrid"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

// app carries the state shared by every subcommand for one invocation.
type app struct {
	configDir string
	logLevel  string
	output    string

	cfg *viper.Viper
	log *hexgrid.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "hexgrid",
		Short:         "Hierarchical hexagonal grid tools",
		Long:          `hexgrid converts coordinates to grid cells and back, walks the grid, compacts cell sets and fills polygons.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: $HOME/.hexgrid)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().StringVar(&a.output, "output", "", "cell list format: text or json (overrides config)")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newBoundaryCmd(a),
		newDiskCmd(a),
		newRingCmd(a),
		newPathCmd(a),
		newCompactCmd(a),
		newUncompactCmd(a),
		newPolyfillCmd(a),
		newOutlineCmd(a),
		newEdgesCmd(a),
		newValidateCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration and builds the logger. Flags win over the config
// file and environment.
func (a *app) setup(cmd *cobra.Command) error {
	dir := a.configDir
	if dir == "" {
		d, err := defaultConfigDir()
		if err != nil {
			return err
		}
		dir = d
	}
	cfg, err := loadConfig(dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	if a.logLevel == "" {
		a.logLevel = cfg.GetString(cfgKeyLogLevel)
	}
	if a.output == "" {
		a.output = cfg.GetString(cfgKeyOutput)
	}
	if a.output != "text" && a.output != "json" {
		return fmt.Errorf("unknown output format %q", a.output)
	}

	level := hexgrid.ParseLevel(a.logLevel)
	if cfg.GetString(cfgKeyLogFormat) == "json" {
		a.log = hexgrid.NewJSONLogger(cmd.ErrOrStderr(), level)
	} else {
		a.log = hexgrid.NewTextLogger(cmd.ErrOrStderr(), level)
	}
	a.log.Debug("config loaded", "dir", dir, "file", cfg.ConfigFileUsed())
	return nil
}

// resolution returns the flag value when set, else the configured default.
func (a *app) resolution(flagRes int) (int, error) {
	res := flagRes
	if res < 0 {
		res = a.cfg.GetInt(cfgKeyResolution)
	}
	if res < 0 || res > hexgrid.MaxResolution {
		return 0, fmt.Errorf("resolution %d out of range 0..%d", res, hexgrid.MaxResolution)
	}
	return res, nil
}

// options returns the batch options derived from configuration.
func (a *app) options() []hexgrid.Option {
	n := a.cfg.GetInt(cfgKeyConcurrency)
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return []hexgrid.Option{
		hexgrid.WithConcurrency(n),
		hexgrid.WithLogger(a.log),
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hexgrid version",
		Args:  cobra.NoArgs,
		// version needs no configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "hexgrid", version)
		},
	}
}

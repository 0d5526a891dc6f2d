/* cmd/root.go */

package cmd

import (
	"fmt"
	"os"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronerr"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronicle"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/config"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// flagKeys maps persistent flag names onto option keys.
var flagKeys = map[string]string{
	"to-file-by-default": chronicle.KeyLogToFileByDefault,
	"timestamp":          chronicle.KeyLogTimestamp,
	"path":               chronicle.KeyPath,
	"prefix":             chronicle.KeyPrefix,
	"suffix":             chronicle.KeySuffix,
}

// runtime carries the state shared by every subcommand of one root.
type runtime struct {
	v        *viper.Viper
	cfgFile  string
	logLevel string
}

// NewRootCmd builds the chronicle command tree.
func NewRootCmd() *cobra.Command {
	rt := &runtime{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "chronicle",
		Short: "Colourised console logging with per-type log files",
		Long: `chronicle prints colourised, optionally timestamped messages and mirrors
them to per-type log files. Types, colours and overrides come from a YAML
config file, CHRONICLE_* environment variables and flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if rt.logLevel != "" {
				logger.Initialize(rt.logLevel)
			}
			return config.BindFlags(cmd.Root().PersistentFlags(), rt.v, flagKeys)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rt.cfgFile, "config", "", "config file (default "+config.DefaultPath()+" when present)")
	pf.StringVar(&rt.logLevel, "log-level", "", "diagnostic log level (debug, info, warn, error)")
	pf.Bool("to-file-by-default", false, "write every log type to its file unless told otherwise")
	pf.Bool("timestamp", false, "prefix console lines with a timestamp")
	pf.String("path", chronicle.DefaultPath, "log directory, relative to the working directory")
	pf.String("prefix", "", "text printed before every message")
	pf.String("suffix", "", "text printed after every message")

	root.AddCommand(
		newLogCmd(rt),
		newDebugCmd(rt),
		newTypesCmd(rt),
		newColoursCmd(),
		newShowCmd(rt),
		newConfigCmd(),
	)
	return root
}

// wrap runs fn with command lifecycle diagnostics.
func wrap(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return logger.WithCommandLogging(cmd.CommandPath(), func() error {
			return fn(cmd, args)
		})
	}
}

// open builds a Chronicle from the config file, environment and flags.
func (rt *runtime) open(cmd *cobra.Command) (*chronicle.Chronicle, error) {
	path := rt.cfgFile
	if path == "" {
		if _, err := os.Stat(config.DefaultPath()); err == nil {
			path = config.DefaultPath()
		}
	}

	f, err := config.Load(rt.v, path)
	if err != nil {
		return nil, err
	}
	return config.Build(f, chronicle.Options{Stdout: cmd.OutOrStdout()})
}

// Execute initializes and runs the root command.
func Execute() {
	defer func() {
		_ = logger.Sync()
	}()

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hints := chronerr.Hints(err); hints != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hints)
		}
		if chronerr.IsConfigError(err) {
			logger.L().Debug("CLI completed with configuration error", zap.Error(err))
			os.Exit(2)
		}
		os.Exit(1)
	}
}

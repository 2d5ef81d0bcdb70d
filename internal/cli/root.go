package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nxdevel/nx-misc/internal/config"
	"github.com/nxdevel/nx-misc/internal/logger"
	"github.com/nxdevel/nx-misc/pkg/timeutil"
)

// Global flags available to all subcommands.
var (
	cfgFile string
	noColor bool
	verbose bool
)

var log = logger.NewEnvLogger("[cli]")

// rootCmd is the base "nx" command.
var rootCmd = &cobra.Command{
	Use:   "nx",
	Short: "Small developer utilities",
	Long: `nx is a grab bag of small developer utilities: localized time,
partial-precision stamp parsing, field flattening, and a single-line
terminal status display.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			// The env-driven loggers key off NX_DEBUG.
			os.Setenv("NX_DEBUG", "1")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		configureColors(cfg)
		return nil
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.ConfigFileName+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig loads the effective configuration for this invocation.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	log.Debug("config loaded: timezone=%q color=%q", cfg.Timezone, cfg.Output.Color)
	return cfg, nil
}

// newClock builds the clock for time-related commands, honoring the
// configured timezone override. Zone resolution happens here, once per
// invocation, and the resulting clock is passed to whatever needs it.
func newClock(cfg *config.Config) (timeutil.Clock, error) {
	if cfg.Timezone != "" {
		loc, err := timeutil.LoadZone(cfg.Timezone)
		if err != nil {
			return timeutil.Clock{}, err
		}
		return timeutil.NewClock(loc), nil
	}
	return timeutil.NewClock(timeutil.LocalZone()), nil
}

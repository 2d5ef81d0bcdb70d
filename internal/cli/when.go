package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// stampFormat is the output layout for time commands: microsecond
// precision with the numeric zone offset.
const stampFormat = "2006-01-02T15:04:05.000000-07:00"

// nowCmd prints the localized current time.
var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the localized current time",
	Long: `Print the current time in the configured timezone.

The zone comes from the config file's timezone setting, else the TZ
environment variable, else the system-local zone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		clock, err := newClock(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), clock.Now().Format(stampFormat))
		return nil
	},
}

// whenCmd parses a partial-precision stamp and prints the completed time.
var whenCmd = &cobra.Command{
	Use:   "when [stamp]",
	Short: "Parse a partial-precision stamp",
	Long: `Parse a stamp with missing precision, filling the gaps from now.

Accepted forms:
  2026-08-30           - date only; time of day from now
  2026-08-30T14:05     - to the minute; seconds from now
  2026-08-30T14:05:09  - to the second; subseconds from now

With no argument, prints the current localized time. Filling from now
keeps successively parsed stamps monotonically increasing.

Examples:
  nx when 2026-08-30
  nx when 2026-08-30T14:05`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		clock, err := newClock(cfg)
		if err != nil {
			return err
		}

		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		when, err := clock.ParseStamp(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), when.Format(stampFormat))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(whenCmd)
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nxdevel/nx-misc/internal/util"
	"github.com/nxdevel/nx-misc/pkg/status"
)

var (
	demoCount         int
	demoInterval      time.Duration
	demoMessage       string
	demoIndeterminate bool
)

// demoCmd exercises the status display against a simulated workload.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Exercise the status display",
	Long: `Simulate a workload and render it with the status display.

With a count, shows the proportional bar and completed/total counter.
With --indeterminate, shows elapsed time and the message only. The
display only renders when stderr is an interactive terminal; in a
pipeline the demo runs silently.

Examples:
  nx demo
  nx demo --count 50 --interval 50ms
  nx demo --indeterminate --message "waiting for the phone to ring"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		count := cfg.Demo.Count
		if cmd.Flags().Changed("count") {
			count = demoCount
		}
		interval := cfg.Demo.Interval
		if cmd.Flags().Changed("interval") {
			interval = demoInterval
		}
		message := cfg.Demo.Message
		if cmd.Flags().Changed("message") {
			message = demoMessage
		}

		total := count
		if demoIndeterminate {
			total = 0
		}

		start := time.Now()
		d := status.New(message, total)
		defer d.Close()

		for i := 0; i < count; i++ {
			time.Sleep(interval)
			d.Tick()
		}
		d.Done()

		elapsed := time.Since(start).Round(time.Millisecond)
		fmt.Fprintf(cmd.OutOrStdout(), "%s simulated %d %s in %s\n",
			styled(ColorSuccess, SymbolSuccess),
			count,
			util.Pluralize(count, "item", "items"),
			styled(ColorMuted, elapsed.String()),
		)
		return nil
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoCount, "count", 0, "number of work items to simulate")
	demoCmd.Flags().DurationVar(&demoInterval, "interval", 0, "simulated per-item work duration")
	demoCmd.Flags().StringVar(&demoMessage, "message", "", "status line label")
	demoCmd.Flags().BoolVar(&demoIndeterminate, "indeterminate", false, "hide the bar and counter")

	rootCmd.AddCommand(demoCmd)
}

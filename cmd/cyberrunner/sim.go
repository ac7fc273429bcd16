package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyberrunner/internal/platform/headless"
)

var (
	flagDuration  time.Duration
	flagScript    string
	flagAutopilot bool
	flagRestart   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a display at a fixed time step and print a report:
ticks, simulated time, score, deaths, escalations and the final multipliers.

Input comes from a YAML script, the autopilot, or both. Without either the
runner stands still until the first drone arrives.

Script format:
  events:
    - at: 1.5        # seconds
      press: [jump]
    - at: 3
      for: 0.5       # hold duration in seconds
      hold: [right]

Examples:
  cyberrunner sim --seed 42
  cyberrunner sim --duration 5m --autopilot --restart
  cyberrunner sim --script run.yaml --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagDuration, "duration", headless.DefaultDuration, "Simulated time")
	simCmd.Flags().StringVar(&flagScript, "script", "", "YAML input script")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Jump over drones automatically")
	simCmd.Flags().BoolVar(&flagRestart, "restart", false, "Start a new run right after each death")
}

func runSim(cmd *cobra.Command, _ []string) {
	opts, err := sessionOptions(cmd)
	if err != nil {
		fail(err)
	}
	opts.Duration = flagDuration
	opts.ScriptPath = flagScript
	opts.Autopilot = flagAutopilot
	opts.Restart = flagRestart

	if err := launch(cmd, "headless", opts); err != nil {
		fail(err)
	}
}

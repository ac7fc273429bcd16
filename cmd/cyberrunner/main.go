// cyberrunner is a side-scrolling endless runner: jump over drones, survive
// as long as possible, and watch the world speed up.
//
// Usage:
//
//	cyberrunner play [frontend]  - Play (window, tui or headless; default window)
//	cyberrunner menu             - Pick a frontend interactively
//	cyberrunner list             - List available frontends
//	cyberrunner sim              - Run a headless simulation and print a report
//	cyberrunner config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom runner.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--assets <dir>        - Directory holding textures/ (default: .)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log file for the terminal frontend
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyberrunner/internal/core"

	// Import frontends to register them
	_ "github.com/vovakirdan/cyberrunner/internal/platform/headless"
	_ "github.com/vovakirdan/cyberrunner/internal/platform/tui"
	_ "github.com/vovakirdan/cyberrunner/internal/platform/window"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cyberrunner",
	Short: "CyberRunner - an endless runner",
	Long: `CyberRunner is a side-scrolling endless runner. Jump over the drones,
walk to buy time, and survive while the world keeps speeding up.

Available commands:
  play     - Play in a window, in the terminal, or headless
  menu     - Interactive frontend picker
  list     - Show all available frontends
  sim      - Headless simulation with a report
  config   - Print the default configuration

Examples:
  cyberrunner play
  cyberrunner play tui --difficulty hard
  cyberrunner sim --duration 2m --autopilot --seed 42
  cyberrunner config > configs/runner.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagAssets, "assets", ".", "Directory holding the textures/ folder")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file for the terminal frontend (default: no log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints err and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

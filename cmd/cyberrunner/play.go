package main

import (
	"github.com/spf13/cobra"
)

// defaultFrontend is used when play is given no frontend.
const defaultFrontend = "window"

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play CyberRunner",
	Long: `Start playing in the given frontend (default: window).

Frontends:
  window   - 800x600 window, needs the textures/ folder under --assets
  tui      - the same game drawn in the terminal
  headless - no display; see 'cyberrunner sim'

Controls:
  A / D      - Walk left / right
  Space      - Jump, or start a new run after dying
  P          - Pause
  Esc        - Quit

Difficulty options:
  easy   - First speed-up after 90 seconds
  normal - First speed-up after 60 seconds
  hard   - First speed-up after 40 seconds
  fixed  - The world never speeds up

Examples:
  cyberrunner play
  cyberrunner play tui --log-file runner.log
  cyberrunner play --difficulty hard --assets ./resources
  cyberrunner play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	id := defaultFrontend
	if len(args) == 1 {
		id = args[0]
	}

	opts, err := sessionOptions(cmd)
	if err != nil {
		fail(err)
	}
	if err := launch(cmd, id, opts); err != nil {
		fail(err)
	}
}

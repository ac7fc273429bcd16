package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyberrunner/internal/platform/tui"
	"github.com/vovakirdan/cyberrunner/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a frontend from a menu",
	Long: `Show an interactive picker of the available frontends.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Q            - Quit

Examples:
  cyberrunner menu
  cyberrunner menu --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	opts, err := sessionOptions(cmd)
	if err != nil {
		fail(err)
	}

	// The headless frontend needs sim flags; it is reached through 'sim'.
	var items []registry.Info
	for _, info := range registry.List() {
		if info.ID != "headless" {
			items = append(items, info)
		}
	}

	id, err := tui.RunMenu(items)
	if err != nil {
		fail(err)
	}
	if id == "" {
		return
	}
	if err := launch(cmd, id, opts); err != nil {
		fail(err)
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the setup menu",
	Long: `Start Space Defender in interactive menu mode.

Pick your name, difficulty and ship, then press Enter on Start.
After a game ends, press R to return to the menu and play again.

Controls:
  Up/Down      - Navigate menu
  Left/Right   - Change difficulty or ship
  Enter        - Start
  Tab          - High scores
  Esc/Ctrl+C   - Quit

Examples:
  spacedefender menu
  spacedefender menu --fps 30
  spacedefender menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addSessionFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	a, err := setup(setupOptions{logToFile: true, store: true, audio: true})
	if err != nil {
		fail("%v", err)
	}

	width, height := terminalSize()
	runErr := tui.RunSession(a.deps(), width, height)

	// Close before potential exit
	a.Close()

	if runErr != nil {
		fail("running menu: %v", runErr)
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/platform/gui"
	"github.com/vovakirdan/space-defender/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session right away",
	Long: `Start playing without the setup menu. Name, difficulty and ship
come from the config file and the flags below.

Controls:
  Arrows/WASD  - Move
  Space        - Shoot
  P            - Pause
  Esc          - Abandon the session (not recorded)
  R            - Leave the game-over screen
  Q/Ctrl+C     - Quit

Difficulty options:
  easy, normal, hard, extreme  - Presets 1, 3, 5 and 7
  <number>                     - Any positive custom value

Examples:
  spacedefender play
  spacedefender play --difficulty hard --ship interceptor
  spacedefender play --name Nova --seed 42`,
	Run: runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play in an 800x600 window. The window sees real key releases, so
movement follows the keys exactly.

Controls:
  Arrows/WASD  - Move
  Space        - Shoot (hold to keep firing)
  P            - Pause
  R            - Play again after game over
  Esc/Q        - Quit

Examples:
  spacedefender window
  spacedefender window --ship cruiser --difficulty extreme`,
	Run: runWindow,
}

func init() {
	addSessionFlags(playCmd)
	addSessionFlags(windowCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	a, err := setup(setupOptions{logToFile: true, store: true, audio: true})
	if err != nil {
		fail("%v", err)
	}

	width, height := terminalSize()
	runErr := tui.Run(a.deps(), width, height)

	a.Close()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

func runWindow(_ *cobra.Command, _ []string) {
	a, err := setup(setupOptions{store: true, audio: true})
	if err != nil {
		fail("%v", err)
	}

	runErr := gui.Run(gui.Options{
		Store:    a.store,
		Recorder: a.recorder,
		Audio:    a.audioSink(),
		Runtime:  a.runtime(),
		Session:  a.session(),
		Logger:   a.logger,
	})

	a.Close()

	if runErr != nil {
		fail("running window: %v", runErr)
	}
}

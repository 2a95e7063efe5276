// spacedefender is a vertical arcade shooter for the terminal, a desktop
// window or an SSH session.
//
// Usage:
//
//	spacedefender                - Setup menu, then play (same as "menu")
//	spacedefender menu           - Setup menu, game and high-score table
//	spacedefender play           - Start a session right away
//	spacedefender window         - Play in an 800x600 desktop window
//	spacedefender serve          - Start SSH server for remote play
//	spacedefender scores         - Show or clear the high-score table
//	spacedefender sim            - Run a headless session with the autopilot
//
// Global flags:
//
//	--config <path>     - Config file (.yaml or .toml)
//	--db <dsn>          - SQLite path or postgres:// URL
//	--fps <rate>        - Tick rate (default: from config)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagNoAudio  bool
	flagVolume   float64

	// Session flags, shared by play, menu, window and sim
	flagName       string
	flagDifficulty string
	flagShip       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacedefender",
	Short: "Space Defender - a vertical arcade shooter",
	Long: `Space Defender is a vertical arcade shooter. Fly your ship along the
bottom of the field, shoot down the waves of enemies and survive as many
levels as you can.

Available commands:
  menu     - Setup menu, game and high-score table (default)
  play     - Start a session right away
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View or clear the high scores
  sim      - Run a headless session driven by the autopilot

Examples:
  spacedefender
  spacedefender play --difficulty hard --ship cruiser
  spacedefender window --name Nova
  spacedefender serve --ssh :2222
  spacedefender scores --db postgres://localhost/defender
  spacedefender sim --seed 42`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Results store: SQLite path or postgres:// URL (default: from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (default: from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound effects")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", -1, "Sound volume from 0 to 1 (default: from config)")

	addSessionFlags(rootCmd)

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// addSessionFlags registers the pilot settings on a command.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagName, "name", "", "Player name (default: from config)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, normal, hard, extreme or a positive number")
	cmd.Flags().StringVar(&flagShip, "ship", "", "Ship: standard, interceptor or cruiser")
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

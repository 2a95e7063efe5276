package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/ticker"
)

var (
	flagSimTicks  int
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session with the autopilot",
	Long: `Run a session without a display, driven by the built-in autopilot.
The session is stepped at the nominal tick interval as fast as possible, so
a given seed always produces the same result and state hash.

Examples:
  spacedefender sim --seed 42
  spacedefender sim --seed 42 --difficulty extreme --ticks 20000
  spacedefender sim --record --name Autopilot`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	addSessionFlags(simCmd)
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 100000, "Maximum ticks to run (0 = until game over)")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the result to the results store")
}

func runSim(_ *cobra.Command, _ []string) {
	a, err := setup(setupOptions{store: flagSimRecord})
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	rc := a.runtime()
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	var opts defender.Options
	if a.recorder != nil {
		opts.Results = a.recorder
	}
	game := defender.New(rc, a.session(), opts)
	runner := ticker.New(game, ticker.Options{
		Controller: defender.NewAutopilot(),
		Logger:     a.logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	snap := runner.Simulate(ctx, flagSimTicks)
	res := runner.Result()

	fmt.Printf("Seed:       %d\n", rc.Seed)
	fmt.Printf("Player:     %s (%s)\n", res.PlayerName, res.Ship)
	fmt.Printf("Difficulty: %s\n", res.DifficultyLabel)
	fmt.Printf("State:      %s after %d ticks (%v game time, %v wall)\n",
		snap.State, snap.Tick, snap.Now.Round(time.Millisecond), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Score:      %d\n", res.Score)
	fmt.Printf("Level:      %d\n", res.Level)
	fmt.Printf("Hash:       %016x\n", snap.Hash())

	if a.recorder != nil && snap.State == defender.StateGameOver {
		flushCtx, cancel := context.WithTimeout(context.Background(), openTimeout)
		defer cancel()
		if err := a.recorder.Flush(flushCtx); err != nil {
			a.logger.Warn("could not flush result", "err", err)
		}
	}
}

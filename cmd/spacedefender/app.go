package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/space-defender/internal/audio"
	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/platform/tui"
	"github.com/vovakirdan/space-defender/internal/storage"
)

const (
	logFileName = "spacedefender.log"
	openTimeout = 10 * time.Second
)

// setupOptions selects the collaborators a command needs.
type setupOptions struct {
	logToFile bool // Full-screen commands must not log to the terminal
	store     bool
	audio     bool
}

// app holds the collaborators shared by the commands. Store, recorder and
// player are nil when unavailable.
type app struct {
	cfg      config.Config
	logger   *log.Logger
	logFile  *os.File
	store    storage.Results
	recorder *storage.Recorder
	player   *audio.Player
}

// setup loads the configuration, applies the global flags and opens the
// requested collaborators. Storage and audio failures are not fatal.
func setup(opts setupOptions) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		cfg.Storage.DSN = flagDBPath
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	if err := applySessionFlags(&cfg); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	if err := a.openLogger(opts.logToFile); err != nil {
		return nil, err
	}

	if opts.store {
		a.openStore()
	}
	if opts.audio && cfg.Audio.Enabled {
		a.player = audio.NewPlayer(audio.Config{
			Enabled: true,
			Volume:  cfg.Audio.Volume,
		}, audio.SynthBank{}, a.logger)
		if flagVolume >= 0 {
			a.player.SetVolume(flagVolume)
		}
		if err := a.player.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
		}
	}
	return a, nil
}

// applySessionFlags overrides the session section with the command flags.
func applySessionFlags(cfg *config.Config) error {
	if flagName != "" {
		cfg.Session.PlayerName = flagName
	}
	if flagDifficulty != "" {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
		cfg.Session.Difficulty = flagDifficulty
	}
	if flagShip != "" {
		if _, err := config.ParseShip(flagShip); err != nil {
			return err
		}
		cfg.Session.Ship = flagShip
	}
	return nil
}

func (a *app) openLogger(toFile bool) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	if toFile {
		w = io.Discard
		if dir := config.UserDir(); dir != "" {
			if err := os.MkdirAll(dir, 0o700); err == nil {
				f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err == nil {
					a.logFile = f
					w = f
				}
			}
		}
	}

	a.logger = log.NewWithOptions(w, log.Options{
		Prefix:          "spacedefender",
		ReportTimestamp: true,
		Level:           level,
	})
	return nil
}

func (a *app) openStore() {
	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	store, err := storage.Open(ctx, config.ExpandHome(a.cfg.Storage.DSN))
	if err != nil {
		// Continue without storage - the game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open results store: %v\n", err)
		a.logger.Warn("results store unavailable", "err", err)
		return
	}
	a.store = store
	a.recorder = storage.NewRecorder(store, a.logger, a.cfg.Storage.SaveTimeout)
}

// runtime returns the core configuration with --fps and --seed applied.
func (a *app) runtime() core.RuntimeConfig {
	rc := a.cfg.Runtime(flagSeed)
	if flagFPS > 0 {
		rc.TickRate = flagFPS
		rc.Interval = 0
	}
	return rc
}

// session returns the pilot settings from config and flags.
func (a *app) session() defender.SessionConfig {
	return a.cfg.DefenderSession()
}

// audioSink returns the player as a sink, or nil without one.
func (a *app) audioSink() defender.AudioSink {
	if a.player == nil {
		return nil
	}
	return a.player
}

// deps bundles the collaborators for the terminal frontend.
func (a *app) deps() tui.Deps {
	return tui.Deps{
		Store:    a.store,
		Recorder: a.recorder,
		Audio:    a.audioSink(),
		Runtime:  a.runtime(),
		Session:  a.session(),
		Logger:   a.logger,
	}
}

// Close flushes pending results and releases everything setup opened.
func (a *app) Close() {
	if a.recorder != nil {
		a.recorder.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("could not close results store", "err", err)
		}
	}
	if a.player != nil {
		a.player.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// terminalSize returns the terminal dimensions, or 80x24 when unknown.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

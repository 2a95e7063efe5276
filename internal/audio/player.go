// Package audio plays the game's sound cues through the system speaker.
// Initialization failure is not fatal: the player then drops every cue.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-defender/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	maxVoices  = 12 // Cues beyond this many concurrent voices are dropped
)

// Config controls the cue player.
type Config struct {
	Enabled bool
	Volume  float64 // 0.0 = silent, 1.0 = full
}

// Player mixes cues onto the speaker. It satisfies defender.AudioSink and
// never blocks the caller beyond a brief speaker lock.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	bank        Bank
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
}

// NewPlayer creates a player using bank for cue synthesis. A nil bank uses
// SynthBank; a nil logger discards messages. Call Init before playing.
func NewPlayer(cfg Config, bank Bank, logger *log.Logger) *Player {
	if bank == nil {
		bank = SynthBank{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.Volume = core.ClampFloat(cfg.Volume, 0, 1)
	return &Player{
		cfg:    cfg,
		bank:   bank,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. A disabled player does nothing.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, continuing without sound", "err", err)
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Ready reports whether cues will be heard.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// SetVolume changes the volume for cues started after the call.
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.Volume = core.ClampFloat(vol, 0, 1)
}

// PlayCue starts a cue. Unknown cues and calls before Init are ignored.
func (p *Player) PlayCue(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := p.bank.Streamer(cue, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.mixer.Len() >= maxVoices {
		return
	}
	p.mixer.Add(withVolume(s, p.cfg.Volume))
}

// Close silences all voices and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

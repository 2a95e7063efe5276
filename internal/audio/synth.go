package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/space-defender/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a finite oscillator with an optional linear pitch sweep.
type tone struct {
	from, to float64 // Start and end frequency in Hz
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	rng      *rand.Rand
}

// NewTone returns a streamer that plays for d, sweeping from one frequency to another.
func NewTone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
		rng:   rand.New(rand.NewSource(int64(from*1000) + int64(d))), //#nosec G404 -- noise synthesis
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.total {
			return i, true
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		case WaveNoise:
			val = t.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.position) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which is expected to last d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.total-e.release {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s linearly. math.Log2(0) is -Inf, so zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func shaped(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(from, to, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Bank builds a fresh streamer for a cue. Streamers are single-use.
type Bank interface {
	Streamer(cue core.Cue, rate beep.SampleRate) beep.Streamer
}

// SynthBank synthesizes every cue from oscillators, so no sample files ship.
type SynthBank struct{}

// Streamer returns the synthesized cue, or nil for unknown cues.
func (SynthBank) Streamer(cue core.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case core.CueShoot:
		return withVolume(shaped(1400, 700, 80*time.Millisecond, WaveSquare, rate), 0.25)
	case core.CueHit:
		return withVolume(shaped(320, 260, 60*time.Millisecond, WaveSaw, rate), 0.4)
	case core.CueExplosion:
		return withVolume(shaped(0, 0, 300*time.Millisecond, WaveNoise, rate), 0.5)
	case core.CuePlayerHit:
		return beep.Mix(
			withVolume(shaped(180, 60, 250*time.Millisecond, WaveSaw, rate), 0.5),
			withVolume(shaped(0, 0, 250*time.Millisecond, WaveNoise, rate), 0.3),
		)
	case core.CueLevelUp:
		return beep.Seq(
			withVolume(shaped(523.25, 523.25, 90*time.Millisecond, WaveSquare, rate), 0.3),
			withVolume(shaped(659.25, 659.25, 90*time.Millisecond, WaveSquare, rate), 0.3),
			withVolume(shaped(783.99, 783.99, 90*time.Millisecond, WaveSquare, rate), 0.3),
			withVolume(shaped(1046.5, 1046.5, 200*time.Millisecond, WaveSquare, rate), 0.3),
		)
	case core.CueGameOver:
		return beep.Seq(
			withVolume(shaped(392, 392, 200*time.Millisecond, WaveSaw, rate), 0.4),
			withVolume(shaped(311.13, 311.13, 200*time.Millisecond, WaveSaw, rate), 0.4),
			withVolume(shaped(261.63, 130.81, 500*time.Millisecond, WaveSaw, rate), 0.4),
		)
	case core.CueSessionStart:
		sine, err := generators.SineTone(rate, 880)
		if err != nil {
			return nil
		}
		d := 150 * time.Millisecond
		return withVolume(NewEnvelope(beep.Take(rate.N(d), sine), d, 10*time.Millisecond, 100*time.Millisecond, rate), 0.3)
	}
	return nil
}

package assets

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/arenablitz/arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// ErrAudioDisabled is returned by Init when the player was created muted.
var ErrAudioDisabled = errors.New("assets: audio disabled")

// Player owns the speaker and mixes sound effects. Until Init succeeds
// every Play call is a no-op, so games run the same with or without an
// audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *log.Logger
	muted       bool
	initialized bool
}

// NewPlayer creates a player. A muted player never opens the speaker.
func NewPlayer(logger *log.Logger, muted bool) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
		muted:  muted,
	}
}

// Init opens the speaker and starts the mixer. Failure leaves the player
// silent; the error is logged and returned for the caller's information.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if p.muted {
		return ErrAudioDisabled
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		if p.logger != nil {
			p.logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
		return fmt.Errorf("assets: speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether sounds actually reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play mixes a sound in. Nil sounds are silent.
func (p *Player) Play(s *Sound) {
	if s == nil {
		return
	}

	var streamer beep.Streamer = s.Streamer()
	if rate := s.Format().SampleRate; rate != sampleRate {
		streamer = beep.Resample(4, rate, sampleRate, streamer)
	}
	p.add(streamer)
}

// Tone plays a short sine tone, used for menu feedback.
func (p *Player) Tone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	p.add(beep.Take(sampleRate.N(d), sine))
}

func (p *Player) add(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Bank maps game events to the sounds that announce them.
type Bank map[core.Event]*Sound

// eventSounds names the file played for each event.
var eventSounds = map[core.Event]string{
	core.EventCollect:     "collect.wav",
	core.EventWaveCleared: "wave.wav",
	core.EventGameOver:    "gameover.wav",
}

// LoadBank loads the event sounds for a game. Missing files are logged by
// the loader and stay silent.
func LoadBank(l *Loader, game string) Bank {
	bank := make(Bank, len(eventSounds))
	for ev, file := range eventSounds {
		bank[ev] = l.Sound(game, file)
	}
	return bank
}

// Play plays the sound for every event, in order.
func (b Bank) Play(p *Player, events []core.Event) {
	if p == nil {
		return
	}
	for _, ev := range events {
		p.Play(b[ev])
	}
}

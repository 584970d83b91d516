// Package audio plays the optional resonance cues: a chime when a
// toroidal pulse fires and a lower tone when a sigil spawns. Audio is
// never required; if the speaker cannot initialize the scryer runs
// silently.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine owns the speaker session.
type Engine struct {
	enabled bool
}

// NewEngine initializes the speaker. Failure is non-fatal and leaves the
// engine muted.
func NewEngine(enabled bool) *Engine {
	if !enabled {
		return &Engine{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return &Engine{}
	}
	return &Engine{enabled: true}
}

func (e *Engine) play(streamer beep.Streamer, d time.Duration) {
	if !e.enabled {
		return
	}
	quiet := &effects.Gain{
		Streamer: beep.Take(sampleRate.N(d), streamer),
		Gain:     -0.8,
	}
	speaker.Play(quiet)
}

// PulseChime marks a toroidal pulse firing.
func (e *Engine) PulseChime() {
	sine, err := generators.SineTone(sampleRate, 392)
	if err != nil {
		return
	}
	e.play(sine, 90*time.Millisecond)
}

// SigilTone marks a sigil spawn.
func (e *Engine) SigilTone() {
	sine, err := generators.SineTone(sampleRate, 147)
	if err != nil {
		return
	}
	e.play(sine, 140*time.Millisecond)
}

// Close shuts the speaker down.
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
	}
}

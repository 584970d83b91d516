package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lmtlss/scryer/audio"
	"github.com/lmtlss/scryer/config"
	"github.com/lmtlss/scryer/constant"
	"github.com/lmtlss/scryer/engine"
	"github.com/lmtlss/scryer/entropy"
	"github.com/lmtlss/scryer/glyph"
	"github.com/lmtlss/scryer/render"
	"github.com/lmtlss/scryer/sigil"
)

// Scryer owns the frame loop and all cross-frame state. The simulation
// is single-threaded: every field below is touched only inside run.
type Scryer struct {
	screen tcell.Screen
	cfg    config.Config

	compositor *render.Compositor
	state      *engine.State
	source     entropy.Source
	roller     *entropy.Roller
	sound      *audio.Engine

	pool  []byte
	start time.Time
}

// NewScryer boots the terminal session and the immutable configuration
// objects (catalog, registry, palette). Everything mutable starts empty.
func NewScryer(cfg config.Config) (*Scryer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.Clear()

	catalog := glyph.BuildCatalog()
	registry := sigil.LoadRegistry(
		filepath.Join(cfg.AssetRoot, "verified_sigils", "index.json"),
		[]string{
			filepath.Join(cfg.AssetRoot, "verified_sigils", "pbm"),
			cfg.AssetRoot,
		},
	)
	palette := render.NewPalette(screen.Colors() >= 256)
	source := entropy.NewSource()

	return &Scryer{
		screen:     screen,
		cfg:        cfg,
		compositor: render.NewCompositor(catalog, registry, palette),
		state:      engine.NewState(),
		source:     source,
		roller:     entropy.NewRoller(source),
		sound:      audio.NewEngine(cfg.Audio),
		start:      time.Now(),
	}, nil
}

// fillPool refreshes the per-cell entropy buffer. If the OS source goes
// away mid-run, the loop degrades permanently to the seeded fallback
// instead of halting.
func (s *Scryer) fillPool(cells int) {
	if cap(s.pool) < cells {
		s.pool = make([]byte, cells)
	}
	s.pool = s.pool[:cells]
	if err := s.source.Fill(s.pool); err != nil {
		s.source = entropy.NewSeededSource()
		s.source.Fill(s.pool)
	}
}

func (s *Scryer) drawMessage(msg string) {
	s.screen.Clear()
	style := s.compositor.Palette.Logo
	for i, r := range msg {
		s.screen.SetContent(i, 0, r, nil, style)
	}
	s.screen.Show()
}

// frame advances and presents one frame. While the viewport is too small
// the simulation does not advance; time-based scalars are wall-clock
// driven, so no warm-up is lost.
func (s *Scryer) frame() {
	width, height := s.screen.Size()
	if width < constant.MinWidth || height < constant.MinHeight {
		s.drawMessage("Terminal too small")
		return
	}

	t := time.Since(s.start).Seconds()
	s.fillPool(width * height)
	s.screen.Clear()

	pulsesBefore := len(s.state.Pulses)
	sigilsBefore := len(s.state.Sigils)

	s.state.Step(s.pool, t, width, height, s.roller, s.compositor.Registry)

	if len(s.state.Pulses) > pulsesBefore {
		s.sound.PulseChime()
	}
	if len(s.state.Sigils) > sigilsBefore {
		s.sound.SigilTone()
	}

	s.compositor.RenderFrame(s.screen, s.state, s.pool, t, width, height, s.roller)
	s.screen.Show()
}

func (s *Scryer) run() {
	interval := time.Second / time.Duration(s.cfg.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	// Pre-buffered shell keypresses (the launch Enter) must not collapse
	// the fullscreen immediately.
	guardUntil := s.start.Add(constant.StartupKeyGuard)

	for {
		select {
		case ev := <-events:
			switch ev.(type) {
			case *tcell.EventResize:
				s.screen.Sync()
			case *tcell.EventKey:
				if time.Now().After(guardUntil) {
					return
				}
			}

		case <-ticker.C:
			s.frame()
		}
	}
}

func (s *Scryer) cleanup() {
	s.sound.Close()
	s.screen.Fini()
}

func main() {
	scryer, err := NewScryer(config.Load("scryer.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer scryer.cleanup()

	scryer.run()
}

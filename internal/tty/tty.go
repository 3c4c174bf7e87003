// Package tty runs the playground in a terminal using half-block pixels.
package tty

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"playground/internal/audio"
	"playground/internal/config"
	"playground/internal/sim"
)

// Frontend owns a screen and a world and draws one into the other.
type Frontend struct {
	screen tcell.Screen
	world  *sim.World
	raster *Raster
	input  *input
	clock  *sim.FrameClock
	shapes []sim.Shape

	textStyle   tcell.Style
	hintStyle   tcell.Style
	bannerStyle tcell.Style
}

// New wraps an initialized screen.
func New(screen tcell.Screen, cfg *config.Config, seed uint64, log *zap.Logger) *Frontend {
	if log == nil {
		log = zap.NewNop()
	}
	cols, lines := screen.Size()
	bg := rgbColor(sim.RayWhite)
	f := &Frontend{
		screen:      screen,
		world:       sim.NewWorld(seed, log),
		raster:      NewRaster(cols, lines, sim.RayWhite),
		clock:       sim.NewFrameClock(cfg.Sim.MaxFrameTime),
		textStyle:   tcell.StyleDefault.Foreground(rgbColor(sim.Black)).Background(bg),
		hintStyle:   tcell.StyleDefault.Foreground(rgbColor(sim.DarkGray)).Background(bg),
		bannerStyle: tcell.StyleDefault.Foreground(rgbColor(sim.Red)).Background(bg).Bold(true),
	}
	f.input = newInput(cfg.Terminal.KeyHold, sim.V(-sim.ArenaWidth, -sim.ArenaHeight))
	return f
}

func rgbColor(c sim.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (f *Frontend) World() *sim.World { return f.world }

// Handle applies one terminal event. It returns false once the user asked
// to quit.
func (f *Frontend) Handle(ev tcell.Event, now float64) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		f.input.key(ev, now)
	case *tcell.EventMouse:
		f.input.mouse(ev, f.raster)
	case *tcell.EventResize:
		cols, lines := ev.Size()
		f.raster.Resize(cols, lines)
		f.screen.Sync()
	}
	return !f.input.quit
}

// Frame advances the world to now and redraws.
func (f *Frontend) Frame(now float64) {
	dt := f.clock.Tick(now)
	f.world.Step(dt, f.input.intent(now))

	f.raster.Clear()
	f.shapes = f.world.Shapes(f.shapes)
	f.raster.Draw(f.shapes)
	f.raster.Present(f.screen)

	hud := f.world.HUD()
	hud.FPS = f.clock.FPS()
	f.drawHUD(hud)
	f.screen.Show()
}

func (f *Frontend) drawHUD(h sim.HUD) {
	_, lines := f.screen.Size()
	for i, line := range h.Lines() {
		f.text(1, i, line, f.textStyle)
	}
	f.text(1, lines-2, h.FPSLine(), f.textStyle)
	f.text(1, lines-1, sim.ControlsHint, f.hintStyle)
	if h.Paused {
		const banner = " PAUSED "
		cols, _ := f.screen.Size()
		f.text((cols-len(banner))/2, lines/2, banner, f.bannerStyle)
	}
}

func (f *Frontend) text(x, y int, s string, style tcell.Style) {
	cols, _ := f.screen.Size()
	for _, ch := range s {
		if x >= cols {
			return
		}
		f.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Run opens the terminal, plays until Esc or Ctrl-C and restores it.
func Run(cfg *config.Config, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tty screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tty init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	f := New(screen, cfg, seed, log)

	sfx := audio.New(cfg.Audio, log)
	defer sfx.Close()
	sfx.Attach(f.world.Events)

	cols, lines := screen.Size()
	log.Info("terminal frontend started",
		zap.Uint64("seed", seed),
		zap.Int("cols", cols),
		zap.Int("lines", lines),
		zap.Int("fps", cfg.Terminal.FPS),
	)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Terminal.FPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	start := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !f.Handle(ev, time.Since(start).Seconds()) {
				log.Info("terminal frontend stopped", zap.Uint64("frames", f.world.Frame))
				return nil
			}
		case <-ticker.C:
			f.Frame(time.Since(start).Seconds())
		}
	}
}

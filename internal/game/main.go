//go:build !android

package game

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"playground/internal/audio"
	"playground/internal/config"
	"playground/internal/sim"
)

// RunDesktop opens a window and runs the playground until it is closed
// or Esc is pressed.
func RunDesktop(cfg *config.Config, log *zap.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("opengl ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	world := sim.NewWorld(seed, log)
	sfx := audio.New(cfg.Audio, log)
	defer sfx.Close()
	sfx.Attach(world.Events)

	cam := Camera{X: sim.ArenaWidth / 2, Y: sim.ArenaHeight / 2, Zoom: cfg.Window.Scale}
	shakeRng := sim.NewRand(seed ^ 0x5A4E)
	world.Events.Subscribe(sim.EventBallPopped, func(e sim.Event) {
		cam.AddShake(ShakeForPop(e.Radius), ShakeDuration)
	})

	input := NewInput()
	clock := sim.NewFrameClock(cfg.Sim.MaxFrameTime)
	var shapes []sim.Shape
	var spriteBuf []float32

	log.Info("desktop frontend started",
		zap.Uint64("seed", seed),
		zap.Int("balls", len(world.Balls)),
	)

	for !window.ShouldClose() {
		dt := clock.Tick(glfw.GetTime())

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// Always fit the full arena on screen.
		UpdateAutoCamera(&cam, fbW, fbH)

		world.Step(dt, input.Poll(window, cam, fbW, fbH))
		cam.UpdateShake(dt, shakeRng)

		rend.BeginFrame(fbW, fbH)
		shapes = world.Shapes(shapes)
		spriteBuf = AppendSprites(spriteBuf[:0], shapes)
		rend.DrawSprites(spriteBuf, cam, fbW, fbH)

		hud := world.HUD()
		hud.FPS = clock.FPS()
		RenderHUD(rend, hud, cam, fbW, fbH)

		window.SwapBuffers()
	}

	log.Info("desktop frontend stopped", zap.Uint64("frames", world.Frame))
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/lumen/internal/logging"
	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/render"
)

const (
	spinImpulse = 3.0 // rad/s added per arrow key press
	zoomStep    = 0.5
	minDistance = 1.0
	maxDistance = 20.0
)

func newViewCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "view <model>",
		Short: "Spin a model in the terminal",
		Long: `Render a model in the terminal using half-block characters.

The model is a path to an .obj, .glb or .gltf file, or one of the built-in
primitives (box, cylinder, sphere).

Controls:
  left/right, a/d  spin faster in either direction
  +/-              zoom in/out
  r                reset spin and zoom
  q, esc, ctrl+c   quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			// The terminal is the display, so logs only go to --log-file.
			closeLog, err := cfg.setupLogging(nil, openLogFile)
			if err != nil {
				return err
			}
			defer closeLog()
			return runView(cmd.Context(), cfg, args[0])
		},
	}
}

func openLogFile(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// viewer holds the state the event handler changes between frames.
type viewer struct {
	scene    render.Scene
	home     math3d.Vec3 // camera position to reset to
	object   *render.Object3D
	boost    *spinBoost
	cols     int
	rows     int
	quit     bool
	dropped  int
	renderer *render.Renderer
}

// handle applies one terminal event.
func (v *viewer) handle(ev uv.Event) {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		v.cols, v.rows = ev.Width, ev.Height

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape", "ctrl+c", "q"):
			v.quit = true
		case ev.MatchString("left", "a"):
			v.boost.Impulse(-spinImpulse)
		case ev.MatchString("right", "d"):
			v.boost.Impulse(spinImpulse)
		case ev.MatchString("+", "="):
			v.zoom(zoomStep)
		case ev.MatchString("-", "_"):
			v.zoom(-zoomStep)
		case ev.MatchString("r"):
			v.boost.Reset()
			v.scene.Camera.Position = v.home
		}
	}
}

// zoom moves the camera along z, toward the object for positive dz. Moves
// that leave the allowed distance range are ignored.
func (v *viewer) zoom(dz float64) {
	cam := &v.scene.Camera.Position
	// Objects are placed at -Position.
	dist := -v.object.Position.Z - (cam.Z + dz)
	if dist < minDistance || dist > maxDistance {
		return
	}
	cam.Z += dz
}

// frame renders and presents one frame elapsed into the animation.
// A zero-sized terminal skips the frame.
func (v *viewer) frame(scr render.CellSetter, elapsed time.Duration) error {
	if v.cols <= 0 || v.rows <= 0 {
		return nil
	}
	v.boost.Update()
	v.object.Advance(elapsed)
	v.object.Rotation += v.boost.Offset

	w, h := render.TerminalSize(v.cols, v.rows)
	buf, err := v.renderer.Render(w, h, v.scene, v.object)
	if err != nil {
		return err
	}
	err = buf.Draw(scr, uv.Rect(0, 0, v.cols, v.rows))
	if errors.Is(err, render.ErrSizeMismatch) {
		v.dropped++
		logging.Logger().Warn("dropped frame", "err", err)
		return nil
	}
	return err
}

func runView(ctx context.Context, cfg *config, source string) error {
	obj, err := cfg.loadObject(source)
	if err != nil {
		return err
	}
	scene, err := cfg.scene()
	if err != nil {
		return err
	}
	bg, err := cfg.backgroundColor()
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()
	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	v := &viewer{
		scene:    scene,
		home:     scene.Camera.Position,
		object:   obj,
		boost:    newSpinBoost(cfg.fps),
		cols:     cols,
		rows:     rows,
		renderer: render.NewRenderer(bg),
	}
	logging.Logger().Info("viewer started", "model", source, "cols", cols, "rows", rows, "fps", cfg.fps)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan uv.Event, 64)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.fps))
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			logging.Logger().Info("viewer stopped", "dropped", v.dropped)
			return nil

		case ev := <-events:
			v.handle(ev)
			if v.quit {
				return nil
			}
			if _, ok := ev.(uv.WindowSizeEvent); ok {
				term.Erase()
				term.Resize(v.cols, v.rows)
			}

		case <-ticker.C:
			if err := v.frame(term, time.Since(start)); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taigrr/lumen/internal/logging"
	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/models"
	"github.com/taigrr/lumen/pkg/render"
)

// vec3Value is a pflag.Value for "x,y,z" flags.
type vec3Value math3d.Vec3

func (v *vec3Value) String() string {
	return formatVec3(math3d.Vec3(*v))
}

func (v *vec3Value) Set(s string) error {
	p, err := parseVec3(s)
	if err != nil {
		return err
	}
	*v = vec3Value(p)
	return nil
}

func (v *vec3Value) Type() string { return "x,y,z" }

func parseVec3(s string) (math3d.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math3d.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var xyz [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		xyz[i] = f
	}
	return math3d.V3(xyz[0], xyz[1], xyz[2]), nil
}

func formatVec3(v math3d.Vec3) string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	return f(v.X) + "," + f(v.Y) + "," + f(v.Z)
}

// config is shared by every command.
type config struct {
	camera     vec3Value
	viewDir    vec3Value
	light      vec3Value
	position   vec3Value
	lightColor string
	background string
	color      string
	spin       float64
	fps        int
	cells      int
	verbose    bool
	logFile    string
}

func defaultConfig() *config {
	cam := render.DefaultCamera()
	light := render.DefaultLight()
	return &config{
		camera:     vec3Value(cam.Position),
		viewDir:    vec3Value(cam.ViewDir),
		light:      vec3Value(light.Position),
		lightColor: "#ff4d00",
		background: "#111111",
		spin:       1,
		fps:        60,
		cells:      models.DefaultPrimitiveCells,
	}
}

func (c *config) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.Var(&c.camera, "camera", "camera position")
	f.Var(&c.viewDir, "view-dir", "view direction used for specular highlights")
	f.Var(&c.light, "light", "point light position")
	f.Var(&c.position, "position", "object position; the mesh is drawn at minus this point")
	f.StringVar(&c.lightColor, "light-color", c.lightColor, "light color as hex")
	f.StringVar(&c.background, "bg", c.background, "background color as hex")
	f.StringVar(&c.color, "color", "", "override the mesh base color (hex)")
	f.Float64Var(&c.spin, "spin", c.spin, "rotation speed in radians per second")
	f.IntVar(&c.fps, "fps", c.fps, "target frames per second")
	f.IntVar(&c.cells, "cells", c.cells, "marching cubes resolution for built-in primitives")
	f.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	f.StringVar(&c.logFile, "log-file", "", "write logs to this file")
}

func (c *config) validate() error {
	if c.fps <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", c.fps)
	}
	if c.cells < 0 {
		return fmt.Errorf("--cells must not be negative, got %d", c.cells)
	}
	return nil
}

func (c *config) scene() (render.Scene, error) {
	intensity, err := render.ParseIntensity(c.lightColor)
	if err != nil {
		return render.Scene{}, fmt.Errorf("--light-color: %w", err)
	}
	return render.NewScene(
		render.Camera{
			Position: math3d.Vec3(c.camera),
			ViewDir:  math3d.Vec3(c.viewDir),
		},
		render.Light{
			Position: math3d.Vec3(c.light),
			Color:    intensity,
		},
	), nil
}

func (c *config) backgroundColor() (uint32, error) {
	bg, err := render.ParseColor(c.background)
	if err != nil {
		return 0, fmt.Errorf("--bg: %w", err)
	}
	return bg, nil
}

// loadObject loads the model, fits it into a 2-unit cube at the origin and
// wraps it as a spinning object.
func (c *config) loadObject(source string) (*render.Object3D, error) {
	mesh, err := models.Load(source, c.cells)
	if err != nil {
		return nil, err
	}
	mesh.Normalize(2)

	base := packColor(mesh.BaseColor())
	if c.color != "" {
		if base, err = render.ParseColor(c.color); err != nil {
			return nil, fmt.Errorf("--color: %w", err)
		}
	}

	obj := render.NewObject(mesh, base)
	obj.Position = math3d.Vec3(c.position)
	obj.Spin = c.spin
	return obj, nil
}

func packColor(rgba [4]float64) uint32 {
	ch := func(f float64) uint8 { return uint8(max(0, min(1, f))*255 + 0.5) }
	return render.PackRGB(ch(rgba[0]), ch(rgba[1]), ch(rgba[2]))
}

// setupLogging installs a text logger when --verbose or --log-file is set.
// Logs go to --log-file if given, otherwise to fallback. The returned
// function closes the log file.
func (c *config) setupLogging(fallback io.Writer, open func(string) (io.WriteCloser, error)) (func() error, error) {
	if !c.verbose && c.logFile == "" {
		return func() error { return nil }, nil
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}

	w, closer := fallback, func() error { return nil }
	if c.logFile != "" {
		f, err := open(c.logFile)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	}
	if w == nil {
		return closer, nil
	}

	logging.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return func() error {
		logging.SetLogger(nil)
		return closer()
	}, nil
}

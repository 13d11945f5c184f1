// lumen renders triangle meshes on the CPU: a spinning, lit model in the
// terminal, or single frames written to image files.
//
// Usage:
//
//	lumen view <model>
//	lumen snapshot <model> -o frame.png
//
// A model is an .obj, .glb or .gltf file, or a built-in primitive name.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	root := &cobra.Command{
		Use:   "lumen",
		Short: "Software rasterizer for triangle meshes",
		Long: `lumen projects a mesh through a pinhole camera, culls back faces,
rasterizes with a depth buffer and lights it with one point light using
per-vertex Blinn-Phong shading.`,
		SilenceUsage: true,
	}
	cfg.register(root)
	root.AddCommand(newViewCmd(cfg), newSnapshotCmd(cfg))
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version))
	stop()
	if err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot-viewer/pkg/config"
	"github.com/willbeason/mandelbrot-viewer/pkg/control"
	"github.com/willbeason/mandelbrot-viewer/pkg/logging"
	"github.com/willbeason/mandelbrot-viewer/pkg/present"
	"github.com/willbeason/mandelbrot-viewer/pkg/render"
	"os"
	"os/signal"
)

const keysHelp = `Keys:
  Up / Down     more / fewer iterations (hold to repeat)
  Q (hold)      zoom in about the pointer
  A (hold)      zoom out about the pointer
  W / S         zoom faster / slower
  Left drag     pan
  H             toggle the status overlay
  Esc           quit`

func mainCmd() *cobra.Command {
	flags := config.Default()
	var configPath string

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Explore the Mandelbrot set in a window",
		Long:  "Explore the Mandelbrot set in a window.\n\n" + keysHelp,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, flags, configPath)
		},
	}

	config.Bind(cmd.Flags(), &flags)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with startup settings")

	return cmd
}

func runCmd(cmd *cobra.Command, flags config.Config, configPath string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg, err := config.Resolve(cmd.Flags(), flags, configPath)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, level)

	state := cfg.State()
	viewport := cfg.Viewport()
	logger.Info("starting",
		"fractal", cfg.Fractal, "scale", state.Scale, "iterations", state.MaxIterations,
		"zoom_rate", state.ZoomRate, "workers", cfg.Workers)

	evaluator, err := cfg.Evaluator()
	if err != nil {
		return err
	}

	controller := control.New(&state, viewport, logger)
	renderer := &render.Renderer{
		Viewport:  viewport,
		Evaluator: evaluator,
		Workers:   cfg.Workers,
	}

	window := present.NewWindow(cfg.Title, controller, renderer, logger)
	window.HUD = cfg.HUD

	return window.Run(cmd.Context())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := mainCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}

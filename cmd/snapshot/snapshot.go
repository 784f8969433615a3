package main

import (
	"context"
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot-viewer/pkg/config"
	"github.com/willbeason/mandelbrot-viewer/pkg/logging"
	"github.com/willbeason/mandelbrot-viewer/pkg/render"
	"os"
	"os/signal"
	"path/filepath"
	"time"
)

func mainCmd() *cobra.Command {
	flags := config.Default()
	var configPath, out string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one view of the Mandelbrot set to a PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, flags, configPath, out)
		},
	}

	config.Bind(cmd.Flags(), &flags)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with view settings")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; defaults to a timestamped file in --out-dir")

	return cmd
}

func runCmd(cmd *cobra.Command, flags config.Config, configPath, out string) error {
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

	if out == "" {
		err = os.MkdirAll(cfg.OutDir, os.ModePerm)
		if err != nil {
			return errors.Wrap(err, "creating output directory")
		}
		out = filepath.Join(cfg.OutDir, fmt.Sprintf("%s.png", time.Now().
			Format("20060102150405")))
	}

	evaluator, err := cfg.Evaluator()
	if err != nil {
		return err
	}

	renderer := &render.Renderer{
		Viewport:  cfg.Viewport(),
		Evaluator: evaluator,
		Workers:   cfg.Workers,
	}
	buf := render.NewBuffer(cfg.Width, cfg.Height)

	start := time.Now()
	err = renderer.Render(cmd.Context(), cfg.State(), buf)
	if err != nil {
		return err
	}
	logger.Debug("rendered", "elapsed", time.Since(start))

	err = buf.SavePNG(out)
	if err != nil {
		return err
	}

	logger.Info("wrote snapshot", "path", out, "width", cfg.Width, "height", cfg.Height)
	return nil
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

// Package present shows rendered frames in a desktop window using ebiten
// and feeds the window's keyboard and mouse input back to the controller.
package present

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"github.com/willbeason/mandelbrot-viewer/pkg/control"
	"github.com/willbeason/mandelbrot-viewer/pkg/logging"
	"github.com/willbeason/mandelbrot-viewer/pkg/render"
	"github.com/willbeason/mandelbrot-viewer/pkg/view"
)

// HUDKey toggles the status overlay.
const HUDKey = ebiten.KeyH

// Window runs the frame loop: poll input, step the controller, render,
// present. It implements ebiten.Game.
type Window struct {
	Title string
	HUD   bool

	viewport   view.Viewport
	controller *control.Controller
	renderer   *render.Renderer
	input      *Input
	logger     *slog.Logger

	ctx    context.Context
	buf    *render.Buffer
	pixels []byte
}

func NewWindow(title string, controller *control.Controller, renderer *render.Renderer, logger *slog.Logger) *Window {
	v := renderer.Viewport
	buf := render.NewBuffer(v.Width, v.Height)

	return &Window{
		Title:      title,
		viewport:   v,
		controller: controller,
		renderer:   renderer,
		input:      NewInput(),
		logger:     logging.OrNop(logger),
		ctx:        context.Background(),
		buf:        buf,
		pixels:     buf.RGBA(nil),
	}
}

// Run opens the window and blocks until the user quits or ctx is done.
// Failure to create the window is returned as an error.
func (w *Window) Run(ctx context.Context) error {
	w.ctx = ctx

	ebiten.SetWindowSize(w.viewport.Width, w.viewport.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowClosingHandled(true)
	// Uncapped: one update per presented frame, no vsync wait.
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(false)

	w.logger.Info("opening window",
		"title", w.Title, "width", w.viewport.Width, "height", w.viewport.Height)

	err := ebiten.RunGame(w)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "running window")
	}
	return nil
}

func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(HUDKey) {
		w.HUD = !w.HUD
	}

	if !w.controller.Frame(w.input) {
		return ebiten.Termination
	}

	err := w.renderer.Render(w.ctx, w.controller.State(), w.buf)
	switch {
	case w.ctx.Err() != nil:
		return ebiten.Termination
	case err != nil:
		return err
	}

	w.pixels = w.buf.RGBA(w.pixels)
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.WritePixels(w.pixels)

	if w.HUD {
		ebitenutil.DebugPrint(screen, w.status())
	}
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.viewport.Width, w.viewport.Height
}

func (w *Window) status() string {
	s := w.controller.State()
	return fmt.Sprintf("scale %.6g\ncenter %.12g %+.12gi\niterations %d\nzoom %s @ %.4g\nfps %.1f",
		s.Scale, -s.Offset.X, -s.Offset.Y, s.MaxIterations,
		w.controller.ZoomState(), s.ZoomRate, ebiten.ActualFPS())
}

var _ ebiten.Game = &Window{}

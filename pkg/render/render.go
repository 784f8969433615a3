package render

import (
	"context"
	"image"
	"runtime"

	"github.com/pkg/errors"
	"github.com/willbeason/mandelbrot-viewer/pkg/escape"
	"github.com/willbeason/mandelbrot-viewer/pkg/view"
	"golang.org/x/sync/errgroup"
)

// Renderer fills a Buffer with one escape-time frame.
type Renderer struct {
	Viewport  view.Viewport
	Evaluator escape.Evaluator

	// Workers is the number of rows rendered concurrently. Zero means one
	// per CPU.
	Workers int
}

func (r *Renderer) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.NumCPU()
}

// Render recomputes every pixel of buf for state s. s is copied, so the
// caller may mutate its own state as soon as Render returns. All rows are
// complete when Render returns nil.
func (r *Renderer) Render(ctx context.Context, s view.State, buf *Buffer) error {
	if buf.Width() != r.Viewport.Width || buf.Height() != r.Viewport.Height {
		return errors.Errorf("buffer is %dx%d, viewport is %dx%d",
			buf.Width(), buf.Height(), r.Viewport.Width, r.Viewport.Height)
	}

	s.Clamp()
	m := s.Mapper(r.Viewport)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for y := 0; y < r.Viewport.Height; y++ {
		y := y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.renderRow(m, s.MaxIterations, y, buf.Row(y))
			return nil
		})
	}

	return g.Wait()
}

func (r *Renderer) renderRow(m view.Mapper, maxIterations, y int, row []escape.Color) {
	for x := range row {
		c := m.ToWorld(image.Point{X: x, Y: y}).Complex()
		row[x] = r.Evaluator.Color(c, maxIterations)
	}
}

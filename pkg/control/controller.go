// Package control applies input to the view: iteration depth, zoom rate,
// drag panning and zooming about the pointer.
package control

import (
	"image"
	"log/slog"

	"github.com/willbeason/mandelbrot-viewer/pkg/logging"
	"github.com/willbeason/mandelbrot-viewer/pkg/view"
)

// ZoomRateStep multiplies or divides the zoom rate per key press.
const ZoomRateStep = 1.5

type ZoomState int

const (
	Frozen ZoomState = iota
	ZoomingIn
	ZoomingOut
)

func (z ZoomState) String() string {
	switch z {
	case Frozen:
		return "frozen"
	case ZoomingIn:
		return "zooming-in"
	case ZoomingOut:
		return "zooming-out"
	}
	return "unknown"
}

// Controller owns the mutable view state between frames.
type Controller struct {
	state    *view.State
	viewport view.Viewport
	logger   *slog.Logger

	zoom    ZoomState
	panning bool
	// anchor is the pointer position last consumed by panning.
	anchor image.Point
}

// New returns a Controller mutating state. A nil logger disables logging.
func New(state *view.State, v view.Viewport, logger *slog.Logger) *Controller {
	return &Controller{
		state:    state,
		viewport: v,
		logger:   logging.OrNop(logger),
	}
}

func (c *Controller) State() view.State {
	return *c.state
}

func (c *Controller) ZoomState() ZoomState {
	return c.zoom
}

func (c *Controller) Panning() bool {
	return c.panning
}

// Frame polls src and steps the view by one frame.
func (c *Controller) Frame(src Source) bool {
	events := src.Poll()
	return c.Step(events, src.Pointer())
}

// Step applies one frame of input: the pending events in order, the
// iteration clamp, then panning and zooming against pointer. It returns
// false as soon as a Quit event is seen, leaving the rest untouched.
func (c *Controller) Step(events []Event, pointer image.Point) bool {
	for _, ev := range events {
		if !c.Apply(ev) {
			return false
		}
	}

	c.state.Clamp()

	if c.panning {
		c.Pan(pointer)
	}

	if c.zoom != Frozen {
		c.Zoom(pointer)
	}

	return true
}

// Apply performs the discrete edit for ev. It returns false for Quit.
func (c *Controller) Apply(ev Event) bool {
	switch ev.Type {
	case Quit:
		c.logger.Info("quit")
		return false
	case KeyDown:
		c.keyDown(ev.Key)
	case KeyUp:
		c.keyUp(ev.Key)
	case ButtonDown:
		if ev.Button == ButtonPrimary {
			c.anchor = ev.Pos
			c.panning = true
			c.logger.Debug("pan start", "x", ev.Pos.X, "y", ev.Pos.Y)
		}
	case ButtonUp:
		if ev.Button == ButtonPrimary && c.panning {
			c.panning = false
			c.logger.Debug("pan stop", "offset_x", c.state.Offset.X, "offset_y", c.state.Offset.Y)
		}
	}
	return true
}

func (c *Controller) keyDown(k Key) {
	switch k {
	case KeyIterationsUp:
		c.state.MaxIterations++
		c.logger.Debug("iterations", "max", c.state.MaxIterations)
	case KeyIterationsDown:
		c.state.MaxIterations--
		c.logger.Debug("iterations", "max", c.state.MaxIterations)
	case KeyZoomIn:
		c.setZoom(ZoomingIn)
	case KeyZoomOut:
		c.setZoom(ZoomingOut)
	case KeyZoomRateUp:
		c.state.ZoomRate = view.ClampZoomRate(c.state.ZoomRate * ZoomRateStep)
		c.logger.Debug("zoom rate", "rate", c.state.ZoomRate)
	case KeyZoomRateDown:
		c.state.ZoomRate = view.ClampZoomRate(c.state.ZoomRate / ZoomRateStep)
		c.logger.Debug("zoom rate", "rate", c.state.ZoomRate)
	}
}

// keyUp only ends the zoom direction that key started; releasing the other
// zoom key does nothing.
func (c *Controller) keyUp(k Key) {
	switch {
	case k == KeyZoomIn && c.zoom == ZoomingIn:
		c.setZoom(Frozen)
	case k == KeyZoomOut && c.zoom == ZoomingOut:
		c.setZoom(Frozen)
	}
}

func (c *Controller) setZoom(z ZoomState) {
	if c.zoom == z {
		return
	}
	c.logger.Debug("zoom state", "from", c.zoom, "to", z)
	c.zoom = z
}

// Pan moves the view by the pointer travel since the last sample and makes
// pointer the new sample.
func (c *Controller) Pan(pointer image.Point) {
	dx := pointer.X - c.anchor.X
	dy := pointer.Y - c.anchor.Y

	c.state.Offset.X += float64(dx) / c.state.Scale
	c.state.Offset.Y -= float64(dy) / c.state.Scale

	c.anchor = pointer
}

// Zoom rescales by one zoom step in the current direction, adjusting the
// offset so the world point under pointer stays under pointer. The scale
// stops at MinScale and MaxScale.
func (c *Controller) Zoom(pointer image.Point) {
	var z float64
	switch c.zoom {
	case ZoomingIn:
		z = 1 + c.state.ZoomRate
	case ZoomingOut:
		z = 1 - c.state.ZoomRate
	default:
		return
	}

	scale := view.ClampScale(c.state.Scale * z)
	if scale == c.state.Scale {
		return
	}

	// Both samples use the same pointer and offset; only the scale differs.
	before := c.state.Mapper(c.viewport).ToWorld(pointer)
	c.state.Scale = scale
	after := c.state.Mapper(c.viewport).ToWorld(pointer)

	drift := after.Sub(before)
	c.state.Offset = c.state.Offset.Add(drift)

	c.logger.Debug("zoom",
		"scale", c.state.Scale,
		"dxw", drift.X, "dyw", drift.Y,
		"dx", drift.X*c.state.Scale, "dy", drift.Y*c.state.Scale)
}

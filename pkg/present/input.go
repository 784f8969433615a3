package present

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/willbeason/mandelbrot-viewer/pkg/control"
)

// Bindings maps physical keys to viewer keys.
type Bindings map[ebiten.Key]control.Key

// DefaultBindings are the arrow keys for iteration depth, Q and A held for
// zooming in and out, and W and S for the zoom rate.
func DefaultBindings() Bindings {
	return Bindings{
		ebiten.KeyArrowUp:   control.KeyIterationsUp,
		ebiten.KeyArrowDown: control.KeyIterationsDown,
		ebiten.KeyQ:         control.KeyZoomIn,
		ebiten.KeyA:         control.KeyZoomOut,
		ebiten.KeyW:         control.KeyZoomRateUp,
		ebiten.KeyS:         control.KeyZoomRateDown,
	}
}

var buttons = map[ebiten.MouseButton]control.Button{
	ebiten.MouseButtonLeft:   control.ButtonPrimary,
	ebiten.MouseButtonRight:  control.ButtonSecondary,
	ebiten.MouseButtonMiddle: control.ButtonMiddle,
}

// Input turns ebiten's per-tick input state into control events. It must
// be polled from the ebiten update goroutine.
type Input struct {
	Bindings Bindings

	// QuitKey ends the viewer, as does closing the window.
	QuitKey ebiten.Key

	repeat *control.Repeater
	now    func() time.Time

	pressed  []ebiten.Key
	released []ebiten.Key
	events   []control.Event
}

func NewInput() *Input {
	return &Input{
		Bindings: DefaultBindings(),
		QuitKey:  ebiten.KeyEscape,
		repeat:   control.NewRepeater(),
		now:      time.Now,
	}
}

// Poll returns the events since the last call. The returned slice is
// reused by the next call.
func (in *Input) Poll() []control.Event {
	quit := ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(in.QuitKey)
	pressed := inpututil.AppendJustPressedKeys(in.pressed[:0])
	released := inpututil.AppendJustReleasedKeys(in.released[:0])
	in.pressed, in.released = pressed, released

	in.events = in.translate(quit, pressed, released, in.now(), in.events[:0])

	pos := in.Pointer()
	for mb, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(mb) {
			in.events = append(in.events, control.ButtonDownEvent(b, pos))
		}
		if inpututil.IsMouseButtonJustReleased(mb) {
			in.events = append(in.events, control.ButtonUpEvent(b, pos))
		}
	}

	return in.events
}

// translate appends the key events for one tick: Quit first, then bound
// presses, bound releases and any repeats due at now.
func (in *Input) translate(quit bool, pressed, released []ebiten.Key, now time.Time, events []control.Event) []control.Event {
	if quit {
		events = append(events, control.QuitEvent())
	}

	for _, k := range pressed {
		key, ok := in.Bindings[k]
		if !ok {
			continue
		}
		events = append(events, control.KeyDownEvent(key))
		if repeats(key) {
			in.repeat.Press(key, now)
		}
	}

	for _, k := range released {
		key, ok := in.Bindings[k]
		if !ok {
			continue
		}
		events = append(events, control.KeyUpEvent(key))
		in.repeat.Release(key)
	}

	return in.repeat.Due(now, events)
}

func (in *Input) Pointer() image.Point {
	x, y := ebiten.CursorPosition()
	return image.Point{X: x, Y: y}
}

// repeats reports whether holding k should keep editing. Zoom keys are
// level-like already: holding them keeps the zoom state.
func repeats(k control.Key) bool {
	switch k {
	case control.KeyZoomIn, control.KeyZoomOut:
		return false
	}
	return true
}

var _ control.Source = &Input{}

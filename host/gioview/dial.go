// Package gioview shows a timepicker.Picker in a Gio window.
package gioview

import (
	"image"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/widget/material"

	"github.com/agiangrant/timepicker"
)

// Dial is a square Gio widget around a picker. It fills the smaller side
// of the incoming constraints.
type Dial struct {
	Picker *timepicker.Picker
	Theme  *material.Theme

	side int
}

func NewDial(p *timepicker.Picker, th *material.Theme) *Dial {
	return &Dial{Picker: p, Theme: th}
}

// Layout handles pending pointer input, advances the pointer animation and
// paints the dial.
func (d *Dial) Layout(gtx layout.Context) layout.Dimensions {
	side := min(gtx.Constraints.Max.X, gtx.Constraints.Max.Y)
	if side != d.side {
		d.side = side
		d.Picker.Resize(float32(side), float32(side))
	}
	size := image.Pt(side, side)

	d.handleEvents(gtx)
	if d.Picker.Tick(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, d)
	paintCommands(gtx, d.Theme, d.Picker.Draw())
	area.Pop()

	return layout.Dimensions{Size: size}
}

func (d *Dial) handleEvents(gtx layout.Context) {
	half := float32(d.side) / 2
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: d,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			return
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		pe, ok := translate(e.Kind, e.Position, half)
		if !ok {
			continue
		}
		if d.Picker.HandleEvent(pe) && pe.Type == timepicker.EventPointerDown {
			// Keep the drag even when the pointer leaves the widget.
			gtx.Execute(pointer.GrabCmd{Tag: d, ID: e.PointerID})
		}
	}
}

// translate maps a Gio pointer sample in widget-local coordinates to the
// picker's centered frame.
func translate(kind pointer.Kind, pos f32.Point, half float32) (timepicker.PointerEvent, bool) {
	var t timepicker.EventType
	switch kind {
	case pointer.Press:
		t = timepicker.EventPointerDown
	case pointer.Drag:
		t = timepicker.EventPointerMove
	case pointer.Release:
		t = timepicker.EventPointerUp
	case pointer.Cancel:
		t = timepicker.EventPointerCancel
	default:
		return timepicker.PointerEvent{}, false
	}
	return timepicker.PointerEvent{Type: t, X: pos.X - half, Y: pos.Y - half}, true
}

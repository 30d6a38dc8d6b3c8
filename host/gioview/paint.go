package gioview

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/agiangrant/timepicker/render"
)

// NRGBA converts a 0xRRGGBBAA color.
func NRGBA(c uint32) color.NRGBA {
	return color.NRGBA{R: render.Red(c), G: render.Green(c), B: render.Blue(c), A: render.Alpha(c)}
}

func paintCommands(gtx layout.Context, th *material.Theme, cmds []render.Command) {
	for _, c := range cmds {
		switch {
		case c.Clear != nil:
			if render.Alpha(c.Clear.Color) == 0 {
				continue
			}
			paint.FillShape(gtx.Ops, NRGBA(c.Clear.Color), clip.Rect{Max: gtx.Constraints.Max}.Op())
		case c.FillCircle != nil:
			paint.FillShape(gtx.Ops, NRGBA(c.FillCircle.Color), circle(c.FillCircle).Op(gtx.Ops))
		case c.StrokeCircle != nil:
			paint.FillShape(gtx.Ops, NRGBA(c.StrokeCircle.Color), clip.Stroke{
				Path:  circle(c.StrokeCircle).Path(gtx.Ops),
				Width: c.StrokeCircle.StrokeWidth,
			}.Op())
		case c.DrawText != nil:
			paintText(gtx, th, c.DrawText)
		}
	}
}

func circle(c *render.CircleCmd) clip.Ellipse {
	return clip.Ellipse(image.Rect(
		int(c.X-c.Radius), int(c.Y-c.Radius),
		int(c.X+c.Radius), int(c.Y+c.Radius),
	))
}

// paintText lays the label out unconstrained, then offsets it so the
// baseline lands on c.Y and the anchor on c.X.
func paintText(gtx layout.Context, th *material.Theme, c *render.TextCmd) {
	if th == nil || c.Text == "" {
		return
	}
	lbl := material.Label(th, unit.Sp(c.Size/gtx.Metric.PxPerSp), c.Text)
	lbl.Color = NRGBA(c.Color)
	lbl.Alignment = text.Start
	lbl.MaxLines = 1

	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := lbl.Layout(gtx)
	call := macro.Stop()

	left := int(c.X)
	switch c.Align {
	case render.TextAlignCenter, "":
		left -= dims.Size.X / 2
	case render.TextAlignRight:
		left -= dims.Size.X
	}
	top := int(c.Y) - (dims.Size.Y - dims.Baseline)

	stack := op.Offset(image.Pt(left, top)).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stack.Pop()
}

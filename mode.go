package timepicker

import (
	"fmt"
	"math"
	"strings"

	"github.com/agiangrant/timepicker/collider"
	"github.com/agiangrant/timepicker/render"
)

// ModeKind names a Mode variant.
type ModeKind uint8

const (
	KindSingleStep ModeKind = iota
	KindTwoStep
)

func (k ModeKind) String() string {
	switch k {
	case KindSingleStep:
		return "single"
	case KindTwoStep:
		return "two-step"
	default:
		return "unknown"
	}
}

// Mode is the policy a Picker delegates to for converting between angle
// and time, for the extra hit regions beyond pointer and track, and for
// what a release does. Modes are stateless; all state lives on the Picker.
// The set of modes is closed: use SingleStep or TwoStep.
type Mode interface {
	Kind() ModeKind

	layout(p *Picker)
	restingAngle(p *Picker) float64
	applyAngle(p *Picker, degrees float64)
	labelAt(p *Picker, x, y float32) region
	grab(p *Picker, x, y float32)
	release(p *Picker, cancelled bool)
	tapLabel(p *Picker, r region)
	timeSet(p *Picker, explicit bool)
	draw(p *Picker) []render.Command
}

// SingleStep returns the mode where one drag sets hour and minute together:
// a full revolution covers 12 or 24 hours.
func SingleStep() Mode { return singleStep{} }

// TwoStep returns the mode where the hour is picked first and the minute
// second, each on its own revolution, with the pointer gliding between them.
func TwoStep() Mode { return twoStep{} }

// ParseMode accepts "single" or "two-step" (case-insensitive). An empty
// string selects SingleStep.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single", "single-step":
		return SingleStep(), nil
	case "two-step", "twostep", "two":
		return TwoStep(), nil
	default:
		return nil, fmt.Errorf("unknown picker mode %q", s)
	}
}

// region is what a pointer-down landed on.
type region uint8

const (
	regionNone region = iota
	regionPointer
	regionTrack
	regionHourLabel
	regionMinuteLabel
)

// Shared geometry, as fractions of the widget extent.
const (
	trackRadiusRatio   = 0.4
	trackSizeRatio     = 1.0 / 25
	pointerRadiusRatio = 1.0 / 7
	timeTextRatio      = 0.2
	amPmTextRatio      = 0.1
)

// layoutTrack sizes the track ring and the pointer disc. ringScale widens
// the touchable band relative to the drawn track.
func layoutTrack(p *Picker, ringScale float32) {
	if p.size <= 0 {
		p.trackSize = 0
		p.track = collider.Ring{}
		p.pointer = collider.Circle{}
		return
	}
	radius := p.size * trackRadiusRatio

	p.trackSize = p.trackSizeReq
	if p.trackSize <= 0 {
		p.trackSize = p.size * trackSizeRatio
	}
	pointerRadius := p.pointerRadiusReq
	if pointerRadius <= 0 {
		pointerRadius = radius * pointerRadiusRatio
	}
	p.track = collider.Ring{Radius: radius, Thickness: p.trackSize * ringScale}
	p.pointer.Radius = pointerRadius
}

func atan2(x, y float32) float64 {
	return math.Atan2(float64(y), float64(x))
}

// ============================================================================
// Single step
// ============================================================================

type singleStep struct{}

func (singleStep) Kind() ModeKind { return KindSingleStep }

func (singleStep) layout(p *Picker) {
	// The touchable band extends a full track width either side of the line.
	layoutTrack(p, 2)
}

func (singleStep) restingAngle(p *Picker) float64 {
	if p.is24Hour {
		return Angle24(p.hour, p.minute)
	}
	return Angle12(p.hour, p.minute)
}

func (singleStep) applyAngle(p *Picker, degrees float64) {
	if p.is24Hour {
		p.hour, p.minute = Time24FromDegrees(degrees)
		return
	}
	hourAmPm, minute := Time12FromDegrees(degrees)
	p.hour = Next12Hour(p.hour, hourAmPm)
	p.minute = minute
}

func (singleStep) labelAt(*Picker, float32, float32) region { return regionNone }

func (singleStep) grab(p *Picker, x, y float32) {
	p.slopX = x - p.pointer.CenterX
	p.slopY = y - p.pointer.CenterY
}

func (m singleStep) release(p *Picker, cancelled bool) {
	p.setAngle(m.restingAngle(p))
}

func (singleStep) tapLabel(*Picker, region) {}

func (m singleStep) timeSet(p *Picker, explicit bool) {
	p.finishAnimation()
	p.setAngle(m.restingAngle(p))
}

func (singleStep) draw(p *Picker) []render.Command {
	pal := p.CurrentPalette()
	o := p.size * 0.5
	timeSize := p.size * timeTextRatio
	amPmSize := p.size * amPmTextRatio

	cmds := make([]render.Command, 0, 5)
	cmds = append(cmds, render.Clear(pal.Canvas))
	if p.size <= 0 {
		return cmds
	}

	t := p.Time()
	cmds = append(cmds, render.Text(twoDigits(t.HourFormatted())+":"+twoDigits(t.Minute), o, o+timeSize*0.25, timeSize, pal.Text))
	if !p.is24Hour {
		cmds = append(cmds, render.Text(amPmText(t.IsAm()), o, o+amPmSize*2, amPmSize, pal.Text))
	}
	cmds = append(cmds,
		render.StrokeCircle(o, o, p.track.Radius, p.trackSize, pal.Track),
		render.FillCircle(o+p.pointer.CenterX, o+p.pointer.CenterY, p.pointer.Radius, pal.Pointer),
	)
	return cmds
}

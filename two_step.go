package timepicker

import (
	"github.com/agiangrant/timepicker/collider"
	"github.com/agiangrant/timepicker/render"
)

// Step is which component the two-step dial is currently adjusting.
type Step uint8

const (
	StepHour Step = iota
	StepMinute
)

func (s Step) String() string {
	if s == StepMinute {
		return "minute"
	}
	return "hour"
}

type twoStep struct{}

func (twoStep) Kind() ModeKind { return KindTwoStep }

func (twoStep) layout(p *Picker) {
	layoutTrack(p, 1)

	if p.size <= 0 {
		p.hourLabel = collider.Rectangle{}
		p.minuteLabel = collider.Rectangle{}
		return
	}
	textSize := p.size * timeTextRatio
	offsetY := textSize * 0.25
	halfDigits := p.measure("00", textSize) * 0.5
	halfColon := p.measure(":", textSize) * 0.5

	p.hourLabel = collider.Rectangle{
		CenterX: -halfDigits - halfColon,
		CenterY: -offsetY * 0.4,
		Width:   halfDigits * 2,
		Height:  textSize,
	}
	p.minuteLabel = collider.Rectangle{
		CenterX: halfDigits + halfColon,
		CenterY: -offsetY * 0.4,
		Width:   halfDigits * 2,
		Height:  textSize,
	}
}

func (twoStep) restingAngle(p *Picker) float64 {
	if p.step == StepMinute {
		return MinuteAngle(p.minute)
	}
	return HourAngle(p.hour, p.is24Hour)
}

func (twoStep) applyAngle(p *Picker, degrees float64) {
	if p.step == StepMinute {
		p.minute = MinuteFromDegrees(degrees)
		return
	}
	if p.is24Hour {
		p.hour = HourFromDegrees(degrees, true)
		return
	}
	p.hour = Next12Hour(p.hour, HourFromDegrees(degrees, false))
}

func (twoStep) labelAt(p *Picker, x, y float32) region {
	switch {
	case p.hourLabel.CollidesWith(x, y):
		return regionHourLabel
	case p.minuteLabel.CollidesWith(x, y):
		return regionMinuteLabel
	}
	return regionNone
}

func (twoStep) grab(p *Picker, x, y float32) {
	p.cancelAnimation()
	p.slopX, p.slopY = 0, 0
	p.setAngle(atan2(x, y))
}

func (twoStep) release(p *Picker, cancelled bool) {
	if !cancelled && p.step == StepHour {
		p.step = StepMinute
		p.invalidate(DirtyStep)
	}
	p.animateToRest()
}

func (twoStep) tapLabel(p *Picker, r region) {
	switch r {
	case regionHourLabel:
		p.SetStep(StepHour)
	case regionMinuteLabel:
		p.SetStep(StepMinute)
	}
}

func (twoStep) timeSet(p *Picker, explicit bool) {
	if explicit && p.step != StepHour {
		p.step = StepHour
		p.invalidate(DirtyStep)
	}
	p.animateToRest()
}

func (twoStep) draw(p *Picker) []render.Command {
	pal := p.CurrentPalette()
	o := p.size * 0.5
	timeSize := p.size * timeTextRatio
	amPmSize := p.size * amPmTextRatio
	timeY := o + timeSize*0.25

	cmds := make([]render.Command, 0, 8)
	cmds = append(cmds, render.Clear(pal.Canvas))
	if p.size <= 0 {
		return cmds
	}

	hourColor, minuteColor := pal.PickedText, pal.Text
	if p.step == StepMinute {
		hourColor, minuteColor = pal.Text, pal.PickedText
	}
	t := p.Time()
	cmds = append(cmds,
		render.FillCircle(o, o, p.track.Radius, pal.Face),
		render.Text(twoDigits(t.HourFormatted()), o+p.hourLabel.CenterX, timeY, timeSize, hourColor),
		render.Text(":", o, timeY, timeSize, pal.Text),
		render.Text(twoDigits(t.Minute), o+p.minuteLabel.CenterX, timeY, timeSize, minuteColor),
	)
	if !p.is24Hour {
		cmds = append(cmds, render.Text(amPmText(t.IsAm()), o, o+amPmSize*2, amPmSize, pal.Text))
	}
	cmds = append(cmds,
		render.StrokeCircle(o, o, p.track.Radius, p.trackSize, pal.Track),
		render.FillCircle(o+p.pointer.CenterX, o+p.pointer.CenterY, p.pointer.Radius, pal.Pointer),
	)
	return cmds
}

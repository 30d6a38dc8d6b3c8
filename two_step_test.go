package timepicker

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/timepicker/anim"
)

func newTwoStep(t *testing.T, opts ...Option) (*Picker, *anim.FakeClock) {
	t.Helper()
	clock := anim.NewFakeClock(morning)
	opts = append([]Option{WithMode(TwoStep()), WithClock(clock), WithSize(200, 200), With24Hour(true)}, opts...)
	return New(opts...), clock
}

// settle runs the pointer animation to completion.
func settle(t *testing.T, p *Picker, clock *anim.FakeClock) {
	t.Helper()
	p.Tick(clock.Advance(AnimationDuration + time.Millisecond))
	require.False(t, p.Animating())
}

func TestTwoStepInitialState(t *testing.T) {
	p, _ := newTwoStep(t)
	assert.Equal(t, KindTwoStep, p.Mode())
	assert.Equal(t, StepHour, p.Step())
	assert.False(t, p.Animating())
	assert.InDelta(t, HourAngle(10, true), p.Angle(), 1e-9)
}

func TestTwoStepHourDragAdvancesToMinute(t *testing.T) {
	p, clock := newTwoStep(t)
	var rec recorder
	rec.attach(p)

	px, py := p.PointerPosition()
	require.True(t, p.PointerDown(px, py))

	x, y := pointAt(182, 80)
	require.True(t, p.PointerMove(x, y))
	assert.Equal(t, 12, p.Hour())
	assert.Equal(t, 15, p.Minute(), "the hour step leaves minutes alone")
	assert.Len(t, rec.times, 1)

	require.True(t, p.PointerUp(x, y))
	assert.Equal(t, StepMinute, p.Step())
	require.True(t, p.Animating())
	assert.InDelta(t, PointerAngle(182), p.Angle(), 1e-4, "animation starts where the drag ended")

	assert.True(t, p.Tick(clock.Advance(250*time.Millisecond)))
	mid := p.Angle()
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, PointerAngle(182))

	assert.False(t, p.Tick(clock.Advance(300*time.Millisecond)))
	assert.False(t, p.Animating())
	assert.InDelta(t, NormalizeRadians(MinuteAngle(15)), NormalizeRadians(p.Angle()), 1e-9)
	assert.Len(t, rec.times, 1, "step changes do not notify")
}

func TestTwoStepMinuteDragStaysOnMinute(t *testing.T) {
	p, clock := newTwoStep(t)
	p.SetStep(StepMinute)
	settle(t, p, clock)

	px, py := p.PointerPosition()
	require.True(t, p.PointerDown(px, py))
	x, y := pointAt(180.5, 80)
	p.PointerMove(x, y)
	assert.Equal(t, 10, p.Hour())
	assert.Equal(t, 30, p.Minute())

	p.PointerUp(x, y)
	assert.Equal(t, StepMinute, p.Step())
	settle(t, p, clock)
	assert.InDelta(t, math.Pi/2, p.Angle(), 1e-9)
}

func TestTwoStepTrackTouch(t *testing.T) {
	p, clock := newTwoStep(t)
	var rec recorder
	rec.attach(p)

	// 6 o'clock on a 24-hour hour dial.
	require.True(t, p.PointerDown(0, 80))
	assert.Equal(t, 12, p.Hour())
	assert.Len(t, rec.times, 1)
	p.PointerUp(0, 80)
	assert.Equal(t, StepMinute, p.Step())
	settle(t, p, clock)
}

func TestTwoStepLabelTaps(t *testing.T) {
	p, clock := newTwoStep(t)
	var rec recorder
	rec.attach(p)

	// Digits are centered either side of the colon.
	require.True(t, p.HitTest(30, -4))
	require.True(t, p.PointerDown(30, -4))
	require.True(t, p.PointerUp(30, -4))
	assert.Equal(t, StepMinute, p.Step())
	assert.True(t, p.Animating())
	settle(t, p, clock)

	// The active label is a no-op.
	p.PointerDown(30, -4)
	p.PointerUp(30, -4)
	assert.Equal(t, StepMinute, p.Step())
	assert.False(t, p.Animating())

	// Press on hour and release on minute does not count as a tap.
	p.PointerDown(-30, -4)
	p.PointerUp(30, -4)
	assert.Equal(t, StepMinute, p.Step())

	p.PointerDown(-30, -4)
	p.PointerUp(-30, -4)
	assert.Equal(t, StepHour, p.Step())
	settle(t, p, clock)
	assert.InDelta(t, NormalizeRadians(HourAngle(10, true)), NormalizeRadians(p.Angle()), 1e-9)

	assert.Empty(t, rec.times)
}

func TestTwoStepCancelDoesNotAdvance(t *testing.T) {
	p, clock := newTwoStep(t)
	px, py := p.PointerPosition()
	require.True(t, p.PointerDown(px, py))
	x, y := pointAt(95, 80)
	p.PointerMove(x, y)
	assert.Equal(t, 6, p.Hour())

	require.True(t, p.PointerCancel())
	assert.Equal(t, StepHour, p.Step())
	settle(t, p, clock)
	assert.InDelta(t, NormalizeRadians(HourAngle(6, true)), NormalizeRadians(p.Angle()), 1e-9)
	assert.False(t, p.PointerCancel())
}

func TestTwoStepSetTimeReturnsToHour(t *testing.T) {
	p, clock := newTwoStep(t)
	p.SetStep(StepMinute)
	settle(t, p, clock)
	var rec recorder
	rec.attach(p)

	require.NoError(t, p.SetTime(3, 0))
	assert.Equal(t, StepHour, p.Step())
	assert.True(t, p.Animating())
	require.Len(t, rec.times, 1)
	settle(t, p, clock)
	assert.InDelta(t, 7*math.Pi/4, NormalizeRadians(p.Angle()), 1e-9)
}

func TestTwoStepFormatToggleKeepsStep(t *testing.T) {
	p, clock := newTwoStep(t)
	require.NoError(t, p.SetTime(15, 20))
	p.SetStep(StepMinute)
	settle(t, p, clock)
	var rec recorder
	rec.attach(p)

	p.SetIs24Hour(false)
	assert.Equal(t, StepMinute, p.Step())
	assert.Equal(t, 3, p.HourFormatted())
	assert.Empty(t, rec.times)
	settle(t, p, clock)
	assert.InDelta(t, NormalizeRadians(MinuteAngle(20)), NormalizeRadians(p.Angle()), 1e-9)

	p.SetStep(StepHour)
	settle(t, p, clock)
	assert.InDelta(t, NormalizeRadians(HourAngle(15, false)), NormalizeRadians(p.Angle()), 1e-9)
}

func TestTwoStepInterruptedAnimation(t *testing.T) {
	p, clock := newTwoStep(t)
	p.SetStep(StepMinute)
	p.Tick(clock.Advance(100 * time.Millisecond))

	// Heading from 10 o'clock-hour toward minute 15; reverse mid-flight.
	p.SetStep(StepHour)
	mid := p.Angle()
	assert.Greater(t, mid, 1e-3)
	assert.Less(t, mid, HourAngle(10, true)-1e-3)
	assert.Equal(t, 1, p.animations.Count())

	settle(t, p, clock)
	assert.InDelta(t, HourAngle(10, true), p.Angle(), 1e-9)
}

func TestTwoStepGrabStopsAnimation(t *testing.T) {
	p, _ := newTwoStep(t)
	p.SetStep(StepMinute)
	require.True(t, p.Animating())
	start := p.Angle()

	px, py := p.PointerPosition()
	require.True(t, p.PointerDown(px, py))
	assert.False(t, p.Animating())
	assert.True(t, p.Dragging())
	assert.Zero(t, p.animations.Count())
	assert.InDelta(t, NormalizeRadians(start), NormalizeRadians(p.Angle()), 1e-4, "the pointer stays under the finger")
}

func TestTwoStepSetTimeEndsDrag(t *testing.T) {
	p, clock := newTwoStep(t)
	px, py := p.PointerPosition()
	require.True(t, p.PointerDown(px, py))

	require.NoError(t, p.SetTime(5, 0))
	assert.False(t, p.Dragging())

	x, y := pointAt(90, 80)
	assert.False(t, p.PointerMove(x, y))
	assert.Equal(t, 5, p.Hour())
	assert.False(t, p.PointerUp(x, y))
	assert.Equal(t, StepHour, p.Step(), "release after the change does not advance")

	settle(t, p, clock)
	assert.InDelta(t, NormalizeRadians(HourAngle(5, true)), NormalizeRadians(p.Angle()), 1e-9)
}

func TestTwoStepDisablingMidDragSnapsBack(t *testing.T) {
	p, clock := newTwoStep(t)
	px, py := p.PointerPosition()
	require.True(t, p.PointerDown(px, py))
	x, y := pointAt(97, 80)
	p.PointerMove(x, y)
	require.Equal(t, 6, p.Hour())

	p.SetEnabled(false)
	assert.False(t, p.Dragging())
	assert.Equal(t, StepHour, p.Step())
	settle(t, p, clock)
	assert.Equal(t, 6, p.Hour())
	assert.InDelta(t, NormalizeRadians(HourAngle(6, true)), NormalizeRadians(p.Angle()), 1e-9)
}

func TestTwoStepEasing(t *testing.T) {
	p, clock := newTwoStep(t, WithEasing(anim.EaseLinear))
	from, to := ShortestArc(p.Angle(), MinuteAngle(15))

	p.SetStep(StepMinute)
	p.Tick(clock.Advance(AnimationDuration / 2))
	assert.InDelta(t, (from+to)/2, p.Angle(), 1e-9)

	p.SetEasing(nil)
	p.SetStep(StepHour)
	from, to = ShortestArc(p.Angle(), HourAngle(10, true))
	p.Tick(clock.Advance(AnimationDuration / 2))
	assert.InDelta(t, anim.Lerp(from, to, anim.EaseOutQuad(0.5)), p.Angle(), 1e-9)
}

func TestTwoStep12HourCrossing(t *testing.T) {
	p, clock := newTwoStep(t, With24Hour(false))
	require.NoError(t, p.SetTime12(11, 0, AM))
	settle(t, p, clock)

	px, py := p.PointerPosition()
	require.True(t, p.PointerDown(px, py))
	x, y := pointAt(2, 80)
	p.PointerMove(x, y)
	assert.Equal(t, 12, p.Hour())
	assert.True(t, p.IsPm())
	assert.Equal(t, 12, p.HourFormatted())
	p.PointerUp(x, y)
}

func TestSetStepIgnoredInSingleStep(t *testing.T) {
	p, _ := newSingle(t)
	p.SetStep(StepMinute)
	assert.Equal(t, StepHour, p.Step())
	assert.False(t, p.Animating())
}

func TestTwoStepDraw(t *testing.T) {
	p, clock := newTwoStep(t)
	pal := DefaultPalette()

	cmds := p.Draw()
	require.Len(t, cmds, 7)
	require.NotNil(t, cmds[1].FillCircle)
	assert.Equal(t, pal.Face, cmds[1].FillCircle.Color)
	assert.Equal(t, "10", cmds[2].DrawText.Text)
	assert.Equal(t, pal.PickedText, cmds[2].DrawText.Color)
	assert.Equal(t, ":", cmds[3].DrawText.Text)
	assert.Equal(t, "15", cmds[4].DrawText.Text)
	assert.Equal(t, pal.Text, cmds[4].DrawText.Color)

	p.SetStep(StepMinute)
	settle(t, p, clock)
	cmds = p.Draw()
	assert.Equal(t, pal.Text, cmds[2].DrawText.Color)
	assert.Equal(t, pal.PickedText, cmds[4].DrawText.Color)

	p.SetIs24Hour(false)
	cmds = p.Draw()
	require.Len(t, cmds, 8)
	assert.Equal(t, "AM", cmds[5].DrawText.Text)
}

// Package timepicker implements a circular time-selection dial: a pointer
// dragged around a track encodes a time of day. The package holds the
// dial's state machine and geometry only. Hosts feed it pointer events in
// the dial's centered frame, tick it while it animates, and paint the
// display list returned by Draw.
//
// A Picker is not safe for concurrent use; hosts drive it from a single
// event goroutine.
package timepicker

import (
	"math"
	"time"

	"github.com/agiangrant/timepicker/anim"
	"github.com/agiangrant/timepicker/collider"
	"github.com/agiangrant/timepicker/render"
)

// AnimationDuration is how long the two-step pointer glides to a new angle.
const AnimationDuration = 500 * time.Millisecond

// Picker is the dial state machine.
type Picker struct {
	mode Mode

	// Time, always in the 24-hour domain.
	hour, minute int
	is24Hour     bool
	step         Step

	// Pointer-frame radians. Consistent with the time except while dragging,
	// when it is the source the time is read from.
	angle float64

	enabled         bool
	trackTouchable  bool
	palette         Palette
	disabledPalette Palette

	size             float32
	trackSizeReq     float32
	pointerRadiusReq float32
	trackSize        float32
	pointer          collider.Circle
	track            collider.Ring
	hourLabel        collider.Rectangle
	minuteLabel      collider.Rectangle
	measure          TextMeasurer

	dragging     bool
	slopX, slopY float32
	pressed      region

	animations *anim.Registry
	anim       *anim.Animation
	easing     anim.EasingFunc

	dirty         DirtyMask
	onTimeChanged func(PickedTime)
	onRedraw      func()
}

// New creates a picker set to the clock's current time.
func New(opts ...Option) *Picker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = anim.NewRegistry(o.clock)
	}
	disabled := o.palette.Faded(DisabledAlpha)
	if o.disabledPalette != nil {
		disabled = *o.disabledPalette
	}

	now := o.clock.Now()
	p := &Picker{
		mode:             o.mode,
		hour:             now.Hour(),
		minute:           now.Minute(),
		is24Hour:         o.is24Hour,
		step:             StepHour,
		enabled:          o.enabled,
		trackTouchable:   o.trackTouchable,
		palette:          o.palette,
		disabledPalette:  disabled,
		trackSizeReq:     o.trackSize,
		pointerRadiusReq: o.pointerRadius,
		measure:          o.measure,
		animations:       o.registry,
		easing:           o.easing,
		dirty:            DirtyAll,
	}
	p.size = max(0, min(o.width, o.height))
	p.mode.layout(p)
	p.setAngle(p.mode.restingAngle(p))
	return p
}

// ============================================================================
// Observers
// ============================================================================

// OnTimeChanged registers the single time-changed listener. Registering
// again replaces the previous listener; nil removes it.
func (p *Picker) OnTimeChanged(fn func(PickedTime)) *Picker {
	p.onTimeChanged = fn
	return p
}

// OnRedraw registers the single redraw-request callback. It fires on every
// change that affects appearance; hosts are expected to coalesce.
func (p *Picker) OnRedraw(fn func()) *Picker {
	p.onRedraw = fn
	return p
}

// TakeDirty returns what changed since the previous call and clears it.
func (p *Picker) TakeDirty() DirtyMask {
	d := p.dirty
	p.dirty = 0
	return d
}

func (p *Picker) invalidate(mask DirtyMask) {
	p.dirty |= mask
	if p.onRedraw != nil {
		p.onRedraw()
	}
}

func (p *Picker) notify() {
	if p.onTimeChanged != nil {
		p.onTimeChanged(p.Time())
	}
}

// ============================================================================
// Time
// ============================================================================

// Time returns the current value.
func (p *Picker) Time() PickedTime {
	return PickedTime{Hour: p.hour, Minute: p.minute, Is24Hour: p.is24Hour}
}

// Hour returns the hour in the 24-hour domain.
func (p *Picker) Hour() int { return p.hour }

func (p *Picker) Minute() int { return p.minute }

// HourFormatted returns the hour as displayed for the current format.
func (p *Picker) HourFormatted() int { return p.Time().HourFormatted() }

func (p *Picker) IsAm() bool     { return p.hour < hoursInHalfDay }
func (p *Picker) IsPm() bool     { return p.hour >= hoursInHalfDay }
func (p *Picker) Is24Hour() bool { return p.is24Hour }

// SetTime sets a 24-hour time and switches the dial to 24-hour format.
// hour must be in [0, 23] and minute in [0, 59]; out-of-range values are
// rejected with a *RangeError and nothing changes.
func (p *Picker) SetTime(hour, minute int) error {
	if err := checkRange("hour", hour, 0, hoursInDay-1); err != nil {
		return err
	}
	if err := checkRange("minute", minute, 0, minutesInHour-1); err != nil {
		return err
	}
	p.applyTime(hour, minute, true, true)
	return nil
}

// SetTime12 sets a 12-hour time and switches the dial to 12-hour format.
// hour must be in [0, 12]; 12 means the start of the half day, so 12 AM
// is midnight and 12 PM is noon.
func (p *Picker) SetTime12(hour, minute int, isAm bool) error {
	if err := checkRange("hour", hour, 0, hoursInHalfDay); err != nil {
		return err
	}
	if err := checkRange("minute", minute, 0, minutesInHour-1); err != nil {
		return err
	}
	h := hour
	if h == hoursInHalfDay {
		h = 0
	}
	if !isAm {
		h += hoursInHalfDay
	}
	p.applyTime(h, minute, false, true)
	return nil
}

// SetTimeFrom sets the time of day from t in t's location.
func (p *Picker) SetTimeFrom(t time.Time, is24Hour bool) {
	hour, minute := t.Hour(), t.Minute()
	if is24Hour {
		p.applyTime(hour, minute, true, true)
		return
	}
	// Both setters accept every value a time.Time can produce.
	_ = p.SetTime12(hour%hoursInHalfDay, minute, hour < hoursInHalfDay)
}

// SetIs24Hour switches the display format, keeping the same moment.
// It is a no-op if the format is unchanged and does not fire the
// time-changed listener.
func (p *Picker) SetIs24Hour(is24Hour bool) *Picker {
	if p.is24Hour == is24Hour {
		return p
	}
	p.applyTime(p.hour, p.minute, is24Hour, false)
	return p
}

// applyTime commits a validated time. Explicit changes come from the
// public setters and fire the listener; format switches do not.
func (p *Picker) applyTime(hour, minute int, is24Hour, explicit bool) {
	// A programmatic change ends the gesture; the finger no longer owns
	// the pointer.
	p.dragging = false
	p.pressed = regionNone

	p.hour = hour
	p.minute = minute
	p.is24Hour = is24Hour
	p.mode.timeSet(p, explicit)
	p.invalidate(DirtyTime | DirtyPointer)
	if explicit {
		p.notify()
	}
}

// ============================================================================
// Step (two-step mode)
// ============================================================================

// Mode returns the picker's mode kind.
func (p *Picker) Mode() ModeKind { return p.mode.Kind() }

// Step returns the component being picked. Single-step pickers always
// report StepHour.
func (p *Picker) Step() Step { return p.step }

// SetStep switches the component being picked and glides the pointer to
// it. No-op in single-step mode or when s is already active.
func (p *Picker) SetStep(s Step) *Picker {
	if p.mode.Kind() != KindTwoStep || p.step == s {
		return p
	}
	p.step = s
	p.invalidate(DirtyStep)
	p.animateToRest()
	return p
}

// ============================================================================
// Angle and animation
// ============================================================================

// Angle returns the pointer-frame angle in radians.
func (p *Picker) Angle() float64 { return p.angle }

// PointerPosition returns the pointer center in the centered frame.
func (p *Picker) PointerPosition() (x, y float32) {
	return p.pointer.CenterX, p.pointer.CenterY
}

func (p *Picker) setAngle(a float64) {
	p.angle = a
	p.pointer.CenterX = p.track.Radius * float32(math.Cos(a))
	p.pointer.CenterY = p.track.Radius * float32(math.Sin(a))
}

// animateToRest glides the pointer from where it is to the angle matching
// the current time and step, the short way around. An animation already in
// flight is finished first.
func (p *Picker) animateToRest() {
	from, to := ShortestArc(p.angle, p.mode.restingAngle(p))
	p.finishAnimation()
	p.anim = p.animations.Animate().
		Duration(AnimationDuration).
		Easing(p.easing).
		Float(from, to, func(v float64) {
			p.setAngle(v)
			p.invalidate(DirtyPointer)
		})
}

func (p *Picker) finishAnimation() {
	if p.anim == nil {
		return
	}
	a := p.anim
	p.anim = nil
	a.Finish()
}

// cancelAnimation stops the glide where it is, for callers that place the
// pointer themselves.
func (p *Picker) cancelAnimation() {
	if p.anim == nil {
		return
	}
	p.anim.Cancel()
	p.anim = nil
}

// SetEasing sets the curve of the pointer glide. Nil restores the default
// deceleration.
func (p *Picker) SetEasing(fn anim.EasingFunc) *Picker {
	if fn == nil {
		fn = anim.EaseOutQuad
	}
	p.easing = fn
	return p
}

// Animating reports whether the pointer is gliding.
func (p *Picker) Animating() bool {
	return p.anim != nil && !p.anim.Done()
}

// Tick advances animations to now. Hosts call it once per frame while it
// returns true.
func (p *Picker) Tick(now time.Time) bool {
	return p.animations.Tick(now)
}

// ============================================================================
// Enabled state
// ============================================================================

func (p *Picker) Enabled() bool { return p.enabled }

// SetEnabled swaps between the enabled and disabled palettes. A disabled
// picker ignores all pointer input; disabling cancels any drag in progress
// the same way PointerCancel does.
func (p *Picker) SetEnabled(enabled bool) *Picker {
	if p.enabled == enabled {
		return p
	}
	p.enabled = enabled
	if !enabled {
		p.pressed = regionNone
		if p.dragging {
			p.dragging = false
			p.mode.release(p, true)
		}
	}
	p.invalidate(DirtyStyle)
	return p
}

// ============================================================================
// Layout
// ============================================================================

// Resize tells the picker its drawing extent. All geometry derives from
// the smaller side.
func (p *Picker) Resize(width, height float32) *Picker {
	p.size = max(0, min(width, height))
	p.relayout()
	return p
}

// Size returns the square drawing extent.
func (p *Picker) Size() float32 { return p.size }

func (p *Picker) relayout() {
	p.mode.layout(p)
	p.setAngle(p.angle)
	p.invalidate(DirtyLayout)
}

// Draw returns the current frame as a display list in widget-local
// coordinates (origin at the top-left of the square extent).
func (p *Picker) Draw() []render.Command {
	return p.mode.draw(p)
}

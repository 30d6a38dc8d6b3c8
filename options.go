package timepicker

import "github.com/agiangrant/timepicker/anim"

// Option configures a Picker at construction.
type Option func(*options)

type options struct {
	mode            Mode
	is24Hour        bool
	clock           anim.Clock
	registry        *anim.Registry
	palette         Palette
	disabledPalette *Palette
	trackSize       float32
	pointerRadius   float32
	trackTouchable  bool
	enabled         bool
	measure         TextMeasurer
	easing          anim.EasingFunc
	width, height   float32
}

func defaultOptions() options {
	return options{
		mode:           SingleStep(),
		clock:          anim.SystemClock{},
		palette:        DefaultPalette(),
		trackSize:      -1,
		pointerRadius:  -1,
		trackTouchable: true,
		enabled:        true,
		measure:        approximateTextWidth,
		easing:         anim.EaseOutQuad,
	}
}

// WithMode selects SingleStep (the default) or TwoStep.
func WithMode(m Mode) Option {
	return func(o *options) {
		if m != nil {
			o.mode = m
		}
	}
}

// With24Hour selects the initial display format. The default is 12-hour.
func With24Hour(v bool) Option {
	return func(o *options) { o.is24Hour = v }
}

// WithClock sets the time source for the initial time and for animation
// timestamps. Ignored for the registry when WithRegistry is also given.
func WithClock(c anim.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithRegistry shares an animation registry with the host.
func WithRegistry(r *anim.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithPalette sets the enabled palette.
func WithPalette(p Palette) Option {
	return func(o *options) { o.palette = p }
}

// WithDisabledPalette sets the disabled palette. Without it the enabled
// palette faded to DisabledAlpha is used.
func WithDisabledPalette(p Palette) Option {
	return func(o *options) { o.disabledPalette = &p }
}

func WithTrackSize(size float32) Option {
	return func(o *options) { o.trackSize = size }
}

func WithPointerRadius(radius float32) Option {
	return func(o *options) { o.pointerRadius = radius }
}

func WithTrackTouchable(v bool) Option {
	return func(o *options) { o.trackTouchable = v }
}

func WithEnabled(v bool) Option {
	return func(o *options) { o.enabled = v }
}

// WithTextMeasurer supplies the host's text measurement, used to place the
// two-step digit labels.
func WithTextMeasurer(m TextMeasurer) Option {
	return func(o *options) {
		if m != nil {
			o.measure = m
		}
	}
}

// WithEasing sets the curve of the two-step pointer glide. The default
// decelerates to rest.
func WithEasing(fn anim.EasingFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.easing = fn
		}
	}
}

// WithSize sets the initial drawing extent.
func WithSize(width, height float32) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

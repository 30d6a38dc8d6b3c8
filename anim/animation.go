// Package anim runs time-based value animations. A Registry is ticked by
// the host once per frame; each Animation maps elapsed time through an
// easing curve and hands the eased progress to its update callback.
package anim

import (
	"sync"
	"sync/atomic"
	"time"
)

// ID uniquely identifies an animation.
type ID uint64

var nextID atomic.Uint64

func newID() ID {
	return ID(nextID.Add(1))
}

// EasingFunc maps time progress in [0, 1] to value progress. Curves must
// return 0 at 0 and 1 at 1.
type EasingFunc func(t float64) float64

var (
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseOutQuad decelerates to rest. The dial pointer glides with it.
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseOutCubic decelerates harder than EaseOutQuad.
	EaseOutCubic EasingFunc = func(t float64) float64 {
		u := 1 - t
		return 1 - u*u*u
	}
)

// EasingByName resolves a config-style curve name. Unknown names return nil.
func EasingByName(name string) EasingFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "ease-out", "decelerate":
		return EaseOutQuad
	case "cubic":
		return EaseOutCubic
	}
	return nil
}

// ============================================================================
// Animation
// ============================================================================

// Animation is a single in-flight value transition.
type Animation struct {
	id         ID
	registry   *Registry
	startTime  time.Time
	duration   time.Duration
	easing     EasingFunc
	update     func(progress float64) // Called each tick with eased progress 0-1
	onComplete func()
	done       atomic.Bool
}

// ID returns the animation's unique identifier.
func (a *Animation) ID() ID {
	return a.id
}

// Done reports whether the animation reached its end, was finished early
// or was cancelled.
func (a *Animation) Done() bool {
	return a.done.Load()
}

// Cancel stops the animation where it is. The update callback is not
// called again.
func (a *Animation) Cancel() {
	if a.done.Swap(true) {
		return
	}
	a.registry.remove(a.id)
}

// Finish ends the animation immediately at its final value: the update
// callback receives the eased progress for t=1 and onComplete runs, both
// synchronously on the caller's goroutine.
func (a *Animation) Finish() {
	if a.done.Swap(true) {
		return
	}
	a.registry.remove(a.id)
	if a.update != nil {
		a.update(a.easing(1))
	}
	if a.onComplete != nil {
		a.onComplete()
	}
}

// step applies progress for now and reports whether the animation ended.
func (a *Animation) step(now time.Time) bool {
	if a.done.Load() {
		return true
	}
	elapsed := now.Sub(a.startTime)
	if elapsed >= a.duration {
		a.Finish()
		return true
	}
	t := 0.0
	if a.duration > 0 {
		t = clamp(float64(elapsed)/float64(a.duration), 0, 1)
	}
	if a.update != nil {
		a.update(a.easing(t))
	}
	return false
}

// ============================================================================
// Registry
// ============================================================================

// Registry tracks active animations and advances them on Tick.
type Registry struct {
	mu         sync.Mutex
	clock      Clock
	animations map[ID]*Animation

	// Callback when animation state changes (for hosts to switch between
	// idle and per-frame redraw)
	onActiveChange func(hasActive bool)
}

// NewRegistry creates a registry stamping animations with clock.
// A nil clock means SystemClock.
func NewRegistry(clock Clock) *Registry {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Registry{
		clock:      clock,
		animations: make(map[ID]*Animation),
	}
}

// Clock returns the registry's time source.
func (r *Registry) Clock() Clock {
	return r.clock
}

// OnActiveChange sets the callback for when animations become active/inactive.
func (r *Registry) OnActiveChange(fn func(hasActive bool)) {
	r.mu.Lock()
	r.onActiveChange = fn
	r.mu.Unlock()
}

func (r *Registry) add(a *Animation) {
	r.mu.Lock()
	wasEmpty := len(r.animations) == 0
	r.animations[a.id] = a
	callback := r.onActiveChange
	r.mu.Unlock()

	if wasEmpty && callback != nil {
		callback(true)
	}
}

func (r *Registry) remove(id ID) {
	r.mu.Lock()
	_, ok := r.animations[id]
	delete(r.animations, id)
	isEmpty := len(r.animations) == 0
	callback := r.onActiveChange
	r.mu.Unlock()

	if ok && isEmpty && callback != nil {
		callback(false)
	}
}

// HasActive returns true if there are any running animations.
func (r *Registry) HasActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.animations) > 0
}

// Count returns the number of active animations.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.animations)
}

// Tick advances every animation to now and drops the finished ones.
// Update callbacks run outside the registry lock so they may start or
// finish other animations. Returns true if any animations are still active.
func (r *Registry) Tick(now time.Time) bool {
	r.mu.Lock()
	active := make([]*Animation, 0, len(r.animations))
	for _, a := range r.animations {
		active = append(active, a)
	}
	r.mu.Unlock()

	for _, a := range active {
		a.step(now)
	}
	return r.HasActive()
}

// ============================================================================
// Builder
// ============================================================================

// Builder provides a fluent API for creating animations.
type Builder struct {
	registry   *Registry
	duration   time.Duration
	easing     EasingFunc
	onComplete func()
}

// Animate starts building an animation on this registry.
func (r *Registry) Animate() *Builder {
	return &Builder{
		registry: r,
		duration: 300 * time.Millisecond, // Default duration
		easing:   EaseOutCubic,
	}
}

// Duration sets how long the animation runs.
func (b *Builder) Duration(d time.Duration) *Builder {
	b.duration = d
	return b
}

// Easing sets the easing function. Nil keeps the current one.
func (b *Builder) Easing(fn EasingFunc) *Builder {
	if fn != nil {
		b.easing = fn
	}
	return b
}

// OnComplete sets a callback for when the animation finishes.
func (b *Builder) OnComplete(fn func()) *Builder {
	b.onComplete = fn
	return b
}

// Custom registers an animation with a custom update function. The update
// function is called once with progress 0 before Custom returns, so the
// animated value is at its start immediately.
func (b *Builder) Custom(update func(progress float64)) *Animation {
	a := &Animation{
		id:         newID(),
		registry:   b.registry,
		startTime:  b.registry.clock.Now(),
		duration:   b.duration,
		easing:     b.easing,
		update:     update,
		onComplete: b.onComplete,
	}
	if update != nil {
		update(a.easing(0))
	}
	b.registry.add(a)
	return a
}

// Float animates a float64 from one value to another.
func (b *Builder) Float(from, to float64, set func(v float64)) *Animation {
	return b.Custom(func(progress float64) {
		set(Lerp(from, to, progress))
	})
}

// ============================================================================
// Helper Functions
// ============================================================================

// Lerp interpolates linearly from a to b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

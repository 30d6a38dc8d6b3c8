package timepicker

// ============================================================================
// Pointer input
// ============================================================================

// HandleEvent dispatches a pointer event to the matching handler and
// reports whether the picker claimed it.
func (p *Picker) HandleEvent(ev PointerEvent) bool {
	switch ev.Type {
	case EventPointerDown:
		return p.PointerDown(ev.X, ev.Y)
	case EventPointerMove:
		return p.PointerMove(ev.X, ev.Y)
	case EventPointerUp:
		return p.PointerUp(ev.X, ev.Y)
	case EventPointerCancel:
		return p.PointerCancel()
	default:
		return false
	}
}

// HitTest reports whether a pointer-down at (x, y) would be claimed.
func (p *Picker) HitTest(x, y float32) bool {
	return p.hitRegion(x, y) != regionNone
}

func (p *Picker) hitRegion(x, y float32) region {
	if !p.enabled || p.size <= 0 {
		return regionNone
	}
	if p.pointer.CollidesWith(x, y) {
		return regionPointer
	}
	if p.trackTouchable && p.track.CollidesWith(x, y) {
		return regionTrack
	}
	return p.mode.labelAt(p, x, y)
}

// PointerDown begins an interaction at (x, y) in the centered frame.
// Grabbing the pointer starts a drag. Touching the track jumps the pointer
// there, updates the time and starts a drag. Labels are remembered until
// the matching PointerUp.
func (p *Picker) PointerDown(x, y float32) bool {
	r := p.hitRegion(x, y)
	p.pressed = r
	switch r {
	case regionPointer:
		p.mode.grab(p, x, y)
		p.dragging = true
		return true
	case regionTrack:
		p.cancelAnimation()
		p.slopX, p.slopY = 0, 0
		p.setAngle(atan2(x, y))
		p.mode.applyAngle(p, ClockDegrees(p.angle))
		p.dragging = true
		p.invalidate(DirtyTime | DirtyPointer)
		p.notify()
		return true
	case regionHourLabel, regionMinuteLabel:
		return true
	default:
		return false
	}
}

// PointerMove follows a drag. The time listener fires on every move, even
// when the value did not change.
func (p *Picker) PointerMove(x, y float32) bool {
	if !p.dragging || !p.enabled {
		return false
	}
	p.setAngle(atan2(x-p.slopX, y-p.slopY))
	p.mode.applyAngle(p, ClockDegrees(p.angle))
	p.invalidate(DirtyTime | DirtyPointer)
	p.notify()
	return true
}

// PointerUp ends a drag, or completes a label tap when it lands on the
// label the interaction started on.
func (p *Picker) PointerUp(x, y float32) bool {
	pressed := p.pressed
	p.pressed = regionNone
	if p.dragging {
		p.dragging = false
		p.mode.release(p, false)
		p.invalidate(DirtyPointer)
		return true
	}
	if !p.enabled {
		return false
	}
	switch pressed {
	case regionHourLabel, regionMinuteLabel:
		if p.mode.labelAt(p, x, y) == pressed {
			p.mode.tapLabel(p, pressed)
		}
		return true
	}
	return false
}

// PointerCancel abandons the interaction. A drag keeps the time it reached
// but does not advance the two-step dial to its next step.
func (p *Picker) PointerCancel() bool {
	p.pressed = regionNone
	if !p.dragging {
		return false
	}
	p.dragging = false
	p.mode.release(p, true)
	p.invalidate(DirtyPointer)
	return true
}

// Dragging reports whether a drag is in progress.
func (p *Picker) Dragging() bool { return p.dragging }

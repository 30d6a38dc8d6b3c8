package timepicker

import "github.com/agiangrant/timepicker/render"

// DisabledAlpha is applied to the enabled palette to derive the default
// disabled palette.
const DisabledAlpha uint8 = 77

// Palette holds the colors for one visual state. Colors are 0xRRGGBBAA.
type Palette struct {
	Text       uint32
	Track      uint32
	Pointer    uint32
	Canvas     uint32
	Face       uint32
	PickedText uint32 // two-step: digits of the step being picked
}

// DefaultPalette is the palette a new picker starts with.
func DefaultPalette() Palette {
	return Palette{
		Text:       0x000000FF,
		Track:      0xF57C00FF,
		Pointer:    0x0FDA71FF,
		Canvas:     render.Transparent,
		Face:       0xFFFFFFFF,
		PickedText: 0x888888FF,
	}
}

// Faded returns the palette with every color's alpha replaced.
func (p Palette) Faded(alpha uint8) Palette {
	return Palette{
		Text:       render.WithAlpha(p.Text, alpha),
		Track:      render.WithAlpha(p.Track, alpha),
		Pointer:    render.WithAlpha(p.Pointer, alpha),
		Canvas:     render.WithAlpha(p.Canvas, alpha),
		Face:       render.WithAlpha(p.Face, alpha),
		PickedText: render.WithAlpha(p.PickedText, alpha),
	}
}

// TextMeasurer returns the advance width of text at the given font size.
// Hosts with a real text shaper should supply one; the default assumes
// digits take 0.6 em and everything else 0.3 em.
type TextMeasurer func(text string, size float32) float32

func approximateTextWidth(text string, size float32) float32 {
	var w float32
	for _, r := range text {
		if r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' {
			w += 0.6 * size
		} else {
			w += 0.3 * size
		}
	}
	return w
}

// ============================================================================
// Color accessors
// ============================================================================

// Palette returns the enabled palette.
func (p *Picker) Palette() Palette { return p.palette }

// SetPalette replaces the enabled palette.
func (p *Picker) SetPalette(pal Palette) *Picker {
	p.palette = pal
	p.invalidate(DirtyStyle)
	return p
}

// DisabledPalette returns the palette used while the picker is disabled.
func (p *Picker) DisabledPalette() Palette { return p.disabledPalette }

// SetDisabledPalette replaces the disabled palette.
func (p *Picker) SetDisabledPalette(pal Palette) *Picker {
	p.disabledPalette = pal
	p.invalidate(DirtyStyle)
	return p
}

// CurrentPalette returns whichever palette is active for the enabled state.
func (p *Picker) CurrentPalette() Palette {
	if p.enabled {
		return p.palette
	}
	return p.disabledPalette
}

func (p *Picker) TextColor() uint32       { return p.palette.Text }
func (p *Picker) TrackColor() uint32      { return p.palette.Track }
func (p *Picker) PointerColor() uint32    { return p.palette.Pointer }
func (p *Picker) CanvasColor() uint32     { return p.palette.Canvas }
func (p *Picker) FaceColor() uint32       { return p.palette.Face }
func (p *Picker) PickedTextColor() uint32 { return p.palette.PickedText }

func (p *Picker) SetTextColor(c uint32) *Picker {
	p.palette.Text = c
	p.invalidate(DirtyStyle)
	return p
}

func (p *Picker) SetTrackColor(c uint32) *Picker {
	p.palette.Track = c
	p.invalidate(DirtyStyle)
	return p
}

func (p *Picker) SetPointerColor(c uint32) *Picker {
	p.palette.Pointer = c
	p.invalidate(DirtyStyle)
	return p
}

func (p *Picker) SetCanvasColor(c uint32) *Picker {
	p.palette.Canvas = c
	p.invalidate(DirtyStyle)
	return p
}

func (p *Picker) SetFaceColor(c uint32) *Picker {
	p.palette.Face = c
	p.invalidate(DirtyStyle)
	return p
}

func (p *Picker) SetPickedTextColor(c uint32) *Picker {
	p.palette.PickedText = c
	p.invalidate(DirtyStyle)
	return p
}

// ============================================================================
// Geometry accessors
// ============================================================================

// TrackSize returns the effective track thickness in pixels.
func (p *Picker) TrackSize() float32 { return p.trackSize }

// SetTrackSize sets the track thickness. Values <= 0 select the default of
// 1/25 of the widget extent.
func (p *Picker) SetTrackSize(size float32) *Picker {
	p.trackSizeReq = size
	p.relayout()
	return p
}

// PointerRadius returns the effective pointer radius in pixels.
func (p *Picker) PointerRadius() float32 { return p.pointer.Radius }

// SetPointerRadius sets the pointer radius. Values <= 0 select the default
// of 1/7 of the track radius.
func (p *Picker) SetPointerRadius(radius float32) *Picker {
	p.pointerRadiusReq = radius
	p.relayout()
	return p
}

// TrackTouchable reports whether touching the track jumps the pointer.
func (p *Picker) TrackTouchable() bool { return p.trackTouchable }

// SetTrackTouchable enables or disables adjusting time by touching the track.
func (p *Picker) SetTrackTouchable(v bool) *Picker {
	p.trackTouchable = v
	return p
}

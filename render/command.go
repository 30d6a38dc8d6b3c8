// Package render describes what a dial frame contains without rasterizing
// it. A frame is an ordered display list of Commands in widget-local pixel
// coordinates; hosts replay the list with whatever graphics stack they own.
package render

// ============================================================================
// Render Commands
// ============================================================================

// Command represents a single rendering operation. Exactly one field is set.
type Command struct {
	Clear        *ClearCmd  `json:"Clear,omitempty"`
	FillCircle   *CircleCmd `json:"FillCircle,omitempty"`
	StrokeCircle *CircleCmd `json:"StrokeCircle,omitempty"`
	DrawText     *TextCmd   `json:"DrawText,omitempty"`
}

// Kind returns a short name for the populated command.
func (c Command) Kind() string {
	switch {
	case c.Clear != nil:
		return "Clear"
	case c.FillCircle != nil:
		return "FillCircle"
	case c.StrokeCircle != nil:
		return "StrokeCircle"
	case c.DrawText != nil:
		return "DrawText"
	default:
		return ""
	}
}

// ClearCmd fills the whole widget extent.
type ClearCmd struct {
	Color uint32 `json:"color"`
}

// CircleCmd is a disc (fill) or a circle outline (stroke). For strokes,
// StrokeWidth is centered on Radius.
type CircleCmd struct {
	X           float32 `json:"x"`
	Y           float32 `json:"y"`
	Radius      float32 `json:"radius"`
	Color       uint32  `json:"color"`
	StrokeWidth float32 `json:"stroke_width,omitempty"`
}

// TextCmd draws a single line. Y is the baseline; X is interpreted through
// Align.
type TextCmd struct {
	X     float32   `json:"x"`
	Y     float32   `json:"y"`
	Text  string    `json:"text"`
	Size  float32   `json:"size"`
	Color uint32    `json:"color"`
	Align TextAlign `json:"align"`
}

type TextAlign string

const (
	TextAlignLeft   TextAlign = "Left"
	TextAlignCenter TextAlign = "Center"
	TextAlignRight  TextAlign = "Right"
)

// ============================================================================
// Command Builders
// ============================================================================

func Clear(color uint32) Command {
	return Command{Clear: &ClearCmd{Color: color}}
}

func FillCircle(x, y, radius float32, color uint32) Command {
	return Command{
		FillCircle: &CircleCmd{X: x, Y: y, Radius: radius, Color: color},
	}
}

func StrokeCircle(x, y, radius, width float32, color uint32) Command {
	return Command{
		StrokeCircle: &CircleCmd{X: x, Y: y, Radius: radius, Color: color, StrokeWidth: width},
	}
}

func Text(text string, x, y, size float32, color uint32) Command {
	return TextAligned(text, x, y, size, color, TextAlignCenter)
}

func TextAligned(text string, x, y, size float32, color uint32, align TextAlign) Command {
	return Command{
		DrawText: &TextCmd{X: x, Y: y, Text: text, Size: size, Color: color, Align: align},
	}
}

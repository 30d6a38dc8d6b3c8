package gioview

import (
	"image/color"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/timepicker"
)

func TestNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0xF5, G: 0x7C, B: 0x00, A: 0xFF}, NRGBA(0xF57C00FF))
	assert.Equal(t, color.NRGBA{}, NRGBA(0))
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		kind pointer.Kind
		want timepicker.EventType
	}{
		{pointer.Press, timepicker.EventPointerDown},
		{pointer.Drag, timepicker.EventPointerMove},
		{pointer.Release, timepicker.EventPointerUp},
		{pointer.Cancel, timepicker.EventPointerCancel},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			ev, ok := translate(tt.kind, f32.Pt(150, 20), 100)
			assert.True(t, ok)
			assert.Equal(t, tt.want, ev.Type)
			assert.Equal(t, float32(50), ev.X)
			assert.Equal(t, float32(-80), ev.Y)
		})
	}

	_, ok := translate(pointer.Move, f32.Pt(0, 0), 100)
	assert.False(t, ok, "hover is not forwarded")
}

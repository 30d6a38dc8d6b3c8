package timepicker

import "math"

// Two angle frames are in play:
//
//   - pointer frame: radians as returned by atan2(y, x) in the dial's
//     centered coordinate system (y grows downward), so 0 points at 3 o'clock
//     and 12 o'clock sits at -π/2;
//   - clock face: degrees clockwise from 12 o'clock in [0, 360).
//
// Times are derived from clock-face degrees and converted back into the
// pointer frame for drawing.

const (
	degreesFullTurn   = 360.0
	degreesClockStart = 90.0

	radiansFullTurn   = 2 * math.Pi
	radiansHalfTurn   = math.Pi
	radiansClockStart = math.Pi / 2

	degreesPerHour24      = degreesFullTurn / hoursInDay
	degreesPerHour12      = degreesFullTurn / hoursInHalfDay
	degreesPerMinuteOf24H = degreesFullTurn / (minutesInHour * hoursInDay)
	degreesPerMinuteOf12H = degreesFullTurn / (minutesInHour * hoursInHalfDay)
	degreesPerMinuteOf1H  = degreesFullTurn / minutesInHour

	// Absorbs the rounding error of a radians round trip so a time converted
	// to an angle and back lands on the same step.
	stepEpsilon = 1e-9
)

// ClockDegrees converts a pointer-frame angle to clock-face degrees.
func ClockDegrees(radians float64) float64 {
	d := math.Mod(radians*180/math.Pi+degreesFullTurn+degreesClockStart, degreesFullTurn)
	if d < 0 {
		d += degreesFullTurn
	}
	return d
}

// PointerAngle converts clock-face degrees to a pointer-frame angle.
func PointerAngle(degrees float64) float64 {
	return (degrees - degreesClockStart) * math.Pi / 180
}

// NormalizeRadians maps an angle into [0, 2π).
func NormalizeRadians(a float64) float64 {
	a = math.Mod(a, radiansFullTurn)
	if a < 0 {
		a += radiansFullTurn
	}
	return a
}

// ShortestArc returns interpolation endpoints for moving from start to
// target the short way around the circle. Both are normalized into
// [0, 2π) and, when they are more than half a turn apart, the larger one
// is shifted down by a full turn.
func ShortestArc(start, target float64) (from, to float64) {
	from = NormalizeRadians(start)
	to = NormalizeRadians(target)
	if math.Abs(to-from) > radiansHalfTurn {
		if from > to {
			from -= radiansFullTurn
		} else {
			to -= radiansFullTurn
		}
	}
	return from, to
}

func stepIndex(degrees, step float64) int {
	return int(math.Floor(degrees/step + stepEpsilon))
}

// ============================================================================
// Angle -> Time
// ============================================================================

// Time24FromDegrees reads hour and minute off a dial where one revolution
// is 24 hours.
func Time24FromDegrees(degrees float64) (hour, minute int) {
	hour = stepIndex(degrees, degreesPerHour24) % hoursInDay
	minute = stepIndex(degrees, degreesPerMinuteOf24H) % minutesInHour
	return hour, minute
}

// Time12FromDegrees reads the face hour (0-11) and minute off a dial where
// one revolution is 12 hours. AM/PM is not recoverable from the angle; see
// Next12Hour.
func Time12FromDegrees(degrees float64) (hourAmPm, minute int) {
	hourAmPm = stepIndex(degrees, degreesPerHour12) % hoursInHalfDay
	minute = stepIndex(degrees, degreesPerMinuteOf12H) % minutesInHour
	return hourAmPm, minute
}

// HourFromDegrees reads only the hour, for the hour step of the two-step
// dial. In 12-hour mode the result is the face hour 0-11.
func HourFromDegrees(degrees float64, is24Hour bool) int {
	if is24Hour {
		return stepIndex(degrees, degreesPerHour24) % hoursInDay
	}
	return stepIndex(degrees, degreesPerHour12) % hoursInHalfDay
}

// MinuteFromDegrees reads the minute off a dial where one revolution is
// 60 minutes.
func MinuteFromDegrees(degrees float64) int {
	return stepIndex(degrees, degreesPerMinuteOf1H) % minutesInHour
}

// Next12Hour carries AM/PM across a 12-hour dial sample. prevHour is the
// current 24-hour domain hour and hourAmPm the face hour just read. The
// half of the day flips only when the face hour moves directly between 11
// and 0; any other change keeps it.
func Next12Hour(prevHour, hourAmPm int) int {
	prevAmPm := prevHour % hoursInHalfDay
	isAm := prevHour < hoursInHalfDay

	if hourAmPm == 0 && prevAmPm == 11 || hourAmPm == 11 && prevAmPm == 0 {
		isAm = !isAm
	}
	if isAm {
		return hourAmPm
	}
	return hourAmPm + hoursInHalfDay
}

// ============================================================================
// Time -> Angle
// ============================================================================

// Angle24 is the pointer-frame angle of a time on a 24-hour dial.
func Angle24(hour, minute int) float64 {
	return PointerAngle(float64(hour)*degreesPerHour24 + float64(minute)*degreesPerMinuteOf24H)
}

// Angle12 is the pointer-frame angle of a time on a 12-hour dial.
func Angle12(hour, minute int) float64 {
	return PointerAngle(float64(hour%hoursInHalfDay)*degreesPerHour12 + float64(minute)*degreesPerMinuteOf12H)
}

// HourAngle is the angle of a whole hour, ignoring minutes.
func HourAngle(hour int, is24Hour bool) float64 {
	if is24Hour {
		return PointerAngle(float64(hour) * degreesPerHour24)
	}
	return PointerAngle(float64(hour%hoursInHalfDay) * degreesPerHour12)
}

// MinuteAngle is the angle of a minute on a 60-minute dial.
func MinuteAngle(minute int) float64 {
	return PointerAngle(float64(minute) * degreesPerMinuteOf1H)
}

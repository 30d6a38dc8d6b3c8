package timepicker

import "strconv"

const (
	minutesInHour  = 60
	hoursInDay     = 24
	hoursInHalfDay = 12
)

// AM and PM name the isAm argument of the 12-hour setters.
const (
	AM = true
	PM = false
)

// PickedTime is an immutable snapshot of the dial's value. Hour is always
// in the 24-hour domain; Is24Hour only controls how the value is rendered.
type PickedTime struct {
	Hour     int  `json:"hour"`
	Minute   int  `json:"minute"`
	Is24Hour bool `json:"is_24_hour"`
}

// HourFormatted returns the hour as displayed: 0-23 in 24-hour format,
// 1-12 otherwise.
func (t PickedTime) HourFormatted() int {
	if t.Is24Hour {
		return t.Hour
	}
	return hour12(t.Hour)
}

func (t PickedTime) IsAm() bool { return t.Hour < hoursInHalfDay }
func (t PickedTime) IsPm() bool { return t.Hour >= hoursInHalfDay }

// String24Hour renders "HH:MM".
func (t PickedTime) String24Hour() string {
	return twoDigits(t.Hour) + ":" + twoDigits(t.Minute)
}

// String12Hour renders "HH:MM AM" or "HH:MM PM".
func (t PickedTime) String12Hour() string {
	return twoDigits(hour12(t.Hour)) + ":" + twoDigits(t.Minute) + " " + amPmText(t.IsAm())
}

func (t PickedTime) String() string {
	if t.Is24Hour {
		return t.String24Hour()
	}
	return t.String12Hour()
}

// FormatHour renders a 24-hour domain hour as two digits.
func FormatHour(hour int) (string, error) {
	if err := checkRange("hour", hour, 0, hoursInDay-1); err != nil {
		return "", err
	}
	return twoDigits(hour), nil
}

// FormatMinute renders a minute as two digits.
func FormatMinute(minute int) (string, error) {
	if err := checkRange("minute", minute, 0, minutesInHour-1); err != nil {
		return "", err
	}
	return twoDigits(minute), nil
}

// hour12 maps a 24-hour domain hour onto the 1-12 clock face.
func hour12(hour int) int {
	h := hour % hoursInHalfDay
	if h == 0 {
		return hoursInHalfDay
	}
	return h
}

func twoDigits(v int) string {
	if v >= 0 && v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func amPmText(isAm bool) string {
	if isAm {
		return "AM"
	}
	return "PM"
}

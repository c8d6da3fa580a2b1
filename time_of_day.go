package hijrah

import (
	"fmt"
	"time"
)

const (
	secondsPerDay    = 24 * 60 * 60
	nanosPerSecond   = int64(time.Second)
	nanosPerMinute   = int64(time.Minute)
	nanosPerHour     = int64(time.Hour)
	nanosPerDay      = 24 * nanosPerHour
	maxOffsetSeconds = 18 * 60 * 60
	secondsPerMinute = 60
	secondsPerHour   = 60 * 60
	minutesPerDay    = 24 * 60
	hoursPerDay      = 24
)

// TimeOfDay is a wall clock time without a date or zone, with nanosecond
// precision.
type TimeOfDay struct {
	nanos int64 // nanosecond of day, 0 <= nanos < nanosPerDay
}

// Midnight is 00:00 and Noon is 12:00.
var (
	Midnight = TimeOfDay{}
	Noon     = TimeOfDay{nanos: 12 * nanosPerHour}
)

// NewTimeOfDay validates and returns the given time of day.
func NewTimeOfDay(hour, minute, second, nanosecond int) (TimeOfDay, error) {
	if err := checkRange(FieldHour, int64(hour), 0, 23); err != nil {
		return TimeOfDay{}, err
	}
	if err := checkRange(FieldMinute, int64(minute), 0, 59); err != nil {
		return TimeOfDay{}, err
	}
	if err := checkRange(FieldSecond, int64(second), 0, 59); err != nil {
		return TimeOfDay{}, err
	}
	if err := checkRange(FieldNanosecond, int64(nanosecond), 0, nanosPerSecond-1); err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{nanos: int64(hour)*nanosPerHour + int64(minute)*nanosPerMinute +
		int64(second)*nanosPerSecond + int64(nanosecond)}, nil
}

// TimeOfDayOfNanos returns the time of day n nanoseconds after midnight.
func TimeOfDayOfNanos(n int64) (TimeOfDay, error) {
	if err := checkRange(FieldNanosecond, n, 0, nanosPerDay-1); err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{nanos: n}, nil
}

// TimeOfDayFromTime returns the wall clock time of t in its location.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{nanos: int64(h)*nanosPerHour + int64(m)*nanosPerMinute +
		int64(s)*nanosPerSecond + int64(t.Nanosecond())}
}

func (t TimeOfDay) Hour() int       { return int(t.nanos / nanosPerHour) }
func (t TimeOfDay) Minute() int     { return int(t.nanos / nanosPerMinute % 60) }
func (t TimeOfDay) Second() int     { return int(t.nanos / nanosPerSecond % 60) }
func (t TimeOfDay) Nanosecond() int { return int(t.nanos % nanosPerSecond) }

// NanoOfDay returns the nanoseconds since midnight.
func (t TimeOfDay) NanoOfDay() int64 { return t.nanos }

// SecondOfDay returns the whole seconds since midnight.
func (t TimeOfDay) SecondOfDay() int64 { return t.nanos / nanosPerSecond }

// Duration returns the time elapsed since midnight.
func (t TimeOfDay) Duration() time.Duration { return time.Duration(t.nanos) }

// add returns t advanced by n nanoseconds and the number of days the
// addition carried across midnight (negative when moving backwards).
func (t TimeOfDay) add(n int64) (TimeOfDay, int64) {
	days := n / nanosPerDay
	nod := t.nanos + n%nanosPerDay
	days += floorDiv(nod, nanosPerDay)
	return TimeOfDay{nanos: floorMod(nod, nanosPerDay)}, days
}

// Add returns t advanced by d, wrapping around midnight.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	nt, _ := t.add(int64(d))
	return nt
}

func (t TimeOfDay) Compare(o TimeOfDay) int {
	switch {
	case t.nanos < o.nanos:
		return -1
	case t.nanos > o.nanos:
		return 1
	}
	return 0
}

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.nanos < o.nanos }
func (t TimeOfDay) After(o TimeOfDay) bool  { return t.nanos > o.nanos }

// String returns HH:mm:ss followed by the shortest fraction that represents
// the nanoseconds, if any.
func (t TimeOfDay) String() string {
	b := make([]byte, 0, 18)
	b = fmt.Appendf(b, "%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	return string(appendTrimmedFraction(b, t.Nanosecond(), 9))
}

// appendTrimmedFraction appends '.' and up to digits fraction digits of ns,
// without trailing zeros. Nothing is appended when the fraction is zero.
func appendTrimmedFraction(b []byte, ns, digits int) []byte {
	frac := fmt.Sprintf("%09d", ns)[:digits]
	end := len(frac)
	for end > 0 && frac[end-1] == '0' {
		end--
	}
	if end == 0 {
		return b
	}
	return append(append(b, '.'), frac[:end]...)
}

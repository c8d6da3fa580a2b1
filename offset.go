package hijrah

import (
	"fmt"
	"strconv"
	"time"
)

// Offset is a fixed difference from UTC in seconds, east positive, within
// ±18:00.
type Offset int32

// UTC is the zero offset.
const UTC Offset = 0

// OffsetOfSeconds returns the offset of the given number of seconds.
func OffsetOfSeconds(seconds int) (Offset, error) {
	if err := checkRange(FieldOffset, int64(seconds), -maxOffsetSeconds, maxOffsetSeconds); err != nil {
		return 0, err
	}
	return Offset(seconds), nil
}

// OffsetOf returns the offset of hours and minutes. Both must carry the same
// sign, as in OffsetOf(-3, -30).
func OffsetOf(hours, minutes int) (Offset, error) {
	if err := checkRange(FieldOffset, int64(minutes), -59, 59); err != nil {
		return 0, err
	}
	if (hours > 0 && minutes < 0) || (hours < 0 && minutes > 0) {
		return 0, fieldError(FieldOffset, int64(minutes), "hours and minutes must have the same sign")
	}
	return OffsetOfSeconds(hours*secondsPerHour + minutes*secondsPerMinute)
}

// OffsetFromTime returns the offset in effect for t in its location.
func OffsetFromTime(t time.Time) Offset {
	_, off := t.Zone()
	return Offset(off)
}

// ParseOffset parses "Z", "±HH", "±HHMM", "±HH:MM" or "±HH:MM:SS".
func ParseOffset(s string) (Offset, error) {
	if s == "Z" || s == "z" {
		return UTC, nil
	}
	o, n, err := scanOffset(s, 0, true)
	if err != nil {
		return 0, &ParseError{Text: s, Pos: n, Err: err}
	}
	if n != len(s) {
		return 0, &ParseError{Text: s, Pos: n, Err: fmt.Errorf("unexpected trailing text")}
	}
	return o, nil
}

// scanOffset reads a signed offset starting at s[i]. The minutes and seconds
// parts are optional and may be separated by colons. It returns the offset
// and the index after it.
func scanOffset(s string, i int, lenient bool) (Offset, int, error) {
	if i >= len(s) || (s[i] != '+' && s[i] != '-') {
		return 0, i, fmt.Errorf("expected offset sign")
	}
	sign := 1
	if s[i] == '-' {
		sign = -1
	}
	i++
	var parts [3]int
	n := 0
	for n < 3 {
		j := i
		if n > 0 && j < len(s) && s[j] == ':' {
			j++
		}
		if j+2 > len(s) || !isDigit(s[j]) || !isDigit(s[j+1]) {
			break
		}
		parts[n] = int(s[j]-'0')*10 + int(s[j+1]-'0')
		i = j + 2
		n++
		if !lenient && n == 2 {
			break
		}
	}
	if n == 0 {
		return 0, i, fmt.Errorf("expected offset hours")
	}
	if parts[0] > 18 || parts[1] > 59 || parts[2] > 59 {
		return 0, i, fieldError(FieldOffset, int64(parts[0]*secondsPerHour+parts[1]*secondsPerMinute+parts[2]), "offset out of range")
	}
	o, err := OffsetOfSeconds(sign * (parts[0]*secondsPerHour + parts[1]*secondsPerMinute + parts[2]))
	return o, i, err
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Seconds returns the offset in seconds.
func (o Offset) Seconds() int { return int(o) }

// Duration returns the offset as a duration.
func (o Offset) Duration() time.Duration { return time.Duration(o) * time.Second }

// String returns ±HH:MM, or ±HH:MM:SS when the offset has seconds.
func (o Offset) String() string {
	return string(appendOffset(nil, o, true, true, false))
}

// appendOffset writes o as ±HH, ±HHMM or ±HH:MM (colon). Seconds are written
// when non-zero. With zulu set a zero offset is written as "Z".
func appendOffset(b []byte, o Offset, minutes, colon, zulu bool) []byte {
	if o == 0 && zulu {
		return append(b, 'Z')
	}
	s := int(o)
	if s < 0 {
		b = append(b, '-')
		s = -s
	} else {
		b = append(b, '+')
	}
	b = append2(b, s/secondsPerHour)
	if !minutes && s%secondsPerHour == 0 {
		return b
	}
	if colon {
		b = append(b, ':')
	}
	b = append2(b, s/secondsPerMinute%60)
	if s%secondsPerMinute != 0 {
		if colon {
			b = append(b, ':')
		}
		b = append2(b, s%secondsPerMinute)
	}
	return b
}

func append2(b []byte, v int) []byte {
	if v < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(v), 10)
}

// Location returns a fixed time.Location for o, time.UTC for the zero offset.
func (o Offset) Location() *time.Location {
	if o == 0 {
		return time.UTC
	}
	return time.FixedZone(o.String(), int(o))
}

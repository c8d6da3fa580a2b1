package hijrah

import (
	"fmt"
	"strconv"
	"strings"
)

// Month is a Hijrah month, Muharram (1) through Dhu al-Hijjah (12).
type Month int

const (
	Muharram Month = iota + 1
	Safar
	RabiAlAwwal
	RabiAlThani
	JumadaAlAwwal
	JumadaAlThani
	Rajab
	Shaaban
	Ramadan
	Shawwal
	DhuAlQidah
	DhuAlHijjah
)

// MonthOf returns the month with the given number.
func MonthOf(v int) (Month, error) {
	if err := checkRange(FieldMonth, int64(v), 1, 12); err != nil {
		return 0, err
	}
	return Month(v), nil
}

// MonthFrom returns the month of t.
func MonthFrom(t Temporal) (Month, error) {
	v, ok := t.Lookup(FieldMonth)
	if !ok {
		return 0, fmtArgError("%T has no month", t)
	}
	return MonthOf(int(v))
}

// Valid reports whether m is one of the twelve months.
func (m Month) Valid() bool { return m >= Muharram && m <= DhuAlHijjah }

// String returns the English name of the month.
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return englishSymbols.months[m-1]
}

// ParseMonth parses a month number (1-12) or a case-insensitive prefix, of
// at least three letters, of an English month name such as "ram" or
// "Dhu al-Hijjah".
func ParseMonth(val string) (Month, error) {
	if n, err := strconv.Atoi(val); err == nil {
		return MonthOf(n)
	}
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) >= 3 {
		for i, name := range englishSymbols.months {
			if strings.HasPrefix(strings.ToLower(name), lc) {
				return Month(i + 1), nil
			}
		}
	}
	return 0, fmtArgError("invalid month: %q", val)
}

// MarshalText implements encoding.TextMarshaler using the month number.
func (m Month) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fieldError(FieldMonth, int64(m), "valid range is 1..12")
	}
	return strconv.AppendInt(nil, int64(m), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting anything
// ParseMonth accepts.
func (m *Month) UnmarshalText(b []byte) error {
	v, err := ParseMonth(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

package hijrah

import (
	"time"

	"gopkg.in/yaml.v3"
)

// OffsetDate is a date with a fixed offset from UTC, such as
// 1443-01-01+03:00. Its instant is midnight at the start of the date.
//
// The == operator compares the date and the offset; Equal and Compare look
// only at the instant.
type OffsetDate struct {
	date   Date
	offset Offset
}

// OffsetDateOf combines a date and an offset.
func OffsetDateOf(d Date, o Offset) OffsetDate {
	return OffsetDate{date: d, offset: o}
}

// OffsetDate returns the offset date with the given fields.
func (c *Calendar) OffsetDate(year, month, day int, o Offset) (OffsetDate, error) {
	d, err := c.Date(year, month, day)
	if err != nil {
		return OffsetDate{}, err
	}
	return OffsetDate{date: d, offset: o}, nil
}

// OffsetDateOfInstant returns the date of instant t at the offset zone has
// at t. A nil zone means UTC.
func (c *Calendar) OffsetDateOfInstant(t time.Time, zone *time.Location) (OffsetDate, error) {
	odt, err := c.OffsetDateTimeOfInstant(t, zone)
	if err != nil {
		return OffsetDate{}, err
	}
	return odt.OffsetDate(), nil
}

// AtOffset combines d with a fixed offset.
func (d Date) AtOffset(o Offset) OffsetDate { return OffsetDate{date: d, offset: o} }

// OffsetDate drops the time of day of o.
func (o OffsetDateTime) OffsetDate() OffsetDate {
	return OffsetDate{date: o.dt.date, offset: o.offset}
}

func (o OffsetDate) Date() Date            { return o.date }
func (o OffsetDate) Offset() Offset        { return o.offset }
func (o OffsetDate) Year() int             { return o.date.Year() }
func (o OffsetDate) Month() Month          { return o.date.Month() }
func (o OffsetDate) Day() int              { return o.date.Day() }
func (o OffsetDate) Weekday() time.Weekday { return o.date.Weekday() }

// Instant returns midnight at the start of the date, in a fixed zone for
// the offset.
func (o OffsetDate) Instant() time.Time { return o.date.Instant(o.offset) }

// Lookup implements Temporal.
func (o OffsetDate) Lookup(f Field) (int64, bool) {
	if f == FieldOffset {
		return int64(o.offset), true
	}
	return o.date.Lookup(f)
}

func (OffsetDate) temporal() {}

// AtTime returns the offset date-time of o at t.
func (o OffsetDate) AtTime(t TimeOfDay) OffsetDateTime {
	return OffsetDateTimeOf(o.date.AtTime(t), o.offset)
}

// AtStartOfDay returns the offset date-time at midnight of o.
func (o OffsetDate) AtStartOfDay() OffsetDateTime {
	return OffsetDateTimeOf(o.date.AtStartOfDay(), o.offset)
}

// WithOffsetSameLocal keeps the date and replaces the offset.
func (o OffsetDate) WithOffsetSameLocal(off Offset) OffsetDate {
	return OffsetDate{date: o.date, offset: off}
}

func (o OffsetDate) with(d Date) OffsetDate { return OffsetDate{date: d, offset: o.offset} }

func (o OffsetDate) withErr(d Date, err error) (OffsetDate, error) {
	if err != nil {
		return OffsetDate{}, err
	}
	return o.with(d), nil
}

func (o OffsetDate) PlusDays(n int64) OffsetDate   { return o.with(o.date.PlusDays(n)) }
func (o OffsetDate) PlusWeeks(n int64) OffsetDate  { return o.with(o.date.PlusWeeks(n)) }
func (o OffsetDate) PlusMonths(n int64) OffsetDate { return o.with(o.date.PlusMonths(n)) }
func (o OffsetDate) PlusYears(n int64) OffsetDate  { return o.with(o.date.PlusYears(n)) }

func (o OffsetDate) MinusDays(n int64) OffsetDate   { return o.PlusDays(-n) }
func (o OffsetDate) MinusWeeks(n int64) OffsetDate  { return o.PlusWeeks(-n) }
func (o OffsetDate) MinusMonths(n int64) OffsetDate { return o.PlusMonths(-n) }
func (o OffsetDate) MinusYears(n int64) OffsetDate  { return o.PlusYears(-n) }

func (o OffsetDate) WithYear(v int) (OffsetDate, error)    { return o.withErr(o.date.WithYear(v)) }
func (o OffsetDate) WithMonth(m Month) (OffsetDate, error) { return o.withErr(o.date.WithMonth(m)) }
func (o OffsetDate) WithDayOfMonth(v int) (OffsetDate, error) {
	return o.withErr(o.date.WithDayOfMonth(v))
}
func (o OffsetDate) WithDayOfYear(v int) (OffsetDate, error) {
	return o.withErr(o.date.WithDayOfYear(v))
}

// Compare orders by the instant at the start of each date.
func (o OffsetDate) Compare(p OffsetDate) int {
	return compareInstant(o.epochSecond(), 0, p.epochSecond(), 0)
}

func (o OffsetDate) epochSecond() int64 { return o.date.AtStartOfDay().EpochSecond(o.offset) }

func (o OffsetDate) Before(p OffsetDate) bool { return o.Compare(p) < 0 }
func (o OffsetDate) After(p OffsetDate) bool  { return o.Compare(p) > 0 }

// Equal reports whether o and p start at the same instant.
func (o OffsetDate) Equal(p OffsetDate) bool { return o.Compare(p) == 0 }

// String returns o in the ISOOffsetDate format, for example
// 1443-01-01+03:00.
func (o OffsetDate) String() string { return o.date.String() + o.offset.String() }

// Format formats o with f.
func (o OffsetDate) Format(f *Formatter) (string, error) { return f.Format(o) }

func (o OffsetDate) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *OffsetDate) UnmarshalText(b []byte) error {
	v, err := ISOOffsetDate.WithCalendar(o.date.cal).ParseOffsetDate(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (o OffsetDate) MarshalYAML() (any, error) { return o.String(), nil }

func (o *OffsetDate) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, o.UnmarshalText, func(n *yaml.Node) error {
		dt, f, err := decodeFields(n, o.date.cal)
		if err != nil {
			return err
		}
		off, err := ParseOffset(f.Offset)
		if err != nil {
			return err
		}
		*o = OffsetDateOf(dt.date, off)
		return nil
	})
}

// --- Package-level convenience functions ---

// NewOffsetDate returns the offset date with the given fields in the
// default calendar.
func NewOffsetDate(year, month, day int, o Offset) (OffsetDate, error) {
	return defaultCal.OffsetDate(year, month, day, o)
}

// OffsetDateOfInstant returns the date of t at the offset zone has at t.
func OffsetDateOfInstant(t time.Time, zone *time.Location) (OffsetDate, error) {
	return defaultCal.OffsetDateOfInstant(t, zone)
}

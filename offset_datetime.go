package hijrah

import "time"

// OffsetDateTime is a date-time with a fixed offset from UTC. It always
// identifies exactly one instant.
//
// The == operator compares the local fields and the offset; Equal and
// Compare look only at the instant.
type OffsetDateTime struct {
	dt     DateTime
	offset Offset
}

// OffsetDateTimeOf combines a local date-time and an offset.
func OffsetDateTimeOf(dt DateTime, o Offset) OffsetDateTime {
	return OffsetDateTime{dt: dt, offset: o}
}

// OffsetDateTime returns the offset date-time with the given fields.
func (c *Calendar) OffsetDateTime(year, month, day, hour, minute, second, nano int, o Offset) (OffsetDateTime, error) {
	dt, err := c.DateTime(year, month, day, hour, minute, second, nano)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt: dt, offset: o}, nil
}

// OffsetDateTimeOfInstant returns instant t at the offset zone has at t.
func (c *Calendar) OffsetDateTimeOfInstant(t time.Time, zone *time.Location) (OffsetDateTime, error) {
	c = c.orDefault()
	o := c.rules.OffsetAt(zoneOrUTC(zone), t)
	dt, err := c.DateTimeOfEpochSecond(t.Unix(), t.Nanosecond(), o)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt: dt, offset: o}, nil
}

// OffsetNow returns the current offset date-time in zone. A nil zone means
// the location of the calendar's clock.
func (c *Calendar) OffsetNow(zone *time.Location) OffsetDateTime {
	c = c.orDefault()
	now := c.clock.Now()
	if zone == nil {
		zone = now.Location()
	}
	odt, err := c.OffsetDateTimeOfInstant(now, zone)
	if err != nil {
		panic(err)
	}
	return odt
}

func (o OffsetDateTime) DateTime() DateTime    { return o.dt }
func (o OffsetDateTime) Date() Date            { return o.dt.date }
func (o OffsetDateTime) TimeOfDay() TimeOfDay  { return o.dt.time }
func (o OffsetDateTime) Offset() Offset        { return o.offset }
func (o OffsetDateTime) Year() int             { return o.dt.Year() }
func (o OffsetDateTime) Month() Month          { return o.dt.Month() }
func (o OffsetDateTime) Day() int              { return o.dt.Day() }
func (o OffsetDateTime) Weekday() time.Weekday { return o.dt.Weekday() }
func (o OffsetDateTime) Hour() int             { return o.dt.Hour() }
func (o OffsetDateTime) Minute() int           { return o.dt.Minute() }
func (o OffsetDateTime) Second() int           { return o.dt.Second() }
func (o OffsetDateTime) Nanosecond() int       { return o.dt.Nanosecond() }

// EpochSecond returns the seconds since 1970-01-01T00:00:00Z.
func (o OffsetDateTime) EpochSecond() int64 { return o.dt.EpochSecond(o.offset) }

// Time returns the instant as a time.Time in a fixed zone for the offset.
func (o OffsetDateTime) Time() time.Time { return o.dt.Instant(o.offset) }

// Lookup implements Temporal.
func (o OffsetDateTime) Lookup(f Field) (int64, bool) {
	switch f {
	case FieldOffset:
		return int64(o.offset), true
	case FieldEpochSecond:
		return o.EpochSecond(), true
	}
	return o.dt.Lookup(f)
}

func (OffsetDateTime) temporal() {}

// WithOffsetSameInstant returns the same instant seen at offset off.
func (o OffsetDateTime) WithOffsetSameInstant(off Offset) OffsetDateTime {
	if off == o.offset {
		return o
	}
	return OffsetDateTime{dt: o.dt.PlusSeconds(int64(off - o.offset)), offset: off}
}

// WithOffsetSameLocal keeps the local date-time and replaces the offset.
func (o OffsetDateTime) WithOffsetSameLocal(off Offset) OffsetDateTime {
	return OffsetDateTime{dt: o.dt, offset: off}
}

// AtZoneSameInstant returns the same instant in zone.
func (o OffsetDateTime) AtZoneSameInstant(zone *time.Location) ZonedDateTime {
	z, err := o.dt.Calendar().ZonedDateTimeOfInstant(o.Time(), zone)
	if err != nil {
		panic(err)
	}
	return z
}

// AtZoneSimilarLocal resolves the local date-time in zone, preferring the
// current offset at an overlap.
func (o OffsetDateTime) AtZoneSimilarLocal(zone *time.Location) ZonedDateTime {
	return ZonedDateTimeOfLocal(o.dt, zone, o.offset)
}

func (o OffsetDateTime) with(dt DateTime) OffsetDateTime {
	return OffsetDateTime{dt: dt, offset: o.offset}
}

func (o OffsetDateTime) withErr(dt DateTime, err error) (OffsetDateTime, error) {
	if err != nil {
		return OffsetDateTime{}, err
	}
	return o.with(dt), nil
}

func (o OffsetDateTime) PlusYears(n int64) OffsetDateTime   { return o.with(o.dt.PlusYears(n)) }
func (o OffsetDateTime) PlusMonths(n int64) OffsetDateTime  { return o.with(o.dt.PlusMonths(n)) }
func (o OffsetDateTime) PlusWeeks(n int64) OffsetDateTime   { return o.with(o.dt.PlusWeeks(n)) }
func (o OffsetDateTime) PlusDays(n int64) OffsetDateTime    { return o.with(o.dt.PlusDays(n)) }
func (o OffsetDateTime) PlusHours(n int64) OffsetDateTime   { return o.with(o.dt.PlusHours(n)) }
func (o OffsetDateTime) PlusMinutes(n int64) OffsetDateTime { return o.with(o.dt.PlusMinutes(n)) }
func (o OffsetDateTime) PlusSeconds(n int64) OffsetDateTime { return o.with(o.dt.PlusSeconds(n)) }
func (o OffsetDateTime) PlusNanos(n int64) OffsetDateTime   { return o.with(o.dt.PlusNanos(n)) }

func (o OffsetDateTime) MinusYears(n int64) OffsetDateTime   { return o.PlusYears(-n) }
func (o OffsetDateTime) MinusMonths(n int64) OffsetDateTime  { return o.PlusMonths(-n) }
func (o OffsetDateTime) MinusWeeks(n int64) OffsetDateTime   { return o.PlusWeeks(-n) }
func (o OffsetDateTime) MinusDays(n int64) OffsetDateTime    { return o.PlusDays(-n) }
func (o OffsetDateTime) MinusHours(n int64) OffsetDateTime   { return o.PlusHours(-n) }
func (o OffsetDateTime) MinusMinutes(n int64) OffsetDateTime { return o.PlusMinutes(-n) }
func (o OffsetDateTime) MinusSeconds(n int64) OffsetDateTime { return o.PlusSeconds(-n) }
func (o OffsetDateTime) MinusNanos(n int64) OffsetDateTime   { return o.PlusNanos(-n) }

func (o OffsetDateTime) WithYear(v int) (OffsetDateTime, error) {
	return o.withErr(o.dt.WithYear(v))
}

func (o OffsetDateTime) WithMonth(m Month) (OffsetDateTime, error) {
	return o.withErr(o.dt.WithMonth(m))
}

func (o OffsetDateTime) WithDayOfMonth(v int) (OffsetDateTime, error) {
	return o.withErr(o.dt.WithDayOfMonth(v))
}

func (o OffsetDateTime) WithDayOfYear(v int) (OffsetDateTime, error) {
	return o.withErr(o.dt.WithDayOfYear(v))
}

func (o OffsetDateTime) WithHour(v int) (OffsetDateTime, error) {
	return o.withErr(o.dt.WithHour(v))
}

func (o OffsetDateTime) WithMinute(v int) (OffsetDateTime, error) {
	return o.withErr(o.dt.WithMinute(v))
}

func (o OffsetDateTime) WithSecond(v int) (OffsetDateTime, error) {
	return o.withErr(o.dt.WithSecond(v))
}

func (o OffsetDateTime) WithNanosecond(v int) (OffsetDateTime, error) {
	return o.withErr(o.dt.WithNanosecond(v))
}

// Compare orders by instant only: two values at the same instant with
// different offsets compare equal.
func (o OffsetDateTime) Compare(p OffsetDateTime) int {
	return compareInstant(o.EpochSecond(), o.Nanosecond(), p.EpochSecond(), p.Nanosecond())
}

func (o OffsetDateTime) Before(p OffsetDateTime) bool { return o.Compare(p) < 0 }
func (o OffsetDateTime) After(p OffsetDateTime) bool  { return o.Compare(p) > 0 }

// Equal reports whether o and p are the same instant.
func (o OffsetDateTime) Equal(p OffsetDateTime) bool { return o.Compare(p) == 0 }

func compareInstant(s1 int64, n1 int, s2 int64, n2 int) int {
	switch {
	case s1 < s2:
		return -1
	case s1 > s2:
		return 1
	case n1 < n2:
		return -1
	case n1 > n2:
		return 1
	}
	return 0
}

// String returns o in the ISOOffsetDateTime format, for example
// 1443-01-01T00:00:00+03:00.
func (o OffsetDateTime) String() string {
	return o.dt.String() + o.offset.String()
}

// --- Package-level convenience functions ---

// NewOffsetDateTime returns the offset date-time with the given fields in
// the default calendar.
func NewOffsetDateTime(year, month, day, hour, minute, second, nano int, o Offset) (OffsetDateTime, error) {
	return defaultCal.OffsetDateTime(year, month, day, hour, minute, second, nano, o)
}

// OffsetDateTimeOfInstant returns t at the offset zone has at t.
func OffsetDateTimeOfInstant(t time.Time, zone *time.Location) (OffsetDateTime, error) {
	return defaultCal.OffsetDateTimeOfInstant(t, zone)
}

// OffsetDateTimeFromTime converts t, keeping its offset.
func OffsetDateTimeFromTime(t time.Time) (OffsetDateTime, error) {
	return defaultCal.OffsetDateTimeOfInstant(t, t.Location())
}

// OffsetNow returns the current offset date-time in zone.
func OffsetNow(zone *time.Location) OffsetDateTime { return defaultCal.OffsetNow(zone) }

package hijrah

import "time"

// ZonedDateTime is a date-time in a time zone, with the offset the zone's
// rules give for it.
//
// A local date-time that falls in a gap is moved forward by the length of
// the gap. One that falls in an overlap uses the earlier offset unless a
// later one is asked for.
type ZonedDateTime struct {
	dt     DateTime
	zone   *time.Location
	offset Offset
}

// ZonedDateTimeOf resolves dt in zone.
func ZonedDateTimeOf(dt DateTime, zone *time.Location) ZonedDateTime {
	return resolveLocal(dt, zoneOrUTC(zone), 0, false)
}

// ZonedDateTimeOfLocal resolves dt in zone. At an overlap, preferred is used
// when it is one of the two valid offsets; otherwise the earlier one is.
func ZonedDateTimeOfLocal(dt DateTime, zone *time.Location, preferred Offset) ZonedDateTime {
	return resolveLocal(dt, zoneOrUTC(zone), preferred, true)
}

func resolveLocal(dt DateTime, zone *time.Location, preferred Offset, hasPreferred bool) ZonedDateTime {
	tr := dt.Calendar().rules.Transition(zone, dt.localSeconds())
	o := tr.Before
	switch tr.Kind {
	case Gap:
		dt = dt.PlusSeconds(int64(tr.After - tr.Before))
		o = tr.After
	case Overlap:
		if hasPreferred && preferred == tr.After {
			o = tr.After
		}
	}
	return ZonedDateTime{dt: dt, zone: zone, offset: o}
}

// ZonedDateTime returns the zoned date-time with the given fields.
func (c *Calendar) ZonedDateTime(year, month, day, hour, minute, second, nano int, zone *time.Location) (ZonedDateTime, error) {
	dt, err := c.DateTime(year, month, day, hour, minute, second, nano)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTimeOf(dt, zone), nil
}

// ZonedDateTimeOfInstant returns instant t in zone.
func (c *Calendar) ZonedDateTimeOfInstant(t time.Time, zone *time.Location) (ZonedDateTime, error) {
	c = c.orDefault()
	zone = zoneOrUTC(zone)
	o := c.rules.OffsetAt(zone, t)
	dt, err := c.DateTimeOfEpochSecond(t.Unix(), t.Nanosecond(), o)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{dt: dt, zone: zone, offset: o}, nil
}

// ZonedDateTimeFromTime converts a Gregorian time.Time, keeping its
// instant and location.
func (c *Calendar) ZonedDateTimeFromTime(t time.Time) (ZonedDateTime, error) {
	return c.ZonedDateTimeOfInstant(t, t.Location())
}

// ZonedNow returns the current zoned date-time in zone. A nil zone means the
// location of the calendar's clock.
func (c *Calendar) ZonedNow(zone *time.Location) ZonedDateTime {
	c = c.orDefault()
	now := c.clock.Now()
	if zone == nil {
		zone = now.Location()
	}
	z, err := c.ZonedDateTimeOfInstant(now, zone)
	if err != nil {
		panic(err)
	}
	return z
}

func (z ZonedDateTime) DateTime() DateTime    { return z.dt }
func (z ZonedDateTime) Date() Date            { return z.dt.date }
func (z ZonedDateTime) TimeOfDay() TimeOfDay  { return z.dt.time }
func (z ZonedDateTime) Offset() Offset        { return z.offset }
func (z ZonedDateTime) Year() int             { return z.dt.Year() }
func (z ZonedDateTime) Month() Month          { return z.dt.Month() }
func (z ZonedDateTime) Day() int              { return z.dt.Day() }
func (z ZonedDateTime) Weekday() time.Weekday { return z.dt.Weekday() }
func (z ZonedDateTime) Hour() int             { return z.dt.Hour() }
func (z ZonedDateTime) Minute() int           { return z.dt.Minute() }
func (z ZonedDateTime) Second() int           { return z.dt.Second() }
func (z ZonedDateTime) Nanosecond() int       { return z.dt.Nanosecond() }

// Zone returns the time zone, time.UTC for the zero value.
func (z ZonedDateTime) Zone() *time.Location { return zoneOrUTC(z.zone) }

// OffsetDateTime drops the zone and keeps the resolved offset.
func (z ZonedDateTime) OffsetDateTime() OffsetDateTime { return OffsetDateTimeOf(z.dt, z.offset) }

// EpochSecond returns the seconds since 1970-01-01T00:00:00Z.
func (z ZonedDateTime) EpochSecond() int64 { return z.dt.EpochSecond(z.offset) }

// Time returns the instant as a time.Time in the zone.
func (z ZonedDateTime) Time() time.Time {
	return time.Unix(z.EpochSecond(), int64(z.Nanosecond())).In(z.Zone())
}

// Lookup implements Temporal.
func (z ZonedDateTime) Lookup(f Field) (int64, bool) {
	switch f {
	case FieldOffset:
		return int64(z.offset), true
	case FieldEpochSecond:
		return z.EpochSecond(), true
	}
	return z.dt.Lookup(f)
}

func (ZonedDateTime) temporal() {}

func (z ZonedDateTime) transition() Transition {
	return z.dt.Calendar().rules.Transition(z.Zone(), z.dt.localSeconds())
}

// WithEarlierOffsetAtOverlap returns z with the earlier of the two offsets
// when z is in an overlap, and z unchanged otherwise.
func (z ZonedDateTime) WithEarlierOffsetAtOverlap() ZonedDateTime {
	if tr := z.transition(); tr.Kind == Overlap && tr.Before != z.offset {
		z.offset = tr.Before
	}
	return z
}

// WithLaterOffsetAtOverlap returns z with the later of the two offsets when
// z is in an overlap, and z unchanged otherwise.
func (z ZonedDateTime) WithLaterOffsetAtOverlap() ZonedDateTime {
	if tr := z.transition(); tr.Kind == Overlap && tr.After != z.offset {
		z.offset = tr.After
	}
	return z
}

// WithZoneSameInstant returns the same instant in another zone.
func (z ZonedDateTime) WithZoneSameInstant(zone *time.Location) ZonedDateTime {
	zone = zoneOrUTC(zone)
	if zone == z.zone {
		return z
	}
	r, err := z.dt.Calendar().ZonedDateTimeOfInstant(z.Time(), zone)
	if err != nil {
		panic(err)
	}
	return r
}

// WithZoneSameLocal keeps the local date-time and resolves it in another
// zone, keeping the current offset if it is valid there.
func (z ZonedDateTime) WithZoneSameLocal(zone *time.Location) ZonedDateTime {
	zone = zoneOrUTC(zone)
	if zone == z.zone {
		return z
	}
	return ZonedDateTimeOfLocal(z.dt, zone, z.offset)
}

// WithFixedOffsetZone returns z with its zone replaced by the fixed zone of
// its current offset.
func (z ZonedDateTime) WithFixedOffsetZone() ZonedDateTime {
	return ZonedDateTime{dt: z.dt, zone: z.offset.Location(), offset: z.offset}
}

// resolveDate re-resolves a local date-time produced by date arithmetic,
// keeping the current offset when it remains valid.
func (z ZonedDateTime) resolveDate(dt DateTime) ZonedDateTime {
	return resolveLocal(dt, z.Zone(), z.offset, true)
}

func (z ZonedDateTime) resolveDateErr(dt DateTime, err error) (ZonedDateTime, error) {
	if err != nil {
		return ZonedDateTime{}, err
	}
	return z.resolveDate(dt), nil
}

// resolveInstant places a local date-time produced by time arithmetic at the
// current offset and converts the resulting instant back to the zone.
func (z ZonedDateTime) resolveInstant(dt DateTime) ZonedDateTime {
	r, err := z.dt.Calendar().ZonedDateTimeOfInstant(dt.Instant(z.offset), z.Zone())
	if err != nil {
		panic(err)
	}
	return r
}

// PlusYears adds years to the local date-time and resolves the result in the
// zone. The date-based methods keep the wall clock; the time-based ones
// (PlusHours and below) keep the elapsed time on the instant line.
func (z ZonedDateTime) PlusYears(n int64) ZonedDateTime  { return z.resolveDate(z.dt.PlusYears(n)) }
func (z ZonedDateTime) PlusMonths(n int64) ZonedDateTime { return z.resolveDate(z.dt.PlusMonths(n)) }
func (z ZonedDateTime) PlusWeeks(n int64) ZonedDateTime  { return z.resolveDate(z.dt.PlusWeeks(n)) }
func (z ZonedDateTime) PlusDays(n int64) ZonedDateTime   { return z.resolveDate(z.dt.PlusDays(n)) }

func (z ZonedDateTime) PlusHours(n int64) ZonedDateTime { return z.resolveInstant(z.dt.PlusHours(n)) }
func (z ZonedDateTime) PlusMinutes(n int64) ZonedDateTime {
	return z.resolveInstant(z.dt.PlusMinutes(n))
}
func (z ZonedDateTime) PlusSeconds(n int64) ZonedDateTime {
	return z.resolveInstant(z.dt.PlusSeconds(n))
}
func (z ZonedDateTime) PlusNanos(n int64) ZonedDateTime { return z.resolveInstant(z.dt.PlusNanos(n)) }

func (z ZonedDateTime) MinusYears(n int64) ZonedDateTime   { return z.PlusYears(-n) }
func (z ZonedDateTime) MinusMonths(n int64) ZonedDateTime  { return z.PlusMonths(-n) }
func (z ZonedDateTime) MinusWeeks(n int64) ZonedDateTime   { return z.PlusWeeks(-n) }
func (z ZonedDateTime) MinusDays(n int64) ZonedDateTime    { return z.PlusDays(-n) }
func (z ZonedDateTime) MinusHours(n int64) ZonedDateTime   { return z.PlusHours(-n) }
func (z ZonedDateTime) MinusMinutes(n int64) ZonedDateTime { return z.PlusMinutes(-n) }
func (z ZonedDateTime) MinusSeconds(n int64) ZonedDateTime { return z.PlusSeconds(-n) }
func (z ZonedDateTime) MinusNanos(n int64) ZonedDateTime   { return z.PlusNanos(-n) }

func (z ZonedDateTime) WithYear(v int) (ZonedDateTime, error) {
	return z.resolveDateErr(z.dt.WithYear(v))
}

func (z ZonedDateTime) WithMonth(m Month) (ZonedDateTime, error) {
	return z.resolveDateErr(z.dt.WithMonth(m))
}

func (z ZonedDateTime) WithDayOfMonth(v int) (ZonedDateTime, error) {
	return z.resolveDateErr(z.dt.WithDayOfMonth(v))
}

func (z ZonedDateTime) WithDayOfYear(v int) (ZonedDateTime, error) {
	return z.resolveDateErr(z.dt.WithDayOfYear(v))
}

func (z ZonedDateTime) WithHour(v int) (ZonedDateTime, error) {
	return z.resolveDateErr(z.dt.WithHour(v))
}

func (z ZonedDateTime) WithMinute(v int) (ZonedDateTime, error) {
	return z.resolveDateErr(z.dt.WithMinute(v))
}

func (z ZonedDateTime) WithSecond(v int) (ZonedDateTime, error) {
	return z.resolveDateErr(z.dt.WithSecond(v))
}

func (z ZonedDateTime) WithNanosecond(v int) (ZonedDateTime, error) {
	return z.resolveDateErr(z.dt.WithNanosecond(v))
}

// Compare orders by instant.
func (z ZonedDateTime) Compare(o ZonedDateTime) int {
	return compareInstant(z.EpochSecond(), z.Nanosecond(), o.EpochSecond(), o.Nanosecond())
}

func (z ZonedDateTime) Before(o ZonedDateTime) bool { return z.Compare(o) < 0 }
func (z ZonedDateTime) After(o ZonedDateTime) bool  { return z.Compare(o) > 0 }

// Equal reports whether z and o are the same instant.
func (z ZonedDateTime) Equal(o ZonedDateTime) bool { return z.Compare(o) == 0 }

// String returns z in the ISOZonedDateTime format, for example
// 1443-01-01T00:00:00+03:00[Asia/Riyadh]. The bracketed zone is omitted
// when the zone is a fixed offset.
func (z ZonedDateTime) String() string {
	s := z.dt.String() + z.offset.String()
	if id := zoneID(z.Zone()); !isOffsetID(id) {
		s += "[" + id + "]"
	}
	return s
}

// zoneID returns the identifier of zone.
func zoneID(zone *time.Location) string { return zone.String() }

// --- Package-level convenience functions ---

// NewZonedDateTime returns the zoned date-time with the given fields in the
// default calendar.
func NewZonedDateTime(year, month, day, hour, minute, second, nano int, zone *time.Location) (ZonedDateTime, error) {
	return defaultCal.ZonedDateTime(year, month, day, hour, minute, second, nano, zone)
}

// ZonedDateTimeOfInstant returns instant t in zone.
func ZonedDateTimeOfInstant(t time.Time, zone *time.Location) (ZonedDateTime, error) {
	return defaultCal.ZonedDateTimeOfInstant(t, zone)
}

// ZonedDateTimeFromTime converts a time.Time, keeping instant and location.
func ZonedDateTimeFromTime(t time.Time) (ZonedDateTime, error) {
	return defaultCal.ZonedDateTimeFromTime(t)
}

// ZonedNow returns the current zoned date-time in zone.
func ZonedNow(zone *time.Location) ZonedDateTime { return defaultCal.ZonedNow(zone) }

package hijrah

import "time"

// DateTime is a Hijrah date combined with a wall-clock time, without an
// offset or zone. It does not identify an instant on its own.
type DateTime struct {
	date Date
	time TimeOfDay
}

// DateTimeOf combines a date and a time of day.
func DateTimeOf(d Date, t TimeOfDay) DateTime { return DateTime{date: d, time: t} }

// DateTime returns the date-time with the given fields. The second and
// nanosecond may be omitted and default to zero.
func (c *Calendar) DateTime(year, month, day, hour, minute int, secNano ...int) (DateTime, error) {
	if len(secNano) > 2 {
		return DateTime{}, fmtArgError("too many time components: %d", 5+len(secNano))
	}
	var sn [2]int
	copy(sn[:], secNano)
	d, err := c.Date(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	t, err := NewTimeOfDay(hour, minute, sn[0], sn[1])
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: t}, nil
}

// DateTimeOfEpochSecond returns the local date-time of the instant sec
// seconds and nano nanoseconds after 1970-01-01T00:00:00Z, seen at offset o.
func (c *Calendar) DateTimeOfEpochSecond(sec int64, nano int, o Offset) (DateTime, error) {
	if err := checkRange(FieldNanosecond, int64(nano), 0, nanosPerSecond-1); err != nil {
		return DateTime{}, err
	}
	local := sec + int64(o)
	d, err := c.DateOfEpochDay(floorDiv(local, secondsPerDay))
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{
		date: d,
		time: TimeOfDay{nanos: floorMod(local, secondsPerDay)*nanosPerSecond + int64(nano)},
	}, nil
}

// DateTimeOfInstant returns the local date-time of instant t in zone.
func (c *Calendar) DateTimeOfInstant(t time.Time, zone *time.Location) (DateTime, error) {
	c = c.orDefault()
	zone = zoneOrUTC(zone)
	return c.DateTimeOfEpochSecond(t.Unix(), t.Nanosecond(), c.rules.OffsetAt(zone, t))
}

// DateTimeFromTime converts the Gregorian wall clock of t to a Hijrah
// date-time.
func (c *Calendar) DateTimeFromTime(t time.Time) (DateTime, error) {
	return c.DateTimeOfInstant(t, t.Location())
}

// Now returns the current date-time from the calendar's clock, in the
// clock's location.
func (c *Calendar) Now() DateTime {
	c = c.orDefault()
	now := c.clock.Now()
	return c.NowIn(now.Location())
}

// NowIn returns the current date-time in zone.
func (c *Calendar) NowIn(zone *time.Location) DateTime {
	c = c.orDefault()
	dt, err := c.DateTimeOfInstant(c.clock.Now(), zone)
	if err != nil {
		panic(err)
	}
	return dt
}

func zoneOrUTC(zone *time.Location) *time.Location {
	if zone == nil {
		return time.UTC
	}
	return zone
}

func (dt DateTime) Date() Date            { return dt.date }
func (dt DateTime) TimeOfDay() TimeOfDay  { return dt.time }
func (dt DateTime) Year() int             { return dt.date.year }
func (dt DateTime) Month() Month          { return dt.date.month }
func (dt DateTime) Day() int              { return dt.date.day }
func (dt DateTime) Weekday() time.Weekday { return dt.date.Weekday() }
func (dt DateTime) YearDay() int          { return dt.date.YearDay() }
func (dt DateTime) Hour() int             { return dt.time.Hour() }
func (dt DateTime) Minute() int           { return dt.time.Minute() }
func (dt DateTime) Second() int           { return dt.time.Second() }
func (dt DateTime) Nanosecond() int       { return dt.time.Nanosecond() }
func (dt DateTime) Calendar() *Calendar   { return dt.date.Calendar() }
func (dt DateTime) localSeconds() int64 {
	return dt.date.epochDay*secondsPerDay + dt.time.SecondOfDay()
}
func (dt DateTime) with(d Date) DateTime { return DateTime{date: d, time: dt.time} }
func (dt DateTime) withTime(t TimeOfDay) DateTime {
	return DateTime{date: dt.date, time: t}
}

// Lookup implements Temporal.
func (dt DateTime) Lookup(f Field) (int64, bool) {
	switch f {
	case FieldHour:
		return int64(dt.time.Hour()), true
	case FieldMinute:
		return int64(dt.time.Minute()), true
	case FieldSecond:
		return int64(dt.time.Second()), true
	case FieldNanosecond:
		return int64(dt.time.Nanosecond()), true
	}
	return dt.date.Lookup(f)
}

func (DateTime) temporal() {}

// PlusYears returns dt with n years added, clamping the day of month. Like
// the Date arithmetic, the Plus and Minus methods panic when the result is
// outside the range of the chronology.
func (dt DateTime) PlusYears(n int64) DateTime  { return dt.with(dt.date.PlusYears(n)) }
func (dt DateTime) PlusMonths(n int64) DateTime { return dt.with(dt.date.PlusMonths(n)) }
func (dt DateTime) PlusWeeks(n int64) DateTime  { return dt.with(dt.date.PlusWeeks(n)) }
func (dt DateTime) PlusDays(n int64) DateTime   { return dt.with(dt.date.PlusDays(n)) }

func (dt DateTime) PlusHours(n int64) DateTime   { return dt.plusTime(n, 0, 0, 0) }
func (dt DateTime) PlusMinutes(n int64) DateTime { return dt.plusTime(0, n, 0, 0) }
func (dt DateTime) PlusSeconds(n int64) DateTime { return dt.plusTime(0, 0, n, 0) }
func (dt DateTime) PlusNanos(n int64) DateTime   { return dt.plusTime(0, 0, 0, n) }

// Plus returns dt advanced by d on the wall clock.
func (dt DateTime) Plus(d time.Duration) DateTime { return dt.plusTime(0, 0, 0, int64(d)) }

func (dt DateTime) MinusYears(n int64) DateTime   { return dt.PlusYears(-n) }
func (dt DateTime) MinusMonths(n int64) DateTime  { return dt.PlusMonths(-n) }
func (dt DateTime) MinusWeeks(n int64) DateTime   { return dt.PlusWeeks(-n) }
func (dt DateTime) MinusDays(n int64) DateTime    { return dt.PlusDays(-n) }
func (dt DateTime) MinusHours(n int64) DateTime   { return dt.PlusHours(-n) }
func (dt DateTime) MinusMinutes(n int64) DateTime { return dt.PlusMinutes(-n) }
func (dt DateTime) MinusSeconds(n int64) DateTime { return dt.PlusSeconds(-n) }
func (dt DateTime) MinusNanos(n int64) DateTime   { return dt.PlusNanos(-n) }

// plusTime splits each amount into whole days and a remainder so that large
// amounts do not overflow the nanosecond arithmetic.
func (dt DateTime) plusTime(hours, minutes, seconds, nanos int64) DateTime {
	if hours|minutes|seconds|nanos == 0 {
		return dt
	}
	days := hours/hoursPerDay + minutes/minutesPerDay + seconds/secondsPerDay + nanos/nanosPerDay
	nod := (hours%hoursPerDay)*nanosPerHour +
		(minutes%minutesPerDay)*nanosPerMinute +
		(seconds%secondsPerDay)*nanosPerSecond +
		nanos%nanosPerDay
	t, carry := dt.time.add(nod)
	return DateTime{date: dt.date.PlusDays(days + carry), time: t}
}

func (dt DateTime) WithDate(d Date) DateTime      { return dt.with(d) }
func (dt DateTime) WithTime(t TimeOfDay) DateTime { return dt.withTime(t) }

func (dt DateTime) WithYear(year int) (DateTime, error) {
	d, err := dt.date.WithYear(year)
	return dt.with(d), err
}

func (dt DateTime) WithMonth(m Month) (DateTime, error) {
	d, err := dt.date.WithMonth(m)
	return dt.with(d), err
}

func (dt DateTime) WithDayOfMonth(day int) (DateTime, error) {
	d, err := dt.date.WithDayOfMonth(day)
	return dt.with(d), err
}

func (dt DateTime) WithDayOfYear(day int) (DateTime, error) {
	d, err := dt.date.WithDayOfYear(day)
	return dt.with(d), err
}

func (dt DateTime) WithHour(hour int) (DateTime, error) {
	t, err := NewTimeOfDay(hour, dt.Minute(), dt.Second(), dt.Nanosecond())
	return dt.withTime(t), err
}

func (dt DateTime) WithMinute(minute int) (DateTime, error) {
	t, err := NewTimeOfDay(dt.Hour(), minute, dt.Second(), dt.Nanosecond())
	return dt.withTime(t), err
}

func (dt DateTime) WithSecond(second int) (DateTime, error) {
	t, err := NewTimeOfDay(dt.Hour(), dt.Minute(), second, dt.Nanosecond())
	return dt.withTime(t), err
}

func (dt DateTime) WithNanosecond(nano int) (DateTime, error) {
	t, err := NewTimeOfDay(dt.Hour(), dt.Minute(), dt.Second(), nano)
	return dt.withTime(t), err
}

// AtOffset combines dt with a fixed offset.
func (dt DateTime) AtOffset(o Offset) OffsetDateTime { return OffsetDateTimeOf(dt, o) }

// AtZone resolves dt in zone, using the rules of ZonedDateTimeOf.
func (dt DateTime) AtZone(zone *time.Location) ZonedDateTime { return ZonedDateTimeOf(dt, zone) }

// EpochSecond returns the seconds since 1970-01-01T00:00:00Z of dt seen at
// offset o.
func (dt DateTime) EpochSecond(o Offset) int64 { return dt.localSeconds() - int64(o) }

// Instant returns the instant of dt at offset o, in a fixed zone for o.
func (dt DateTime) Instant(o Offset) time.Time {
	return time.Unix(dt.EpochSecond(o), int64(dt.time.Nanosecond())).In(o.Location())
}

// Compare orders date-times on the local time line.
func (dt DateTime) Compare(o DateTime) int {
	if c := dt.date.Compare(o.date); c != 0 {
		return c
	}
	return dt.time.Compare(o.time)
}

func (dt DateTime) Before(o DateTime) bool { return dt.Compare(o) < 0 }
func (dt DateTime) After(o DateTime) bool  { return dt.Compare(o) > 0 }
func (dt DateTime) Equal(o DateTime) bool  { return dt.Compare(o) == 0 }

// String returns dt in the ISODateTime format, such as 1443-01-01T10:15:30.
func (dt DateTime) String() string {
	b := appendISODate(make([]byte, 0, 29), dt.date.year, int(dt.date.month), dt.date.day)
	return string(append(append(b, 'T'), dt.time.String()...))
}

// --- Package-level convenience functions ---

// NewDateTime returns the date-time with the given fields in the default
// calendar. The second and nanosecond may be omitted.
func NewDateTime(year, month, day, hour, minute int, secNano ...int) (DateTime, error) {
	return defaultCal.DateTime(year, month, day, hour, minute, secNano...)
}

// DateTimeOfEpochSecond returns the local date-time of an epoch second at o.
func DateTimeOfEpochSecond(sec int64, nano int, o Offset) (DateTime, error) {
	return defaultCal.DateTimeOfEpochSecond(sec, nano, o)
}

// DateTimeOfInstant returns the local date-time of t in zone.
func DateTimeOfInstant(t time.Time, zone *time.Location) (DateTime, error) {
	return defaultCal.DateTimeOfInstant(t, zone)
}

// DateTimeFromTime converts the wall clock of t.
func DateTimeFromTime(t time.Time) (DateTime, error) { return defaultCal.DateTimeFromTime(t) }

// Now returns the current local date-time.
func Now() DateTime { return defaultCal.Now() }

// NowIn returns the current date-time in zone.
func NowIn(zone *time.Location) DateTime { return defaultCal.NowIn(zone) }

package hijrah

import (
	"time"
)

// Date is a day in the Hijrah calendar. Dates are immutable; every method
// that changes a field returns a new Date.
//
// Dates created by the same Calendar can be compared with ==. The zero Date
// is not a valid date.
type Date struct {
	cal      *Calendar
	epochDay int64
	year     int
	month    Month
	day      int
}

func (c *Calendar) dateOfFields(f Fields) (Date, error) {
	c = c.orDefault()
	ed, err := c.chrono.EpochDay(f)
	if err != nil {
		return Date{}, err
	}
	return Date{cal: c, epochDay: ed, year: f.Year, month: Month(f.Month), day: f.Day}, nil
}

// Date returns the date with the given proleptic year, month and day.
func (c *Calendar) Date(year, month, day int) (Date, error) {
	return c.dateOfFields(Fields{Year: year, Month: month, Day: day})
}

// DateOfEpochDay returns the date that is day days after 1970-01-01 ISO.
func (c *Calendar) DateOfEpochDay(day int64) (Date, error) {
	c = c.orDefault()
	f, err := c.chrono.Fields(day)
	if err != nil {
		return Date{}, err
	}
	return Date{cal: c, epochDay: day, year: f.Year, month: Month(f.Month), day: f.Day}, nil
}

// DateOfYearDay returns the dayOfYear'th (1-based) day of year.
func (c *Calendar) DateOfYearDay(year, dayOfYear int) (Date, error) {
	c = c.orDefault()
	n, err := c.chrono.LengthOfYear(year)
	if err != nil {
		return Date{}, err
	}
	if err := checkRange(FieldDayOfYear, int64(dayOfYear), 1, int64(n)); err != nil {
		return Date{}, err
	}
	first, err := c.Date(year, 1, 1)
	if err != nil {
		return Date{}, err
	}
	return c.DateOfEpochDay(first.epochDay + int64(dayOfYear) - 1)
}

// DateOfInstant returns the local date at instant t in zone.
func (c *Calendar) DateOfInstant(t time.Time, zone *time.Location) (Date, error) {
	c = c.orDefault()
	local := t.Unix() + int64(c.rules.OffsetAt(zoneOrUTC(zone), t))
	return c.DateOfEpochDay(floorDiv(local, secondsPerDay))
}

// DateFromTime converts the Gregorian calendar date of t, in t's location,
// to a Hijrah date.
func (c *Calendar) DateFromTime(t time.Time) (Date, error) {
	return c.DateOfInstant(t, t.Location())
}

// Today returns the current date in the zone of the calendar's clock.
func (c *Calendar) Today() Date {
	c = c.orDefault()
	now := c.clock.Now()
	d, err := c.DateOfInstant(now, now.Location())
	if err != nil {
		panic(err)
	}
	return d
}

// TodayIn returns the current date in zone.
func (c *Calendar) TodayIn(zone *time.Location) Date {
	c = c.orDefault()
	d, err := c.DateOfInstant(c.clock.Now(), zoneOrUTC(zone))
	if err != nil {
		panic(err)
	}
	return d
}

// Calendar returns the calendar the date belongs to.
func (d Date) Calendar() *Calendar { return d.cal.orDefault() }

func (d Date) chrono() Chronology { return d.cal.orDefault().chrono }

// Era returns AH.
func (d Date) Era() Era { return AH }

// Year returns the proleptic year.
func (d Date) Year() int { return d.year }

// Month returns the month of the year.
func (d Date) Month() Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// EpochDay returns the number of days since 1970-01-01 ISO.
func (d Date) EpochDay() int64 { return d.epochDay }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday.
	return time.Weekday(floorMod(d.epochDay+int64(time.Thursday), 7))
}

// YearDay returns the 1-based day of the year.
func (d Date) YearDay() int {
	first, err := d.cal.Date(d.year, 1, 1)
	if err != nil {
		panic(err)
	}
	return int(d.epochDay-first.epochDay) + 1
}

// LengthOfMonth returns the number of days in the date's month.
func (d Date) LengthOfMonth() int {
	n, err := d.chrono().LengthOfMonth(d.year, int(d.month))
	if err != nil {
		panic(err)
	}
	return n
}

// LengthOfYear returns the number of days in the date's year.
func (d Date) LengthOfYear() int {
	n, err := d.chrono().LengthOfYear(d.year)
	if err != nil {
		panic(err)
	}
	return n
}

// IsLeapYear reports whether the date's year is longer than 354 days.
func (d Date) IsLeapYear() bool { return d.LengthOfYear() > 354 }

// Lookup implements Temporal.
func (d Date) Lookup(f Field) (int64, bool) {
	switch f {
	case FieldEra:
		return int64(AH), true
	case FieldYear, FieldYearOfEra:
		return int64(d.year), true
	case FieldMonth:
		return int64(d.month), true
	case FieldDayOfMonth:
		return int64(d.day), true
	case FieldDayOfYear:
		return int64(d.YearDay()), true
	case FieldDayOfWeek:
		return int64(d.Weekday()), true
	case FieldEpochDay:
		return d.epochDay, true
	}
	return 0, false
}

func (Date) temporal() {}

// mustDate panics with err when a date computation leaves the supported
// range of the chronology.
func mustDate(d Date, err error) Date {
	if err != nil {
		panic(err)
	}
	return d
}

// PlusDays returns the date n days later. It panics if the result is outside
// the range of the chronology, as do the other Plus and Minus methods.
func (d Date) PlusDays(n int64) Date {
	if n == 0 {
		return d
	}
	return mustDate(d.cal.DateOfEpochDay(d.epochDay + n))
}

// PlusWeeks returns the date n weeks later.
func (d Date) PlusWeeks(n int64) Date { return d.PlusDays(n * 7) }

// PlusMonths returns the date n months later. If the day of month does not
// exist in the target month, the last day of that month is used.
func (d Date) PlusMonths(n int64) Date {
	if n == 0 {
		return d
	}
	total := int64(d.year)*12 + int64(d.month-1) + n
	return mustDate(d.resolvePreviousValid(int(floorDiv(total, 12)), int(floorMod(total, 12))+1, d.day))
}

// PlusYears returns the date n years later, clamping the day of month.
func (d Date) PlusYears(n int64) Date {
	if n == 0 {
		return d
	}
	return mustDate(d.resolvePreviousValid(d.year+int(n), int(d.month), d.day))
}

func (d Date) MinusDays(n int64) Date   { return d.PlusDays(-n) }
func (d Date) MinusWeeks(n int64) Date  { return d.PlusWeeks(-n) }
func (d Date) MinusMonths(n int64) Date { return d.PlusMonths(-n) }
func (d Date) MinusYears(n int64) Date  { return d.PlusYears(-n) }

func (d Date) resolvePreviousValid(year, month, day int) (Date, error) {
	n, err := d.chrono().LengthOfMonth(year, month)
	if err != nil {
		return Date{}, err
	}
	return d.cal.Date(year, month, min(day, n))
}

// WithDayOfMonth returns the date with the day of month changed. It fails if
// the month has fewer days.
func (d Date) WithDayOfMonth(day int) (Date, error) {
	if day == d.day {
		return d, nil
	}
	return d.cal.Date(d.year, int(d.month), day)
}

// WithDayOfYear returns the date with the day of year changed.
func (d Date) WithDayOfYear(dayOfYear int) (Date, error) {
	return d.cal.DateOfYearDay(d.year, dayOfYear)
}

// WithMonth returns the date with the month changed. If the day of month
// does not exist in the new month, the last day of the month is used.
func (d Date) WithMonth(m Month) (Date, error) {
	if err := checkRange(FieldMonth, int64(m), 1, 12); err != nil {
		return Date{}, err
	}
	if m == d.month {
		return d, nil
	}
	return d.resolvePreviousValid(d.year, int(m), d.day)
}

// WithYear returns the date with the year changed, clamping the day of month.
func (d Date) WithYear(year int) (Date, error) {
	if year == d.year {
		return d, nil
	}
	return d.resolvePreviousValid(year, int(d.month), d.day)
}

// AtStartOfDay returns the date-time at midnight of d.
func (d Date) AtStartOfDay() DateTime { return DateTime{date: d} }

// AtStartOfDayIn returns the earliest valid date-time of d in zone. When a
// transition skips midnight, the result is the first instant after the gap.
func (d Date) AtStartOfDayIn(zone *time.Location) ZonedDateTime {
	return ZonedDateTimeOf(d.AtStartOfDay(), zone)
}

// AtTime returns the date-time of d at t.
func (d Date) AtTime(t TimeOfDay) DateTime { return DateTime{date: d, time: t} }

// AtTimeOffset returns the offset date-time of d at t with offset o.
func (d Date) AtTimeOffset(t TimeOfDay, o Offset) OffsetDateTime {
	return OffsetDateTimeOf(d.AtTime(t), o)
}

// Instant returns the instant of midnight at the start of d at offset o.
func (d Date) Instant(o Offset) time.Time {
	return d.AtStartOfDay().Instant(o)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o on the time line.
func (d Date) Compare(o Date) int {
	switch {
	case d.epochDay < o.epochDay:
		return -1
	case d.epochDay > o.epochDay:
		return 1
	}
	return 0
}

func (d Date) Before(o Date) bool { return d.epochDay < o.epochDay }
func (d Date) After(o Date) bool  { return d.epochDay > o.epochDay }

// Equal reports whether d and o are the same day, regardless of calendar.
func (d Date) Equal(o Date) bool { return d.epochDay == o.epochDay }

// String returns the date in the ISODate format, for example 1443-01-01.
func (d Date) String() string {
	return string(appendISODate(make([]byte, 0, 10), d.year, int(d.month), d.day))
}

// --- Package-level convenience functions ---

// NewDate returns the date with the given year, month and day in the default
// calendar.
func NewDate(year, month, day int) (Date, error) { return defaultCal.Date(year, month, day) }

// DateOfEpochDay returns the date day days after 1970-01-01 ISO.
func DateOfEpochDay(day int64) (Date, error) { return defaultCal.DateOfEpochDay(day) }

// DateOfYearDay returns the dayOfYear'th day of year.
func DateOfYearDay(year, dayOfYear int) (Date, error) {
	return defaultCal.DateOfYearDay(year, dayOfYear)
}

// DateOfInstant returns the local date at instant t in zone.
func DateOfInstant(t time.Time, zone *time.Location) (Date, error) {
	return defaultCal.DateOfInstant(t, zone)
}

// DateFromTime converts the calendar date of t in its location.
func DateFromTime(t time.Time) (Date, error) { return defaultCal.DateFromTime(t) }

// Today returns the current date in the local zone.
func Today() Date { return defaultCal.Today() }

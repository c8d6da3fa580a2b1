package hijrah

import (
	"fmt"
	"time"
)

// Field identifies a queryable date-time field.
type Field int

const (
	FieldEra Field = iota + 1
	FieldYear
	FieldYearOfEra
	FieldMonth
	FieldDayOfMonth
	FieldDayOfYear
	FieldDayOfWeek
	FieldEpochDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldNanosecond
	FieldOffset
	FieldEpochSecond
)

var fieldNames = [...]string{
	FieldEra:         "era",
	FieldYear:        "year",
	FieldYearOfEra:   "year-of-era",
	FieldMonth:       "month",
	FieldDayOfMonth:  "day-of-month",
	FieldDayOfYear:   "day-of-year",
	FieldDayOfWeek:   "day-of-week",
	FieldEpochDay:    "epoch-day",
	FieldHour:        "hour",
	FieldMinute:      "minute",
	FieldSecond:      "second",
	FieldNanosecond:  "nanosecond",
	FieldOffset:      "offset",
	FieldEpochSecond: "epoch-second",
}

func (f Field) String() string {
	switch {
	case f > 0 && int(f) < len(fieldNames):
		return fieldNames[f]
	case f == fieldAmPm:
		return "am-pm"
	case f == fieldHourOfAmPm:
		return "hour-of-am-pm"
	case f == fieldReducedYear:
		return "reduced-year"
	}
	return "unknown-field"
}

// Temporal is implemented by Date, OffsetDate, DateTime, OffsetDateTime
// and ZonedDateTime, and only by them.
//
// Lookup returns the value of a field and whether the value type carries it.
// FieldDayOfWeek follows time.Weekday numbering (Sunday is 0), FieldOffset is
// in seconds east of UTC.
type Temporal interface {
	Lookup(f Field) (int64, bool)
	String() string
	temporal()
}

// Era is a Hijrah era. The Hijrah calendar has a single era.
type Era int

// AH (Anno Hegirae) is the only Hijrah era.
const AH Era = 1

func (e Era) String() string {
	if e == AH {
		return "AH"
	}
	return fmt.Sprintf("Era(%d)", int(e))
}

// Clock supplies the current instant; the location of the returned time is
// the zone used by the Now family of functions.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the time.Now clock in the local zone.
func SystemClock() Clock { return systemClock{} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock { return fixedClock{t: t} }

// DateTimeFrom projects t onto its local date-time, dropping any offset or
// zone. A bare Date carries no time of day and is rejected.
func DateTimeFrom(t Temporal) (DateTime, error) {
	switch v := t.(type) {
	case DateTime:
		return v, nil
	case OffsetDateTime:
		return v.DateTime(), nil
	case ZonedDateTime:
		return v.DateTime(), nil
	}
	return DateTime{}, fmtArgError("cannot obtain a DateTime from %T", t)
}

// OffsetDateTimeFrom projects t onto an offset date-time. A ZonedDateTime
// keeps its currently resolved offset.
func OffsetDateTimeFrom(t Temporal) (OffsetDateTime, error) {
	switch v := t.(type) {
	case OffsetDateTime:
		return v, nil
	case ZonedDateTime:
		return v.OffsetDateTime(), nil
	}
	return OffsetDateTime{}, fmtArgError("cannot obtain an OffsetDateTime from %T", t)
}

// ZonedDateTimeFrom converts t to a zoned date-time. An OffsetDateTime is
// placed in its fixed offset zone.
func ZonedDateTimeFrom(t Temporal) (ZonedDateTime, error) {
	switch v := t.(type) {
	case ZonedDateTime:
		return v, nil
	case OffsetDateTime:
		return v.AtZoneSameInstant(v.Offset().Location()), nil
	}
	return ZonedDateTime{}, fmtArgError("cannot obtain a ZonedDateTime from %T", t)
}

// DateFrom returns the date part of t.
func DateFrom(t Temporal) Date {
	switch v := t.(type) {
	case Date:
		return v
	case OffsetDate:
		return v.Date()
	case DateTime:
		return v.Date()
	case OffsetDateTime:
		return v.Date()
	case ZonedDateTime:
		return v.Date()
	}
	return Date{}
}

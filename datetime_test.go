package hijrah_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hijrah "github.com/rabitt1ove/hijrah-datetime"
)

func mustDateTime(t *testing.T, y, mo, d, h, mi int, secNano ...int) hijrah.DateTime {
	t.Helper()
	dt, err := hijrah.NewDateTime(y, mo, d, h, mi, secNano...)
	require.NoError(t, err)
	return dt
}

func TestNewDateTime(t *testing.T) {
	t.Parallel()

	dt := mustDateTime(t, 1443, 1, 1, 10, 15, 30, 500_000_000)
	assert.Equal(t, 1443, dt.Year())
	assert.Equal(t, hijrah.Muharram, dt.Month())
	assert.Equal(t, 1, dt.Day())
	assert.Equal(t, 10, dt.Hour())
	assert.Equal(t, 15, dt.Minute())
	assert.Equal(t, 30, dt.Second())
	assert.Equal(t, 500_000_000, dt.Nanosecond())
	assert.Equal(t, time.Tuesday, dt.Weekday())
	assert.Equal(t, "1443-01-01T10:15:30.5", dt.String())

	assert.Equal(t, "1443-01-01T10:15:00", mustDateTime(t, 1443, 1, 1, 10, 15).String())

	_, err := hijrah.NewDateTime(1443, 1, 1, 10, 15, 0, 0, 0)
	assert.ErrorIs(t, err, hijrah.ErrInvalidArgument)
	_, err = hijrah.NewDateTime(1443, 1, 1, 24, 0)
	assert.ErrorIs(t, err, hijrah.ErrInvalidField)
	_, err = hijrah.NewDateTime(1443, 2, 30, 0, 0)
	assert.ErrorIs(t, err, hijrah.ErrInvalidField)
}

func TestDateTimeOfEpochSecond(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sec    int64
		nano   int
		offset hijrah.Offset
		want   string
	}{
		{1628553600, 0, hijrah.UTC, "1443-01-01T00:00:00"},
		{1628553600, 0, 3 * 3600, "1443-01-01T03:00:00"},
		{1628553600, 0, -3600, "1442-12-30T23:00:00"},
		{0, 0, hijrah.UTC, "1389-10-22T00:00:00"},
		{-1, 999_999_999, hijrah.UTC, "1389-10-21T23:59:59.999999999"},
	}
	for _, tt := range tests {
		dt, err := hijrah.DateTimeOfEpochSecond(tt.sec, tt.nano, tt.offset)
		require.NoError(t, err)
		assert.Equal(t, tt.want, dt.String())
		assert.Equal(t, tt.sec, dt.EpochSecond(tt.offset))
	}

	_, err := hijrah.DateTimeOfEpochSecond(0, 1_000_000_000, hijrah.UTC)
	assert.ErrorIs(t, err, hijrah.ErrInvalidField)
}

func TestDateTimeOfInstant(t *testing.T) {
	t.Parallel()

	instant := time.Date(2021, time.August, 9, 22, 30, 0, 0, time.UTC)
	dt, err := hijrah.DateTimeOfInstant(instant, time.FixedZone("", 3*3600))
	require.NoError(t, err)
	assert.Equal(t, "1443-01-01T01:30:00", dt.String())

	dt, err = hijrah.DateTimeOfInstant(instant, nil)
	require.NoError(t, err)
	assert.Equal(t, "1442-12-30T22:30:00", dt.String())

	dt, err = hijrah.DateTimeFromTime(instant)
	require.NoError(t, err)
	assert.Equal(t, "1442-12-30T22:30:00", dt.String())
	assert.True(t, dt.Instant(hijrah.UTC).Equal(instant))
}

func TestDateTimePlusTime(t *testing.T) {
	t.Parallel()

	base := mustDateTime(t, 1443, 1, 1, 23, 0)
	tests := []struct {
		name string
		got  hijrah.DateTime
		want string
	}{
		{"hours carry", base.PlusHours(25), "1443-01-03T00:00:00"},
		{"minutes carry", base.PlusMinutes(60), "1443-01-02T00:00:00"},
		{"seconds", base.PlusSeconds(59), "1443-01-01T23:00:59"},
		{"nanos back across midnight", mustDateTime(t, 1443, 1, 1, 0, 0).MinusNanos(1), "1442-12-30T23:59:59.999999999"},
		{"negative hours", base.MinusHours(47), "1442-12-30T00:00:00"},
		{"duration", base.Plus(90 * time.Minute), "1443-01-02T00:30:00"},
		{"large seconds", base.PlusSeconds(354 * 86400), "1444-01-01T23:00:00"},
		{"weeks", base.PlusWeeks(1), "1443-01-08T23:00:00"},
		{"months clamp", mustDateTime(t, 1443, 1, 30, 6, 0).PlusMonths(1), "1443-02-29T06:00:00"},
		{"years", base.MinusYears(1), "1442-01-01T23:00:00"},
		{"zero", base.PlusNanos(0), "1443-01-01T23:00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got.String(), tt.name)
	}
}

func TestDateTimePlusMinusRoundTrip(t *testing.T) {
	t.Parallel()

	dt := mustDateTime(t, 1443, 6, 15, 12, 34, 56, 789)
	for _, n := range []int64{1, -1, 23, 24, 1_000_000, -1_000_000} {
		assert.Equal(t, dt, dt.PlusHours(n).MinusHours(n), "hours %d", n)
		assert.Equal(t, dt, dt.PlusMinutes(n).MinusMinutes(n), "minutes %d", n)
		assert.Equal(t, dt, dt.PlusSeconds(n).MinusSeconds(n), "seconds %d", n)
		assert.Equal(t, dt, dt.PlusNanos(n*1e9+7).MinusNanos(n*1e9+7), "nanos %d", n)
	}
}

func TestDateTimeWith(t *testing.T) {
	t.Parallel()

	dt := mustDateTime(t, 1443, 11, 30, 8, 45)

	got, err := dt.WithMonth(hijrah.DhuAlHijjah)
	require.NoError(t, err)
	assert.Equal(t, "1443-12-29T08:45:00", got.String())

	got, err = dt.WithHour(23)
	require.NoError(t, err)
	assert.Equal(t, "1443-11-30T23:45:00", got.String())

	got, err = dt.WithMinute(0)
	require.NoError(t, err)
	got, err = got.WithSecond(59)
	require.NoError(t, err)
	got, err = got.WithNanosecond(1)
	require.NoError(t, err)
	assert.Equal(t, "1443-11-30T08:00:59.000000001", got.String())

	got, err = dt.WithDayOfYear(1)
	require.NoError(t, err)
	assert.Equal(t, "1443-01-01T08:45:00", got.String())

	_, err = dt.WithHour(24)
	assert.ErrorIs(t, err, hijrah.ErrInvalidField)
	_, err = dt.WithMinute(60)
	assert.ErrorIs(t, err, hijrah.ErrInvalidField)
	_, err = dt.WithSecond(-1)
	assert.ErrorIs(t, err, hijrah.ErrInvalidField)
	_, err = dt.WithNanosecond(1_000_000_000)
	assert.ErrorIs(t, err, hijrah.ErrInvalidField)
	_, err = dt.WithDayOfMonth(31)
	assert.ErrorIs(t, err, hijrah.ErrInvalidField)

	d := mustDate(t, 1444, 1, 1)
	assert.Equal(t, "1444-01-01T08:45:00", dt.WithDate(d).String())
	assert.Equal(t, "1443-11-30T12:00:00", dt.WithTime(hijrah.Noon).String())
	assert.Equal(t, d, dt.WithDate(d).Date())
}

func TestDateTimeCompare(t *testing.T) {
	t.Parallel()

	a := mustDateTime(t, 1443, 1, 1, 10, 0)
	b := mustDateTime(t, 1443, 1, 1, 10, 0, 0, 1)
	c := mustDateTime(t, 1443, 1, 2, 0, 0)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Before(b))
	assert.True(t, c.After(a))
	assert.True(t, a.Equal(mustDateTime(t, 1443, 1, 1, 10, 0)))
	assert.False(t, a.Equal(b))
}

func TestCalendarNow(t *testing.T) {
	t.Parallel()

	riyadh := time.FixedZone("AST", 3*3600)
	clock := hijrah.FixedClock(time.Date(2021, time.August, 9, 22, 30, 0, 0, riyadh))
	cal := hijrah.New(hijrah.WithClock(clock))

	assert.Equal(t, "1442-12-30T22:30:00", cal.Now().String())
	assert.Equal(t, "1442-12-30T19:30:00", cal.NowIn(time.UTC).String())
	assert.Equal(t, "1442-12-30", cal.Today().String())
	assert.Equal(t, "1443-01-01", cal.TodayIn(time.FixedZone("", 5*3600)).String())

	assert.Same(t, cal, cal.Now().Calendar())
	assert.Same(t, cal, cal.Today().PlusDays(3).Calendar())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	dt := mustDateTime(t, 1443, 3, 4, 5, 6, 7, 8)
	want := map[hijrah.Field]int64{
		hijrah.FieldYear:       1443,
		hijrah.FieldMonth:      3,
		hijrah.FieldDayOfMonth: 4,
		hijrah.FieldHour:       5,
		hijrah.FieldMinute:     6,
		hijrah.FieldSecond:     7,
		hijrah.FieldNanosecond: 8,
		hijrah.FieldDayOfYear:  63,
	}
	for f, v := range want {
		got, ok := dt.Lookup(f)
		require.True(t, ok, f.String())
		assert.Equal(t, v, got, f.String())
	}
	_, ok := dt.Lookup(hijrah.FieldOffset)
	assert.False(t, ok)
	_, ok = dt.Date().Lookup(hijrah.FieldHour)
	assert.False(t, ok)
}

func TestTemporalProjections(t *testing.T) {
	t.Parallel()

	dt := mustDateTime(t, 1443, 1, 1, 6, 0)
	o := dt.AtOffset(mustOffset(t, 3, 0))
	z := dt.AtZone(loadZone(t, "Asia/Riyadh"))

	for _, v := range []hijrah.Temporal{dt, o, z} {
		got, err := hijrah.DateTimeFrom(v)
		require.NoError(t, err)
		assert.Equal(t, dt, got)
		assert.Equal(t, dt.Date(), hijrah.DateFrom(v))
	}
	_, err := hijrah.DateTimeFrom(dt.Date())
	assert.ErrorIs(t, err, hijrah.ErrInvalidArgument)

	got, err := hijrah.OffsetDateTimeFrom(z)
	require.NoError(t, err)
	assert.Equal(t, o, got)
	_, err = hijrah.OffsetDateTimeFrom(dt)
	assert.ErrorIs(t, err, hijrah.ErrInvalidArgument)

	zoned, err := hijrah.ZonedDateTimeFrom(o)
	require.NoError(t, err)
	assert.Equal(t, "1443-01-01T06:00:00+03:00", zoned.String())
	assert.True(t, zoned.Equal(z))
	_, err = hijrah.ZonedDateTimeFrom(dt)
	assert.ErrorIs(t, err, hijrah.ErrInvalidArgument)

	m, err := hijrah.MonthFrom(z)
	require.NoError(t, err)
	assert.Equal(t, hijrah.Muharram, m)
}

package hijrah_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hijrah "github.com/rabitt1ove/hijrah-datetime"
)

func TestOffsetDate(t *testing.T) {
	t.Parallel()

	od, err := hijrah.NewOffsetDate(1443, 1, 1, mustOffset(t, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, "1443-01-01+03:00", od.String())
	assert.Equal(t, mustDate(t, 1443, 1, 1), od.Date())
	assert.Equal(t, time.Tuesday, od.Weekday())
	assert.Equal(t, time.Date(2021, time.August, 9, 21, 0, 0, 0, time.UTC), od.Instant().UTC())

	v, ok := od.Lookup(hijrah.FieldOffset)
	assert.True(t, ok)
	assert.Equal(t, int64(3*3600), v)
	_, ok = od.Lookup(hijrah.FieldHour)
	assert.False(t, ok)

	tod, err := hijrah.NewTimeOfDay(10, 15, 0, 0)
	require.NoError(t, err)
	odt := od.AtTime(tod)
	assert.Equal(t, "1443-01-01T10:15:00+03:00", odt.String())
	assert.Equal(t, "1443-01-01T00:00:00+03:00", od.AtStartOfDay().String())
	assert.Equal(t, od, odt.OffsetDate())
	assert.Equal(t, mustDate(t, 1443, 1, 1), hijrah.DateFrom(od))

	_, err = hijrah.NewOffsetDate(1443, 2, 30, hijrah.UTC)
	assert.ErrorIs(t, err, hijrah.ErrInvalidField)
}

func TestOffsetDate_CompareByInstant(t *testing.T) {
	t.Parallel()

	day := mustDate(t, 1443, 1, 1)
	riyadh := day.AtOffset(mustOffset(t, 3, 0))
	utc := day.AtOffset(hijrah.UTC)

	// Midnight at +03:00 comes three hours before midnight UTC.
	assert.Equal(t, -1, riyadh.Compare(utc))
	assert.True(t, riyadh.Before(utc))
	assert.True(t, utc.After(riyadh))
	assert.False(t, riyadh.Equal(utc))

	same := riyadh.WithOffsetSameLocal(hijrah.UTC)
	assert.Equal(t, utc, same)
	assert.True(t, same.Equal(utc))

	// Both start at 1443-01-01T12:00Z.
	east := day.PlusDays(1).AtOffset(mustOffset(t, 12, 0))
	west := day.AtOffset(mustOffset(t, -12, 0))
	assert.Equal(t, 0, east.Compare(west))
	assert.True(t, east.Equal(west))
	assert.NotEqual(t, east, west)
}

func TestOffsetDate_Arithmetic(t *testing.T) {
	t.Parallel()

	od := mustDate(t, 1443, 1, 30).AtOffset(mustOffset(t, 3, 0))
	assert.Equal(t, "1443-02-29+03:00", od.PlusMonths(1).String())
	assert.Equal(t, "1443-02-07+03:00", od.PlusWeeks(1).String())
	assert.Equal(t, "1443-01-29+03:00", od.MinusDays(1).String())
	assert.Equal(t, "1444-01-30+03:00", od.PlusYears(1).String())
	assert.Equal(t, od, od.PlusDays(40).MinusDays(40))

	got, err := od.WithDayOfMonth(5)
	require.NoError(t, err)
	assert.Equal(t, "1443-01-05+03:00", got.String())
	got, err = od.WithMonth(hijrah.Safar)
	require.NoError(t, err)
	assert.Equal(t, "1443-02-29+03:00", got.String())
	_, err = od.WithDayOfYear(400)
	assert.ErrorIs(t, err, hijrah.ErrInvalidField)
}

func TestOffsetDateOfInstant(t *testing.T) {
	t.Parallel()

	instant := time.Date(2021, time.August, 9, 22, 30, 0, 0, time.UTC)
	od, err := hijrah.OffsetDateOfInstant(instant, time.FixedZone("AST", 3*3600))
	require.NoError(t, err)
	assert.Equal(t, "1443-01-01+03:00", od.String())

	od, err = hijrah.OffsetDateOfInstant(instant, nil)
	require.NoError(t, err)
	assert.Equal(t, "1442-12-30+00:00", od.String())
}

package hijrah

import "fmt"

// Fields holds the proleptic year, month and day-of-month of a Hijrah date.
type Fields struct {
	Year  int
	Month int
	Day   int
}

func (f Fields) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", f.Year, f.Month, f.Day)
}

// Chronology converts between epoch days (days since 1970-01-01 ISO) and
// Hijrah calendar fields. Implementations must be safe for concurrent use and
// must return errors matching ErrInvalidField for values outside their range.
type Chronology interface {
	// ID returns a short identifier such as "Hijrah-civil".
	ID() string
	// YearRange returns the inclusive range of supported proleptic years.
	YearRange() (min, max int)
	// Fields returns the calendar fields for an epoch day.
	Fields(epochDay int64) (Fields, error)
	// EpochDay returns the epoch day for valid calendar fields.
	EpochDay(f Fields) (int64, error)
	// LengthOfMonth returns 29 or 30.
	LengthOfMonth(year, month int) (int, error)
	// LengthOfYear returns the number of days in the year.
	LengthOfYear(year int) (int, error)
}

// ValidYear reports whether year is supported by c.
func ValidYear(c Chronology, year int) bool {
	lo, hi := c.YearRange()
	return year >= lo && year <= hi
}

// ValidMonth reports whether month is a valid month number.
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// ValidDay reports whether day is valid for the given year and month of c.
func ValidDay(c Chronology, year, month, day int) bool {
	n, err := c.LengthOfMonth(year, month)
	return err == nil && day >= 1 && day <= n
}

func checkYear(c Chronology, year int) error {
	lo, hi := c.YearRange()
	return checkRange(FieldYear, int64(year), int64(lo), int64(hi))
}

func checkFields(c Chronology, f Fields) error {
	if err := checkYear(c, f.Year); err != nil {
		return err
	}
	if err := checkRange(FieldMonth, int64(f.Month), 1, 12); err != nil {
		return err
	}
	n, err := c.LengthOfMonth(f.Year, f.Month)
	if err != nil {
		return err
	}
	if f.Day < 1 || f.Day > n {
		return fieldError(FieldDayOfMonth, int64(f.Day), "month %d of %d has %d days", f.Month, f.Year, n)
	}
	return nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

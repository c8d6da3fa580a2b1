// Package hijrah provides Hijrah (Islamic) calendar dates and date-times with
// value semantics: bare dates, local date-times, date-times with a fixed UTC
// offset and date-times in a time zone with daylight saving resolution.
//
// Day counting is delegated to a Chronology and offset resolution to a
// ZoneRules implementation, both held by a Calendar. The package-level
// functions use a default Calendar backed by the tabular Civil chronology,
// the time package's zone database and the system clock.
//
//	d, _ := hijrah.NewDate(1443, 1, 1)
//	dt := d.AtStartOfDay()
//	fmt.Println(dt)                     // 1443-01-01T00:00:00
//	fmt.Println(dt.AtOffset(hijrah.UTC)) // 1443-01-01T00:00:00+00:00
//
// For a different chronology, zone database or clock, create a Calendar:
//
//	cal := hijrah.New(hijrah.WithChronology(umalqura), hijrah.WithClock(clk))
//	today := cal.Today()
//
// All values are immutable and safe to share between goroutines.
package hijrah

// Calendar binds a Chronology, a ZoneRules and a Clock. Values created by a
// Calendar keep a reference to it and use it for all further arithmetic.
// Create one with [New]. A Calendar is immutable and safe for concurrent use.
type Calendar struct {
	chrono Chronology
	rules  ZoneRules
	clock  Clock
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithChronology sets the chronology used for day counting.
func WithChronology(c Chronology) Option {
	return func(cal *Calendar) { cal.chrono = c }
}

// WithZoneRules sets the zone rules used to resolve offsets.
func WithZoneRules(r ZoneRules) Option {
	return func(cal *Calendar) { cal.rules = r }
}

// WithClock sets the clock used by the Now family of methods.
func WithClock(c Clock) Option {
	return func(cal *Calendar) { cal.clock = c }
}

// New creates a Calendar. Unset collaborators default to Civil,
// SystemZoneRules and SystemClock.
func New(opts ...Option) *Calendar {
	c := &Calendar{}
	for _, opt := range opts {
		opt(c)
	}
	if c.chrono == nil {
		c.chrono = Civil
	}
	if c.rules == nil {
		c.rules = SystemZoneRules()
	}
	if c.clock == nil {
		c.clock = SystemClock()
	}
	return c
}

// defaultCal is the calendar used by package-level functions and by zero
// values.
var defaultCal = New()

// Default returns the Calendar used by the package-level functions.
func Default() *Calendar { return defaultCal }

func (c *Calendar) orDefault() *Calendar {
	if c == nil {
		return defaultCal
	}
	return c
}

// Chronology returns the calendar's chronology.
func (c *Calendar) Chronology() Chronology { return c.orDefault().chrono }

// ZoneRules returns the calendar's zone rules.
func (c *Calendar) ZoneRules() ZoneRules { return c.orDefault().rules }

// Clock returns the calendar's clock.
func (c *Calendar) Clock() Clock { return c.orDefault().clock }

// MinDate returns the earliest date supported by the chronology.
func (c *Calendar) MinDate() Date {
	lo, _ := c.Chronology().YearRange()
	d, err := c.Date(lo, 1, 1)
	if err != nil {
		panic(err)
	}
	return d
}

// MaxDate returns the latest date supported by the chronology.
func (c *Calendar) MaxDate() Date {
	_, hi := c.Chronology().YearRange()
	n, err := c.Chronology().LengthOfMonth(hi, 12)
	if err != nil {
		panic(err)
	}
	d, err := c.Date(hi, 12, n)
	if err != nil {
		panic(err)
	}
	return d
}

package hijrah

import (
	"fmt"
	"sort"
	"time"

	cerrors "cloudeng.io/errors"
)

// TableConfig describes a table driven Hijrah variant in the layout used by
// published variant files: an identifier, a calendar type, a version, the ISO
// date of 1 Muharram of StartYear and one row of twelve month lengths per
// year.
type TableConfig struct {
	ID           string
	Type         string
	Version      string
	ISOStart     string // yyyy-mm-dd
	StartYear    int
	MonthLengths [][12]int
}

// TableChronology is a Chronology whose month lengths come from a table,
// for example the Umm al-Qura data. It supports exactly the years present in
// the table.
type TableChronology struct {
	id          string
	typ         string
	version     string
	startYear   int
	endYear     int
	monthStarts []int64 // epoch day of the first day of each month, plus one sentinel
}

// NewTableChronology validates cfg and returns the chronology it describes.
// All problems found in cfg are reported together.
func NewTableChronology(cfg TableConfig) (*TableChronology, error) {
	errs := &cerrors.M{}
	if cfg.ID == "" {
		errs.Append(fmt.Errorf("%w: missing id", ErrInvalidArgument))
	}
	start, err := time.Parse(time.DateOnly, cfg.ISOStart)
	if err != nil {
		errs.Append(fmt.Errorf("%w: iso-start %q: %v", ErrInvalidArgument, cfg.ISOStart, err))
	}
	if len(cfg.MonthLengths) == 0 {
		errs.Append(fmt.Errorf("%w: no month lengths", ErrInvalidArgument))
	}
	for i, row := range cfg.MonthLengths {
		for m, n := range row {
			if n != 29 && n != 30 {
				errs.Append(fieldError(FieldDayOfMonth, int64(n),
					"year %d month %d: length must be 29 or 30", cfg.StartYear+i, m+1))
			}
		}
	}
	if err := errs.Err(); err != nil {
		return nil, fmt.Errorf("hijrah: table %q: %w", cfg.ID, err)
	}

	tc := &TableChronology{
		id:          cfg.ID,
		typ:         cfg.Type,
		version:     cfg.Version,
		startYear:   cfg.StartYear,
		endYear:     cfg.StartYear + len(cfg.MonthLengths) - 1,
		monthStarts: make([]int64, 0, len(cfg.MonthLengths)*12+1),
	}
	day := floorDiv(start.Unix(), secondsPerDay)
	for _, row := range cfg.MonthLengths {
		for _, n := range row {
			tc.monthStarts = append(tc.monthStarts, day)
			day += int64(n)
		}
	}
	tc.monthStarts = append(tc.monthStarts, day)
	return tc, nil
}

// MustTableChronology is like NewTableChronology but panics on error. It is
// intended for generated variables.
func MustTableChronology(cfg TableConfig) *TableChronology {
	tc, err := NewTableChronology(cfg)
	if err != nil {
		panic(err)
	}
	return tc
}

func (tc *TableChronology) ID() string { return tc.id }

// Type returns the calendar type of the table, such as "islamic-umalqura".
func (tc *TableChronology) Type() string { return tc.typ }

// Version returns the version of the table data.
func (tc *TableChronology) Version() string { return tc.version }

func (tc *TableChronology) YearRange() (int, int) { return tc.startYear, tc.endYear }

func (tc *TableChronology) monthIndex(year, month int) (int, error) {
	if err := checkYear(tc, year); err != nil {
		return 0, err
	}
	if err := checkRange(FieldMonth, int64(month), 1, 12); err != nil {
		return 0, err
	}
	return (year-tc.startYear)*12 + month - 1, nil
}

func (tc *TableChronology) LengthOfMonth(year, month int) (int, error) {
	i, err := tc.monthIndex(year, month)
	if err != nil {
		return 0, err
	}
	return int(tc.monthStarts[i+1] - tc.monthStarts[i]), nil
}

func (tc *TableChronology) LengthOfYear(year int) (int, error) {
	i, err := tc.monthIndex(year, 1)
	if err != nil {
		return 0, err
	}
	return int(tc.monthStarts[i+12] - tc.monthStarts[i]), nil
}

func (tc *TableChronology) EpochDay(f Fields) (int64, error) {
	if err := checkFields(tc, f); err != nil {
		return 0, err
	}
	i, _ := tc.monthIndex(f.Year, f.Month)
	return tc.monthStarts[i] + int64(f.Day) - 1, nil
}

func (tc *TableChronology) Fields(epochDay int64) (Fields, error) {
	last := len(tc.monthStarts) - 1
	if err := checkRange(FieldEpochDay, epochDay, tc.monthStarts[0], tc.monthStarts[last]-1); err != nil {
		return Fields{}, err
	}
	i := sort.Search(last, func(i int) bool { return tc.monthStarts[i+1] > epochDay })
	return Fields{
		Year:  tc.startYear + i/12,
		Month: i%12 + 1,
		Day:   int(epochDay-tc.monthStarts[i]) + 1,
	}, nil
}

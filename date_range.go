package hijrah

import "iter"

// DatesUntil returns the dates from d (inclusive) to end (exclusive) in
// steps of one day. It fails if end is before d.
func (d Date) DatesUntil(end Date) (iter.Seq[Date], error) {
	return d.DatesUntilStep(end, 1)
}

// DatesUntilStep returns every step'th date from d (inclusive) towards end
// (exclusive). A negative step walks backwards and requires end not to be
// after d. The returned sequence can be ranged over more than once.
func (d Date) DatesUntilStep(end Date, step int64) (iter.Seq[Date], error) {
	switch {
	case step == 0:
		return nil, fmtArgError("step must not be zero")
	case step > 0 && end.epochDay < d.epochDay:
		return nil, fmtArgError("end date %v is before start date %v", end, d)
	case step < 0 && end.epochDay > d.epochDay:
		return nil, fmtArgError("end date %v is after start date %v for negative step", end, d)
	}
	start, stop, cal := d.epochDay, end.epochDay, d.cal
	return func(yield func(Date) bool) {
		for ed := start; (step > 0 && ed < stop) || (step < 0 && ed > stop); ed += step {
			if !yield(mustDate(cal.DateOfEpochDay(ed))) {
				return
			}
			// Stop before ed+step can overflow.
			if (step > 0 && stop-ed <= step) || (step < 0 && stop-ed >= step) {
				return
			}
		}
	}, nil
}

// DaysUntil returns the number of days from d to end.
func (d Date) DaysUntil(end Date) int64 { return end.epochDay - d.epochDay }

// MonthsUntil returns the number of complete months from d to end.
func (d Date) MonthsUntil(end Date) int64 {
	packed := func(x Date) int64 {
		return (int64(x.year)*12+int64(x.month-1))*32 + int64(x.day)
	}
	return (packed(end) - packed(d)) / 32
}

// YearsUntil returns the number of complete years from d to end.
func (d Date) YearsUntil(end Date) int64 { return d.MonthsUntil(end) / 12 }

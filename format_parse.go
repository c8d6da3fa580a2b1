package hijrah

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"golang.org/x/text/cases"
)

// reducedYearBase is the first year of the century a two-digit year (yy)
// is parsed into.
const reducedYearBase = 1400

// parsed accumulates the field values read from text.
type parsed struct {
	fields map[Field]int64
	zone   *time.Location
}

func (p *parsed) clone() *parsed {
	return &parsed{fields: maps.Clone(p.fields), zone: p.zone}
}

func (p *parsed) set(f Field, v int64) error {
	if old, ok := p.fields[f]; ok && old != v {
		return fmt.Errorf("conflicting values for %s: %d and %d", f, old, v)
	}
	p.fields[f] = v
	return nil
}

func (p *parsed) get(f Field) (int64, bool) {
	v, ok := p.fields[f]
	return v, ok
}

func (f *Formatter) parse(text string) (*parsed, error) {
	p := &parsed{fields: make(map[Field]int64)}
	pos, err := f.parseElems(text, 0, f.elems, p, symbolsFor(f.locale))
	if err != nil {
		return nil, &ParseError{Text: text, Pos: pos, Err: err}
	}
	if pos != len(text) {
		return nil, &ParseError{Text: text, Pos: pos, Err: errors.New("unparsed text found")}
	}
	return p, nil
}

func (f *Formatter) parseElems(s string, pos int, elems []element, p *parsed, sym *symbols) (int, error) {
	for _, e := range elems {
		if e.kind == elemOptional {
			trial := p.clone()
			if next, err := f.parseElems(s, pos, e.children, trial, sym); err == nil {
				*p = *trial
				pos = next
			}
			continue
		}
		next, err := f.parseElem(s, pos, e, p, sym)
		if err != nil {
			return pos, err
		}
		pos = next
	}
	return pos, nil
}

func (f *Formatter) parseElem(s string, pos int, e element, p *parsed, sym *symbols) (int, error) {
	switch e.kind {
	case elemLiteral:
		if !hasPrefixFold(s[pos:], e.lit) {
			return pos, fmt.Errorf("expected %q", e.lit)
		}
		return pos + len(e.lit), nil
	case elemNumber:
		return parseNumber(s, pos, e, p)
	case elemText:
		texts, base := textCandidates(sym, e)
		best := -1
		for i, t := range texts {
			if hasPrefixFold(s[pos:], t) && (best < 0 || len(t) > len(texts[best])) {
				best = i
			}
		}
		if best < 0 {
			return pos, fmt.Errorf("no text for %s", e.field)
		}
		return pos + len(texts[best]), p.set(e.field, int64(best)+base)
	case elemFraction:
		return parseFraction(s, pos, e, p)
	case elemOffset:
		if pos < len(s) && (s[pos] == 'Z' || s[pos] == 'z') {
			return pos + 1, p.set(FieldOffset, 0)
		}
		o, next, err := scanOffset(s, pos, true)
		if err != nil {
			return pos, err
		}
		return next, p.set(FieldOffset, int64(o))
	case elemZoneID:
		end := pos
		for end < len(s) && isZoneIDChar(s[end]) {
			end++
		}
		if end == pos {
			return pos, errors.New("expected zone id")
		}
		zone, err := f.calendar().rules.LoadZone(s[pos:end])
		if err != nil {
			return pos, err
		}
		p.zone = zone
		return end, nil
	}
	return pos, fmt.Errorf("unexpected pattern element %d", e.kind)
}

// hasPrefixFold reports whether s starts with prefix, ignoring case.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	if s[:len(prefix)] == prefix {
		return true
	}
	fold := cases.Fold()
	return fold.String(s[:len(prefix)]) == fold.String(prefix)
}

func isZoneIDChar(c byte) bool {
	return isPatternLetter(c) || isDigit(c) || c == '/' || c == '_' || c == '-' || c == '+' || c == ':' || c == '.' || c == '~'
}

func parseNumber(s string, pos int, e element, p *parsed) (int, error) {
	i := pos
	neg := false
	if e.signed && i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	start := i
	var v int64
	for i < len(s) && i-start < e.maxWidth && isDigit(s[i]) {
		v = v*10 + int64(s[i]-'0')
		i++
	}
	if i-start < e.minWidth || i == start {
		return pos, fmt.Errorf("expected %d digits for %s", max(e.minWidth, 1), e.field)
	}
	if neg {
		v = -v
	}
	f := e.field
	if f == fieldReducedYear {
		f, v = FieldYear, reducedYearBase+v
	}
	return i, p.set(f, v)
}

func parseFraction(s string, pos int, e element, p *parsed) (int, error) {
	i := pos
	if e.dot {
		if i >= len(s) || s[i] != '.' || i+1 >= len(s) || !isDigit(s[i+1]) {
			return pos, p.set(FieldNanosecond, 0)
		}
		i++
	}
	start := i
	var v int64
	for i < len(s) && i-start < e.maxWidth && isDigit(s[i]) {
		v = v*10 + int64(s[i]-'0')
		i++
	}
	n := i - start
	if !e.trim && n != e.maxWidth {
		return pos, fmt.Errorf("expected %d fraction digits", e.maxWidth)
	}
	for ; n < 9; n++ {
		v *= 10
	}
	return i, p.set(FieldNanosecond, v)
}

// resolved holds the values built from parsed fields.
type resolved struct {
	date      Date
	time      TimeOfDay
	hasTime   bool
	offset    Offset
	hasOffset bool
	zone      *time.Location
}

func (p *parsed) resolve(cal *Calendar) (resolved, error) {
	var r resolved
	if era, ok := p.get(FieldEra); ok && era != int64(AH) {
		return r, fieldError(FieldEra, era, "only AH is supported")
	}
	year, ok := p.get(FieldYear)
	if !ok {
		return r, errors.New("text did not contain a year")
	}
	month, hasMonth := p.get(FieldMonth)
	day, hasDay := p.get(FieldDayOfMonth)
	doy, hasDOY := p.get(FieldDayOfYear)
	var err error
	switch {
	case hasMonth && hasDay:
		r.date, err = cal.Date(int(year), int(month), int(day))
		if err == nil && hasDOY && int64(r.date.YearDay()) != doy {
			err = fieldError(FieldDayOfYear, doy, "conflicts with %v", r.date)
		}
	case hasDOY:
		r.date, err = cal.DateOfYearDay(int(year), int(doy))
	default:
		err = errors.New("text did not contain a complete date")
	}
	if err != nil {
		return r, err
	}
	if wd, ok := p.get(FieldDayOfWeek); ok && wd != int64(r.date.Weekday()) {
		return r, fieldError(FieldDayOfWeek, wd, "%v is a %v", r.date, r.date.Weekday())
	}

	hour, hasHour := p.get(FieldHour)
	if h12, ok := p.get(fieldHourOfAmPm); ok {
		ampm, ok := p.get(fieldAmPm)
		if !ok {
			return r, errors.New("hour of am-pm without am-pm")
		}
		if err := checkRange(fieldHourOfAmPm, h12, 1, 12); err != nil {
			return r, err
		}
		h := h12%12 + 12*ampm
		if hasHour && h != hour {
			return r, fieldError(FieldHour, hour, "conflicts with %d%s", h12, []string{"AM", "PM"}[ampm])
		}
		hour, hasHour = h, true
	}
	if hasHour {
		minute, _ := p.get(FieldMinute)
		second, _ := p.get(FieldSecond)
		nano, _ := p.get(FieldNanosecond)
		r.time, err = NewTimeOfDay(int(hour), int(minute), int(second), int(nano))
		if err != nil {
			return r, err
		}
		r.hasTime = true
	}
	if o, ok := p.get(FieldOffset); ok {
		r.offset, r.hasOffset = Offset(o), true
	}
	r.zone = p.zone
	return r, nil
}

func (f *Formatter) resolve(text string) (resolved, error) {
	p, err := f.parse(text)
	if err != nil {
		return resolved{}, err
	}
	r, err := p.resolve(f.calendar())
	if err != nil {
		return resolved{}, &ParseError{Text: text, Pos: 0, Err: err}
	}
	return r, nil
}

// ParseDate parses a date. Time, offset and zone fields in the text are
// read but ignored.
func (f *Formatter) ParseDate(text string) (Date, error) {
	r, err := f.resolve(text)
	if err != nil {
		return Date{}, err
	}
	return r.date, nil
}

// resolveDateTime resolves text that must contain at least a date and an
// hour.
func (f *Formatter) resolveDateTime(text string) (resolved, DateTime, error) {
	r, err := f.resolve(text)
	if err != nil {
		return r, DateTime{}, err
	}
	if !r.hasTime {
		return r, DateTime{}, &ParseError{Text: text, Err: errors.New("text did not contain a time")}
	}
	return r, DateTime{date: r.date, time: r.time}, nil
}

// ParseDateTime parses a local date-time. The text must contain at least the
// hour; missing minutes, seconds and fractions are zero.
func (f *Formatter) ParseDateTime(text string) (DateTime, error) {
	_, dt, err := f.resolveDateTime(text)
	return dt, err
}

// ParseOffsetDateTime parses a date-time with an offset.
func (f *Formatter) ParseOffsetDateTime(text string) (OffsetDateTime, error) {
	r, dt, err := f.resolveDateTime(text)
	if err != nil {
		return OffsetDateTime{}, err
	}
	if !r.hasOffset {
		return OffsetDateTime{}, &ParseError{Text: text, Err: errors.New("text did not contain an offset")}
	}
	return OffsetDateTime{dt: dt, offset: r.offset}, nil
}

// ParseOffsetDate parses a date with an offset. A time of day in the text
// is read but ignored.
func (f *Formatter) ParseOffsetDate(text string) (OffsetDate, error) {
	r, err := f.resolve(text)
	if err != nil {
		return OffsetDate{}, err
	}
	if !r.hasOffset {
		return OffsetDate{}, &ParseError{Text: text, Err: errors.New("text did not contain an offset")}
	}
	return OffsetDate{date: r.date, offset: r.offset}, nil
}

// ParseZonedDateTime parses a date-time with an offset, a zone or both.
// When the offset is present it fixes the instant, which is then expressed
// in the zone; a missing zone defaults to the fixed zone of the offset.
// Without an offset the local date-time is resolved in the zone.
func (f *Formatter) ParseZonedDateTime(text string) (ZonedDateTime, error) {
	r, dt, err := f.resolveDateTime(text)
	if err != nil {
		return ZonedDateTime{}, err
	}
	switch {
	case r.hasOffset:
		zone := r.zone
		if zone == nil {
			zone = r.offset.Location()
		}
		z, err := f.calendar().ZonedDateTimeOfInstant(dt.Instant(r.offset), zone)
		if err != nil {
			return ZonedDateTime{}, &ParseError{Text: text, Err: err}
		}
		return z, nil
	case r.zone != nil:
		return ZonedDateTimeOf(dt, r.zone), nil
	}
	return ZonedDateTime{}, &ParseError{Text: text, Err: errors.New("text did not contain an offset or zone")}
}

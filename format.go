package hijrah

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// Formatter formats and parses Hijrah values with a compiled pattern.
// Formatters are immutable and safe for concurrent use.
//
// Pattern letters:
//
//	G       era                    AH; Anno Hegirae (GGGG)
//	u, y    year                   1443; 43 (yy)
//	M       month                  1; 01; Muh. (MMM); Muharram (MMMM)
//	d       day of month           1; 01
//	D       day of year            1; 001
//	E       day of week            Sun; Sunday (EEEE)
//	a       am/pm                  PM
//	H       hour (0-23)            0; 00
//	h       hour of am/pm (1-12)   12
//	m       minute                 30
//	s       second                 55
//	S       fraction of second     978 (SSS)
//	F       trimmed fraction       .5 (.FFFFFFFFF; a zero fraction is omitted with its '.')
//	n       nanosecond             987654321
//	x, X, Z offset                 +03; +0300; +03:00; X and ZZZZZ write Z for zero
//	VV      zone id                Asia/Riyadh
//	'..'    literal text
//	[ ]     optional section
//
// Any other ASCII letter is reserved. Other characters are copied as is.
type Formatter struct {
	pattern string
	elems   []element
	cal     *Calendar
	locale  language.Tag
}

func newFormatter(pattern string, elems []element) *Formatter {
	return &Formatter{pattern: pattern, elems: elems, locale: language.English}
}

// String returns the pattern the formatter was built from.
func (f *Formatter) String() string { return f.pattern }

// Locale returns the language used for textual fields.
func (f *Formatter) Locale() language.Tag { return f.locale }

// WithLocale returns a copy of f that formats and parses text in the
// supported language closest to tag.
func (f *Formatter) WithLocale(tag language.Tag) *Formatter {
	c := *f
	c.locale = tag
	return &c
}

// WithCalendar returns a copy of f that creates parsed values in cal.
func (f *Formatter) WithCalendar(cal *Calendar) *Formatter {
	c := *f
	c.cal = cal
	return &c
}

func (f *Formatter) calendar() *Calendar { return f.cal.orDefault() }

var errUnavailable = errors.New("field not available")

// Format formats t. It fails when the pattern uses a field t does not
// carry, outside an optional section.
func (f *Formatter) Format(t Temporal) (string, error) {
	b, err := f.appendElems(nil, f.elems, t, symbolsFor(f.locale))
	if err != nil {
		return "", fmt.Errorf("%w: formatting %T with %q: %w", ErrInvalidArgument, t, f.pattern, err)
	}
	return string(b), nil
}

func (f *Formatter) appendElems(b []byte, elems []element, t Temporal, sym *symbols) ([]byte, error) {
	for _, e := range elems {
		var err error
		if e.kind == elemOptional {
			var sub []byte
			sub, err = f.appendElems(b, e.children, t, sym)
			switch {
			case err == nil:
				b = sub
			case errors.Is(err, errUnavailable):
				// The whole section is skipped.
			default:
				return nil, err
			}
			continue
		}
		if b, err = appendElem(b, e, t, sym); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func lookup(t Temporal, f Field) (int64, error) {
	var v int64
	var ok bool
	switch f {
	case fieldAmPm:
		v, ok = t.Lookup(FieldHour)
		v /= 12
	case fieldHourOfAmPm:
		v, ok = t.Lookup(FieldHour)
		if v %= 12; v == 0 {
			v = 12
		}
	case fieldReducedYear:
		v, ok = t.Lookup(FieldYear)
		v = floorMod(v, 100)
	default:
		v, ok = t.Lookup(f)
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s", errUnavailable, f)
	}
	return v, nil
}

func appendElem(b []byte, e element, t Temporal, sym *symbols) ([]byte, error) {
	switch e.kind {
	case elemLiteral:
		return append(b, e.lit...), nil
	case elemZoneID:
		z, ok := t.(interface{ Zone() *time.Location })
		if !ok {
			return nil, fmt.Errorf("%w: zone", errUnavailable)
		}
		id := zoneID(z.Zone())
		if isOffsetID(id) {
			return nil, fmt.Errorf("%w: zone region", errUnavailable)
		}
		return append(b, id...), nil
	}
	v, err := lookup(t, e.field)
	if err != nil {
		return nil, err
	}
	switch e.kind {
	case elemNumber:
		return appendNumber(b, v, e)
	case elemText:
		return append(b, textValue(sym, e, v)...), nil
	case elemFraction:
		if e.trim {
			if e.dot {
				return appendTrimmedFraction(b, int(v), e.maxWidth), nil
			}
			frac := appendTrimmedFraction(nil, int(v), e.maxWidth)
			if len(frac) > 0 {
				frac = frac[1:]
			}
			return append(b, frac...), nil
		}
		return append(b, fmt.Sprintf("%09d", v)[:e.maxWidth]...), nil
	case elemOffset:
		return appendOffset(b, Offset(v), e.minutes, e.colon, e.zulu), nil
	}
	return nil, fmt.Errorf("unexpected pattern element %d", e.kind)
}

func appendNumber(b []byte, v int64, e element) ([]byte, error) {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	digits := strconv.FormatInt(v, 10)
	if len(digits) > e.maxWidth {
		return nil, fieldError(e.field, v, "value exceeds %d digits", e.maxWidth)
	}
	for i := len(digits); i < e.minWidth; i++ {
		b = append(b, '0')
	}
	return append(b, digits...), nil
}

// textCandidates returns the texts of a textual field, indexed by value
// minus base.
func textCandidates(sym *symbols, e element) (texts []string, base int64) {
	switch e.field {
	case FieldMonth:
		if e.long {
			return sym.months[:], 1
		}
		return sym.shortMonths[:], 1
	case FieldDayOfWeek:
		if e.long {
			return sym.weekdays[:], 0
		}
		return sym.shortDays[:], 0
	case FieldEra:
		if e.long {
			return sym.eras[1:], int64(AH)
		}
		return sym.eras[:1], int64(AH)
	case fieldAmPm:
		return sym.ampm[:], 0
	}
	return nil, 0
}

func textValue(sym *symbols, e element, v int64) string {
	texts, base := textCandidates(sym, e)
	if i := v - base; i >= 0 && i < int64(len(texts)) {
		return texts[i]
	}
	return strconv.FormatInt(v, 10)
}

// isOffsetID reports whether a zone id names a fixed offset, such as the
// "+03:00" of a zone created by Offset.Location.
func isOffsetID(id string) bool {
	_, err := ParseOffset(id)
	return err == nil
}

// appendISODate appends year-month-day with at least four year digits.
func appendISODate(b []byte, year, month, day int) []byte {
	if year < 0 {
		b = append(b, '-')
		year = -year
	}
	switch {
	case year < 10:
		b = append(b, "000"...)
	case year < 100:
		b = append(b, "00"...)
	case year < 1000:
		b = append(b, '0')
	}
	b = strconv.AppendInt(b, int64(year), 10)
	b = append(append2(append(b, '-'), month), '-')
	return append2(b, day)
}

// Format formats d with f.
func (d Date) Format(f *Formatter) (string, error) { return f.Format(d) }

// Format formats dt with f.
func (dt DateTime) Format(f *Formatter) (string, error) { return f.Format(dt) }

// Format formats o with f.
func (o OffsetDateTime) Format(f *Formatter) (string, error) { return f.Format(o) }

// Format formats z with f.
func (z ZonedDateTime) Format(f *Formatter) (string, error) { return f.Format(z) }

package hijrah

const (
	defaultDatePattern = "uuuu-MM-dd"
	defaultTimePattern = "HH:mm[:ss[.FFFFFFFFF]]"
	time12HourPattern  = "h:mm[:ss[.FFFFFFFFF]] a"
	defaultSeparator   = "T"
	offsetSuffix       = "xxx"
	zonedSuffix        = "[xxx]['['VV']']"
)

// Predefined formatters for the ISO-like layouts used by String.
var (
	// ISODate formats and parses dates such as 1443-01-01.
	ISODate = mustBuild(BuildDateFormatter(defaultDatePattern))
	// ISOOffsetDate formats and parses dates with an offset, such as
	// 1443-01-01+03:00.
	ISOOffsetDate = mustBuild(BuildOffsetDateFormatter(ISODate))
	// LocalTime12Hours is a time part for BuildDateTimeFormatter that writes
	// a clock hour with an AM/PM marker, such as 4:30:15 PM.
	LocalTime12Hours = mustBuild(BuildTimeFormatter(time12HourPattern))
	// ISODateTime formats and parses local date-times such as
	// 1443-01-01T10:15:30. Seconds and the fraction are optional when
	// parsing.
	ISODateTime = mustBuild(BuildDateTimeFormatter(ISODate))
	// ISOOffsetDateTime formats and parses 1443-01-01T10:15:30+03:00.
	ISOOffsetDateTime = mustBuild(BuildOffsetDateFormatter(ISODateTime))
	// ISOZonedDateTime formats and parses 1443-01-01T10:15:30+03:00[Asia/Riyadh].
	// Both the offset and the zone are optional when parsing, but at least
	// one must be present to obtain a ZonedDateTime.
	ISOZonedDateTime = mustBuild(BuildZonedDateTimeFormatter(ISODateTime))
)

func mustBuild(f *Formatter, err error) *Formatter {
	if err != nil {
		panic(err)
	}
	return f
}

// BuildDateFormatter compiles a date pattern such as "dd/MM/uuuu". See
// Formatter for the pattern letters.
func BuildDateFormatter(pattern string) (*Formatter, error) {
	elems, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return newFormatter(pattern, elems), nil
}

// BuildTimeFormatter compiles a time pattern for use with
// BuildDateTimeFormatter.
func BuildTimeFormatter(pattern string) (*Formatter, error) {
	return BuildDateFormatter(pattern)
}

type dateTimeOptions struct {
	separator string
	time      *Formatter
}

// DateTimeOption configures BuildDateTimeFormatter.
type DateTimeOption func(*dateTimeOptions)

// WithSeparator sets the literal written between the date and the time.
// The default is "T".
func WithSeparator(sep string) DateTimeOption {
	return func(o *dateTimeOptions) { o.separator = sep }
}

// WithTimeFormatter sets the time part. The default is
// "HH:mm[:ss[.FFFFFFFFF]]".
func WithTimeFormatter(f *Formatter) DateTimeOption {
	return func(o *dateTimeOptions) { o.time = f }
}

// BuildDateTimeFormatter composes a date formatter with a separator and a
// time formatter. The result keeps the locale and calendar of date.
func BuildDateTimeFormatter(date *Formatter, opts ...DateTimeOption) (*Formatter, error) {
	if date == nil {
		return nil, fmtArgError("nil date formatter")
	}
	o := dateTimeOptions{separator: defaultSeparator}
	for _, fn := range opts {
		fn(&o)
	}
	if o.time == nil {
		var err error
		if o.time, err = BuildTimeFormatter(defaultTimePattern); err != nil {
			return nil, err
		}
	}
	elems := append([]element(nil), date.elems...)
	if o.separator != "" {
		elems = append(elems, element{kind: elemLiteral, lit: o.separator})
	}
	elems = fixAdjacent(append(elems, o.time.elems...))
	return date.derive(date.pattern+quote(o.separator)+o.time.pattern, elems), nil
}

// BuildOffsetDateFormatter appends an offset (+HH:MM) to base. A nil base
// means ISODate.
func BuildOffsetDateFormatter(base *Formatter) (*Formatter, error) {
	if base == nil {
		base = ISODate
	}
	return base.appendPattern(offsetSuffix)
}

// BuildZonedDateTimeFormatter appends an optional offset followed by an
// optional bracketed zone id to base. A nil base means ISODateTime.
func BuildZonedDateTimeFormatter(base *Formatter) (*Formatter, error) {
	if base == nil {
		base = ISODateTime
	}
	return base.appendPattern(zonedSuffix)
}

func (f *Formatter) appendPattern(suffix string) (*Formatter, error) {
	tail, err := compilePattern(suffix)
	if err != nil {
		return nil, err
	}
	elems := append(append([]element(nil), f.elems...), tail...)
	return f.derive(f.pattern+suffix, fixAdjacent(elems)), nil
}

func (f *Formatter) derive(pattern string, elems []element) *Formatter {
	return &Formatter{pattern: pattern, elems: elems, cal: f.cal, locale: f.locale}
}

// quote returns s as a quoted pattern literal.
func quote(s string) string {
	if s == "" {
		return ""
	}
	b := []byte{'\''}
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			b = append(b, '\'')
		}
		b = append(b, s[i])
	}
	return string(append(b, '\''))
}

// RecommendedFormatter returns the predefined formatter matching the type
// of t.
func RecommendedFormatter(t Temporal) *Formatter {
	switch t.(type) {
	case DateTime:
		return ISODateTime
	case OffsetDate:
		return ISOOffsetDate
	case OffsetDateTime:
		return ISOOffsetDateTime
	case ZonedDateTime:
		return ISOZonedDateTime
	}
	return ISODate
}

// --- Package-level convenience functions ---

// ParseDate parses text in the ISODate format.
func ParseDate(text string) (Date, error) { return ISODate.ParseDate(text) }

// ParseOffsetDate parses text in the ISOOffsetDate format.
func ParseOffsetDate(text string) (OffsetDate, error) { return ISOOffsetDate.ParseOffsetDate(text) }

// ParseDateTime parses text in the ISODateTime format.
func ParseDateTime(text string) (DateTime, error) { return ISODateTime.ParseDateTime(text) }

// ParseOffsetDateTime parses text in the ISOOffsetDateTime format.
func ParseOffsetDateTime(text string) (OffsetDateTime, error) {
	return ISOOffsetDateTime.ParseOffsetDateTime(text)
}

// ParseZonedDateTime parses text in the ISOZonedDateTime format.
func ParseZonedDateTime(text string) (ZonedDateTime, error) {
	return ISOZonedDateTime.ParseZonedDateTime(text)
}

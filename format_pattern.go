package hijrah

// Pseudo fields used only inside the formatter.
const (
	fieldAmPm Field = 100 + iota
	fieldHourOfAmPm
	fieldReducedYear
)

type elemKind int

const (
	elemLiteral elemKind = iota
	elemNumber
	elemText
	elemFraction
	elemOffset
	elemZoneID
	elemOptional
)

// element is one compiled piece of a pattern.
type element struct {
	kind elemKind
	lit  string

	field              Field
	minWidth, maxWidth int
	signed             bool
	long               bool // full text rather than abbreviated

	trim bool // fraction: drop trailing zeros
	dot  bool // fraction: owns the preceding '.'

	minutes, colon, zulu bool

	children []element
}

func (e element) numeric() bool {
	return e.kind == elemNumber || (e.kind == elemFraction && !e.dot)
}

type patternCompiler struct {
	pattern string
	pos     int
}

// compilePattern turns a pattern such as "yyyy-MM-dd" into elements.
func compilePattern(pattern string) ([]element, error) {
	c := &patternCompiler{pattern: pattern}
	elems, err := c.sequence(0)
	if err != nil {
		return nil, err
	}
	return elems, nil
}

func (c *patternCompiler) errorf(pos int, msg string) error {
	return &PatternError{Pattern: c.pattern, Pos: pos, Msg: msg}
}

func isPatternLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// sequence compiles elements until the end of the pattern or, when depth is
// positive, the ']' closing an optional section.
func (c *patternCompiler) sequence(depth int) ([]element, error) {
	var elems []element
	for c.pos < len(c.pattern) {
		ch := c.pattern[c.pos]
		switch {
		case ch == '[':
			start := c.pos
			c.pos++
			children, err := c.sequence(depth + 1)
			if err != nil {
				return nil, err
			}
			if c.pos >= len(c.pattern) {
				return nil, c.errorf(start, "unclosed optional section")
			}
			c.pos++ // ']'
			elems = append(elems, element{kind: elemOptional, children: children})
		case ch == ']':
			if depth == 0 {
				return nil, c.errorf(c.pos, "']' without matching '['")
			}
			return fixAdjacent(elems), nil
		case ch == '\'':
			lit, err := c.quoted()
			if err != nil {
				return nil, err
			}
			elems = appendLiteral(elems, lit)
		case isPatternLetter(ch):
			start := c.pos
			for c.pos < len(c.pattern) && c.pattern[c.pos] == ch {
				c.pos++
			}
			e, err := c.letter(ch, c.pos-start, start)
			if err != nil {
				return nil, err
			}
			if e.kind == elemFraction && e.trim && len(elems) > 0 {
				if last := &elems[len(elems)-1]; last.kind == elemLiteral && last.lit[len(last.lit)-1] == '.' {
					e.dot = true
					last.lit = last.lit[:len(last.lit)-1]
					if last.lit == "" {
						elems = elems[:len(elems)-1]
					}
				}
			}
			elems = append(elems, e)
		default:
			elems = appendLiteral(elems, c.pattern[c.pos:c.pos+1])
			c.pos++
		}
	}
	return fixAdjacent(elems), nil
}

func (c *patternCompiler) quoted() (string, error) {
	start := c.pos
	c.pos++
	var lit []byte
	for {
		if c.pos >= len(c.pattern) {
			return "", c.errorf(start, "unterminated quote")
		}
		ch := c.pattern[c.pos]
		c.pos++
		if ch != '\'' {
			lit = append(lit, ch)
			continue
		}
		if c.pos < len(c.pattern) && c.pattern[c.pos] == '\'' {
			lit = append(lit, '\'')
			c.pos++
			continue
		}
		if c.pos == start+2 {
			// '' outside a literal is a single quote.
			return "'", nil
		}
		return string(lit), nil
	}
}

func appendLiteral(elems []element, s string) []element {
	if n := len(elems); n > 0 && elems[n-1].kind == elemLiteral {
		elems[n-1].lit += s
		return elems
	}
	return append(elems, element{kind: elemLiteral, lit: s})
}

// fixAdjacent makes a numeric element directly followed by another numeric
// element parse a fixed number of digits, so that "yyyyMMdd" can be parsed.
func fixAdjacent(elems []element) []element {
	for i := 0; i+1 < len(elems); i++ {
		if elems[i].kind == elemNumber && elems[i+1].numeric() {
			elems[i].maxWidth = elems[i].minWidth
		}
	}
	return elems
}

func number(f Field, count, maxWidth int) element {
	return element{kind: elemNumber, field: f, minWidth: count, maxWidth: max(maxWidth, count)}
}

func (c *patternCompiler) letter(ch byte, count, pos int) (element, error) {
	tooMany := func() (element, error) {
		return element{}, c.errorf(pos, "too many pattern letters: "+c.pattern[pos:pos+count])
	}
	switch ch {
	case 'G':
		if count > 4 {
			return tooMany()
		}
		return element{kind: elemText, field: FieldEra, long: count == 4}, nil
	case 'u', 'y':
		if count == 2 {
			return element{kind: elemNumber, field: fieldReducedYear, minWidth: 2, maxWidth: 2}, nil
		}
		return element{kind: elemNumber, field: FieldYear, minWidth: count, maxWidth: max(10, count), signed: true}, nil
	case 'M':
		switch {
		case count <= 2:
			return number(FieldMonth, count, 2), nil
		case count <= 4:
			return element{kind: elemText, field: FieldMonth, long: count == 4}, nil
		}
		return tooMany()
	case 'd', 'H', 'h', 'm', 's':
		if count > 2 {
			return tooMany()
		}
		f := map[byte]Field{'d': FieldDayOfMonth, 'H': FieldHour, 'h': fieldHourOfAmPm, 'm': FieldMinute, 's': FieldSecond}[ch]
		return number(f, count, 2), nil
	case 'D':
		if count > 3 {
			return tooMany()
		}
		return number(FieldDayOfYear, count, 3), nil
	case 'E':
		if count > 4 {
			return tooMany()
		}
		return element{kind: elemText, field: FieldDayOfWeek, long: count == 4}, nil
	case 'a':
		if count > 1 {
			return tooMany()
		}
		return element{kind: elemText, field: fieldAmPm}, nil
	case 'S', 'F':
		if count > 9 {
			return tooMany()
		}
		return element{kind: elemFraction, field: FieldNanosecond, minWidth: count, maxWidth: count, trim: ch == 'F'}, nil
	case 'n':
		if count > 9 {
			return tooMany()
		}
		return number(FieldNanosecond, count, 9), nil
	case 'x', 'X':
		if count > 5 {
			return tooMany()
		}
		return element{
			kind:    elemOffset,
			field:   FieldOffset,
			minutes: count > 1,
			colon:   count == 3 || count == 5,
			zulu:    ch == 'X',
		}, nil
	case 'Z':
		switch {
		case count <= 3:
			return element{kind: elemOffset, field: FieldOffset, minutes: true}, nil
		case count == 5:
			return element{kind: elemOffset, field: FieldOffset, minutes: true, colon: true, zulu: true}, nil
		}
		return element{}, c.errorf(pos, "localized offset (ZZZZ) is not supported")
	case 'V':
		if count != 2 {
			return element{}, c.errorf(pos, "zone id must be written VV")
		}
		return element{kind: elemZoneID}, nil
	}
	return element{}, c.errorf(pos, "unknown pattern letter: "+string(ch))
}

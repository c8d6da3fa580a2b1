package hijrah

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// The value types encode as their ISO text, which makes them usable with
// encoding/json and any other encoder that honours encoding.TextMarshaler.
// Decoding into a value that already belongs to a Calendar keeps that
// Calendar; otherwise the default Calendar is used.
//
// In YAML the same text is written as a scalar. A mapping with the
// individual fields is accepted as well:
//
//	year: 1443
//	month: 1
//	dayOfMonth: 1
//	hour: 10        # date-times
//	offset: +03:00  # offset date-times
//
// and, for ZonedDateTime, the instant with its zone:
//
//	epochSecond: 1628553600
//	nanoOfSecond: 0
//	zoneId: Asia/Riyadh

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	v, err := ISODate.WithCalendar(d.cal).ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

func (dt *DateTime) UnmarshalText(b []byte) error {
	v, err := ISODateTime.WithCalendar(dt.date.cal).ParseDateTime(string(b))
	if err != nil {
		return err
	}
	*dt = v
	return nil
}

func (o OffsetDateTime) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *OffsetDateTime) UnmarshalText(b []byte) error {
	v, err := ISOOffsetDateTime.WithCalendar(o.dt.date.cal).ParseOffsetDateTime(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (z ZonedDateTime) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

func (z *ZonedDateTime) UnmarshalText(b []byte) error {
	v, err := ISOZonedDateTime.WithCalendar(z.dt.date.cal).ParseZonedDateTime(string(b))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// fieldsYAML is the mapping form of Date, DateTime and OffsetDateTime.
type fieldsYAML struct {
	Year         *int   `yaml:"year"`
	Month        *int   `yaml:"month"`
	DayOfMonth   *int   `yaml:"dayOfMonth"`
	Hour         int    `yaml:"hour"`
	Minute       int    `yaml:"minute"`
	Second       int    `yaml:"second"`
	NanoOfSecond int    `yaml:"nanoOfSecond"`
	Offset       string `yaml:"offset"`
}

func (f fieldsYAML) dateTime(cal *Calendar) (DateTime, error) {
	if f.Year == nil || f.Month == nil || f.DayOfMonth == nil {
		return DateTime{}, fmtArgError("mapping needs year, month and dayOfMonth")
	}
	return cal.DateTime(*f.Year, *f.Month, *f.DayOfMonth, f.Hour, f.Minute, f.Second, f.NanoOfSecond)
}

// zonedYAML is the mapping form of ZonedDateTime.
type zonedYAML struct {
	EpochSecond  *int64 `yaml:"epochSecond"`
	NanoOfSecond int    `yaml:"nanoOfSecond"`
	ZoneID       string `yaml:"zoneId"`
}

// decodeYAML unmarshals a scalar with text or a mapping with decodeMapping.
func decodeYAML(node *yaml.Node, text func([]byte) error, mapping func(*yaml.Node) error) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return text([]byte(node.Value))
	case yaml.MappingNode:
		return mapping(node)
	}
	return fmt.Errorf("%w: yaml line %d: expected a scalar or a mapping", ErrInvalidArgument, node.Line)
}

func decodeFields(node *yaml.Node, cal *Calendar) (DateTime, fieldsYAML, error) {
	var f fieldsYAML
	if err := node.Decode(&f); err != nil {
		return DateTime{}, f, err
	}
	dt, err := f.dateTime(cal)
	return dt, f, err
}

func (d Date) MarshalYAML() (any, error) { return d.String(), nil }

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, d.UnmarshalText, func(n *yaml.Node) error {
		dt, _, err := decodeFields(n, d.cal)
		if err != nil {
			return err
		}
		*d = dt.date
		return nil
	})
}

func (dt DateTime) MarshalYAML() (any, error) { return dt.String(), nil }

func (dt *DateTime) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, dt.UnmarshalText, func(n *yaml.Node) error {
		v, _, err := decodeFields(n, dt.date.cal)
		if err != nil {
			return err
		}
		*dt = v
		return nil
	})
}

func (o OffsetDateTime) MarshalYAML() (any, error) { return o.String(), nil }

func (o *OffsetDateTime) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, o.UnmarshalText, func(n *yaml.Node) error {
		dt, f, err := decodeFields(n, o.dt.date.cal)
		if err != nil {
			return err
		}
		off, err := ParseOffset(f.Offset)
		if err != nil {
			return err
		}
		*o = OffsetDateTimeOf(dt, off)
		return nil
	})
}

func (z ZonedDateTime) MarshalYAML() (any, error) { return z.String(), nil }

func (z *ZonedDateTime) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, z.UnmarshalText, func(n *yaml.Node) error {
		var f zonedYAML
		if err := n.Decode(&f); err != nil {
			return err
		}
		if f.EpochSecond == nil || f.ZoneID == "" {
			return fmtArgError("mapping needs epochSecond and zoneId")
		}
		cal := z.dt.date.cal.orDefault()
		zone, err := cal.rules.LoadZone(f.ZoneID)
		if err != nil {
			return err
		}
		if err := checkRange(FieldNanosecond, int64(f.NanoOfSecond), 0, nanosPerSecond-1); err != nil {
			return err
		}
		v, err := cal.ZonedDateTimeOfInstant(time.Unix(*f.EpochSecond, int64(f.NanoOfSecond)), zone)
		if err != nil {
			return err
		}
		*z = v
		return nil
	})
}

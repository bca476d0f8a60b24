package fhirpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type DateTime struct {
	Value       time.Time
	Precision   DateTimePrecision
	HasTimeZone bool
}

type DateTimePrecision string

const (
	DateTimePrecisionYear        DateTimePrecision = "year"
	DateTimePrecisionMonth       DateTimePrecision = "month"
	DateTimePrecisionDay         DateTimePrecision = "day"
	DateTimePrecisionHour        DateTimePrecision = "hour"
	DateTimePrecisionMinute      DateTimePrecision = "minute"
	DateTimePrecisionSecond      DateTimePrecision = "second"
	DateTimePrecisionMillisecond DateTimePrecision = "millisecond"
	DateTimePrecisionFull                          = DateTimePrecisionMillisecond
)

func dateTimePrecisionOrder(p DateTimePrecision) int {
	switch p {
	case DateTimePrecisionYear:
		return 0
	case DateTimePrecisionMonth:
		return 1
	case DateTimePrecisionDay:
		return 2
	case DateTimePrecisionHour:
		return 3
	case DateTimePrecisionMinute:
		return 4
	case DateTimePrecisionSecond:
		return 5
	default:
		return 6
	}
}

var dateTimeRegex = regexp.MustCompile(
	`^(\d{4})(?:-(\d{2})(?:-(\d{2})(?:T(?:(\d{2})(?::(\d{2})(?::(\d{2})(?:\.(\d+))?)?)?)?(Z|[+-]\d{2}:\d{2})?)?)?)?$`,
)

// ParseDateTime parses YYYY[-MM[-DD[Thh[:mm[:ss[.fff]]][Z|+hh:mm|-hh:mm]]]].
//
// A trailing T after the day is accepted. A time zone requires a time of day.
func ParseDateTime(s string) (DateTime, error) {
	m := dateTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return DateTime{}, fmt.Errorf("invalid DateTime format: %s", s)
	}

	var (
		parts     [6]int
		precision = DateTimePrecisionYear
	)
	parts[1], parts[2] = 1, 1
	precisions := []DateTimePrecision{
		DateTimePrecisionYear,
		DateTimePrecisionMonth,
		DateTimePrecisionDay,
		DateTimePrecisionHour,
		DateTimePrecisionMinute,
		DateTimePrecisionSecond,
	}
	for i := range parts {
		if m[i+1] == "" {
			break
		}
		parts[i], _ = strconv.Atoi(m[i+1])
		precision = precisions[i]
	}

	var nanos int
	if frac := m[7]; frac != "" {
		precision = DateTimePrecisionMillisecond
		frac = (frac + "000000000")[:9]
		nanos, _ = strconv.Atoi(frac)
	}

	loc := time.UTC
	hasTimeZone := m[8] != ""
	if hasTimeZone {
		if m[4] == "" {
			return DateTime{}, fmt.Errorf("invalid DateTime format (time zone without time): %s", s)
		}
		if m[8] != "Z" {
			hours, _ := strconv.Atoi(m[8][1:3])
			minutes, _ := strconv.Atoi(m[8][4:6])
			offset := hours*3600 + minutes*60
			if m[8][0] == '-' {
				offset = -offset
			}
			loc = time.FixedZone(m[8], offset)
		}
	}

	if parts[1] < 1 || parts[1] > 12 || parts[3] > 23 || parts[4] > 59 || parts[5] > 59 {
		return DateTime{}, fmt.Errorf("invalid DateTime value: %s", s)
	}
	value := time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], nanos, loc)
	if value.Day() != parts[2] {
		return DateTime{}, fmt.Errorf("invalid DateTime value: %s", s)
	}

	return DateTime{Value: value, Precision: precision, HasTimeZone: hasTimeZone}, nil
}

func (dt DateTime) TypeName() string {
	return "DateTime"
}
func (dt DateTime) Children(symbol string, index int) (Collection, error) {
	return nil, NoSuchPath(dt.TypeName(), symbol)
}
func (dt DateTime) ToCollection(index int) Collection {
	return Select(Collection{dt}, index)
}
func (dt DateTime) PrimitiveValue() (Element, bool) {
	return dt, true
}

// Cmp compares component-wise up to the common precision.
// If all common components are equal but the precisions differ, the order is undecided.
func (dt DateTime) Cmp(other Element) (cmp int, ok bool, err error) {
	o, isDateTime := other.(DateTime)
	if !isDateTime {
		return 0, false, typeMismatch("comparison", dt, other)
	}

	a, b := dt.normalized(), o.normalized()
	common := min(dateTimePrecisionOrder(dt.Precision), dateTimePrecisionOrder(o.Precision))
	components := [][2]int{
		{a.Year(), b.Year()},
		{int(a.Month()), int(b.Month())},
		{a.Day(), b.Day()},
		{a.Hour(), b.Hour()},
		{a.Minute(), b.Minute()},
		{a.Second(), b.Second()},
		{a.Nanosecond(), b.Nanosecond()},
	}
	for i := 0; i <= common; i++ {
		if c := components[i][0] - components[i][1]; c != 0 {
			if c < 0 {
				return -1, true, nil
			}
			return 1, true, nil
		}
	}
	if dt.Precision != o.Precision {
		return 0, false, nil
	}
	return 0, true, nil
}

// normalized returns the value in UTC if a time zone is known.
func (dt DateTime) normalized() time.Time {
	if dt.HasTimeZone {
		return dt.Value.UTC()
	}
	return dt.Value
}

func (dt DateTime) Equal(other Element) bool {
	cmp, ok, err := dt.Cmp(other)
	return err == nil && ok && cmp == 0
}

// Equivalent is like Equal, but values of different precision are never equivalent.
func (dt DateTime) Equivalent(other Element) bool {
	o, ok := other.(DateTime)
	return ok && dt.Precision == o.Precision && dt.Equal(o)
}

func (dt DateTime) String() string {
	var b strings.Builder
	switch dt.Precision {
	case DateTimePrecisionYear:
		b.WriteString(dt.Value.Format("2006"))
	case DateTimePrecisionMonth:
		b.WriteString(dt.Value.Format("2006-01"))
	case DateTimePrecisionDay:
		b.WriteString(dt.Value.Format("2006-01-02"))
	case DateTimePrecisionHour:
		b.WriteString(dt.Value.Format("2006-01-02T15"))
	case DateTimePrecisionMinute:
		b.WriteString(dt.Value.Format("2006-01-02T15:04"))
	case DateTimePrecisionSecond:
		b.WriteString(dt.Value.Format("2006-01-02T15:04:05"))
	default:
		b.WriteString(dt.Value.Format("2006-01-02T15:04:05.000"))
	}
	if dt.HasTimeZone {
		b.WriteString(dt.Value.Format("Z07:00"))
	}
	return b.String()
}

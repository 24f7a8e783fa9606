// Package datetime provides an immutable, calendar-aware date/time value
// that computes year-fraction time deltas under a named day-count
// convention and navigates bank-holiday calendars.
//
// Every Datetime carries two tags: a holiday calendar and a day-count
// convention. Values with differing tags are deliberately incomparable;
// every binary operation checks the tags first and fails with
// ErrMismatchedContext rather than coercing.
package datetime

import (
	"fmt"

	"github.com/meenmo/quantdate/calendar"
)

// DefaultHour is the constructor's default time of day (exchange close).
const DefaultHour = 16

// Datetime is an immutable calendar-aware point in time with millisecond
// resolution. The underlying calendar date caches its serial number, so
// day-difference arithmetic never re-derives it.
type Datetime struct {
	date        calendar.Date
	hour        int
	minute      int
	second      int
	millisecond int

	cal  calendar.ID
	conv Convention
}

// Option adjusts the optional constructor fields.
type Option func(*options)

type options struct {
	hour, minute, second, millisecond int
	cal                               calendar.ID
	conv                              Convention
}

// WithTime sets the time of day. The default is 16:00:00.000.
func WithTime(hour, minute, second, millisecond int) Option {
	return func(o *options) {
		o.hour, o.minute, o.second, o.millisecond = hour, minute, second, millisecond
	}
}

// WithCalendar sets the holiday calendar tag. The default is Frankfurt.
func WithCalendar(cal calendar.ID) Option {
	return func(o *options) { o.cal = cal }
}

// WithConvention sets the day-count convention tag. The default is Business/252.
func WithConvention(conv Convention) Option {
	return func(o *options) { o.conv = conv }
}

// New constructs a validated Datetime.
//
// Numeric fields outside their domain and unknown calendar or convention
// tags fail with ErrOutOfRange; a (year, month, day) triple that does not
// exist in the proleptic Gregorian calendar fails with
// calendar.ErrInvalidDate.
func New(year, month, day int, opts ...Option) (Datetime, error) {
	o := options{hour: DefaultHour, cal: calendar.Frankfurt, conv: Business252}
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case month < 1 || month > 12:
		return Datetime{}, fmt.Errorf("%w: month %d not between 1 and 12", ErrOutOfRange, month)
	case day < 1 || day > 31:
		return Datetime{}, fmt.Errorf("%w: day %d not between 1 and 31", ErrOutOfRange, day)
	case o.hour < 0 || o.hour > 23:
		return Datetime{}, fmt.Errorf("%w: hour %d not between 0 and 23", ErrOutOfRange, o.hour)
	case o.minute < 0 || o.minute > 59:
		return Datetime{}, fmt.Errorf("%w: minute %d not between 0 and 59", ErrOutOfRange, o.minute)
	case o.second < 0 || o.second > 59:
		return Datetime{}, fmt.Errorf("%w: second %d not between 0 and 59", ErrOutOfRange, o.second)
	case o.millisecond < 0 || o.millisecond > 999:
		return Datetime{}, fmt.Errorf("%w: millisecond %d not between 0 and 999", ErrOutOfRange, o.millisecond)
	case !o.cal.Valid():
		return Datetime{}, fmt.Errorf("%w: unknown calendar %q (options: %v)", ErrOutOfRange, o.cal, calendar.IDs())
	case !o.conv.valid():
		return Datetime{}, fmt.Errorf("%w: unknown convention %q (options: %v)", ErrOutOfRange, o.conv, Conventions())
	}

	date, err := calendar.New(year, month, day)
	if err != nil {
		return Datetime{}, fmt.Errorf("datetime.New: %w", err)
	}

	return Datetime{
		date:        date,
		hour:        o.hour,
		minute:      o.minute,
		second:      o.second,
		millisecond: o.millisecond,
		cal:         o.cal,
		conv:        o.conv,
	}, nil
}

// Year returns the calendar year.
func (d Datetime) Year() int { return d.date.Year() }

// Month returns the month in [1, 12].
func (d Datetime) Month() int { return d.date.Month() }

// Day returns the day of month.
func (d Datetime) Day() int { return d.date.Day() }

// Hour returns the hour in [0, 23].
func (d Datetime) Hour() int { return d.hour }

// Minute returns the minute in [0, 59].
func (d Datetime) Minute() int { return d.minute }

// Second returns the second in [0, 59].
func (d Datetime) Second() int { return d.second }

// Millisecond returns the millisecond in [0, 999].
func (d Datetime) Millisecond() int { return d.millisecond }

// Calendar returns the holiday-calendar tag.
func (d Datetime) Calendar() calendar.ID { return d.cal }

// Convention returns the day-count convention tag.
func (d Datetime) Convention() Convention { return d.conv }

// Serial returns the cached serial number of the calendar date.
func (d Datetime) Serial() int { return d.date.Serial() }

// String renders the canonical form YYYY-MM-DD HH:MM:SS.mmm.
// Diagnostic only, not an interchange format.
func (d Datetime) String() string {
	return fmt.Sprintf("%s %02d:%02d:%02d.%03d", d.date, d.hour, d.minute, d.second, d.millisecond)
}

// Verbose renders the canonical form plus the convention and calendar
// tags on separate lines.
func (d Datetime) Verbose() string {
	return fmt.Sprintf("Date: %s\nConvention: %s\nCalendar: %s", d, d.conv, d.cal)
}

// Key returns a canonical representation including both tags. Equal
// values produce equal keys, so Key is suitable as a map key where the
// compiler's struct equality can not be used.
func (d Datetime) Key() string {
	return fmt.Sprintf("%s %s %s", d, d.conv, d.cal)
}

// sameContext is the shared precondition of every binary operation.
func (d Datetime) sameContext(other Datetime) error {
	if d.conv != other.conv {
		return fmt.Errorf("%w: convention %s vs %s", ErrMismatchedContext, d.conv, other.conv)
	}
	if d.cal != other.cal {
		return fmt.Errorf("%w: calendar %s vs %s", ErrMismatchedContext, d.cal, other.cal)
	}
	return nil
}

// compare assumes matching context. Lexicographic over
// (serial, hour, minute, second, millisecond), which orders identically
// to (year, month, day, ...).
func (d Datetime) compare(other Datetime) int {
	pairs := [5][2]int{
		{d.date.Serial(), other.date.Serial()},
		{d.hour, other.hour},
		{d.minute, other.minute},
		{d.second, other.second},
		{d.millisecond, other.millisecond},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// Compare orders two values chronologically, returning -1, 0 or 1.
// Fails with ErrMismatchedContext unless both tags match.
func (d Datetime) Compare(other Datetime) (int, error) {
	if err := d.sameContext(other); err != nil {
		return 0, err
	}
	return d.compare(other), nil
}

// Equal reports whether the two values denote the same instant.
// Fails with ErrMismatchedContext unless both tags match.
func (d Datetime) Equal(other Datetime) (bool, error) {
	c, err := d.Compare(other)
	return c == 0, err
}

// Before reports whether d is chronologically before other.
func (d Datetime) Before(other Datetime) (bool, error) {
	c, err := d.Compare(other)
	return c < 0, err
}

// After reports whether d is chronologically after other.
func (d Datetime) After(other Datetime) (bool, error) {
	c, err := d.Compare(other)
	return c > 0, err
}

// TimeDelta returns the signed year fraction between d and other under
// the shared day-count convention: negative when d is chronologically
// after other, positive otherwise. This is the time-to-maturity input
// consumed by pricing models.
func (d Datetime) TimeDelta(other Datetime) (float64, error) {
	if err := d.sameContext(other); err != nil {
		return 0, err
	}
	if d.compare(other) > 0 {
		return -yearFraction(d.conv, d, other), nil
	}
	return yearFraction(d.conv, other, d), nil
}

// DaysUntil counts the exact calendar days from d to other via serial
// subtraction. Requires d <= other, else ErrOrderingViolation.
func (d Datetime) DaysUntil(other Datetime) (int, error) {
	if err := d.sameContext(other); err != nil {
		return 0, err
	}
	if d.compare(other) > 0 {
		return 0, fmt.Errorf("%w: %s is after %s", ErrOrderingViolation, d, other)
	}
	return other.date.Serial() - d.date.Serial(), nil
}

// DaysSince mirrors DaysUntil, requiring d >= other.
func (d Datetime) DaysSince(other Datetime) (int, error) {
	if err := d.sameContext(other); err != nil {
		return 0, err
	}
	if d.compare(other) < 0 {
		return 0, fmt.Errorf("%w: %s is before %s", ErrOrderingViolation, d, other)
	}
	return d.date.Serial() - other.date.Serial(), nil
}

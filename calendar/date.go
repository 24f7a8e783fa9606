package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a (year, month, day) triple does not exist
// in the proleptic Gregorian calendar.
var ErrInvalidDate = errors.New("invalid calendar date")

// Date is an immutable proleptic-Gregorian calendar date. The serial number
// (days since 1899-12-30, Excel-compatible) is computed once at construction
// so day-difference arithmetic stays O(1).
type Date struct {
	year   int
	month  int
	day    int
	serial int
}

// serialEpochOffset maps the civil-day count onto the 1899-12-30 epoch.
const serialEpochOffset = 693899

// New constructs a Date, rejecting triples that do not exist (Feb 30,
// Feb 29 outside leap years, month 13, ...).
func New(year, month, day int) (Date, error) {
	if month < 1 || month > 12 || day < 1 || day > daysInMonth(year, time.Month(month)) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Date{year: year, month: month, day: day, serial: serialFromYMD(year, month, day)}, nil
}

// FromSerial decodes a serial number. Every serial decodes to a valid date,
// so the conversion is total.
func FromSerial(serial int) Date {
	y, m, d := ymdFromSerial(serial)
	return Date{year: y, month: m, day: d, serial: serial}
}

// Year returns the calendar year.
func (d Date) Year() int { return d.year }

// Month returns the month in [1, 12].
func (d Date) Month() int { return d.month }

// Day returns the day of month in [1, 31].
func (d Date) Day() int { return d.day }

// Serial returns the contiguous day index (1899-12-30 = 0).
func (d Date) Serial() int { return d.serial }

// Weekday returns the day of week. 1899-12-30 was a Saturday.
func (d Date) Weekday() time.Weekday {
	return time.Weekday(floorMod(d.serial+6, 7))
}

// String renders the ISO form YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// serialFromYMD and ymdFromSerial implement the standard civil-calendar
// day-count conversion over 400-year eras.
func serialFromYMD(year, month, day int) int {
	y := year
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := month + 9
	if month > 2 {
		mp = month - 3
	}
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - serialEpochOffset
}

func ymdFromSerial(serial int) (year, month, day int) {
	z := serial + serialEpochOffset
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = doy - (153*mp+2)/5 + 1
	month = mp - 9
	if mp < 10 {
		month = mp + 3
	}
	if month <= 2 {
		y++
	}
	return y, month, day
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

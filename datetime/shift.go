package datetime

import (
	"math"

	"github.com/meenmo/quantdate/calendar"
)

// Delta is a shift amount. Months are deliberately absent: month lengths
// vary, so "one month" has no single well-defined day delta. Years are a
// fraction converted to whole days by round(years * 365).
type Delta struct {
	Years        float64
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// Shift returns a new value moved by delta, carrying from the smallest
// unit upward and applying the resulting day total to the serial number.
// The calendar and convention tags are retained. Shift is total: every
// serial decodes to a valid date, so no re-validation is needed.
func (d Datetime) Shift(delta Delta) Datetime {
	ms := d.millisecond + delta.Milliseconds
	newMillisecond := floorMod(ms, 1000)

	sec := d.second + delta.Seconds + floorDiv(ms, 1000)
	newSecond := floorMod(sec, 60)

	min := d.minute + delta.Minutes + floorDiv(sec, 60)
	newMinute := floorMod(min, 60)

	hr := d.hour + delta.Hours + floorDiv(min, 60)
	newHour := floorMod(hr, 24)

	dayShift := delta.Days + floorDiv(hr, 24) + int(math.Round(delta.Years*365))

	return Datetime{
		date:        calendar.FromSerial(d.date.Serial() + dayShift),
		hour:        newHour,
		minute:      newMinute,
		second:      newSecond,
		millisecond: newMillisecond,
		cal:         d.cal,
		conv:        d.conv,
	}
}

// floorDiv and floorMod round toward negative infinity so that negative
// deltas borrow from the next-coarser unit instead of truncating to zero.
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

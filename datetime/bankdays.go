package datetime

import (
	"fmt"

	"github.com/meenmo/quantdate/calendar"
)

// maxBankScan bounds consecutive non-business days tolerated while
// searching for a bank date. No real exchange closes for a year; the
// bound only fires on misconfigured holiday data.
const maxBankScan = 366

// IsBankDate reports whether the value falls on a business day of its
// calendar.
func (d Datetime) IsBankDate() bool {
	return calendar.IsBusinessDay(d.cal, d.date)
}

// NextBankDate returns the first business day strictly after d, keeping
// the time of day and both tags. d itself is never a candidate. Fails
// with ErrCalendarExhausted after maxBankScan non-business days.
func (d Datetime) NextBankDate() (Datetime, error) {
	return d.scanBankDate(1)
}

// PrevBankDate returns the first business day strictly before d, keeping
// the time of day and both tags.
func (d Datetime) PrevBankDate() (Datetime, error) {
	return d.scanBankDate(-1)
}

func (d Datetime) scanBankDate(step int) (Datetime, error) {
	next := d.Shift(Delta{Days: step})
	for i := 1; !next.IsBankDate(); i++ {
		if i >= maxBankScan {
			return Datetime{}, fmt.Errorf("%w: no %s business day within %d days of %s",
				ErrCalendarExhausted, d.cal, maxBankScan, d)
		}
		next = next.Shift(Delta{Days: step})
	}
	return next, nil
}

// BankDaysUntil counts business days from d up to other: inclusive of d
// when d itself is a business day, exclusive of other. Requires
// d <= other, else ErrOrderingViolation. Cost is O(calendar days
// spanned), one oracle query per day.
func (d Datetime) BankDaysUntil(other Datetime) (int, error) {
	if err := d.sameContext(other); err != nil {
		return 0, err
	}
	if d.compare(other) > 0 {
		return 0, fmt.Errorf("%w: %s is after %s", ErrOrderingViolation, d, other)
	}
	return bankDaysBetween(d, other), nil
}

// BankDaysSince mirrors BankDaysUntil, requiring d >= other.
func (d Datetime) BankDaysSince(other Datetime) (int, error) {
	if err := d.sameContext(other); err != nil {
		return 0, err
	}
	if d.compare(other) < 0 {
		return 0, fmt.Errorf("%w: %s is before %s", ErrOrderingViolation, d, other)
	}
	return bankDaysBetween(other, d), nil
}

// bankDaysBetween assumes matching context and start <= end. A business
// day on end's own date counts only while (date, start's time of day)
// still precedes end, matching the iterative scan semantics.
func bankDaysBetween(start, end Datetime) int {
	count := 0
	if start.IsBankDate() {
		count++
	}
	for s := start.date.Serial() + 1; ; s++ {
		if s > end.date.Serial() {
			break
		}
		if s == end.date.Serial() && start.todCompare(end) >= 0 {
			break
		}
		if calendar.IsBusinessDay(start.cal, calendar.FromSerial(s)) {
			count++
		}
	}
	return count
}

// todCompare orders the time-of-day fields only.
func (d Datetime) todCompare(other Datetime) int {
	pairs := [4][2]int{
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

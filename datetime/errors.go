package datetime

import "errors"

var (
	// ErrOutOfRange is returned when a constructor field is outside its
	// numeric domain or a calendar/convention tag is not in the closed set.
	ErrOutOfRange = errors.New("value out of range")

	// ErrMismatchedContext is returned when a binary operation receives
	// operands built under differing calendar or convention tags.
	ErrMismatchedContext = errors.New("mismatched calendar or convention")

	// ErrOrderingViolation is returned when an operation requiring ordered
	// operands receives them in the wrong order.
	ErrOrderingViolation = errors.New("operands in wrong chronological order")

	// ErrCalendarExhausted is returned when a bank-day scan finds no
	// business day within the safety bound, which only happens on
	// misconfigured holiday data.
	ErrCalendarExhausted = errors.New("no business day within scan bound")
)

// Invalid (year, month, day) triples surface the calendar oracle's
// calendar.ErrInvalidDate, wrapped with constructor context.

// Package calendar is the holiday-calendar oracle: it validates calendar
// dates, converts them to and from contiguous serial numbers, and answers
// business-day queries for a closed set of exchange calendars.
//
// Holiday tables are built once at package init from the embedded
// marketdata lists and never mutated afterwards, so all queries are safe
// for concurrent readers.
package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/meenmo/quantdate/marketdata/germany"
	"github.com/meenmo/quantdate/marketdata/london"
	"github.com/meenmo/quantdate/marketdata/nyse"
)

// ID identifies a holiday calendar.
type ID string

const (
	Eurex     ID = "Eurex"
	Frankfurt ID = "Frankfurt"
	Xetra     ID = "Xetra"
	London    ID = "London"
	NYSE      ID = "NYSE"
)

// CoverageStartYear and CoverageEndYear bound the embedded holiday data.
// Outside this window only weekends are recognised as non-business days.
const (
	CoverageStartYear = 2019
	CoverageEndYear   = 2027
)

var holidaySets map[ID]map[string]struct{}

func init() {
	holidaySets = map[ID]map[string]struct{}{
		Eurex:     toSet(germany.EurexHolidays),
		Frankfurt: toSet(germany.FrankfurtHolidays),
		Xetra:     toSet(germany.XetraHolidays),
		London:    toSet(london.ExchangeHolidays),
		NYSE:      toSet(nyse.Holidays),
	}
}

func toSet(dates []string) map[string]struct{} {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// IDs returns the supported calendars in a stable order.
func IDs() []ID {
	return []ID{Eurex, Frankfurt, Xetra, London, NYSE}
}

// ParseID resolves a calendar name against the closed set of calendars.
func ParseID(name string) (ID, error) {
	id := ID(name)
	if !id.Valid() {
		return "", fmt.Errorf("unknown calendar %q (options: %v)", name, IDs())
	}
	return id, nil
}

// Valid reports whether the ID is one of the supported calendars.
func (id ID) Valid() bool {
	_, ok := holidaySets[id]
	return ok
}

// IsBusinessDay reports whether d is a trading day on the given calendar:
// not a Saturday or Sunday and not in the calendar's holiday set.
func IsBusinessDay(cal ID, d Date) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	_, holiday := holidaySets[cal][d.String()]
	return !holiday
}

// Holidays returns a sorted copy of the calendar's embedded holiday dates
// in ISO form. Unknown calendars return nil.
func Holidays(cal ID) []string {
	set, ok := holidaySets[cal]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

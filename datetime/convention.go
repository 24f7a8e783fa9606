package datetime

import "fmt"

// Convention is a day-count convention. The set is closed; year-fraction
// dispatch is a switch over the four cases.
type Convention string

const (
	// Thirty360 is the 30/360 bond basis.
	Thirty360 Convention = "30/360"
	// Act365 divides the exact calendar-day count by 365.
	Act365 Convention = "ACT/365"
	// Act360 divides the exact calendar-day count by 360.
	Act360 Convention = "ACT/360"
	// Business252 divides the business-day count by 252. The only
	// convention that queries the holiday calendar, at O(days) cost.
	Business252 Convention = "Business/252"
)

// Conventions returns the supported day-count conventions in a stable order.
func Conventions() []Convention {
	return []Convention{Thirty360, Act365, Act360, Business252}
}

// ParseConvention resolves a convention name against the closed set.
func ParseConvention(name string) (Convention, error) {
	switch c := Convention(name); c {
	case Thirty360, Act365, Act360, Business252:
		return c, nil
	default:
		return "", fmt.Errorf("unknown day-count convention %q (options: %v)", name, Conventions())
	}
}

func (c Convention) valid() bool {
	switch c {
	case Thirty360, Act365, Act360, Business252:
		return true
	}
	return false
}

// timeDiff is the intraday year-fraction term shared by every convention.
// Computed to second precision; the millisecond field deliberately does
// not contribute.
func timeDiff(end, start Datetime) float64 {
	return float64(end.hour-start.hour)/8760 +
		float64(end.minute-start.minute)/525600 +
		float64(end.second-start.second)/31536000
}

// yearFraction computes the non-negative year fraction from start to end
// under the convention. end must not precede start; the sign is the
// caller's concern (see TimeDelta).
func yearFraction(c Convention, end, start Datetime) float64 {
	switch c {
	case Thirty360:
		days := 360*(end.date.Year()-start.date.Year()) +
			30*(end.date.Month()-start.date.Month()) +
			(end.date.Day() - start.date.Day())
		return float64(days)/360 + timeDiff(end, start)
	case Act365:
		return float64(end.date.Serial()-start.date.Serial())/365 + timeDiff(end, start)
	case Act360:
		return float64(end.date.Serial()-start.date.Serial())/360 + timeDiff(end, start)
	case Business252:
		return float64(bankDaysBetween(start, end))/252 + timeDiff(end, start)
	}
	// Unreachable: the constructor rejects unknown conventions.
	return 0
}

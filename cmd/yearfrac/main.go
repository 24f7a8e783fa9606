// Command yearfrac prints day counts and the signed year fraction between
// two datetimes under a chosen calendar and day-count convention.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/quantdate/calendar"
	"github.com/meenmo/quantdate/datetime"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("yearfrac", flag.ContinueOnError)
	fs.SetOutput(stderr)
	startArg := fs.String("start", "", `start datetime "YYYY-MM-DD[ HH:MM[:SS]]" (required)`)
	endArg := fs.String("end", "", `end datetime "YYYY-MM-DD[ HH:MM[:SS]]" (required)`)
	calArg := fs.String("calendar", string(calendar.Frankfurt), "holiday calendar (Eurex, Frankfurt, Xetra, London, NYSE)")
	convArg := fs.String("convention", string(datetime.Business252), "day-count convention (30/360, ACT/365, ACT/360, Business/252)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *startArg == "" || *endArg == "" {
		fmt.Fprintln(stderr, "yearfrac: -start and -end are required")
		fs.Usage()
		return 2
	}

	cal, err := calendar.ParseID(*calArg)
	if err != nil {
		fmt.Fprintf(stderr, "yearfrac: %v\n", err)
		return 2
	}
	conv, err := datetime.ParseConvention(*convArg)
	if err != nil {
		fmt.Fprintf(stderr, "yearfrac: %v\n", err)
		return 2
	}

	start, err := parseDatetime(*startArg, cal, conv)
	if err != nil {
		fmt.Fprintf(stderr, "yearfrac: -start: %v\n", err)
		return 2
	}
	end, err := parseDatetime(*endArg, cal, conv)
	if err != nil {
		fmt.Fprintf(stderr, "yearfrac: -end: %v\n", err)
		return 2
	}

	delta, err := start.TimeDelta(end)
	if err != nil {
		fmt.Fprintf(stderr, "yearfrac: %v\n", err)
		return 1
	}

	earlier, later := start, end
	if cmp, _ := start.Compare(end); cmp > 0 {
		earlier, later = end, start
	}
	days, err := earlier.DaysUntil(later)
	if err != nil {
		fmt.Fprintf(stderr, "yearfrac: %v\n", err)
		return 1
	}
	bankDays, err := earlier.BankDaysUntil(later)
	if err != nil {
		fmt.Fprintf(stderr, "yearfrac: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Start:         %s\n", start)
	fmt.Fprintf(stdout, "End:           %s\n", end)
	fmt.Fprintf(stdout, "Calendar:      %s\n", cal)
	fmt.Fprintf(stdout, "Convention:    %s\n", conv)
	fmt.Fprintf(stdout, "Calendar days: %d\n", days)
	fmt.Fprintf(stdout, "Bank days:     %d\n", bankDays)
	fmt.Fprintf(stdout, "Year fraction: %.10f\n", delta)
	return 0
}

// parseDatetime accepts "YYYY-MM-DD", "YYYY-MM-DD HH:MM" or
// "YYYY-MM-DD HH:MM:SS". A date without a time uses the 16:00 default.
func parseDatetime(s string, cal calendar.ID, conv datetime.Convention) (datetime.Datetime, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 || len(fields) > 2 {
		return datetime.Datetime{}, fmt.Errorf("expected \"YYYY-MM-DD[ HH:MM[:SS]]\", got %q", s)
	}

	var year, month, day int
	if _, err := fmt.Sscanf(fields[0], "%d-%d-%d", &year, &month, &day); err != nil {
		return datetime.Datetime{}, fmt.Errorf("bad date %q: %v", fields[0], err)
	}

	opts := []datetime.Option{datetime.WithCalendar(cal), datetime.WithConvention(conv)}
	if len(fields) == 2 {
		hour, minute, second := 0, 0, 0
		switch strings.Count(fields[1], ":") {
		case 1:
			if _, err := fmt.Sscanf(fields[1], "%d:%d", &hour, &minute); err != nil {
				return datetime.Datetime{}, fmt.Errorf("bad time %q: %v", fields[1], err)
			}
		case 2:
			if _, err := fmt.Sscanf(fields[1], "%d:%d:%d", &hour, &minute, &second); err != nil {
				return datetime.Datetime{}, fmt.Errorf("bad time %q: %v", fields[1], err)
			}
		default:
			return datetime.Datetime{}, fmt.Errorf("bad time %q", fields[1])
		}
		opts = append(opts, datetime.WithTime(hour, minute, second, 0))
	}

	return datetime.New(year, month, day, opts...)
}

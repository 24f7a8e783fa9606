// Command bankdays navigates and counts business days on a holiday
// calendar.
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
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "next":
		return runStep(args[1:], stdout, stderr, "next")
	case "prev":
		return runStep(args[1:], stdout, stderr, "prev")
	case "count":
		return runCount(args[1:], stdout, stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bankdays <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  next   First business day after a date")
	fmt.Fprintln(w, "  prev   Last business day before a date")
	fmt.Fprintln(w, "  count  Business days between two dates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `bankdays <command> -h` for command-specific help.")
}

func runStep(args []string, stdout, stderr io.Writer, direction string) int {
	fs := flag.NewFlagSet(direction, flag.ContinueOnError)
	fs.SetOutput(stderr)
	dateArg := fs.String("date", "", `date "YYYY-MM-DD" (required)`)
	calArg := fs.String("calendar", string(calendar.Frankfurt), "holiday calendar")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	d, code := parseDate(*dateArg, *calArg, stderr)
	if code != 0 {
		return code
	}

	var stepped datetime.Datetime
	var err error
	if direction == "next" {
		stepped, err = d.NextBankDate()
	} else {
		stepped, err = d.PrevBankDate()
	}
	if err != nil {
		fmt.Fprintf(stderr, "bankdays: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "%04d-%02d-%02d\n", stepped.Year(), stepped.Month(), stepped.Day())
	return 0
}

func runCount(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("count", flag.ContinueOnError)
	fs.SetOutput(stderr)
	startArg := fs.String("start", "", `start date "YYYY-MM-DD" (required)`)
	endArg := fs.String("end", "", `end date "YYYY-MM-DD" (required)`)
	calArg := fs.String("calendar", string(calendar.Frankfurt), "holiday calendar")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	start, code := parseDate(*startArg, *calArg, stderr)
	if code != 0 {
		return code
	}
	end, code := parseDate(*endArg, *calArg, stderr)
	if code != 0 {
		return code
	}

	count, err := start.BankDaysUntil(end)
	if err != nil {
		fmt.Fprintf(stderr, "bankdays: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "%d\n", count)
	return 0
}

func parseDate(s, calName string, stderr io.Writer) (datetime.Datetime, int) {
	if s == "" {
		fmt.Fprintln(stderr, "bankdays: a date flag is required")
		return datetime.Datetime{}, 2
	}
	cal, err := calendar.ParseID(calName)
	if err != nil {
		fmt.Fprintf(stderr, "bankdays: %v\n", err)
		return datetime.Datetime{}, 2
	}
	var year, month, day int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &year, &month, &day); err != nil {
		fmt.Fprintf(stderr, "bankdays: bad date %q: %v\n", s, err)
		return datetime.Datetime{}, 2
	}
	d, err := datetime.New(year, month, day, datetime.WithCalendar(cal))
	if err != nil {
		fmt.Fprintf(stderr, "bankdays: %v\n", err)
		return datetime.Datetime{}, 2
	}
	return d, 0
}

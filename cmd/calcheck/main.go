// Command calcheck diffs an external holiday source (YAML file or
// Postgres table) against the embedded calendar tables. Exit code 1
// means the sources disagree.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	_ "github.com/lib/pq"

	"github.com/meenmo/quantdate/calendar"
	"github.com/meenmo/quantdate/marketdata/holidaydb"
	"github.com/meenmo/quantdate/marketdata/holidayfile"
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
	case "file":
		return runFile(args[1:], stdout, stderr)
	case "db":
		return runDB(args[1:], stdout, stderr)
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
	fmt.Fprintln(w, "Usage: calcheck <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  file  Diff a YAML holiday file against the embedded calendars")
	fmt.Fprintln(w, "  db    Diff a Postgres holiday table against the embedded calendars")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `calcheck <command> -h` for command-specific help.")
}

func runFile(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("file", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pathArg := fs.String("path", "", "YAML holiday file (required)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *pathArg == "" {
		fmt.Fprintln(stderr, "calcheck: -path is required")
		fs.Usage()
		return 2
	}

	source, err := holidayfile.Load(*pathArg)
	if err != nil {
		fmt.Fprintf(stderr, "calcheck: %v\n", err)
		return 1
	}
	return diffAll(source, stdout, stderr)
}

func runDB(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("db", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dsnArg := fs.String("dsn", "", "Postgres connection string (required)")
	tableArg := fs.String("table", "holidays", "table with (calendar, holiday) rows")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *dsnArg == "" {
		fmt.Fprintln(stderr, "calcheck: -dsn is required")
		fs.Usage()
		return 2
	}

	db, err := sql.Open("postgres", *dsnArg)
	if err != nil {
		fmt.Fprintf(stderr, "calcheck: %v\n", err)
		return 1
	}
	defer db.Close()

	source, err := holidaydb.Load(context.Background(), db, *tableArg)
	if err != nil {
		fmt.Fprintf(stderr, "calcheck: %v\n", err)
		return 1
	}
	return diffAll(source, stdout, stderr)
}

func diffAll(source map[string][]string, stdout, stderr io.Writer) int {
	names := make([]string, 0, len(source))
	for name := range source {
		names = append(names, name)
	}
	sort.Strings(names)

	clean := true
	for _, name := range names {
		id, err := calendar.ParseID(name)
		if err != nil {
			fmt.Fprintf(stderr, "calcheck: %v\n", err)
			clean = false
			continue
		}
		missing, extra := diff(source[name], calendar.Holidays(id))
		if len(missing) == 0 && len(extra) == 0 {
			fmt.Fprintf(stdout, "%s: ok (%d dates)\n", name, len(source[name]))
			continue
		}
		clean = false
		fmt.Fprintf(stdout, "%s: %d missing from embedded, %d extra in embedded\n", name, len(missing), len(extra))
		for _, d := range missing {
			fmt.Fprintf(stdout, "  missing %s\n", d)
		}
		for _, d := range extra {
			fmt.Fprintf(stdout, "  extra   %s\n", d)
		}
	}
	if clean {
		return 0
	}
	return 1
}

// diff compares the external source against the embedded list, restricted
// to the year span the source actually covers so partial files do not
// flag every other embedded year as extra.
func diff(source, embedded []string) (missing, extra []string) {
	if len(source) == 0 {
		return nil, nil
	}
	minYear, maxYear := source[0][:4], source[len(source)-1][:4]

	set := make(map[string]struct{}, len(embedded))
	for _, d := range embedded {
		set[d] = struct{}{}
	}
	for _, d := range source {
		if _, ok := set[d]; !ok {
			missing = append(missing, d)
		}
	}

	srcSet := make(map[string]struct{}, len(source))
	for _, d := range source {
		srcSet[d] = struct{}{}
	}
	for _, d := range embedded {
		if d[:4] < minYear || d[:4] > maxYear {
			continue
		}
		if _, ok := srcSet[d]; !ok {
			extra = append(extra, d)
		}
	}
	return missing, extra
}

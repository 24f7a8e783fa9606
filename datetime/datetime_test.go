package datetime_test

import (
	"errors"
	"testing"

	"github.com/meenmo/quantdate/calendar"
	"github.com/meenmo/quantdate/datetime"
)

func mustNew(t *testing.T, year, month, day int, opts ...datetime.Option) datetime.Datetime {
	t.Helper()
	d, err := datetime.New(year, month, day, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d, %d): %v", year, month, day, err)
	}
	return d
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	d := mustNew(t, 2024, 3, 15)
	if d.Hour() != datetime.DefaultHour || d.Minute() != 0 || d.Second() != 0 || d.Millisecond() != 0 {
		t.Errorf("default time = %02d:%02d:%02d.%03d, want 16:00:00.000",
			d.Hour(), d.Minute(), d.Second(), d.Millisecond())
	}
	if d.Calendar() != calendar.Frankfurt {
		t.Errorf("default calendar = %s, want Frankfurt", d.Calendar())
	}
	if d.Convention() != datetime.Business252 {
		t.Errorf("default convention = %s, want Business/252", d.Convention())
	}
}

func TestAccessorsRoundTrip(t *testing.T) {
	t.Parallel()

	d := mustNew(t, 2024, 2, 29,
		datetime.WithTime(9, 30, 5, 250),
		datetime.WithCalendar(calendar.NYSE),
		datetime.WithConvention(datetime.Act365),
	)

	got := [7]int{d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second(), d.Millisecond()}
	want := [7]int{2024, 2, 29, 9, 30, 5, 250}
	if got != want {
		t.Errorf("accessors = %v, want %v", got, want)
	}
	if d.Calendar() != calendar.NYSE || d.Convention() != datetime.Act365 {
		t.Errorf("tags = %s/%s, want NYSE/ACT/365", d.Calendar(), d.Convention())
	}
}

func TestNewOutOfRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		year, month, day int
		opts             []datetime.Option
	}{
		{"month zero", 2024, 0, 10, nil},
		{"month thirteen", 2024, 13, 10, nil},
		{"day zero", 2024, 5, 0, nil},
		{"day thirty-two", 2024, 5, 32, nil},
		{"hour 24", 2024, 5, 10, []datetime.Option{datetime.WithTime(24, 0, 0, 0)}},
		{"negative hour", 2024, 5, 10, []datetime.Option{datetime.WithTime(-1, 0, 0, 0)}},
		{"minute 60", 2024, 5, 10, []datetime.Option{datetime.WithTime(12, 60, 0, 0)}},
		{"second 60", 2024, 5, 10, []datetime.Option{datetime.WithTime(12, 0, 60, 0)}},
		{"millisecond 1000", 2024, 5, 10, []datetime.Option{datetime.WithTime(12, 0, 0, 1000)}},
		{"unknown calendar", 2024, 5, 10, []datetime.Option{datetime.WithCalendar(calendar.ID("Tokyo"))}},
		{"unknown convention", 2024, 5, 10, []datetime.Option{datetime.WithConvention(datetime.Convention("ACT/366"))}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := datetime.New(tc.year, tc.month, tc.day, tc.opts...); !errors.Is(err, datetime.ErrOutOfRange) {
				t.Errorf("err = %v, want ErrOutOfRange", err)
			}
		})
	}
}

func TestNewInvalidCalendarDate(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ y, m, d int }{
		{2024, 2, 30},
		{2023, 2, 29},
		{2024, 11, 31},
	} {
		if _, err := datetime.New(tc.y, tc.m, tc.d); !errors.Is(err, calendar.ErrInvalidDate) {
			t.Errorf("New(%d, %d, %d): err = %v, want calendar.ErrInvalidDate", tc.y, tc.m, tc.d, err)
		}
	}
}

func TestCompareOrdering(t *testing.T) {
	t.Parallel()

	earlier := mustNew(t, 2024, 3, 15, datetime.WithTime(9, 0, 0, 0))
	later := mustNew(t, 2024, 3, 15, datetime.WithTime(16, 0, 0, 0))
	nextDay := mustNew(t, 2024, 3, 16, datetime.WithTime(9, 0, 0, 0))

	cases := []struct {
		name string
		a, b datetime.Datetime
		want int
	}{
		{"same instant", earlier, earlier, 0},
		{"time of day", earlier, later, -1},
		{"across days", nextDay, later, 1},
		{"millisecond tiebreak",
			mustNew(t, 2024, 3, 15, datetime.WithTime(16, 0, 0, 1)),
			later, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.Compare(tc.b)
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if got != tc.want {
				t.Errorf("Compare = %d, want %d", got, tc.want)
			}
		})
	}

	if eq, err := earlier.Equal(later); err != nil || eq {
		t.Errorf("Equal = %t, %v, want false, nil", eq, err)
	}
	if before, err := earlier.Before(later); err != nil || !before {
		t.Errorf("Before = %t, %v, want true, nil", before, err)
	}
	if after, err := nextDay.After(later); err != nil || !after {
		t.Errorf("After = %t, %v, want true, nil", after, err)
	}
}

func TestMismatchedContext(t *testing.T) {
	t.Parallel()

	base := mustNew(t, 2024, 3, 15)
	otherConv := mustNew(t, 2024, 3, 16, datetime.WithConvention(datetime.Act365))
	otherCal := mustNew(t, 2024, 3, 16, datetime.WithCalendar(calendar.NYSE))

	if _, err := base.Equal(otherConv); !errors.Is(err, datetime.ErrMismatchedContext) {
		t.Errorf("Equal across conventions: err = %v, want ErrMismatchedContext", err)
	}
	if _, err := base.Compare(otherCal); !errors.Is(err, datetime.ErrMismatchedContext) {
		t.Errorf("Compare across calendars: err = %v, want ErrMismatchedContext", err)
	}
	if _, err := base.TimeDelta(otherConv); !errors.Is(err, datetime.ErrMismatchedContext) {
		t.Errorf("TimeDelta across conventions: err = %v, want ErrMismatchedContext", err)
	}
	if _, err := base.DaysUntil(otherCal); !errors.Is(err, datetime.ErrMismatchedContext) {
		t.Errorf("DaysUntil across calendars: err = %v, want ErrMismatchedContext", err)
	}
	if _, err := base.BankDaysUntil(otherCal); !errors.Is(err, datetime.ErrMismatchedContext) {
		t.Errorf("BankDaysUntil across calendars: err = %v, want ErrMismatchedContext", err)
	}
}

func TestStringForms(t *testing.T) {
	t.Parallel()

	d := mustNew(t, 2024, 1, 2, datetime.WithTime(9, 5, 7, 42))
	if got := d.String(); got != "2024-01-02 09:05:07.042" {
		t.Errorf("String = %q", got)
	}
	want := "Date: 2024-01-02 09:05:07.042\nConvention: Business/252\nCalendar: Frankfurt"
	if got := d.Verbose(); got != want {
		t.Errorf("Verbose = %q, want %q", got, want)
	}
}

func TestKeyConsistentWithEquality(t *testing.T) {
	t.Parallel()

	a := mustNew(t, 2024, 6, 3, datetime.WithTime(10, 0, 0, 0), datetime.WithCalendar(calendar.London))
	b := mustNew(t, 2024, 6, 3, datetime.WithTime(10, 0, 0, 0), datetime.WithCalendar(calendar.London))
	c := mustNew(t, 2024, 6, 3, datetime.WithTime(10, 0, 0, 1), datetime.WithCalendar(calendar.London))

	if a.Key() != b.Key() {
		t.Errorf("equal values produced different keys: %q vs %q", a.Key(), b.Key())
	}
	if a.Key() == c.Key() {
		t.Errorf("distinct values share a key: %q", a.Key())
	}

	// Keys of equal values collide in a map, distinct values do not.
	seen := map[string]int{a.Key(): 1, b.Key(): 2, c.Key(): 3}
	if len(seen) != 2 {
		t.Errorf("map over keys has %d entries, want 2", len(seen))
	}
}

func TestDaysUntil(t *testing.T) {
	t.Parallel()

	nyse := func(y, m, d int) datetime.Datetime {
		return mustNew(t, y, m, d, datetime.WithCalendar(calendar.NYSE), datetime.WithConvention(datetime.Act365))
	}

	start := nyse(2024, 1, 1)
	end := nyse(2024, 12, 31)
	days, err := start.DaysUntil(end)
	if err != nil {
		t.Fatalf("DaysUntil: %v", err)
	}
	if days != 365 {
		t.Errorf("DaysUntil = %d, want 365", days)
	}

	// Additivity over a chain.
	mid := nyse(2024, 7, 4)
	first, err := start.DaysUntil(mid)
	if err != nil {
		t.Fatalf("DaysUntil: %v", err)
	}
	second, err := mid.DaysUntil(end)
	if err != nil {
		t.Fatalf("DaysUntil: %v", err)
	}
	if first+second != days {
		t.Errorf("chain %d + %d != %d", first, second, days)
	}

	since, err := end.DaysSince(start)
	if err != nil {
		t.Fatalf("DaysSince: %v", err)
	}
	if since != days {
		t.Errorf("DaysSince = %d, want %d", since, days)
	}

	if _, err := end.DaysUntil(start); !errors.Is(err, datetime.ErrOrderingViolation) {
		t.Errorf("reversed DaysUntil: err = %v, want ErrOrderingViolation", err)
	}
	if _, err := start.DaysSince(end); !errors.Is(err, datetime.ErrOrderingViolation) {
		t.Errorf("reversed DaysSince: err = %v, want ErrOrderingViolation", err)
	}
}

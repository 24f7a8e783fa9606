// Package holidaydb loads holiday calendars from a Postgres table with
// the shape
//
//	CREATE TABLE holidays (calendar TEXT NOT NULL, holiday DATE NOT NULL);
//
// The caller opens the *sql.DB; cmd/calcheck links the lib/pq driver.
package holidaydb

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/lib/pq"
)

// Load reads every (calendar, holiday) row from table, grouped by
// calendar with each list sorted ascending.
func Load(ctx context.Context, db *sql.DB, table string) (map[string][]string, error) {
	query := fmt.Sprintf("SELECT calendar, holiday FROM %s", pq.QuoteIdentifier(table))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("holidaydb.Load: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var cal string
		var holiday time.Time
		if err := rows.Scan(&cal, &holiday); err != nil {
			return nil, fmt.Errorf("holidaydb.Load: %w", err)
		}
		out[cal] = append(out[cal], holiday.Format("2006-01-02"))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("holidaydb.Load: %w", err)
	}

	for cal := range out {
		sort.Strings(out[cal])
	}
	return out, nil
}

// Package holidayfile loads holiday calendars from YAML documents of the
// form
//
//	NYSE:
//	  - 2024-01-01
//	  - 2024-01-15
//	Frankfurt:
//	  - 2024-01-01
//
// These files are inspection inputs for diffing against the embedded
// calendar tables, not a runtime mutation mechanism.
package holidayfile

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a YAML holiday document. Every date must parse
// as YYYY-MM-DD; each calendar's list is returned sorted and deduplicated.
func Load(path string) (map[string][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("holidayfile.Load: %w", err)
	}
	return Parse(raw)
}

// Parse validates an in-memory YAML holiday document.
func Parse(raw []byte) (map[string][]string, error) {
	var doc map[string][]string
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("holidayfile.Parse: %w", err)
	}

	out := make(map[string][]string, len(doc))
	for cal, dates := range doc {
		seen := make(map[string]struct{}, len(dates))
		clean := make([]string, 0, len(dates))
		for _, d := range dates {
			if _, err := time.Parse("2006-01-02", d); err != nil {
				return nil, fmt.Errorf("holidayfile.Parse: calendar %q: bad date %q", cal, d)
			}
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			clean = append(clean, d)
		}
		sort.Strings(clean)
		out[cal] = clean
	}
	return out, nil
}

package date

import (
	"fmt"
	"strings"
)

// Interval is the unit used to step through a date range when generating
// chart buckets. Only Daily is implemented today; the type exists so that
// coarser intervals can be added without changing call sites.
type Interval int

const (
	Daily Interval = iota
)

func (i Interval) String() string {
	switch i {
	case Daily:
		return "daily"
	default:
		panic(fmt.Sprintf("unknown interval %d", i))
	}
}

// ParseInterval parses a string into an Interval.
func ParseInterval(s string) (Interval, error) {
	switch strings.ToLower(s) {
	case "daily", "day":
		return Daily, nil
	default:
		return Daily, fmt.Errorf("unknown interval %q", s)
	}
}

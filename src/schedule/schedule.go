package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Frequency identifies one of the fixed backup cadences.
type Frequency string

const (
	Hourly  Frequency = "hourly"
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// All returns the frequencies in their canonical order.
func All() []Frequency {
	return []Frequency{Hourly, Daily, Weekly, Monthly}
}

// Parse validates a frequency string. Matching is exact; there is no
// case folding.
func Parse(s string) (Frequency, error) {
	switch Frequency(s) {
	case Hourly, Daily, Weekly, Monthly:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("schedule: unknown frequency %q (want hourly|daily|weekly|monthly)", s)
}

// Retain returns how many snapshots of this frequency are kept: a day of
// hourlies, a week of dailies, two months of weeklies, two years of monthlies.
func (f Frequency) Retain() int {
	switch f {
	case Hourly:
		return 24
	case Daily:
		return 7
	case Weekly:
		return 8
	case Monthly:
		return 24
	}
	return 0
}

// TimestampLayout is the snapshot timestamp format: local time with a
// numeric UTC offset, no separators within the date/time digits.
const TimestampLayout = "20060102150405-07:00"

const snapshotExt = ".sql.xz"

// SnapshotName returns the file name for a snapshot taken at ts.
func SnapshotName(ts time.Time, f Frequency) string {
	return ts.Format(TimestampLayout) + "_" + string(f) + snapshotExt
}

// SnapshotSuffix returns the name suffix shared by all snapshots of f.
func SnapshotSuffix(f Frequency) string {
	return "_" + string(f) + snapshotExt
}

// ParseSnapshotName extracts the timestamp and frequency from a snapshot
// file name produced by SnapshotName.
func ParseSnapshotName(name string) (time.Time, Frequency, error) {
	base, ok := strings.CutSuffix(name, snapshotExt)
	if !ok {
		return time.Time{}, "", fmt.Errorf("schedule: %q is not a snapshot name", name)
	}
	i := strings.LastIndex(base, "_")
	if i < 0 {
		return time.Time{}, "", fmt.Errorf("schedule: %q is not a snapshot name", name)
	}
	freq, err := Parse(base[i+1:])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("schedule: %q: %w", name, err)
	}
	ts, err := time.Parse(TimestampLayout, base[:i])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("schedule: %q: bad timestamp: %w", name, err)
	}
	return ts, freq, nil
}

// CalendarInterval mirrors a launchd StartCalendarInterval dict. Nil fields
// are omitted from the rendered plist.
type CalendarInterval struct {
	Minute  *int
	Hour    *int
	Day     *int
	Weekday *int
	Month   *int
}

// Interval returns the launchd calendar interval for f. The minute values
// are staggered so the agents never fire together.
func Interval(f Frequency) CalendarInterval {
	switch f {
	case Hourly:
		return CalendarInterval{Minute: intp(47)}
	case Daily:
		return CalendarInterval{Hour: intp(0), Minute: intp(24)}
	case Weekly:
		return CalendarInterval{Weekday: intp(0), Hour: intp(11), Minute: intp(23)}
	case Monthly:
		return CalendarInterval{Day: intp(1), Hour: intp(12), Minute: intp(18)}
	}
	return CalendarInterval{}
}

func intp(v int) *int { return &v }

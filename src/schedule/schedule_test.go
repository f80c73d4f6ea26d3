package schedule_test

import (
	"testing"
	"time"

	"notesbackup/src/schedule"
)

func TestParse(t *testing.T) {
	for _, s := range []string{"hourly", "daily", "weekly", "monthly"} {
		f, err := schedule.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if string(f) != s {
			t.Fatalf("Parse(%q) = %q", s, f)
		}
	}
	for _, s := range []string{"", "Hourly", "yearly", "hourly "} {
		if _, err := schedule.Parse(s); err == nil {
			t.Fatalf("Parse(%q): expected error", s)
		}
	}
}

func TestRetain(t *testing.T) {
	want := map[schedule.Frequency]int{
		schedule.Hourly:  24,
		schedule.Daily:   7,
		schedule.Weekly:  8,
		schedule.Monthly: 24,
	}
	for f, n := range want {
		if got := f.Retain(); got != n {
			t.Fatalf("%s.Retain() = %d, want %d", f, got, n)
		}
	}
}

func TestSnapshotNameRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 9, 0, time.FixedZone("", -5*3600))
	name := schedule.SnapshotName(ts, schedule.Daily)
	if name != "20240305140709-05:00_daily.sql.xz" {
		t.Fatalf("unexpected snapshot name %q", name)
	}

	gotTS, gotFreq, err := schedule.ParseSnapshotName(name)
	if err != nil {
		t.Fatalf("ParseSnapshotName(%q): %v", name, err)
	}
	if gotFreq != schedule.Daily {
		t.Fatalf("freq = %q, want daily", gotFreq)
	}
	if !gotTS.Equal(ts) {
		t.Fatalf("timestamp = %v, want %v", gotTS, ts)
	}
}

func TestParseSnapshotNameRejectsGarbage(t *testing.T) {
	for _, name := range []string{
		"notes.sql.xz",
		"20240305140709-05:00_yearly.sql.xz",
		"20240305140709-05:00_daily.sql",
		"_daily.sql.xz",
	} {
		if _, _, err := schedule.ParseSnapshotName(name); err == nil {
			t.Fatalf("ParseSnapshotName(%q): expected error", name)
		}
	}
}

func TestInterval(t *testing.T) {
	iv := schedule.Interval(schedule.Hourly)
	if iv.Minute == nil || *iv.Minute != 47 {
		t.Fatalf("hourly minute: %+v", iv)
	}
	if iv.Hour != nil || iv.Day != nil || iv.Weekday != nil || iv.Month != nil {
		t.Fatalf("hourly interval must only set Minute: %+v", iv)
	}

	iv = schedule.Interval(schedule.Monthly)
	if iv.Day == nil || *iv.Day != 1 || iv.Hour == nil || *iv.Hour != 12 || iv.Minute == nil || *iv.Minute != 18 {
		t.Fatalf("monthly interval: %+v", iv)
	}
}

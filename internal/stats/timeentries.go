package stats

import (
	"sort"
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// DayGroup is the set of time entries recorded on one calendar date.
type DayGroup struct {
	Date    time.Time // midnight UTC of the calendar date
	Entries []*domain.TimeEntry
	Minutes int
}

// GroupByDay buckets entries by calendar date, ignoring time of day. Entries
// keep their input order within a group; groups are newest first.
func GroupByDay(entries []*domain.TimeEntry) []DayGroup {
	index := make(map[time.Time]int)
	var groups []DayGroup
	for _, e := range entries {
		key := civil(e.Date)
		idx, ok := index[key]
		if !ok {
			idx = len(groups)
			index[key] = idx
			groups = append(groups, DayGroup{Date: key})
		}
		groups[idx].Entries = append(groups[idx].Entries, e)
		groups[idx].Minutes += e.Duration
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})
	if groups == nil {
		return []DayGroup{}
	}
	return groups
}

// TotalDuration sums entry durations in minutes.
func TotalDuration(entries []*domain.TimeEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Duration
	}
	return total
}

// FocusOnDay sums minutes recorded on the calendar date of day.
func FocusOnDay(entries []*domain.TimeEntry, day time.Time) int {
	total := 0
	for _, e := range entries {
		if sameDay(e.Date, day) {
			total += e.Duration
		}
	}
	return total
}

// FocusInWeek sums minutes recorded in the Monday-to-Sunday week containing ref.
func FocusInWeek(entries []*domain.TimeEntry, ref time.Time) int {
	start := weekStart(ref)
	end := start.AddDate(0, 0, 7)
	total := 0
	for _, e := range entries {
		d := civil(e.Date)
		if !d.Before(start) && d.Before(end) {
			total += e.Duration
		}
	}
	return total
}

// WeeklyGoalPct is minutes as a share of goal, clamped to 0-100.
func WeeklyGoalPct(minutes, goal int) float64 {
	p := pct(float64(minutes), float64(goal))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// DayFocus is the focus time recorded on one date.
type DayFocus struct {
	Date    time.Time
	Minutes int
}

// DailyFocus returns minutes per day for the given number of days ending on
// ref, oldest first.
func DailyFocus(entries []*domain.TimeEntry, ref time.Time, days int) []DayFocus {
	if days <= 0 {
		return []DayFocus{}
	}
	last := civil(ref)
	out := make([]DayFocus, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := last.AddDate(0, 0, -i)
		out = append(out, DayFocus{Date: d, Minutes: FocusOnDay(entries, d)})
	}
	return out
}

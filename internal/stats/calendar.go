package stats

import "time"

// civil reduces t to midnight UTC of its own calendar date.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return civil(a).Equal(civil(b))
}

func sameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}

// weekStart returns the Monday of the week containing t, as a civil date.
func weekStart(t time.Time) time.Time {
	c := civil(t)
	offset := (int(c.Weekday()) + 6) % 7
	return c.AddDate(0, 0, -offset)
}

func pct(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

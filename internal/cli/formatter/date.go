package formatter

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// ShortDate renders a numeric US date: "1/10/2025".
func ShortDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// LongDate renders a spelled-out date: "Friday, January 10, 2025".
func LongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// MonthYear renders "January 2025".
func MonthYear(t time.Time) string {
	return t.Format("January 2006")
}

// AgeString renders the sidebar age: "22Y 9M 26D old".
func AgeString(age domain.Age) string {
	return fmt.Sprintf("%dY %dM %dD old", age.Years, age.Months, age.Days)
}

// RelativeDateFrom returns a human-friendly relative date string from a
// reference time. Both dates are compared by calendar day.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := dayDiff(t, now)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// RelativeDateStyledFrom returns RelativeDateFrom with urgency coloring:
// red when overdue or within two days, yellow within a week.
func RelativeDateStyledFrom(t time.Time, now time.Time) string {
	text := RelativeDateFrom(t, now)
	days := dayDiff(t, now)

	switch {
	case days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	}
	return StyleFg.Render(text)
}

// HumanDateFrom returns "Today", "Yesterday" or "Jan 2, 2006".
func HumanDateFrom(t time.Time, now time.Time) string {
	switch dayDiff(t, now) {
	case 0:
		return "Today"
	case -1:
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestampFrom returns a relative timestamp for recent instants and
// falls back to HumanDateFrom.
func HumanTimestampFrom(t time.Time, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDateFrom(t, now)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDateFrom(t, now)
	}
}

// DueDate renders an optional due date relative to now, or "--".
func DueDate(t *time.Time, now time.Time) string {
	if t == nil {
		return Dim("--")
	}
	return RelativeDateStyledFrom(*t, now)
}

// dayDiff counts calendar days from now to t using each value's own date.
func dayDiff(t, now time.Time) int {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(math.Round(a.Sub(b).Hours() / 24))
}

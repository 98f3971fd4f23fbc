package formatter

import "fmt"

// Duration renders minutes as "3h 30m". Zero renders as "0h 0m".
func Duration(min int) string {
	if min < 0 {
		return "-" + Duration(-min)
	}
	return fmt.Sprintf("%dh %dm", min/60, min%60)
}

// Clock renders minutes as zero-padded "HH:MM". Hours are not capped at 24.
func Clock(min int) string {
	if min < 0 {
		return "-" + Clock(-min)
	}
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// FormatMinutes converts raw minutes into the short form used in tables:
// "2h 30m", "2h", "45m".
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

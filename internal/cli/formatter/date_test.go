package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	assert.Equal(t, "0h 0m", Duration(0))
	assert.Equal(t, "3h 30m", Duration(210))
	assert.Equal(t, "0h 45m", Duration(45))
	assert.Equal(t, "40h 0m", Duration(2400))
	assert.Equal(t, "-1h 5m", Duration(-65))
}

func TestClock(t *testing.T) {
	assert.Equal(t, "00:00", Clock(0))
	assert.Equal(t, "03:30", Clock(210))
	assert.Equal(t, "06:30", Clock(390))
	assert.Equal(t, "100:00", Clock(6000))
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{150, "2h 30m"},
		{61, "1h 1m"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.input))
		})
	}
}

func TestDateFormats(t *testing.T) {
	d := time.Date(2025, 1, 10, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "1/10/2025", ShortDate(d))
	assert.Equal(t, "Friday, January 10, 2025", LongDate(d))
	assert.Equal(t, "January 2025", MonthYear(d))
}

func TestAgeString(t *testing.T) {
	assert.Equal(t, "22Y 9M 26D old", AgeString(domain.Age{Years: 22, Months: 9, Days: 26}))
	assert.Equal(t, "0Y 0M 0D old", AgeString(domain.Age{}))
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"earlier today", now.Add(-11 * time.Hour), "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"10 days future", now.Add(10 * 24 * time.Hour), "In 10d"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "Today", HumanDateFrom(now, now))
	assert.Equal(t, "Yesterday", HumanDateFrom(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "Sep 30, 2022", HumanDateFrom(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), now))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestampFrom(now, now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "2h ago", HumanTimestampFrom(now.Add(-2*time.Hour), now))
	assert.Equal(t, "Jan 8, 2025", HumanTimestampFrom(now.Add(-48*time.Hour), now))
}

func TestDueDate(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "--", stripANSI(DueDate(nil, now)))
	assert.Equal(t, "In 5d", stripANSI(DueDate(&due, now)))
}

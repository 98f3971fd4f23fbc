// Package config reads bittrack settings from BITTRACK_* environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds process-wide settings. Command-line flags override it.
type Config struct {
	// DataPath is the seed file to load; empty means the bundled demo data.
	DataPath        string
	LogUseCases     bool
	DueSoonLimit    int
	WeeklyGoalMin   int
	AnalyticsMonths int
	CurrencySymbol  string
	// Now pins the reference date used for "today", "this week" and
	// "this month". Nil means the wall clock.
	Now *time.Time
}

// DefaultConfig returns a Config with the dashboard's stock values.
func DefaultConfig() Config {
	return Config{
		DueSoonLimit:    5,
		WeeklyGoalMin:   2400,
		AnalyticsMonths: 6,
		CurrencySymbol:  "Rs",
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or malformed values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BITTRACK_DATA"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("BITTRACK_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BITTRACK_DUE_SOON_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.DueSoonLimit = n
		}
	}
	if v := os.Getenv("BITTRACK_WEEKLY_GOAL_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WeeklyGoalMin = n
		}
	}
	if v := os.Getenv("BITTRACK_ANALYTICS_MONTHS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AnalyticsMonths = n
		}
	}
	if v := os.Getenv("BITTRACK_CURRENCY_SYMBOL"); v != "" {
		cfg.CurrencySymbol = v
	}
	if v := os.Getenv("BITTRACK_NOW"); v != "" {
		if t, err := ParseDay(v); err == nil {
			cfg.Now = &t
		}
	}

	return cfg
}

// ParseDay parses a YYYY-MM-DD reference date as midnight UTC.
func ParseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// Reference returns the pinned reference time, or clock() when none is set.
func (c Config) Reference(clock func() time.Time) time.Time {
	if c.Now != nil {
		return *c.Now
	}
	return clock()
}

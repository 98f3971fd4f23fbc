package domain

import "time"

type User struct {
	Name      string
	BirthDate time.Time
}

// Age is a calendar difference split into whole years, months and days.
type Age struct {
	Years  int
	Months int
	Days   int
}

// CalculateAge returns the calendar difference between birth and now.
// Both instants are reduced to dates in now's location first. A negative day
// difference borrows the length of the month preceding the one being
// borrowed from, repeating while a short month leaves days negative; a
// negative month difference borrows a year. A birth date after now yields
// the zero Age.
func CalculateAge(birth, now time.Time) Age {
	loc := now.Location()
	by, bm, bd := birth.In(loc).Date()
	ny, nm, nd := now.Date()

	if by > ny || (by == ny && (bm > nm || (bm == nm && bd > nd))) {
		return Age{}
	}

	years := ny - by
	months := int(nm) - int(bm)
	days := nd - bd

	borrowYear, borrowMonth := ny, nm
	for days < 0 {
		months--
		// Day 0 of a month is the last day of the month before it.
		days += time.Date(borrowYear, borrowMonth, 0, 0, 0, 0, 0, loc).Day()
		borrowMonth--
		if borrowMonth < time.January {
			borrowMonth = time.December
			borrowYear--
		}
	}

	for months < 0 {
		years--
		months += 12
	}

	return Age{Years: years, Months: months, Days: days}
}

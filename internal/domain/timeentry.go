package domain

import "time"

// TimeEntry is a block of focus time attributed to a project and, optionally, an issue.
type TimeEntry struct {
	ID          string
	ProjectID   string
	IssueID     *string
	Description string
	Duration    int // minutes
	Date        time.Time
	CreatedAt   time.Time
}

package domain

import "time"

type Issue struct {
	ID          string
	ProjectID   string
	MilestoneID *string
	Title       string
	Description string
	Tags        []string
	Priority    IssuePriority
	Status      IssueStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Comments    []Comment
}

// IsOpen reports whether the issue still needs work. In-progress counts as open.
func (i *Issue) IsOpen() bool {
	return i.Status != IssueClosed
}

// BelongsToMilestone reports whether the issue is linked to the given milestone.
func (i *Issue) BelongsToMilestone(milestoneID string) bool {
	return i.MilestoneID != nil && *i.MilestoneID == milestoneID
}

type Comment struct {
	ID        string
	IssueID   string
	Author    string
	Content   string
	CreatedAt time.Time
}

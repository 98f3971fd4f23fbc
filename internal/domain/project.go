package domain

import (
	"strings"
	"time"
)

type Project struct {
	ID             string
	Title          string
	Description    string
	Status         ProjectStatus
	Tags           []string
	Budget         int64
	CurrentVersion string
	Notes          string
	Links          []Link
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Link is an external resource attached to a project.
type Link struct {
	ID          string
	Title       string
	URL         string
	Description string
}

// HasTag reports whether the project carries tag, compared case-insensitively.
func (p *Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// DisplayID returns the best short identifier for display.
// IDs longer than 8 characters are truncated.
func (p *Project) DisplayID() string {
	if len(p.ID) > 8 {
		return p.ID[:8]
	}
	return p.ID
}

type Milestone struct {
	ID          string
	ProjectID   string
	Title       string
	Version     string
	Budget      int64
	Stage       MilestoneStage
	Description string
	CreatedAt   time.Time
	DueDate     *time.Time
}

// IsPaid reports whether the milestone budget has been received.
func (m *Milestone) IsPaid() bool {
	return m.Stage == StagePaymentReceived
}

package contract

import (
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/stats"
)

type ProjectListRequest struct {
	Query  string
	Status string
}

// Validate rejects a status filter that names no known status.
func (r ProjectListRequest) Validate() error {
	if r.Status == "" || r.Status == stats.FilterAll || domain.ValidProjectStatus(r.Status) {
		return nil
	}
	return invalid("unknown project status " + r.Status)
}

// ProjectSummary is a project with its live issue and payment figures.
type ProjectSummary struct {
	Project     *domain.Project
	OpenIssues  int
	TotalIssues int
	ProgressPct float64
	Payments    stats.Split
	LoggedMin   int
}

type ProjectListResponse struct {
	Projects []ProjectSummary
	// Total counts every project before filtering.
	Total int
}

type MilestoneView struct {
	Milestone *domain.Milestone
	Progress  stats.Progress
}

type ProjectDetailResponse struct {
	Summary       ProjectSummary
	Milestones    []MilestoneView
	Issues        []*domain.Issue
	RecentEntries []TimeEntryView
	Payments      []TransactionView
}

type MilestoneStageRequest struct {
	MilestoneID string
	Stage       string
}

func (r MilestoneStageRequest) Validate() error {
	switch {
	case r.MilestoneID == "":
		return invalid("milestone is required")
	case !domain.ValidMilestoneStage(r.Stage):
		return invalid("unknown milestone stage " + r.Stage)
	}
	return nil
}

package stats

import (
	"sort"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// OpenIssueCount counts issues whose status is not closed.
func OpenIssueCount(issues []*domain.Issue) int {
	n := 0
	for _, i := range issues {
		if i.IsOpen() {
			n++
		}
	}
	return n
}

// ClosedIssueCount counts issues whose status is closed.
func ClosedIssueCount(issues []*domain.Issue) int {
	return len(issues) - OpenIssueCount(issues)
}

// DueSoon returns up to n open issues that have a due date, earliest first.
// Issues without a due date are excluded. Ties keep input order.
func DueSoon(issues []*domain.Issue, n int) []*domain.Issue {
	if n <= 0 {
		return []*domain.Issue{}
	}
	due := make([]*domain.Issue, 0, len(issues))
	for _, i := range issues {
		if i.IsOpen() && i.DueDate != nil {
			due = append(due, i)
		}
	}
	sort.SliceStable(due, func(a, b int) bool {
		return due[a].DueDate.Before(*due[b].DueDate)
	})
	if len(due) > n {
		due = due[:n]
	}
	return due
}

// ProjectProgress is the share of closed issues, 0-100. No issues means 0.
func ProjectProgress(issues []*domain.Issue) float64 {
	total := len(issues)
	open := OpenIssueCount(issues)
	return pct(float64(total-open), float64(total))
}

// Progress is a completed/total count with its percentage.
type Progress struct {
	Completed int
	Total     int
	Pct       float64
}

// MilestoneProgress counts the issues linked to milestoneID and how many of
// them are closed.
func MilestoneProgress(milestoneID string, issues []*domain.Issue) Progress {
	var p Progress
	for _, i := range issues {
		if !i.BelongsToMilestone(milestoneID) {
			continue
		}
		p.Total++
		if !i.IsOpen() {
			p.Completed++
		}
	}
	p.Pct = pct(float64(p.Completed), float64(p.Total))
	return p
}

// PriorityCount is the number of open issues at one priority.
type PriorityCount struct {
	Priority domain.IssuePriority
	Open     int
}

// PriorityBreakdown counts open issues per priority, most urgent first.
// Every known priority appears, including those with zero issues.
func PriorityBreakdown(issues []*domain.Issue) []PriorityCount {
	counts := make(map[domain.IssuePriority]int, len(domain.IssuePriorities))
	for _, i := range issues {
		if i.IsOpen() {
			counts[i.Priority]++
		}
	}
	out := make([]PriorityCount, 0, len(domain.IssuePriorities))
	for idx := len(domain.IssuePriorities) - 1; idx >= 0; idx-- {
		p := domain.IssuePriorities[idx]
		out = append(out, PriorityCount{Priority: p, Open: counts[p]})
	}
	return out
}

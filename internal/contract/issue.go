package contract

import (
	"strings"
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
)

type DueSoonRequest struct {
	Now   *time.Time
	Limit int
}

type DueSoonResponse struct {
	AsOf      time.Time
	Issues    []IssueView
	OpenCount int
}

// NewIssueRequest creates an issue. MilestoneID must belong to ProjectID.
type NewIssueRequest struct {
	ProjectID   string
	MilestoneID string
	Title       string
	Description string
	Tags        []string
	Priority    string
	DueDate     *time.Time
}

func (r NewIssueRequest) Validate() error {
	switch {
	case r.ProjectID == "":
		return invalid("project is required")
	case strings.TrimSpace(r.Title) == "":
		return invalid("title is required")
	case r.Priority != "" && !domain.ValidIssuePriority(r.Priority):
		return invalid("unknown issue priority " + r.Priority)
	}
	return nil
}

type IssueStatusRequest struct {
	IssueID string
	Status  string
}

func (r IssueStatusRequest) Validate() error {
	switch {
	case r.IssueID == "":
		return invalid("issue is required")
	case !domain.ValidIssueStatus(r.Status):
		return invalid("unknown issue status " + r.Status)
	}
	return nil
}

// CommentRequest adds a comment. An empty Author means the profile name.
type CommentRequest struct {
	IssueID string
	Author  string
	Content string
}

func (r CommentRequest) Validate() error {
	switch {
	case r.IssueID == "":
		return invalid("issue is required")
	case strings.TrimSpace(r.Content) == "":
		return invalid("comment is empty")
	}
	return nil
}

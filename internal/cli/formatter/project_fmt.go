package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
)

const (
	projectBarWidth   = 10
	milestoneBarWidth = 8
	issueTitleWidth   = 36
)

// FormatProjectList renders project summaries inside a bordered box.
func FormatProjectList(resp *contract.ProjectListResponse) string {
	if len(resp.Projects) == 0 {
		return RenderBox("Projects", Dim(fmt.Sprintf("No projects match (0 of %d).", resp.Total)))
	}

	headers := []string{"ID", "NAME", "STATUS", "PROGRESS", "ISSUES", "BUDGET", "TAGS"}
	rows := make([][]string, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		rows = append(rows, []string{
			TruncID(p.Project.ID),
			Bold(p.Project.Title),
			StatusPill(p.Project.Status),
			RenderProgress(p.ProgressPct, projectBarWidth),
			fmt.Sprintf("%d/%d open", p.OpenIssues, p.TotalIssues),
			CurrencyCompact(p.Project.Budget),
			Tags(p.Project.Tags),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + Dim(fmt.Sprintf("%d of %d projects", len(resp.Projects), resp.Total)))
	return RenderBox("Projects", b.String())
}

// FormatProjectDetail renders one project with milestones, issues, time and
// payments.
func FormatProjectDetail(resp *contract.ProjectDetailResponse, now time.Time) string {
	p := resp.Summary.Project
	var b strings.Builder

	b.WriteString(Bold(p.Title) + "  " + StatusPill(p.Status) + "\n")
	if p.Description != "" {
		b.WriteString(Dim(p.Description) + "\n")
	}
	b.WriteString("\n")

	const w = 9
	b.WriteString(KeyValue("id", w, Dim(p.ID)) + "\n")
	b.WriteString(KeyValue("version", w, OrDash(p.CurrentVersion)) + "\n")
	b.WriteString(KeyValue("budget", w, Currency(p.Budget)) + "\n")
	b.WriteString(KeyValue("received", w, StyleGreen.Render(Currency(resp.Summary.Payments.Received))) + "\n")
	b.WriteString(KeyValue("pending", w, StyleYellow.Render(Currency(resp.Summary.Payments.Pending))) + "\n")
	b.WriteString(KeyValue("progress", w, RenderProgress(resp.Summary.ProgressPct, projectBarWidth)) + "\n")
	b.WriteString(KeyValue("logged", w, Duration(resp.Summary.LoggedMin)) + "\n")
	b.WriteString(KeyValue("tags", w, Tags(p.Tags)) + "\n")
	b.WriteString(KeyValue("created", w, ShortDate(p.CreatedAt)) + "\n")
	b.WriteString(KeyValue("updated", w, HumanDateFrom(p.UpdatedAt, now)) + "\n")

	if len(p.Links) > 0 {
		b.WriteString("\n" + Header("Links") + "\n")
		for _, l := range p.Links {
			line := "  " + Bold(l.Title) + "  " + StyleBlue.Render(l.URL)
			if l.Description != "" {
				line += "  " + Dim(l.Description)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n" + Header("Milestones") + "\n")
	if len(resp.Milestones) == 0 {
		b.WriteString(Dim("No milestones.") + "\n")
	} else {
		rows := make([][]string, 0, len(resp.Milestones))
		for _, mv := range resp.Milestones {
			m := mv.Milestone
			rows = append(rows, []string{
				Bold(m.Title),
				OrDash(m.Version),
				MilestoneStageLabel(m.Stage).Render(),
				RenderProgress(mv.Progress.Pct, milestoneBarWidth) + Dim(fmt.Sprintf(" %d/%d", mv.Progress.Completed, mv.Progress.Total)),
				CurrencyCompact(m.Budget),
				DueDate(m.DueDate, now),
			})
		}
		b.WriteString(RenderTable([]string{"MILESTONE", "VERSION", "STAGE", "ISSUES", "BUDGET", "DUE"}, rows))
	}

	b.WriteString("\n" + Header("Issues") + "\n")
	if len(resp.Issues) == 0 {
		b.WriteString(Dim("No issues.") + "\n")
	} else {
		rows := make([][]string, 0, len(resp.Issues))
		for _, i := range resp.Issues {
			rows = append(rows, []string{
				Truncate(i.Title, issueTitleWidth),
				IssueStatusLabel(i.Status).Render(),
				IssuePriorityLabel(i.Priority).Render(),
				DueDate(i.DueDate, now),
				commentCount(i),
			})
		}
		b.WriteString(RenderTable([]string{"ISSUE", "STATUS", "PRIORITY", "DUE", "COMMENTS"}, rows))
	}

	if len(resp.RecentEntries) > 0 {
		b.WriteString("\n" + Header("Recent Time") + "\n")
		b.WriteString(entryTable(resp.RecentEntries, now))
	}
	if len(resp.Payments) > 0 {
		b.WriteString("\n" + Header("Payments") + "\n")
		b.WriteString(transactionTable(resp.Payments))
	}

	return RenderBox("Project", b.String())
}

// FormatDueSoon renders the due-soon issue list.
func FormatDueSoon(resp *contract.DueSoonResponse) string {
	if len(resp.Issues) == 0 {
		return RenderBox("Due Soon", Dim("Nothing due."))
	}
	body := issueTable(resp.Issues, resp.AsOf) + "\n" + Dim(fmt.Sprintf("%d open issues", resp.OpenCount))
	return RenderBox("Due Soon", body)
}

func issueTable(views []contract.IssueView, now time.Time) string {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			Truncate(v.Issue.Title, issueTitleWidth),
			v.ProjectTitle,
			IssuePriorityLabel(v.Issue.Priority).Render(),
			IssueStatusLabel(v.Issue.Status).Render(),
			DueDate(v.Issue.DueDate, now),
		})
	}
	return RenderTable([]string{"ISSUE", "PROJECT", "PRIORITY", "STATUS", "DUE"}, rows)
}

func commentCount(i *domain.Issue) string {
	if len(i.Comments) == 0 {
		return Dim("0")
	}
	return fmt.Sprintf("%d", len(i.Comments))
}

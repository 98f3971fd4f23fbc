package formatter

import (
	"fmt"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
)

func checkMark() string { return StyleGreen.Render("✔") }

// FormatIssueSaved confirms a created or updated issue.
func FormatIssueSaved(verb string, issue *domain.Issue) string {
	return fmt.Sprintf("%s %s %s  %s %s  %s",
		checkMark(), verb, Bold(issue.Title),
		IssuePriorityLabel(issue.Priority).Render(),
		IssueStatusLabel(issue.Status).Render(),
		Dim(issue.ID))
}

func FormatCommentAdded(c *domain.Comment) string {
	return fmt.Sprintf("%s Comment by %s on %s: %s", checkMark(), Bold(c.Author), Dim(c.IssueID), c.Content)
}

func FormatMilestoneStage(view *contract.MilestoneView) string {
	m := view.Milestone
	return fmt.Sprintf("%s %s is now %s  %s %d/%d issues",
		checkMark(), Bold(m.Title),
		MilestoneStageLabel(m.Stage).Render(),
		RenderCompactBar(view.Progress.Pct/100, 10, false),
		view.Progress.Completed, view.Progress.Total)
}

// FormatTransactionAdded confirms a transaction and the new account balance.
func FormatTransactionAdded(resp *contract.AddTransactionResponse) string {
	v := resp.Transaction
	t := v.Transaction
	return fmt.Sprintf("%s %s %s · %s · %s\n  %s balance %s",
		checkMark(),
		Signed(Currency(t.Amount), t.Type == domain.TransactionIncome),
		OrDash(t.Description),
		OrDash(v.CategoryName),
		ShortDate(t.Date),
		Bold(v.AccountName),
		Currency(resp.Balance))
}

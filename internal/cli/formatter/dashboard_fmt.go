package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/charmbracelet/lipgloss"
)

const (
	statCardWidth    = 24
	goalBarWidth     = 24
	dashboardBarSize = 10
)

// FormatDashboard renders the home screen: greeting, headline cards, weekly
// goal, due-soon issues, active projects and recent activity.
func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder
	s := resp.Stats
	now := resp.GeneratedAt

	b.WriteString(Bold("Welcome back, "+OrDash(resp.User.Name)) + "\n")
	b.WriteString(Dim(LongDate(now)+"  ·  "+AgeString(resp.Age)) + "\n\n")

	row1 := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Projects", fmt.Sprintf("%d", s.TotalProjects), fmt.Sprintf("%d active", s.ActiveProjects)),
		statCard("Total Budget", CurrencyCompact(s.TotalBudget),
			StyleGreen.Render(CurrencyCompact(s.ReceivedPayments))+Dim(" received")),
		statCard("Pending", CurrencyCompact(s.PendingPayments), Dim("awaiting payment")),
	)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("This Month", netAmount(s.MonthlyNet()),
			StyleGreen.Render(CurrencyCompact(s.ThisMonthIncome))+Dim(" in  ")+
				StyleRed.Render(CurrencyCompact(s.ThisMonthExpenses))+Dim(" out")),
		statCard("Net Worth", CurrencyCompact(s.NetWorth), Dim("all accounts")),
		statCard("Focus Today", Duration(s.TodayFocusTime), Dim("week ")+Duration(s.WeeklyFocusTime)),
	)
	b.WriteString(row1 + "\n" + row2 + "\n\n")

	b.WriteString(Header("Weekly Goal") + "\n")
	b.WriteString(fmt.Sprintf("%s  %s of %s\n\n",
		RenderProgress(s.WeeklyGoalPct, goalBarWidth),
		Duration(s.WeeklyFocusTime),
		Duration(resp.WeeklyGoalMin)))

	b.WriteString(Header(fmt.Sprintf("Due Soon (%d open)", s.OpenIssues)) + "\n")
	if len(resp.DueSoon) == 0 {
		b.WriteString(Dim("Nothing due.") + "\n")
	} else {
		b.WriteString(issueTable(resp.DueSoon, now))
	}
	b.WriteString("\n")

	b.WriteString(Header("Active Projects") + "\n")
	if len(resp.ActiveProjects) == 0 {
		b.WriteString(Dim("No active projects.") + "\n")
	} else {
		rows := make([][]string, 0, len(resp.ActiveProjects))
		for _, p := range resp.ActiveProjects {
			rows = append(rows, []string{
				Bold(p.Project.Title),
				RenderProgress(p.ProgressPct, dashboardBarSize),
				fmt.Sprintf("%d/%d open", p.OpenIssues, p.TotalIssues),
				CurrencyCompact(p.Project.Budget),
			})
		}
		b.WriteString(RenderTable([]string{"PROJECT", "PROGRESS", "ISSUES", "BUDGET"}, rows))
	}
	b.WriteString("\n")

	b.WriteString(Header("Recent Time") + "\n")
	b.WriteString(entryTable(resp.RecentEntries, now))
	b.WriteString("\n")

	b.WriteString(Header("Recent Transactions") + "\n")
	b.WriteString(transactionTable(resp.RecentTransactions))

	return RenderBox("BIT Track", b.String())
}

func statCard(title, value, sub string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(statCardWidth)
	return style.Render(Dim(strings.ToUpper(title)) + "\n" + Bold(value) + "\n" + sub)
}

func netAmount(v int64) string {
	if v < 0 {
		return StyleRed.Render(CurrencyCompact(v))
	}
	return StyleGreen.Render(CurrencyCompact(v))
}

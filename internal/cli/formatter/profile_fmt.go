package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bittrack/internal/contract"
)

// FormatProfile renders the user card.
func FormatProfile(resp *contract.ProfileResponse) string {
	var b strings.Builder
	b.WriteString(Bold(OrDash(resp.User.Name)) + "\n")
	b.WriteString(StylePurple.Render(AgeString(resp.Age)) + "\n\n")

	const w = 9
	born := Dim("--")
	if !resp.User.BirthDate.IsZero() {
		born = LongDate(resp.User.BirthDate)
	}
	b.WriteString(KeyValue("born", w, born) + "\n")
	b.WriteString(KeyValue("as of", w, ShortDate(resp.AsOf)) + "\n")
	b.WriteString(KeyValue("projects", w, fmt.Sprintf("%d (%d active)", resp.Projects, resp.ActiveProjects)) + "\n")
	b.WriteString(KeyValue("open", w, fmt.Sprintf("%d issues", resp.OpenIssues)) + "\n")
	b.WriteString(KeyValue("logged", w, Duration(resp.LoggedMin)) + "\n")
	b.WriteString(KeyValue("net worth", w, Currency(resp.NetWorth)) + "\n")
	return RenderBox("Profile", b.String())
}

// FormatCheck renders record counts and any integrity violations.
func FormatCheck(resp *contract.CheckResponse) string {
	var b strings.Builder
	c := resp.Counts
	rows := [][]string{
		{"projects", fmt.Sprintf("%d", c.Projects)},
		{"milestones", fmt.Sprintf("%d", c.Milestones)},
		{"issues", fmt.Sprintf("%d", c.Issues)},
		{"comments", fmt.Sprintf("%d", c.Comments)},
		{"time entries", fmt.Sprintf("%d", c.TimeEntries)},
		{"accounts", fmt.Sprintf("%d", c.Accounts)},
		{"transactions", fmt.Sprintf("%d", c.Transactions)},
		{"categories", fmt.Sprintf("%d", c.Categories)},
	}
	b.WriteString(RenderTable([]string{"RECORDS", "COUNT"}, rows))
	b.WriteString("\n")

	if len(resp.Violations) == 0 {
		b.WriteString(StyleGreen.Render("✔ No integrity problems found."))
		return RenderBox("Check", b.String())
	}
	b.WriteString(StyleRed.Render(fmt.Sprintf("%d problems found:", len(resp.Violations))) + "\n")
	for _, v := range resp.Violations {
		b.WriteString(StyleYellow.Render("  WARNING: "+v) + "\n")
	}
	return RenderBox("Check", b.String())
}

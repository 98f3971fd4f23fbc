package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/dustin/go-humanize"
)

const timeGoalBarWidth = 20

// FormatTimeList renders focus totals followed by entries grouped per day,
// newest day first.
func FormatTimeList(resp *contract.TimeListResponse, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		Dim("TODAY"), Bold(Clock(resp.TodayMin)),
		Dim("WEEK"), Bold(Clock(resp.WeekMin)),
		Dim("TOTAL"), Bold(Duration(resp.TotalMin))))
	b.WriteString(fmt.Sprintf("%s %s of %s\n",
		RenderProgress(resp.WeeklyGoalPct, timeGoalBarWidth),
		Duration(resp.WeekMin), Duration(resp.WeeklyGoalMin)))

	if len(resp.Groups) == 0 {
		b.WriteString("\n" + Dim("No time logged yet."))
		return RenderBox("Time Tracking", b.String())
	}

	for _, g := range resp.Groups {
		b.WriteString("\n")
		label := fmt.Sprintf("%s (%s)", LongDate(g.Date), HumanDateFrom(g.Date, now))
		b.WriteString(Header(label) + "\n")
		for _, v := range g.Entries {
			b.WriteString(entryLine(v) + "\n")
		}
		noun := "entries"
		if len(g.Entries) == 1 {
			noun = "entry"
		}
		b.WriteString(Dim(fmt.Sprintf("  %s %s · %s", humanize.Comma(int64(len(g.Entries))), noun, Duration(g.Minutes))) + "\n")
	}

	return RenderBox("Time Tracking", b.String())
}

// FormatTimeLogged confirms a newly recorded entry.
func FormatTimeLogged(entry *domain.TimeEntry, projectTitle string) string {
	return fmt.Sprintf("%s Logged %s on %s for %s",
		StyleGreen.Render("✔"),
		Bold(Duration(entry.Duration)),
		ShortDate(entry.Date),
		Bold(projectTitle))
}

func entryLine(v contract.TimeEntryView) string {
	desc := v.Entry.Description
	if desc == "" {
		desc = Dim("(no description)")
	}
	line := fmt.Sprintf("  %s  %s  %s", StyleBlue.Render(Clock(v.Entry.Duration)), desc, Dim(v.ProjectTitle))
	if v.IssueTitle != "" {
		line += Dim(" · " + v.IssueTitle)
	}
	return line
}

func entryTable(views []contract.TimeEntryView, now time.Time) string {
	if len(views) == 0 {
		return Dim("No time logged yet.") + "\n"
	}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			HumanDateFrom(v.Entry.Date, now),
			OrDash(v.Entry.Description),
			v.ProjectTitle,
			Duration(v.Entry.Duration),
		})
	}
	return RenderTable([]string{"DATE", "DESCRIPTION", "PROJECT", "DURATION"}, rows)
}

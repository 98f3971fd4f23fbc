package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bittrack/internal/contract"
)

const chartBarWidth = 24

// FormatAnalytics renders cash flow per month, focus per day, issue
// priorities, tag shares and project status counts.
func FormatAnalytics(resp *contract.AnalyticsResponse) string {
	var b strings.Builder

	b.WriteString(Header("Cash Flow") + "\n")
	var maxAmount int64
	for _, m := range resp.Months {
		maxAmount = max(maxAmount, m.Income, m.Expenses)
	}
	rows := make([][]string, 0, len(resp.Months))
	for _, m := range resp.Months {
		rows = append(rows, []string{
			fmt.Sprintf("%s %d", m.Month.String()[:3], m.Year),
			StyleGreen.Render(ratioBar(m.Income, maxAmount)) + " " + CurrencyCompact(m.Income),
			StyleRed.Render(ratioBar(m.Expenses, maxAmount)) + " " + CurrencyCompact(m.Expenses),
			netAmount(m.Net()),
		})
	}
	b.WriteString(RenderTableRight([]string{"MONTH", "INCOME", "EXPENSES", "NET"}, rows, 3))

	b.WriteString("\n" + Header("Focus") + "\n")
	maxMin := 0
	for _, d := range resp.DailyFocus {
		maxMin = max(maxMin, d.Minutes)
	}
	for _, d := range resp.DailyFocus {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			Dim(d.Date.Format("Mon 01/02")),
			StyleBlue.Render(ratioBar(int64(d.Minutes), int64(maxMin))),
			Duration(d.Minutes)))
	}
	b.WriteString(Dim(fmt.Sprintf("  %s over %d days", Duration(resp.FocusTotal), len(resp.DailyFocus))) + "\n")

	b.WriteString("\n" + Header("Open Issues by Priority") + "\n")
	prioRows := make([][]string, 0, len(resp.Priorities))
	for _, p := range resp.Priorities {
		prioRows = append(prioRows, []string{IssuePriorityLabel(p.Priority).Render(), fmt.Sprintf("%d", p.Open)})
	}
	b.WriteString(RenderTableRight([]string{"PRIORITY", "OPEN"}, prioRows, 1))

	b.WriteString("\n" + Header("Projects") + "\n")
	statusParts := make([]string, 0, len(resp.StatusCounts))
	for _, sc := range resp.StatusCounts {
		statusParts = append(statusParts, fmt.Sprintf("%s %d", ProjectStatusLabel(sc.Status).Render(), sc.Count))
	}
	b.WriteString("  " + strings.Join(statusParts, "   ") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n",
		Dim("RECEIVED"), StyleGreen.Render(Currency(resp.Payments.Received)),
		Dim("PENDING"), StyleYellow.Render(Currency(resp.Payments.Pending))))

	if len(resp.Tags) > 0 {
		b.WriteString("\n" + Header("Tags") + "\n")
		tagRows := make([][]string, 0, len(resp.Tags))
		for _, t := range resp.Tags {
			tagRows = append(tagRows, []string{
				StylePurple.Render("#" + t.Tag),
				RenderCompactBar(t.Pct/100, chartBarWidth/2, false),
				fmt.Sprintf("%.0f%%", t.Pct),
			})
		}
		b.WriteString(RenderTable([]string{"TAG", "SHARE", "%"}, tagRows))
	}

	return RenderBox("Analytics", b.String())
}

// ratioBar draws v relative to the largest value in a chart.
func ratioBar(v, largest int64) string {
	if largest <= 0 {
		return bar(0, chartBarWidth)
	}
	return bar(float64(v)/float64(largest), chartBarWidth)
}

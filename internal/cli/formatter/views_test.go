package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/stats"
	"github.com/stretchr/testify/assert"
)

var viewNow = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func viewProject() *domain.Project {
	return &domain.Project{
		ID:          "proj1",
		Title:       "TechStartup Website",
		Description: "Modern SaaS landing page",
		Status:      domain.ProjectActive,
		Tags:        []string{"web", "saas"},
		Budget:      350000,
		Links:       []domain.Link{{ID: "l1", Title: "Figma Design", URL: "https://figma.com/example"}},
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   viewNow,
	}
}

func viewIssue() *domain.Issue {
	due := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	return &domain.Issue{
		ID:        "issue1",
		ProjectID: "proj1",
		Title:     "Design landing page mockup",
		Priority:  domain.PriorityHigh,
		Status:    domain.IssueInProgress,
		DueDate:   &due,
	}
}

func viewTransaction() contract.TransactionView {
	return contract.TransactionView{
		Transaction: &domain.Transaction{
			ID: "trans2", Type: domain.TransactionExpense, Amount: 3500,
			Description: "Lunch with team", Date: viewNow,
		},
		CategoryName:  "Food",
		CategoryColor: "#ef4444",
		AccountName:   "Cash",
	}
}

func TestFormatDashboard(t *testing.T) {
	resp := &contract.DashboardResponse{
		GeneratedAt: viewNow,
		User:        domain.User{Name: "John Doe"},
		Age:         domain.Age{Years: 22, Months: 9, Days: 26},
		Stats: domain.DashboardStats{
			TotalProjects: 2, ActiveProjects: 1, TotalBudget: 850000,
			ReceivedPayments: 200000, PendingPayments: 230000,
			ThisMonthIncome: 205000, ThisMonthExpenses: 4700, NetWorth: 93500,
			TodayFocusTime: 180, WeeklyFocusTime: 390, WeeklyGoalPct: 16.25,
			OpenIssues: 3, DueSoonIssues: 1,
		},
		WeeklyGoalMin:      2400,
		DueSoon:            []contract.IssueView{{Issue: viewIssue(), ProjectTitle: "TechStartup Website"}},
		ActiveProjects:     []contract.ProjectSummary{{Project: viewProject(), OpenIssues: 3, TotalIssues: 3}},
		RecentTransactions: []contract.TransactionView{viewTransaction()},
	}

	got := stripANSI(FormatDashboard(resp))
	assert.Contains(t, got, "Welcome back, John Doe")
	assert.Contains(t, got, "Friday, January 10, 2025")
	assert.Contains(t, got, "22Y 9M 26D old")
	assert.Contains(t, got, "Rs 850K")
	assert.Contains(t, got, "Rs 200K")
	assert.Contains(t, got, "Rs 93.5K")
	assert.Contains(t, got, "3h 0m")
	assert.Contains(t, got, "6h 30m of 40h 0m")
	assert.Contains(t, got, "DUE SOON (3 OPEN)")
	assert.Contains(t, got, "Design landing page mockup")
	assert.Contains(t, got, "In 5d")
	assert.Contains(t, got, "3/3 open")
	assert.Contains(t, got, "No time logged yet.")
	assert.Contains(t, got, "-Rs 3,500")
}

func TestFormatProjectList(t *testing.T) {
	resp := &contract.ProjectListResponse{
		Projects: []contract.ProjectSummary{{Project: viewProject(), OpenIssues: 2, TotalIssues: 4, ProgressPct: 50}},
		Total:    2,
	}
	got := stripANSI(FormatProjectList(resp))
	assert.Contains(t, got, "TechStartup Website")
	assert.Contains(t, got, "● Active")
	assert.Contains(t, got, " 50%")
	assert.Contains(t, got, "2/4 open")
	assert.Contains(t, got, "#web #saas")
	assert.Contains(t, got, "1 of 2 projects")

	empty := stripANSI(FormatProjectList(&contract.ProjectListResponse{Total: 2}))
	assert.Contains(t, empty, "No projects match (0 of 2).")
}

func TestFormatProjectDetail(t *testing.T) {
	due := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	resp := &contract.ProjectDetailResponse{
		Summary: contract.ProjectSummary{
			Project:   viewProject(),
			Payments:  stats.Split{Received: 0, Pending: 230000},
			LoggedMin: 270,
		},
		Milestones: []contract.MilestoneView{{
			Milestone: &domain.Milestone{ID: "mile1", Title: "MVP Launch", Version: "1.0.0", Budget: 150000, Stage: domain.StageWorking, DueDate: &due},
			Progress:  stats.Progress{Completed: 1, Total: 2, Pct: 50},
		}},
		Issues: []*domain.Issue{viewIssue()},
	}

	got := stripANSI(FormatProjectDetail(resp, viewNow))
	assert.Contains(t, got, "Rs 350,000")
	assert.Contains(t, got, "Rs 230,000")
	assert.Contains(t, got, "4h 30m")
	assert.Contains(t, got, "Figma Design")
	assert.Contains(t, got, "MVP Launch")
	assert.Contains(t, got, "● Working")
	assert.Contains(t, got, "1/2")
	assert.Contains(t, got, "● In Progress")
	assert.Contains(t, got, "1/1/2025")
	assert.NotContains(t, got, "PAYMENTS")
}

func TestFormatTimeList(t *testing.T) {
	entry := func(id, desc string, min int) contract.TimeEntryView {
		return contract.TimeEntryView{
			Entry:        &domain.TimeEntry{ID: id, Description: desc, Duration: min, Date: viewNow},
			ProjectTitle: "TechStartup Website",
		}
	}
	resp := &contract.TimeListResponse{
		Groups: []contract.DayGroupView{{
			Date:    viewNow,
			Minutes: 210,
			Entries: []contract.TimeEntryView{entry("a", "Design", 180), entry("b", "", 30)},
		}},
		TodayMin: 210, WeekMin: 390, TotalMin: 390, WeeklyGoalMin: 2400, WeeklyGoalPct: 16.25,
	}

	got := stripANSI(FormatTimeList(resp, viewNow))
	assert.Contains(t, got, "TODAY 03:30")
	assert.Contains(t, got, "WEEK 06:30")
	assert.Contains(t, got, "FRIDAY, JANUARY 10, 2025 (TODAY)")
	assert.Contains(t, got, "03:00  Design")
	assert.Contains(t, got, "(no description)")
	assert.Contains(t, got, "2 entries · 3h 30m")

	empty := stripANSI(FormatTimeList(&contract.TimeListResponse{WeeklyGoalMin: 2400}, viewNow))
	assert.Contains(t, empty, "No time logged yet.")
}

func TestFormatTimeLogged(t *testing.T) {
	got := stripANSI(FormatTimeLogged(&domain.TimeEntry{Duration: 45, Date: viewNow}, "Site"))
	assert.Equal(t, "✔ Logged 0h 45m on 1/10/2025 for Site", got)
}

func TestFormatWallet(t *testing.T) {
	resp := &contract.WalletResponse{
		Month: viewNow,
		Accounts: []*domain.WalletAccount{
			{ID: "acc1", Name: "Cash", Type: domain.AccountCash, Balance: 25000},
			{ID: "acc3", Name: "with Father", Type: domain.AccountWithPerson, Balance: 50000},
		},
		DefaultAccountID: "acc3",
		NetWorth:         75000,
		MonthIncome:      205000,
		MonthExpenses:    4700,
		Recent:           []contract.TransactionView{viewTransaction()},
	}

	got := stripANSI(FormatWallet(resp))
	assert.Contains(t, got, "NET WORTH Rs 75,000")
	assert.Contains(t, got, "With Person")
	assert.Contains(t, got, "★ default")
	assert.Contains(t, got, "JANUARY 2025")
	assert.Contains(t, got, "Rs 205,000")
	assert.Contains(t, got, "Rs 4,700")
	assert.Contains(t, got, "Lunch with team")
	assert.Contains(t, got, "● Food")
}

func TestFormatTransactions(t *testing.T) {
	got := stripANSI(FormatTransactions(&contract.TransactionListResponse{
		Transactions: []contract.TransactionView{viewTransaction()},
		Expenses:     3500,
	}))
	assert.Contains(t, got, "1/10/2025")
	assert.Contains(t, got, "-Rs 3,500")
	assert.Contains(t, got, "OUT Rs 3,500")

	assert.Contains(t, stripANSI(FormatTransactions(&contract.TransactionListResponse{})), "No transactions match.")
}

func TestFormatAnalytics(t *testing.T) {
	resp := &contract.AnalyticsResponse{
		GeneratedAt: viewNow,
		Months: []stats.MonthTotals{
			{Year: 2024, Month: time.December},
			{Year: 2025, Month: time.January, Income: 205000, Expenses: 4700},
		},
		DailyFocus: []stats.DayFocus{{Date: viewNow.AddDate(0, 0, -1), Minutes: 90}, {Date: viewNow, Minutes: 180}},
		FocusTotal: 270,
		Priorities: []stats.PriorityCount{{Priority: domain.PriorityCritical, Open: 1}},
		Tags:       []stats.TagShare{{Tag: "web", Count: 1, Pct: 50}},
		StatusCounts: []contract.StatusCount{
			{Status: domain.ProjectActive, Count: 1},
		},
		Payments: stats.Split{Received: 200000, Pending: 230000},
	}

	got := stripANSI(FormatAnalytics(resp))
	assert.Contains(t, got, "Dec 2024")
	assert.Contains(t, got, "Jan 2025")
	assert.Contains(t, got, "Rs 200.3K")
	assert.Contains(t, got, "Fri 01/10")
	assert.Contains(t, got, "4h 30m over 2 days")
	assert.Contains(t, got, "▲ Critical")
	assert.Contains(t, got, "#web")
	assert.Contains(t, got, "50%")
	assert.Contains(t, got, "RECEIVED Rs 200,000")
}

func TestFormatSettings(t *testing.T) {
	resp := &contract.SettingsResponse{
		Settings: domain.Settings{
			Theme:                 domain.ThemeDark,
			DefaultPaymentAccount: "acc3",
			IncomeCategories:      []domain.TransactionCategory{{ID: "1", Name: "Salary", Type: domain.TransactionIncome, Color: "#10b981"}},
			Discord: domain.DiscordSettings{
				Notifications: domain.DiscordNotifications{ProjectCreated: true},
			},
		},
		Accounts: []*domain.WalletAccount{{ID: "acc3", Name: "with Father"}},
		Saved:    false,
	}

	got := stripANSI(FormatSettings(resp))
	assert.Contains(t, got, "☾ Dark")
	assert.Contains(t, got, "with Father (acc3)")
	assert.Contains(t, got, "Unsaved changes")
	assert.Contains(t, got, "Salary")
	assert.Contains(t, got, "None.")
	assert.Contains(t, got, "PROJECT CREATED")
	assert.Contains(t, got, "● on")
	assert.Contains(t, got, "○ off")
}

func TestFormatProfileAndCheck(t *testing.T) {
	profile := stripANSI(FormatProfile(&contract.ProfileResponse{
		User:     domain.User{Name: "John Doe", BirthDate: time.Date(2002, 3, 15, 0, 0, 0, 0, time.UTC)},
		Age:      domain.Age{Years: 22, Months: 9, Days: 26},
		AsOf:     viewNow,
		Projects: 2, ActiveProjects: 1, OpenIssues: 3, LoggedMin: 390, NetWorth: 93500,
	}))
	assert.Contains(t, profile, "22Y 9M 26D old")
	assert.Contains(t, profile, "Friday, March 15, 2002")
	assert.Contains(t, profile, "2 (1 active)")
	assert.Contains(t, profile, "Rs 93,500")

	clean := stripANSI(FormatCheck(&contract.CheckResponse{Counts: contract.EntityCounts{Projects: 2}}))
	assert.Contains(t, clean, "No integrity problems found.")

	broken := stripANSI(FormatCheck(&contract.CheckResponse{Violations: []string{`transaction t9: unknown category "404"`}}))
	assert.Contains(t, broken, "1 problems found:")
	assert.Contains(t, broken, `WARNING: transaction t9: unknown category "404"`)
}

func TestConfirmations(t *testing.T) {
	out := stripANSI(FormatIssueSaved("Created", viewIssue()))
	assert.Contains(t, out, "Created Design landing page mockup")
	assert.Contains(t, out, "High")
	assert.Contains(t, out, "issue1")

	out = stripANSI(FormatCommentAdded(&domain.Comment{IssueID: "issue1", Author: "John Doe", Content: "Done"}))
	assert.Contains(t, out, "Comment by John Doe on issue1: Done")

	out = stripANSI(FormatMilestoneStage(&contract.MilestoneView{
		Milestone: &domain.Milestone{Title: "MVP Launch", Stage: domain.StageClosed},
		Progress:  stats.Progress{Completed: 1, Total: 2, Pct: 50},
	}))
	assert.Contains(t, out, "MVP Launch is now")
	assert.Contains(t, out, "Closed")
	assert.Contains(t, out, "1/2 issues")

	out = stripANSI(FormatTransactionAdded(&contract.AddTransactionResponse{Transaction: viewTransaction(), Balance: 21500}))
	assert.Contains(t, out, "-Rs 3,500 Lunch with team · Food · 1/10/2025")
	assert.Contains(t, out, "Cash balance Rs 21,500")
}

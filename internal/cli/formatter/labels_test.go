package formatter

import (
	"testing"

	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "Payment Received", Title("payment-received"))
	assert.Equal(t, "In Progress", Title("in-progress"))
	assert.Equal(t, "Mobile Wallet", Title("mobile-wallet"))
	assert.Equal(t, "Active", Title("active"))
}

func TestEveryEnumValueHasALabel(t *testing.T) {
	for _, s := range domain.ProjectStatuses {
		assert.Contains(t, projectStatusLabels, s)
	}
	for _, s := range domain.MilestoneStages {
		assert.Contains(t, milestoneStageLabels, s)
	}
	for _, p := range domain.IssuePriorities {
		assert.Contains(t, issuePriorityLabels, p)
	}
	for _, s := range domain.IssueStatuses {
		assert.Contains(t, issueStatusLabels, s)
	}
	for _, a := range domain.AccountTypes {
		assert.Contains(t, accountTypeLabels, a)
	}
	for _, tt := range domain.TransactionTypes {
		assert.Contains(t, transactionTypeLabels, tt)
	}
	for _, th := range domain.Themes {
		assert.Contains(t, themeLabels, th)
	}
}

func TestLabelRender(t *testing.T) {
	assert.Equal(t, "$ Payment Received", stripANSI(MilestoneStageLabel(domain.StagePaymentReceived).Render()))
	assert.Equal(t, "● In Progress", stripANSI(IssueStatusLabel(domain.IssueInProgress).Render()))
	assert.Equal(t, "High", stripANSI(IssuePriorityLabel(domain.PriorityHigh).Render()))
	assert.Equal(t, "✔ Completed", stripANSI(StatusPill(domain.ProjectCompleted)))
}

func TestUnknownEnumFallsBackToRawValue(t *testing.T) {
	l := ProjectStatusLabel("paused")
	assert.Equal(t, "paused", l.Text)
	assert.Equal(t, "paused", stripANSI(l.Render()))
	assert.Equal(t, "weird", stripANSI(AccountTypeLabel("weird").Render()))
}

func TestTags(t *testing.T) {
	assert.Equal(t, "#web #saas", stripANSI(Tags([]string{"web", "saas"})))
	assert.Equal(t, "--", stripANSI(Tags(nil)))
}

package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/bittrack/internal/domain"
)

func TestFilterProjects(t *testing.T) {
	projects := sampleDataset().Projects

	tests := []struct {
		name   string
		filter ProjectFilter
		want   []string
	}{
		{"empty filter keeps all", ProjectFilter{}, []string{"proj1", "proj2"}},
		{"all status keeps all", ProjectFilter{Status: FilterAll}, []string{"proj1", "proj2"}},
		{"title match ignores case", ProjectFilter{Query: "MOBILE"}, []string{"proj2"}},
		{"description match", ProjectFilter{Query: "online store"}, []string{"proj1"}},
		{"tag match", ProjectFilter{Query: "firebase"}, []string{"proj2"}},
		{"shared tag prefix", ProjectFilter{Query: "react"}, []string{"proj1", "proj2"}},
		{"status only", ProjectFilter{Status: "completed"}, []string{"proj2"}},
		{"query and status", ProjectFilter{Query: "react", Status: "active"}, []string{"proj1"}},
		{"no match", ProjectFilter{Query: "kotlin"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProjects(projects, tt.filter)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterProjects_IdempotentAndNonMutating(t *testing.T) {
	projects := sampleDataset().Projects
	before := append([]*domain.Project(nil), projects...)
	f := ProjectFilter{Query: "react"}

	once := FilterProjects(projects, f)
	twice := FilterProjects(once, f)

	assert.Equal(t, once, twice)
	assert.Equal(t, before, projects)
}

func TestFilterTransactions(t *testing.T) {
	txs := sampleDataset().Transactions
	txs[1].Description = "Figma subscription"

	got := FilterTransactions(txs, TransactionFilter{Type: "expense"})
	require.Len(t, got, 2)

	got = FilterTransactions(txs, TransactionFilter{Query: "figma"})
	require.Len(t, got, 1)
	assert.Equal(t, "trans2", got[0].ID)

	got = FilterTransactions(txs, TransactionFilter{Type: FilterAll, AccountID: "acc2"})
	assert.Empty(t, got)
}

func TestSortTransactionsByDateDesc(t *testing.T) {
	txs := sampleDataset().Transactions
	before := append([]*domain.Transaction(nil), txs...)

	got := SortTransactionsByDateDesc(txs)

	require.Len(t, got, len(txs))
	assert.Equal(t, "trans3", got[0].ID)
	assert.Equal(t, "trans4", got[len(got)-1].ID)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Date.After(got[i-1].Date))
	}
	assert.Equal(t, before, txs, "input order untouched")
	assert.Equal(t, day(2025, time.January, 9), got[0].Date)
}

package stats

import (
	"sort"
	"strings"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// FilterAll is the status/type value that disables the exact-match predicate.
const FilterAll = "all"

// ProjectFilter selects projects by free text and status.
type ProjectFilter struct {
	Query  string
	Status string
}

// Matches reports whether p satisfies both the text and the status predicate.
// The text predicate is a case-insensitive substring match against the title,
// the description or any tag.
func (f ProjectFilter) Matches(p *domain.Project) bool {
	if !matchesExact(string(p.Status), f.Status) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	if containsFold(p.Title, q) || containsFold(p.Description, q) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, q) {
			return true
		}
	}
	return false
}

// FilterProjects returns the projects matching f in their original order.
// The input slice is not modified.
func FilterProjects(projects []*domain.Project, f ProjectFilter) []*domain.Project {
	out := make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// TransactionFilter selects transactions by type, text, account and category.
// Empty fields match everything.
type TransactionFilter struct {
	Type       string
	Query      string
	AccountID  string
	CategoryID string
}

func (f TransactionFilter) Matches(t *domain.Transaction) bool {
	if !matchesExact(string(t.Type), f.Type) {
		return false
	}
	if f.AccountID != "" && t.AccountID != f.AccountID {
		return false
	}
	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return containsFold(t.Description, q) || containsFold(t.Notes, q)
}

// FilterTransactions returns the transactions matching f in their original order.
func FilterTransactions(txs []*domain.Transaction, f TransactionFilter) []*domain.Transaction {
	out := make([]*domain.Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// SortTransactionsByDateDesc returns a newest-first copy of txs.
func SortTransactionsByDateDesc(txs []*domain.Transaction) []*domain.Transaction {
	out := append([]*domain.Transaction(nil), txs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if out == nil {
		return []*domain.Transaction{}
	}
	return out
}

func matchesExact(value, want string) bool {
	return want == "" || want == FilterAll || value == want
}

// containsFold reports whether lowerQuery occurs in s, ignoring case.
func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

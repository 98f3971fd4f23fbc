package stats

import (
	"sort"
	"strings"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// CountProjectsByStatus counts projects with the given status.
func CountProjectsByStatus(projects []*domain.Project, status domain.ProjectStatus) int {
	n := 0
	for _, p := range projects {
		if p.Status == status {
			n++
		}
	}
	return n
}

// TagShare is how often a tag occurs across projects.
type TagShare struct {
	Tag   string
	Count int
	Pct   float64
}

// TagDistribution counts tag occurrences across projects, case-insensitively.
// Percentages are shares of all tag occurrences and sum to 100 unless there
// are no tags. Most frequent first, ties alphabetical.
func TagDistribution(projects []*domain.Project) []TagShare {
	counts := make(map[string]int)
	total := 0
	for _, p := range projects {
		for _, tag := range p.Tags {
			counts[strings.ToLower(tag)]++
			total++
		}
	}
	out := make([]TagShare, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagShare{Tag: tag, Count: n, Pct: pct(float64(n), float64(total))})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}
